// internal/benchmark/benchmark_test.go
package benchmark

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mwiater/estbench/internal/runner"
	"github.com/mwiater/estbench/internal/suite"
)

// scriptedRunner returns canned results in invocation order.
type scriptedRunner struct {
	results []runner.RunResult
	calls   int
	titles  []string
}

func (s *scriptedRunner) Run(_ context.Context, title, _ string) runner.RunResult {
	s.titles = append(s.titles, title)
	res := s.results[s.calls%len(s.results)]
	s.calls++
	return res
}

func twoCases() []suite.TestCase {
	return []suite.TestCase{
		{
			ID:       "TC-01",
			Title:    "Add user authentication",
			Category: "backend_feature",
			Expected: suite.ExpectedCharacteristics{ExpectedSizeRange: []string{"M"}, ShouldFindSimilar: true},
		},
		{
			ID:       "TC-02",
			Title:    "Fix typo in README",
			Category: "documentation",
			Expected: suite.ExpectedCharacteristics{ExpectedSizeRange: []string{"XS"}, ShouldFindSimilar: false},
		},
	}
}

func TestRunAggregatesEveryCase(t *testing.T) {
	r := &scriptedRunner{results: []runner.RunResult{
		{Success: true, EstimatedHours: 4, EstimatedSize: "M", Confidence: 0.8, ElapsedSeconds: 1},
	}}
	var out bytes.Buffer

	results, totals := Run(context.Background(), r, twoCases(), Options{Repetitions: 3, Out: &out})

	if len(results) != 2 {
		t.Fatalf("expected 2 aggregated results, got %d", len(results))
	}
	if results[0].TestCaseID != "TC-01" || results[1].TestCaseID != "TC-02" {
		t.Fatalf("results out of order: %+v", results)
	}
	if r.calls != 6 {
		t.Fatalf("expected 6 sequential invocations, got %d", r.calls)
	}
	if totals.TotalRuns != 6 || totals.SuccessfulRuns != 6 || totals.FailedRuns != 0 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals.TestCases != 2 || totals.AggregatedCases != 2 {
		t.Fatalf("unexpected case counts: %+v", totals)
	}
	if totals.SuccessRate() != 100 {
		t.Fatalf("success rate = %v, want 100", totals.SuccessRate())
	}

	progress := out.String()
	if !strings.Contains(progress, "[1/2] Running TC-01") || !strings.Contains(progress, "[2/2] Running TC-02") {
		t.Fatalf("missing per-case progress lines:\n%s", progress)
	}
	if !strings.Contains(progress, "Run 3/3") {
		t.Fatalf("missing per-run progress lines:\n%s", progress)
	}
}

// A test case whose runs all fail is dropped from the aggregated results but
// still counted in the totals, so the overall success ratio reflects every
// attempted run.
func TestRunExcludesFullyFailedCase(t *testing.T) {
	r := &scriptedRunner{results: []runner.RunResult{
		{Success: false, Error: "Timeout (>60s)", ElapsedSeconds: 60},
		{Success: false, Error: "Timeout (>60s)", ElapsedSeconds: 60},
		{Success: false, Error: "Timeout (>60s)", ElapsedSeconds: 60},
		{Success: true, EstimatedHours: 2, EstimatedSize: "S", Confidence: 0.7, ElapsedSeconds: 1},
		{Success: true, EstimatedHours: 2, EstimatedSize: "S", Confidence: 0.7, ElapsedSeconds: 1},
		{Success: true, EstimatedHours: 2, EstimatedSize: "S", Confidence: 0.7, ElapsedSeconds: 1},
	}}
	var out bytes.Buffer

	results, totals := Run(context.Background(), r, twoCases(), Options{Repetitions: 3, Out: &out})

	if len(results) != 1 {
		t.Fatalf("expected 1 aggregated result, got %d", len(results))
	}
	if results[0].TestCaseID != "TC-02" {
		t.Fatalf("wrong surviving case: %s", results[0].TestCaseID)
	}
	if totals.TotalRuns != 6 || totals.FailedRuns != 3 || totals.SuccessfulRuns != 3 {
		t.Fatalf("totals must count the failed case: %+v", totals)
	}
	if totals.AggregatedCases != 1 || totals.TestCases != 2 {
		t.Fatalf("case counts: %+v", totals)
	}
	if totals.SuccessRate() != 50 {
		t.Fatalf("success rate = %v, want 50", totals.SuccessRate())
	}
	if !strings.Contains(out.String(), "All 3 runs failed for TC-01") {
		t.Fatalf("missing all-failed warning:\n%s", out.String())
	}
}

func TestRunDefaultsRepetitionsToOne(t *testing.T) {
	r := &scriptedRunner{results: []runner.RunResult{
		{Success: true, EstimatedHours: 1, EstimatedSize: "S", Confidence: 0.5, ElapsedSeconds: 1},
	}}
	var out bytes.Buffer

	results, totals := Run(context.Background(), r, twoCases()[:1], Options{Out: &out})

	if r.calls != 1 {
		t.Fatalf("expected a single invocation, got %d", r.calls)
	}
	if len(results) != 1 || results[0].Runs != 1 {
		t.Fatalf("unexpected results: %+v", results)
	}
	if totals.TotalRuns != 1 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestRunPassesTitles(t *testing.T) {
	r := &scriptedRunner{results: []runner.RunResult{
		{Success: true, EstimatedHours: 1, EstimatedSize: "S", Confidence: 0.5, ElapsedSeconds: 1},
	}}
	var out bytes.Buffer

	Run(context.Background(), r, twoCases(), Options{Repetitions: 1, Out: &out})

	if len(r.titles) != 2 || r.titles[0] != "Add user authentication" || r.titles[1] != "Fix typo in README" {
		t.Fatalf("titles not forwarded in order: %v", r.titles)
	}
}
