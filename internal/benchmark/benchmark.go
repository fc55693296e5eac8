// internal/benchmark/benchmark.go
// Package benchmark drives repeated estimator invocations and reduces them
// into per-test-case statistics.
package benchmark

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mwiater/estbench/internal/logging"
	"github.com/mwiater/estbench/internal/runner"
	"github.com/mwiater/estbench/internal/suite"
	"github.com/mwiater/estbench/internal/util"
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
)

// EstimationRunner is the single-invocation contract the orchestrator drives.
type EstimationRunner interface {
	Run(ctx context.Context, title, description string) runner.RunResult
}

// Options controls a benchmark run.
type Options struct {
	// Repetitions is the number of sequential runs per test case.
	Repetitions int
	// Pause is the delay between runs of the same test case. The estimator
	// may be rate-limited or stateful, so runs are never concurrent and never
	// back-to-back except after the final run.
	Pause time.Duration
	// Out receives progress output; defaults to os.Stdout.
	Out io.Writer
}

// Run executes every test case Repetitions times, aggregating each case's
// runs. Test cases whose runs all failed contribute no AggregatedResult but
// are still counted in the returned RunTotals.
func Run(ctx context.Context, r EstimationRunner, testCases []suite.TestCase, opts Options) ([]AggregatedResult, RunTotals) {
	if opts.Repetitions <= 0 {
		opts.Repetitions = 1
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	results := make([]AggregatedResult, 0, len(testCases))
	totals := RunTotals{TestCases: len(testCases)}

	for idx, tc := range testCases {
		fmt.Fprintf(out, "[%d/%d] Running %s: %s\n", idx+1, len(testCases), tc.ID, util.TruncateRunes(tc.Title, 60))
		fmt.Fprintf(out, "  Category: %s\n", tc.Category)

		caseRuns := make([]runner.RunResult, 0, opts.Repetitions)
		for run := 0; run < opts.Repetitions; run++ {
			fmt.Fprintf(out, "  Run %d/%d...", run+1, opts.Repetitions)

			res := r.Run(ctx, tc.Title, tc.Description)
			caseRuns = append(caseRuns, res)

			if res.Success {
				fmt.Fprintf(out, " %s %.1fh, %s, %.0f%% conf, %.1fs\n",
					okMark("OK"), res.EstimatedHours, res.EstimatedSize, res.Confidence*100, res.ElapsedSeconds)
				totals.SuccessfulRuns++
			} else {
				fmt.Fprintf(out, " %s %s\n", failMark("FAIL:"), util.FlattenLines(res.Error))
				logging.LogRun("failure", tc.ID, run+1, fmt.Sprintf("error=%q elapsed=%.2fs", res.Error, res.ElapsedSeconds))
				totals.FailedRuns++
			}
			totals.TotalRuns++

			if run < opts.Repetitions-1 && opts.Pause > 0 {
				time.Sleep(opts.Pause)
			}
		}

		if successCount(caseRuns) == 0 {
			fmt.Fprintf(out, "  %s\n", failMark(fmt.Sprintf("All %d runs failed for %s", opts.Repetitions, tc.ID)))
			fmt.Fprintln(out)
			continue
		}

		results = append(results, Aggregate(tc, caseRuns))
		totals.AggregatedCases++
		fmt.Fprintln(out)
	}

	return results, totals
}

func successCount(results []runner.RunResult) int {
	count := 0
	for _, res := range results {
		if res.Success {
			count++
		}
	}
	return count
}
