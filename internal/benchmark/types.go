// internal/benchmark/types.go
package benchmark

import (
	"github.com/mwiater/estbench/internal/runner"
)

// AggregatedResult rolls the repeated runs of one test case up into summary
// statistics. All derived statistics cover only the successful runs; the raw
// run results are retained for traceability.
type AggregatedResult struct {
	TestCaseID      string `json:"testCaseId"`
	Category        string `json:"category"`
	TaskTitle       string `json:"taskTitle"`
	TaskDescription string `json:"taskDescription,omitempty"`

	Runs           int `json:"runs"`
	SuccessfulRuns int `json:"successfulRuns"`
	FailedRuns     int `json:"failedRuns"`

	AvgHours    float64 `json:"avgHours"`
	MedianHours float64 `json:"medianHours"`
	StdevHours  float64 `json:"stdevHours"`
	MinHours    float64 `json:"minHours"`
	MaxHours    float64 `json:"maxHours"`

	MostCommonSize  string  `json:"mostCommonSize"`
	SizeConsistency float64 `json:"sizeConsistency"`

	AvgConfidence float64 `json:"avgConfidence"`
	MinConfidence float64 `json:"minConfidence"`
	MaxConfidence float64 `json:"maxConfidence"`

	AvgTime float64 `json:"avgTime"`
	MinTime float64 `json:"minTime"`
	MaxTime float64 `json:"maxTime"`

	AvgSimilarTasks float64 `json:"avgSimilarTasks"`

	ExpectedSizeRange  []string `json:"expectedSizeRange"`
	ExpectedSimilarity bool     `json:"expectedSimilarity"`

	AllRuns []runner.RunResult `json:"allRuns"`
}

// SizeMatchesExpected reports whether the most common size falls inside the
// test case's expected size range.
func (a AggregatedResult) SizeMatchesExpected() bool {
	for _, size := range a.ExpectedSizeRange {
		if size == a.MostCommonSize {
			return true
		}
	}
	return false
}

// RunTotals accounts for every attempted run, including runs of test cases
// that never succeeded and therefore produced no AggregatedResult.
type RunTotals struct {
	TestCases       int `json:"testCases"`
	AggregatedCases int `json:"aggregatedCases"`
	TotalRuns       int `json:"totalRuns"`
	SuccessfulRuns  int `json:"successfulRuns"`
	FailedRuns      int `json:"failedRuns"`
}

// SuccessRate returns the overall success ratio across all attempted runs as
// a percentage.
func (t RunTotals) SuccessRate() float64 {
	if t.TotalRuns == 0 {
		return 0
	}
	return float64(t.SuccessfulRuns) / float64(t.TotalRuns) * 100
}
