// internal/benchmark/aggregate.go
package benchmark

import (
	"github.com/mwiater/estbench/internal/runner"
	"github.com/mwiater/estbench/internal/suite"
)

// Aggregate reduces the repeated runs of one test case into an
// AggregatedResult. Statistics are computed over the successful subset only;
// callers must not pass a result set with zero successful runs.
func Aggregate(tc suite.TestCase, results []runner.RunResult) AggregatedResult {
	var hours, times, confidences, similar []float64
	var sizes []string
	for _, res := range results {
		if !res.Success {
			continue
		}
		hours = append(hours, res.EstimatedHours)
		times = append(times, res.ElapsedSeconds)
		confidences = append(confidences, res.Confidence)
		similar = append(similar, float64(res.SimilarTasks))
		sizes = append(sizes, res.EstimatedSize)
	}

	minHours, maxHours := minMax(hours)
	minTime, maxTime := minMax(times)
	minConf, maxConf := minMax(confidences)
	commonSize, consistency := mostCommonSize(sizes)

	return AggregatedResult{
		TestCaseID:      tc.ID,
		Category:        tc.Category,
		TaskTitle:       tc.Title,
		TaskDescription: tc.Description,

		Runs:           len(results),
		SuccessfulRuns: len(hours),
		FailedRuns:     len(results) - len(hours),

		AvgHours:    mean(hours),
		MedianHours: median(hours),
		StdevHours:  sampleStdev(hours),
		MinHours:    minHours,
		MaxHours:    maxHours,

		MostCommonSize:  commonSize,
		SizeConsistency: consistency,

		AvgConfidence: mean(confidences) * 100,
		MinConfidence: minConf * 100,
		MaxConfidence: maxConf * 100,

		AvgTime: mean(times),
		MinTime: minTime,
		MaxTime: maxTime,

		AvgSimilarTasks: mean(similar),

		ExpectedSizeRange:  tc.Expected.ExpectedSizeRange,
		ExpectedSimilarity: tc.Expected.ShouldFindSimilar,

		AllRuns: results,
	}
}

// mostCommonSize returns the most frequent size label and its share of the
// successful runs as a percentage. Ties break toward the label encountered
// first in run order, so repeated benchmarks produce stable output.
func mostCommonSize(sizes []string) (string, float64) {
	if len(sizes) == 0 {
		return "N/A", 0
	}
	counts := make(map[string]int, len(sizes))
	for _, size := range sizes {
		counts[size]++
	}
	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}
	for _, size := range sizes {
		if counts[size] == maxCount {
			return size, float64(maxCount) / float64(len(sizes)) * 100
		}
	}
	return sizes[0], 0
}
