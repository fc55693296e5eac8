// internal/report/csv.go
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mwiater/estbench/internal/benchmark"
)

// csvHeader is the fixed export schema. Column order matches the detailed
// report so spreadsheet formulas stay stable across benchmark runs.
var csvHeader = []string{
	"Test ID", "Category", "Task Title", "Task Description",
	"Runs", "Successful", "Failed",
	"Avg Hours", "Median Hours", "Stdev Hours", "Min Hours", "Max Hours",
	"Most Common Size", "Size Consistency %",
	"Avg Confidence %", "Min Confidence %", "Max Confidence %",
	"Avg Time (s)", "Min Time (s)", "Max Time (s)",
	"Avg Similar Tasks", "Expected Size Range", "Expected Similarity",
}

// ExportCSV writes one row per aggregated result. Hours and times carry two
// decimals, percentages one; any write error propagates to the caller.
func ExportCSV(results []benchmark.AggregatedResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.TestCaseID,
			r.Category,
			r.TaskTitle,
			r.TaskDescription,
			strconv.Itoa(r.Runs),
			strconv.Itoa(r.SuccessfulRuns),
			strconv.Itoa(r.FailedRuns),
			fmt.Sprintf("%.2f", r.AvgHours),
			fmt.Sprintf("%.2f", r.MedianHours),
			fmt.Sprintf("%.2f", r.StdevHours),
			fmt.Sprintf("%.2f", r.MinHours),
			fmt.Sprintf("%.2f", r.MaxHours),
			r.MostCommonSize,
			fmt.Sprintf("%.1f", r.SizeConsistency),
			fmt.Sprintf("%.1f", r.AvgConfidence),
			fmt.Sprintf("%.1f", r.MinConfidence),
			fmt.Sprintf("%.1f", r.MaxConfidence),
			fmt.Sprintf("%.2f", r.AvgTime),
			fmt.Sprintf("%.2f", r.MinTime),
			fmt.Sprintf("%.2f", r.MaxTime),
			fmt.Sprintf("%.1f", r.AvgSimilarTasks),
			strings.Join(r.ExpectedSizeRange, ", "),
			strconv.FormatBool(r.ExpectedSimilarity),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row for %s: %w", r.TestCaseID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("error flushing CSV: %w", err)
	}
	return nil
}
