// internal/report/report.go
// Package report renders aggregated benchmark results into a markdown report
// and flat export files.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mwiater/estbench/internal/benchmark"
	"github.com/mwiater/estbench/internal/util"
)

// Recommendation thresholds. These are fixed design constants, not derived
// from the data.
const (
	perfWarnSeconds      = 10.0
	confidenceWarnPct    = 60.0
	consistencyWarnRatio = 0.3
)

const (
	sizeMatchMark    = "✓"
	sizeMismatchMark = "⚠"
)

// Generate renders the full benchmark report. The overall success rate covers
// every attempted run, including runs of test cases that produced no
// aggregated result.
func Generate(results []benchmark.AggregatedResult, totals benchmark.RunTotals, generatedAt time.Time) string {
	b := &strings.Builder{}

	b.WriteString("# Estimation Engine Benchmark Report\n\n")
	b.WriteString(fmt.Sprintf("**Date:** %s\n", generatedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("**Test Cases:** %d\n\n", totals.TestCases))

	b.WriteString("## Executive Summary\n\n")

	avgTime := meanOf(results, func(r benchmark.AggregatedResult) float64 { return r.AvgTime })
	avgConfidence := meanOf(results, func(r benchmark.AggregatedResult) float64 { return r.AvgConfidence })

	b.WriteString("### Overall Performance\n\n")
	b.WriteString(fmt.Sprintf("- **Success Rate:** %d/%d (%.1f%%)\n", totals.SuccessfulRuns, totals.TotalRuns, totals.SuccessRate()))
	b.WriteString(fmt.Sprintf("- **Average Response Time:** %.2fs\n", avgTime))
	b.WriteString(fmt.Sprintf("- **Average Confidence:** %.1f%%\n", avgConfidence))
	b.WriteString(fmt.Sprintf("- **Test Categories:** %d\n\n", len(groupByCategory(results))))

	if len(results) == 0 {
		b.WriteString("No test case produced a successful run; detailed statistics are unavailable.\n")
		writeRecommendations(b, results, avgTime, avgConfidence)
		writeFooter(b)
		return b.String()
	}

	writeKeyMetrics(b, results, totals, avgTime, avgConfidence)
	writeDetailedResults(b, results)
	writeAnalysis(b, results)
	writeRecommendations(b, results, avgTime, avgConfidence)
	writeFooter(b)

	return b.String()
}

func writeKeyMetrics(b *strings.Builder, results []benchmark.AggregatedResult, totals benchmark.RunTotals, avgTime, avgConfidence float64) {
	minTime := results[0].MinTime
	maxTime := results[0].MaxTime
	for _, r := range results[1:] {
		if r.MinTime < minTime {
			minTime = r.MinTime
		}
		if r.MaxTime > maxTime {
			maxTime = r.MaxTime
		}
	}
	avgSimilar := meanOf(results, func(r benchmark.AggregatedResult) float64 { return r.AvgSimilarTasks })

	b.WriteString("### Key Metrics\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Total Test Cases | %d |\n", totals.TestCases))
	b.WriteString(fmt.Sprintf("| Successful Tests | %d |\n", len(results)))
	b.WriteString(fmt.Sprintf("| Failed Tests | %d |\n", totals.TestCases-len(results)))
	b.WriteString(fmt.Sprintf("| Avg Response Time | %.2fs |\n", avgTime))
	b.WriteString(fmt.Sprintf("| Min Response Time | %.2fs |\n", minTime))
	b.WriteString(fmt.Sprintf("| Max Response Time | %.2fs |\n", maxTime))
	b.WriteString(fmt.Sprintf("| Avg Confidence | %.1f%% |\n", avgConfidence))
	b.WriteString(fmt.Sprintf("| Avg Similar Tasks Found | %.1f |\n", avgSimilar))
	b.WriteString("\n---\n\n")
}

func writeDetailedResults(b *strings.Builder, results []benchmark.AggregatedResult) {
	b.WriteString("## Detailed Results by Test Case\n")

	byCategory := groupByCategory(results)
	for _, category := range sortedCategories(byCategory) {
		b.WriteString(fmt.Sprintf("\n### Category: %s\n\n", util.TitleCase(strings.ReplaceAll(category, "_", " "))))

		for _, r := range byCategory[category] {
			mark := sizeMismatchMark
			if r.SizeMatchesExpected() {
				mark = sizeMatchMark
			}

			b.WriteString(fmt.Sprintf("#### %s: %s\n\n", r.TestCaseID, r.TaskTitle))
			b.WriteString(fmt.Sprintf("**Success:** %d/%d runs\n\n", r.SuccessfulRuns, r.Runs))
			b.WriteString("| Metric | Value | Notes |\n")
			b.WriteString("|--------|-------|-------|\n")
			b.WriteString(fmt.Sprintf("| **Estimate** | %.1fh (±%.1fh) | Range: %.1fh - %.1fh |\n", r.AvgHours, r.StdevHours, r.MinHours, r.MaxHours))
			b.WriteString(fmt.Sprintf("| **Size** | %s %s | Expected: %s |\n", r.MostCommonSize, mark, strings.Join(r.ExpectedSizeRange, ", ")))
			b.WriteString(fmt.Sprintf("| **Confidence** | %.1f%% | Range: %.1f%% - %.1f%% |\n", r.AvgConfidence, r.MinConfidence, r.MaxConfidence))
			b.WriteString(fmt.Sprintf("| **Performance** | %.2fs | Range: %.2fs - %.2fs |\n", r.AvgTime, r.MinTime, r.MaxTime))
			b.WriteString(fmt.Sprintf("| **Similar Tasks** | %.1f | Should find similar: %t |\n", r.AvgSimilarTasks, r.ExpectedSimilarity))
			b.WriteString(fmt.Sprintf("| **Consistency** | %.0f%% | Size agreement across runs |\n\n", r.SizeConsistency))

			if r.TaskDescription != "" {
				b.WriteString(fmt.Sprintf("**Description:** %s\n\n", r.TaskDescription))
			}
		}
	}
}

func writeAnalysis(b *strings.Builder, results []benchmark.AggregatedResult) {
	b.WriteString("\n---\n\n## Analysis\n\n")

	b.WriteString("### Consistency Analysis\n\n")
	var variable []benchmark.AggregatedResult
	perfect := 0
	for _, r := range results {
		if r.SizeConsistency >= 100 {
			perfect++
		} else {
			variable = append(variable, r)
		}
	}
	b.WriteString(fmt.Sprintf("- **Perfect Consistency (100%%):** %d/%d tests\n", perfect, len(results)))
	b.WriteString(fmt.Sprintf("- **Variable Results:** %d/%d tests\n\n", len(variable), len(results)))

	if len(variable) > 0 {
		b.WriteString("**Tests with Variable Results:**\n\n")
		for _, r := range variable {
			b.WriteString(fmt.Sprintf("- %s: %s (%.0f%% consistency)\n", r.TestCaseID, r.TaskTitle, r.SizeConsistency))
		}
		b.WriteString("\n")
	}

	b.WriteString("### Performance by Category\n\n")
	b.WriteString("| Category | Avg Time | Avg Confidence | Avg Similar Tasks |\n")
	b.WriteString("|----------|----------|----------------|-------------------|\n")
	byCategory := groupByCategory(results)
	for _, category := range sortedCategories(byCategory) {
		catResults := byCategory[category]
		b.WriteString(fmt.Sprintf("| %s | %.2fs | %.1f%% | %.1f |\n",
			category,
			meanOf(catResults, func(r benchmark.AggregatedResult) float64 { return r.AvgTime }),
			meanOf(catResults, func(r benchmark.AggregatedResult) float64 { return r.AvgConfidence }),
			meanOf(catResults, func(r benchmark.AggregatedResult) float64 { return r.AvgSimilarTasks })))
	}

	b.WriteString("\n### Confidence Distribution\n\n")
	high, medium, low := 0, 0, 0
	for _, r := range results {
		switch {
		case r.AvgConfidence >= 70:
			high++
		case r.AvgConfidence >= 40:
			medium++
		default:
			low++
		}
	}
	b.WriteString(fmt.Sprintf("- **High Confidence (≥70%%):** %d tests\n", high))
	b.WriteString(fmt.Sprintf("- **Medium Confidence (40-69%%):** %d tests\n", medium))
	b.WriteString(fmt.Sprintf("- **Low Confidence (<40%%):** %d tests\n\n", low))
}

func writeRecommendations(b *strings.Builder, results []benchmark.AggregatedResult, avgTime, avgConfidence float64) {
	b.WriteString("\n---\n\n## Recommendations\n\n")

	if avgTime > perfWarnSeconds {
		b.WriteString("⚠ **Performance:** Average response time exceeds 10 seconds. Consider:\n")
		b.WriteString("  - Optimizing AI prompt length\n")
		b.WriteString("  - Reducing dataset size sent to AI\n\n")
	}

	if avgConfidence < confidenceWarnPct {
		b.WriteString("⚠ **Confidence:** Average confidence is below 60%. Consider:\n")
		b.WriteString("  - Improving historical data quality\n")
		b.WriteString("  - Adding more similar tasks to dataset\n\n")
	}

	belowFull := 0
	for _, r := range results {
		if r.SizeConsistency < 100 {
			belowFull++
		}
	}
	if float64(belowFull) > float64(len(results))*consistencyWarnRatio {
		b.WriteString("⚠ **Consistency:** More than 30% of tests show variable results. Consider:\n")
		b.WriteString("  - Adjusting AI temperature for more deterministic outputs\n")
		b.WriteString("  - Improving task descriptions for clarity\n\n")
	}
}

func writeFooter(b *strings.Builder) {
	b.WriteString("\n---\n\n*Report generated by estbench*\n")
}

func groupByCategory(results []benchmark.AggregatedResult) map[string][]benchmark.AggregatedResult {
	byCategory := make(map[string][]benchmark.AggregatedResult)
	for _, r := range results {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	return byCategory
}

func sortedCategories(byCategory map[string][]benchmark.AggregatedResult) []string {
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func meanOf(results []benchmark.AggregatedResult, pick func(benchmark.AggregatedResult) float64) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		sum += pick(r)
	}
	return sum / float64(len(results))
}
