// internal/commands/run_benchmark.go
package estbench

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwiater/estbench/internal/appconfig"
	"github.com/mwiater/estbench/internal/benchmark"
	"github.com/mwiater/estbench/internal/report"
	"github.com/mwiater/estbench/internal/runner"
	"github.com/mwiater/estbench/internal/suite"
	"github.com/spf13/cobra"
)

// runBenchmarkCmd implements 'run benchmark', the full estimation benchmark pipeline.
var runBenchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Run the estimation benchmark suite against the configured estimator",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmark(GetConfig(), time.Now())
	},
}

func init() {
	runCmd.AddCommand(runBenchmarkCmd)
}

// runBenchmark loads the suite, drives the orchestrator, and writes the
// report, CSV export, and raw results under the configured output directory.
func runBenchmark(cfg *appconfig.Config, startedAt time.Time) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if strings.TrimSpace(cfg.EstimatorPath) == "" {
		return fmt.Errorf("estimator binary path is required (set estimatorPath in the config or pass --estimatorPath)")
	}
	if _, err := os.Stat(cfg.EstimatorPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("estimator binary not found at %q", cfg.EstimatorPath)
		}
		return fmt.Errorf("estimator binary %q not accessible: %w", cfg.EstimatorPath, err)
	}

	testCases, err := suite.Load(cfg.SuiteFilePath())
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDirPath()
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	repetitions := cfg.Repetitions()
	printBanner(len(testCases), repetitions)

	r := runner.New(cfg.EstimatorPath, cfg.RunTimeout())
	results, totals := benchmark.Run(context.Background(), r, testCases, benchmark.Options{
		Repetitions: repetitions,
		Pause:       cfg.PauseDuration(),
	})

	stamp := startedAt.Format("20060102_150405")

	reportPath := filepath.Join(outputDir, fmt.Sprintf("benchmark_report_%s.md", stamp))
	doc := report.Generate(results, totals, startedAt)
	if err := os.WriteFile(reportPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	log.Printf("Benchmark report written to %s", reportPath)

	csvPath := filepath.Join(outputDir, fmt.Sprintf("benchmark_results_%s.csv", stamp))
	if err := report.ExportCSV(results, csvPath); err != nil {
		return fmt.Errorf("error exporting CSV: %w", err)
	}
	log.Printf("CSV exported to %s", csvPath)

	rawPath := filepath.Join(outputDir, fmt.Sprintf("benchmark_raw_%s.json", stamp))
	if err := report.ExportJSON(results, totals, rawPath); err != nil {
		return fmt.Errorf("error exporting raw results: %w", err)
	}
	log.Printf("Raw results written to %s", rawPath)

	fmt.Printf("\nBenchmark complete: %d/%d runs succeeded (%.1f%%)\n",
		totals.SuccessfulRuns, totals.TotalRuns, totals.SuccessRate())

	return nil
}

func printBanner(testCases, repetitions int) {
	line := strings.Repeat("=", 80)
	fmt.Println(line)
	fmt.Println("  ESTIMATION ENGINE BENCHMARK")
	fmt.Println(line)
	fmt.Printf("Test cases: %d\n", testCases)
	fmt.Printf("Runs per test: %d\n", repetitions)
	fmt.Printf("Total estimations: %d\n", testCases*repetitions)
	fmt.Println(line)
	fmt.Println()
}
