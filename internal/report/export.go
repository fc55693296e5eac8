// internal/report/export.go
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mwiater/estbench/internal/benchmark"
)

// rawExport bundles the aggregated results with the run totals so the raw
// file is self-describing.
type rawExport struct {
	Totals  benchmark.RunTotals          `json:"totals"`
	Results []benchmark.AggregatedResult `json:"results"`
}

// ExportJSON writes the complete result set, including every raw run, as
// indented JSON for downstream analysis.
func ExportJSON(results []benchmark.AggregatedResult, totals benchmark.RunTotals, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating result file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rawExport{Totals: totals, Results: results}); err != nil {
		return fmt.Errorf("error writing results to file: %w", err)
	}
	return nil
}
