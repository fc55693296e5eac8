// internal/runner/extract.go
package runner

import (
	"encoding/json"
	"strings"

	"github.com/mwiater/estbench/internal/util"
)

// snippetRunes caps the diagnostic snippet carried by a failed extraction.
const snippetRunes = 500

// EstimatorOutput is the JSON document the estimator prints on success. The
// estimator mixes human-readable text with the JSON payload on stdout, so this
// is only ever decoded through ExtractOutput.
type EstimatorOutput struct {
	Estimation   Estimation        `json:"estimation"`
	Method       string            `json:"method"`
	SimilarTasks []json.RawMessage `json:"similar_tasks"`
}

// Estimation carries the estimate itself. Fields the estimator omits decode to
// their zero values; ExtractOutput applies the documented defaults afterward.
type Estimation struct {
	EstimatedHours  float64 `json:"estimated_hours"`
	EstimatedSize   string  `json:"estimated_size"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// ExtractOutput recovers the estimator's JSON document from mixed stdout text.
//
// Phase one scans lines in reverse and returns the first line that is a
// self-contained JSON object. Phase two falls back to parsing the entire
// output, which covers pretty-printed multi-line JSON. When both phases fail,
// ok is false and snippet holds a truncated copy of the output for diagnosis.
func ExtractOutput(output string) (parsed EstimatorOutput, snippet string, ok bool) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var out EstimatorOutput
		if err := json.Unmarshal([]byte(line), &out); err != nil {
			continue
		}
		return withDefaults(out), "", true
	}

	var out EstimatorOutput
	if err := json.Unmarshal([]byte(output), &out); err == nil {
		return withDefaults(out), "", true
	}

	return EstimatorOutput{}, util.TruncateRunes(output, snippetRunes), false
}

// withDefaults fills the fields downstream aggregation assumes are populated.
func withDefaults(out EstimatorOutput) EstimatorOutput {
	if strings.TrimSpace(out.Method) == "" {
		out.Method = "unknown"
	}
	if strings.TrimSpace(out.Estimation.EstimatedSize) == "" {
		out.Estimation.EstimatedSize = "N/A"
	}
	return out
}
