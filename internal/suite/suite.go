// internal/suite/suite.go
// Package suite loads benchmark test case definitions from JSON.
package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ExpectedCharacteristics describes what a well-behaved estimator should
// produce for a test case.
type ExpectedCharacteristics struct {
	ExpectedSizeRange []string `json:"expected_size_range"`
	ShouldFindSimilar bool     `json:"should_find_similar"`
}

// TestCase is a single task fed to the estimator.
type TestCase struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"task_title"`
	Description string                  `json:"task_description,omitempty"`
	Category    string                  `json:"category"`
	Expected    ExpectedCharacteristics `json:"expected_characteristics"`
}

// Suite is the top-level test suite document.
type Suite struct {
	TestCases []TestCase `json:"test_cases"`
}

// suiteSchema validates the suite document before decoding so malformed
// definitions fail at startup with a field-level message instead of surfacing
// as zero values mid-benchmark.
const suiteSchema = `{
  "type": "object",
  "required": ["test_cases"],
  "properties": {
    "test_cases": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "task_title", "category", "expected_characteristics"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "task_title": {"type": "string", "minLength": 1},
          "task_description": {"type": "string"},
          "category": {"type": "string", "minLength": 1},
          "expected_characteristics": {
            "type": "object",
            "required": ["expected_size_range", "should_find_similar"],
            "properties": {
              "expected_size_range": {
                "type": "array",
                "items": {"type": "string"}
              },
              "should_find_similar": {"type": "boolean"}
            }
          }
        }
      }
    }
  }
}`

// Load reads and validates a test suite definition. Any problem with the file
// is fatal for a benchmark run, so errors propagate to the caller.
func Load(path string) ([]TestCase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading test suite: %w", err)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("test suite %q is not valid JSON", path)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(suiteSchema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("test suite %q failed validation: %s", path, strings.Join(details, "; "))
	}

	var suite Suite
	if err := json.Unmarshal(raw, &suite); err != nil {
		return nil, fmt.Errorf("error parsing test suite: %w", err)
	}

	if len(suite.TestCases) == 0 {
		return nil, fmt.Errorf("test suite %q contains no test cases", path)
	}

	return suite.TestCases, nil
}
