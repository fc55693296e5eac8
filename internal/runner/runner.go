// internal/runner/runner.go
// Package runner invokes the external estimator binary and converts each
// invocation into a RunResult, never an error.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// RunResult is the outcome of one estimator invocation. Results are created
// once and never mutated; failed runs carry an error message instead of
// estimation fields.
type RunResult struct {
	Success        bool    `json:"success"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	EstimatedHours float64 `json:"estimatedHours,omitempty"`
	EstimatedSize  string  `json:"estimatedSize,omitempty"`
	Confidence     float64 `json:"confidenceScore,omitempty"`
	Method         string  `json:"method,omitempty"`
	SimilarTasks   int     `json:"similarTasksFound,omitempty"`
	RawOutput      string  `json:"rawOutput,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// Runner spawns the estimator binary once per call to Run.
type Runner struct {
	binary  string
	timeout time.Duration
}

// New returns a Runner for the given estimator binary. A non-positive timeout
// falls back to 60 seconds.
func New(binary string, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Runner{binary: binary, timeout: timeout}
}

// Run performs a single estimation. The title is passed positionally, JSON
// output is requested explicitly, and the description flag is added only when
// a description exists. Every failure mode (timeout, non-zero exit, spawn
// error, unparseable output) is folded into the returned RunResult.
func (r *Runner) Run(ctx context.Context, title, description string) RunResult {
	args := []string{"estimate", title, "--output", "json"}
	if strings.TrimSpace(description) != "" {
		args = append(args, "--description", description)
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start).Seconds()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return RunResult{
			Success:        false,
			Error:          fmt.Sprintf("Timeout (>%ds)", int(r.timeout.Seconds())),
			ElapsedSeconds: r.timeout.Seconds(),
		}
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = err.Error()
			}
			return RunResult{Success: false, Error: msg, ElapsedSeconds: elapsed}
		}
		// Spawn failures (missing binary, permissions) surface here.
		return RunResult{Success: false, Error: err.Error(), ElapsedSeconds: elapsed}
	}

	parsed, snippet, ok := ExtractOutput(stdout.String())
	if !ok {
		return RunResult{
			Success:        false,
			Error:          "failed to parse JSON output",
			ElapsedSeconds: elapsed,
			RawOutput:      snippet,
		}
	}

	return RunResult{
		Success:        true,
		ElapsedSeconds: elapsed,
		EstimatedHours: parsed.Estimation.EstimatedHours,
		EstimatedSize:  parsed.Estimation.EstimatedSize,
		Confidence:     parsed.Estimation.ConfidenceScore,
		Method:         parsed.Method,
		SimilarTasks:   len(parsed.SimilarTasks),
		RawOutput:      stdout.String(),
	}
}
