// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultRunTimeout bounds a single estimator invocation.
	defaultRunTimeout = 60 * time.Second
	// defaultRunsPerCase is how many times each test case is invoked when the config omits the value.
	defaultRunsPerCase = 3
	// defaultPause is the delay between repeated invocations of the same test case.
	defaultPause = 1 * time.Second
	// defaultSuitePath is where the benchmark looks for test case definitions.
	defaultSuitePath = "benchmark_estimation.json"
	// defaultOutputDir is where reports, CSV exports, and raw results land.
	defaultOutputDir = "estbenchData"
)

// Config represents the top-level application configuration.
type Config struct {
	EstimatorPath  string `json:"estimatorPath"`
	SuitePath      string `json:"suitePath,omitempty"`
	RunsPerCase    int    `json:"runsPerCase,omitempty"`
	Timeout        int    `json:"timeout,omitempty"`
	PauseSeconds   int    `json:"pauseSeconds,omitempty"`
	OutputDir      string `json:"outputDir,omitempty"`
	LogFile        string `json:"logFile,omitempty"`
	Debug          bool   `json:"debug"`
	ConfigPath     string `json:"-"`
}

// RunTimeout returns the wall-clock limit for one estimator invocation,
// falling back to the default if not specified.
func (c Config) RunTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultRunTimeout
	}
	return time.Duration(c.Timeout) * time.Second
}

// Repetitions returns the number of runs per test case, applying the default
// when the config omits or zeroes the value.
func (c Config) Repetitions() int {
	if c.RunsPerCase <= 0 {
		return defaultRunsPerCase
	}
	return c.RunsPerCase
}

// PauseDuration returns the delay inserted between runs of the same test case.
// The estimator may be rate-limited downstream, so the floor is never removed
// via configuration; a non-positive value selects the default.
func (c Config) PauseDuration() time.Duration {
	if c.PauseSeconds <= 0 {
		return defaultPause
	}
	return time.Duration(c.PauseSeconds) * time.Second
}

// SuiteFilePath returns the test suite definition path, applying a default if not set.
func (c Config) SuiteFilePath() string {
	if path := strings.TrimSpace(c.SuitePath); path != "" {
		return path
	}
	return defaultSuitePath
}

// OutputDirPath returns the directory for generated reports, applying a default if not set.
func (c Config) OutputDirPath() string {
	if dir := strings.TrimSpace(c.OutputDir); dir != "" {
		return dir
	}
	return defaultOutputDir
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := strings.TrimSpace(c.LogFile); path != "" {
		return path
	}
	return "estbench.log"
}
