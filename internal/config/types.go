package config

import "time"

// RunConfiguration is the fully-resolved configuration for a test run.
// It is immutable once loaded: Load either parses a file as-is or falls
// back to Defaults, so every field is always populated for the default
// path and a parsed file is trusted without merging.
type RunConfiguration struct {
	// APIBaseURL is the base URL of the vocabulary API under test.
	APIBaseURL string `json:"api_base_url" yaml:"api_base_url"`
	// FrontendURL is the URL of the frontend server.
	FrontendURL string `json:"frontend_url" yaml:"frontend_url"`
	// TestTimeout bounds each category's execution, in seconds.
	TestTimeout float64 `json:"test_timeout" yaml:"test_timeout"`
	// MaxRetries is declared in the configuration format but not consumed
	// by the orchestrator; failed categories are never retried.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
	// Environments maps a named environment to its endpoints.
	Environments map[string]Environment `json:"environments" yaml:"environments"`
	// TestCategories maps a category name to its enabled flag.
	TestCategories map[string]bool `json:"test_categories" yaml:"test_categories"`
	// Reporting toggles the report formats produced by a run.
	Reporting Reporting `json:"reporting" yaml:"reporting"`
	// PerformanceThresholds are the ceilings checked by benchmark consumers.
	PerformanceThresholds PerformanceThresholds `json:"performance_thresholds" yaml:"performance_thresholds"`
}

// Environment describes one named target environment.
type Environment struct {
	APIURL      string `json:"api_url" yaml:"api_url"`
	DatabaseURL string `json:"database_url" yaml:"database_url"`
}

// Reporting toggles report outputs.
type Reporting struct {
	HTMLReport    bool `json:"html_report" yaml:"html_report"`
	JSONReport    bool `json:"json_report" yaml:"json_report"`
	ConsoleOutput bool `json:"console_output" yaml:"console_output"`
}

// PerformanceThresholds holds the numeric ceilings for benchmark results.
type PerformanceThresholds struct {
	// APIResponseTime is the response-time ceiling in seconds.
	APIResponseTime float64 `json:"api_response_time" yaml:"api_response_time"`
	// ConcurrentSuccessRate is the success-rate floor in percent.
	ConcurrentSuccessRate float64 `json:"concurrent_success_rate" yaml:"concurrent_success_rate"`
	// MemoryLimitMB is the resident-memory ceiling in megabytes.
	MemoryLimitMB float64 `json:"memory_limit_mb" yaml:"memory_limit_mb"`
}

// Timeout returns the per-category timeout as a duration.
func (c *RunConfiguration) Timeout() time.Duration {
	return time.Duration(c.TestTimeout * float64(time.Second))
}

// EnabledCategories returns the names of all categories whose enabled flag
// is true. Order is unspecified; callers that need determinism sort.
func (c *RunConfiguration) EnabledCategories() []string {
	var categories []string
	for name, enabled := range c.TestCategories {
		if enabled {
			categories = append(categories, name)
		}
	}
	return categories
}
