package config

// Defaults returns the built-in configuration used when no file is present
// or the file cannot be parsed. The defaults are self-consistent: every
// declared category carries an enabled flag and every reporting format a
// boolean, so consumers never observe a missing key.
func Defaults() *RunConfiguration {
	return &RunConfiguration{
		APIBaseURL:  "http://localhost:3000/api",
		FrontendURL: "http://localhost:5000",
		TestTimeout: 30,
		MaxRetries:  3,
		Environments: map[string]Environment{
			"local": {
				APIURL:      "http://localhost:3000/api",
				DatabaseURL: "local",
			},
		},
		TestCategories: map[string]bool{
			"unit":        true,
			"integration": true,
			"api":         true,
			"performance": false,
			"security":    true,
		},
		Reporting: Reporting{
			HTMLReport:    true,
			JSONReport:    true,
			ConsoleOutput: true,
		},
		PerformanceThresholds: PerformanceThresholds{
			APIResponseTime:       2.0,
			ConcurrentSuccessRate: 90.0,
			MemoryLimitMB:         100,
		},
	}
}
