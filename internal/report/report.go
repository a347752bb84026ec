package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"vocatest/internal/config"
	"vocatest/internal/console"
	"vocatest/internal/runner"
	"vocatest/pkg/logging"
)

// Summary counts category outcomes for a run.
type Summary struct {
	TotalCategories      int `json:"total_categories"`
	SuccessfulCategories int `json:"successful_categories"`
	FailedCategories     int `json:"failed_categories"`
}

// RunReport is the persisted record of one test run: the configuration it
// ran under, every category result, and the aggregate summary.
type RunReport struct {
	ID            string                   `json:"id"`
	Timestamp     string                   `json:"timestamp"`
	TotalDuration float64                  `json:"total_duration"`
	Config        *config.RunConfiguration `json:"config"`
	Results       map[string]runner.Result `json:"results"`
	Summary       Summary                  `json:"summary"`
}

// New builds a report from a run's results. totalDuration is the wall-clock
// time of the whole run, not the sum of category durations.
func New(cfg *config.RunConfiguration, results map[string]runner.Result, totalDuration time.Duration) *RunReport {
	summary := Summary{TotalCategories: len(results)}
	for _, result := range results {
		if result.Success {
			summary.SuccessfulCategories++
		} else {
			summary.FailedCategories++
		}
	}

	return &RunReport{
		ID:            uuid.NewString(),
		Timestamp:     time.Now().Format("2006-01-02 15:04:05"),
		TotalDuration: totalDuration.Seconds(),
		Config:        cfg,
		Results:       results,
		Summary:       summary,
	}
}

// SuccessRate returns the percentage of successful categories, 0 for an
// empty report.
func (r *RunReport) SuccessRate() float64 {
	if r.Summary.TotalCategories == 0 {
		return 0
	}
	return float64(r.Summary.SuccessfulCategories) / float64(r.Summary.TotalCategories) * 100
}

// AllPassed reports whether no category failed.
func (r *RunReport) AllPassed() bool {
	return r.Summary.FailedCategories == 0
}

// sortedCategories returns category names in stable order for rendering.
func (r *RunReport) sortedCategories() []string {
	names := make([]string, 0, len(r.Results))
	for name := range r.Results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aggregator renders run reports to the console and persists them to disk.
type Aggregator struct {
	out console.Console
}

// NewAggregator creates an Aggregator writing to out.
func NewAggregator(out console.Console) *Aggregator {
	return &Aggregator{out: out}
}

// Render prints the summary table, the overall panel and, when something
// failed, the per-category failure details.
func (a *Aggregator) Render(report *RunReport) {
	if report.Summary.TotalCategories == 0 {
		a.out.Warn("No test results to report")
		return
	}

	rows := make([][]string, 0, report.Summary.TotalCategories)
	for _, category := range report.sortedCategories() {
		result := report.Results[category]
		status := "✓ PASS"
		if !result.Success {
			status = "✗ FAIL"
		}
		rows = append(rows, []string{
			category,
			status,
			fmt.Sprintf("%.2fs", result.Duration.Seconds()),
			fmt.Sprintf("%d", result.ExitCode),
		})
	}
	a.out.Table("Test Execution Summary", []string{"Category", "Status", "Duration", "Exit Code"}, rows)

	body := fmt.Sprintf(`Overall Results:
• Total Categories: %d
• Successful: %d
• Failed: %d
• Total Duration: %.2fs
• Success Rate: %.1f%%`,
		report.Summary.TotalCategories,
		report.Summary.SuccessfulCategories,
		report.Summary.FailedCategories,
		report.TotalDuration,
		report.SuccessRate())
	a.out.Panel("Test Summary", body, report.AllPassed())

	if !report.AllPassed() {
		a.out.Error("\nFailed Test Details:")
		for _, category := range report.sortedCategories() {
			result := report.Results[category]
			if result.Success {
				continue
			}
			a.out.Error("\n❌ %s Tests Failed", strings.ToUpper(category))
			if result.Stderr != "" {
				a.out.Info("Error: %s...", truncate(result.Stderr, 200))
			}
		}
	}
}

// Save writes the report as indented JSON into dir, named
// test_summary_<unix>.json. A write failure is reported as a console
// warning and never fails the run; the returned path is empty in that
// case. Empty reports are not persisted.
func (a *Aggregator) Save(report *RunReport, dir string) string {
	if report.Summary.TotalCategories == 0 {
		return ""
	}

	path := filepath.Join(dir, fmt.Sprintf("test_summary_%d.json", time.Now().Unix()))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		a.out.Error("✗ Failed to save test report: %v", err)
		return ""
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		a.out.Error("✗ Failed to save test report: %v", err)
		logging.Warn("Report", "Could not persist report: %v", err)
		return ""
	}

	a.out.Success("✓ Test report saved to %s", path)
	return path
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
