package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"path/filepath"
	"time"

	"vocatest/internal/config"
	"vocatest/pkg/logging"
)

// TimeoutExitCode is the sentinel exit code for runs that did not produce
// a real process exit status (timeout, launch failure).
const TimeoutExitCode = -1

// killGracePeriod is how long to wait for output pipes to drain after the
// process group has been killed.
const killGracePeriod = 5 * time.Second

// Result captures the outcome of one category execution. Exactly one
// Result exists per category attempted in a run; it is immutable once
// returned.
type Result struct {
	// Category is the name of the executed test category.
	Category string `json:"category"`
	// ExitCode is the subprocess exit status, or TimeoutExitCode when the
	// run timed out or the process could not be launched.
	ExitCode int `json:"exit_code"`
	// Duration is the wall-clock execution time. On timeout it equals the
	// configured timeout.
	Duration time.Duration `json:"duration"`
	// Stdout is the captured standard output.
	Stdout string `json:"stdout"`
	// Stderr is the captured standard error, or the synthesized error text
	// for timeouts and launch failures.
	Stderr string `json:"stderr"`
	// Success is true iff ExitCode is zero.
	Success bool `json:"success"`
}

// MarshalJSON emits Duration as fractional seconds so persisted reports
// stay human-readable.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	return json.Marshal(struct {
		plain
		Duration float64 `json:"duration"`
	}{plain(r), r.Duration.Seconds()})
}

// CategoryRunner executes one named test category and reports its verdict.
// Implementations never return an error: every failure mode is folded into
// a failed Result so the orchestrator can keep going.
type CategoryRunner interface {
	Run(ctx context.Context, category string) Result
}

// PytestRunner runs a category as an external pytest process scoped with
// the category marker.
type PytestRunner struct {
	cfg     *config.RunConfiguration
	verbose bool

	pythonBinary string
	testsDir     string
	reportsDir   string

	// buildCommand assembles the argv for a category. Injectable so tests
	// can substitute an arbitrary command.
	buildCommand func(category string) (string, []string)
}

// NewPytestRunner creates a runner for the given configuration. Verbosity
// changes output detail of the subprocess, never pass/fail semantics.
func NewPytestRunner(cfg *config.RunConfiguration, verbose bool) *PytestRunner {
	r := &PytestRunner{
		cfg:          cfg,
		verbose:      verbose,
		pythonBinary: "python3",
		testsDir:     "tests",
		reportsDir:   filepath.Join("tests", "reports"),
	}
	r.buildCommand = r.pytestCommand
	return r
}

// pytestCommand builds the pytest invocation for a category, including the
// per-category HTML/JSON artifact flags when the reporting configuration
// asks for them. The artifacts are written by pytest itself; the runner
// never parses them.
func (r *PytestRunner) pytestCommand(category string) (string, []string) {
	args := []string{"-m", "pytest", "-m", category}

	if r.verbose {
		args = append(args, "--tb=long", "-v")
	} else {
		args = append(args, "--tb=short", "-q")
	}

	if r.cfg.Reporting.HTMLReport {
		reportFile := filepath.Join(r.reportsDir, category+"_report.html")
		args = append(args, "--html", reportFile, "--self-contained-html")
	}
	if r.cfg.Reporting.JSONReport {
		jsonFile := filepath.Join(r.reportsDir, category+"_results.json")
		args = append(args, "--json-report", "--json-report-file="+jsonFile)
	}

	args = append(args, r.testsDir)
	return r.pythonBinary, args
}

// Run executes the category bounded by the configured timeout. On timeout
// the process group is killed and a Result is synthesized with
// TimeoutExitCode and Duration equal to the timeout; on launch failure a
// Result carries the error text. Run never panics and never returns an
// error to the caller.
func (r *PytestRunner) Run(ctx context.Context, category string) Result {
	timeout := r.cfg.Timeout()
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	name, args := r.buildCommand(category)
	logging.Debug("Runner", "Executing category %s: %s %v", category, name, args)

	cmd := exec.CommandContext(runCtx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// The subprocess may spawn children of its own; run it in its own
	// process group so a timeout takes the whole tree down.
	configureProcAttr(cmd)
	cmd.Cancel = func() error {
		return killProcessTree(cmd)
	}
	cmd.WaitDelay = killGracePeriod

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		logging.Warn("Runner", "Category %s timed out after %v", category, timeout)
		return Result{
			Category: category,
			ExitCode: TimeoutExitCode,
			Duration: timeout,
			Stdout:   stdout.String(),
			Stderr:   "Test execution timed out",
		}
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{
				Category: category,
				ExitCode: exitErr.ExitCode(),
				Duration: elapsed,
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}
		// Launch failure: runner binary missing, context canceled before
		// start, and similar. Synthesize the result instead of propagating.
		logging.Warn("Runner", "Category %s failed to launch: %v", category, err)
		return Result{
			Category: category,
			ExitCode: TimeoutExitCode,
			Duration: 0,
			Stderr:   err.Error(),
		}
	}

	return Result{
		Category: category,
		ExitCode: 0,
		Duration: elapsed,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Success:  true,
	}
}
