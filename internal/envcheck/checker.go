package envcheck

import (
	"context"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"vocatest/internal/config"
	"vocatest/internal/console"
	"vocatest/internal/vocab"
	"vocatest/pkg/logging"

	"github.com/briandowns/spinner"
)

// ReachabilityTimeout bounds the readiness probe against the target server.
const ReachabilityTimeout = 5 * time.Second

// Component names, in the order they are checked and rendered.
const (
	ComponentAPIServer    = "API Server"
	ComponentDependencies = "Dependencies"
	ComponentTestData     = "Test Data"
	ComponentReportsDir   = "Reports Directory"
)

// requiredModules are the Python modules the test content imports. The
// dependency check fails if any of them is not resolvable.
var requiredModules = []string{"pytest", "requests", "faker"}

// ComponentResult is the verdict for one readiness component.
type ComponentResult struct {
	Name   string
	Passed bool
}

// Result is the full readiness breakdown. Overall is the logical AND of
// every component.
type Result struct {
	Components []ComponentResult
	Overall    bool
}

// Component returns the verdict for a named component, false if unknown.
func (r Result) Component(name string) bool {
	for _, c := range r.Components {
		if c.Name == name {
			return c.Passed
		}
	}
	return false
}

// Checker verifies that the environment is ready for a test run. It never
// returns an error: every probe failure is folded into a failed component.
type Checker struct {
	cfg    *config.RunConfiguration
	client *vocab.Client
	out    console.Console

	// rootDir is the directory containing the tests/ tree.
	rootDir string
	// pythonBinary is the interpreter used for the dependency probe.
	pythonBinary string
	// dependencyProbe is injectable for tests.
	dependencyProbe func(ctx context.Context) error
}

// New creates a Checker for the given configuration.
func New(cfg *config.RunConfiguration, client *vocab.Client, out console.Console) *Checker {
	c := &Checker{
		cfg:          cfg,
		client:       client,
		out:          out,
		rootDir:      ".",
		pythonBinary: "python3",
	}
	c.dependencyProbe = c.probePythonModules
	return c
}

// Check runs all readiness components and renders the breakdown. A failing
// overall result means the run must not proceed to category execution.
func (c *Checker) Check(ctx context.Context) Result {
	c.out.Info("\n🔍 Checking Test Environment")

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(c.out.Writer()))
	s.Suffix = " Running environment checks..."
	s.Start()

	result := Result{
		Components: []ComponentResult{
			{Name: ComponentAPIServer, Passed: c.checkAPIServer(ctx)},
			{Name: ComponentDependencies, Passed: c.checkDependencies(ctx)},
			{Name: ComponentTestData, Passed: c.checkTestDataStructure()},
			{Name: ComponentReportsDir, Passed: c.checkReportsDirectory()},
		},
	}
	s.Stop()

	result.Overall = true
	rows := make([][]string, 0, len(result.Components))
	for _, comp := range result.Components {
		status := "✓ PASS"
		if !comp.Passed {
			status = "✗ FAIL"
			result.Overall = false
		}
		rows = append(rows, []string{comp.Name, status})
	}
	c.out.Table("Environment Check Results", []string{"Component", "Status"}, rows)

	if !result.Overall {
		c.out.Error("\n❌ Environment check failed. Please fix the issues above before running tests.")
	}
	return result
}

// checkAPIServer probes the server root with a bounded request; only an
// exact 200 passes. Transport failures count as a failed component rather
// than an error.
func (c *Checker) checkAPIServer(ctx context.Context) bool {
	status, err := c.client.Ping(ctx, ReachabilityTimeout)
	if err != nil {
		logging.Debug("EnvCheck", "API server probe failed: %v", err)
		return false
	}
	return status == http.StatusOK
}

// checkDependencies verifies the test runner and its supporting modules
// are resolvable in the current environment.
func (c *Checker) checkDependencies(ctx context.Context) bool {
	if err := c.dependencyProbe(ctx); err != nil {
		logging.Debug("EnvCheck", "dependency probe failed: %v", err)
		return false
	}
	return true
}

func (c *Checker) probePythonModules(ctx context.Context) error {
	if _, err := exec.LookPath(c.pythonBinary); err != nil {
		return err
	}

	probeCtx, cancel := context.WithTimeout(ctx, ReachabilityTimeout)
	defer cancel()

	script := "import " + requiredModules[0]
	for _, mod := range requiredModules[1:] {
		script += ", " + mod
	}
	return exec.CommandContext(probeCtx, c.pythonBinary, "-c", script).Run()
}

// checkTestDataStructure confirms the required support directories exist.
func (c *Checker) checkTestDataStructure() bool {
	required := []string{
		"tests",
		filepath.Join("tests", "factories"),
		filepath.Join("tests", "utils"),
		filepath.Join("tests", "reports"),
	}
	for _, dir := range required {
		if _, err := os.Stat(filepath.Join(c.rootDir, dir)); err != nil {
			return false
		}
	}
	return true
}

// checkReportsDirectory creates the reports directory if absent; an
// existing or newly-created directory passes.
func (c *Checker) checkReportsDirectory() bool {
	reportsDir := filepath.Join(c.rootDir, "tests", "reports")
	if _, err := os.Stat(reportsDir); err == nil {
		return true
	}
	return os.MkdirAll(reportsDir, 0755) == nil
}

// ReportsDir returns the reports directory path under the checker's root.
func (c *Checker) ReportsDir() string {
	return filepath.Join(c.rootDir, "tests", "reports")
}
