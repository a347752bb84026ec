package orchestrator

import (
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"

	"vocatest/internal/console"
	"vocatest/internal/runner"
)

// ProgressObserver receives run lifecycle events. Implementations must be
// safe to call from the orchestrating goroutine only; the orchestrator never
// invokes an observer concurrently.
type ProgressObserver interface {
	RunStart(categories []string)
	CategoryStart(category string)
	CategoryDone(category string, result runner.Result, completed, total int)
	RunDone()
}

type noopObserver struct{}

// NewNoopObserver returns an observer that discards every event.
func NewNoopObserver() ProgressObserver {
	return noopObserver{}
}

func (noopObserver) RunStart(_ []string)                              {}
func (noopObserver) CategoryStart(_ string)                           {}
func (noopObserver) CategoryDone(_ string, _ runner.Result, _, _ int) {}
func (noopObserver) RunDone()                                         {}

// consoleObserver renders a live progress bar plus per-category status
// lines to the console.
type consoleObserver struct {
	out     console.Console
	pw      progress.Writer
	tracker *progress.Tracker
}

// NewConsoleObserver returns an observer that writes run progress to out.
func NewConsoleObserver(out console.Console) ProgressObserver {
	return &consoleObserver{out: out}
}

func (c *consoleObserver) RunStart(categories []string) {
	c.pw = progress.NewWriter()
	c.pw.SetOutputWriter(c.out.Writer())
	c.pw.SetAutoStop(false)
	c.pw.SetTrackerLength(30)
	c.pw.SetUpdateFrequency(100 * time.Millisecond)
	c.pw.Style().Visibility.ETA = false
	c.pw.Style().Visibility.Time = true

	c.tracker = &progress.Tracker{
		Message: "Running test categories",
		Total:   int64(len(categories)),
		Units:   progress.UnitsDefault,
	}
	c.pw.AppendTracker(c.tracker)
	go c.pw.Render()
}

func (c *consoleObserver) CategoryStart(category string) {
	c.out.Info("\n📝 Running %s tests", strings.ToUpper(category))
}

func (c *consoleObserver) CategoryDone(category string, result runner.Result, completed, total int) {
	if result.Success {
		c.out.Success("✅ %s tests passed (%.2fs)", category, result.Duration.Seconds())
	} else {
		c.out.Error("❌ %s tests failed (exit code %d)", category, result.ExitCode)
	}
	if c.tracker != nil {
		c.tracker.Increment(1)
	}
}

func (c *consoleObserver) RunDone() {
	if c.tracker != nil {
		c.tracker.MarkAsDone()
	}
	if c.pw != nil {
		c.pw.Stop()
	}
}
