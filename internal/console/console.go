package console

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Console is the output sink handed to every component that talks to the
// user. Components never write to a process-wide singleton; they receive a
// Console explicitly so tests can substitute a silent or capturing sink.
type Console interface {
	// Info prints an informational line.
	Info(format string, args ...interface{})
	// Success prints a positive-outcome line.
	Success(format string, args ...interface{})
	// Warn prints a warning line.
	Warn(format string, args ...interface{})
	// Error prints an error line.
	Error(format string, args ...interface{})
	// Table renders a titled table with the given header and rows.
	Table(title string, header []string, rows [][]string)
	// Panel renders a titled text block; ok selects the accent color.
	Panel(title, body string, ok bool)
	// Writer exposes the underlying writer for components that render
	// their own output (progress bars, spinners).
	Writer() io.Writer
}

// writerConsole implements Console on top of an io.Writer using go-pretty
// for tables and colors.
type writerConsole struct {
	out io.Writer
}

// New creates a Console writing to out.
func New(out io.Writer) Console {
	return &writerConsole{out: out}
}

func (c *writerConsole) Info(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *writerConsole) Success(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s\n", text.FgGreen.Sprintf(format, args...))
}

func (c *writerConsole) Warn(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s\n", text.FgYellow.Sprintf("⚠️  "+format, args...))
}

func (c *writerConsole) Error(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s\n", text.FgRed.Sprintf(format, args...))
}

func (c *writerConsole) Table(title string, header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleRounded)
	if title != "" {
		t.SetTitle(title)
	}

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = text.FgHiCyan.Sprint(h)
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		t.AppendRow(tableRow)
	}

	t.Render()
}

func (c *writerConsole) Panel(title, body string, ok bool) {
	accent := text.FgGreen
	if !ok {
		accent = text.FgRed
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(accent.Sprint(title))
	t.AppendRow(table.Row{body})
	t.Render()
}

func (c *writerConsole) Writer() io.Writer {
	return c.out
}

// silentConsole suppresses all output. Used by tests and by callers that
// have console reporting disabled.
type silentConsole struct{}

// NewSilent creates a Console that discards everything.
func NewSilent() Console {
	return &silentConsole{}
}

func (c *silentConsole) Info(format string, args ...interface{})    {}
func (c *silentConsole) Success(format string, args ...interface{}) {}
func (c *silentConsole) Warn(format string, args ...interface{})    {}
func (c *silentConsole) Error(format string, args ...interface{})   {}
func (c *silentConsole) Table(title string, header []string, rows [][]string) {
}
func (c *silentConsole) Panel(title, body string, ok bool) {}
func (c *silentConsole) Writer() io.Writer                 { return io.Discard }
