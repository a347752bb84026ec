package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Info("hello %s", "world")
	c.Warn("careful")
	c.Error("broken")
	c.Success("done")

	out := buf.String()
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "done")
}

func TestWriterConsoleTable(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Table("Results", []string{"Name", "Status"}, [][]string{
		{"api", "PASS"},
		{"unit", "FAIL"},
	})

	out := buf.String()
	assert.Contains(t, out, "Results")
	assert.Contains(t, out, "api")
	assert.Contains(t, out, "FAIL")
}

func TestWriterConsolePanel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Panel("Summary", "all good", true)
	assert.Contains(t, buf.String(), "all good")
}

func TestSilentConsole(t *testing.T) {
	c := NewSilent()

	// Nothing to assert beyond "does not panic"; the sink drops output.
	c.Info("hidden")
	c.Warn("hidden")
	c.Error("hidden")
	c.Success("hidden")
	c.Table("t", []string{"a"}, [][]string{{"b"}})
	c.Panel("t", "b", false)
	assert.NotNil(t, c.Writer())
}
