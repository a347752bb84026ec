package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFlagsRegistered(t *testing.T) {
	tests := []struct {
		name     string
		defValue string
	}{
		{"config", "test_config.json"},
		{"categories", "[]"},
		{"verbose", "false"},
		{"benchmark", "false"},
		{"check-env", "false"},
		{"cleanup", "false"},
	}

	for _, tc := range tests {
		flag := rootCmd.Flags().Lookup(tc.name)
		require.NotNil(t, flag, "flag --%s must be registered", tc.name)
		assert.Equal(t, tc.defValue, flag.DefValue, "flag --%s default", tc.name)
	}
}

func TestRootFlagShorthands(t *testing.T) {
	assert.Equal(t, "v", rootCmd.Flags().Lookup("verbose").Shorthand)
	assert.Equal(t, "b", rootCmd.Flags().Lookup("benchmark").Shorthand)
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", GetVersion())

	var buf bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)

	assert.Equal(t, "vocatest version 1.2.3\n", buf.String())
}

func TestSelfUpdateRejectsDevVersion(t *testing.T) {
	SetVersion("dev")
	err := runSelfUpdate(newSelfUpdateCmd(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development version")
}

func TestReportedErrorsAreMarked(t *testing.T) {
	err := reported("2 test categories failed")
	assert.True(t, errors.Is(err, errReported))
	assert.Contains(t, err.Error(), "2 test categories failed")
}
