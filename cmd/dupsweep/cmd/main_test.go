package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the package-level flag variables, which persist
// between Execute calls on the shared rootCmd.
func resetFlags(t *testing.T) {
	t.Helper()
	cfgFile = ""
	logLevel = ""
	logFormat = ""
	cleanSubdirs = false
	dryRun = false
	noColor = false
}

// executeRoot runs rootCmd with args, feeding stdin to the prompt, and
// returns everything written to stdout and stderr.
func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))

	err := rootCmd.Execute()
	return out.String(), err
}

func writeSized(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0644))
}

func TestExecute(t *testing.T) {
	// Execute() calls os.Exit(1) on error, so only its presence is checked here.
	assert.NotNil(t, Execute)
}

func TestVersionVariables(t *testing.T) {
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, Commit, "Commit should not be empty")
}

func TestCLIFlagsVariables(t *testing.T) {
	resetFlags(t)

	assert.Equal(t, "", cfgFile, "cfgFile should default to empty")
	assert.Equal(t, "", logLevel)
	assert.Equal(t, "", logFormat)
	assert.False(t, cleanSubdirs)
	assert.False(t, dryRun)
	assert.False(t, noColor)
}

func TestGetCLIOverrides(t *testing.T) {
	resetFlags(t)
	defer resetFlags(t)

	logLevel = "debug"
	logFormat = "json"
	cleanSubdirs = true
	dryRun = true
	noColor = true

	assert.Equal(t, CLIOverrides{
		LogLevel:     "debug",
		LogFormat:    "json",
		CleanSubdirs: true,
		DryRun:       true,
		NoColor:      true,
	}, GetCLIOverrides())
}
