package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"cliconf-demo", "--help"})

	require.NoError(t, err, "asking for help should not be an error")
	require.Contains(t, out.String(), "usage: cliconf-demo")
	require.Contains(t, out.String(), "--threads")
	require.NotContains(t, out.String(), "--dump-state",
		"hidden options must not show up in the help text")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Write a config file and point the program at it explicitly; the
	// command line should still win for options given on both.
	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, "demo.conf")
	err := os.WriteFile(cfgPath, []byte("threads = 9\ndefine = alpha\n"), 0600)
	require.NoError(t, err, "failed to set up config file")

	out := &bytes.Buffer{}
	args := []string{"cliconf-demo", "--config", cfgPath, "foo"}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.NoError(t, runErr)
	want := "threads: 9\noutput: out.txt\ndefine: alpha\noperand: foo\n"
	require.Equal(t, want, out.String())
}

func TestRun_ArgvBeatsConfigFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, "demo.conf")
	err := os.WriteFile(cfgPath, []byte("threads = 9\n"), 0600)
	require.NoError(t, err, "failed to set up config file")

	out := &bytes.Buffer{}
	args := []string{"cliconf-demo", "--config", cfgPath, "-t", "2"}

	runErr := run(out, args)

	require.NoError(t, runErr)
	require.Contains(t, out.String(), "threads: 2\n")
}

func TestRun_UnknownOption(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"cliconf-demo", "--no-such-option"})

	require.Error(t, err)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected an *ExitError")
	require.Equal(t, 2, exitErr.Code, "argument errors should exit with code 2")
	require.Contains(t, exitErr.Message, "no-such-option")
}

func TestRun_ExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	args := []string{"cliconf-demo", "--config", "does-not-exist.conf"}

	err := run(out, args)

	require.Error(t, err)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected an *ExitError")
	require.Equal(t, 1, exitErr.Code)
}

func TestTerminalWidth(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	require.Equal(t, 132, terminalWidth())

	t.Setenv("COLUMNS", "not-a-number")
	require.Equal(t, 80, terminalWidth())

	t.Setenv("COLUMNS", "")
	require.Equal(t, 80, terminalWidth())
}
