package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type rootGlobals struct {
	format   string
	settings string
	debug    bool
	env      map[string]string
}

// withRootGlobals sets the package-level flag and env state for one test
// and restores it afterwards.
func withRootGlobals(t *testing.T, g rootGlobals) {
	t.Helper()
	oldFormat, oldSettings, oldDebug, oldLookup := outputFormat, settingsPath, debugLogging, lookupEnv
	outputFormat = g.format
	settingsPath = g.settings
	debugLogging = g.debug
	lookupEnv = func(key string) (string, bool) {
		v, ok := g.env[key]
		return v, ok
	}

	t.Cleanup(func() {
		outputFormat = oldFormat
		settingsPath = oldSettings
		debugLogging = oldDebug
		lookupEnv = oldLookup
		if f := rootCmd.Flags().Lookup("version"); f != nil {
			_ = f.Value.Set("false")
		}
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
