package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// newTestRootCmd builds an isolated root command with fresh viper state.
func newTestRootCmd(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	resetViper(t)

	cmd := newRootCmd()
	configureRootFlags(cmd)
	configureScanFlags(cmd)
	cmd.AddCommand(subcommands...)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	setConfigDefaults()
	viper.Set(logFilenameKey, stderrLogFilename)

	configReadErr = nil

	t.Cleanup(func() {
		viper.Reset()
		setConfigDefaults()

		configReadErr = nil
	})
}

// writeAssetTree creates the fixture tree used across the command tests.
func writeAssetTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, rel := range []string{
		"arrow-left.svg",
		"home.svg",
		"11-test/11.svg",
		"nested_dir/icon.svg",
		"nested_dir/deep_dir/deep-icon.svg",
		"Cargo.toml",
		"notes.txt",
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("<svg/>"), 0o644))
	}

	return root
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })
}

// loadConfig reads content as pathenum.yaml into the current viper state.
func loadConfig(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())
}
