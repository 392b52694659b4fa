package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const testLayout = `{
  "name": "Corne",
  "vendorProductId": 1178684161,
  "macros": [""],
  "layers": [
    ["KC_A", "KC_B", "KC_C", "KC_D"],
    ["KC_1", "KC_NO", "S(KC_2)", "KC_3"]
  ]
}`

// setupTestEnv writes testLayout to a temp directory and returns the
// directory and the layout path.
func setupTestEnv(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "corne.json")
	if err := os.WriteFile(path, []byte(testLayout), 0644); err != nil {
		t.Fatalf("Failed to write layout: %v", err)
	}
	return dir, path
}

// resetFlags puts every flag of cmd and its children back to its default so
// package-level flag variables do not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command with args and a profiles file that does
// not exist, returning what was written to stdout and stderr.
func runCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var bufOut, bufErr bytes.Buffer
	rootCmd.SetOut(&bufOut)
	rootCmd.SetErr(&bufErr)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(dir, "missing.toml")))

	err := rootCmd.Execute()
	return bufOut.String(), bufErr.String(), err
}
