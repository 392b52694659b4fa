package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/viasplit/internal/layout"
)

func decodeFile(t *testing.T, path string) *layout.FlatLayout {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	l, err := layout.Decode(data)
	require.NoError(t, err)
	return l
}

func TestEditCommand_WritesFile(t *testing.T) {
	dir, in := setupTestEnv(t)
	out := filepath.Join(dir, "out.json")

	_, _, err := runCLI(t, dir, "edit", "-i", in, "-o", out, "-w", "2", "-h", "1", "--add-cols-sides", "1")
	require.NoError(t, err)

	l := decodeFile(t, out)
	assert.Equal(t, "Corne", l.Name)
	assert.Equal(t, []string{"KC_A", "KC_B", "KC_NO", "KC_NO", "KC_C", "KC_D"}, l.Layers[0])
	assert.Equal(t, []string{"KC_1", "KC_NO", "KC_NO", "KC_NO", "S(KC_2)", "KC_3"}, l.Layers[1])
}

func TestEditCommand_UnderscoreFlags(t *testing.T) {
	dir, in := setupTestEnv(t)
	out := filepath.Join(dir, "out.json")

	_, _, err := runCLI(t, dir, "edit", "-i", in, "-o", out, "-w", "2", "-h", "1", "--add_cols_center", "1")
	require.NoError(t, err)

	l := decodeFile(t, out)
	assert.Equal(t, []string{"KC_NO", "KC_A", "KC_B", "KC_C", "KC_D", "KC_NO"}, l.Layers[0])
}

func TestEditCommand_Stdout(t *testing.T) {
	dir, in := setupTestEnv(t)

	for _, args := range [][]string{
		{"edit", "-i", in, "-w", "2", "-h", "1", "--mirror"},
		{"edit", "-i", in, "-o", "-", "-w", "2", "-h", "1", "--mirror"},
	} {
		stdout, _, err := runCLI(t, dir, args...)
		require.NoError(t, err)

		l, err := layout.Decode([]byte(stdout))
		require.NoError(t, err)
		assert.Equal(t, []string{"KC_C", "KC_D", "KC_A", "KC_B"}, l.Layers[0])
		assert.True(t, strings.HasPrefix(stdout, "{\n  \"name\""), "expected pretty JSON, got %q", stdout)
	}
}

func TestEditCommand_Compact(t *testing.T) {
	dir, in := setupTestEnv(t)

	stdout, _, err := runCLI(t, dir, "edit", "-i", in, "-w", "2", "-h", "1", "--compact")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
}

func TestEditCommand_VerboseGoesToStderrWithStdoutLayout(t *testing.T) {
	dir, in := setupTestEnv(t)

	stdout, stderr, err := runCLI(t, dir, "edit", "-i", in, "-w", "2", "-h", "1",
		"--rm-rows-bottom", "1", "--add-rows-bottom", "1", "--mirror", "-v", "--preview-layer", "1")
	require.NoError(t, err)

	_, err = layout.Decode([]byte(stdout))
	require.NoError(t, err, "stdout must hold only the layout")

	assert.Contains(t, stderr, "Split Layout:")
	assert.Contains(t, stderr, "Keyboard: Corne. Layer: 0")
	assert.Contains(t, stderr, "Removed 1 row(s) from bottom:")
	assert.Contains(t, stderr, "Added 1 row(s) to bottom:")
	assert.Contains(t, stderr, "Mirrored Layout:")
	assert.Contains(t, stderr, "Keyboard: Corne. Layer: 1")
}

func TestEditCommand_VerboseToStdoutWithFile(t *testing.T) {
	dir, in := setupTestEnv(t)
	out := filepath.Join(dir, "out.json")

	stdout, _, err := runCLI(t, dir, "edit", "-i", in, "-o", out, "-w", "2", "-h", "1", "--add-rows-top", "1", "-v")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Split Layout:")
	assert.Contains(t, stdout, "Added 1 row(s) to top:")
	assert.Contains(t, stdout, "[  A  ]")
}

func TestEditCommand_JSON(t *testing.T) {
	dir, in := setupTestEnv(t)
	out := filepath.Join(dir, "out.json")

	stdout, _, err := runCLI(t, dir, "--json", "edit", "-i", in, "-o", out, "-w", "2", "-h", "1", "--rm-cols-center", "1")
	require.NoError(t, err)

	var summary struct {
		Name    string `json:"name"`
		Written bool   `json:"written"`
		Final   struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"final"`
		Layout *layout.FlatLayout `json:"layout"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, "Corne", summary.Name)
	assert.True(t, summary.Written)
	assert.Equal(t, 1, summary.Final.Width)
	assert.Nil(t, summary.Layout)

	assert.Equal(t, []string{"KC_B", "KC_C"}, decodeFile(t, out).Layers[0])
}

func TestEditCommand_DryRun(t *testing.T) {
	dir, in := setupTestEnv(t)
	out := filepath.Join(dir, "out.json")

	_, _, err := runCLI(t, dir, "edit", "-i", in, "-o", out, "-w", "2", "-h", "1", "--add-rows-top", "1", "--dry-run")
	require.NoError(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "dry run must not write the output")
}

func TestEditCommand_Profiles(t *testing.T) {
	dir, in := setupTestEnv(t)
	out := filepath.Join(dir, "out.json")
	profiles := filepath.Join(dir, "profiles.toml")
	require.NoError(t, os.WriteFile(profiles, []byte("[keyboards.corne]\nwidth = 2\nheight = 1\n"), 0644))

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"edit", "-i", in, "-o", out, "--add-rows-top", "1", "--config", profiles})
	require.NoError(t, rootCmd.Execute())

	l := decodeFile(t, out)
	assert.Len(t, l.Layers[0], 8)
}

func TestEditCommand_Errors(t *testing.T) {
	dir, in := setupTestEnv(t)
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"name": "x"}`), 0644))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing input flag",
			args:    []string{"edit", "-w", "2", "-h", "1"},
			wantErr: `required flag(s) "input" not set`,
		},
		{
			name:    "unreadable input",
			args:    []string{"edit", "-i", filepath.Join(dir, "nope.json"), "-w", "2", "-h", "1"},
			wantErr: "could not read layout",
		},
		{
			name:    "malformed input",
			args:    []string{"edit", "-i", bad, "-w", "2", "-h", "1"},
			wantErr: "malformed layout",
		},
		{
			name:    "missing dimensions",
			args:    []string{"edit", "-i", in},
			wantErr: "missing dimensions",
		},
		{
			name:    "wrong dimensions",
			args:    []string{"edit", "-i", in, "-w", "3", "-h", "1"},
			wantErr: "could not split layout into two halves",
		},
		{
			name:    "over-removal",
			args:    []string{"edit", "-i", in, "-w", "2", "-h", "1", "--rm-cols-sides", "3"},
			wantErr: "cannot remove 3 columns from sides: only 2 present",
		},
		{
			name:    "negative count",
			args:    []string{"edit", "-i", in, "-w", "2", "-h", "1", "--add-rows-top", "-1"},
			wantErr: "must not be negative",
		},
		{
			name:    "oversized count",
			args:    []string{"edit", "-i", in, "-w", "2", "-h", "1", "--add-cols-sides", "70000"},
			wantErr: "add_cols_sides count 70000 exceeds 65536",
		},
		{
			name:    "oversized dimensions",
			args:    []string{"edit", "-i", in, "-w", "4611686018427387904", "-h", "2"},
			wantErr: "could not split layout into two halves: invalid dimensions",
		},
		{
			name:    "missing output directory",
			args:    []string{"edit", "-i", in, "-w", "2", "-h", "1", "-o", filepath.Join(dir, "no", "out.json")},
			wantErr: "could not save layout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, dir, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, formatError(err), "Error: ")
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, "out.json", e.Name())
	}
}
