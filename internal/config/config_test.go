package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const tomlConfig = `
default_keyboard = "corne"

[keyboards.corne]
width = 6
height = 4

[keyboards.Lily58]
width = 6
height = 5
`

const yamlConfig = `
default_keyboard: sofle
keyboards:
  sofle:
    width: 6
    height: 5
`

const jsonConfig = `{"keyboards": {"kyria": {"width": 7, "height": 4}}}`

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		ext        string
		keyboard   string
		wantWidth  int
		wantHeight int
	}{
		{"toml", tomlConfig, ".toml", "corne", 6, 4},
		{"yaml", yamlConfig, ".yaml", "sofle", 6, 5},
		{"yml", yamlConfig, ".yml", "sofle", 6, 5},
		{"json", jsonConfig, ".json", "kyria", 7, 4},
		{"auto toml", tomlConfig, "", "lily58", 6, 5},
		{"auto json", jsonConfig, ".conf", "kyria", 7, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data), tt.ext)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			kb, ok := cfg.Lookup(tt.keyboard)
			if !ok {
				t.Fatalf("Lookup(%q) found nothing in %v", tt.keyboard, cfg.Names())
			}
			if kb.Width != tt.wantWidth || kb.Height != tt.wantHeight {
				t.Errorf("got %dx%d, want %dx%d", kb.Width, kb.Height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{"bad toml", "keyboards = [", ".toml"},
		{"bad json", "{", ".json"},
		{"zero width", "[keyboards.a]\nwidth = 0\nheight = 4\n", ".toml"},
		{"unknown default", "default_keyboard = \"nope\"\n", ".toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), tt.ext); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(dir, "missing.toml"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(cfg.Keyboards) != 0 || cfg.DefaultKeyboard != "" {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})

	t.Run("reads file by extension", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		if err := os.WriteFile(path, []byte(yamlConfig), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DefaultKeyboard != "sofle" {
			t.Errorf("DefaultKeyboard = %q, want sofle", cfg.DefaultKeyboard)
		}
	})
}

func TestConfig_Resolve(t *testing.T) {
	cfg, err := Parse([]byte(tomlConfig), ".toml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		name       string
		requested  string
		layoutName string
		wantOK     bool
		wantHeight int
		wantErr    error
	}{
		{"explicit profile wins", "lily58", "Corne", true, 5, nil},
		{"layout name", "", "Lily58", true, 5, nil},
		{"falls back to default", "", "Unknown Board", true, 4, nil},
		{"unknown explicit profile", "nope", "Corne", false, 0, ErrUnknownKeyboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb, ok, err := cfg.Resolve(tt.requested, tt.layoutName)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
			if ok != tt.wantOK {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && kb.Height != tt.wantHeight {
				t.Errorf("Height = %d, want %d", kb.Height, tt.wantHeight)
			}
		})
	}

	empty := DefaultConfig()
	if _, ok, err := empty.Resolve("", "Corne"); ok || err != nil {
		t.Errorf("empty config resolved something: ok=%v err=%v", ok, err)
	}
}
