package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKeyboard indicates a named profile is not in the config.
var ErrUnknownKeyboard = errors.New("unknown keyboard profile")

// Keyboard holds the per-half matrix dimensions of one keyboard.
type Keyboard struct {
	Width  int `toml:"width" yaml:"width" json:"width"`
	Height int `toml:"height" yaml:"height" json:"height"`
}

// Config is the contents of the profiles file.
//
//	default_keyboard = "corne"
//
//	[keyboards.corne]
//	width = 6
//	height = 4
type Config struct {
	// DefaultKeyboard is used when neither flags nor the layout name select a profile
	DefaultKeyboard string `toml:"default_keyboard" yaml:"default_keyboard" json:"default_keyboard"`

	// Keyboards maps a profile name to its dimensions
	Keyboards map[string]Keyboard `toml:"keyboards" yaml:"keyboards" json:"keyboards"`
}

// DefaultConfig returns an empty configuration.
func DefaultConfig() *Config {
	return &Config{Keyboards: map[string]Keyboard{}}
}

// Load reads the profiles file at path. A missing file yields the default
// configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data according to ext (".toml", ".yaml", ".yml", ".json");
// any other extension is auto-detected.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	default:
		if err := autoDetectAndParse(data, cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Keyboards == nil {
		cfg.Keyboards = map[string]Keyboard{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// autoDetectAndParse attempts to parse the config in multiple formats.
func autoDetectAndParse(data []byte, cfg *Config) error {
	if _, err := toml.Decode(string(data), cfg); err == nil {
		return nil
	}
	if err := json.Unmarshal(data, cfg); err == nil {
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err == nil {
		return nil
	}
	return fmt.Errorf("unable to parse config file (tried TOML, JSON, YAML)")
}

// Validate checks every profile has positive dimensions and that the default
// keyboard, if set, exists.
func (c *Config) Validate() error {
	for _, name := range c.Names() {
		kb := c.Keyboards[name]
		if kb.Width <= 0 || kb.Height <= 0 {
			return fmt.Errorf("keyboard %q: width and height must be positive, got %dx%d", name, kb.Width, kb.Height)
		}
	}
	if c.DefaultKeyboard != "" {
		if _, ok := c.Lookup(c.DefaultKeyboard); !ok {
			return fmt.Errorf("default_keyboard %q: %w", c.DefaultKeyboard, ErrUnknownKeyboard)
		}
	}
	return nil
}

// Names returns the profile names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Keyboards))
	for name := range c.Keyboards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a profile by name, ignoring case and surrounding space.
func (c *Config) Lookup(name string) (Keyboard, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Keyboard{}, false
	}
	if kb, ok := c.Keyboards[name]; ok {
		return kb, true
	}
	for _, candidate := range c.Names() {
		if strings.EqualFold(candidate, name) {
			return c.Keyboards[candidate], true
		}
	}
	return Keyboard{}, false
}

// Resolve picks the profile for a run: the explicitly requested one if set
// (an unknown name is an error), else one named like the layout, else the
// default keyboard. ok is false when nothing matched.
func (c *Config) Resolve(requested, layoutName string) (kb Keyboard, ok bool, err error) {
	if requested != "" {
		kb, ok = c.Lookup(requested)
		if !ok {
			return Keyboard{}, false, fmt.Errorf("%w: %q", ErrUnknownKeyboard, requested)
		}
		return kb, true, nil
	}
	if kb, ok = c.Lookup(layoutName); ok {
		return kb, true, nil
	}
	kb, ok = c.Lookup(c.DefaultKeyboard)
	return kb, ok, nil
}
