package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/danieljhkim/viasplit/internal/config"
	"github.com/danieljhkim/viasplit/internal/engine"
	"github.com/danieljhkim/viasplit/internal/fsops"
	"github.com/danieljhkim/viasplit/internal/hash"
	"github.com/danieljhkim/viasplit/internal/layout"
	"github.com/danieljhkim/viasplit/internal/schema"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	profiles, err := loadProfiles()
	if err != nil {
		return nil, err
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to compile layout schema: %w", err)
	}

	fs := fsops.NewRealFS()
	hasher := hash.NewSHA256Hasher()

	return engine.New(fs, hasher, validator, profiles, logger), nil
}

// loadProfiles reads the profiles file named by --config, or the default
// one. A missing file means no profiles.
func loadProfiles() (*config.Config, error) {
	path := configPath
	if path == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			logger.Debug("no home directory, skipping profiles", zap.Error(err))
			return config.DefaultConfig(), nil
		}
		path = paths.Config
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	logger.Debug("loaded profiles", zap.String("path", path), zap.Strings("keyboards", cfg.Names()))
	return cfg, nil
}

// describeError gives split failures the message users see for them.
func describeError(err error) error {
	if errors.Is(err, layout.ErrIncompatibleDimensions) || errors.Is(err, layout.ErrInvalidDimensions) {
		return fmt.Errorf("could not split layout into two halves: %w", err)
	}
	return err
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
