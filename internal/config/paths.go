// Package config manages viasplit configuration and filesystem paths.
//
// Configuration is an optional profiles file that records the matrix
// dimensions of known keyboards, so width and height do not have to be passed
// on every run. The default location is ~/.viasplit/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by viasplit.
type Paths struct {
	// Root is the base directory for viasplit data (default: ~/.viasplit)
	Root string

	// Config is the path to the profiles file
	Config string
}

// DefaultPaths returns the default paths for viasplit.
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return PathsFor(filepath.Join(home, ".viasplit")), nil
}

// PathsFor returns the paths rooted at root.
func PathsFor(root string) *Paths {
	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.toml"),
	}
}
