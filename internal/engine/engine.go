// Package engine provides the core pipeline for viasplit operations.
//
// The engine sits between the CLI commands and the matrix packages. It reads
// and validates the layout document, splits it into two halves, runs the
// edit plan, joins the halves back together and writes the result.
//
// Key components:
//   - Engine: orchestrates load, split, edit, join and write
//   - Edit: runs an EditPlan against a layout file
//   - Inspect: loads and splits a layout without changing it
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/viasplit/internal/config"
	"github.com/danieljhkim/viasplit/internal/fsops"
	"github.com/danieljhkim/viasplit/internal/hash"
	"github.com/danieljhkim/viasplit/internal/keymap"
	"github.com/danieljhkim/viasplit/internal/layout"
	"github.com/danieljhkim/viasplit/internal/planner"
	"github.com/danieljhkim/viasplit/internal/schema"
)

// Engine orchestrates all viasplit operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs        fsops.FS
	hasher    hash.Hasher
	validator *schema.Validator
	profiles  *config.Config
	logger    *zap.Logger
}

// New creates a new Engine with the given dependencies. A nil profiles or
// logger is replaced by an empty config and a no-op logger.
func New(
	fs fsops.FS,
	hasher hash.Hasher,
	validator *schema.Validator,
	profiles *config.Config,
	logger *zap.Logger,
) *Engine {
	if profiles == nil {
		profiles = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		fs:        fs,
		hasher:    hasher,
		validator: validator,
		profiles:  profiles,
		logger:    logger,
	}
}

// Load reads, validates and decodes the layout at path.
func (e *Engine) Load(ctx context.Context, path string) (*layout.FlatLayout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	if e.validator != nil {
		if err := e.validator.Validate(data); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedLayout, path, err)
		}
	}

	l, err := layout.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedLayout, path, err)
	}

	e.logger.Debug("loaded layout",
		zap.String("path", path),
		zap.String("name", l.Name),
		zap.Int("layers", len(l.Layers)),
		zap.Int("macros", len(l.Macros)))
	return l, nil
}

// resolveDimensions fills width and height that were not given from the
// matching keyboard profile.
func (e *Engine) resolveDimensions(width, height int, keyboard string, l *layout.FlatLayout) (planner.Dimensions, error) {
	dims := planner.Dimensions{Width: width, Height: height}
	if dims.Width != 0 && dims.Height != 0 {
		return dims, nil
	}

	kb, ok, err := e.profiles.Resolve(keyboard, l.Name)
	if err != nil {
		return dims, fmt.Errorf("%w: %w", ErrMissingDimensions, err)
	}
	if !ok {
		return dims, fmt.Errorf("%w: pass --width and --height or add a profile for %q", ErrMissingDimensions, l.Name)
	}

	if dims.Width == 0 {
		dims.Width = kb.Width
	}
	if dims.Height == 0 {
		dims.Height = kb.Height
	}
	e.logger.Debug("resolved dimensions from profile",
		zap.String("keyboard", keyboard),
		zap.String("layout", l.Name),
		zap.Int("width", dims.Width),
		zap.Int("height", dims.Height))
	return dims, nil
}

// executeOperation executes a single operation on both halves.
func (e *Engine) executeOperation(pair *keymap.Pair, op planner.Operation) error {
	switch op.Type {
	case planner.OpRemoveRowsTop, planner.OpAddRowsTop:
		return pair.ChangeRowsTop(op.Signed())
	case planner.OpRemoveRowsBottom, planner.OpAddRowsBottom:
		return pair.ChangeRowsBottom(op.Signed())
	case planner.OpRemoveColsCenter, planner.OpAddColsCenter:
		return pair.ChangeColsCenter(op.Signed())
	case planner.OpRemoveColsSides, planner.OpAddColsSides:
		return pair.ChangeColsSides(op.Signed())
	case planner.OpMirror:
		pair.Mirror()
		return nil
	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}
}

func dimensionsOf(pair *keymap.Pair) planner.Dimensions {
	return planner.Dimensions{Width: pair.Left.Width(), Height: pair.Left.Height()}
}
