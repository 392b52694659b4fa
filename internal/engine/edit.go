package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/viasplit/internal/keymap"
	"github.com/danieljhkim/viasplit/internal/layout"
	"github.com/danieljhkim/viasplit/internal/planner"
)

// Edit loads a layout, splits it, applies the plan to both halves, joins
// them and writes the result. Nothing is written unless every step succeeds.
func (e *Engine) Edit(ctx context.Context, req *EditRequest) (*EditResult, error) {
	l, err := e.Load(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}

	dims, err := e.resolveDimensions(req.Width, req.Height, req.Keyboard, l)
	if err != nil {
		return nil, err
	}

	pair, err := layout.Split(l, dims.Width, dims.Height)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("split layout",
		zap.String("name", l.Name),
		zap.Int("layers", pair.Layers()),
		zap.Stringer("dimensions", dims))

	plan := req.Plan
	if plan == nil {
		plan = &planner.EditPlan{Operations: []planner.Operation{}}
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if plan.IsEmpty() {
		e.logger.Debug("no edits requested, re-encoding layout")
	}

	result := &EditResult{
		Name:   l.Name,
		Source: dims,
		Plan:   plan,
	}

	// Check the whole plan before touching either half
	start := dimensionsOf(pair)
	steps, conflicts := plan.Forecast(start)
	result.Steps = steps
	if len(conflicts) > 0 {
		c := conflicts[0]
		e.logger.Debug("plan rejected",
			zap.String("type", c.Operation.Type),
			zap.String("reason", c.Reason))
		return result, conflictError(c, forecastBefore(start, steps))
	}

	if req.Trace {
		result.Snapshots = append(result.Snapshots, Snapshot{
			Label:      "Split",
			Dimensions: start,
			Pair:       pair.Clone(),
		})
	}

	for _, op := range plan.Operations {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := e.executeOperation(pair, op); err != nil {
			return result, err
		}

		after := dimensionsOf(pair)
		e.logger.Debug("applied operation",
			zap.String("type", op.Type),
			zap.Int("count", op.Count),
			zap.Stringer("dimensions", after))

		if req.Trace {
			result.Snapshots = append(result.Snapshots, Snapshot{
				Label:      op.Describe(),
				Dimensions: after,
				Pair:       pair.Clone(),
			})
		}
	}
	result.Final = dimensionsOf(pair)

	joined, err := layout.JoinPair(pair)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	out, err := layout.Encode(joined, req.Compact)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	in, err := layout.Encode(l, req.Compact)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	result.Layout = joined
	result.Output = out
	result.InputDigest = e.hasher.HashBytes(in)
	result.OutputDigest = e.hasher.HashBytes(out)
	result.Unchanged = result.InputDigest == result.OutputDigest

	if req.OutputPath == "" || req.DryRun {
		return result, nil
	}

	if err := e.fs.ValidateOutputPath(req.OutputPath); err != nil {
		return result, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	exists, err := e.fs.Exists(req.OutputPath)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := e.fs.AtomicWrite(req.OutputPath, out, 0644); err != nil {
		return result, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	result.OutputPath = req.OutputPath
	result.Written = true
	result.Replaced = exists

	e.logger.Info("saved layout",
		zap.String("path", req.OutputPath),
		zap.Int("bytes", len(out)),
		zap.Bool("replaced", exists),
		zap.String("digest", result.OutputDigest))
	return result, nil
}

// forecastBefore returns the dimensions in effect before the step that
// follows steps.
func forecastBefore(start planner.Dimensions, steps []planner.Step) planner.Dimensions {
	if len(steps) == 0 {
		return start
	}
	return steps[len(steps)-1].After
}

// conflictError builds the error the matrix editor would raise for the
// conflicting operation.
func conflictError(c planner.Conflict, dims planner.Dimensions) error {
	op := c.Operation
	err := &keymap.OverRemovalError{Requested: op.Count}
	switch op.Type {
	case planner.OpRemoveRowsTop:
		err.Axis, err.Edge, err.Available = "rows", "top", dims.Height
	case planner.OpRemoveRowsBottom:
		err.Axis, err.Edge, err.Available = "rows", "bottom", dims.Height
	case planner.OpRemoveColsCenter:
		err.Axis, err.Edge, err.Available = "columns", "center", dims.Width
	case planner.OpRemoveColsSides:
		err.Axis, err.Edge, err.Available = "columns", "sides", dims.Width
	default:
		return fmt.Errorf("%w: %s", planner.ErrInvalidPlan, c.Reason)
	}
	return err
}
