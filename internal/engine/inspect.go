package engine

import (
	"context"

	"github.com/danieljhkim/viasplit/internal/layout"
)

// Inspect loads a layout and tries to split it. When the dimensions do not
// fit, the result still describes the layout and lists the offending layers
// alongside the split error.
func (e *Engine) Inspect(ctx context.Context, req *InspectRequest) (*InspectResult, error) {
	l, err := e.Load(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}

	result := &InspectResult{
		Name:            l.Name,
		VendorProductID: l.VendorProductID,
		Macros:          len(l.Macros),
		KeysPerLayer:    l.KeysPerLayer(),
		Mismatched:      []int{},
	}

	dims, err := e.resolveDimensions(req.Width, req.Height, req.Keyboard, l)
	if err != nil {
		return result, err
	}
	result.Dimensions = dims
	result.ExpectedKeys, err = layout.ExpectedKeys(dims.Width, dims.Height)
	if err != nil {
		return result, err
	}

	for i, n := range result.KeysPerLayer {
		if n != result.ExpectedKeys {
			result.Mismatched = append(result.Mismatched, i)
		}
	}

	pair, err := layout.Split(l, dims.Width, dims.Height)
	if err != nil {
		return result, err
	}
	result.Pair = pair
	return result, nil
}
