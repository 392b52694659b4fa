package engine

import (
	"github.com/danieljhkim/viasplit/internal/keymap"
	"github.com/danieljhkim/viasplit/internal/layout"
	"github.com/danieljhkim/viasplit/internal/planner"
)

// Snapshot is the state of both halves at one point of an edit.
type Snapshot struct {
	// Label describes the step that produced this state
	Label string `json:"label"`

	// Dimensions of the left half after the step
	Dimensions planner.Dimensions `json:"dimensions"`

	// Pair is a copy of both halves
	Pair *keymap.Pair `json:"-"`
}

// EditResult represents the result of an edit.
type EditResult struct {
	// Name is the keyboard name from the layout
	Name string `json:"name"`

	// Source is the per-half size the layout was split with
	Source planner.Dimensions `json:"source"`

	// Final is the per-half size after all edits
	Final planner.Dimensions `json:"final"`

	// Plan is the executed plan
	Plan *planner.EditPlan `json:"plan"`

	// Steps is the forecast for every operation
	Steps []planner.Step `json:"steps"`

	// Snapshots is filled when the request asked for a trace
	Snapshots []Snapshot `json:"snapshots,omitempty"`

	// Layout is the joined result
	Layout *layout.FlatLayout `json:"-"`

	// Output is the encoded result
	Output []byte `json:"-"`

	// InputDigest and OutputDigest hash the input and output in the same encoding
	InputDigest  string `json:"inputDigest"`
	OutputDigest string `json:"outputDigest"`

	// Unchanged is true when the edits cancel out
	Unchanged bool `json:"unchanged"`

	// OutputPath is the file written (empty if nothing was written)
	OutputPath string `json:"outputPath,omitempty"`

	// Written reports whether the output file was written
	Written bool `json:"written"`

	// Replaced reports whether the write replaced an existing file
	Replaced bool `json:"replaced"`
}

// InspectResult represents a loaded layout and, when it splits, its halves.
type InspectResult struct {
	// Name is the keyboard name from the layout
	Name string `json:"name"`

	// VendorProductID is the layout's vendor/product id
	VendorProductID uint64 `json:"vendorProductId"`

	// Macros is the number of macros in the layout
	Macros int `json:"macros"`

	// KeysPerLayer is the length of every flat layer
	KeysPerLayer []int `json:"keysPerLayer"`

	// Dimensions is the requested per-half size
	Dimensions planner.Dimensions `json:"dimensions"`

	// ExpectedKeys is 2*width*height
	ExpectedKeys int `json:"expectedKeys"`

	// Mismatched lists the layers whose length differs from ExpectedKeys
	Mismatched []int `json:"mismatched"`

	// Pair holds both halves when the layout splits
	Pair *keymap.Pair `json:"-"`
}

// Compatible reports whether the layout split with the requested dimensions.
func (r *InspectResult) Compatible() bool {
	return r.Pair != nil
}
