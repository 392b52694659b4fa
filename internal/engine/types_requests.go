package engine

import "github.com/danieljhkim/viasplit/internal/planner"

// EditRequest represents a request to edit a layout.
type EditRequest struct {
	// InputPath is the layout file to read
	InputPath string

	// OutputPath is where the result is written; empty means "do not write"
	OutputPath string

	// Width and Height are the per-half dimensions; 0 means "take from profile"
	Width  int
	Height int

	// Keyboard optionally names the profile to take dimensions from
	Keyboard string

	// Plan is the ordered list of edits; nil means no edits
	Plan *planner.EditPlan

	// Compact selects single-line JSON output
	Compact bool

	// DryRun performs every step except writing the output file
	DryRun bool

	// Trace records a snapshot of both halves after the split and after every operation
	Trace bool
}

// InspectRequest represents a request to load and split a layout without editing it.
type InspectRequest struct {
	// InputPath is the layout file to read
	InputPath string

	// Width and Height are the per-half dimensions; 0 means "take from profile"
	Width  int
	Height int

	// Keyboard optionally names the profile to take dimensions from
	Keyboard string
}
