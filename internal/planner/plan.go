package planner

import (
	"errors"
	"fmt"
)

// MaxCount is the largest number of rows or columns one operation may add
// or remove.
const MaxCount = 1 << 16

// ErrInvalidPlan indicates an operation with an unknown type or an out of
// range count.
var ErrInvalidPlan = errors.New("invalid edit plan")

// Operation type constants
const (
	OpRemoveRowsTop    = "remove_rows_top"
	OpRemoveRowsBottom = "remove_rows_bottom"
	OpAddRowsTop       = "add_rows_top"
	OpAddRowsBottom    = "add_rows_bottom"
	OpRemoveColsCenter = "remove_cols_center"
	OpRemoveColsSides  = "remove_cols_sides"
	OpAddColsCenter    = "add_cols_center"
	OpAddColsSides     = "add_cols_sides"
	OpMirror           = "mirror"
)

// Edits are the requested magnitudes; zero means "not requested".
type Edits struct {
	AddRowsTop       int
	AddRowsBottom    int
	RemoveRowsTop    int
	RemoveRowsBottom int
	AddColsCenter    int
	AddColsSides     int
	RemoveColsCenter int
	RemoveColsSides  int
	Mirror           bool
}

// EditPlan represents the ordered list of operations for one run.
type EditPlan struct {
	// Operations is the ordered list of operations to execute
	Operations []Operation `json:"operations"`
}

// Operation represents a single matrix edit.
type Operation struct {
	// Type is one of the Op* constants
	Type string `json:"type"`

	// Count is the number of rows or columns (always positive; 0 for mirror)
	Count int `json:"count,omitempty"`
}

// NewEditPlan builds the plan for edits in the fixed execution order.
// Negative magnitudes and magnitudes above MaxCount are rejected.
func NewEditPlan(e Edits) (*EditPlan, error) {
	steps := []struct {
		opType string
		count  int
	}{
		{OpRemoveRowsTop, e.RemoveRowsTop},
		{OpRemoveRowsBottom, e.RemoveRowsBottom},
		{OpAddRowsTop, e.AddRowsTop},
		{OpAddRowsBottom, e.AddRowsBottom},
		{OpRemoveColsCenter, e.RemoveColsCenter},
		{OpRemoveColsSides, e.RemoveColsSides},
		{OpAddColsCenter, e.AddColsCenter},
		{OpAddColsSides, e.AddColsSides},
	}

	plan := &EditPlan{Operations: []Operation{}}
	for _, s := range steps {
		if s.count < 0 {
			return nil, fmt.Errorf("%w: %s count %d must not be negative", ErrInvalidPlan, s.opType, s.count)
		}
		if s.count > MaxCount {
			return nil, fmt.Errorf("%w: %s count %d exceeds %d", ErrInvalidPlan, s.opType, s.count, MaxCount)
		}
		if s.count == 0 {
			continue
		}
		plan.AddOperation(Operation{Type: s.opType, Count: s.count})
	}
	if e.Mirror {
		plan.AddOperation(Operation{Type: OpMirror})
	}
	return plan, nil
}

// AddOperation adds an operation to the plan.
func (p *EditPlan) AddOperation(op Operation) {
	p.Operations = append(p.Operations, op)
}

// Validate checks every operation of a plan that was not built by
// NewEditPlan.
func (p *EditPlan) Validate() error {
	for i, op := range p.Operations {
		if err := op.validate(); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return nil
}

func (op Operation) validate() error {
	switch op.Type {
	case OpMirror:
		if op.Count != 0 {
			return fmt.Errorf("%w: %s takes no count, got %d", ErrInvalidPlan, op.Type, op.Count)
		}
		return nil
	case OpRemoveRowsTop, OpRemoveRowsBottom, OpAddRowsTop, OpAddRowsBottom,
		OpRemoveColsCenter, OpRemoveColsSides, OpAddColsCenter, OpAddColsSides:
		if op.Count < 1 || op.Count > MaxCount {
			return fmt.Errorf("%w: %s count %d must be between 1 and %d", ErrInvalidPlan, op.Type, op.Count, MaxCount)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidPlan, op.Type)
	}
}

// IsEmpty returns true if the plan changes nothing.
func (p *EditPlan) IsEmpty() bool {
	return len(p.Operations) == 0
}

// Signed returns the magnitude passed to the matrix editor: negative for
// removals, positive for insertions, 0 for the mirror.
func (op Operation) Signed() int {
	switch op.Type {
	case OpRemoveRowsTop, OpRemoveRowsBottom, OpRemoveColsCenter, OpRemoveColsSides:
		return -op.Count
	case OpMirror:
		return 0
	default:
		return op.Count
	}
}

// Describe returns the caption shown after the operation in verbose mode.
func (op Operation) Describe() string {
	switch op.Type {
	case OpRemoveRowsTop:
		return fmt.Sprintf("Removed %d row(s) from top", op.Count)
	case OpRemoveRowsBottom:
		return fmt.Sprintf("Removed %d row(s) from bottom", op.Count)
	case OpAddRowsTop:
		return fmt.Sprintf("Added %d row(s) to top", op.Count)
	case OpAddRowsBottom:
		return fmt.Sprintf("Added %d row(s) to bottom", op.Count)
	case OpRemoveColsCenter:
		return fmt.Sprintf("Removed %d column(s) from center", op.Count)
	case OpRemoveColsSides:
		return fmt.Sprintf("Removed %d column(s) from sides", op.Count)
	case OpAddColsCenter:
		return fmt.Sprintf("Added %d column(s) to center", op.Count)
	case OpAddColsSides:
		return fmt.Sprintf("Added %d column(s) to sides", op.Count)
	case OpMirror:
		return "Mirrored Layout"
	default:
		return op.Type
	}
}
