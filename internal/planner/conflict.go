package planner

import (
	"fmt"
	"math"
)

// Dimensions is the width and height of one half.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// normalized reports a half without rows as zero wide, since width is
// measured on the first row.
func (d Dimensions) normalized() Dimensions {
	if d.Height == 0 {
		d.Width = 0
	}
	return d
}

// Step is one operation with the dimensions forecast after it runs.
type Step struct {
	Operation Operation  `json:"operation"`
	After     Dimensions `json:"after"`
}

// Conflict represents an operation that cannot run on the forecast matrix.
type Conflict struct {
	// Operation is the offending operation
	Operation Operation

	// Reason is a human-readable explanation of the conflict
	Reason string
}

// Forecast walks the plan from the starting dimensions of one half and
// returns the dimensions after every step, plus the steps that cannot run:
// invalid operations, removals of more than exists, and additions that would
// overflow. Forecasting stops at the first conflict since later
// dimensions are meaningless.
func (p *EditPlan) Forecast(start Dimensions) ([]Step, []Conflict) {
	steps := make([]Step, 0, len(p.Operations))
	cur := start.normalized()

	for _, op := range p.Operations {
		if err := op.validate(); err != nil {
			return steps, []Conflict{{Operation: op, Reason: err.Error()}}
		}

		next := cur
		switch op.Type {
		case OpRemoveRowsTop, OpRemoveRowsBottom, OpAddRowsTop, OpAddRowsBottom:
			if op.Signed() > 0 && next.Height > math.MaxInt-op.Count {
				return steps, []Conflict{{
					Operation: op,
					Reason:    fmt.Sprintf("cannot add %d rows to %d", op.Count, cur.Height),
				}}
			}
			next.Height += op.Signed()
		case OpRemoveColsCenter, OpRemoveColsSides, OpAddColsCenter, OpAddColsSides:
			if op.Signed() > 0 && next.Width > math.MaxInt-op.Count {
				return steps, []Conflict{{
					Operation: op,
					Reason:    fmt.Sprintf("cannot add %d columns to %d", op.Count, cur.Width),
				}}
			}
			next.Width += op.Signed()
		}

		if next.Height < 0 {
			return steps, []Conflict{{
				Operation: op,
				Reason:    fmt.Sprintf("cannot remove %d rows: only %d present", op.Count, cur.Height),
			}}
		}
		if next.Width < 0 {
			return steps, []Conflict{{
				Operation: op,
				Reason:    fmt.Sprintf("cannot remove %d columns: only %d present", op.Count, cur.Width),
			}}
		}

		next = next.normalized()
		steps = append(steps, Step{Operation: op, After: next})
		cur = next
	}
	return steps, nil
}
