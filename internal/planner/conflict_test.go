package planner

import (
	"math"
	"strings"
	"testing"
)

func TestEditPlan_Forecast(t *testing.T) {
	plan, err := NewEditPlan(Edits{
		RemoveRowsTop: 1,
		AddRowsBottom: 2,
		AddColsCenter: 1,
		Mirror:        true,
	})
	if err != nil {
		t.Fatalf("NewEditPlan() error = %v", err)
	}

	steps, conflicts := plan.Forecast(Dimensions{Width: 6, Height: 4})
	if len(conflicts) != 0 {
		t.Fatalf("unexpected conflicts: %+v", conflicts)
	}

	want := []Dimensions{
		{Width: 6, Height: 3},
		{Width: 6, Height: 5},
		{Width: 7, Height: 5},
		{Width: 7, Height: 5},
	}
	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(steps))
	}
	for i, s := range steps {
		if s.After != want[i] {
			t.Errorf("step %d (%s) after = %s, want %s", i, s.Operation.Type, s.After, want[i])
		}
	}
}

func TestEditPlan_ForecastConflicts(t *testing.T) {
	tests := []struct {
		name       string
		edits      Edits
		start      Dimensions
		wantOp     string
		wantReason string
		wantSteps  int
	}{
		{
			name:       "too many rows",
			edits:      Edits{RemoveRowsTop: 2, RemoveRowsBottom: 3},
			start:      Dimensions{Width: 5, Height: 4},
			wantOp:     OpRemoveRowsBottom,
			wantReason: "cannot remove 3 rows: only 2 present",
			wantSteps:  1,
		},
		{
			name:       "too many columns",
			edits:      Edits{RemoveColsSides: 6},
			start:      Dimensions{Width: 5, Height: 4},
			wantOp:     OpRemoveColsSides,
			wantReason: "cannot remove 6 columns",
			wantSteps:  0,
		},
		{
			name:      "removing every column is allowed",
			edits:     Edits{RemoveColsSides: 5, AddRowsBottom: 1},
			start:     Dimensions{Width: 5, Height: 4},
			wantSteps: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewEditPlan(tt.edits)
			if err != nil {
				t.Fatalf("NewEditPlan() error = %v", err)
			}
			steps, conflicts := plan.Forecast(tt.start)
			if len(steps) != tt.wantSteps {
				t.Errorf("expected %d steps, got %d", tt.wantSteps, len(steps))
			}
			if tt.wantOp == "" {
				if len(conflicts) != 0 {
					t.Errorf("unexpected conflicts: %+v", conflicts)
				}
				return
			}
			if len(conflicts) != 1 {
				t.Fatalf("expected 1 conflict, got %d", len(conflicts))
			}
			if conflicts[0].Operation.Type != tt.wantOp {
				t.Errorf("conflict op = %s, want %s", conflicts[0].Operation.Type, tt.wantOp)
			}
			if !strings.Contains(conflicts[0].Reason, tt.wantReason) {
				t.Errorf("conflict reason = %q, want it to contain %q", conflicts[0].Reason, tt.wantReason)
			}
		})
	}
}

func TestEditPlan_ForecastEmptyHalfHasNoWidth(t *testing.T) {
	plan, err := NewEditPlan(Edits{RemoveRowsTop: 2, AddRowsTop: 1, RemoveColsCenter: 1})
	if err != nil {
		t.Fatalf("NewEditPlan() error = %v", err)
	}

	steps, conflicts := plan.Forecast(Dimensions{Width: 3, Height: 2})
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if got := steps[0].After; got != (Dimensions{Width: 0, Height: 0}) {
		t.Errorf("after removing every row = %v, want 0x0", got)
	}
	if len(conflicts) != 1 || conflicts[0].Operation.Type != OpRemoveColsCenter {
		t.Fatalf("expected remove_cols_center conflict, got %+v", conflicts)
	}
	if !strings.Contains(conflicts[0].Reason, "only 0 present") {
		t.Errorf("unexpected reason %q", conflicts[0].Reason)
	}
}

func TestEditPlan_ForecastRejectsOverflow(t *testing.T) {
	tests := []struct {
		name       string
		plan       *EditPlan
		start      Dimensions
		wantReason string
	}{
		{
			name:       "oversized count",
			plan:       &EditPlan{Operations: []Operation{{Type: OpAddRowsTop, Count: math.MaxInt}}},
			start:      Dimensions{Width: 2, Height: 2},
			wantReason: "must be between 1 and",
		},
		{
			name:       "rows overflow",
			plan:       &EditPlan{Operations: []Operation{{Type: OpAddRowsBottom, Count: 1}}},
			start:      Dimensions{Width: 2, Height: math.MaxInt},
			wantReason: "cannot add 1 rows",
		},
		{
			name:       "columns overflow",
			plan:       &EditPlan{Operations: []Operation{{Type: OpAddColsSides, Count: 2}}},
			start:      Dimensions{Width: math.MaxInt - 1, Height: 1},
			wantReason: "cannot add 2 columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, conflicts := tt.plan.Forecast(tt.start)
			if len(steps) != 0 {
				t.Errorf("expected no steps, got %+v", steps)
			}
			if len(conflicts) != 1 {
				t.Fatalf("expected one conflict, got %+v", conflicts)
			}
			if !strings.Contains(conflicts[0].Reason, tt.wantReason) {
				t.Errorf("reason = %q, want it to contain %q", conflicts[0].Reason, tt.wantReason)
			}
		})
	}
}
