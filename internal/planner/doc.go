// Package planner turns the edits requested on the command line into an
// ordered plan of matrix operations.
//
// The order is fixed regardless of how the edits were given: row removals,
// row insertions, column removals, column insertions, then the mirror. The
// planner can also forecast the dimensions after each step and report steps
// that would remove more rows or columns than exist.
//
// Key responsibilities:
//   - Build an EditPlan with ordered operations
//   - Forecast dimensions step by step
//   - Detect conflicts (over-removal) before any matrix is touched
package planner
