// Package keymap holds the per-half matrix representation of a split keyboard
// layout and the structural edits applied to it.
//
// Every row of every layer is stored from the split line outward: index 0 is
// always the key nearest the keyboard's vertical center, on both the left and
// the right half. The layout package is the only place that translates between
// this order and the physical storage order of the flat VIA array.
//
// Key components:
//   - HalfMatrix: one half's layers plus the row/column editor
//   - Pair: the left and right halves edited together
//   - KeyCode: an opaque key identifier with a short display label
package keymap
