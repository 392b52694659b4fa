package keymap

import "strings"

// LabelSize is the number of runes shown for a key in terminal previews.
const LabelSize = 5

// KeyCode is an opaque key binding such as "KC_ESC" or "MACRO(3)".
type KeyCode string

// Blank is the reserved key code meaning "no binding". New rows and columns
// are filled with it.
const Blank KeyCode = "KC_NO"

// labelPrefixes are stripped, in order, before a key is shown.
var labelPrefixes = []string{"S(", "KC_", "FN_"}

// IsBlank reports whether k is the reserved blank key code.
func (k KeyCode) IsBlank() bool {
	return k == Blank
}

// Label returns the short display form of k: blank keys render empty,
// otherwise the common prefixes and trailing ")" are dropped and the result
// is cut to LabelSize runes.
func (k KeyCode) Label() string {
	if k.IsBlank() {
		return ""
	}

	s := string(k)
	for _, prefix := range labelPrefixes {
		for strings.HasPrefix(s, prefix) {
			s = strings.TrimPrefix(s, prefix)
		}
	}
	s = strings.TrimRight(s, ")")

	runes := []rune(s)
	if len(runes) > LabelSize {
		runes = runes[:LabelSize]
	}
	return string(runes)
}

// Row is one row of keys ordered from the split line outward.
type Row []KeyCode

// BlankRow returns a row of width blank keys.
func BlankRow(width int) Row {
	row := make(Row, width)
	for i := range row {
		row[i] = Blank
	}
	return row
}

// Reversed returns a reversed copy of r.
func (r Row) Reversed() Row {
	out := make(Row, len(r))
	for i, k := range r {
		out[len(r)-1-i] = k
	}
	return out
}

// Layer is a rectangular grid of keys for one logical layer of one half.
type Layer []Row

// Height returns the number of rows.
func (l Layer) Height() int {
	return len(l)
}

// Width returns the longest row length.
func (l Layer) Width() int {
	width := 0
	for _, row := range l {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Clone returns a deep copy of l.
func (l Layer) Clone() Layer {
	out := make(Layer, len(l))
	for i, row := range l {
		out[i] = append(Row(nil), row...)
	}
	return out
}
