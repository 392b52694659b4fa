package layout

import (
	"fmt"

	"github.com/danieljhkim/viasplit/internal/keymap"
)

// Join flattens left and right back into one layout. Each layer is the left
// rows in stored order followed by the right rows, each reversed to undo
// Split. Identity fields come from left.
func Join(left, right *keymap.HalfMatrix) (*FlatLayout, error) {
	if left.Layers() != right.Layers() {
		return nil, fmt.Errorf("%w: left has %d, right has %d", ErrLayerCountMismatch, left.Layers(), right.Layers())
	}

	id := left.Identity.Clone()
	out := &FlatLayout{
		Name:            id.Name,
		VendorProductID: id.VendorProductID,
		Macros:          id.Macros,
		Layers:          make([][]string, left.Layers()),
	}
	if out.Macros == nil {
		out.Macros = []string{}
	}

	for i := 0; i < left.Layers(); i++ {
		l, err := left.Layer(i)
		if err != nil {
			return nil, err
		}
		r, err := right.Layer(i)
		if err != nil {
			return nil, err
		}

		keys := make([]string, 0, len(l)*left.Width()+len(r)*right.Width())
		for _, row := range l {
			keys = appendRow(keys, row)
		}
		for _, row := range r {
			keys = appendRow(keys, row.Reversed())
		}
		out.Layers[i] = keys
	}
	return out, nil
}

// JoinPair is Join(p.Left, p.Right).
func JoinPair(p *keymap.Pair) (*FlatLayout, error) {
	return Join(p.Left, p.Right)
}

func appendRow(keys []string, row keymap.Row) []string {
	for _, k := range row {
		keys = append(keys, string(k))
	}
	return keys
}
