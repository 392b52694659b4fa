// Package layout converts between the flat VIA layout document and the pair
// of per-half matrices edited by the keymap package.
//
// A flat layer holds 2*width*height keys: the left half's rows first, in
// order, then the right half's rows, each stored from the outer edge toward
// the split line. Split and Join are the only two places that know this.
package layout

import (
	"errors"

	"github.com/danieljhkim/viasplit/internal/keymap"
)

var (
	// ErrIncompatibleDimensions indicates a layer's length does not match 2*width*height.
	ErrIncompatibleDimensions = errors.New("incompatible dimensions")

	// ErrInvalidDimensions indicates a negative or oversized width or height.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrLayerCountMismatch indicates the halves passed to Join disagree on layer count.
	ErrLayerCountMismatch = errors.New("layer count mismatch")
)

// FlatLayout is the VIA layout document. Fields outside these four are not
// carried through.
type FlatLayout struct {
	// Name is the keyboard name
	Name string `json:"name"`

	// VendorProductID is the combined USB vendor and product id
	VendorProductID uint64 `json:"vendorProductId"`

	// Macros is the macro table, passed through untouched
	Macros []string `json:"macros"`

	// Layers holds one flat key list per layer
	Layers [][]string `json:"layers"`
}

// Identity returns the pass-through fields of l.
func (l *FlatLayout) Identity() keymap.Identity {
	return keymap.Identity{
		Name:            l.Name,
		VendorProductID: l.VendorProductID,
		Macros:          append([]string(nil), l.Macros...),
	}
}

// KeysPerLayer returns the length of every layer, in order.
func (l *FlatLayout) KeysPerLayer() []int {
	counts := make([]int, len(l.Layers))
	for i, layer := range l.Layers {
		counts[i] = len(layer)
	}
	return counts
}
