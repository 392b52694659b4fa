package layout

import (
	"fmt"
	"math"

	"github.com/danieljhkim/viasplit/internal/keymap"
)

// MaxDimension is the largest width or height a half may have.
const MaxDimension = 1 << 16

// ExpectedKeys returns the number of keys a flat layer holds for halves of
// width x height keys.
func ExpectedKeys(width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return 0, fmt.Errorf("%w: width=%d height=%d exceeds %d", ErrInvalidDimensions, width, height, MaxDimension)
	}
	if height > 0 && width > math.MaxInt/2/height {
		return 0, fmt.Errorf("%w: width=%d height=%d overflows the key count", ErrInvalidDimensions, width, height)
	}
	return 2 * width * height, nil
}

// Split cuts every layer of l into a left and a right half of width x height
// keys. Right rows are reversed so both halves start at the split line. If any
// layer is not exactly 2*width*height keys long nothing is returned.
func Split(l *FlatLayout, width, height int) (*keymap.Pair, error) {
	want, err := ExpectedKeys(width, height)
	if err != nil {
		return nil, err
	}

	for i, layer := range l.Layers {
		if len(layer) != want {
			return nil, fmt.Errorf("%w: layer %d has %d keys, want %d (2 x %d x %d)",
				ErrIncompatibleDimensions, i, len(layer), want, width, height)
		}
	}

	leftLayers := make([]keymap.Layer, 0, len(l.Layers))
	rightLayers := make([]keymap.Layer, 0, len(l.Layers))
	for _, layer := range l.Layers {
		left := make(keymap.Layer, height)
		right := make(keymap.Layer, height)
		for y := 0; y < height; y++ {
			left[y] = toRow(layer[y*width : (y+1)*width])
			right[y] = toRow(layer[(height+y)*width : (height+y+1)*width]).Reversed()
		}
		leftLayers = append(leftLayers, left)
		rightLayers = append(rightLayers, right)
	}

	left, err := keymap.NewHalfMatrix(l.Identity(), keymap.Left, leftLayers)
	if err != nil {
		return nil, fmt.Errorf("failed to build left half: %w", err)
	}
	right, err := keymap.NewHalfMatrix(l.Identity(), keymap.Right, rightLayers)
	if err != nil {
		return nil, fmt.Errorf("failed to build right half: %w", err)
	}
	return keymap.NewPair(left, right)
}

func toRow(keys []string) keymap.Row {
	row := make(keymap.Row, len(keys))
	for i, k := range keys {
		row[i] = keymap.KeyCode(k)
	}
	return row
}
