package keymap

import "fmt"

// Pair is the left and right half of one layout, edited together. The two
// halves never share memory.
type Pair struct {
	Left  *HalfMatrix
	Right *HalfMatrix
}

// NewPair checks that left and right are tagged correctly and hold the same
// number of layers.
func NewPair(left, right *HalfMatrix) (*Pair, error) {
	if left.Side() != Left || right.Side() != Right {
		return nil, fmt.Errorf("%w: got %s/%s, want left/right", ErrSideMismatch, left.Side(), right.Side())
	}
	if left.Layers() != right.Layers() {
		return nil, fmt.Errorf("%w: left has %d, right has %d", ErrLayerCountMismatch, left.Layers(), right.Layers())
	}
	return &Pair{Left: left, Right: right}, nil
}

// Layers returns the number of layers of the pair.
func (p *Pair) Layers() int {
	return p.Left.Layers()
}

// ChangeRowsTop applies HalfMatrix.ChangeRowsTop to both halves.
func (p *Pair) ChangeRowsTop(n int) error {
	return p.both(
		func(m *HalfMatrix) error { return m.checkRows(n, edgeTop) },
		func(m *HalfMatrix) error { return m.ChangeRowsTop(n) },
	)
}

// ChangeRowsBottom applies HalfMatrix.ChangeRowsBottom to both halves.
func (p *Pair) ChangeRowsBottom(n int) error {
	return p.both(
		func(m *HalfMatrix) error { return m.checkRows(n, edgeBottom) },
		func(m *HalfMatrix) error { return m.ChangeRowsBottom(n) },
	)
}

// ChangeColsCenter applies HalfMatrix.ChangeColsCenter to both halves.
func (p *Pair) ChangeColsCenter(n int) error {
	return p.both(
		func(m *HalfMatrix) error { return m.checkCols(n, edgeCenter) },
		func(m *HalfMatrix) error { return m.ChangeColsCenter(n) },
	)
}

// ChangeColsSides applies HalfMatrix.ChangeColsSides to both halves.
func (p *Pair) ChangeColsSides(n int) error {
	return p.both(
		func(m *HalfMatrix) error { return m.checkCols(n, edgeSides) },
		func(m *HalfMatrix) error { return m.ChangeColsSides(n) },
	)
}

// Mirror swaps the halves and reverses each: the old right half, mirrored,
// becomes the left one and vice versa. Both results are computed from the
// halves as they were before the call.
func (p *Pair) Mirror() {
	left, right := p.Right.Mirrored(), p.Left.Mirrored()
	p.Left, p.Right = left, right
}

// Clone returns a deep copy of p.
func (p *Pair) Clone() *Pair {
	return &Pair{Left: p.Left.Clone(), Right: p.Right.Clone()}
}

// both runs check on each half first so that an edit rejected by either half
// changes neither.
func (p *Pair) both(check, apply func(*HalfMatrix) error) error {
	for _, m := range []*HalfMatrix{p.Left, p.Right} {
		if err := check(m); err != nil {
			return fmt.Errorf("%s half: %w", m.Side(), err)
		}
	}
	for _, m := range []*HalfMatrix{p.Left, p.Right} {
		if err := apply(m); err != nil {
			return fmt.Errorf("%s half: %w", m.Side(), err)
		}
	}
	return nil
}
