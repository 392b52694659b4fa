package keymap

import "fmt"

// Identity is the pass-through part of a layout: it is copied between the
// flat form and the halves without being interpreted.
type Identity struct {
	Name            string
	VendorProductID uint64
	Macros          []string
}

// Clone returns a copy of id that shares no memory with it.
func (id Identity) Clone() Identity {
	id.Macros = append([]string(nil), id.Macros...)
	return id
}

// rowEdge and colEdge name where a row or column edit lands. Columns are
// side-agnostic because every row is stored from the split line outward.
type rowEdge int

const (
	edgeTop rowEdge = iota
	edgeBottom
)

func (e rowEdge) String() string {
	if e == edgeTop {
		return "top"
	}
	return "bottom"
}

type colEdge int

const (
	edgeCenter colEdge = iota
	edgeSides
)

func (e colEdge) String() string {
	if e == edgeCenter {
		return "center"
	}
	return "sides"
}

// HalfMatrix is the editable form of one keyboard half. All layers share the
// same width and height, and the number of layers never changes.
type HalfMatrix struct {
	Identity Identity

	side   Side
	layers []Layer
}

// NewHalfMatrix builds a half from already-ordered layers. Layers are copied.
func NewHalfMatrix(id Identity, side Side, layers []Layer) (*HalfMatrix, error) {
	m := &HalfMatrix{
		Identity: id.Clone(),
		side:     side,
		layers:   make([]Layer, len(layers)),
	}
	for i, layer := range layers {
		m.layers[i] = layer.Clone()
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Side returns which half this matrix represents.
func (m *HalfMatrix) Side() Side {
	return m.side
}

// Layers returns the number of layers.
func (m *HalfMatrix) Layers() int {
	return len(m.layers)
}

// Width returns the row length, taken from the first layer.
func (m *HalfMatrix) Width() int {
	if len(m.layers) == 0 {
		return 0
	}
	return m.layers[0].Width()
}

// Height returns the number of rows, taken from the first layer.
func (m *HalfMatrix) Height() int {
	if len(m.layers) == 0 {
		return 0
	}
	return m.layers[0].Height()
}

// Layer returns a copy of layer i.
func (m *HalfMatrix) Layer(i int) (Layer, error) {
	if i < 0 || i >= len(m.layers) {
		return nil, fmt.Errorf("layer %d out of range [0,%d)", i, len(m.layers))
	}
	return m.layers[i].Clone(), nil
}

// Validate checks that every row of every layer has the same length and every
// layer has the same number of rows.
func (m *HalfMatrix) Validate() error {
	width, height := m.Width(), m.Height()
	for i, layer := range m.layers {
		if layer.Height() != height {
			return fmt.Errorf("%w: layer %d has %d rows, want %d", ErrNotRectangular, i, layer.Height(), height)
		}
		for y, row := range layer {
			if len(row) != width {
				return fmt.Errorf("%w: layer %d row %d has %d keys, want %d", ErrNotRectangular, i, y, len(row), width)
			}
		}
	}
	return nil
}

// ChangeRowsTop inserts n blank rows above every layer, or removes -n rows
// from the top when n is negative.
func (m *HalfMatrix) ChangeRowsTop(n int) error {
	return m.changeRows(n, edgeTop)
}

// ChangeRowsBottom inserts n blank rows below every layer, or removes -n rows
// from the bottom when n is negative.
func (m *HalfMatrix) ChangeRowsBottom(n int) error {
	return m.changeRows(n, edgeBottom)
}

// ChangeColsCenter inserts or removes columns next to the split line, which
// is index 0 of every row on either side.
func (m *HalfMatrix) ChangeColsCenter(n int) error {
	return m.changeCols(n, edgeCenter)
}

// ChangeColsSides inserts or removes columns at the outer edge, the last
// index of every row on either side.
func (m *HalfMatrix) ChangeColsSides(n int) error {
	return m.changeCols(n, edgeSides)
}

// Mirrored returns a copy tagged with the opposite side whose rows are all
// reversed.
func (m *HalfMatrix) Mirrored() *HalfMatrix {
	out := &HalfMatrix{
		Identity: m.Identity.Clone(),
		side:     m.side.Opposite(),
		layers:   make([]Layer, len(m.layers)),
	}
	for i, layer := range m.layers {
		mirrored := make(Layer, len(layer))
		for y, row := range layer {
			mirrored[y] = row.Reversed()
		}
		out.layers[i] = mirrored
	}
	return out
}

// Clone returns a deep copy of m.
func (m *HalfMatrix) Clone() *HalfMatrix {
	out := &HalfMatrix{
		Identity: m.Identity.Clone(),
		side:     m.side,
		layers:   make([]Layer, len(m.layers)),
	}
	for i, layer := range m.layers {
		out.layers[i] = layer.Clone()
	}
	return out
}

func (m *HalfMatrix) checkRows(n int, edge rowEdge) error {
	if n < 0 && -n > m.Height() {
		return &OverRemovalError{Axis: "rows", Edge: edge.String(), Requested: -n, Available: m.Height()}
	}
	return nil
}

func (m *HalfMatrix) checkCols(n int, edge colEdge) error {
	if n < 0 && -n > m.Width() {
		return &OverRemovalError{Axis: "columns", Edge: edge.String(), Requested: -n, Available: m.Width()}
	}
	return nil
}

func (m *HalfMatrix) changeRows(n int, edge rowEdge) error {
	if err := m.checkRows(n, edge); err != nil {
		return err
	}

	width := m.Width()
	for i, layer := range m.layers {
		if n >= 0 {
			added := make(Layer, n)
			for j := range added {
				added[j] = BlankRow(width)
			}
			if edge == edgeTop {
				m.layers[i] = append(added, layer...)
			} else {
				m.layers[i] = append(layer, added...)
			}
			continue
		}

		if edge == edgeTop {
			m.layers[i] = layer[-n:]
		} else {
			m.layers[i] = layer[:len(layer)+n]
		}
	}
	return nil
}

func (m *HalfMatrix) changeCols(n int, edge colEdge) error {
	if err := m.checkCols(n, edge); err != nil {
		return err
	}

	for _, layer := range m.layers {
		for y, row := range layer {
			switch {
			case n >= 0 && edge == edgeCenter:
				layer[y] = append(BlankRow(n), row...)
			case n >= 0:
				layer[y] = append(row, BlankRow(n)...)
			case edge == edgeCenter:
				layer[y] = row[-n:]
			default:
				layer[y] = row[:len(row)+n]
			}
		}
	}
	return nil
}
