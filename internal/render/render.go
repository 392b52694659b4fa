// Package render draws keyboard layers for terminal previews.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danieljhkim/viasplit/internal/keymap"
)

// Gap is the number of spaces between the two halves.
const Gap = 6

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	keyStyle    = lipgloss.NewStyle().Bold(true)
	blankStyle  = lipgloss.NewStyle().Faint(true)
)

// Cell renders one key as "[ LBL ]" with the label centered.
func Cell(k keymap.KeyCode) string {
	label := lipgloss.PlaceHorizontal(keymap.LabelSize, lipgloss.Center, k.Label())
	cell := "[" + label + "]"
	if k.IsBlank() {
		return blankStyle.Render(cell)
	}
	return keyStyle.Render(cell)
}

// Half renders one layer of one half as it sits on the desk: the left half is
// drawn with the split line on its right edge, the right half with the split
// line on its left edge.
func Half(m *keymap.HalfMatrix, layer int) (string, error) {
	rows, err := m.Layer(layer)
	if err != nil {
		return "", err
	}

	lines := make([]string, len(rows))
	for y, row := range rows {
		if m.Side() == keymap.Left {
			row = row.Reversed()
		}
		var line strings.Builder
		for _, k := range row {
			line.WriteString(" ")
			line.WriteString(Cell(k))
			line.WriteString(" ")
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n"), nil
}

// Layer renders layer i of both halves side by side under a header naming
// the keyboard.
func Layer(left, right *keymap.HalfMatrix, layer int) (string, error) {
	l, err := Half(left, layer)
	if err != nil {
		return "", fmt.Errorf("left half: %w", err)
	}
	r, err := Half(right, layer)
	if err != nil {
		return "", fmt.Errorf("right half: %w", err)
	}

	header := headerStyle.Render(fmt.Sprintf("Keyboard: %s. Layer: %d", left.Identity.Name, layer))
	body := lipgloss.JoinHorizontal(lipgloss.Top, l, strings.Repeat(" ", Gap), r)
	return header + "\n" + body + "\n", nil
}

// Pair renders every layer of p, one after another.
func Pair(p *keymap.Pair) (string, error) {
	var sb strings.Builder
	for i := 0; i < p.Layers(); i++ {
		out, err := Layer(p.Left, p.Right, i)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
