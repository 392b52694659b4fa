package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decode parses a layout document. Unknown fields are ignored.
func Decode(data []byte) (*FlatLayout, error) {
	var l FlatLayout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if l.Macros == nil {
		l.Macros = []string{}
	}
	if l.Layers == nil {
		l.Layers = [][]string{}
	}
	return &l, nil
}

// Encode serializes l, indented with two spaces unless compact is set. HTML
// characters in key codes and macros are written as-is.
func Encode(l *FlatLayout, compact bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("failed to encode layout: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
