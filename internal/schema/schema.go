// Package schema checks that an input document has the shape of a VIA layout
// before it is decoded.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://viasplit.dev/schema/via-layout.schema.json"

//go:embed layout.schema.json
var layoutSchema []byte

// Validator validates documents against the embedded layout schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded layout schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(layoutSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	s, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

// Validate reports whether data is a JSON document matching the layout schema.
func (v *Validator) Validate(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var instance any
	if err := dec.Decode(&instance); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("invalid JSON: unexpected data after top-level value")
	}
	if err := v.schema.Validate(instance); err != nil {
		return err
	}
	return nil
}
