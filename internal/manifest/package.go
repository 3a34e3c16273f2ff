package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Package is a parsed package.json. Only the name and engines fields are
// interpreted; everything else is carried through untouched.
type Package struct {
	fields map[string]interface{}
}

// Load reads and parses a package.json file.
func Load(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return p, nil
}

// Parse parses raw package.json bytes.
func Parse(data []byte) (*Package, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("unmarshaling JSON: %w", err)
	}
	// "null" is valid JSON but leaves the map nil.
	if fields == nil {
		return nil, fmt.Errorf("manifest is not a JSON object")
	}
	return &Package{fields: fields}, nil
}

// Name returns the manifest's name field, or "" if unset.
func (p *Package) Name() string {
	name, _ := p.fields["name"].(string)
	return name
}

// SetName sets or replaces the manifest's name field.
func (p *Package) SetName(name string) {
	p.fields["name"] = name
}

// EngineConstraint returns the engines.node version constraint, or "" if
// the manifest declares none.
func (p *Package) EngineConstraint() string {
	engines, ok := p.fields["engines"].(map[string]interface{})
	if !ok {
		return ""
	}
	constraint, _ := engines["node"].(string)
	return constraint
}

// Bytes serializes the manifest with stable 2-space indentation and a
// trailing newline. Object keys come out in Go's sorted-key order.
func (p *Package) Bytes() ([]byte, error) {
	data, err := json.MarshalIndent(p.fields, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the manifest back to path, fully overwriting the file.
func (p *Package) Save(path string) error {
	data, err := p.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
