package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is one mapping specification: an ordered list of target-path to
// entry-value pairs. Order is preserved from the source file because
// entries are applied in order and later entries may extend containers
// earlier entries created.
type Spec struct {
	Entries []SpecEntry
}

// SpecEntry is one mapping rule: write the resolved Value at Target.
type SpecEntry struct {
	Target string
	Value  Entry
}

// LoadFile loads and parses a mapping spec from the given path.
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("mapping file %s: %w", path, err)
	}

	return spec, nil
}

// Parse parses mapping data into a Spec. Decoding goes through the YAML
// node API so that entry order survives; YAML being a superset of JSON,
// the same decode covers both mapping-file formats.
func Parse(data []byte) (*Spec, error) {
	var root yaml.Node

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse mapping: %w", err)
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, fmt.Errorf("mapping is empty")
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("mapping must be an object at the top level")
	}

	spec := &Spec{Entries: make([]SpecEntry, 0, len(doc.Content)/2)}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		keyNode, valNode := doc.Content[i], doc.Content[i+1]

		var target string
		if err := keyNode.Decode(&target); err != nil {
			return nil, fmt.Errorf("invalid target path at line %d: %w", keyNode.Line, err)
		}

		var raw any
		if err := valNode.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid entry value for %q at line %d: %w", target, valNode.Line, err)
		}

		spec.Entries = append(spec.Entries, SpecEntry{
			Target: target,
			Value:  Classify(raw),
		})
	}

	return spec, nil
}
