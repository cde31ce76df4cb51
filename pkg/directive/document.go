package directive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Namespace is one nested namespace scope in a directive dump.
type Namespace struct {
	Name       string      `yaml:"name" json:"name"`
	Directives []Directive `yaml:"directives" json:"directives"`
}

// Document is the directive dump for one source file, as emitted by the host
// parser: the file-scope directives plus each nested namespace scope.
type Document struct {
	Path       string      `yaml:"path,omitempty" json:"path,omitempty"`
	File       []Directive `yaml:"file,omitempty" json:"file,omitempty"`
	Namespaces []Namespace `yaml:"namespaces,omitempty" json:"namespaces,omitempty"`
}

// Scopes expands the document into its independent scopes, file scope first,
// then namespaces in document order.
func (d *Document) Scopes() []Scope {
	scopes := make([]Scope, 0, len(d.Namespaces)+1)
	scopes = append(scopes, Scope{Kind: ScopeFile, Directives: d.File})
	for _, ns := range d.Namespaces {
		scopes = append(scopes, Scope{
			Kind:       ScopeNamespace,
			Name:       ns.Name,
			Directives: ns.Directives,
		})
	}
	return scopes
}

// validate checks construction-time invariants owned by the producer.
func (d *Document) validate() error {
	for i, dir := range d.File {
		if dir.Target == "" {
			return fmt.Errorf("file scope: directive %d: missing target", i)
		}
	}
	for _, ns := range d.Namespaces {
		for i, dir := range ns.Directives {
			if dir.Target == "" {
				return fmt.Errorf("namespace %q: directive %d: missing target", ns.Name, i)
			}
		}
	}
	return nil
}

// DecodeYAML decodes a directive dump from YAML bytes.
func DecodeYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode directive dump: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeJSON decodes a directive dump from JSON bytes.
func DecodeJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode directive dump: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads a directive dump from disk, choosing the decoder by file
// extension (.json for JSON, anything else is treated as YAML).
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directive dump %s: %w", path, err)
	}

	var doc *Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		doc, err = DecodeJSON(data)
	} else {
		doc, err = DecodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if doc.Path == "" {
		doc.Path = path
	}
	return doc, nil
}
