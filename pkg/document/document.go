package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is a flat attribute-value record, optionally carrying nested
// lists of records for multi-level sections (boot devices, profile
// interfaces). All leaf values are strings; typing happens later,
// during validation.
type Entry struct {
	Attrs    map[string]string
	Children map[string][]Entry
}

// Attr returns the named attribute or "" when absent
func (e Entry) Attr(name string) string {
	return e.Attrs[name]
}

// Has reports whether the named attribute was supplied (even if empty)
func (e Entry) Has(name string) bool {
	_, ok := e.Attrs[name]
	return ok
}

// Section is a named list of entries from the document
type Section struct {
	Name    string
	Entries []Entry
}

// Document is the read-only in-memory tree of one fabric.yaml
type Document struct {
	sections map[string]*Section
	order    []string
}

// Section returns the named section if it appears in the document
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// SectionNames returns section names in document order
func (d *Document) SectionNames() []string {
	return d.order
}

// Load reads fabric.yaml (or fabric.yml) from dir and normalizes it
// into sections of trimmed string rows
func Load(dir string) (*Document, error) {
	path := filepath.Join(dir, "fabric.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		alt := filepath.Join(dir, "fabric.yml")
		if _, err2 := os.Stat(alt); err2 != nil {
			return nil, fmt.Errorf("no fabric.yaml found in %s", dir)
		}
		path = alt
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(content)
}

// Parse normalizes raw YAML into a Document
func Parse(content []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := &Document{sections: make(map[string]*Section)}

	if root.Kind == 0 || len(root.Content) == 0 {
		return doc, nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document root must be a map of sections, got %s", kindName(top.Kind))
	}

	for i := 0; i < len(top.Content)-1; i += 2 {
		keyNode := top.Content[i]
		valNode := top.Content[i+1]
		name := strings.TrimSpace(keyNode.Value)

		if _, exists := doc.sections[name]; exists {
			return nil, fmt.Errorf("line %d: duplicate section %q", keyNode.Line, name)
		}

		entries, err := parseEntryList(valNode)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", name, err)
		}

		doc.sections[name] = &Section{Name: name, Entries: entries}
		doc.order = append(doc.order, name)
	}

	return doc, nil
}

// parseEntryList expects a sequence of mappings (or an explicit null
// for an empty section)
func parseEntryList(node *yaml.Node) ([]Entry, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list of entries, got %s", node.Line, kindName(node.Kind))
	}

	var entries []Entry
	for _, item := range node.Content {
		entry, err := parseEntry(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseEntry flattens one mapping node: scalar values become trimmed
// strings, nested sequences of mappings become child entry lists
func parseEntry(node *yaml.Node) (Entry, error) {
	entry := Entry{Attrs: make(map[string]string)}

	if node.Kind != yaml.MappingNode {
		return entry, fmt.Errorf("line %d: expected a mapping, got %s", node.Line, kindName(node.Kind))
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		key := strings.TrimSpace(node.Content[i].Value)
		val := node.Content[i+1]

		switch val.Kind {
		case yaml.ScalarNode:
			if val.Tag == "!!null" {
				entry.Attrs[key] = ""
			} else {
				entry.Attrs[key] = strings.TrimSpace(val.Value)
			}
		case yaml.SequenceNode:
			children, err := parseEntryList(val)
			if err != nil {
				return entry, fmt.Errorf("attribute %q: %w", key, err)
			}
			if entry.Children == nil {
				entry.Children = make(map[string][]Entry)
			}
			entry.Children[key] = children
		default:
			return entry, fmt.Errorf("line %d: attribute %q must be a scalar or a list, got %s",
				val.Line, key, kindName(val.Kind))
		}
	}

	return entry, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "map"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
