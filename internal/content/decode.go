package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers a document format from a file extension. It returns "" when unknown.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yml", ".yaml":
		return FormatYAML
	}
	return ""
}

// FormatFromContentType infers a document format from an HTTP Content-Type header.
func FormatFromContentType(contentType string) Format {
	contentType = strings.ToLower(contentType)
	switch {
	case strings.Contains(contentType, "json"):
		return FormatJSON
	case strings.Contains(contentType, "yaml"):
		return FormatYAML
	}
	return ""
}

// Decode reads a document in the given format. An empty format means JSON.
func Decode(r io.Reader, format Format, collection string) (*Document, error) {
	switch format {
	case FormatJSON, "":
		return DecodeJSON(r, collection)
	case FormatYAML:
		return DecodeYAML(r, collection)
	}
	return nil, fmt.Errorf("unsupported document format %q", format)
}

// DecodeJSON reads the sections of collection. Section order follows the key order of the source.
func DecodeJSON(r io.Reader, collection string) (*Document, error) {
	var root map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("json.Decode > %w", err)
	}
	raw, ok := root[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, collection)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	token, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("collection %s: dec.Token > %w", collection, err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("collection %s must be an object of sections", collection)
	}

	var sections []Section
	for dec.More() {
		token, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("collection %s: dec.Token > %w", collection, err)
		}
		key := token.(string)

		var cards []Card
		if err := dec.Decode(&cards); err != nil {
			return nil, fmt.Errorf("section %s: dec.Decode > %w", key, err)
		}
		sections = appendSection(sections, Section{Key: key, Cards: cards})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("collection %s: dec.Token > %w", collection, err)
	}

	return newDocument(collection, sections)
}

// DecodeYAML reads the same schema as DecodeJSON from a YAML document.
func DecodeYAML(r io.Reader, collection string) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("yaml.Decode > %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document must be a mapping")
	}

	collectionNode := mappingValue(root.Content[0], collection)
	if collectionNode == nil {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, collection)
	}
	if collectionNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("collection %s must be a mapping of sections", collection)
	}

	var sections []Section
	for i := 0; i+1 < len(collectionNode.Content); i += 2 {
		key := collectionNode.Content[i].Value
		var cards []Card
		if err := collectionNode.Content[i+1].Decode(&cards); err != nil {
			return nil, fmt.Errorf("section %s: node.Decode > %w", key, err)
		}
		sections = appendSection(sections, Section{Key: key, Cards: cards})
	}

	return newDocument(collection, sections)
}

func (c *Card) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: card must be a mapping", value.Line)
	}

	card := Card{
		Phrases: make(map[string]string, len(value.Content)/2),
		Options: make(map[string][]string),
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i].Value, value.Content[i+1]
		if lang, ok := strings.CutPrefix(key, optionsPrefix); ok {
			var options []string
			if err := node.Decode(&options); err != nil {
				return fmt.Errorf("field %s: node.Decode > %w", key, err)
			}
			card.Options[lang] = options
			continue
		}

		switch {
		case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str":
			card.Phrases[key] = node.Value
		case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null":
			// same as a JSON null: present but empty, so the phrase counts as missing
			card.Phrases[key] = ""
		default:
			return fmt.Errorf("line %d: field %s must be a string", node.Line, key)
		}
	}
	*c = card
	return nil
}

func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// appendSection keeps the first position of a repeated key and the last value.
func appendSection(sections []Section, section Section) []Section {
	for i := range sections {
		if sections[i].Key == section.Key {
			sections[i] = section
			return sections
		}
	}
	return append(sections, section)
}

func newDocument(collection string, sections []Section) (*Document, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("collection %s: %w", collection, ErrNoSections)
	}
	return &Document{
		Collection: collection,
		Sections:   sections,
	}, nil
}
