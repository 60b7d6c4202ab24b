// Package codec converts framework trees to and from their on-disk encodings.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/ttp/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode serializes root wrapped in the {"tactics": root} document, indented
// with two spaces. JSON output keeps non-ASCII and HTML characters literal.
func Encode(root *domain.Node, format Format) ([]byte, error) {
	doc := domain.Document{Tactics: normalize(root)}

	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	}
}

// Decode parses a framework document and returns its root node.
// Syntax errors and shape mismatches (extra top-level keys, unknown node
// fields, wrong types, missing root) are reported as domain.ErrMalformedDocument.
func Decode(data []byte, format Format) (*domain.Node, error) {
	var raw map[string]any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
		}
	}

	if len(raw) != 1 {
		return nil, fmt.Errorf("%w: expected a single %q key, found %d keys", domain.ErrMalformedDocument, domain.DocumentKey, len(raw))
	}
	if _, ok := raw[domain.DocumentKey]; !ok {
		return nil, fmt.Errorf("%w: missing %q key", domain.ErrMalformedDocument, domain.DocumentKey)
	}

	if err := rejectNulls(raw[domain.DocumentKey]); err != nil {
		return nil, err
	}

	var doc domain.Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if doc.Tactics == nil {
		return nil, fmt.Errorf("%w: %q is empty", domain.ErrMalformedDocument, domain.DocumentKey)
	}

	return normalize(doc.Tactics), nil
}

// rejectNulls reports the first null field or null items entry in a raw
// node. mapstructure would otherwise decode those as zero values.
func rejectNulls(raw any) error {
	node, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	id, _ := node["id"].(string)
	for key, value := range node {
		if value == nil {
			return fmt.Errorf("%w: null %q in node %q", domain.ErrMalformedDocument, key, id)
		}
	}
	items, ok := node["items"].([]any)
	if !ok {
		return nil
	}
	for _, item := range items {
		if item == nil {
			return fmt.Errorf("%w: null entry in items of %q", domain.ErrMalformedDocument, id)
		}
		if err := rejectNulls(item); err != nil {
			return err
		}
	}
	return nil
}

// normalize replaces nil children lists with empty ones so that every node
// serializes an "items" array.
func normalize(root *domain.Node) *domain.Node {
	domain.Walk(root, func(n *domain.Node, _ int) bool {
		if n.Children == nil {
			n.Children = []*domain.Node{}
		}
		return true
	})
	return root
}
