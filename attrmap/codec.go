// Package attrmap: order-preserving JSON and YAML round-trips for Map.
//
// Standard decoding into map[string]V forgets document order; Map decodes
// the object/mapping keys in document order, so an InsertionOrder Map
// round-trips byte-for-byte key order and a Sorted Map re-sorts on encode.
// Decoded keys pass the same ValidateKey gate as Set.
package attrmap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the Map as a JSON object with keys in policy order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.idx.keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.items[key])
		if err != nil {
			return nil, fmt.Errorf("attrmap: encode %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the Map, recording keys in
// document order. Existing entries are kept; decoded entries overwrite on
// key collision. The receiver must have been constructed with New or a
// From* constructor.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: got %v", ErrBadDocument, tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBadDocument, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("%w: non-string key %v", ErrBadDocument, keyTok)
		}

		var value V
		if err = dec.Decode(&value); err != nil {
			return fmt.Errorf("attrmap: decode %q: %w", key, err)
		}
		if err = m.Set(key, value); err != nil {
			return err
		}
	}

	// Consume the closing brace.
	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	return nil
}

// MarshalYAML encodes the Map as a YAML mapping node with keys in policy
// order.
func (m *Map[V]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range m.idx.keys() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(m.items[key]); err != nil {
			return nil, fmt.Errorf("attrmap: encode %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}

	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the Map, recording keys in
// document order. Same collision and construction rules as UnmarshalJSON.
func (m *Map[V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: yaml kind %d at line %d", ErrBadDocument, value.Kind, value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]

		var decoded V
		if err := valueNode.Decode(&decoded); err != nil {
			return fmt.Errorf("attrmap: decode %q: %w", keyNode.Value, err)
		}
		if err := m.Set(keyNode.Value, decoded); err != nil {
			return err
		}
	}

	return nil
}
