package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ensure Record implements the codec interfaces
var (
	_ json.Marshaler   = (*Record)(nil)
	_ json.Unmarshaler = (*Record)(nil)
	_ yaml.Marshaler   = (*Record)(nil)
	_ yaml.Unmarshaler = (*Record)(nil)
)

// MarshalJSON encodes the enumerable keys as a JSON object in key order.
func (r *Record) MarshalJSON() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, k := range r.keys {
		d := r.props[k]
		if !d.Enumerable {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the record with an open record holding the keys
// of a JSON object in document order. Nested values decode as plain Go
// values (map[string]any, []any, float64, ...).
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: got %v", ErrNotObject, tok)
	}

	fresh := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("failed to unmarshal record: unexpected key %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("failed to unmarshal %q: %w", key, err)
		}
		fresh.put(key, open(v))
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}

	r.replace(fresh)
	return nil
}

// MarshalYAML encodes the enumerable keys as a YAML mapping in key order.
func (r *Record) MarshalYAML() (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range r.keys {
		d := r.props[k]
		if !d.Enumerable {
			continue
		}
		var val yaml.Node
		if err := val.Encode(d.Value); err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}

// UnmarshalYAML replaces the record with an open record holding the keys
// of a YAML mapping in document order. Keys pulled in through merge keys
// (<<) follow the explicit ones and never override them.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	fresh := New()
	if err := fresh.decodeMapping(node); err != nil {
		return err
	}
	r.replace(fresh)
	return nil
}

// decodeMapping adds the pairs of a YAML mapping to r. Callers own r.
func (r *Record) decodeMapping(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = resolveAlias(node.Content[0])
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: yaml node kind %d at line %d", ErrNotObject, node.Kind, node.Line)
	}

	var merges []*yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := resolveAlias(node.Content[i]), node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: non-scalar key at line %d", ErrNotObject, keyNode.Line)
		}
		if keyNode.ShortTag() == "!!merge" {
			merges = append(merges, valNode)
			continue
		}
		var v any
		if err := valNode.Decode(&v); err != nil {
			return fmt.Errorf("failed to unmarshal %q: %w", keyNode.Value, err)
		}
		r.put(keyNode.Value, open(v))
	}

	for _, m := range merges {
		m = resolveAlias(m)
		sources := []*yaml.Node{m}
		if m.Kind == yaml.SequenceNode {
			sources = m.Content
		}
		for _, src := range sources {
			merged := New()
			if err := merged.decodeMapping(src); err != nil {
				return fmt.Errorf("invalid merge at line %d: %w", m.Line, err)
			}
			for _, k := range merged.keys {
				// explicit keys and earlier merge sources win
				if _, ok := r.props[k]; !ok {
					r.put(k, merged.props[k])
				}
			}
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// replace swaps in the state of a record nobody else references.
func (r *Record) replace(fresh *Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = fresh.keys
	r.props = fresh.props
	r.nonExtensible = fresh.nonExtensible
}

// Snapshot is the full-fidelity form of a record: every own key with its
// flags, plus extensibility.
type Snapshot struct {
	Extensible bool       `json:"extensible" yaml:"extensible"`
	Properties []Property `json:"properties" yaml:"properties"`
}

// Snapshot captures the record's current state.
func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		Extensible: r.IsExtensible(),
		Properties: r.Properties(),
	}
}

// FromSnapshot rebuilds a record from s. Keys keep the snapshot order.
func FromSnapshot(s Snapshot) (*Record, error) {
	r := New()
	for _, p := range s.Properties {
		if _, dup := r.props[p.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, p.Key)
		}
		r.put(p.Key, p.Descriptor)
	}
	r.nonExtensible = !s.Extensible
	return r, nil
}
