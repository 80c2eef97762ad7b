// Package frontmatter models the YAML metadata block at the top of a blog post.
//
// Unlike a plain map[string]any, the Mapping type remembers the order in which
// keys appeared in the source document, so a parse/modify/encode round trip
// leaves untouched fields exactly where the author wrote them.
package frontmatter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies what a front-matter Value holds.
type Kind int

const (
	// KindScalar is a single value: string, number, bool, date, null.
	KindScalar Kind = iota
	// KindList is an ordered sequence of values.
	KindList
	// KindMapping is a nested key/value mapping.
	KindMapping
)

// Value is one front-matter value: a scalar, a list, or a nested mapping.
// Scalars keep the raw source text plus the quoting style and resolved YAML
// tag they were parsed with, so re-serialization does not reinterpret them.
type Value struct {
	Kind    Kind
	Scalar  string
	Style   yaml.Style
	Tag     string
	List    []Value
	Mapping *Mapping
}

// StringValue builds a plain string scalar.
func StringValue(s string) Value {
	return Value{Kind: KindScalar, Scalar: s, Tag: "!!str"}
}

// StringListValue builds a list of plain string scalars.
func StringListValue(items []string) Value {
	list := make([]Value, 0, len(items))
	for _, item := range items {
		list = append(list, StringValue(item))
	}
	return Value{Kind: KindList, List: list}
}

// Mapping is a key/value mapping that preserves insertion order.
type Mapping struct {
	keys   []string
	fields map[string]Value
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{fields: make(map[string]Value)}
}

// Len returns the number of keys in the mapping.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in the order they were first set.
func (m *Mapping) Keys() []string {
	result := make([]string, len(m.keys))
	copy(result, m.keys)
	return result
}

// Get retrieves a value by key.
func (m *Mapping) Get(key string) (Value, bool) {
	val, ok := m.fields[key]
	return val, ok
}

// Set stores a value. Existing keys keep their position, new keys are
// appended at the end.
func (m *Mapping) Set(key string, value Value) {
	if _, exists := m.fields[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.fields[key] = value
}

// ParseMapping parses a YAML mapping while preserving document key order.
func ParseMapping(data []byte) (*Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse front matter: %w", err)
	}

	if len(doc.Content) == 0 {
		// Whitespace/comment-only block
		return NewMapping(), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("front matter is not a mapping")
	}

	val, err := valueFromNode(root)
	if err != nil {
		return nil, err
	}
	return val.Mapping, nil
}

func valueFromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return Value{Kind: KindScalar, Scalar: n.Value, Style: n.Style, Tag: n.ShortTag()}, nil
	case yaml.SequenceNode:
		list := make([]Value, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := valueFromNode(item)
			if err != nil {
				return Value{}, err
			}
			list = append(list, v)
		}
		return Value{Kind: KindList, List: list}, nil
	case yaml.MappingNode:
		mapping := NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := valueFromNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			mapping.Set(n.Content[i].Value, v)
		}
		return Value{Kind: KindMapping, Mapping: mapping}, nil
	case yaml.AliasNode:
		return valueFromNode(n.Alias)
	}
	return Value{}, fmt.Errorf("unsupported YAML node kind %v", n.Kind)
}

// Encode serializes the mapping back to YAML in insertion order.
//
// The output style matches how the blog's front matter is written by hand:
// block lists with the dash at the key's indentation level and nested
// mappings indented by two spaces. The yaml.v3 encoder always indents block
// sequences, so emission is done directly.
func (m *Mapping) Encode() []byte {
	var buf bytes.Buffer
	m.encode(&buf, 0)
	return buf.Bytes()
}

func (m *Mapping) encode(buf *bytes.Buffer, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, key := range m.keys {
		val := m.fields[key]
		switch val.Kind {
		case KindScalar:
			fmt.Fprintf(buf, "%s%s: %s\n", pad, key, renderScalar(val))
		case KindList:
			if len(val.List) == 0 {
				fmt.Fprintf(buf, "%s%s: []\n", pad, key)
				continue
			}
			fmt.Fprintf(buf, "%s%s:\n", pad, key)
			encodeList(buf, val.List, indent)
		case KindMapping:
			if val.Mapping.Len() == 0 {
				fmt.Fprintf(buf, "%s%s: {}\n", pad, key)
				continue
			}
			fmt.Fprintf(buf, "%s%s:\n", pad, key)
			val.Mapping.encode(buf, indent+2)
		}
	}
}

func encodeList(buf *bytes.Buffer, items []Value, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, item := range items {
		switch item.Kind {
		case KindScalar:
			fmt.Fprintf(buf, "%s- %s\n", pad, renderScalar(item))
		case KindList:
			if len(item.List) == 0 {
				buf.WriteString(pad + "- []\n")
				continue
			}
			buf.WriteString(pad + "-\n")
			encodeList(buf, item.List, indent+2)
		case KindMapping:
			if item.Mapping.Len() == 0 {
				buf.WriteString(pad + "- {}\n")
				continue
			}
			// Render the mapping one level deeper, then fold its first
			// line onto the dash: "- key: value".
			var inner bytes.Buffer
			item.Mapping.encode(&inner, indent+2)
			buf.WriteString(pad + "- ")
			buf.Write(inner.Bytes()[indent+2:])
		}
	}
}

// renderScalar renders a scalar value, keeping the quoting style it was
// parsed with. Plain strings that would be misread when re-emitted (empty,
// multiline, leading YAML indicator, bool/number lookalikes) fall back to
// double quotes.
func renderScalar(v Value) string {
	switch v.Style {
	case yaml.DoubleQuotedStyle:
		return strconv.Quote(v.Scalar)
	case yaml.SingleQuotedStyle:
		return "'" + strings.ReplaceAll(v.Scalar, "'", "''") + "'"
	case yaml.LiteralStyle, yaml.FoldedStyle:
		// Block scalars are flattened to a quoted string
		return strconv.Quote(v.Scalar)
	}

	if v.Tag == "!!null" && v.Scalar == "" {
		return "null"
	}
	if v.Tag == "!!str" && needsQuoting(v.Scalar) {
		return strconv.Quote(v.Scalar)
	}
	return v.Scalar
}

// ambiguousPlain lists plain strings that YAML would resolve to a non-string
// type on the next parse.
var ambiguousPlain = map[string]bool{
	"true": true, "false": true,
	"yes": true, "no": true,
	"on": true, "off": true,
	"null": true, "~": true,
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if strings.Contains(s, "\n") {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	if strings.ContainsAny(string(s[0]), "#&*!|>'\"%@`-?:[]{},") {
		return true
	}
	if strings.Contains(s, ": ") || strings.HasSuffix(s, ":") || strings.Contains(s, " #") {
		return true
	}
	if ambiguousPlain[strings.ToLower(s)] {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	return false
}
