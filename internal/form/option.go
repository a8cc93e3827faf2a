package form

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OptionKind tags which shape a selection value arrived in.
type OptionKind uint8

const (
	// OptionNone is an absent or null selection.
	OptionNone OptionKind = iota
	// OptionText is a bare string selection.
	OptionText
	// OptionObject is a `{label, value}` option object.
	OptionObject
)

// Option is one selection value from a picker widget. Pickers hand back
// either the bare option value or the whole option object; both are decoded
// into this union at the boundary and read back through Scalar.
type Option struct {
	Kind  OptionKind
	Text  string
	Label string
	Value string
}

// Text returns a bare string selection.
func Text(s string) Option {
	return Option{Kind: OptionText, Text: s}
}

// Choice returns an option object selection.
func Choice(label, value string) Option {
	return Option{Kind: OptionObject, Label: label, Value: value}
}

// Scalar maps the selection to its canonical value. Objects yield their
// value member, bare strings yield themselves. Anything else, including an
// object whose value is empty, yields false.
func (o Option) Scalar() (string, bool) {
	switch o.Kind {
	case OptionText:
		return o.Text, o.Text != ""
	case OptionObject:
		return o.Value, o.Value != ""
	default:
		return "", false
	}
}

// Is reports whether the selection's scalar equals value.
func (o Option) Is(value string) bool {
	s, ok := o.Scalar()
	return ok && s == value
}

type optionObject struct {
	Label json.RawMessage `json:"label"`
	Value json.RawMessage `json:"value"`
}

// UnmarshalJSON accepts null, a string, a number, a boolean, or an object
// with a `value` member. Other shapes decode as no selection.
func (o *Option) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*o = Option{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = Text(s)
		return nil
	case data[0] == '{':
		var obj optionObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*o = Choice(rawScalar(obj.Label), rawScalar(obj.Value))
		return nil
	case bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")):
		*o = Text(string(data))
		return nil
	default:
		// Numbers read as their literal text; arrays are dropped.
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			*o = Option{}
			return nil
		}
		*o = Text(n.String())
		return nil
	}
}

// rawScalar reads a JSON value member as text: strings unquoted, numbers
// and booleans verbatim, everything else empty.
func rawScalar(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	default:
		return string(raw)
	}
}

// UnmarshalYAML accepts a scalar or a mapping with a `value` key.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*o = Option{}
			return nil
		}
		*o = Text(node.Value)
		return nil
	case yaml.MappingNode:
		var obj struct {
			Label string    `yaml:"label"`
			Value yaml.Node `yaml:"value"`
		}
		if err := node.Decode(&obj); err != nil {
			return err
		}
		value := ""
		if obj.Value.Kind == yaml.ScalarNode && obj.Value.ShortTag() != "!!null" {
			value = obj.Value.Value
		}
		*o = Choice(obj.Label, value)
		return nil
	default:
		return fmt.Errorf("line %d: option must be a scalar or a mapping", node.Line)
	}
}

// MarshalJSON writes the selection back in the shape it arrived in.
func (o Option) MarshalJSON() ([]byte, error) {
	switch o.Kind {
	case OptionText:
		return json.Marshal(o.Text)
	case OptionObject:
		return json.Marshal(struct {
			Label string `json:"label,omitempty"`
			Value string `json:"value"`
		}{o.Label, o.Value})
	default:
		return []byte("null"), nil
	}
}
