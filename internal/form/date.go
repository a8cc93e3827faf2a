package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"videoname/internal/util"
)

// DateScalar is one raw date value: epoch milliseconds from the date picker,
// or text.
type DateScalar struct {
	Millis  int64
	Text    string
	IsMilli bool
}

// Millis returns an epoch-millisecond scalar.
func Millis(ms int64) DateScalar {
	return DateScalar{Millis: ms, IsMilli: true}
}

// DateText returns a textual scalar.
func DateText(s string) DateScalar {
	return DateScalar{Text: s}
}

// DateInput is the planned publish date as the picker sent it: a single
// scalar, or a list whose first element is the date.
type DateInput struct {
	Values []DateScalar
	List   bool
}

// SingleDate wraps one scalar.
func SingleDate(v DateScalar) DateInput {
	return DateInput{Values: []DateScalar{v}}
}

// DateList wraps a list of scalars.
func DateList(vs ...DateScalar) DateInput {
	return DateInput{Values: vs, List: true}
}

// Collapse reduces the input to one scalar: the first list element, or the
// scalar itself. An empty list or a missing scalar is absent. Null list
// entries are kept as empty text so a null head still resolves as absent.
func (d DateInput) Collapse() (DateScalar, bool) {
	if len(d.Values) == 0 {
		return DateScalar{}, false
	}
	return d.Values[0], true
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
}

// Resolve converts the scalar to a point in time in loc. Unparseable or
// empty values are absent, as are epoch zero (the picker's cleared value)
// and instants whose year does not fit a four-digit stamp.
func (s DateScalar) Resolve(loc *time.Location) (time.Time, bool) {
	t, ok := s.resolve(loc)
	if !ok || t.Year() < minStampYear || t.Year() > maxStampYear {
		return time.Time{}, false
	}
	return t, true
}

const (
	minStampYear = 0
	maxStampYear = 9999
)

func (s DateScalar) resolve(loc *time.Location) (time.Time, bool) {
	if s.IsMilli {
		if s.Millis == 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(s.Millis).In(loc), true
	}
	text := strings.TrimSpace(s.Text)
	if text == "" {
		return time.Time{}, false
	}
	if len(text) == 8 {
		if t, err := util.ParseDateStamp(text, loc); err == nil {
			return t, true
		}
	}
	if ms, err := strconv.ParseInt(text, 10, 64); err == nil {
		return time.UnixMilli(ms).In(loc), true
	}
	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		return t.In(loc), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UnmarshalJSON accepts null, a number, a string, or an array of those.
func (d *DateInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return err
		}
		out := DateInput{List: true, Values: make([]DateScalar, 0, len(raws))}
		for _, raw := range raws {
			v, ok, err := decodeJSONDate(raw)
			if err != nil {
				return err
			}
			if !ok {
				v = DateText("")
			}
			out.Values = append(out.Values, v)
		}
		*d = out
		return nil
	}
	v, ok, err := decodeJSONDate(data)
	if err != nil {
		return err
	}
	*d = DateInput{}
	if ok {
		*d = SingleDate(v)
	}
	return nil
}

func decodeJSONDate(raw json.RawMessage) (DateScalar, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return DateScalar{}, false, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return DateScalar{}, false, err
		}
		return DateText(s), true, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		// Objects and booleans never resolve to a date.
		return DateText(string(raw)), true, nil
	}
	return numberScalar(n.String()), true, nil
}

// numberScalar reads a numeric literal as epoch milliseconds. Fractions are
// truncated; literals that do not fit stay text and later resolve as absent.
func numberScalar(lit string) DateScalar {
	if ms, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Millis(ms)
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil && !math.IsInf(f, 0) && math.Abs(f) < math.MaxInt64 {
		return Millis(int64(f))
	}
	return DateText(lit)
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (d *DateInput) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*d = DateInput{}
		if v, ok := yamlDate(node); ok {
			*d = SingleDate(v)
		}
		return nil
	case yaml.SequenceNode:
		out := DateInput{List: true, Values: make([]DateScalar, 0, len(node.Content))}
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: plannedPublishDate entries must be scalars", item.Line)
			}
			v, ok := yamlDate(item)
			if !ok {
				v = DateText("")
			}
			out.Values = append(out.Values, v)
		}
		*d = out
		return nil
	default:
		return fmt.Errorf("line %d: plannedPublishDate must be a scalar or a sequence", node.Line)
	}
}

func yamlDate(node *yaml.Node) (DateScalar, bool) {
	switch node.ShortTag() {
	case "!!null":
		return DateScalar{}, false
	case "!!int", "!!float":
		return numberScalar(node.Value), true
	default:
		return DateText(node.Value), true
	}
}

// MarshalJSON writes scalars as numbers or strings and lists as arrays.
func (d DateInput) MarshalJSON() ([]byte, error) {
	vals := make([]any, 0, len(d.Values))
	for _, v := range d.Values {
		if v.IsMilli {
			vals = append(vals, v.Millis)
		} else {
			vals = append(vals, v.Text)
		}
	}
	if d.List {
		return json.Marshal(vals)
	}
	if len(vals) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(vals[0])
}
