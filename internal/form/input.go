package form

import (
	"strings"
	"time"
)

// Mode selects where framework values come from.
type Mode string

const (
	// ModePreset reads frameworks from the preset picker selections.
	ModePreset Mode = "preset"
	// ModeCustom parses frameworks from comma-separated free text.
	ModeCustom Mode = "custom"
)

// RawInput is the untyped parameters object the form host submits.
type RawInput struct {
	AccountName        string    `json:"accountName" yaml:"accountName"`
	FrameworkMode      Option    `json:"frameworkMode" yaml:"frameworkMode"`
	Frameworks         []Option  `json:"frameworks" yaml:"frameworks"`
	CustomFrameworks   string    `json:"customFrameworks" yaml:"customFrameworks"`
	PlannedPublishDate DateInput `json:"plannedPublishDate" yaml:"plannedPublishDate"`
	ScriptName         string    `json:"scriptName" yaml:"scriptName"`
	EditorName         string    `json:"editorName,omitempty" yaml:"editorName"`
}

// Normalized holds canonical scalar values ready for validation.
//
// Account, script and editor are untrimmed; Date is the zero time when
// absent; EditorName is empty when absent.
type Normalized struct {
	AccountName string
	Mode        Mode
	Frameworks  []string
	Date        time.Time
	ScriptName  string
	EditorName  string
}

// HasDate reports whether a publish date was supplied.
func (n Normalized) HasDate() bool {
	return !n.Date.IsZero()
}

// ModeOf reads the mode selection. Only an explicit "custom" selects custom
// mode; anything else, including no selection, is preset.
func ModeOf(o Option) Mode {
	if o.Is(string(ModeCustom)) {
		return ModeCustom
	}
	return ModePreset
}

// Normalize converts raw form values into canonical form. It never fails:
// missing or malformed values come out empty or absent. Date strings
// without a zone are read in loc.
func Normalize(raw RawInput, loc *time.Location) Normalized {
	n := Normalized{
		AccountName: raw.AccountName,
		Mode:        ModeOf(raw.FrameworkMode),
		ScriptName:  raw.ScriptName,
		EditorName:  raw.EditorName,
	}
	if n.Mode == ModeCustom {
		n.Frameworks = ParseCustomFrameworks(raw.CustomFrameworks)
	} else {
		n.Frameworks = presetValues(raw.Frameworks)
	}
	if v, ok := raw.PlannedPublishDate.Collapse(); ok {
		if t, ok := v.Resolve(loc); ok {
			n.Date = t
		}
	}
	return n
}

// ParseCustomFrameworks splits comma-separated text into trimmed, non-empty
// entries in their original order. Duplicates are kept.
func ParseCustomFrameworks(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func presetValues(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		if v, ok := o.Scalar(); ok {
			out = append(out, v)
		}
	}
	return out
}
