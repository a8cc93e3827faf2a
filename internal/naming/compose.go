package naming

import (
	"strings"

	"videoname/internal/form"
	"videoname/internal/util"
)

const (
	// Separator joins segments of a video name.
	Separator = "-"
	// FrameworkSeparator joins framework values inside their segment.
	FrameworkSeparator = ","
)

// Segments returns the present name segments in fixed order: account,
// frameworks, date, script, editor. Optional segments that are empty are
// left out rather than kept as empty strings.
func Segments(in form.Normalized) []string {
	parts := make([]string, 0, 5)
	parts = append(parts, strings.TrimSpace(in.AccountName))
	if len(in.Frameworks) > 0 {
		parts = append(parts, strings.Join(in.Frameworks, FrameworkSeparator))
	}
	if in.HasDate() {
		parts = append(parts, util.FormatDateStamp(in.Date))
	}
	parts = append(parts, strings.TrimSpace(in.ScriptName))
	if editor := strings.TrimSpace(in.EditorName); editor != "" {
		parts = append(parts, editor)
	}
	return parts
}

// Compose builds the video name. in must already have passed Validate.
func Compose(in form.Normalized) string {
	return strings.Join(Segments(in), Separator)
}
