package naming

import (
	"strings"
	"time"
	"unicode/utf8"

	"videoname/internal/form"
	"videoname/internal/util"
)

// Minimum trimmed lengths, counted in characters.
const (
	// MinAccountNameLen is the shortest accepted account name.
	MinAccountNameLen = 2
	// MinScriptNameLen is the shortest accepted script name.
	MinScriptNameLen = 3
)

// ValidateFields checks account, date and script in that order and returns
// the first violation. today is read in loc at day granularity.
func ValidateFields(in form.Normalized, today time.Time, loc *time.Location) error {
	if trimmedLen(in.AccountName) < MinAccountNameLen {
		return ErrShortAccountName
	}
	if !in.HasDate() {
		return ErrMissingDate
	}
	if util.BeforeDay(in.Date, today, loc) {
		return ErrPastDate
	}
	if trimmedLen(in.ScriptName) < MinScriptNameLen {
		return ErrShortScriptName
	}
	return nil
}

// Validate runs the field rules and then requires at least one framework in
// custom mode.
func Validate(in form.Normalized, today time.Time, loc *time.Location) error {
	if err := ValidateFields(in, today, loc); err != nil {
		return err
	}
	if in.Mode == form.ModeCustom && len(in.Frameworks) == 0 {
		return ErrNoCustomFramework
	}
	return nil
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
