package naming

import "errors"

// Kind identifies which validation rule rejected an input.
type Kind string

// Rule kinds, reported as the error code of a rejected input.
const (
	// KindAccountName rejects a missing or too short account name.
	KindAccountName Kind = "missing_or_short_account_name"
	// KindMissingDate rejects an input without a publish date.
	KindMissingDate Kind = "missing_date"
	// KindPastDate rejects a publish date before today.
	KindPastDate Kind = "past_date"
	// KindScriptName rejects a missing or too short script name.
	KindScriptName Kind = "missing_or_short_script_name"
	// KindEmptyCustomFramework rejects custom mode with no framework entries.
	KindEmptyCustomFramework Kind = "empty_custom_framework_set"
)

// ValidationError is a user-facing rejection of one input.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation failures, in rule order. Compare with errors.Is.
var (
	ErrShortAccountName  = &ValidationError{KindAccountName, "account name requires at least 2 characters"}
	ErrMissingDate       = &ValidationError{KindMissingDate, "a publish date must be selected"}
	ErrPastDate          = &ValidationError{KindPastDate, "publish date cannot be earlier than today"}
	ErrShortScriptName   = &ValidationError{KindScriptName, "script name requires at least 3 characters"}
	ErrNoCustomFramework = &ValidationError{KindEmptyCustomFramework, "at least one custom framework option is required in custom mode"}
)

// ErrGenerationFailed replaces any internal fault raised while generating a
// name. The fault itself is logged, never returned.
var ErrGenerationFailed = errors.New("failed to generate video name, please check the input data")

// KindOf returns the rule kind of a validation error, or "" for anything
// else.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
