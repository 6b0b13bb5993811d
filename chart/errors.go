package chart

import "fmt"

// ============================================================================
// VALIDATION ERRORS
// ============================================================================

// ValidationError reports a specification that does not conform to the
// grammar's schema: unknown mark type, malformed encoding, missing field.
// The caller must fix the chart definition and retry.
type ValidationError struct {
	Path    string // spec path of the offending entry, e.g. "encoding.x"
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "invalid chart spec: " + e.Message
	}
	return fmt.Sprintf("invalid chart spec at %s: %s", e.Path, e.Message)
}

func validationErrorf(path, format string, args ...any) *ValidationError {
	return &ValidationError{Path: path, Message: fmt.Sprintf(format, args...)}
}
