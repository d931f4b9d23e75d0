// Package errclass defines stable, machine-readable error classes.
package errclass

import "fmt"

// JGitError is a stable, machine-readable error class.
type JGitError struct {
	Code    string
	Message string
}

func (e *JGitError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *JGitError) Is(target error) bool {
	t, ok := target.(*JGitError)
	return ok && e.Code == t.Code
}

// WithMessage returns a new JGitError with the same Code but a specific message.
func (e *JGitError) WithMessage(msg string) *JGitError {
	return &JGitError{Code: e.Code, Message: msg}
}

// WithMessagef returns a new JGitError with a formatted message.
func (e *JGitError) WithMessagef(format string, args ...any) *JGitError {
	return &JGitError{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// All stable error classes.
var (
	ErrConfigRead        = &JGitError{Code: "E_CONFIG_READ"}
	ErrConfigParse       = &JGitError{Code: "E_CONFIG_PARSE"}
	ErrFormatUnsupported = &JGitError{Code: "E_FORMAT_UNSUPPORTED"}
)
