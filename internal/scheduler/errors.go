package scheduler

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProcessCount = errors.New("invalid process count")
	ErrInvalidFieldValue   = errors.New("invalid field value")
	ErrInvalidQuantum      = errors.New("invalid quantum")
	ErrUnknownPolicy       = errors.New("unknown policy")
)

// FieldError reports a bad field on a single process. It unwraps to ErrInvalidFieldValue.
type FieldError struct {
	ProcessID string
	Index     int
	Field     string
	Value     string
	Reason    string
}

func (e *FieldError) Error() string {
	who := e.ProcessID
	if who == "" {
		who = fmt.Sprintf("#%d", e.Index+1)
	}
	if e.Value != "" {
		return fmt.Sprintf("%v: process %s: %s %q: %s", ErrInvalidFieldValue, who, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%v: process %s: %s: %s", ErrInvalidFieldValue, who, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidFieldValue }

// Kind maps an error to a stable label, or "" if it is not a validation error.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidProcessCount):
		return "invalid_process_count"
	case errors.Is(err, ErrInvalidFieldValue):
		return "invalid_field_value"
	case errors.Is(err, ErrInvalidQuantum):
		return "invalid_quantum"
	case errors.Is(err, ErrUnknownPolicy):
		return "unknown_policy"
	default:
		return ""
	}
}
