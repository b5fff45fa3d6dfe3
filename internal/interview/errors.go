package interview

import (
	"errors"
	"fmt"
)

// ErrUnexpectedQuestion is returned when an answer is submitted for a
// question other than the one the engine is waiting on.
var ErrUnexpectedQuestion = errors.New("answer does not match the pending question")

// ConfigError reports an invalid Config value. A session with an invalid
// config never starts.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s=%v: %s", e.Field, e.Value, e.Reason)
}

// InvalidStateError reports an operation invoked outside its legal state.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s not allowed in state %s", e.Op, e.State)
}

// IsInvalidState reports whether err is, or wraps, an *InvalidStateError.
func IsInvalidState(err error) bool {
	var ise *InvalidStateError
	return errors.As(err, &ise)
}
