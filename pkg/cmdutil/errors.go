package cmdutil

import "errors"

var (
	// ErrSilent suppresses error printing when the command already reported
	// the failure itself.
	ErrSilent = errors.New("silent")
)

// ExitError wraps an exit code and optional message.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string {
	return e.Msg
}
