package construct

import (
	"errors"
	"fmt"
)

// WriteError reports a failed write to the output target (closed descriptor,
// broken pipe, ...). It is the only error kind the router produces; it is
// returned to the caller of Display unchanged and never retried.
type WriteError struct {
	Op  string // Terminal operation that failed (e.g. "write_line", "clear_last_lines")
	Err error  // Underlying writer error
}

func (e *WriteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("construct: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("construct: %s", e.Op)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsWriteError checks if an error is, or wraps, a WriteError.
func IsWriteError(err error) bool {
	var writeErr *WriteError
	return errors.As(err, &writeErr)
}
