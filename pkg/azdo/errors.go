package azdo

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ClientError is the single failure kind surfaced by tools. It covers
// configuration, connection, client creation and upstream call failures.
type ClientError struct {
	Message string
	cause   error
}

func (e *ClientError) Error() string {
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.cause
}

// NewClientError returns a ClientError carrying msg.
func NewClientError(msg string) *ClientError {
	return &ClientError{Message: msg}
}

// WrapClientError returns a ClientError with the given message that keeps
// cause reachable through errors.Is / errors.As.
func WrapClientError(cause error, format string, args ...any) *ClientError {
	return &ClientError{
		Message: fmt.Sprintf(format, args...),
		cause:   errors.WithStack(cause),
	}
}

// AsClientError normalises err into a ClientError. Errors that already carry
// one (possibly wrapped) return it; anything else keeps its own message.
func AsClientError(err error) *ClientError {
	if err == nil {
		return nil
	}
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce
	}
	return &ClientError{Message: err.Error(), cause: err}
}
