// Package apperror holds errors shared by the remote adapters and the
// workflows that call them.
package apperror

import (
	"errors"
	"fmt"
)

// RemoteError reports a failed call to the identity provider or record store.
// Error returns the provider's message unchanged so it can be shown verbatim.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: remote call failed with status %d", e.Op, e.StatusCode)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func NewRemoteError(op string, statusCode int, message string, err error) *RemoteError {
	return &RemoteError{Op: op, StatusCode: statusCode, Message: message, Err: err}
}

// IsRemote reports whether err came from a remote call.
func IsRemote(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr)
}
