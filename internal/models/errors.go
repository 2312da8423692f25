package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMessageNotFound is returned by the notification sink when the message to
// edit no longer exists in the destination chat.
var ErrMessageNotFound = errors.New("message not found")

// NetworkError covers transport failures and per-call timeouts.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-success upstream status, body kept for diagnostics.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d: %s", e.Status, e.Body)
}

// Unauthorized reports whether the status signals a credential problem.
func (e *HTTPError) Unauthorized() bool {
	return e.Status == 401 || e.Status == 403
}

// UnexpectedFormatError is a response body that is not JSON, typically a
// transient HTML error page from an upstream proxy.
type UnexpectedFormatError struct {
	Body string
}

func (e *UnexpectedFormatError) Error() string {
	return fmt.Sprintf("unexpected response format: %.100s", e.Body)
}

// PersistenceError aborts the current tick without a partial save.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
