package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport means the request never produced a response
	ErrTransport = errors.New("transport failure")

	// ErrStatus means the server answered with a non-2xx status
	ErrStatus = errors.New("unexpected status")

	// ErrDecode means the body was absent or not the expected JSON
	ErrDecode = errors.New("malformed response")
)

// StatusError carries the status of a non-2xx response. It matches ErrStatus
// with errors.Is.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: GET %s returned %s", ErrStatus, e.URL, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}

// Class names the failure class of err for logs: "transport", "status",
// "decode" or "unknown".
func Class(err error) string {
	switch {
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrStatus):
		return "status"
	case errors.Is(err, ErrDecode):
		return "decode"
	default:
		return "unknown"
	}
}
