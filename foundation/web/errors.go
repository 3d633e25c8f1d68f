package web

import "github.com/pkg/errors"

// Error carries the HTTP status a request error should be reported with.
type Error struct {
	Err    error
	Status int
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewRequestError wraps a provided error with an HTTP status.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// IsRequestError checks whether err is an *Error anywhere in its chain.
func IsRequestError(err error) (*Error, bool) {
	var webErr *Error
	if errors.As(err, &webErr) {
		return webErr, true
	}

	return nil, false
}
