package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized reports that the backend rejected the stored token. The
// client discards the local credential before returning it.
var ErrUnauthorized = errors.New("unauthenticated: run `bilictl login`")

// ErrNotFound reports that the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// StatusError is a non-2xx backend response outside the mapped sentinels.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}
