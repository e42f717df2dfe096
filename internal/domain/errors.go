package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated       = errors.New("not authenticated")
	ErrInvalidState          = errors.New("invalid state")
	ErrDefaultFormatNotFound = errors.New("default page format not found")
	ErrUnsupportedFormat     = errors.New("unsupported output format")
	ErrNotFound              = errors.New("not found")
)

// RemoteServiceError is a failure reported by the remote service.
type RemoteServiceError struct {
	Op      string
	Status  int
	Message string
}

func (e *RemoteServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote %s failed with status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("remote %s failed with status %d: %s", e.Op, e.Status, e.Message)
}
