package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a valid empty result, e.g. no forecast generated yet.
	ErrNotFound = errors.New("not found")
	// ErrMalformedResponse marks a payload that violates the expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	ErrTickerRequired = errors.New("ticker is required")
	ErrViewNotReady   = errors.New("stock view is not ready")

	// ErrGenerateInProgress rejects a generate action while one is in flight.
	ErrGenerateInProgress = errors.New("prediction generation already in progress")
)

// RemoteError is returned by every failed call to the prediction service.
// Err is ErrNotFound, ErrMalformedResponse or the transport failure.
type RemoteError struct {
	Op     string
	Status int
	Detail string
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}
