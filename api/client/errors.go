package client

import (
	"errors"
	"fmt"
)

// ErrEmptyTxHash is returned by FetchTxDetails without making a request.
var ErrEmptyTxHash = errors.New("transaction hash is required")

// FetchError is returned when the api answers with a non-200 status.
type FetchError struct {
	StatusCode int
	Message    string
	// Detail is the message the api put in the error body, if any.
	Detail string
}

func (e *FetchError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Message, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", e.Message, e.StatusCode)
}
