package rest

import (
	"fmt"
)

// Err is an error with the http status code it should be served with.
type Err struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}

func (e *Err) Error() string {
	return e.Message
}
