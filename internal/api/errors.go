package api

import (
	"errors"
	"fmt"
)

// RejectionError is returned when the remote API answered with a non-2xx
// status. Message is the "message" field of the response body, if any. A
// zero StatusCode marks a rejection raised by the client itself: either
// before any request, or because a response body could not be read into the
// expected shape, in which case Err holds the cause.
type RejectionError struct {
	StatusCode int
	Body       []byte
	Message    string
	Err        error
}

func (e *RejectionError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.StatusCode == 0 {
		return "rejected"
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

// FaultError is returned when no response reached the client at all.
type FaultError struct {
	Err error
}

func (e *FaultError) Error() string {
	return e.Err.Error()
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

// IsFault reports whether err is a transport failure rather than a rejection.
func IsFault(err error) bool {
	var fault *FaultError
	return errors.As(err, &fault)
}

// RejectionMessage returns the server-provided message carried by err, or
// false when err is not a rejection or the body had no message.
func RejectionMessage(err error) (string, bool) {
	var rejection *RejectionError
	if !errors.As(err, &rejection) || rejection.Message == "" {
		return "", false
	}
	return rejection.Message, true
}
