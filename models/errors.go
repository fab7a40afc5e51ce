package models

import "fmt"

// ErrNotFound is returned when no release, or no matching asset, exists.
type ErrNotFound struct {
	message string
}

// NewErrNotFound returns a pointer to a new instance of ErrNotFound.
func NewErrNotFound(message string, args ...interface{}) *ErrNotFound {
	return &ErrNotFound{
		message: fmt.Sprintf(message, args...),
	}
}

func (err *ErrNotFound) Error() string {
	return err.message
}

// ErrInvalid is returned when a caller supplied request is rejected before
// anything is fetched.
type ErrInvalid struct {
	message string
}

// NewErrInvalid returns a pointer to a new instance of ErrInvalid.
func NewErrInvalid(message string, args ...interface{}) *ErrInvalid {
	return &ErrInvalid{
		message: fmt.Sprintf(message, args...),
	}
}

func (err *ErrInvalid) Error() string {
	return err.message
}

// ErrUpstream is returned when an upstream call fails, or its response can't
// be read or decoded. The message is safe to hand back to callers, the
// wrapped cause is for logs.
type ErrUpstream struct {
	message string
	cause   error
}

// NewErrUpstream returns a pointer to a new instance of ErrUpstream wrapping
// cause.
func NewErrUpstream(cause error, message string, args ...interface{}) *ErrUpstream {
	return &ErrUpstream{
		message: fmt.Sprintf(message, args...),
		cause:   cause,
	}
}

func (err *ErrUpstream) Error() string {
	return err.message
}

func (err *ErrUpstream) Unwrap() error {
	return err.cause
}
