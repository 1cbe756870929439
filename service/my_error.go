package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrStore means that the registry store could not be read, written or decoded.
	ErrStore = "store_error"
	// ErrBadParameter means that a request or a configuration value is invalid.
	ErrBadParameter = "bad_parameter"
)

// MyError is the error type shared by myregistrar packages.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is the cause. It is logged but never serialized.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{Code: code, Message: message, Inner: inner}
}

// NewStoreError wraps a registry store failure.
func NewStoreError(message string, inner error) *MyError {
	return wrapMyError(ErrStore, message, inner)
}

// NewBadParameterError wraps an invalid value.
func NewBadParameterError(message string, inner error) *MyError {
	return wrapMyError(ErrBadParameter, message, inner)
}

// wrapMyError keeps the code of an inner MyError instead of stacking a second one.
func wrapMyError(code, message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(code, message, inner)
}

func (e MyError) Error() string {
	if e.Inner == nil {
		return fmt.Sprintf("%s %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
}

func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns the first MyError in the chain of err, or nil.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsMyError reports whether err carries a MyError with the given code.
func IsMyError(err error, code string) bool {
	e := ToMyError(err)
	return e != nil && e.Code == code
}

func IsStoreError(err error) bool {
	return IsMyError(err, ErrStore)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}
