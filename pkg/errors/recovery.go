// Package errors provides error handling utilities for the resample library.
//
// This file contains panic recovery utilities. The evaluation runner executes
// caller-supplied predictors; a panicking Fit or Predict must not take down
// the whole run, so each split's work is wrapped with SafeExecute and a panic
// becomes that split's recorded error.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is an error created from a recovered panic. It keeps the
// original panic value and the stack trace captured at recovery time.
type PanicError struct {
	// PanicValue is the original value passed to panic()
	PanicValue interface{}

	// StackTrace contains the stack trace at the time of panic
	StackTrace string

	// Operation identifies where the panic was recovered
	Operation string
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// String provides detailed information including the stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a PanicError from a recovered panic value.
func NewPanicError(operation string, panicValue interface{}) error {
	err := &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
	return WithStack(err)
}

// SafeExecute runs fn and converts a panic into a PanicError. An error
// returned by fn is passed through unchanged.
func SafeExecute(operation string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(operation, r)
		}
	}()
	return fn()
}
