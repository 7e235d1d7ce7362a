package qerr

import (
	"errors"
	"fmt"
)

// Error is the structured error type used throughout the engine.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the error code from err, or empty if err is not an Error.
func CodeOf(err error) ErrorCode {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code
	}
	return ""
}

// --- Construction errors ---

// DuplicateColumn reports a derived column name that already exists in the
// pipeline scope.
func DuplicateColumn(name string) *Error {
	return &Error{
		Code: ErrCodeDuplicateColumn, Message: fmt.Sprintf("column %q already defined in this pipeline scope", name),
		Details: map[string]any{"column": name},
	}
}

// ArityMismatch reports a callback bound to the wrong number of columns.
func ArityMismatch(want, got int) *Error {
	return &Error{
		Code: ErrCodeArityMismatch, Message: fmt.Sprintf("callback takes %d argument(s) but %d column(s) were bound", want, got),
		Details: map[string]any{"want": want, "got": got},
	}
}

// PipelineClosed reports an attempt to extend a pipeline after its run started.
func PipelineClosed() *Error {
	return &Error{
		Code: ErrCodePipelineClosed, Message: "pipeline has already run; build a new one to add operations",
	}
}

// --- Resolution errors ---

// UnknownColumn reports a column name that resolves to neither a source nor
// a derived column.
func UnknownColumn(name string) *Error {
	return &Error{
		Code: ErrCodeUnknownColumn, Message: fmt.Sprintf("unknown column %q", name),
		Details: map[string]any{"column": name},
	}
}

// TypeMismatch reports a column whose value type differs from the expected
// type. The column name may be empty when only the argument position is
// known; callers enrich it via WithDetail.
func TypeMismatch(name, want, got string) *Error {
	e := &Error{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("type mismatch: expected %s, got %s", want, got),
		Details: map[string]any{"want": want, "got": got},
	}
	if name != "" {
		e.Details["column"] = name
	}
	return e
}

// --- Execution errors ---

// Worker wraps an error raised inside a parallel worker.
func Worker(err error) *Error {
	return &Error{
		Code: ErrCodeWorkerFailed, Message: "worker aborted the run",
		Cause: err,
	}
}

// Internal reports a violated engine invariant.
func Internal(message string) *Error {
	return &Error{Code: ErrCodeInternal, Message: message}
}
