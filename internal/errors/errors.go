package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a msgpipe error code.
type ErrorCode string

const (
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"   // bad text, nil message, empty search word
	ErrEmptyCollection ErrorCode = "EMPTY_COLLECTION"   // dequeue/pop/peek on an empty queue or stack
	ErrIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE" // update/delete outside the record list
	ErrInternal        ErrorCode = "INTERNAL"
)

// PipeError represents a structured error with code and details.
type PipeError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *PipeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidArgument creates an error for invalid input.
func NewInvalidArgument(msg string) *PipeError {
	return &PipeError{
		Code:    ErrInvalidArgument,
		Message: msg,
	}
}

// NewTextTooLong creates an INVALID_ARGUMENT error for text over the character limit.
func NewTextTooLong(max, actual int) *PipeError {
	return &PipeError{
		Code:    ErrInvalidArgument,
		Message: fmt.Sprintf("text cannot be more than %d characters (got %d)", max, actual),
		Details: map[string]any{"max_chars": max, "actual_chars": actual},
	}
}

// NewEmptyCollection creates an error for reading from an empty queue or stack.
func NewEmptyCollection(collection string) *PipeError {
	return &PipeError{
		Code:    ErrEmptyCollection,
		Message: fmt.Sprintf("%s is empty", collection),
		Details: map[string]any{"collection": collection},
	}
}

// NewIndexOutOfRange creates an error for a record index outside [0, length-1].
func NewIndexOutOfRange(index, length int) *PipeError {
	return &PipeError{
		Code:    ErrIndexOutOfRange,
		Message: fmt.Sprintf("index out of range: %d (have %d messages)", index, length),
		Details: map[string]any{"index": index, "length": length},
	}
}

// NewInternal creates an error for unexpected internal failures.
// The message stays generic; the cause is kept in Details for logging.
func NewInternal(err error) *PipeError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &PipeError{
		Code:    ErrInternal,
		Message: "an internal error occurred",
		Details: details,
	}
}

// Is checks if err (or anything it wraps) is a PipeError with the given code.
func Is(err error, code ErrorCode) bool {
	var pErr *PipeError
	if stderrors.As(err, &pErr) {
		return pErr.Code == code
	}
	return false
}

// Message returns the human-readable part of err, without the code prefix.
func Message(err error) string {
	var pErr *PipeError
	if stderrors.As(err, &pErr) {
		return pErr.Message
	}
	return err.Error()
}
