package errors

import "fmt"

// New creates an inline Error holding only code. It does not allocate.
// The message reported by the error is the default message of the code.
//
// Example:
//
//	err := errors.New(errors.CodeFileNotFound)
func New(code ErrorCode) Error {
	return Error{code: code}
}

// NewWithMessage creates an extended Error holding code and a custom message.
// It performs exactly one allocation.
//
// Example:
//
//	err := errors.NewWithMessage(errors.CodeLabelAlreadyBound, "label 'foo' already bound at 0x10")
func NewWithMessage(code ErrorCode, message string) Error {
	return Error{ext: &errorExt{code: code, message: message}}
}

// Newf creates an extended Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeOutOfBounds, "index %d out of range (len %d)", i, n)
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return NewWithMessage(code, fmt.Sprintf(format, args...))
}
