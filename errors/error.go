package errors

import "log/slog"

// Error is a compact error value carrying an ErrorCode and, optionally, a
// custom message.
//
// An Error has one of two representations, fixed at construction:
//   - inline: only the code is stored and no memory is allocated
//   - extended: the code and message live in a single heap record
//
// The zero value is an inline error with CodeNone, meaning "no error".
//
// Error is meant to be passed by value. Copies of an extended error share its
// record; the record is immutable and unexported, so sharing is never
// observable. Use Clone to obtain a copy with its own record. The record is
// released by the garbage collector once no copy refers to it.
type Error struct {
	// code is meaningful only when ext is nil.
	code ErrorCode
	ext  *errorExt
}

// errorExt is the record behind an extended Error. It is never modified
// after construction.
type errorExt struct {
	code    ErrorCode
	message string
}

// Code returns the error code regardless of representation.
func (e Error) Code() ErrorCode {
	if e.ext != nil {
		return e.ext.code
	}
	return e.code
}

// Name returns the symbolic name of the error code.
// It panics if the code is not a member of the catalog.
func (e Error) Name() string {
	return e.Code().Name()
}

// Message returns the custom message of an extended error, or the default
// message of the code otherwise.
func (e Error) Message() string {
	if e.ext != nil {
		return e.ext.message
	}
	return e.code.Message()
}

// Extended reports whether e carries a custom message.
func (e Error) Extended() bool {
	return e.ext != nil
}

// Equal reports whether e has the given code. The message is ignored, so two
// extended errors with the same code and different messages both equal it.
func (e Error) Equal(code ErrorCode) bool {
	return e.Code() == code
}

// Failed reports whether e represents an actual failure, i.e. its code is
// not CodeNone.
func (e Error) Failed() bool {
	return e.Code() != CodeNone
}

// Clone returns a copy of e. An extended error is given a new record holding
// the same code and message.
func (e Error) Clone() Error {
	if e.ext == nil {
		return e
	}
	ext := *e.ext
	return Error{ext: &ext}
}

// Error returns the string representation of the error.
// Format: "[Name] message".
func (e Error) Error() string {
	return "[" + e.Name() + "] " + e.Message()
}

// Is reports whether target is an Error with the same code. It lets
// errors.Is match on code alone:
//
//	if errors.Is(err, errors.New(errors.CodeFileNotFound)) { ... }
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return e.Code() == t.Code()
	case *Error:
		return t != nil && e.Code() == t.Code()
	}
	return false
}

// Err returns e as an error, or nil if e does not represent a failure.
// Use it when handing an Error to code that compares against nil:
//
//	return errors.New(code).Err()
func (e Error) Err() error {
	if !e.Failed() {
		return nil
	}
	return e
}

// LogValue implements slog.LogValuer so the error logs as a group of
// code, name and message attributes.
func (e Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("code", int(e.Code())),
		slog.String("name", e.Name()),
		slog.String("message", e.Message()),
	)
}
