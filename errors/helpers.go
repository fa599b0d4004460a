package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Error matches on code alone, so a bare code can be compared against any
// error that carries it:
//
//	if errors.Is(err, errors.New(errors.CodeFileNotFound)) {
//	    // Handle missing file
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var e errors.Error
//	if errors.As(err, &e) {
//	    code := e.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeNone if the error is nil or no Error is found in its chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeAccessDenied {
//	    // Handle permission problem
//	}
func GetCode(err error) ErrorCode {
	if e, ok := findError(err); ok {
		return e.Code()
	}
	return CodeNone
}

// findError returns the first Error in err's chain, whether it was stored as
// a value or as a non-nil *Error.
func findError(err error) (Error, bool) {
	if err == nil {
		return Error{}, false
	}

	var e Error
	if stderrors.As(err, &e) {
		return e, true
	}

	var p *Error
	if stderrors.As(err, &p) && p != nil {
		return *p, true
	}

	return Error{}, false
}

// HasCode reports whether err carries code. It is shorthand for
// GetCode(err) == code.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
