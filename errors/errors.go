package errors

import "github.com/jmgilman/go/zasm/result"

// Result is the result type returned by fallible operations in this module.
type Result[S any] = result.Result[S, Error]

// Ok returns a Result holding the success value v.
func Ok[S any](v S) Result[S] {
	return result.Ok[S, Error](v)
}

// Fail returns a failed Result holding an inline Error with code.
//
// Example:
//
//	func (s *Section) At(i int) errors.Result[byte] {
//	    if i >= len(s.data) {
//	        return errors.Fail[byte](errors.CodeOutOfBounds)
//	    }
//	    return errors.Ok(s.data[i])
//	}
func Fail[S any](code ErrorCode) Result[S] {
	return result.Fail[S](New(code))
}

// FailWithMessage returns a failed Result holding an extended Error with code
// and message.
func FailWithMessage[S any](code ErrorCode, message string) Result[S] {
	return result.Fail[S](NewWithMessage(code, message))
}

// Failf returns a failed Result holding an extended Error with a formatted
// message.
func Failf[S any](code ErrorCode, format string, args ...interface{}) Result[S] {
	return result.Fail[S](Newf(code, format, args...))
}

// Unpack converts r to the conventional (value, error) pair. The error is
// nil exactly when r holds a value.
//
// Example:
//
//	addr, err := errors.Unpack(lookup(name))
//	if err != nil {
//	    return err
//	}
func Unpack[S any](r Result[S]) (S, error) {
	if v, ok := r.Get(); ok {
		return v, nil
	}
	var zero S
	return zero, r.Err()
}

// FromPair converts a conventional (value, error) pair to a Result.
// An err that is not an Error is reported with CodeInvalidOperation and its
// text as the message.
func FromPair[S any](v S, err error) Result[S] {
	if err == nil {
		return Ok(v)
	}
	if e, ok := findError(err); ok && e.Failed() {
		return result.Fail[S](e)
	}
	return FailWithMessage[S](CodeInvalidOperation, err.Error())
}
