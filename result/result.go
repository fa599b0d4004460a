package result

import "fmt"

// Result holds exactly one of a success value of type S or a failure value of
// type F. Which side is held is fixed when the Result is constructed.
//
// The zero Result holds the zero value of S on the success side.
//
// Accessing the side that is not held is a programming error. Value, Ptr and
// Err panic with an *AccessError in that case, in every build.
type Result[S, F any] struct {
	value   S
	failure F
	failed  bool
}

// Ok returns a Result holding the success value v.
//
// Example:
//
//	func parse(s string) result.Result[int, errors.Error] {
//	    return result.Ok[int, errors.Error](len(s))
//	}
func Ok[S, F any](v S) Result[S, F] {
	return Result[S, F]{value: v}
}

// Fail returns a Result holding the failure value f.
func Fail[S, F any](f F) Result[S, F] {
	return Result[S, F]{failure: f, failed: true}
}

// HasValue reports whether r holds a success value.
func (r Result[S, F]) HasValue() bool {
	return !r.failed
}

// Value returns the success value. It panics if r holds a failure.
func (r Result[S, F]) Value() S {
	if r.failed {
		panic(&AccessError{Side: SideValue})
	}
	return r.value
}

// Ptr returns a pointer to the success value held in r, allowing the value to
// be modified in place. It panics if r holds a failure.
func (r *Result[S, F]) Ptr() *S {
	if r.failed {
		panic(&AccessError{Side: SideValue})
	}
	return &r.value
}

// Err returns the failure value. It panics if r holds a success value.
func (r Result[S, F]) Err() F {
	if !r.failed {
		panic(&AccessError{Side: SideFailure})
	}
	return r.failure
}

// Get returns the success value and true, or the zero value of S and false
// if r holds a failure.
func (r Result[S, F]) Get() (S, bool) {
	if r.failed {
		var zero S
		return zero, false
	}
	return r.value, true
}

// ValueOr returns the success value, or def if r holds a failure.
func (r Result[S, F]) ValueOr(def S) S {
	if r.failed {
		return def
	}
	return r.value
}

// String renders r as Ok(value) or Err(failure).
func (r Result[S, F]) String() string {
	if r.failed {
		return fmt.Sprintf("Err(%v)", r.failure)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies fn to the success value of r. A failure is passed through
// unchanged and fn is not called.
func Map[S, T, F any](r Result[S, F], fn func(S) T) Result[T, F] {
	if r.failed {
		return Result[T, F]{failure: r.failure, failed: true}
	}
	return Result[T, F]{value: fn(r.value)}
}

// AndThen chains a fallible step after r. A failure is passed through
// unchanged and fn is not called.
//
// Example:
//
//	addr := result.AndThen(lookup(name), resolve)
func AndThen[S, T, F any](r Result[S, F], fn func(S) Result[T, F]) Result[T, F] {
	if r.failed {
		return Result[T, F]{failure: r.failure, failed: true}
	}
	return fn(r.value)
}
