package result

// Unexpected wraps a failure value on its way into a Result. It lets a
// producer build the failure once and hand it to any Result with a matching
// failure type.
type Unexpected[F any] struct {
	failure F
}

// MakeUnexpected wraps f for use with From.
func MakeUnexpected[F any](f F) Unexpected[F] {
	return Unexpected[F]{failure: f}
}

// Failure returns the wrapped failure value.
func (u Unexpected[F]) Failure() F {
	return u.failure
}

// From converts u into a Result holding the failure side.
//
// Example:
//
//	fail := result.MakeUnexpected(errors.New(errors.CodeOutOfBounds))
//	return result.From[uint64](fail)
func From[S, F any](u Unexpected[F]) Result[S, F] {
	return Result[S, F]{failure: u.failure, failed: true}
}
