// Package result provides a two-state container for reporting either a
// computed value or a typed failure.
//
// A Result[S, F] is a plain value: the success side is stored inline, so
// returning a successful Result costs no more than returning S itself. It is
// generic over both sides; most code in this module uses errors.Error as F.
//
// # Constructing results
//
//	ok := result.Ok[int, errors.Error](42)
//	bad := result.Fail[int](errors.New(errors.CodeOutOfBounds))
//
// Failures may also be built ahead of time with MakeUnexpected and converted
// into whichever Result the caller returns:
//
//	fail := result.MakeUnexpected(errors.New(errors.CodeEmptyState))
//	return result.From[string](fail)
//
// The errors package adds shorthands that forward constructor arguments:
//
//	return errors.Fail[int](errors.CodeLabelNotFound)
//	return errors.FailWithMessage[int](errors.CodeLabelAlreadyBound, "label 'foo' already bound")
//
// # Reading results
//
// Check HasValue before reading a side:
//
//	r := lookup(name)
//	if !r.HasValue() {
//	    return errors.Fail[uint64](r.Err().Code())
//	}
//	addr := r.Value()
//
// Value, Ptr and Err panic with *AccessError when the wrong side is read.
// The check is always enabled. Get and ValueOr never panic.
//
// # Concurrency
//
// A Result has no internal synchronization. Reading copies from several
// goroutines is safe; mutating through Ptr requires the caller to synchronize.
package result
