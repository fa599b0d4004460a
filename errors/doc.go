// Package errors provides the failure-reporting backbone of the assembler.
//
// It defines a closed catalog of error codes and a compact Error value that
// carries one of them. Errors are designed for hot paths: the common case of
// a bare code costs no allocation at all, and a caller that wants a specific
// explanation pays for exactly one.
//
// # Features
//
//   - Closed ErrorCode catalog with stable symbolic names and default messages
//   - Inline errors (code only, zero allocation) and extended errors
//     (code plus custom message, one allocation)
//   - Code-only equality that ignores custom messages
//   - Category grouping of codes by failure family
//   - Result[S] shorthand over the generic result package
//   - Compatibility with the standard library (errors.Is, errors.As)
//   - JSON and YAML serialization, log/slog integration
//
// # Design Principles
//
//   - Values, not pointers: Error is passed and returned by value
//   - Immutability: an Error never changes after construction
//   - No silent fallbacks: every code has a name and a message, enforced at
//     compile time and in tests
//   - Contract violations panic: looking up a code outside the catalog is a
//     bug, not a recoverable error
//
// # Quick Start
//
// Creating errors:
//
//	// Inline error, uses the default message
//	err := errors.New(errors.CodeFileNotFound)
//	err.Message() // "File not found"
//
//	// Extended error with a custom message
//	err := errors.NewWithMessage(errors.CodeLabelAlreadyBound, "label 'foo' already bound at 0x10")
//
//	// Formatted message
//	err := errors.Newf(errors.CodeOutOfBounds, "offset %#x past end of section", off)
//
// Returning results:
//
//	func (a *Assembler) Bind(l Label) errors.Result[uint64] {
//	    if a.bound(l) {
//	        return errors.Fail[uint64](errors.CodeLabelAlreadyBound)
//	    }
//	    return errors.Ok(a.offset)
//	}
//
// Consuming results:
//
//	r := a.Bind(l)
//	if !r.HasValue() {
//	    log.Printf("bind failed: %s", r.Err().Message())
//	    return
//	}
//	offset := r.Value()
//
// Comparing codes:
//
//	if err.Equal(errors.CodeFileNotFound) {
//	    // Custom messages do not affect the comparison
//	}
//
// Logging:
//
//	slog.Error("assembly failed", "error", err)
//	// error.code=5 error.name=FileNotFound error.message="File not found"
//
// # Copy Semantics
//
// Error is a small value. Copying an extended error copies a pointer to its
// record; the record is immutable and never exposed, so copies cannot observe
// one another. Clone produces a copy with a separate record.
//
// # Concurrency
//
// Error values are immutable and safe to read from multiple goroutines.
package errors
