package result

import "fmt"

// Side names one of the two alternatives of a Result.
type Side string

const (
	// SideValue is the success alternative.
	SideValue Side = "value"

	// SideFailure is the failure alternative.
	SideFailure Side = "failure"
)

// AccessError is the panic value raised when a Result is read on the side it
// does not hold. It signals a bug in the caller, which should have checked
// HasValue first; it is never returned as an ordinary error.
type AccessError struct {
	// Side is the alternative the caller asked for.
	Side Side
}

// Error returns the string representation of the violation.
func (e *AccessError) Error() string {
	held := SideFailure
	if e.Side == SideFailure {
		held = SideValue
	}
	return fmt.Sprintf("result: %s accessed but result holds a %s", e.Side, held)
}
