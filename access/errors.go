package access

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by both access strategies. Every failure is surfaced
// synchronously to the immediate caller; nothing is logged or swallowed.
// Absent results (no such member, no bound target type, etc.) are reported
// through (value, bool) returns, never through these errors.
var (
	// ErrAllocation reports that a bare instance of a type cannot be
	// produced (interface or invalid kinds).
	ErrAllocation = errors.New("unreflect: cannot allocate instance")

	// ErrAccess reports that a member cannot be read or written even after
	// visibility override, e.g. writing a field of a value (non-pointer)
	// bound target.
	ErrAccess = errors.New("unreflect: access denied")

	// ErrArgumentMismatch reports wrong arity or incompatible argument
	// types for an invocation or construction.
	ErrArgumentMismatch = errors.New("unreflect: argument mismatch")

	// ErrCompilation reports that the invoker compiler failed to produce a
	// specialized invoker for a method signature. The compiled strategy
	// surfaces this instead of silently falling back to reflection so that
	// performance expectations stay observable.
	ErrCompilation = errors.New("unreflect: invoker compilation failed")
)

// InvocationError wraps a failure raised by the invoked member itself: a
// non-nil error returned by the method, or a panic recovered during the
// call. The callee's own failure is preserved unmodified and reachable via
// Unwrap (for returned errors) or the Recovered field (for panics).
type InvocationError struct {
	// Member is the qualified name of the invoked member, e.g. "Calc.Add".
	Member string

	// Err is the error returned by the callee, if the failure was a
	// returned error. Nil for recovered panics.
	Err error

	// Recovered is the recovered panic value, if the failure was a panic.
	Recovered any
}

func (e *InvocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unreflect: %s failed: %v", e.Member, e.Err)
	}
	return fmt.Sprintf("unreflect: %s panicked: %v", e.Member, e.Recovered)
}

// Unwrap exposes the callee's returned error to errors.Is/errors.As chains.
func (e *InvocationError) Unwrap() error {
	return e.Err
}
