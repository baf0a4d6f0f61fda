package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors. Concrete errors returned by the vector match one of
// these through errors.Is.
var (
	// ErrAllocation is returned when a storage region cannot be obtained.
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrConstruction is returned when an element's Clone, Move or Init
	// fails, or an EmplaceBack constructor returns an error.
	ErrConstruction = errors.New("vector: element construction failed")

	// ErrOutOfRange is returned by checked accessors for an index outside
	// the live range, and for negative counts.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrRollback is the panic value class raised when undoing a failed
	// relocation fails a second time.
	ErrRollback = errors.New("vector: rollback failed")
)

// AllocationError describes a storage request that could not be satisfied.
type AllocationError struct {
	Slots  int    // requested slot count
	Bytes  int    // requested size in bytes, 0 if it could not be computed
	Reason string // short cause
	Err    error  // underlying runtime error, if any
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("vector: allocation of %d slots failed: %s", e.Slots, e.Reason)
}

func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

func (e *AllocationError) Unwrap() error { return e.Err }

// ConstructionError reports the slot whose construction failed.
type ConstructionError struct {
	Op    string // operation that was constructing, e.g. "push", "relocate"
	Index int    // destination slot
	Err   error  // error returned by the element
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("vector: %s: constructing element %d: %v", e.Op, e.Index, e.Err)
}

func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

func (e *ConstructionError) Unwrap() error { return e.Err }

// RangeError reports a checked access outside [0, Len).
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// RollbackError is panicked when a failed relocation cannot be undone.
// The vector that raised it is in an unspecified state.
type RollbackError struct {
	Index int   // slot that could not be moved back
	Cause error // the failure being rolled back
	Err   error // the failure raised while rolling back
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("vector: rollback of element %d failed: %v (while undoing: %v)", e.Index, e.Err, e.Cause)
}

func (e *RollbackError) Is(target error) bool { return target == ErrRollback }

func (e *RollbackError) Unwrap() []error { return []error{e.Err, e.Cause} }

// negativeCount builds the error returned for a negative size argument.
func negativeCount(op string, n int) error {
	return fmt.Errorf("%w: %s: negative count %d", ErrOutOfRange, op, n)
}
