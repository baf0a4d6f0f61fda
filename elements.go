package vector

// Element capabilities. The vector discovers them on *T, so methods with
// either a value or a pointer receiver are found. A type implementing none
// of them is copied and moved with plain Go assignment and needs no
// destruction.

// Cloner is implemented by elements whose copy must do more than a plain
// assignment. Clone may fail.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Mover is implemented by elements with a custom, possibly failing, move.
// Move returns the relocated value and leaves the receiver in a
// moved-from state that is still destroyed normally.
type Mover[T any] interface {
	Move() (T, error)
}

// Initializer is implemented by elements that need work beyond the zero
// value to be default-constructed.
type Initializer interface {
	Init() error
}

// Destroyer is implemented by elements that release resources when they
// leave the vector. Destroy must not fail.
type Destroyer interface {
	Destroy()
}

// relocation selects how live elements are carried into a new region.
type relocation int

const (
	// relocateBitwise moves the value with a plain copy. It cannot fail,
	// and the old slots are cleared without Destroy since ownership moved.
	relocateBitwise relocation = iota
	// relocateClone copies through Clone, keeping the source intact
	// until the new region is complete.
	relocateClone
	// relocateMove uses a failing Move when no Clone is available.
	relocateMove
)

// relocationFor picks the relocation strategy for T: bitwise unless T has
// a fallible Move, in which case Clone is preferred when present.
func relocationFor[T any]() relocation {
	var probe T
	if _, ok := any(&probe).(Mover[T]); !ok {
		return relocateBitwise
	}
	if _, ok := any(&probe).(Cloner[T]); ok {
		return relocateClone
	}
	return relocateMove
}

// copyConstruct writes a copy of *src into the unconstructed slot dst.
func copyConstruct[T any](dst, src *T) error {
	if c, ok := any(src).(Cloner[T]); ok {
		v, err := c.Clone()
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	*dst = *src
	return nil
}

// moveConstruct moves *src into the unconstructed slot dst.
// Sources without a Mover are cleared after the plain copy.
func moveConstruct[T any](dst, src *T) error {
	if m, ok := any(src).(Mover[T]); ok {
		v, err := m.Move()
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	*dst = *src
	var zero T
	*src = zero
	return nil
}

// defaultConstruct initialises the zeroed slot dst.
func defaultConstruct[T any](dst *T) error {
	if in, ok := any(dst).(Initializer); ok {
		return in.Init()
	}
	return nil
}

// copyAssign replaces the live element *dst with a copy of *src.
// The copy is taken before dst is destroyed, so src may alias dst.
func copyAssign[T any](dst, src *T) error {
	var v T
	if err := copyConstruct(&v, src); err != nil {
		return err
	}
	destroy(dst)
	*dst = v
	return nil
}

// destroy ends the lifetime of the live element at p and clears the slot.
func destroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
	discard(p)
}

// discard clears a slot without running Destroy.
func discard[T any](p *T) {
	var zero T
	*p = zero
}

// destroyRange destroys the live slots [lo, hi) of r, last to first.
// An empty range is a no-op.
func destroyRange[T any](r region, lo, hi int) {
	for i := hi - 1; i >= lo; i-- {
		destroy(slotAt[T](r, i))
	}
}

// constructRange constructs the slots [lo, hi) of r with construct.
// If construct fails at slot k, the slot is cleared, [lo, k) is destroyed
// and a *ConstructionError for k is returned.
func constructRange[T any](r region, lo, hi int, op string, construct func(p *T, i int) error) error {
	for i := lo; i < hi; i++ {
		p := slotAt[T](r, i)
		if err := construct(p, i); err != nil {
			discard(p)
			destroyRange[T](r, lo, i)
			return &ConstructionError{Op: op, Index: i, Err: err}
		}
	}
	return nil
}

// relocate carries the n live elements of src into the unconstructed
// slots [0, n) of dst. On error dst holds no live elements in [0, n) and
// src is as it was before the call.
func relocate[T any](dst, src region, n int, how relocation) error {
	switch how {
	case relocateBitwise:
		copy(slotRange[T](dst, 0, n), slotRange[T](src, 0, n))
		return nil
	case relocateClone:
		return constructRange(dst, 0, n, "relocate", func(p *T, i int) error {
			return copyConstruct(p, slotAt[T](src, i))
		})
	}

	for i := 0; i < n; i++ {
		p := slotAt[T](dst, i)
		if err := moveConstruct(p, slotAt[T](src, i)); err != nil {
			discard(p)
			cause := &ConstructionError{Op: "relocate", Index: i, Err: err}
			moveBack[T](dst, src, i, cause)
			return cause
		}
	}
	return nil
}

// moveBack undoes a partial relocateMove of the slots [0, k). A second
// failure leaves src unrecoverable and panics with *RollbackError.
func moveBack[T any](dst, src region, k int, cause error) {
	for i := k - 1; i >= 0; i-- {
		from, to := slotAt[T](dst, i), slotAt[T](src, i)
		var back T
		if err := moveConstruct(&back, from); err != nil {
			panic(&RollbackError{Index: i, Cause: cause, Err: err})
		}
		destroy(to)
		*to = back
		destroy(from)
	}
}

// unrelocate undoes a successful relocate of n elements from src into dst
// after a later step failed. cause is the failure being undone.
func unrelocate[T any](dst, src region, n int, how relocation, cause error) {
	switch how {
	case relocateBitwise:
		clear(slotRange[T](dst, 0, n))
	case relocateClone:
		destroyRange[T](dst, 0, n)
	default:
		moveBack[T](dst, src, n, cause)
	}
}

// retire ends the lifetime of the n elements left in src after a
// successful relocation.
func retire[T any](src region, n int, how relocation) {
	if how == relocateBitwise {
		clear(slotRange[T](src, 0, n))
		return
	}
	destroyRange[T](src, 0, n)
}
