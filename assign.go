package vector

import "iter"

// FromSeq creates a vector holding copies of the values produced by seq.
// The capacity follows append growth.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	for value := range seq {
		if err := v.PushBack(value); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}

// Clone returns a deep copy of v with capacity equal to its length.
// The copy shares no storage with v and keeps its storage budget.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{maxBytes: v.maxBytes}
	if v.length == 0 {
		return out, nil
	}
	dst, err := allocRegion[T](v.length, v.maxBytes)
	if err != nil {
		return nil, err
	}
	err = constructRange(dst, 0, v.length, "clone", func(p *T, i int) error {
		return copyConstruct(p, slotAt[T](v.region, i))
	})
	if err != nil {
		return nil, err
	}
	out.region = dst
	out.length = v.length
	out.stats.allocations++
	return out, nil
}

// Assign replaces the contents of v with copies of the elements of other.
//
// When v lacks capacity a new region is built and swapped in, and a
// failure leaves v unchanged. Otherwise the common prefix is overwritten
// in place and the tail is destroyed or constructed; a failure there
// leaves v valid but partially assigned.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	return v.assign(other.Data())
}

// AssignValues replaces the contents of v with copies of values,
// following the same rules as Assign.
func (v *Vector[T]) AssignValues(values ...T) error {
	return v.assign(values)
}

func (v *Vector[T]) assign(src []T) error {
	n := len(src)
	copyFrom := func(p *T, i int) error {
		return copyConstruct(p, &src[i])
	}

	if n > v.region.slots {
		dst, err := allocRegion[T](n, v.maxBytes)
		if err != nil {
			return err
		}
		v.stats.allocations++
		if err := constructRange(dst, 0, n, "assign", copyFrom); err != nil {
			return err
		}
		v.Release()
		v.region = dst
		v.length = n
		return nil
	}

	shared := min(v.length, n)
	for i := 0; i < shared; i++ {
		if err := copyAssign(slotAt[T](v.region, i), &src[i]); err != nil {
			return &ConstructionError{Op: "assign", Index: i, Err: err}
		}
	}
	if v.length > n {
		v.truncate(n)
		return nil
	}
	if err := constructRange(v.region, v.length, n, "assign", copyFrom); err != nil {
		return err
	}
	v.length = n
	return nil
}

// Move transfers the contents of v to a new vector and leaves v empty
// with no storage. No element is copied.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{maxBytes: v.maxBytes}
	out.region, out.length = v.region, v.length
	v.region, v.length = region{}, 0
	return out
}

// MoveFrom destroys the contents of v and takes over the storage and
// storage budget of other, which is left empty with no storage.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Release()
	v.region, v.length = other.region, other.length
	v.maxBytes = other.maxBytes
	other.region, other.length = region{}, 0
}
