package vector

import "iter"

// Data returns the live elements as a slice aliasing the vector's storage.
// The slice is invalidated by any reallocation; appending to it never
// affects the vector.
func (v *Vector[T]) Data() []T {
	if v == nil || v.length == 0 {
		return nil
	}
	return slotRange[T](v.region, 0, v.length)
}

// Index returns a pointer to element i without a range check beyond the
// one Go performs on slices: it panics if i is outside [0, Len).
func (v *Vector[T]) Index(i int) *T {
	return &v.Data()[i]
}

// At returns a pointer to element i, or a *RangeError if i is outside
// [0, Len).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.length {
		return nil, &RangeError{Index: i, Len: v.length}
	}
	return slotAt[T](v.region, i), nil
}

// Get returns a copy of element i.
func (v *Vector[T]) Get(i int) (T, error) {
	p, err := v.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces element i with a copy of value.
func (v *Vector[T]) Set(i int, value T) error {
	p, err := v.At(i)
	if err != nil {
		return err
	}
	if err := copyAssign(p, &value); err != nil {
		return &ConstructionError{Op: "set", Index: i, Err: err}
	}
	return nil
}

// Front returns a pointer to the first element. Panics if v is empty.
func (v *Vector[T]) Front() *T {
	return v.Index(0)
}

// Back returns a pointer to the last element. Panics if v is empty.
func (v *Vector[T]) Back() *T {
	return v.Index(v.Len() - 1)
}

// All returns an iterator over index and element pointer pairs, front to
// back. Pointers yielded before a reallocation no longer refer to the
// vector's elements afterwards.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, slotAt[T](v.region, i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index and element pointer pairs,
// back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.length - 1; i >= 0; i-- {
			if i >= v.length {
				continue
			}
			if !yield(i, slotAt[T](v.region, i)) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(*slotAt[T](v.region, i)) {
				return
			}
		}
	}
}
