package vector

// Vector is a dynamic array of T. Not goroutine-safe.
// The zero value is an empty vector ready to use.
//
// Exactly the slots [0, Len()) hold live elements; the slots
// [Len(), Cap()) are zeroed and unconstructed.
type Vector[T any] struct {
	region   region
	length   int
	maxBytes int // storage budget in bytes, 0 for none
	stats    counters
}

// counters track storage activity for Metrics.
type counters struct {
	allocations   int
	reallocations int
	releases      int
}

// Option configures a Vector at construction.
type Option func(*config)

type config struct {
	maxBytes int
}

// WithMaxBytes caps the size of the vector's storage region.
// Requests above the cap fail with ErrAllocation. n <= 0 removes the cap.
func WithMaxBytes(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.maxBytes = n
	}
}

// New creates an empty vector. No storage is allocated until the first
// element is added.
func New[T any](opts ...Option) *Vector[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Vector[T]{maxBytes: c.maxBytes}
}

// NewWithLen creates a vector of n default-constructed elements with
// capacity n.
func NewWithLen[T any](n int, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFilled creates a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.ResizeFill(n, value); err != nil {
		return nil, err
	}
	return v, nil
}

// Of creates a vector holding copies of values, with capacity len(values).
func Of[T any](values ...T) (*Vector[T], error) {
	v := New[T]()
	if err := v.AssignValues(values...); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// Cap returns the number of slots available without reallocation.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.region.slots
}

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// PushBack appends a copy of value, doubling the capacity when full.
// On error the vector is unchanged.
func (v *Vector[T]) PushBack(value T) error {
	return v.emplace("push", func(p *T) error {
		return copyConstruct(p, &value)
	})
}

// PushBackMove appends *src by moving it. A plain value is moved by
// assignment and *src is reset to its zero value; a Mover is moved with
// Move. src must not point into v. On error v is unchanged and *src is
// only affected by a failed Move itself.
func (v *Vector[T]) PushBackMove(src *T) error {
	return v.emplace("push", func(p *T) error {
		return moveConstruct(p, src)
	})
}

// EmplaceBack constructs a new last element in place. construct receives
// the zeroed slot; if it returns an error the slot is cleared, the vector
// is unchanged, and the error is returned wrapped in a *ConstructionError.
// A nil construct default-constructs the element.
func (v *Vector[T]) EmplaceBack(construct func(slot *T) error) error {
	if construct == nil {
		construct = defaultConstruct[T]
	}
	return v.emplace("emplace", construct)
}

// emplace constructs one element at Len, growing by doubling when full.
func (v *Vector[T]) emplace(op string, construct func(p *T) error) error {
	if v.length < v.region.slots {
		p := slotAt[T](v.region, v.length)
		if err := construct(p); err != nil {
			discard(p)
			return &ConstructionError{Op: op, Index: v.length, Err: err}
		}
		v.length++
		return nil
	}

	newCap, err := nextCapacity(v.region.slots)
	if err != nil {
		return err
	}
	return v.regrow(newCap, v.length+1, func(r region, lo, hi int) error {
		return constructRange(r, lo, hi, op, func(p *T, _ int) error {
			return construct(p)
		})
	})
}

// PopBack destroys the last element. No-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.length == 0 {
		return
	}
	v.length--
	destroy(slotAt[T](v.region, v.length))
}

// Resize changes the length to n. Shrinking destroys the tail; growing
// default-constructs the new tail, reallocating to exactly n slots when
// n exceeds the capacity. On error the vector is unchanged.
func (v *Vector[T]) Resize(n int) error {
	return v.resize(n, "resize", defaultConstruct[T])
}

// ResizeFill is Resize with new elements copied from value.
func (v *Vector[T]) ResizeFill(n int, value T) error {
	return v.resize(n, "fill", func(p *T) error {
		return copyConstruct(p, &value)
	})
}

func (v *Vector[T]) resize(n int, op string, construct func(p *T) error) error {
	if n < 0 {
		return negativeCount(op, n)
	}
	fill := func(r region, lo, hi int) error {
		return constructRange(r, lo, hi, op, func(p *T, _ int) error {
			return construct(p)
		})
	}

	switch {
	case n <= v.length:
		v.truncate(n)
		return nil
	case n <= v.region.slots:
		if err := fill(v.region, v.length, n); err != nil {
			return err
		}
		v.length = n
		return nil
	}
	return v.regrow(n, n, fill)
}

// Reserve grows the capacity to exactly n if n exceeds it. The length
// and elements are unchanged. On error the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return negativeCount("reserve", n)
	}
	if n <= v.region.slots {
		return nil
	}
	return v.regrow(n, v.length, nil)
}

// ShrinkToFit reallocates the storage to exactly Len slots, releasing it
// entirely when the vector is empty. On error the vector is unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	if v.length == v.region.slots {
		return nil
	}
	if v.length == 0 {
		v.releaseRegion()
		return nil
	}
	return v.regrow(v.length, v.length, nil)
}

// Clear destroys every element. The capacity is kept.
func (v *Vector[T]) Clear() {
	v.truncate(0)
}

// Release destroys every element and returns the storage region.
// The vector remains usable as an empty vector.
func (v *Vector[T]) Release() {
	v.truncate(0)
	v.releaseRegion()
}

// Swap exchanges the contents of v and other in O(1), together with
// their storage budgets and counters. No element is constructed or
// destroyed.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}

// truncate destroys the slots [n, length).
func (v *Vector[T]) truncate(n int) {
	end := v.length
	v.length = n
	destroyRange[T](v.region, n, end)
}

// regrow moves the vector into a new region of newCap slots. The live
// elements are relocated first; fill, when non-nil, then constructs the
// slots [length, newLen). The vector is published with length newLen only
// after both steps succeed. On error the new region is torn down and the
// vector is unchanged.
func (v *Vector[T]) regrow(newCap, newLen int, fill func(r region, lo, hi int) error) error {
	dst, err := allocRegion[T](newCap, v.maxBytes)
	if err != nil {
		return err
	}
	v.stats.allocations++

	how := relocationFor[T]()
	if err := relocate[T](dst, v.region, v.length, how); err != nil {
		return err
	}
	if fill != nil {
		if err := fill(dst, v.length, newLen); err != nil {
			unrelocate[T](dst, v.region, v.length, how, err)
			return err
		}
	}

	if v.length > 0 {
		v.stats.reallocations++
	}
	retire[T](v.region, v.length, how)
	v.releaseRegion()
	v.region = dst
	v.length = newLen
	return nil
}

// releaseRegion drops the storage region. The caller has already ended
// the lifetime of every element in it.
func (v *Vector[T]) releaseRegion() {
	if v.region.slots == 0 {
		return
	}
	v.region = region{}
	v.stats.releases++
}
