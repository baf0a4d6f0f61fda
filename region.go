package vector

import (
	"fmt"
	"math"
	"unsafe"
)

// region is an untyped storage block holding a fixed number of element slots.
// The block is obtained as a typed allocation so the garbage collector
// still traces pointers stored in the slots, but the vector only ever
// addresses it through base and byte offsets.
type region struct {
	base  unsafe.Pointer // first slot, nil when slots == 0
	slots int            // element slots the block can hold
	bytes uintptr        // size of the block in bytes
}

// elemSize returns the size in bytes of one T slot.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocRegion obtains a block of exactly n slots of T.
// n == 0 never allocates and returns the empty region.
// maxBytes > 0 caps the size of the block.
func allocRegion[T any](n, maxBytes int) (r region, err error) {
	if n == 0 {
		return region{}, nil
	}
	size := elemSize[T]()
	if n < 0 {
		return region{}, &AllocationError{Slots: n, Reason: "negative slot count"}
	}
	if size > 0 && uintptr(n) > uintptr(math.MaxInt)/size {
		return region{}, &AllocationError{Slots: n, Reason: "size overflows address space"}
	}
	total := uintptr(n) * size
	if maxBytes > 0 && total > uintptr(maxBytes) {
		return region{}, &AllocationError{
			Slots:  n,
			Bytes:  int(total),
			Reason: fmt.Sprintf("exceeds budget of %d bytes", maxBytes),
		}
	}

	// makeslice panics with a runtime error when the request cannot be
	// represented; surface it as an allocation failure.
	defer func() {
		if p := recover(); p != nil {
			r = region{}
			err = &AllocationError{Slots: n, Bytes: int(total), Reason: "runtime refused request", Err: fmt.Errorf("%v", p)}
		}
	}()
	block := make([]T, n)
	return region{
		base:  unsafe.Pointer(unsafe.SliceData(block)),
		slots: n,
		bytes: total,
	}, nil
}

// slotAt returns a pointer to slot i of r. The caller guarantees 0 <= i < r.slots.
func slotAt[T any](r region, i int) *T {
	return (*T)(unsafe.Add(r.base, uintptr(i)*elemSize[T]()))
}

// slotRange returns the slots [lo, hi) of r as a slice aliasing the block.
// Returns nil for an empty range.
func slotRange[T any](r region, lo, hi int) []T {
	if hi <= lo {
		return nil
	}
	return unsafe.Slice(slotAt[T](r, lo), hi-lo)
}

// nextCapacity returns the slot count for append growth: max(1, 2*capacity).
func nextCapacity(capacity int) (int, error) {
	if capacity == 0 {
		return 1, nil
	}
	if capacity > math.MaxInt/2 {
		return 0, &AllocationError{Slots: capacity, Reason: "capacity cannot double"}
	}
	return capacity * 2, nil
}
