// Package vector implements a dynamic array over a self-managed storage region.
//
// # Overview
//
// A Vector keeps its elements in one contiguous block of element slots.
// Only the first Len() slots hold live elements; the rest of the block is
// zeroed and unconstructed. When an append finds the block full, a new
// block of twice the capacity (at least 1) is obtained, the live elements
// are carried over, and the old block is retired.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	for i := range 5 {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//
//	x, err := v.At(2)       // checked access
//	y := v.Index(3)         // unchecked, panics like a slice index
//	v.PopBack()             // never fails
//	err = v.Reserve(100)    // exact capacity, no doubling
//	err = v.ShrinkToFit()   // capacity back to Len()
//
// # Element Lifetimes
//
// Go values have no constructors, so elements opt into lifetime hooks by
// implementing interfaces on *T:
//
//   - Cloner[T]: Clone() (T, error) copies the element
//   - Mover[T]: Move() (T, error) moves the element and may fail
//   - Initializer: Init() error default-constructs a zeroed element
//   - Destroyer: Destroy() releases the element's resources
//
// Types without hooks are copied and moved by assignment.
//
// # Failure Safety
//
// Every operation that constructs elements builds into a fresh region or
// into unconstructed slots first and publishes the new state only after
// every element succeeded. If a hook fails, the elements built so far are
// destroyed and the vector is left exactly as it was. Errors match
// ErrAllocation, ErrConstruction or ErrOutOfRange through errors.Is.
//
// When relocating elements that have a fallible Move, a Clone is used
// instead if the type has one, so the originals survive a failure. A
// failure while undoing a Move-only relocation panics with a
// *RollbackError.
//
// PopBack, Clear and Release never fail.
//
// # Iteration
//
// All, Backward and Values return iter.Seq iterators over the live range.
// Data returns the live range as a slice. Any operation that reallocates
// or changes the length invalidates previously obtained pointers, slices
// and in-flight iterators.
//
// # Thread Safety
//
// A Vector is not synchronised. Concurrent reads are safe only while no
// goroutine mutates it.
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
package vector
