package vector

import (
	"errors"
	"testing"
)

var (
	errCloneFailed = errors.New("clone failed")
	errMoveFailed  = errors.New("move failed")
	errInitFailed  = errors.New("init failed")
)

// ledger counts element lifetime events for the tracked element types.
// Fail fields are 1-based event numbers; zero never fails.
type ledger struct {
	live     int
	clones   int
	moves    int
	inits    int
	destroys int

	failClone     int
	failMove      int
	failMovesFrom int // every move from this number on fails
	failInit      int
}

var book ledger

// resetBook clears the ledger for one test.
func resetBook(t *testing.T) *ledger {
	t.Helper()
	book = ledger{}
	t.Cleanup(func() { book = ledger{} })
	return &book
}

// tracked is copied through Clone and relocated bitwise.
type tracked struct {
	val int
}

func (e *tracked) Clone() (tracked, error) {
	book.clones++
	if book.clones == book.failClone {
		return tracked{}, errCloneFailed
	}
	book.live++
	return tracked{val: e.val}, nil
}

func (e *tracked) Init() error {
	book.inits++
	if book.inits == book.failInit {
		return errInitFailed
	}
	book.live++
	e.val = -1
	return nil
}

func (e *tracked) Destroy() {
	book.live--
	book.destroys++
}

// sturdy has a fallible Move and a Clone, so it is relocated by Clone.
type sturdy struct {
	val int
}

func (e *sturdy) Clone() (sturdy, error) {
	book.clones++
	if book.clones == book.failClone {
		return sturdy{}, errCloneFailed
	}
	book.live++
	return sturdy{val: e.val}, nil
}

func (e *sturdy) Move() (sturdy, error) {
	book.moves++
	if book.moves == book.failMove {
		return sturdy{}, errMoveFailed
	}
	book.live++
	return sturdy{val: e.val}, nil
}

func (e *sturdy) Destroy() {
	book.live--
	book.destroys++
}

// fragile can only be moved, and the move may fail.
type fragile struct {
	val int
}

func (e *fragile) Move() (fragile, error) {
	book.moves++
	if book.moves == book.failMove || (book.failMovesFrom > 0 && book.moves >= book.failMovesFrom) {
		return fragile{}, errMoveFailed
	}
	book.live++
	v := fragile{val: e.val}
	e.val = 0
	return v, nil
}

func (e *fragile) Destroy() {
	book.live--
	book.destroys++
}

// trackedValues returns the element values of v.
func trackedValues[T interface{ tracked | sturdy | fragile }](v *Vector[T]) []int {
	out := make([]int, 0, v.Len())
	for _, p := range v.All() {
		switch e := any(p).(type) {
		case *tracked:
			out = append(out, e.val)
		case *sturdy:
			out = append(out, e.val)
		case *fragile:
			out = append(out, e.val)
		}
	}
	return out
}
