package vec

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrOutOfMemory is returned when a storage request cannot be satisfied
// because its total byte size does not fit the platform's address space.
var ErrOutOfMemory = errors.New("vec: out of memory")

// RawStorage owns a fixed block of raw slots for elements of type T.
// It knows nothing about element lifetimes: its contents are unspecified,
// and the owner is responsible for tracking which slots hold live elements
// and for destroying them before the block is replaced or released.
//
// RawStorage is move-only. Hand it around by pointer; copying the struct
// value would alias the block and is a caller bug.
type RawStorage[T any] struct {
	slots []T
}

// NewRawStorage allocates a block of capacity slots. A capacity of zero
// allocates nothing. A negative capacity panics. If the byte size of the
// request overflows, ErrOutOfMemory is returned and nothing is allocated.
func NewRawStorage[T any](capacity int) (RawStorage[T], error) {
	if capacity < 0 {
		panic("vec: negative storage capacity")
	}
	if capacity == 0 {
		return RawStorage[T]{}, nil
	}
	var zero T
	if size := unsafe.Sizeof(zero); size > 0 && capacity > math.MaxInt/int(size) {
		return RawStorage[T]{}, errors.Wrapf(ErrOutOfMemory, "%d slots of %d bytes", capacity, size)
	}
	return RawStorage[T]{slots: make([]T, capacity)}, nil
}

// Capacity returns the number of slots in the block.
func (s *RawStorage[T]) Capacity() int {
	return len(s.slots)
}

// Ptr returns the address of slot index for reading or writing.
// index must be less than Capacity; violating that panics.
func (s *RawStorage[T]) Ptr(index int) *T {
	if index < 0 || index >= len(s.slots) {
		panic("vec: slot index out of range")
	}
	return &s.slots[index]
}

// Slice returns the half-open slot range [i, j). j may equal Capacity, so
// an empty view at the end of the block is always legal to form. Whether
// the slots in the view hold live elements is the owner's business.
func (s *RawStorage[T]) Slice(i, j int) []T {
	if i < 0 || j < i || j > len(s.slots) {
		panic("vec: slot range out of range")
	}
	return s.slots[i:j]
}

// Swap exchanges the blocks of s and other. O(1), cannot fail.
func (s *RawStorage[T]) Swap(other *RawStorage[T]) {
	s.slots, other.slots = other.slots, s.slots
}

// MoveFrom adopts other's block, dropping any block s previously owned.
// other is left with capacity 0. Live elements in the dropped block must
// have been destroyed by the owner beforehand.
func (s *RawStorage[T]) MoveFrom(other *RawStorage[T]) {
	if s == other {
		return
	}
	s.slots = other.slots
	other.slots = nil
}

// Release drops the block, leaving s with capacity 0. It never runs
// element destructors; destroying live contents first is the owner's
// responsibility.
func (s *RawStorage[T]) Release() {
	s.slots = nil
}
