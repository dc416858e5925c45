package vec

import "github.com/pkg/errors"

// Vector is a growable contiguous sequence built on RawStorage. It tracks
// how many slots hold live elements and performs every construction,
// destruction and relocation itself; the storage layer never touches
// element lifetimes.
//
// Vectors have exclusive-ownership value semantics: storage is never shared
// between two vectors, and ownership transfers only via MoveFrom, Detach or
// Swap. A single vector must not be used from multiple goroutines without
// external serialization, not even for concurrent reads during a mutation.
//
// Failure guarantees are per operation. Unless documented otherwise an
// operation either fully succeeds or leaves the vector exactly as it was.
// Erase and the interior shift of a no-growth Emplace are the exceptions:
// they rely on element assignment and provide only a valid-but-unspecified
// state when an assignment fails.
//
// Invalidation follows from the storage model: any operation that replaces
// the block (growth, Reserve, copy-and-swap assignment) invalidates every
// outstanding pointer and Slice view; a shifting operation invalidates
// positions at or after the mutated index only.
type Vector[T any] struct {
	traits Traits[T]
	data   RawStorage[T]
	size   int

	grows     uint64
	relocated uint64
}

// New returns an empty vector with capacity 0 for elements described by tr.
func New[T any](tr Traits[T]) *Vector[T] {
	return &Vector[T]{traits: tr}
}

// NewPlain returns an empty vector for a plain value type: zero-value
// construction, bitwise relocation, trivial destruction.
func NewPlain[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewLen returns a vector of n default-constructed elements. If the k-th
// construction fails, the k-1 elements built before it are destroyed in
// reverse order and the storage is released: the caller observes a total
// failure, never a partial vector.
func NewLen[T any](tr Traits[T], n int) (*Vector[T], error) {
	if n < 0 {
		panic("vec: negative length")
	}
	data, err := NewRawStorage[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		elem, err := tr.defaultOf()
		if err != nil {
			tr.destroyRangeReverse(data.Slice(0, i))
			data.Release()
			return nil, errors.Wrapf(err, "vec: construct element %d", i)
		}
		*data.Ptr(i) = elem
	}
	v := &Vector[T]{traits: tr, size: n}
	v.data.MoveFrom(&data)
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the owned block.
func (v *Vector[T]) Cap() int {
	return v.data.Capacity()
}

// At returns the address of element i for reading or writing.
// i must be less than Len; violating that panics.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.data.Ptr(i)
}

// Slice returns the live elements as a view into the owned block, for range
// loops and bulk reads. The view is invalidated by any reallocating
// operation and, at or after the mutated position, by any shifting one.
func (v *Vector[T]) Slice() []T {
	return v.data.Slice(0, v.size)
}

// Clone returns an independent deep copy of v. If any element copy fails,
// the copies built so far are destroyed and the error is returned; v is
// never affected.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return cloneWith(v.traits, v)
}

// cloneWith builds a deep copy of src whose elements are managed by tr.
// Clone passes the source's own traits; CopyFrom passes the destination's,
// so an assignment never changes which traits govern a vector's elements.
func cloneWith[T any](tr Traits[T], src *Vector[T]) (*Vector[T], error) {
	data, err := NewRawStorage[T](src.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < src.size; i++ {
		elem, err := tr.copyOf(*src.data.Ptr(i))
		if err != nil {
			tr.destroyRangeReverse(data.Slice(0, i))
			data.Release()
			return nil, errors.Wrapf(err, "vec: copy element %d", i)
		}
		*data.Ptr(i) = elem
	}
	c := &Vector[T]{traits: tr, size: src.size}
	c.data.MoveFrom(&data)
	return c, nil
}

// Detach transfers v's storage and elements into a fresh vector in O(1).
// v is left empty (size 0, capacity 0) and remains fully usable.
func (v *Vector[T]) Detach() *Vector[T] {
	n := &Vector[T]{traits: v.traits, size: v.size, grows: v.grows, relocated: v.relocated}
	n.data.MoveFrom(&v.data)
	v.size = 0
	v.grows = 0
	v.relocated = 0
	return n
}

// Reserve ensures capacity for at least n elements. When n does not exceed
// the current capacity it is a strict no-op: same block, same addresses.
// Otherwise the live elements are relocated into a new block of capacity n;
// under the copy policy a failed element copy leaves v untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		panic("vec: negative capacity")
	}
	if n <= v.data.Capacity() {
		return nil
	}
	return v.regrow(n)
}

// regrow replaces the block with one of capacity n, relocating the live
// elements and destroying the originals only after the transfer succeeded.
func (v *Vector[T]) regrow(n int) error {
	newData, err := NewRawStorage[T](n)
	if err != nil {
		return err
	}
	if err := v.traits.relocateRange(newData.Slice(0, v.size), v.data.Slice(0, v.size)); err != nil {
		newData.Release()
		return err
	}
	v.traits.destroyRange(v.data.Slice(0, v.size))
	v.data.Swap(&newData)
	newData.Release()
	v.grows++
	v.relocated += uint64(v.size)
	return nil
}

// Resize grows or shrinks the live range to n elements. Growth reserves,
// then default-constructs the tail; if the k-th new construction fails only
// the new elements built by this call are destroyed, and Len and all
// pre-existing elements are exactly as before (capacity may have grown).
// Shrinking destroys elements [n, Len) in index order and cannot fail.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative length")
	}
	switch {
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			elem, err := v.traits.defaultOf()
			if err != nil {
				v.traits.destroyRangeReverse(v.data.Slice(v.size, i))
				return errors.Wrapf(err, "vec: construct element %d", i)
			}
			*v.data.Ptr(i) = elem
		}
		v.size = n
	case n < v.size:
		v.traits.destroyRange(v.data.Slice(n, v.size))
		v.size = n
	}
	return nil
}

// EmplaceBack appends one element constructed in place by build, which
// receives the raw slot and must either fully construct into it or leave an
// error. On success the element's address is returned.
//
// With spare capacity the slot is the next free one and a build failure
// mutates nothing. When growth is needed the new element is constructed
// first, into its final slot in the doubled block — a failure there
// discards the new block and the vector is exactly as before; only after
// that construction succeeds are the live elements relocated and the
// blocks swapped.
func (v *Vector[T]) EmplaceBack(build func(*T) error) (*T, error) {
	if v.size < v.data.Capacity() {
		slot := v.data.Ptr(v.size)
		if err := build(slot); err != nil {
			var zero T
			*slot = zero
			return nil, errors.Wrap(err, "vec: construct element")
		}
		v.size++
		return slot, nil
	}
	return v.growEmplace(v.size, build)
}

// growEmplace allocates a doubled block, constructs the new element at
// index at in it first, then relocates the surrounding ranges and adopts
// the block. Every failure path leaves v untouched and discards the new
// block after destroying whatever was constructed in it.
func (v *Vector[T]) growEmplace(at int, build func(*T) error) (*T, error) {
	newCap := 2 * v.size
	if newCap == 0 {
		newCap = 1
	}
	newData, err := NewRawStorage[T](newCap)
	if err != nil {
		return nil, err
	}
	slot := newData.Ptr(at)
	if err := build(slot); err != nil {
		newData.Release()
		return nil, errors.Wrap(err, "vec: construct element")
	}
	if err := v.traits.relocateRange(newData.Slice(0, at), v.data.Slice(0, at)); err != nil {
		v.traits.destroy(slot)
		newData.Release()
		return nil, err
	}
	if err := v.traits.relocateRange(newData.Slice(at+1, v.size+1), v.data.Slice(at, v.size)); err != nil {
		v.traits.destroyRange(newData.Slice(0, at))
		v.traits.destroy(slot)
		newData.Release()
		return nil, err
	}
	v.traits.destroyRange(v.data.Slice(0, v.size))
	v.data.Swap(&newData)
	newData.Release()
	v.grows++
	v.relocated += uint64(v.size)
	v.size++
	return v.data.Ptr(at), nil
}

// PushBack appends x, taking ownership of it. After the call x must not be
// used by the caller when the element type declares a nontrivial lifetime.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.EmplaceBack(func(slot *T) error {
		return v.traits.moveIn(slot, &x)
	})
	return err
}

// PushBackCopy appends an independent copy of x; the caller keeps x.
func (v *Vector[T]) PushBackCopy(x T) error {
	_, err := v.EmplaceBack(func(slot *T) error {
		c, err := v.traits.copyOf(x)
		if err != nil {
			return err
		}
		*slot = c
		return nil
	})
	return err
}

// Emplace inserts one element constructed by build immediately before
// position i; i may equal Len. It returns the new element's address.
//
// The growth path and the append path carry the same guarantee as
// EmplaceBack. On the interior no-growth path the element is built into a
// temporary before anything moves, so a failed construction leaves the
// vector unchanged; the subsequent right shift of [i, Len) works through
// element assignment and a failure there yields only a valid-but-shifted
// state. Positions at or after i are invalidated on success.
func (v *Vector[T]) Emplace(i int, build func(*T) error) (*T, error) {
	if i < 0 || i > v.size {
		panic("vec: position out of range")
	}
	if v.size == v.data.Capacity() {
		return v.growEmplace(i, build)
	}
	if i == v.size {
		return v.EmplaceBack(build)
	}
	var tmp T
	if err := build(&tmp); err != nil {
		return nil, errors.Wrap(err, "vec: construct element")
	}
	// Extend the live range by extracting the last element into the raw end
	// slot, then shift [i, last) one slot right, back to front so the
	// overlapping range is never read after being overwritten. Each shift
	// extracts the source value per the relocation policy before assigning,
	// so no slot's ownership is ever held in two places at once.
	last := v.size - 1
	moved, err := v.traits.takeOut(v.data.Ptr(last))
	if err != nil {
		v.traits.destroy(&tmp)
		return nil, errors.Wrap(err, "vec: relocate element")
	}
	*v.data.Ptr(v.size) = moved
	v.size++
	for j := last; j > i; j-- {
		elem, err := v.traits.takeOut(v.data.Ptr(j - 1))
		if err != nil {
			v.traits.destroy(&tmp)
			return nil, errors.Wrapf(err, "vec: shift element %d", j-1)
		}
		if err := v.traits.assign(v.data.Ptr(j), elem); err != nil {
			v.traits.destroy(&elem)
			v.traits.destroy(&tmp)
			return nil, errors.Wrapf(err, "vec: shift element %d", j-1)
		}
	}
	if err := v.traits.assign(v.data.Ptr(i), tmp); err != nil {
		v.traits.destroy(&tmp)
		return nil, errors.Wrapf(err, "vec: assign element %d", i)
	}
	return v.data.Ptr(i), nil
}

// Insert inserts x before position i, taking ownership of x.
func (v *Vector[T]) Insert(i int, x T) error {
	_, err := v.Emplace(i, func(slot *T) error {
		return v.traits.moveIn(slot, &x)
	})
	return err
}

// InsertCopy inserts an independent copy of x before position i.
func (v *Vector[T]) InsertCopy(i int, x T) error {
	_, err := v.Emplace(i, func(slot *T) error {
		c, err := v.traits.copyOf(x)
		if err != nil {
			return err
		}
		*slot = c
		return nil
	})
	return err
}

// Erase removes the element at position i by shifting each following
// element one slot left, then destroying the vacated final slot. Each shift
// extracts the source value per the relocation policy before assigning, so
// the final slot holds only a moved-from remainder (or, under the copy
// policy, an original whose duplicate replaced it) by the time it is
// destroyed. Capacity is never reduced. A failed shift returns the error
// with the vector in a valid but partially shifted state (basic guarantee).
// Positions at or after i are invalidated.
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.size {
		panic("vec: position out of range")
	}
	for j := i; j < v.size-1; j++ {
		elem, err := v.traits.takeOut(v.data.Ptr(j + 1))
		if err != nil {
			return errors.Wrapf(err, "vec: shift element %d", j+1)
		}
		if err := v.traits.assign(v.data.Ptr(j), elem); err != nil {
			v.traits.destroy(&elem)
			return errors.Wrapf(err, "vec: shift element %d", j+1)
		}
	}
	v.traits.destroy(v.data.Ptr(v.size - 1))
	v.size--
	return nil
}

// PopBack destroys the last element. Calling it on an empty vector panics.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.traits.destroy(v.data.Ptr(v.size - 1))
	v.size--
}

// CopyFrom replaces v's contents with a deep copy of rhs. When rhs does
// not fit v's capacity the copy is built independently and swapped in, so
// a failure leaves v completely unchanged. When capacity suffices the
// block is reused: the overlapping prefix is overwritten by assignment and
// the tail is either copy-constructed or destroyed; Len is updated only
// after every construction and destruction of the call succeeded.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.data.Capacity() {
		c, err := cloneWith(v.traits, rhs)
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}
	overlap := min(v.size, rhs.size)
	for i := 0; i < overlap; i++ {
		elem, err := v.traits.copyOf(*rhs.data.Ptr(i))
		if err != nil {
			return errors.Wrapf(err, "vec: copy element %d", i)
		}
		if err := v.traits.assign(v.data.Ptr(i), elem); err != nil {
			v.traits.destroy(&elem)
			return errors.Wrapf(err, "vec: assign element %d", i)
		}
	}
	if rhs.size > v.size {
		for i := v.size; i < rhs.size; i++ {
			elem, err := v.traits.copyOf(*rhs.data.Ptr(i))
			if err != nil {
				v.traits.destroyRangeReverse(v.data.Slice(v.size, i))
				return errors.Wrapf(err, "vec: copy element %d", i)
			}
			*v.data.Ptr(i) = elem
		}
	} else {
		v.traits.destroyRange(v.data.Slice(rhs.size, v.size))
	}
	v.size = rhs.size
	return nil
}

// MoveFrom replaces v's contents with rhs's in O(1), destroying v's own
// elements first. rhs is left empty and remains fully usable.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.traits.destroyRange(v.data.Slice(0, v.size))
	v.data.MoveFrom(&rhs.data)
	v.size = rhs.size
	v.grows = rhs.grows
	v.relocated = rhs.relocated
	rhs.size = 0
	rhs.grows = 0
	rhs.relocated = 0
}

// Swap exchanges the entire state of two vectors in O(1); cannot fail.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.traits, other.traits = other.traits, v.traits
	v.grows, other.grows = other.grows, v.grows
	v.relocated, other.relocated = other.relocated, v.relocated
}

// Clear destroys all live elements in index order but keeps the block for
// reuse.
func (v *Vector[T]) Clear() {
	v.traits.destroyRange(v.data.Slice(0, v.size))
	v.size = 0
}

// Release destroys all live elements in index order, then drops the block.
// The vector stays valid: it is simply empty with capacity 0.
func (v *Vector[T]) Release() {
	v.traits.destroyRange(v.data.Slice(0, v.size))
	v.size = 0
	v.data.Release()
}
