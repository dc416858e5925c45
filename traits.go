package vec

import "github.com/pkg/errors"

// Traits declares the lifetime capabilities of an element type. Every field
// is optional; the zero Traits describes a plain value type: zero-value
// default construction, bitwise copy and relocation, trivial destruction.
// Only types that own resources or are address-sensitive need hooks.
//
// A Traits value is consulted once per vector, not per call: the relocation
// strategy it implies is fixed by which hooks are present.
type Traits[T any] struct {
	// New default-constructs an element. nil means the zero value of T,
	// which never fails.
	New func() (T, error)

	// Copy produces an independent duplicate of an element. nil means
	// bitwise copy. A type with Destroy but no Copy is not copyable and
	// copy-based operations panic for it.
	Copy func(T) (T, error)

	// Move relocates the element at src into the returned value, leaving
	// *src in a state Destroy can handle. Move has no error return on
	// purpose: providing it is the guarantee that relocating this type
	// cannot fail, and that guarantee is what growth paths rely on.
	Move func(src *T) T

	// Assign overwrites the live element at dst with src, taking ownership
	// of src on success. On failure *dst must remain valid and src must
	// not be consumed. nil means plain Go assignment. A type with Destroy
	// but no Assign is not assignable and shifting operations panic for it.
	Assign func(dst *T, src T) error

	// Destroy releases resources owned by the element. nil means trivial
	// destruction. The slot is re-zeroed after Destroy returns, so a dead
	// slot never pins heap objects through stale copies.
	Destroy func(*T)
}

// RelocationPolicy is how elements of a type travel between storage blocks.
type RelocationPolicy uint8

const (
	// RelocateTrivial: bitwise copy; cannot fail.
	RelocateTrivial RelocationPolicy = iota
	// RelocateMove: via the Move hook; cannot fail by contract.
	RelocateMove
	// RelocateCopy: via the Copy hook, originals destroyed only after the
	// whole transfer succeeded. A failed copy leaves the source block and
	// all its elements intact.
	RelocateCopy
	// RelocateNone: the type declares a destructor but neither a move nor
	// a copy, so there is no sanctioned way to re-home an element. Any
	// operation that would relocate panics for such a type.
	RelocateNone
)

func (p RelocationPolicy) String() string {
	switch p {
	case RelocateTrivial:
		return "trivial"
	case RelocateMove:
		return "move"
	case RelocateCopy:
		return "copy"
	case RelocateNone:
		return "none"
	default:
		return "unknown"
	}
}

// Relocation reports the policy implied by the declared hooks. The choice
// is safety-driven: a fallible copy is preferred over an undeclared move
// because a failed copy leaves the original block untouched.
func (tr *Traits[T]) Relocation() RelocationPolicy {
	switch {
	case tr.Move != nil:
		return RelocateMove
	case tr.Copy != nil:
		return RelocateCopy
	case tr.Destroy != nil:
		return RelocateNone
	default:
		return RelocateTrivial
	}
}

// defaultOf default-constructs one element.
func (tr *Traits[T]) defaultOf() (T, error) {
	if tr.New != nil {
		return tr.New()
	}
	var zero T
	return zero, nil
}

// copyOf duplicates x. Panics when the type declares a destructor but no
// copy hook; such a type has no sanctioned duplicate operation.
func (tr *Traits[T]) copyOf(x T) (T, error) {
	if tr.Copy != nil {
		return tr.Copy(x)
	}
	if tr.Destroy != nil {
		panic("vec: element type is not copyable")
	}
	return x, nil
}

// assign overwrites the live element at dst with src.
func (tr *Traits[T]) assign(dst *T, src T) error {
	if tr.Assign != nil {
		return tr.Assign(dst, src)
	}
	if tr.Destroy != nil {
		panic("vec: element type is not assignable")
	}
	*dst = src
	return nil
}

// moveIn relocates *src into the raw slot dst, consuming *src. Under the
// copy policy the source is destroyed only after the copy succeeded, so a
// failure leaves *src live and dst raw.
func (tr *Traits[T]) moveIn(dst, src *T) error {
	switch tr.Relocation() {
	case RelocateTrivial:
		*dst = *src
		var zero T
		*src = zero
	case RelocateMove:
		*dst = tr.Move(src)
		tr.destroy(src)
	case RelocateCopy:
		c, err := tr.Copy(*src)
		if err != nil {
			return err
		}
		*dst = c
		tr.destroy(src)
	default:
		panic("vec: element type cannot be relocated")
	}
	return nil
}

// takeOut extracts the value of a live slot for a shifting assignment,
// without duplicating ownership: the move policy extracts with Move, so the
// slot keeps only a moved-from remainder, and the copy policy returns an
// independent duplicate, leaving the slot the owner of the original. The
// caller owns the returned value until it is assigned into a slot.
func (tr *Traits[T]) takeOut(p *T) (T, error) {
	switch tr.Relocation() {
	case RelocateTrivial:
		return *p, nil
	case RelocateMove:
		return tr.Move(p), nil
	case RelocateCopy:
		return tr.Copy(*p)
	default:
		panic("vec: element type cannot be relocated")
	}
}

// relocateRange constructs the elements of src into the raw slots of dst
// (equal length). Originals stay live; the caller destroys them after all
// dependent work succeeded. On failure the already-constructed prefix in
// dst is destroyed before returning, so dst is raw again and src is intact.
func (tr *Traits[T]) relocateRange(dst, src []T) error {
	switch tr.Relocation() {
	case RelocateTrivial:
		copy(dst, src)
	case RelocateMove:
		for i := range src {
			dst[i] = tr.Move(&src[i])
		}
	case RelocateCopy:
		for i := range src {
			c, err := tr.Copy(src[i])
			if err != nil {
				tr.destroyRangeReverse(dst[:i])
				return errors.Wrapf(err, "vec: relocate element %d", i)
			}
			dst[i] = c
		}
	default:
		panic("vec: element type cannot be relocated")
	}
	return nil
}

// destroy runs the destructor hook, then re-zeroes the slot.
func (tr *Traits[T]) destroy(p *T) {
	if tr.Destroy != nil {
		tr.Destroy(p)
	}
	var zero T
	*p = zero
}

// destroyRange destroys slots in index order.
func (tr *Traits[T]) destroyRange(s []T) {
	for i := range s {
		tr.destroy(&s[i])
	}
}

// destroyRangeReverse destroys slots last-to-first, the rollback order for
// a partially constructed run.
func (tr *Traits[T]) destroyRangeReverse(s []T) {
	for i := len(s) - 1; i >= 0; i-- {
		tr.destroy(&s[i])
	}
}
