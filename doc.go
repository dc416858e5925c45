// Package vec implements a growable contiguous sequence (vector) with
// explicit, user-visible control over storage, element construction,
// element destruction and failure rollback.
//
// # Overview
//
// The package is split into two layers on purpose:
//
//   - RawStorage owns a fixed block of raw slots and knows nothing about
//     element lifetimes.
//   - Vector owns one RawStorage plus the count of live elements, and
//     performs every construction, destruction and relocation itself.
//
// Keeping the raw-capacity owner separate from the lifetime owner is what
// makes the failure-safety reasoning tractable: at any point it is clear
// exactly which slots hold live elements and who must destroy them.
//
// This is a building block for higher-level containers and for code whose
// element types own resources (handles, buffers, reference-counted state)
// and therefore need deterministic construction, copying and destruction —
// things a plain Go slice cannot express.
//
// # Basic Usage
//
//	v := vec.NewPlain[int]()
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_ = v.Insert(1, 5) // [1 5 2]
//
//	for i, x := range v.Slice() {
//		fmt.Println(i, x)
//	}
//
// # Element Traits
//
// A Vector is created with a Traits value describing what its element type
// can do: default-construct, copy, move, assign, destroy. The zero Traits
// describes a plain value type and is all most callers need. Types that own
// resources declare hooks, and the presence or absence of those hooks — not
// a runtime check — decides how elements travel when the vector grows:
//
//   - a declared Move cannot fail, so growth relocates by moving;
//   - otherwise a declared Copy is used, and a failed copy leaves the
//     original block and all its elements intact;
//   - a type with a destructor but neither hook cannot be relocated at all,
//     and growth panics for it.
//
// # Failure Safety
//
// Recoverable failures (a failed allocation, a failed element hook) are
// returned as errors, and every operation documents the state it leaves
// behind: most are all-or-nothing, while Erase and the interior shift of a
// no-growth Emplace depend on element assignment and guarantee only a
// valid state. Out-of-bounds access, popping an empty vector and similar
// caller bugs are panics, not errors.
//
// # Thread Safety
//
// Vectors are single-threaded values. No operation is safe to call
// concurrently with any other operation on the same vector, reads
// included; callers serialize externally.
//
// # Performance Characteristics
//
//   - Len/Cap/At: O(1)
//   - PushBack/EmplaceBack: amortized O(1), doubling growth
//   - Insert/Erase at position i: O(Len - i)
//   - MoveFrom/Detach/Swap: O(1), cannot fail
//
// # Important Notes
//
//   - Any growing operation invalidates all pointers and Slice views into
//     the vector; shifting operations invalidate positions at or after the
//     mutated index.
//   - PushBack and Insert take ownership of their argument; use the Copy
//     variants when the caller keeps the value.
//   - Release destroys all elements and drops storage; the vector remains
//     valid and empty afterwards.
package vec
