// Package storage implements the three heterogeneous storage strategies for
// shape.Descriptor values, each with a different identity-preservation
// guarantee and ownership model.
//
// What:
//
//   - ValueStore: base-typed value slots. Insertion narrows every element to
//     a fresh base-only Shape, so derived identity is lost by construction —
//     the slicing failure mode, made explicit and observable.
//   - OwnedStore: exclusive-ownership handles. Each slot owns one instance;
//     Drain releases every live slot exactly once, in element order, and
//     returns the released instance IDs as an audit trail.
//   - SharedStore + SharedHandle: reference-counted ownership. Retain creates
//     sibling references; an instance dies only when its last holder
//     releases. Drain drops only the store's references.
//
// All three stores expose Each(func(shape.Descriptor) error) error and so
// satisfy the dispatch.Source contract without importing it.
//
// Why:
//   - Let tests pin down which strategies preserve most-derived dispatch
//   - Replace undefined use-after-free with checked, reported conditions
//   - Make release counts auditable (exactly-once, last-holder-releases)
//
// Concurrency:
//
//	Stores are not safe for concurrent use. Each collection is exclusively
//	owned by the scope that created it, and the whole dispatch path is
//	synchronous.
//
// Errors:
//
//   - ErrNilDescriptor    nil descriptor offered for storage
//   - ErrNilHandle        nil handle offered for storage
//   - ErrIndexOutOfRange  slot index outside [0, Len)
//   - ErrHandleReleased   checked access after release
//   - ErrDoubleRelease    second Release on the same handle
//   - ErrStoreDrained     operation on a drained store
//
// Complexity:
//
//   - Insert/Adopt/Append/At: Time O(1) amortized, Memory O(1)
//   - Each/Drain:             Time O(n), Memory O(1) (Drain audit: O(n))
package storage
