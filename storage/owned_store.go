package storage

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/polymorph/shape"
)

// OwnedHandle is an exclusive-ownership handle to one stored variant.
//
// The owning OwnedStore releases it exactly once on Drain; access after
// release is a checked error, never a dangling read.
type OwnedHandle struct {
	id       uuid.UUID
	d        shape.Descriptor
	released bool
}

// ID returns the instance identity assigned at adoption, stable across the
// handle's lifetime and usable for release auditing.
func (h *OwnedHandle) ID() uuid.UUID { return h.id }

// Released reports whether the instance behind this handle was released.
func (h *OwnedHandle) Released() bool { return h.released }

// Descriptor returns the owned variant.
// Returns ErrHandleReleased after Release.
func (h *OwnedHandle) Descriptor() (shape.Descriptor, error) {
	if h.released {
		return nil, ErrHandleReleased
	}

	return h.d, nil
}

// Release frees the owned instance. The second call returns ErrDoubleRelease;
// the instance is released at most once per handle.
func (h *OwnedHandle) Release() error {
	if h.released {
		return ErrDoubleRelease
	}
	h.released = true
	h.d = nil

	return nil
}

// OwnedStore holds exclusive-ownership handles to base-typed variants.
//
// Each slot owns one instance; derived identity survives storage because the
// instance itself is stored, never a narrowed copy. Drain releases every
// live slot exactly once, in element order, and retires the store.
type OwnedStore struct {
	slots   []*OwnedHandle
	drained bool
}

// NewOwnedStore creates an empty exclusive-ownership store.
// Complexity: O(1).
func NewOwnedStore() *OwnedStore {
	return &OwnedStore{}
}

// Adopt takes exclusive ownership of d and appends a fresh handle for it.
// Returns ErrNilDescriptor for a nil handle, ErrStoreDrained after Drain.
// Complexity: O(1) amortized.
func (o *OwnedStore) Adopt(d shape.Descriptor) (*OwnedHandle, error) {
	if o.drained {
		return nil, ErrStoreDrained
	}
	if d == nil {
		return nil, ErrNilDescriptor
	}
	h := &OwnedHandle{id: uuid.New(), d: d}
	o.slots = append(o.slots, h)

	return h, nil
}

// Len reports the number of slots, released or not.
func (o *OwnedStore) Len() int { return len(o.slots) }

// At returns the handle in slot i.
// Returns ErrIndexOutOfRange when i is outside [0, Len).
func (o *OwnedStore) At(i int) (*OwnedHandle, error) {
	if i < 0 || i >= len(o.slots) {
		return nil, ErrIndexOutOfRange
	}

	return o.slots[i], nil
}

// Each invokes fn for every owned variant in element order.
// A released slot surfaces ErrHandleReleased; the first error aborts.
// Complexity: O(n).
func (o *OwnedStore) Each(fn func(shape.Descriptor) error) error {
	if o.drained {
		return ErrStoreDrained
	}
	for _, h := range o.slots {
		d, err := h.Descriptor()
		if err != nil {
			return err
		}
		if err = fn(d); err != nil {
			return err
		}
	}

	return nil
}

// Drain releases every live slot exactly once, in element order, and returns
// the IDs released as an audit trail. Slots already released individually are
// skipped, keeping the exactly-once guarantee per instance.
// The store is unusable afterwards; a second Drain returns ErrStoreDrained.
// Complexity: O(n).
func (o *OwnedStore) Drain() ([]uuid.UUID, error) {
	if o.drained {
		return nil, ErrStoreDrained
	}
	o.drained = true

	released := make([]uuid.UUID, 0, len(o.slots))
	for _, h := range o.slots {
		if h.released {
			continue
		}
		if err := h.Release(); err != nil {
			return released, err
		}
		released = append(released, h.id)
	}

	return released, nil
}
