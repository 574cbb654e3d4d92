package storage

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/polymorph/shape"
)

// sharedBox is the reference-counted cell behind every SharedHandle sibling.
// The instance is discarded when refs reaches zero.
type sharedBox struct {
	id   uuid.UUID
	d    shape.Descriptor
	refs int
}

// SharedHandle is one reference to a shared variant instance.
//
// Siblings created by Retain count toward the same instance; the instance
// stays valid until its last holder releases, and becomes a checked error
// afterwards.
type SharedHandle struct {
	box      *sharedBox
	released bool
}

// NewShared wraps d in a shared instance with a single reference.
// Returns ErrNilDescriptor for a nil handle.
// Complexity: O(1).
func NewShared(d shape.Descriptor) (*SharedHandle, error) {
	if d == nil {
		return nil, ErrNilDescriptor
	}

	return &SharedHandle{box: &sharedBox{id: uuid.New(), d: d, refs: 1}}, nil
}

// ID returns the shared instance identity, common to all siblings.
func (h *SharedHandle) ID() uuid.UUID { return h.box.id }

// Refs reports the live reference count of the instance (0 once dead).
func (h *SharedHandle) Refs() int { return h.box.refs }

// Released reports whether this particular handle released its reference.
func (h *SharedHandle) Released() bool { return h.released }

// Retain creates a sibling handle and increments the reference count.
// Returns ErrHandleReleased when called through a released handle.
// Complexity: O(1).
func (h *SharedHandle) Retain() (*SharedHandle, error) {
	if h.released {
		return nil, ErrHandleReleased
	}
	h.box.refs++

	return &SharedHandle{box: h.box}, nil
}

// Descriptor returns the shared variant.
// Returns ErrHandleReleased once this handle released its reference.
func (h *SharedHandle) Descriptor() (shape.Descriptor, error) {
	if h.released {
		return nil, ErrHandleReleased
	}

	return h.box.d, nil
}

// Release drops this handle's reference. The instance is discarded only when
// the last holder releases. A second Release on the same handle returns
// ErrDoubleRelease and does not touch the count.
// Complexity: O(1).
func (h *SharedHandle) Release() error {
	if h.released {
		return ErrDoubleRelease
	}
	h.released = true
	h.box.refs--
	if h.box.refs == 0 {
		h.box.d = nil // last holder gone, instance dies here
	}

	return nil
}

// SharedStore holds shared-ownership handles to base-typed variants.
//
// Append retains its own reference, so callers keep theirs; Drain releases
// only the store's references. An instance outlives the store for as long as
// any outside holder remains.
type SharedStore struct {
	slots   []*SharedHandle
	drained bool
}

// NewSharedStore creates an empty shared-ownership store.
// Complexity: O(1).
func NewSharedStore() *SharedStore {
	return &SharedStore{}
}

// Append retains h and stores the new sibling reference.
// Returns ErrNilHandle for a nil handle, ErrHandleReleased for a dead one,
// ErrStoreDrained after Drain.
// Complexity: O(1) amortized.
func (s *SharedStore) Append(h *SharedHandle) error {
	if s.drained {
		return ErrStoreDrained
	}
	if h == nil {
		return ErrNilHandle
	}
	sibling, err := h.Retain()
	if err != nil {
		return err
	}
	s.slots = append(s.slots, sibling)

	return nil
}

// Len reports the number of stored references.
func (s *SharedStore) Len() int { return len(s.slots) }

// At returns the store's handle in slot i.
// Returns ErrIndexOutOfRange when i is outside [0, Len).
func (s *SharedStore) At(i int) (*SharedHandle, error) {
	if i < 0 || i >= len(s.slots) {
		return nil, ErrIndexOutOfRange
	}

	return s.slots[i], nil
}

// Each invokes fn for every referenced variant in element order.
// A released reference surfaces ErrHandleReleased; the first error aborts.
// Complexity: O(n).
func (s *SharedStore) Each(fn func(shape.Descriptor) error) error {
	if s.drained {
		return ErrStoreDrained
	}
	for _, h := range s.slots {
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

// Drain releases the store's references in element order and retires the
// store. Instances still held elsewhere stay valid.
// A second Drain returns ErrStoreDrained.
// Complexity: O(n).
func (s *SharedStore) Drain() error {
	if s.drained {
		return ErrStoreDrained
	}
	s.drained = true

	for _, h := range s.slots {
		if err := h.Release(); err != nil {
			return err
		}
	}

	return nil
}
