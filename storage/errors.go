package storage

import "errors"

// Sentinel errors for storage strategy operations.
var (
	// ErrNilDescriptor indicates a nil shape.Descriptor was offered for storage.
	ErrNilDescriptor = errors.New("storage: nil descriptor")

	// ErrNilHandle indicates a nil handle was offered for storage.
	ErrNilHandle = errors.New("storage: nil handle")

	// ErrIndexOutOfRange indicates a slot index outside [0, Len).
	ErrIndexOutOfRange = errors.New("storage: slot index out of range")

	// ErrHandleReleased indicates a checked access through a handle whose
	// instance has already been released.
	ErrHandleReleased = errors.New("storage: handle already released")

	// ErrDoubleRelease indicates a second Release on the same handle.
	ErrDoubleRelease = errors.New("storage: double release")

	// ErrStoreDrained indicates an operation on a store after Drain.
	ErrStoreDrained = errors.New("storage: store already drained")
)
