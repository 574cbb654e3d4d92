package storage

import "github.com/katalvlaran/polymorph/shape"

// ValueStore holds base-typed Shape values.
//
// Insertion narrows: every element is a freshly built base-only value, so
// derived identity never survives this strategy. That loss is the contract,
// not a failure mode — Insert succeeds and the truncation is observable
// through Describe.
type ValueStore struct {
	slots []shape.Shape
}

// NewValueStore creates an empty by-value store.
// Complexity: O(1).
func NewValueStore() *ValueStore {
	return &ValueStore{}
}

// Insert narrows d to a base-only Shape value and appends it.
// Returns ErrNilDescriptor for a nil handle.
// Complexity: O(1) amortized.
func (v *ValueStore) Insert(d shape.Descriptor) error {
	if d == nil {
		return ErrNilDescriptor
	}
	v.slots = append(v.slots, shape.Narrow(d))

	return nil
}

// Len reports the number of stored values.
func (v *ValueStore) Len() int { return len(v.slots) }

// At returns a copy of the value in slot i.
// Returns ErrIndexOutOfRange when i is outside [0, Len).
func (v *ValueStore) At(i int) (shape.Shape, error) {
	if i < 0 || i >= len(v.slots) {
		return shape.Shape{}, ErrIndexOutOfRange
	}

	return v.slots[i], nil
}

// Each invokes fn for every stored value in element order.
// The first error returned by fn aborts iteration and is propagated.
// Complexity: O(n).
func (v *ValueStore) Each(fn func(shape.Descriptor) error) error {
	for i := range v.slots {
		if err := fn(v.slots[i]); err != nil {
			return err
		}
	}

	return nil
}
