package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymorph/shape"
	"github.com/katalvlaran/polymorph/storage"
)

func TestValueStore_InsertNil(t *testing.T) {
	vs := storage.NewValueStore()
	assert.ErrorIs(t, vs.Insert(nil), storage.ErrNilDescriptor)
	assert.Equal(t, 0, vs.Len())
}

// TestValueStore_SlicingInvariant verifies that a derived variant copied into
// a base-typed value slot describes itself as the base variant only.
func TestValueStore_SlicingInvariant(t *testing.T) {
	vs := storage.NewValueStore()
	require.NoError(t, vs.Insert(shape.NewCircle(3.3, "Circle1")))
	require.NoError(t, vs.Insert(shape.NewOval(2.0, 3.5, "Oval1")))

	got, err := vs.At(0)
	require.NoError(t, err)
	assert.Equal(t, `Shape "Circle1"`, got.Describe())
	assert.NotContains(t, got.Describe(), "3.3")

	got, err = vs.At(1)
	require.NoError(t, err)
	assert.Equal(t, `Shape "Oval1"`, got.Describe())
}

func TestValueStore_AtOutOfRange(t *testing.T) {
	vs := storage.NewValueStore()
	require.NoError(t, vs.Insert(shape.NewShape("Shape1")))

	_, err := vs.At(-1)
	assert.ErrorIs(t, err, storage.ErrIndexOutOfRange)
	_, err = vs.At(1)
	assert.ErrorIs(t, err, storage.ErrIndexOutOfRange)
}

func TestValueStore_EachOrderAndAbort(t *testing.T) {
	vs := storage.NewValueStore()
	require.NoError(t, vs.Insert(shape.NewCircle(7.2, "circle1")))
	require.NoError(t, vs.Insert(shape.NewOval(13.3, 1.2, "Oval1")))
	require.NoError(t, vs.Insert(shape.NewCircle(11.2, "circle2")))

	var names []string
	err := vs.Each(func(d shape.Descriptor) error {
		names = append(names, d.Name())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"circle1", "Oval1", "circle2"}, names)

	// The first callback error aborts iteration.
	calls := 0
	err = vs.Each(func(shape.Descriptor) error {
		calls++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}
