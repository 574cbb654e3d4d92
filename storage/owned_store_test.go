package storage_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymorph/shape"
	"github.com/katalvlaran/polymorph/storage"
)

// populateOwned adopts the standard three-variant cast in order.
func populateOwned(t *testing.T) *storage.OwnedStore {
	t.Helper()
	ow := storage.NewOwnedStore()
	for _, d := range []shape.Descriptor{
		shape.NewShape("Shape1"),
		shape.NewOval(2.0, 3.5, "Oval1"),
		shape.NewCircle(3.3, "Circle1"),
	} {
		_, err := ow.Adopt(d)
		require.NoError(t, err)
	}

	return ow
}

func TestOwnedStore_AdoptNil(t *testing.T) {
	ow := storage.NewOwnedStore()
	_, err := ow.Adopt(nil)
	assert.ErrorIs(t, err, storage.ErrNilDescriptor)
}

// TestOwnedStore_IdentityPreserved verifies most-derived dispatch through
// exclusive-ownership slots in a base-typed collection.
func TestOwnedStore_IdentityPreserved(t *testing.T) {
	ow := populateOwned(t)

	var lines []string
	err := ow.Each(func(d shape.Descriptor) error {
		lines = append(lines, d.Describe())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		`Shape "Shape1"`,
		`Oval "Oval1" with xRadius 2 and yRadius 3.5`,
		`Circle "Circle1" with radius 3.3`,
	}, lines)
}

// TestOwnedStore_DrainExactlyOnce verifies that draining N adopted instances
// yields exactly N release records, each ID exactly once, in element order.
func TestOwnedStore_DrainExactlyOnce(t *testing.T) {
	ow := storage.NewOwnedStore()
	var adopted []uuid.UUID
	for _, d := range []shape.Descriptor{
		shape.NewCircle(7.2, "circle1"),
		shape.NewOval(13.3, 1.2, "Oval1"),
		shape.NewCircle(11.2, "circle2"),
	} {
		h, err := ow.Adopt(d)
		require.NoError(t, err)
		adopted = append(adopted, h.ID())
	}

	released, err := ow.Drain()
	require.NoError(t, err)
	assert.Equal(t, adopted, released, "release order must follow element order")

	seen := make(map[uuid.UUID]int)
	for _, id := range released {
		seen[id]++
	}
	for _, id := range adopted {
		assert.Equal(t, 1, seen[id], "each instance released exactly once")
	}

	// The store is retired after Drain.
	_, err = ow.Drain()
	assert.ErrorIs(t, err, storage.ErrStoreDrained)
	_, err = ow.Adopt(shape.NewShape("late"))
	assert.ErrorIs(t, err, storage.ErrStoreDrained)
	assert.ErrorIs(t, ow.Each(func(shape.Descriptor) error { return nil }), storage.ErrStoreDrained)
}

// TestOwnedStore_UseAfterRelease verifies that access through a released
// handle is a reported condition, not a dangling read.
func TestOwnedStore_UseAfterRelease(t *testing.T) {
	ow := storage.NewOwnedStore()
	h, err := ow.Adopt(shape.NewCircle(3.3, "Circle1"))
	require.NoError(t, err)

	require.NoError(t, h.Release())
	assert.True(t, h.Released())

	_, err = h.Descriptor()
	assert.ErrorIs(t, err, storage.ErrHandleReleased)
	assert.ErrorIs(t, h.Release(), storage.ErrDoubleRelease)

	// Iteration surfaces the released slot instead of skipping it silently.
	assert.ErrorIs(t, ow.Each(func(shape.Descriptor) error { return nil }), storage.ErrHandleReleased)

	// Drain skips the already-released slot: zero further releases.
	released, err := ow.Drain()
	require.NoError(t, err)
	assert.Empty(t, released)
}

func TestOwnedStore_At(t *testing.T) {
	ow := populateOwned(t)

	h, err := ow.At(2)
	require.NoError(t, err)
	d, err := h.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, shape.KindCircle, d.Kind())

	_, err = ow.At(3)
	assert.ErrorIs(t, err, storage.ErrIndexOutOfRange)
}
