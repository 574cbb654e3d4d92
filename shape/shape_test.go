package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymorph/shape"
)

func TestNewShape_Describe(t *testing.T) {
	s := shape.NewShape("Shape1")
	assert.Equal(t, "Shape1", s.Name())
	assert.Equal(t, shape.KindShape, s.Kind())
	assert.Equal(t, `Shape "Shape1"`, s.Describe())
}

func TestNewShape_EmptyNameDefaults(t *testing.T) {
	s := shape.NewShape("")
	assert.Equal(t, shape.DefaultName, s.Name())
	assert.Equal(t, `Shape "unnamed"`, s.Describe())
}

func TestNewOval_Describe(t *testing.T) {
	o := shape.NewOval(2.0, 3.5, "Oval1")
	assert.Equal(t, "Oval1", o.Name())
	assert.Equal(t, shape.KindOval, o.Kind())
	assert.Equal(t, 2.0, o.XRadius())
	assert.Equal(t, 3.5, o.YRadius())
	assert.Equal(t, `Oval "Oval1" with xRadius 2 and yRadius 3.5`, o.Describe())
}

func TestNewCircle_Describe(t *testing.T) {
	c := shape.NewCircle(3.3, "Circle1")
	assert.Equal(t, "Circle1", c.Name())
	assert.Equal(t, shape.KindCircle, c.Kind())
	assert.Equal(t, 3.3, c.Radius())
	assert.Equal(t, `Circle "Circle1" with radius 3.3`, c.Describe())
}

// TestDescribe_PureFunction verifies Describe output depends only on fields:
// two variants built from equal parameters describe identically, and repeated
// calls on the same variant never change.
func TestDescribe_PureFunction(t *testing.T) {
	a := shape.NewCircle(7.2, "circle1")
	b := shape.NewCircle(7.2, "circle1")
	assert.Equal(t, a.Describe(), b.Describe())
	assert.Equal(t, a.Describe(), a.Describe())
}

// TestDescribe_Distinguishable locks in that each variant's output differs
// from its parent's even when built from the same label.
func TestDescribe_Distinguishable(t *testing.T) {
	s := shape.NewShape("same")
	o := shape.NewOval(1, 1, "same")
	c := shape.NewCircle(1, "same")

	assert.NotEqual(t, s.Describe(), o.Describe())
	assert.NotEqual(t, o.Describe(), c.Describe())
	assert.NotEqual(t, s.Describe(), c.Describe())
}

// TestDispatch_MostDerived verifies that a Descriptor-typed handle always
// invokes the most-derived Describe of the value it holds.
func TestDispatch_MostDerived(t *testing.T) {
	handles := []shape.Descriptor{
		shape.NewShape("Shape1"),
		shape.NewOval(2.0, 3.5, "Oval1"),
		shape.NewCircle(3.3, "Circle1"),
	}
	want := []string{
		`Shape "Shape1"`,
		`Oval "Oval1" with xRadius 2 and yRadius 3.5`,
		`Circle "Circle1" with radius 3.3`,
	}
	for i, d := range handles {
		assert.Equal(t, want[i], d.Describe())
	}
}

func TestNarrow_KeepsNameDropsRest(t *testing.T) {
	c := shape.NewCircle(3.3, "Circle1")
	base := shape.Narrow(c)

	assert.Equal(t, "Circle1", base.Name())
	assert.Equal(t, shape.KindShape, base.Kind())
	assert.Equal(t, `Shape "Circle1"`, base.Describe())
	assert.NotContains(t, base.Describe(), "3.3")
}

func TestNarrow_Nil(t *testing.T) {
	base := shape.Narrow(nil)
	assert.Equal(t, shape.DefaultName, base.Name())
}

func TestAsOval_CircleView(t *testing.T) {
	c := shape.NewCircle(3.3, "Circle1")
	view, err := shape.AsOval(c)
	require.NoError(t, err)

	// The Oval view of a Circle reports equal radii and the Oval text.
	assert.Equal(t, 3.3, view.XRadius())
	assert.Equal(t, 3.3, view.YRadius())
	assert.Equal(t, `Oval "Circle1" with xRadius 3.3 and yRadius 3.3`, view.Describe())
}

func TestAsOval_OvalAndErrors(t *testing.T) {
	o := shape.NewOval(13.3, 1.2, "Oval1")
	view, err := shape.AsOval(o)
	require.NoError(t, err)
	assert.Same(t, o, view)

	_, err = shape.AsOval(shape.NewShape("Shape1"))
	assert.ErrorIs(t, err, shape.ErrNotOval)

	_, err = shape.AsOval(nil)
	assert.ErrorIs(t, err, shape.ErrNilDescriptor)
}

func TestAsCircle_OneDirectional(t *testing.T) {
	c := shape.NewCircle(11.2, "circle2")
	got, err := shape.AsCircle(c)
	require.NoError(t, err)
	assert.Same(t, c, got)

	// Equal radii do not make an Oval a Circle.
	_, err = shape.AsCircle(shape.NewOval(5, 5, "round-ish"))
	assert.ErrorIs(t, err, shape.ErrNotCircle)

	_, err = shape.AsCircle(shape.NewShape("Shape1"))
	assert.ErrorIs(t, err, shape.ErrNotCircle)

	_, err = shape.AsCircle(nil)
	assert.ErrorIs(t, err, shape.ErrNilDescriptor)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Shape", shape.KindShape.String())
	assert.Equal(t, "Oval", shape.KindOval.String())
	assert.Equal(t, "Circle", shape.KindCircle.String())
	assert.Equal(t, "Unknown", shape.Kind(42).String())
}
