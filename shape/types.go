// Package shape defines the Descriptor dispatch contract and the concrete
// variant types Shape, Oval and Circle, layered by refinement.
//
// This file declares Kind, Descriptor, and the package sentinel errors.
//
// Errors:
//
//	ErrNilDescriptor - a nil Descriptor handle was supplied.
//	ErrNotOval       - downcast target is not an Oval (or Circle).
//	ErrNotCircle     - downcast target is not a Circle.
package shape

import "errors"

// Sentinel errors for shape contract operations.
var (
	// ErrNilDescriptor indicates a nil Descriptor handle was supplied.
	ErrNilDescriptor = errors.New("shape: nil descriptor")

	// ErrNotOval indicates a downcast to Oval was attempted on a variant
	// that carries no Oval layer.
	ErrNotOval = errors.New("shape: descriptor is not an oval")

	// ErrNotCircle indicates a downcast to Circle was attempted on a variant
	// that carries no Circle layer.
	ErrNotCircle = errors.New("shape: descriptor is not a circle")
)

// Kind identifies the most-derived variant behind a Descriptor.
//
// Refinement is one-directional: KindCircle may be viewed as KindOval,
// never the reverse.
type Kind int

const (
	// KindShape is the base variant: a name and nothing else.
	KindShape Kind = iota

	// KindOval refines Shape with two radii.
	KindOval

	// KindCircle refines Oval with a single radius (both Oval radii equal).
	KindCircle
)

// String returns the human-readable variant name.
func (k Kind) String() string {
	switch k {
	case KindShape:
		return "Shape"
	case KindOval:
		return "Oval"
	case KindCircle:
		return "Circle"
	default:
		return "Unknown"
	}
}

// Descriptor is the dispatch contract every variant implements.
//
// Calling Describe through a Descriptor-typed handle always invokes the
// most-derived implementation of the stored value; whether that identity
// survived storage is decided by the storage strategy, never by the caller.
type Descriptor interface {
	// Name returns the label the variant was constructed with.
	Name() string

	// Kind reports the most-derived variant identity.
	Kind() Kind

	// Describe renders a deterministic, variant-specific line of text.
	// It is a pure function of the variant's fields.
	Describe() string
}
