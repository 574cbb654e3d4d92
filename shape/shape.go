// Package shape: base variant and the explicit narrowing conversion.
package shape

import (
	"fmt"
	"strconv"
)

// DefaultName is assigned when a variant is constructed with an empty label.
const DefaultName = "unnamed"

// Shape is the base variant: a named entity with no dimensions.
//
// Shape is a plain value type; copying it copies the whole variant.
type Shape struct {
	name string
}

// NewShape constructs a base Shape. An empty name defaults to DefaultName.
// Complexity: O(1).
func NewShape(name string) *Shape {
	if name == "" {
		name = DefaultName
	}

	return &Shape{name: name}
}

// Name returns the label the Shape was constructed with.
func (s Shape) Name() string { return s.name }

// Kind reports KindShape.
func (s Shape) Kind() Kind { return KindShape }

// Describe renders the generic base text. It carries no dimensions:
// a narrowed value has nothing more to say about itself.
func (s Shape) Describe() string {
	return fmt.Sprintf("Shape %q", s.name)
}

// Narrow converts any Descriptor into a base-only Shape value, keeping the
// name and discarding every derived field. This is the explicit form of
// slicing: the result is a freshly constructed base value, not a truncated
// copy of the derived layout.
//
// Narrow(nil) yields a default-named Shape.
// Complexity: O(1).
func Narrow(d Descriptor) Shape {
	if d == nil {
		return Shape{name: DefaultName}
	}

	return Shape{name: d.Name()}
}

// formatRadius renders a radius with the minimal digits that round-trip,
// so 3.3 prints as "3.3" and 2.0 prints as "2".
func formatRadius(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}
