package shape

import "fmt"

// Circle refines Oval by constraining both radii to a single radius.
//
// The constraint is established at construction: the embedded Oval layer
// stores xRadius == yRadius == radius, so a Circle viewed through the Oval
// contract reports equal radii with no information loss.
type Circle struct {
	Oval
}

// NewCircle constructs a Circle with the given radius and label.
// An empty name defaults to DefaultName.
// Complexity: O(1).
func NewCircle(radius float64, name string) *Circle {
	return &Circle{Oval: *NewOval(radius, radius, name)}
}

// Radius returns the single radius of the Circle.
func (c Circle) Radius() float64 { return c.xRadius }

// Kind reports KindCircle.
func (c Circle) Kind() Kind { return KindCircle }

// Describe renders the Circle-specific text with a single radius,
// distinguishable from the Oval output of the layer beneath it.
func (c Circle) Describe() string {
	return fmt.Sprintf("Circle %q with radius %s", c.name, formatRadius(c.xRadius))
}
