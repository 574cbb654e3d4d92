package shape

import "fmt"

// Oval refines Shape with two radii.
//
// Radii are accepted as given; non-positive values are not rejected,
// matching the permissive construction contract of the base variant.
type Oval struct {
	Shape
	xRadius float64
	yRadius float64
}

// NewOval constructs an Oval with the given radii and label.
// An empty name defaults to DefaultName.
// Complexity: O(1).
func NewOval(xRadius, yRadius float64, name string) *Oval {
	return &Oval{
		Shape:   *NewShape(name),
		xRadius: xRadius,
		yRadius: yRadius,
	}
}

// XRadius returns the horizontal radius.
func (o Oval) XRadius() float64 { return o.xRadius }

// YRadius returns the vertical radius.
func (o Oval) YRadius() float64 { return o.yRadius }

// Kind reports KindOval.
func (o Oval) Kind() Kind { return KindOval }

// Describe renders the Oval-specific text, including both radii so the
// output is distinguishable from the base variant's.
func (o Oval) Describe() string {
	return fmt.Sprintf("Oval %q with xRadius %s and yRadius %s",
		o.name, formatRadius(o.xRadius), formatRadius(o.yRadius))
}
