package shape

// AsOval performs a checked downcast from a Descriptor to its Oval layer.
//
// A Circle is a legal Oval view: the returned Oval reports
// xRadius == yRadius == radius and describes itself as an Oval.
// A base Shape carries no Oval layer and yields ErrNotOval; there is no
// silent reinterpretation in either direction.
// Complexity: O(1).
func AsOval(d Descriptor) (*Oval, error) {
	switch v := d.(type) {
	case nil:
		return nil, ErrNilDescriptor
	case *Oval:
		return v, nil
	case Oval:
		return &v, nil
	case *Circle:
		return &v.Oval, nil
	case Circle:
		return &v.Oval, nil
	default:
		return nil, ErrNotOval
	}
}

// AsCircle performs a checked downcast from a Descriptor to a Circle.
//
// Only a true Circle qualifies; an Oval may never be treated as a Circle,
// even when its radii happen to be equal — refinement is one-directional.
// Complexity: O(1).
func AsCircle(d Descriptor) (*Circle, error) {
	switch v := d.(type) {
	case nil:
		return nil, ErrNilDescriptor
	case *Circle:
		return v, nil
	case Circle:
		return &v, nil
	default:
		return nil, ErrNotCircle
	}
}
