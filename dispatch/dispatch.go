package dispatch

import (
	"fmt"

	"github.com/katalvlaran/polymorph/shape"
)

// Describe resolves and invokes the most-derived Describe of d.
// Returns ErrNilDescriptor for a nil handle.
//
// The invoker never inspects the concrete type: whatever identity the storage
// strategy preserved is the identity that answers here.
// Complexity: O(1).
func Describe(d shape.Descriptor) (string, error) {
	if d == nil {
		return "", ErrNilDescriptor
	}

	return d.Describe(), nil
}

// DescribeAll walks src in element order, resolves Describe per element, and
// returns the collected lines.
//
// Options may install a cancellation context (checked between elements), an
// output sink receiving one line per element, and a per-element hook.
// Checked-access errors from the source (released handles, drained stores)
// propagate unchanged; hook and sink errors abort iteration.
// Complexity: O(n) elements, O(n) memory for the transcript.
func DescribeAll(src Source, opts ...Option) ([]string, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	// Resolve options onto defaults.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		lines []string
		idx   int
	)
	err := src.Each(func(d shape.Descriptor) error {
		// Honor cancellation between elements.
		if ctxErr := o.Ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		text, dErr := Describe(d)
		if dErr != nil {
			return dErr
		}
		lines = append(lines, text)

		if o.Writer != nil {
			if _, wErr := fmt.Fprintln(o.Writer, text); wErr != nil {
				return fmt.Errorf("dispatch: sink write: %w", wErr)
			}
		}
		if o.OnDescribe != nil {
			if hErr := o.OnDescribe(idx, text); hErr != nil {
				return hErr
			}
		}
		idx++

		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}
