// Package registry maps variant kind names to shape constructors, so callers
// can build Descriptor values from data (scenario files, CLI input) without
// touching concrete types.
//
// The registry is safe for concurrent use; populate it during initialization
// and treat it as read-mostly afterwards.
//
// Errors:
//
//	ErrEmptyKind        - kind name is the empty string.
//	ErrNilBuilder       - Register called with a nil Builder.
//	ErrDuplicateVariant - kind already registered.
//	ErrUnknownVariant   - New called with an unregistered kind.
//	ErrBadDimensions    - dimension count does not match the variant's arity.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/polymorph/shape"
)

// Sentinel errors for registry operations.
var (
	// ErrEmptyKind indicates a kind name was the empty string.
	ErrEmptyKind = errors.New("registry: kind name is empty")

	// ErrNilBuilder indicates Register was called with a nil Builder.
	ErrNilBuilder = errors.New("registry: nil builder")

	// ErrDuplicateVariant indicates the kind is already registered.
	ErrDuplicateVariant = errors.New("registry: variant already registered")

	// ErrUnknownVariant indicates New referenced an unregistered kind.
	ErrUnknownVariant = errors.New("registry: unknown variant")

	// ErrBadDimensions indicates a dimension count mismatch for the variant.
	ErrBadDimensions = errors.New("registry: wrong number of dimensions")
)

// Params carries the construction inputs for any variant: a label plus zero
// or more dimensions. Dimension values are accepted as given; arity is
// checked per variant, range is not.
type Params struct {
	// Name is the variant label; empty defaults to shape.DefaultName.
	Name string

	// Dimensions holds the variant's radii, in declaration order.
	Dimensions []float64
}

// Builder constructs one variant from Params. Builders MUST validate arity
// early and return sentinel errors; they never panic.
type Builder func(p Params) (shape.Descriptor, error)

// Registry stores variant Builders keyed by lower-cased kind name.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// New constructs an empty Registry.
// Complexity: O(1).
func New() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register stores b under kind, guarding against duplicates.
// Kind names are case-insensitive.
// Complexity: O(1).
func (r *Registry) Register(kind string, b Builder) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if b == nil {
		return ErrNilBuilder
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(kind)
	if _, exists := r.builders[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVariant, kind)
	}
	r.builders[key] = b

	return nil
}

// NewVariant builds a variant of the given kind from p.
// Returns ErrUnknownVariant for an unregistered kind; builder errors
// propagate unchanged.
// Complexity: O(1) plus the builder's own cost.
func (r *Registry) NewVariant(kind string, p Params) (shape.Descriptor, error) {
	r.mu.RLock()
	b, ok := r.builders[strings.ToLower(kind)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, kind)
	}

	return b(p)
}

// Kinds returns the registered kind names, sorted for determinism.
// Complexity: O(k log k).
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.builders))
	for k := range r.builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	return kinds
}

// Count returns the number of registered variants.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.builders)
}

// Reset clears all registered variants.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders = make(map[string]Builder)
}

// Default returns a Registry pre-loaded with the built-in variant family:
//
//	"shape"  — no dimensions
//	"oval"   — two dimensions: xRadius, yRadius
//	"circle" — one dimension: radius
//
// Dimension values are not range checked, matching the permissive
// construction contract of the shape package.
func Default() *Registry {
	r := New()
	// Registration of built-ins cannot collide in a fresh registry.
	_ = r.Register("shape", func(p Params) (shape.Descriptor, error) {
		if len(p.Dimensions) != 0 {
			return nil, fmt.Errorf("%w: shape takes 0, got %d", ErrBadDimensions, len(p.Dimensions))
		}
		return shape.NewShape(p.Name), nil
	})
	_ = r.Register("oval", func(p Params) (shape.Descriptor, error) {
		if len(p.Dimensions) != 2 {
			return nil, fmt.Errorf("%w: oval takes 2, got %d", ErrBadDimensions, len(p.Dimensions))
		}
		return shape.NewOval(p.Dimensions[0], p.Dimensions[1], p.Name), nil
	})
	_ = r.Register("circle", func(p Params) (shape.Descriptor, error) {
		if len(p.Dimensions) != 1 {
			return nil, fmt.Errorf("%w: circle takes 1, got %d", ErrBadDimensions, len(p.Dimensions))
		}
		return shape.NewCircle(p.Dimensions[0], p.Name), nil
	})

	return r
}
