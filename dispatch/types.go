// Package dispatch defines types and options for the storage-agnostic
// describe invoker, including cancellation, an output sink, and a
// per-element hook.
package dispatch

import (
	"context"
	"errors"
	"io"

	"github.com/katalvlaran/polymorph/shape"
)

var (
	// ErrNilSource is returned when a nil Source is passed to DescribeAll.
	ErrNilSource = errors.New("dispatch: source is nil")

	// ErrNilDescriptor is returned when Describe receives a nil handle.
	ErrNilDescriptor = errors.New("dispatch: nil descriptor")
)

// Source is any element sequence the invoker can walk. All three storage
// strategies satisfy it; the invoker requires nothing beyond the capability
// to yield Descriptor-typed handles in element order.
type Source interface {
	// Each invokes fn per element in order; the first error aborts.
	Each(fn func(shape.Descriptor) error) error
}

// Option configures optional behavior of DescribeAll.
// Use with DescribeAll(src, opts...).
type Option func(*Options)

// Options holds configurable parameters for dispatch iteration.
// Complexity remains O(n) when the hook is O(1).
type Options struct {
	// Ctx allows cancellation between elements; defaults to context.Background().
	Ctx context.Context

	// Writer, if non-nil, receives each describe line followed by '\n'.
	Writer io.Writer

	// OnDescribe, if non-nil, is invoked after each element is described,
	// with the element index and the resolved text.
	// Returning an error aborts iteration with that error.
	OnDescribe func(i int, text string) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No output sink
//   - No per-element hook
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Writer:     nil,
		OnDescribe: nil,
	}
}

// WithContext returns an Option that sets the Context for iteration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWriter returns an Option that installs w as the describe output sink.
func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.Writer = w
	}
}

// WithOnDescribe returns an Option that installs fn as the per-element hook.
func WithOnDescribe(fn func(i int, text string) error) Option {
	return func(o *Options) {
		o.OnDescribe = fn
	}
}
