// Package demo implements the demonstration driver: data-defined scenarios
// that build variants through the registry, populate every requested storage
// strategy, and collect dispatch transcripts plus an ownership audit.
package demo

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/polymorph/registry"
)

// Storage strategy names accepted in Scenario.Strategies.
const (
	// StrategyValue stores narrowed base values (identity lost).
	StrategyValue = "value"

	// StrategyOwned stores exclusive-ownership handles (identity kept).
	StrategyOwned = "owned"

	// StrategyShared stores reference-counted handles (identity kept).
	StrategyShared = "shared"
)

// Sentinel errors for scenario validation and execution.
var (
	// ErrNoShapes indicates a scenario with an empty shape list.
	ErrNoShapes = errors.New("demo: scenario has no shapes")

	// ErrUnknownStrategy indicates a strategy name outside {value, owned, shared}.
	ErrUnknownStrategy = errors.New("demo: unknown storage strategy")
)

// ShapeSpec declares one variant to construct: its registry kind, label,
// and dimensions (arity checked by the registry builder).
type ShapeSpec struct {
	Kind       string    `yaml:"kind"`
	Name       string    `yaml:"name"`
	Dimensions []float64 `yaml:"dimensions,omitempty"`
}

// Scenario is a self-contained demonstration: a cast of shapes and the
// storage strategies to run them through. Strategies defaults to all three
// when empty.
type Scenario struct {
	Name       string      `yaml:"name"`
	Shapes     []ShapeSpec `yaml:"shapes"`
	Strategies []string    `yaml:"strategies,omitempty"`
}

// Report holds everything a scenario run produced, keyed for verification.
type Report struct {
	// Scenario is the scenario name the report belongs to.
	Scenario string

	// Strategies lists the executed strategies in run order.
	Strategies []string

	// Transcripts maps strategy name to the describe lines in element order.
	Transcripts map[string][]string

	// Released is the OwnedStore drain audit: one ID per adopted instance,
	// in element order. Empty when the owned strategy did not run.
	Released []uuid.UUID
}

// Option configures a scenario run.
type Option func(*Options)

// Options holds configurable collaborators for Run.
type Options struct {
	// Logger receives structured progress events; defaults to zap.NewNop().
	Logger *zap.Logger

	// Registry resolves shape kinds; defaults to registry.Default().
	Registry *registry.Registry
}

// DefaultOptions returns an Options struct with a no-op logger and the
// built-in variant registry.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		Registry: registry.Default(),
	}
}

// WithLogger returns an Option that installs lg as the progress logger.
// Passing nil has no effect (the no-op logger is retained).
func WithLogger(lg *zap.Logger) Option {
	return func(o *Options) {
		if lg != nil {
			o.Logger = lg
		}
	}
}

// WithRegistry returns an Option that resolves kinds through r instead of
// the built-in registry. Passing nil has no effect.
func WithRegistry(r *registry.Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}

// DefaultScenario returns the canonical three-variant cast run through every
// strategy: the base Shape, an Oval with distinct radii, and a Circle.
func DefaultScenario() Scenario {
	return Scenario{
		Name: "polymorphism-gallery",
		Shapes: []ShapeSpec{
			{Kind: "shape", Name: "Shape1"},
			{Kind: "oval", Name: "Oval1", Dimensions: []float64{2.0, 3.5}},
			{Kind: "circle", Name: "Circle1", Dimensions: []float64{3.3}},
		},
		Strategies: []string{StrategyValue, StrategyOwned, StrategyShared},
	}
}
