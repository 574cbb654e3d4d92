package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/polymorph/dispatch"
	"github.com/katalvlaran/polymorph/registry"
	"github.com/katalvlaran/polymorph/shape"
	"github.com/katalvlaran/polymorph/storage"
)

// Run executes sc: builds the cast through the registry, populates each
// requested storage strategy, dispatches Describe over every element, and
// returns the per-strategy transcripts plus the ownership audit.
//
// Each strategy gets its own fresh store; the cast instances themselves are
// shared across strategies, which is safe because variants are immutable.
// Complexity: O(strategies × shapes).
func Run(sc Scenario, opts ...Option) (*Report, error) {
	if err := sc.validate(); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	lg := o.Logger

	// Build the cast once, in declaration order.
	cast := make([]shape.Descriptor, 0, len(sc.Shapes))
	for _, spec := range sc.Shapes {
		d, err := o.Registry.NewVariant(spec.Kind, registry.Params{
			Name:       spec.Name,
			Dimensions: spec.Dimensions,
		})
		if err != nil {
			return nil, fmt.Errorf("demo: build %q: %w", spec.Name, err)
		}
		cast = append(cast, d)
	}
	lg.Info("cast built",
		zap.String("scenario", sc.Name),
		zap.Int("shapes", len(cast)))

	report := &Report{
		Scenario:    sc.Name,
		Strategies:  sc.Strategies,
		Transcripts: make(map[string][]string, len(sc.Strategies)),
	}
	for _, strategy := range sc.Strategies {
		if err := runStrategy(strategy, cast, report, lg); err != nil {
			return nil, fmt.Errorf("demo: strategy %s: %w", strategy, err)
		}
	}

	return report, nil
}

// runStrategy populates one store, collects its transcript, and tears it
// down according to its ownership model.
func runStrategy(strategy string, cast []shape.Descriptor, report *Report, lg *zap.Logger) error {
	switch strategy {
	case StrategyValue:
		vs := storage.NewValueStore()
		for _, d := range cast {
			if err := vs.Insert(d); err != nil {
				return err
			}
		}
		lines, err := dispatch.DescribeAll(vs)
		if err != nil {
			return err
		}
		report.Transcripts[StrategyValue] = lines
		lg.Info("value strategy done",
			zap.Int("slots", vs.Len()),
			zap.Strings("transcript", lines))

	case StrategyOwned:
		ow := storage.NewOwnedStore()
		for _, d := range cast {
			if _, err := ow.Adopt(d); err != nil {
				return err
			}
		}
		lines, err := dispatch.DescribeAll(ow)
		if err != nil {
			return err
		}
		released, err := ow.Drain()
		if err != nil {
			return err
		}
		report.Transcripts[StrategyOwned] = lines
		report.Released = released
		lg.Info("owned strategy done",
			zap.Int("slots", ow.Len()),
			zap.Int("released", len(released)))

	case StrategyShared:
		ss := storage.NewSharedStore()
		handles := make([]*storage.SharedHandle, 0, len(cast))
		for _, d := range cast {
			h, err := storage.NewShared(d)
			if err != nil {
				return err
			}
			if err = ss.Append(h); err != nil {
				return err
			}
			handles = append(handles, h)
		}
		lines, err := dispatch.DescribeAll(ss)
		if err != nil {
			return err
		}
		// The store drops its references first; the originals keep every
		// instance alive until the loop below releases the last holders.
		if err = ss.Drain(); err != nil {
			return err
		}
		for _, h := range handles {
			if _, dErr := h.Descriptor(); dErr != nil {
				return dErr
			}
			if rErr := h.Release(); rErr != nil {
				return rErr
			}
		}
		report.Transcripts[StrategyShared] = lines
		lg.Info("shared strategy done",
			zap.Int("slots", ss.Len()),
			zap.Strings("transcript", lines))

	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	return nil
}
