package demo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadScenario parses a YAML scenario document and validates it.
// Strategies defaults to {value, owned, shared} when omitted.
func LoadScenario(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("demo: parse scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return Scenario{}, err
	}

	return sc, nil
}

// LoadScenarioFile reads and parses a YAML scenario from path.
func LoadScenarioFile(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("demo: read scenario %s: %w", path, err)
	}

	return LoadScenario(data)
}

// validate normalizes defaults and rejects malformed scenarios.
func (sc *Scenario) validate() error {
	if len(sc.Shapes) == 0 {
		return ErrNoShapes
	}
	if len(sc.Strategies) == 0 {
		sc.Strategies = []string{StrategyValue, StrategyOwned, StrategyShared}
	}
	for _, s := range sc.Strategies {
		switch s {
		case StrategyValue, StrategyOwned, StrategyShared:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
		}
	}

	return nil
}
