package experiments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"monopoly/experiments/metrics"
)

// DefaultProfiles is the standard four-player population.
func DefaultProfiles() []metrics.ProfileConfig {
	return []metrics.ProfileConfig{
		{Name: "Player 1", BuyStreet: 0.8, BuyRailroad: 0.7, BuyUtility: 0.6,
			RollDoubleInJail: 0.5, UseJailFreeCard: 0.5, MinCash: 200, MinCashToUnmortgage: 300},
		{Name: "Player 2", BuyStreet: 0.6, BuyRailroad: 0.8, BuyUtility: 0.7,
			RollDoubleInJail: 0.4, UseJailFreeCard: 0.6, MinCash: 200, MinCashToUnmortgage: 300},
		{Name: "Player 3", BuyStreet: 0.7, BuyRailroad: 0.6, BuyUtility: 0.8,
			RollDoubleInJail: 0.6, UseJailFreeCard: 0.7, MinCash: 200, MinCashToUnmortgage: 300},
		{Name: "Player 4", BuyStreet: 0.5, BuyRailroad: 0.5, BuyUtility: 0.5,
			RollDoubleInJail: 0.5, UseJailFreeCard: 0.5, MinCash: 200, MinCashToUnmortgage: 300},
	}
}

// LoadProfiles reads player profiles from a YAML file.
func LoadProfiles(path string) ([]metrics.ProfileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}
	var profiles []metrics.ProfileConfig
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file: %w", err)
	}
	if len(profiles) < 2 {
		return nil, fmt.Errorf("profiles file %s defines %d players, need at least 2", path, len(profiles))
	}
	return profiles, nil
}
