package metrics

import "time"

// ProfileConfig is a player's decision profile: the Bernoulli weights and
// cash floors its financial agent plays with.
type ProfileConfig struct {
	Name                string  `yaml:"name"`
	BuyStreet           float64 `yaml:"buy_street"`
	BuyRailroad         float64 `yaml:"buy_railroad"`
	BuyUtility          float64 `yaml:"buy_utility"`
	RollDoubleInJail    float64 `yaml:"roll_double_in_jail"`
	UseJailFreeCard     float64 `yaml:"use_jail_free_card"`
	MinCash             int     `yaml:"min_cash"`
	MinCashToUnmortgage int     `yaml:"min_cash_to_unmortgage"`
}

// GameRecord captures one simulated game's outcome.
type GameRecord struct {
	ID       int
	Seed     int64
	Winner   string // Player name, or the no-winner sentinel
	Turns    int
	Duration time.Duration
}
