package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"monopoly/experiments/metrics"
)

func TestRunTalliesEveryGame(t *testing.T) {
	config := Config{Games: 8, Workers: 3, MaxTurns: 500, Seed: 42}

	tally, records := Run(config, DefaultProfiles())

	require.Len(t, records, config.Games)
	total := 0
	for _, count := range tally {
		total += count
	}
	require.Equal(t, config.Games, total, "every game lands in exactly one tally bucket")

	for i, record := range records {
		require.Equal(t, i+1, record.ID)
		require.Equal(t, config.Seed+int64(i), record.Seed)
		require.NotEmpty(t, record.Winner)
		require.Positive(t, record.Turns)
	}
}

func TestRunIsReproduciblePerSeed(t *testing.T) {
	config := Config{Games: 6, Workers: 2, MaxTurns: 500, Seed: 7}

	firstTally, firstRecords := Run(config, DefaultProfiles())
	secondTally, secondRecords := Run(config, DefaultProfiles())

	require.Equal(t, firstTally, secondTally)
	for i := range firstRecords {
		// Durations vary with scheduling; outcomes must not.
		require.Equal(t, firstRecords[i].Winner, secondRecords[i].Winner)
		require.Equal(t, firstRecords[i].Turns, secondRecords[i].Turns)
	}
}

func TestRunExtremeWeightsReproduceTallies(t *testing.T) {
	// All-or-nothing weights leave the dice and deck order as the only
	// random inputs, so fixed seeds must pin the tally exactly.
	profiles := []metrics.ProfileConfig{
		{Name: "grabber", BuyStreet: 1, BuyRailroad: 1, BuyUtility: 1,
			RollDoubleInJail: 1, UseJailFreeCard: 1, MinCash: 100, MinCashToUnmortgage: 200},
		{Name: "hoarder", MinCash: 100, MinCashToUnmortgage: 200},
	}
	config := Config{Games: 5, Workers: 2, MaxTurns: 800, Seed: 99}

	first, _ := Run(config, profiles)
	second, _ := Run(config, profiles)

	require.Equal(t, first, second)
}

func TestRunRequiresTwoProfiles(t *testing.T) {
	require.Panics(t, func() {
		Run(Config{Games: 1}, DefaultProfiles()[:1])
	})
}

func TestNewPlayerMapsProfile(t *testing.T) {
	profile := metrics.ProfileConfig{
		Name:                "mapped",
		BuyStreet:           0.1,
		BuyRailroad:         0.2,
		BuyUtility:          0.3,
		RollDoubleInJail:    0.4,
		UseJailFreeCard:     0.5,
		MinCash:             111,
		MinCashToUnmortgage: 222,
	}

	p := NewPlayer(profile)

	require.Equal(t, "mapped", p.Name)
	require.Equal(t, 0.1, p.Weights.BuyStreet)
	require.Equal(t, 0.2, p.Weights.BuyRailroad)
	require.Equal(t, 0.3, p.Weights.BuyUtility)
	require.Equal(t, 0.4, p.Weights.RollDoubleInJail)
	require.Equal(t, 0.5, p.Weights.UseJailFreeCard)
	require.Equal(t, 111, p.MinCash)
	require.Equal(t, 222, p.MinCashToUnmortgage)
	require.True(t, p.Active)
}
