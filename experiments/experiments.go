// Package experiments is the Monte Carlo harness: it constructs fresh player
// populations and games, drives each game to completion and tallies who won.
package experiments

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"

	"monopoly/engine"
	"monopoly/experiments/metrics"
	"monopoly/game"
)

// NoWinner is the tally key for games that hit the turn ceiling.
const NoWinner = "no_winner"

// Tally maps player name (or the no-winner sentinel) to win count.
type Tally map[string]int

// Config controls one simulation batch.
type Config struct {
	Games    int
	Workers  int // Games simulated concurrently; defaults to NumCPU
	MaxTurns int
	Seed     int64 // Game i runs with seed Seed+i, so batches replay exactly
}

// Run simulates the configured number of games, each with a fresh board,
// decks and players, and returns the win tally plus per-game records. Games
// run in parallel; nothing mutable is shared between them.
func Run(config Config, profiles []metrics.ProfileConfig) (Tally, []metrics.GameRecord) {
	if len(profiles) < 2 {
		panic("need at least two player profiles")
	}
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	log.Info().Msgf("starting simulation of %d games across %d workers...", config.Games, workers)

	tasks := make(chan int, config.Games)
	for i := 0; i < config.Games; i++ {
		tasks <- i
	}
	close(tasks)

	records := make([]metrics.GameRecord, config.Games)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				records[i] = runGame(i, config, profiles)
			}
		}()
	}
	wg.Wait()

	tally := make(Tally)
	for _, record := range records {
		tally[record.Winner]++
	}

	log.Info().Msgf("completed simulation of %d games", config.Games)
	return tally, records
}

// runGame plays a single game with its own RNG and freshly built state.
func runGame(i int, config Config, profiles []metrics.ProfileConfig) metrics.GameRecord {
	seed := config.Seed + int64(i)
	rng := rand.New(rand.NewSource(seed))

	players := make([]*game.Player, len(profiles))
	for pi, profile := range profiles {
		players[pi] = NewPlayer(profile)
	}
	g := game.NewGame(players, rng)
	result := engine.Run(g, config.MaxTurns)

	winner := result.Winner
	if winner == "" {
		winner = NoWinner
	}
	log.Debug().Msgf("game %d finished after %d turns, winner: %s", i+1, result.Turns, winner)

	return metrics.GameRecord{
		ID:       i + 1,
		Seed:     seed,
		Winner:   winner,
		Turns:    result.Turns,
		Duration: result.Duration,
	}
}

// NewPlayer builds a game player from a decision profile.
func NewPlayer(profile metrics.ProfileConfig) *game.Player {
	return game.NewPlayer(profile.Name, game.Weights{
		BuyStreet:        profile.BuyStreet,
		BuyRailroad:      profile.BuyRailroad,
		BuyUtility:       profile.BuyUtility,
		RollDoubleInJail: profile.RollDoubleInJail,
		UseJailFreeCard:  profile.UseJailFreeCard,
	}, profile.MinCash, profile.MinCashToUnmortgage)
}
