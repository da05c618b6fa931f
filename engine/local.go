package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"monopoly/game"
)

// DefaultMaxTurns bounds otherwise-unbounded play (e.g. cyclical insolvency
// that never quite eliminates anyone).
const DefaultMaxTurns = 10000

// Result summarizes one completed game. Winner is empty when the turn
// ceiling was hit with more than one player still standing.
type Result struct {
	Winner   string
	Turns    int
	Duration time.Duration
}

// NoWinner reports whether the game stopped at the turn ceiling.
func (r Result) NoWinner() bool { return r.Winner == "" }

// Run drives the game loop to completion: turns advance until a single
// player remains or the ceiling is reached.
func Run(g *game.Game, maxTurns int) Result {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	start := time.Now()
	turns := 0
	for g.Winner() == nil && turns < maxTurns {
		g.AdvanceTurn()
		turns++
	}

	result := Result{Turns: turns, Duration: time.Since(start)}
	if winner := g.Winner(); winner != nil {
		result.Winner = winner.Name
		log.Debug().Msgf("winner after %d turns: %s", turns, winner.Name)
	} else {
		log.Debug().Msgf("no winner after %d turns, stopping", maxTurns)
	}
	return result
}
