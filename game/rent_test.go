package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRentDueZeroCases(t *testing.T) {
	b := NewBoard()
	owner := NewPlayer("owner", Weights{}, 0, 0)
	visitor := NewPlayer("visitor", Weights{}, 0, 0)

	t.Run("non-property tile", func(t *testing.T) {
		require.Equal(t, 0, RentDue(b.Tile(OriginIndex), visitor, 7))
	})

	t.Run("unowned property", func(t *testing.T) {
		require.Equal(t, 0, RentDue(b.Tile(1), visitor, 7))
	})

	t.Run("mortgaged property", func(t *testing.T) {
		s := b.Tile(1).Street
		owner.Buy(s)
		s.Mortgaged = true
		require.Equal(t, 0, RentDue(b.Tile(1), visitor, 7))
		s.Mortgaged = false
	})

	t.Run("landing on own property", func(t *testing.T) {
		require.Equal(t, 0, RentDue(b.Tile(1), owner, 7))
	})
}

func TestRentDueStreetLevels(t *testing.T) {
	b := NewBoard()
	owner := NewPlayer("owner", Weights{}, 0, 0)
	visitor := NewPlayer("visitor", Weights{}, 0, 0)

	tile := b.Tile(BoardwalkIndex)
	owner.Buy(tile.Street)

	for level, want := range tile.Street.Rents {
		tile.Street.Level = level
		require.Equal(t, want, RentDue(tile, visitor, 7),
			"level %d rent should follow the schedule", level)
	}
}

func TestRentDueRailroadCount(t *testing.T) {
	b := NewBoard()
	owner := NewPlayer("owner", Weights{}, 0, 0)
	visitor := NewPlayer("visitor", Weights{}, 0, 0)

	railroads := []int{ReadingIndex, 15, 25, 35}
	wantRents := []int{25, 50, 100, 200}
	for i, index := range railroads {
		owner.Buy(b.Tile(index).Railroad)
		require.Equal(t, wantRents[i], RentDue(b.Tile(railroads[0]), visitor, 7),
			"rent should scale with the owner's railroad count")
	}
}

func TestRentDueUtilityMultiplier(t *testing.T) {
	b := NewBoard()
	owner := NewPlayer("owner", Weights{}, 0, 0)
	visitor := NewPlayer("visitor", Weights{}, 0, 0)

	electric := b.Tile(12)
	owner.Buy(electric.Utility)
	require.Equal(t, 7*4, RentDue(electric, visitor, 7),
		"one utility charges four times the dice")

	owner.Buy(b.Tile(28).Utility)
	require.Equal(t, 7*10, RentDue(electric, visitor, 7),
		"both utilities charge ten times the dice")
}
