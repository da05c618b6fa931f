package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()

	require.Len(t, b.Tiles, BoardSize)
	for i, tile := range b.Tiles {
		require.Equal(t, i, tile.Index, "tile %q should carry its board index", tile.Name)
	}

	counts := make(map[TileKind]int)
	for _, tile := range b.Tiles {
		counts[tile.Kind]++
	}
	require.Equal(t, 22, counts[StreetKind])
	require.Equal(t, 4, counts[RailroadKind])
	require.Equal(t, 2, counts[UtilityKind])
	require.Equal(t, 3, counts[ChanceKind])
	require.Equal(t, 3, counts[CommunityChestKind])
	require.Equal(t, 2, counts[TaxKind])

	require.Equal(t, OriginKind, b.Tile(OriginIndex).Kind)
	require.Equal(t, JailKind, b.Tile(JailIndex).Kind)
	require.Equal(t, GoToJailKind, b.Tile(GoToJailIndex).Kind)
	require.Equal(t, "Reading Railroad", b.Tile(ReadingIndex).Name)
	require.Equal(t, "St. Charles Place", b.Tile(StCharlesIndex).Name)
	require.Equal(t, "Illinois Avenue", b.Tile(IllinoisIndex).Name)
	require.Equal(t, "Boardwalk", b.Tile(BoardwalkIndex).Name)
}

func TestNewBoardGroupsComplete(t *testing.T) {
	b := NewBoard()

	sizes := make(map[Group]int)
	for _, tile := range b.Tiles {
		if tile.Kind == StreetKind {
			sizes[tile.Street.Group]++
		}
	}
	for group := Brown; group <= DarkBlue; group++ {
		require.Equal(t, group.Size(), sizes[group], "group %s should be fully laid out", group)
	}
}

func TestNewBoardRentSchedules(t *testing.T) {
	b := NewBoard()

	for _, tile := range b.Tiles {
		if tile.Kind != StreetKind {
			continue
		}
		s := tile.Street
		for level := 1; level < len(s.Rents); level++ {
			require.Greater(t, s.Rents[level], s.Rents[level-1],
				"%s rent should rise with every improvement level", s.Name)
		}
	}

	// Spot-check the two extremes of the schedule.
	require.Equal(t, [7]int{2, 4, 10, 30, 90, 160, 250}, b.Tile(1).Street.Rents)
	require.Equal(t, [7]int{50, 100, 200, 600, 1400, 1700, 2000}, b.Tile(BoardwalkIndex).Street.Rents)
}

func TestMortgageValues(t *testing.T) {
	b := NewBoard()

	boardwalk := b.Tile(BoardwalkIndex).Street
	require.Equal(t, 200, boardwalk.MortgageValue())
	require.Equal(t, 220, boardwalk.UnmortgageCost())

	mediterranean := b.Tile(1).Street
	require.Equal(t, 30, mediterranean.MortgageValue())
	require.Equal(t, 33, mediterranean.UnmortgageCost())
}
