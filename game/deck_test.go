package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeckPopulationInvariant(t *testing.T) {
	for _, kind := range []DeckKind{ChanceDeck, CommunityChestDeck} {
		t.Run(kind.String(), func(t *testing.T) {
			d := NewDeck(kind, rand.New(rand.NewSource(7)))
			require.Equal(t, DeckCardCount, d.Len())

			for i := 0; i < 3*DeckCardCount; i++ {
				d.Draw()
				require.Equal(t, DeckCardCount, d.Population(),
					"population should stay fixed across draws")
			}
		})
	}
}

func TestDeckJailFreeHeldOut(t *testing.T) {
	d := NewDeck(ChanceDeck, rand.New(rand.NewSource(3)))

	// The jail-free card surfaces within one full cycle.
	drew := false
	for i := 0; i < DeckCardCount; i++ {
		if d.Draw().Effect == JailFree {
			drew = true
			break
		}
	}
	require.True(t, drew, "jail-free card should appear within one deck cycle")
	require.Equal(t, DeckCardCount-1, d.Len())

	// While held out it can never be drawn again.
	for i := 0; i < 2*DeckCardCount; i++ {
		require.NotEqual(t, JailFree, d.Draw().Effect,
			"a held-out jail-free card must not be drawable")
	}

	d.ReturnJailFreeCard()
	require.Equal(t, DeckCardCount, d.Len())

	require.Panics(t, func() { d.ReturnJailFreeCard() },
		"returning a card that is not out is engine misuse")
}

func TestDeckCyclesNonJailCards(t *testing.T) {
	d := NewDeck(CommunityChestDeck, rand.New(rand.NewSource(11)))

	first := d.Draw()
	if first.Effect == JailFree {
		d.ReturnJailFreeCard()
		first = d.Draw()
	}
	// The drawn card went to the bottom: it comes around again after the
	// rest of the pile.
	rest := d.Len() - 1
	for i := 0; i < rest; i++ {
		d.Draw()
	}
	require.Equal(t, first, d.Draw(), "non-jail cards should cycle back to the top")
}

func TestDeckCatalogsComplete(t *testing.T) {
	require.Len(t, chanceCatalog(), DeckCardCount)
	require.Len(t, communityChestCatalog(), DeckCardCount)

	jailFree := func(cards []Card) int {
		n := 0
		for _, c := range cards {
			if c.Effect == JailFree {
				n++
			}
		}
		return n
	}
	require.Equal(t, 1, jailFree(chanceCatalog()))
	require.Equal(t, 1, jailFree(communityChestCatalog()))
}
