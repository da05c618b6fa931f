package game

import "math/rand"

// DeckCardCount is the fixed population of each catalog. It is invariant
// across any sequence of draws and returns: a drawn jail-free card is held
// out by a player, not lost.
const DeckCardCount = 16

// Deck is one game's draw pile for a single catalog. Decks are per-game
// values, never shared across games: parallel simulation runs each construct
// their own.
type Deck struct {
	kind        DeckKind
	cards       []Card
	jailFreeOut bool
}

// NewDeck builds a deck from its catalog and shuffles it once. The draw
// order afterwards is deterministic in request order.
func NewDeck(kind DeckKind, rng *rand.Rand) *Deck {
	d := &Deck{kind: kind}
	switch kind {
	case ChanceDeck:
		d.cards = chanceCatalog()
	case CommunityChestDeck:
		d.cards = communityChestCatalog()
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Kind returns which catalog the deck draws from.
func (d *Deck) Kind() DeckKind { return d.kind }

// Draw removes and returns the top card, reinserting it at the bottom unless
// it is the jail-free card, which stays out until explicitly returned.
func (d *Deck) Draw() Card {
	card := d.cards[0]
	d.cards = d.cards[1:]
	if card.Effect == JailFree {
		d.jailFreeOut = true
	} else {
		d.cards = append(d.cards, card)
	}
	return card
}

// ReturnJailFreeCard reinserts the jail-free card at the bottom. Calling it
// while the card is not held out is engine misuse.
func (d *Deck) ReturnJailFreeCard() {
	if !d.jailFreeOut {
		panic("jail-free card is not held out of the deck")
	}
	for _, c := range d.catalog() {
		if c.Effect == JailFree {
			d.cards = append(d.cards, c)
			break
		}
	}
	d.jailFreeOut = false
}

// Len is the number of cards currently in the draw pile.
func (d *Deck) Len() int { return len(d.cards) }

// Population counts every card belonging to the deck, held-out card included.
func (d *Deck) Population() int {
	if d.jailFreeOut {
		return len(d.cards) + 1
	}
	return len(d.cards)
}

func (d *Deck) catalog() []Card {
	if d.kind == ChanceDeck {
		return chanceCatalog()
	}
	return communityChestCatalog()
}
