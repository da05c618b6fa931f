package game

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"
)

// Game owns the board, the two card decks and the players, and advances the
// simulation one turn at a time. All randomness flows through the single
// per-game RNG so runs with the same seed replay identically.
type Game struct {
	Board   *Board
	Chance  *Deck
	Chest   *Deck
	Players []*Player
	Bank    *Bank
	Current int

	rng    *rand.Rand
	roll   func() (int, int)
	events []string
}

// NewGame wires players to a fresh board and freshly shuffled decks. Every
// mutable structure is owned by this game alone, so concurrent games never
// share state.
func NewGame(players []*Player, rng *rand.Rand) *Game {
	if len(players) < 2 {
		panic("need at least two players")
	}
	g := &Game{
		Board:   NewBoard(),
		Chance:  NewDeck(ChanceDeck, rng),
		Chest:   NewDeck(CommunityChestDeck, rng),
		Players: players,
		Bank:    &Bank{},
		rng:     rng,
	}
	g.roll = func() (int, int) {
		return rng.Intn(6) + 1, rng.Intn(6) + 1
	}
	for _, p := range players {
		p.rng = rng
		p.chanceDeck = g.Chance
		p.chestDeck = g.Chest
	}
	return g
}

func (g *Game) eventf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	g.events = append(g.events, msg)
	log.Debug().Msg(msg)
}

func (g *Game) rollDice() (int, int) {
	return g.roll()
}

func (g *Game) nextPlayer() {
	g.Current = (g.Current + 1) % len(g.Players)
}

// Winner returns the last active player, or nil while more than one remains.
func (g *Game) Winner() *Player {
	var winner *Player
	for _, p := range g.Players {
		if p.Active {
			if winner != nil {
				return nil
			}
			winner = p
		}
	}
	return winner
}

// AdvanceTurn plays exactly one player's turn: jail resolution, dice,
// movement, landing dispatch, doubles bookkeeping and post-move maintenance.
// It returns descriptions of what happened, for front ends to render.
func (g *Game) AdvanceTurn() []string {
	g.events = g.events[:0]
	p := g.Players[g.Current]
	if !p.Active {
		g.nextPlayer()
		return nil
	}

	var d1, d2 int
	if p.InJail {
		released, j1, j2 := g.attemptJailRelease(p)
		if !released {
			g.nextPlayer()
			return append([]string(nil), g.events...)
		}
		d1, d2 = j1, j2
	} else {
		d1, d2 = g.rollDice()
	}

	g.eventf("%s rolled (%d, %d)", p.Name, d1, d2)
	if d1 == d2 {
		p.ConsecutiveDoubles++
	} else {
		p.ConsecutiveDoubles = 0
	}
	if p.ConsecutiveDoubles == 3 {
		// The third double's move is forfeited: straight to jail.
		g.eventf("%s rolled 3 consecutive doubles and goes to jail", p.Name)
		p.GoToJail()
		p.ConsecutiveDoubles = 0
	} else {
		p.MoveBy(d1 + d2)
		g.handleLanding(p, g.Board.Tile(p.Position))
	}
	// No extra roll on a double: the 3-in-a-row rule is the only
	// consequence of repeated doubles.
	g.nextPlayer()

	if p.Active {
		p.UnmortgageProperties()
		p.BuildHousesAndHotels()
	}
	return append([]string(nil), g.events...)
}

// attemptJailRelease resolves a jailed player's options: use a held
// jail-free card, try for doubles (up to 3 attempts per visit), or pay the
// fine. A release comes with the dice roll to move by.
func (g *Game) attemptJailRelease(p *Player) (released bool, d1, d2 int) {
	if p.HasJailFreeCard() && p.DecideToUseJailFreeCard() {
		p.UseJailFreeCard()
		p.JailRollAttempts = 0
		p.InJail = false
		d1, d2 = g.rollDice()
		g.eventf("%s used a jail-free card", p.Name)
		return true, d1, d2
	}

	if p.JailRollAttempts < 3 && p.DecideToRollForDoubles() {
		d1, d2 = g.rollDice()
		if d1 == d2 {
			p.JailRollAttempts = 0
			p.InJail = false
			g.eventf("%s rolled doubles and is released from jail", p.Name)
			return true, d1, d2
		}
		p.JailRollAttempts++
		g.eventf("%s failed the jail roll (attempt %d)", p.Name, p.JailRollAttempts)
		return false, 0, 0
	}

	p.Pay(JailFine, g.Bank)
	if !p.Active {
		g.eventf("%s went bankrupt paying the jail fine", p.Name)
		return false, 0, 0
	}
	p.JailRollAttempts = 0
	p.InJail = false
	d1, d2 = g.rollDice()
	g.eventf("%s paid the $%d jail fine", p.Name, JailFine)
	return true, d1, d2
}

// handleLanding dispatches on the landed tile's kind. Card-driven moves
// re-enter here so buy/rent logic lives in one place.
func (g *Game) handleLanding(p *Player, tile *Tile) {
	g.eventf("%s landed on %s", p.Name, tile.Name)
	switch tile.Kind {
	case StreetKind:
		g.handleStreetLanding(p, tile)
	case RailroadKind:
		g.handleRailroadLanding(p, tile, 1)
	case UtilityKind:
		g.handleUtilityLanding(p, tile)
	case ChanceKind:
		g.resolveCard(p, g.Chance, g.Chance.Draw())
	case CommunityChestKind:
		g.resolveCard(p, g.Chest, g.Chest.Draw())
	case TaxKind:
		g.eventf("%s pays $%d %s", p.Name, tile.Tax, tile.Name)
		p.Pay(tile.Tax, g.Bank)
	case GoToJailKind:
		g.eventf("%s is sent to jail", p.Name)
		p.GoToJail()
	}
	// Origin, jail (just visiting) and free parking are no-ops.
}

func (g *Game) handleStreetLanding(p *Player, tile *Tile) {
	s := tile.Street
	if s.Owner == nil {
		if p.DecideToBuy(s) {
			p.Buy(s)
			g.eventf("%s bought %s for $%d", p.Name, s.Name, s.Price)
		}
		return
	}
	if s.Owner == p || !s.Owner.Active {
		return
	}
	rent := RentDue(tile, p, p.LastDiceTotal)
	if rent > 0 {
		g.eventf("%s pays $%d rent to %s for %s", p.Name, rent, s.Owner.Name, s.Name)
	}
	p.Pay(rent, s.Owner)
}

func (g *Game) handleRailroadLanding(p *Player, tile *Tile, multiplier int) {
	r := tile.Railroad
	if r.Owner == nil {
		if p.DecideToBuy(r) {
			p.Buy(r)
			g.eventf("%s bought %s for $%d", p.Name, r.Name, r.Price)
		}
		return
	}
	if r.Owner == p || !r.Owner.Active {
		return
	}
	rent := RentDue(tile, p, p.LastDiceTotal) * multiplier
	if rent > 0 {
		g.eventf("%s pays $%d rent to %s for %s", p.Name, rent, r.Owner.Name, r.Name)
	}
	p.Pay(rent, r.Owner)
}

func (g *Game) handleUtilityLanding(p *Player, tile *Tile) {
	u := tile.Utility
	if u.Owner == nil {
		if p.DecideToBuy(u) {
			p.Buy(u)
			g.eventf("%s bought %s for $%d", p.Name, u.Name, u.Price)
		}
		return
	}
	if u.Owner == p || !u.Owner.Active {
		return
	}
	rent := RentDue(tile, p, p.LastDiceTotal)
	if rent > 0 {
		g.eventf("%s pays $%d rent to %s for %s", p.Name, rent, u.Owner.Name, u.Name)
	}
	p.Pay(rent, u.Owner)
}

// handleNearestUtilityLanding applies the card-specific utility rule: if
// owned, a fresh roll is thrown and the owner is paid ten times the total.
func (g *Game) handleNearestUtilityLanding(p *Player, tile *Tile) {
	u := tile.Utility
	if u.Owner == nil {
		if p.DecideToBuy(u) {
			p.Buy(u)
			g.eventf("%s bought %s for $%d", p.Name, u.Name, u.Price)
		}
		return
	}
	if u.Owner == p || !u.Owner.Active || u.Mortgaged {
		return
	}
	d1, d2 := g.rollDice()
	rent := (d1 + d2) * 10
	g.eventf("%s pays $%d (ten times the dice) to %s for %s", p.Name, rent, u.Owner.Name, u.Name)
	p.Pay(rent, u.Owner)
}

// nearestTileAhead scans forward from a position, wrapping the board, for
// the next tile of the given kind.
func (g *Game) nearestTileAhead(from int, kind TileKind) int {
	for i := 1; i <= BoardSize; i++ {
		index := (from + i) % BoardSize
		if g.Board.Tile(index).Kind == kind {
			return index
		}
	}
	return from
}

// resolveCard maps every card label to its effect. Movement effects re-enter
// the normal landing dispatch so buy/rent logic is not duplicated.
func (g *Game) resolveCard(p *Player, deck *Deck, card Card) {
	g.eventf("%s drew %s card: %s", p.Name, deck.Kind(), card.Text)

	switch card.Effect {
	case AdvanceToGo:
		p.AdvanceToGo()
	case BankDividend:
		p.Earn(50)
	case GoToJailEffect:
		p.GoToJail()
	case AdvanceToIllinois:
		p.AdvanceTo(IllinoisIndex, true)
		g.handleLanding(p, g.Board.Tile(p.Position))
	case AdvanceToStCharles:
		p.AdvanceTo(StCharlesIndex, true)
		g.handleLanding(p, g.Board.Tile(p.Position))
	case NearestUtility:
		p.AdvanceTo(g.nearestTileAhead(p.Position, UtilityKind), true)
		g.handleNearestUtilityLanding(p, g.Board.Tile(p.Position))
	case NearestRailroad:
		p.AdvanceTo(g.nearestTileAhead(p.Position, RailroadKind), true)
		g.handleRailroadLanding(p, g.Board.Tile(p.Position), 2)
	case TripToReading:
		p.AdvanceTo(ReadingIndex, true)
		g.handleLanding(p, g.Board.Tile(p.Position))
	case AdvanceToBoardwalk:
		p.AdvanceTo(BoardwalkIndex, false)
		g.handleLanding(p, g.Board.Tile(p.Position))
	case Chairman:
		for _, other := range g.Players {
			if other == p || !other.Active {
				continue
			}
			p.Pay(50, other)
			if !p.Active {
				break
			}
		}
	case BuildingLoan:
		p.Earn(150)
	case StreetRepairs:
		p.Pay(p.StreetRepairFee(), g.Bank)
	case PoorTax:
		p.Pay(15, g.Bank)
	case GeneralRepairs:
		p.Pay(p.GeneralRepairFee(), g.Bank)
	case JailFree:
		if deck.Kind() == ChanceDeck {
			p.ChanceJailCard = true
		} else {
			p.ChestJailCard = true
		}
	case GoBackThree:
		p.GoBackThree()
		g.handleLanding(p, g.Board.Tile(p.Position))
	case BankError:
		p.Earn(200)
	case DoctorFee:
		p.Pay(50, g.Bank)
	case StockSale:
		p.Earn(50)
	case HolidayFund:
		p.Earn(100)
	case IncomeTaxRefund:
		p.Earn(20)
	case Birthday:
		for _, other := range g.Players {
			if other == p || !other.Active {
				continue
			}
			other.Pay(10, p)
		}
	case LifeInsurance:
		p.Earn(100)
	case HospitalFees:
		p.Pay(100, g.Bank)
	case SchoolFees:
		p.Pay(50, g.Bank)
	case ConsultancyFee:
		p.Earn(25)
	case BeautyContest:
		p.Earn(10)
	case Inheritance:
		p.Earn(100)
	}
}
