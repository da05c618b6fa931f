package game

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// StartingCash is each player's bankroll at game start.
	StartingCash = 1500
	// GoSalary is credited once per lap when crossing the origin tile.
	GoSalary = 200
	// JailFine buys release from jail when rolling is not an option.
	JailFine = 50
)

// Repair card fees per improvement.
const (
	streetRepairPerHouse  = 40
	streetRepairPerHotel  = 115
	generalRepairPerHouse = 25
	generalRepairPerHotel = 100
)

// Weights are the independent probabilities, each in [0,1], driving a
// player's discretionary choices.
type Weights struct {
	BuyStreet        float64
	BuyRailroad      float64
	BuyUtility       float64
	RollDoubleInJail float64
	UseJailFreeCard  float64
}

// Creditor receives a payment. The bank discards it; a player banks it.
type Creditor interface {
	Earn(amount int)
}

// Bank is a sink with unlimited capacity: received money is not tracked,
// matching the real game's unlimited-bank rule.
type Bank struct{}

func (*Bank) Earn(amount int) {}

// Player is a mutable aggregate: cash, position, jail state, holdings and
// the decision weights of its financial agent. Once eliminated it is never
// reactivated.
type Player struct {
	Name                string
	Cash                int
	Position            int
	InJail              bool
	JailRollAttempts    int
	ConsecutiveDoubles  int
	LastDiceTotal       int
	Active              bool
	Weights             Weights
	MinCash             int
	MinCashToUnmortgage int

	Streets   map[Group][]*Street
	Railroads []*Railroad
	Utilities []*Utility

	ChanceJailCard bool
	ChestJailCard  bool

	// Wired up by NewGame: randomness for decisions, and the decks a
	// forfeited jail-free card returns to.
	rng        *rand.Rand
	chanceDeck *Deck
	chestDeck  *Deck
}

// NewPlayer creates an active player with starting cash and no holdings.
func NewPlayer(name string, weights Weights, minCash, minCashToUnmortgage int) *Player {
	return &Player{
		Name:                name,
		Cash:                StartingCash,
		Active:              true,
		Weights:             weights,
		MinCash:             minCash,
		MinCashToUnmortgage: minCashToUnmortgage,
		Streets:             make(map[Group][]*Street),
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("P(%q cash=%d pos=%d jail=%v streets=%d railroads=%d utilities=%d active=%v)",
		p.Name, p.Cash, p.Position, p.InJail, p.streetCount(), len(p.Railroads), len(p.Utilities), p.Active)
}

func (p *Player) streetCount() int {
	n := 0
	for _, streets := range p.Streets {
		n += len(streets)
	}
	return n
}

// Earn credits cash unconditionally.
func (p *Player) Earn(amount int) { p.Cash += amount }

// HasJailFreeCard reports whether the player holds either jail-free card.
func (p *Player) HasJailFreeCard() bool { return p.ChanceJailCard || p.ChestJailCard }

// DecideToUseJailFreeCard samples the jail-card weight.
func (p *Player) DecideToUseJailFreeCard() bool {
	return p.rng.Float64() < p.Weights.UseJailFreeCard
}

// DecideToRollForDoubles samples the jail-roll weight.
func (p *Player) DecideToRollForDoubles() bool {
	return p.rng.Float64() < p.Weights.RollDoubleInJail
}

// UseJailFreeCard surrenders a held card, reinserting it at the bottom of
// its deck. Calling it without a held card is engine misuse and panics.
func (p *Player) UseJailFreeCard() {
	switch {
	case p.ChanceJailCard:
		p.ChanceJailCard = false
		p.chanceDeck.ReturnJailFreeCard()
	case p.ChestJailCard:
		p.ChestJailCard = false
		p.chestDeck.ReturnJailFreeCard()
	default:
		panic("UseJailFreeCard called without a held jail-free card")
	}
}

// DecideToBuy refuses any purchase that would drop cash below the player's
// floor, then samples the weight matching the property kind.
func (p *Player) DecideToBuy(prop Property) bool {
	if p.Cash-prop.Details().Price < p.MinCash {
		return false
	}
	var w float64
	switch prop.(type) {
	case *Street:
		w = p.Weights.BuyStreet
	case *Railroad:
		w = p.Weights.BuyRailroad
	case *Utility:
		w = p.Weights.BuyUtility
	}
	return p.rng.Float64() < w
}

// Buy debits the price and records ownership. Completing a street's color
// group raises every street in the group to the full-set rent tier in the
// same operation. Buying an already-owned property is a no-op.
func (p *Player) Buy(prop Property) {
	d := prop.Details()
	if d.Owner != nil {
		return
	}
	p.Cash -= d.Price
	d.Owner = p

	switch v := prop.(type) {
	case *Street:
		p.Streets[v.Group] = append(p.Streets[v.Group], v)
		if len(p.Streets[v.Group]) == v.Group.Size() {
			for _, s := range p.Streets[v.Group] {
				s.Level = LevelFullSet
			}
		}
	case *Railroad:
		p.Railroads = append(p.Railroads, v)
	case *Utility:
		p.Utilities = append(p.Utilities, v)
	}
}

// Build raises a street one improvement level and debits the house cost.
// Building past the hotel, on a mortgaged street, or on a street without
// its full group is a no-op.
func (p *Player) Build(s *Street) {
	if s.Owner != p || s.Mortgaged || s.Level == LevelUnset || s.Level >= LevelHotel {
		return
	}
	s.Level++
	p.Cash -= s.HouseCost
}

// expandableGroups returns the color groups eligible for building: fully
// owned, no street mortgaged, not already all-hotel.
func (p *Player) expandableGroups() map[Group][]*Street {
	sets := make(map[Group][]*Street)
	for group, streets := range p.Streets {
		if len(streets) != group.Size() {
			continue
		}
		allHotel := true
		anyMortgaged := false
		for _, s := range streets {
			if !s.HasHotel() {
				allHotel = false
			}
			if s.Mortgaged {
				anyMortgaged = true
			}
		}
		if !allHotel && !anyMortgaged {
			sets[group] = streets
		}
	}
	return sets
}

// BuildHousesAndHotels spends down to the cash floor raising eligible
// groups, cheapest and least-improved groups first. Each pass builds one
// increment on every street holding its group's minimum level.
func (p *Player) BuildHousesAndHotels() {
	sets := p.expandableGroups()
	groups := maps.Keys(sets)
	slices.SortFunc(groups, func(a, b Group) int {
		if d := levelSum(sets[a]) - levelSum(sets[b]); d != 0 {
			return d
		}
		return minHouseCost(sets[a]) - minHouseCost(sets[b])
	})

	for p.Cash > p.MinCash {
		built := false
		for _, group := range groups {
			streets := sets[group]
			minLevel := streets[0].Level
			for _, s := range streets[1:] {
				if s.Level < minLevel {
					minLevel = s.Level
				}
			}
			if minLevel >= LevelHotel {
				continue
			}
			for _, s := range streets {
				if s.Level != minLevel {
					continue
				}
				if p.Cash-s.HouseCost < p.MinCash {
					break
				}
				p.Build(s)
				built = true
			}
		}
		if !built {
			break
		}
	}
}

func levelSum(streets []*Street) int {
	sum := 0
	for _, s := range streets {
		sum += s.Level
	}
	return sum
}

func minHouseCost(streets []*Street) int {
	cost := streets[0].HouseCost
	for _, s := range streets[1:] {
		if s.HouseCost < cost {
			cost = s.HouseCost
		}
	}
	return cost
}

// holdingGroup is a set of commonly-grouped properties: the owned streets of
// one color, all owned railroads, or all owned utilities.
type holdingGroup struct {
	size  int
	props []Property
}

func (hg holdingGroup) minMortgage() int {
	m := hg.props[0].Details().MortgageValue()
	for _, prop := range hg.props[1:] {
		if v := prop.Details().MortgageValue(); v < m {
			m = v
		}
	}
	return m
}

func (p *Player) holdingGroups() []holdingGroup {
	var groups []holdingGroup
	for _, streets := range p.Streets {
		hg := holdingGroup{size: len(streets)}
		for _, s := range streets {
			hg.props = append(hg.props, s)
		}
		groups = append(groups, hg)
	}
	if len(p.Railroads) > 0 {
		hg := holdingGroup{size: len(p.Railroads)}
		for _, r := range p.Railroads {
			hg.props = append(hg.props, r)
		}
		groups = append(groups, hg)
	}
	if len(p.Utilities) > 0 {
		hg := holdingGroup{size: len(p.Utilities)}
		for _, u := range p.Utilities {
			hg.props = append(hg.props, u)
		}
		groups = append(groups, hg)
	}
	return groups
}

// UnmortgageProperties pays off mortgages (mortgage value plus 10%) ordered
// by descending holding-group size, while cash stays above the unmortgage
// floor.
func (p *Player) UnmortgageProperties() {
	groups := p.holdingGroups()
	slices.SortFunc(groups, func(a, b holdingGroup) int {
		return b.size - a.size
	})
	for _, hg := range groups {
		for _, prop := range hg.props {
			d := prop.Details()
			if d.Mortgaged && p.Cash-d.UnmortgageCost() >= p.MinCashToUnmortgage {
				p.Cash -= d.UnmortgageCost()
				d.Mortgaged = false
			}
		}
	}
}

// streetsWithHouses returns every owned street carrying at least one house
// or a hotel.
func (p *Player) streetsWithHouses() []*Street {
	var streets []*Street
	for _, owned := range p.Streets {
		for _, s := range owned {
			if s.Level >= FirstHouseLevel {
				streets = append(streets, s)
			}
		}
	}
	return streets
}

// raiseFunds liquidates assets to cover a shortfall: first sell improvements
// one increment at a time (half the house cost refunded) from the streets
// with the highest house price, then mortgage remaining properties by
// ascending holding-group size and mortgage value. The two-phase order
// mirrors standard play and must be preserved for behavioral
// reproducibility.
func (p *Player) raiseFunds(amount int) {
	p.sellHouses(amount)
	if p.Cash >= amount {
		return
	}
	p.mortgageProperties(amount)
}

func (p *Player) sellHouses(amount int) {
	streets := p.streetsWithHouses()
	slices.SortFunc(streets, func(a, b *Street) int {
		return b.HouseCost - a.HouseCost
	})
	for _, s := range streets {
		for p.Cash < amount && s.Level >= FirstHouseLevel {
			s.Level--
			p.Cash += s.HouseCost / 2
		}
		if p.Cash >= amount {
			return
		}
	}
}

func (p *Player) mortgageProperties(amount int) {
	groups := p.holdingGroups()
	slices.SortFunc(groups, func(a, b holdingGroup) int {
		if d := a.size - b.size; d != 0 {
			return d
		}
		return a.minMortgage() - b.minMortgage()
	})
	for _, hg := range groups {
		for _, prop := range hg.props {
			d := prop.Details()
			if !d.Mortgaged {
				d.Mortgaged = true
				p.Cash += d.MortgageValue()
			}
			if p.Cash >= amount {
				return
			}
		}
	}
}

// Pay settles a debt. A shortfall triggers fund-raising; an unrecoverable
// shortfall eliminates the player and transfers all assets to the creditor.
// Pay never fails: insolvency always resolves through elimination.
func (p *Player) Pay(amount int, to Creditor) {
	if p.Cash < amount {
		p.raiseFunds(amount)
	}
	if p.Cash < amount {
		p.Active = false
		p.transferAssets(to)
		return
	}
	p.Cash -= amount
	to.Earn(amount)
}

// transferAssets hands everything to the creditor. A player creditor takes
// cash, properties and held jail-free cards; the bank voids ownership and
// returns jail-free cards to their decks.
func (p *Player) transferAssets(to Creditor) {
	switch creditor := to.(type) {
	case *Player:
		creditor.Earn(p.Cash)
		p.Cash = 0
		for _, streets := range p.Streets {
			for _, s := range streets {
				s.Owner = creditor
				creditor.Streets[s.Group] = append(creditor.Streets[s.Group], s)
			}
		}
		for _, r := range p.Railroads {
			r.Owner = creditor
			creditor.Railroads = append(creditor.Railroads, r)
		}
		for _, u := range p.Utilities {
			u.Owner = creditor
			creditor.Utilities = append(creditor.Utilities, u)
		}
		if p.ChanceJailCard {
			creditor.ChanceJailCard = true
		}
		if p.ChestJailCard {
			creditor.ChestJailCard = true
		}
	case *Bank:
		p.Cash = 0
		for _, streets := range p.Streets {
			for _, s := range streets {
				s.Owner = nil
			}
		}
		for _, r := range p.Railroads {
			r.Owner = nil
		}
		for _, u := range p.Utilities {
			u.Owner = nil
		}
		if p.ChanceJailCard {
			p.chanceDeck.ReturnJailFreeCard()
		}
		if p.ChestJailCard {
			p.chestDeck.ReturnJailFreeCard()
		}
	}
	p.Streets = make(map[Group][]*Street)
	p.Railroads = nil
	p.Utilities = nil
	p.ChanceJailCard = false
	p.ChestJailCard = false
}

// StreetRepairFee is the street-repairs card assessment over the player's
// improvements.
func (p *Player) StreetRepairFee() int {
	return p.repairFee(streetRepairPerHouse, streetRepairPerHotel)
}

// GeneralRepairFee is the general-repairs card assessment.
func (p *Player) GeneralRepairFee() int {
	return p.repairFee(generalRepairPerHouse, generalRepairPerHotel)
}

func (p *Player) repairFee(perHouse, perHotel int) int {
	total := 0
	for _, streets := range p.Streets {
		for _, s := range streets {
			if s.HasHotel() {
				total += perHotel
			} else {
				total += perHouse * s.Houses()
			}
		}
	}
	return total
}

// MoveBy advances the player by a dice total, wrapping the board and
// collecting the origin salary once per lap.
func (p *Player) MoveBy(steps int) {
	p.LastDiceTotal = steps
	p.Position += steps
	if p.Position >= BoardSize {
		p.Position -= BoardSize
		p.Earn(GoSalary)
	}
}

// AdvanceTo relocates the player to a fixed tile. When collectOnWrap is set
// the origin salary is paid if the move wraps past the origin (the new
// position strictly decreases).
func (p *Player) AdvanceTo(index int, collectOnWrap bool) {
	if collectOnWrap && index < p.Position {
		p.Earn(GoSalary)
	}
	p.Position = index
}

// AdvanceToGo moves to the origin and collects the salary.
func (p *Player) AdvanceToGo() {
	p.Position = OriginIndex
	p.Earn(GoSalary)
}

// GoBackThree is the relative card move; it never collects salary.
func (p *Player) GoBackThree() {
	p.Position = (p.Position - 3 + BoardSize) % BoardSize
}

// GoToJail transfers the player to the jail tile without passing the origin.
func (p *Player) GoToJail() {
	p.InJail = true
	p.Position = JailIndex
}
