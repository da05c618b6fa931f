package game

// RentDue computes the rent a player owes for landing on a tile. Unowned,
// mortgaged and self-owned properties owe nothing. diceTotal is the most
// recent dice roll, needed only for utilities; the caller supplies it since
// the tile cannot observe dice itself.
//
// Card-driven overrides (double railroad rent, ten-times-dice utility rent)
// are applied by the turn state machine on top of this value; the engine
// never special-cases cards.
func RentDue(tile *Tile, player *Player, diceTotal int) int {
	prop, ok := tile.Property()
	if !ok {
		return 0
	}
	d := prop.Details()
	if d.Owner == nil || d.Mortgaged || d.Owner == player {
		return 0
	}

	switch tile.Kind {
	case StreetKind:
		return tile.Street.Rents[tile.Street.Level]
	case RailroadKind:
		// Count is at least 1 whenever an owner exists.
		return tile.Railroad.Rents[len(d.Owner.Railroads)-1]
	case UtilityKind:
		multiplier := 4
		if len(d.Owner.Utilities) == 2 {
			multiplier = 10
		}
		return diceTotal * multiplier
	default:
		return 0
	}
}
