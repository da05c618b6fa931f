package game

// Snapshot is a read-only view of the game for rendering front ends. It
// copies plain values only, so holding one never aliases live game state.
type Snapshot struct {
	Current int
	Tiles   []TileSnapshot
	Players []PlayerSnapshot
}

type TileSnapshot struct {
	Index     int
	Kind      string
	Name      string
	Owner     string
	Level     int
	Mortgaged bool
}

type PlayerSnapshot struct {
	Name          string
	Cash          int
	Position      int
	InJail        bool
	Active        bool
	Holdings      []string
	JailFreeCards int
}

// Snapshot captures board occupancy and per-player standing.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Current: g.Current}

	for _, tile := range g.Board.Tiles {
		ts := TileSnapshot{Index: tile.Index, Kind: tile.Kind.String(), Name: tile.Name}
		if prop, ok := tile.Property(); ok {
			d := prop.Details()
			if d.Owner != nil {
				ts.Owner = d.Owner.Name
			}
			ts.Mortgaged = d.Mortgaged
		}
		if tile.Kind == StreetKind {
			ts.Level = tile.Street.Level
		}
		snap.Tiles = append(snap.Tiles, ts)
	}

	for _, p := range g.Players {
		ps := PlayerSnapshot{
			Name:     p.Name,
			Cash:     p.Cash,
			Position: p.Position,
			InJail:   p.InJail,
			Active:   p.Active,
		}
		for _, streets := range p.Streets {
			for _, s := range streets {
				ps.Holdings = append(ps.Holdings, s.Name)
			}
		}
		for _, r := range p.Railroads {
			ps.Holdings = append(ps.Holdings, r.Name)
		}
		for _, u := range p.Utilities {
			ps.Holdings = append(ps.Holdings, u.Name)
		}
		if p.ChanceJailCard {
			ps.JailFreeCards++
		}
		if p.ChestJailCard {
			ps.JailFreeCards++
		}
		snap.Players = append(snap.Players, ps)
	}
	return snap
}
