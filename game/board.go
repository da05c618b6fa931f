package game

// BoardSize is the number of tiles on the board.
const BoardSize = 40

// Fixed tile positions referenced by movement and card effects.
const (
	OriginIndex    = 0
	JailIndex      = 10
	GoToJailIndex  = 30
	StCharlesIndex = 11
	IllinoisIndex  = 24
	BoardwalkIndex = 39
	ReadingIndex   = 5
)

// Board is the immutable 40-tile registry. The tile records themselves carry
// the mutable ownership state; the sequence never changes after construction.
type Board struct {
	Tiles []*Tile
}

// Tile returns the tile at the given board index.
func (b *Board) Tile(index int) *Tile { return b.Tiles[index] }

func street(index int, name string, group Group, price int, rents [7]int, houseCost int) *Tile {
	s := &Street{
		PropertyDetails: PropertyDetails{Name: name, Index: index, Price: price},
		Group:           group,
		HouseCost:       houseCost,
		Rents:           rents,
	}
	return &Tile{Index: index, Kind: StreetKind, Name: name, Street: s}
}

func railroad(index int, name string) *Tile {
	r := &Railroad{
		PropertyDetails: PropertyDetails{Name: name, Index: index, Price: 200},
		Rents:           [4]int{25, 50, 100, 200},
	}
	return &Tile{Index: index, Kind: RailroadKind, Name: name, Railroad: r}
}

func utility(index int, name string) *Tile {
	u := &Utility{
		PropertyDetails: PropertyDetails{Name: name, Index: index, Price: 150},
	}
	return &Tile{Index: index, Kind: UtilityKind, Name: name, Utility: u}
}

func plain(index int, kind TileKind, name string) *Tile {
	return &Tile{Index: index, Kind: kind, Name: name}
}

func tax(index int, name string, amount int) *Tile {
	return &Tile{Index: index, Kind: TaxKind, Name: name, Tax: amount}
}

// NewBoard assembles the canonical US board: historically accurate prices,
// rent schedules, house costs and group assignments.
func NewBoard() *Board {
	return &Board{Tiles: []*Tile{
		plain(0, OriginKind, "Go"),
		street(1, "Mediterranean Avenue", Brown, 60, [7]int{2, 4, 10, 30, 90, 160, 250}, 50),
		plain(2, CommunityChestKind, "Community Chest"),
		street(3, "Baltic Avenue", Brown, 60, [7]int{4, 8, 20, 60, 180, 320, 450}, 50),
		tax(4, "Income Tax", 200),
		railroad(5, "Reading Railroad"),
		street(6, "Oriental Avenue", LightBlue, 100, [7]int{6, 12, 30, 90, 270, 400, 550}, 50),
		plain(7, ChanceKind, "Chance"),
		street(8, "Vermont Avenue", LightBlue, 100, [7]int{6, 12, 30, 90, 270, 400, 550}, 50),
		street(9, "Connecticut Avenue", LightBlue, 120, [7]int{8, 16, 40, 100, 300, 450, 600}, 50),
		plain(10, JailKind, "Jail"),
		street(11, "St. Charles Place", Pink, 140, [7]int{10, 20, 50, 150, 450, 625, 750}, 100),
		utility(12, "Electric Company"),
		street(13, "States Avenue", Pink, 140, [7]int{10, 20, 50, 150, 450, 625, 750}, 100),
		street(14, "Virginia Avenue", Pink, 160, [7]int{12, 24, 60, 180, 500, 700, 900}, 100),
		railroad(15, "Pennsylvania Railroad"),
		street(16, "St. James Place", Orange, 180, [7]int{14, 28, 70, 200, 550, 750, 950}, 100),
		plain(17, CommunityChestKind, "Community Chest"),
		street(18, "Tennessee Avenue", Orange, 180, [7]int{14, 28, 70, 200, 550, 750, 950}, 100),
		street(19, "New York Avenue", Orange, 200, [7]int{16, 32, 80, 220, 600, 800, 1000}, 100),
		plain(20, FreeParkingKind, "Free Parking"),
		street(21, "Kentucky Avenue", Red, 220, [7]int{18, 36, 90, 250, 700, 875, 1050}, 150),
		plain(22, ChanceKind, "Chance"),
		street(23, "Indiana Avenue", Red, 220, [7]int{18, 36, 90, 250, 700, 875, 1050}, 150),
		street(24, "Illinois Avenue", Red, 240, [7]int{20, 40, 100, 300, 750, 925, 1100}, 150),
		railroad(25, "B&O Railroad"),
		street(26, "Atlantic Avenue", Yellow, 260, [7]int{22, 44, 110, 330, 800, 975, 1150}, 150),
		street(27, "Ventnor Avenue", Yellow, 260, [7]int{22, 44, 110, 330, 800, 975, 1150}, 150),
		utility(28, "Water Works"),
		street(29, "Marvin Gardens", Yellow, 280, [7]int{24, 48, 120, 360, 850, 1025, 1200}, 150),
		plain(30, GoToJailKind, "Go To Jail"),
		street(31, "Pacific Avenue", Green, 300, [7]int{26, 52, 130, 390, 900, 1100, 1275}, 200),
		street(32, "North Carolina Avenue", Green, 300, [7]int{26, 52, 130, 390, 900, 1100, 1275}, 200),
		plain(33, CommunityChestKind, "Community Chest"),
		street(34, "Pennsylvania Avenue", Green, 320, [7]int{28, 56, 150, 450, 1000, 1200, 1400}, 200),
		railroad(35, "Short Line"),
		plain(36, ChanceKind, "Chance"),
		street(37, "Park Place", DarkBlue, 350, [7]int{35, 70, 175, 500, 1100, 1300, 1500}, 200),
		tax(38, "Luxury Tax", 100),
		street(39, "Boardwalk", DarkBlue, 400, [7]int{50, 100, 200, 600, 1400, 1700, 2000}, 200),
	}}
}
