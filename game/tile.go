package game

// TileKind enumerates the closed set of tile variants on the board. Landing
// dispatch switches exhaustively on this, so new kinds must be handled in
// Game.handleLanding as well.
type TileKind int

const (
	OriginKind TileKind = iota
	StreetKind
	RailroadKind
	UtilityKind
	TaxKind
	ChanceKind
	CommunityChestKind
	JailKind
	GoToJailKind
	FreeParkingKind
)

func (k TileKind) String() string {
	switch k {
	case OriginKind:
		return "go"
	case StreetKind:
		return "street"
	case RailroadKind:
		return "railroad"
	case UtilityKind:
		return "utility"
	case TaxKind:
		return "tax"
	case ChanceKind:
		return "chance"
	case CommunityChestKind:
		return "community_chest"
	case JailKind:
		return "jail"
	case GoToJailKind:
		return "go_to_jail"
	case FreeParkingKind:
		return "free_parking"
	default:
		return "unknown"
	}
}

// Group identifies a street color group.
type Group int

const (
	Brown Group = iota
	LightBlue
	Pink
	Orange
	Red
	Yellow
	Green
	DarkBlue
)

var groupNames = []string{
	"Brown", "Light Blue", "Pink", "Orange", "Red", "Yellow", "Green", "Dark Blue",
}

var groupSizes = []int{2, 3, 3, 3, 3, 3, 3, 2}

func (g Group) String() string { return groupNames[g] }

// Size returns how many streets make up the group.
func (g Group) Size() int { return groupSizes[g] }

// Street improvement levels. A street only leaves LevelUnset when its owner
// holds the whole color group; LevelHotel is terminal.
const (
	LevelUnset      = 0
	LevelFullSet    = 1
	FirstHouseLevel = 2
	LevelHotel      = 6
)

// PropertyDetails is the state shared by all purchasable tiles.
type PropertyDetails struct {
	Name      string
	Index     int
	Price     int
	Mortgaged bool
	Owner     *Player
}

// MortgageValue is half the purchase price, per the standard rules.
func (d *PropertyDetails) MortgageValue() int { return d.Price / 2 }

// UnmortgageCost is the mortgage value plus 10% interest, rounded down.
func (d *PropertyDetails) UnmortgageCost() int { return d.MortgageValue() * 11 / 10 }

// Property is the capability shared by streets, railroads and utilities:
// anything with a price, a mortgage state and a reassignable owner.
type Property interface {
	Details() *PropertyDetails
}

type Street struct {
	PropertyDetails
	Group     Group
	HouseCost int
	// Rents indexed by level: base, full set, 1-4 houses, hotel.
	Rents [7]int
	Level int
}

func (s *Street) Details() *PropertyDetails { return &s.PropertyDetails }

// Houses returns the number of houses standing on the street. A hotel
// counts as zero houses.
func (s *Street) Houses() int {
	if s.Level >= FirstHouseLevel && s.Level < LevelHotel {
		return s.Level - 1
	}
	return 0
}

// HasHotel reports whether the street carries a hotel.
func (s *Street) HasHotel() bool { return s.Level == LevelHotel }

type Railroad struct {
	PropertyDetails
	// Rents indexed by count of railroads the owner holds, minus one.
	Rents [4]int
}

func (r *Railroad) Details() *PropertyDetails { return &r.PropertyDetails }

type Utility struct {
	PropertyDetails
}

func (u *Utility) Details() *PropertyDetails { return &u.PropertyDetails }

// Tile is one board square. Exactly one of the variant pointers is set for
// property kinds; Tax holds the amount for tax tiles.
type Tile struct {
	Index    int
	Kind     TileKind
	Name     string
	Tax      int
	Street   *Street
	Railroad *Railroad
	Utility  *Utility
}

// Property returns the tile's purchasable record, if it has one.
func (t *Tile) Property() (Property, bool) {
	switch t.Kind {
	case StreetKind:
		return t.Street, true
	case RailroadKind:
		return t.Railroad, true
	case UtilityKind:
		return t.Utility, true
	default:
		return nil, false
	}
}
