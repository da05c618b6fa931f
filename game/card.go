package game

// DeckKind distinguishes the two card catalogs.
type DeckKind int

const (
	ChanceDeck DeckKind = iota
	CommunityChestDeck
)

func (k DeckKind) String() string {
	if k == ChanceDeck {
		return "Chance"
	}
	return "Community Chest"
}

// CardEffect identifies what a drawn card does. Resolution is a total
// mapping in Game.resolveCard.
type CardEffect int

const (
	AdvanceToGo CardEffect = iota
	BankDividend
	GoToJailEffect
	AdvanceToIllinois
	AdvanceToStCharles
	NearestUtility
	NearestRailroad
	TripToReading
	AdvanceToBoardwalk
	Chairman
	BuildingLoan
	StreetRepairs
	PoorTax
	GeneralRepairs
	JailFree
	GoBackThree
	BankError
	DoctorFee
	StockSale
	HolidayFund
	IncomeTaxRefund
	Birthday
	LifeInsurance
	HospitalFees
	SchoolFees
	ConsultancyFee
	BeautyContest
	Inheritance
)

// Card is an immutable labeled effect.
type Card struct {
	Effect CardEffect
	Text   string
}

func chanceCatalog() []Card {
	return []Card{
		{AdvanceToGo, "Advance to Go (Collect $200)"},
		{BankDividend, "Bank pays you dividend of $50"},
		{GoToJailEffect, "Go to Jail - Go directly to Jail - Do not pass Go - Do not collect $200"},
		{AdvanceToIllinois, "Advance to Illinois Ave. - If you pass Go, collect $200"},
		{AdvanceToStCharles, "Advance to St. Charles Place - If you pass Go, collect $200"},
		{NearestUtility, "Advance token to the nearest Utility. If unowned, you may buy it from the Bank. If owned, throw dice and pay owner a total ten times the amount thrown."},
		{NearestRailroad, "Advance token to the nearest Railroad and pay owner twice the rental to which they are otherwise entitled. If Railroad is unowned, you may buy it from the Bank."},
		{TripToReading, "Take a trip to Reading Railroad - If you pass Go, collect $200"},
		{AdvanceToBoardwalk, "Take a walk on the Boardwalk - Advance token to Boardwalk"},
		{Chairman, "Elected Chairman of the Board - Pay each player $50"},
		{BuildingLoan, "Your building loan matures - Collect $150"},
		{StreetRepairs, "You have been assessed for street repairs - $40 per house, $115 per hotel"},
		{PoorTax, "Pay poor tax of $15"},
		{GeneralRepairs, "Make general repairs on all your property - For each house pay $25, for each hotel pay $100"},
		{JailFree, "Get out of Jail Free - This card may be kept until needed, or sold"},
		{GoBackThree, "Go back three spaces"},
	}
}

func communityChestCatalog() []Card {
	return []Card{
		{AdvanceToGo, "Advance to Go (Collect $200)"},
		{BankError, "Bank error in your favor - Collect $200"},
		{DoctorFee, "Doctor's fee - Pay $50"},
		{StockSale, "From sale of stock, you get $50"},
		{GoToJailEffect, "Go to Jail - Go directly to Jail - Do not pass Go - Do not collect $200"},
		{JailFree, "Get out of Jail Free - This card may be kept until needed, or sold"},
		{HolidayFund, "Holiday fund matures - Receive $100"},
		{IncomeTaxRefund, "Income tax refund - Collect $20"},
		{Birthday, "It is your birthday - Collect $10 from every player"},
		{LifeInsurance, "Life insurance matures - Collect $100"},
		{HospitalFees, "Pay hospital fees of $100"},
		{SchoolFees, "Pay school fees of $50"},
		{ConsultancyFee, "Receive $25 consultancy fee"},
		{StreetRepairs, "You are assessed for street repairs - $40 per house, $115 per hotel"},
		{BeautyContest, "You have won second prize in a beauty contest - Collect $10"},
		{Inheritance, "You inherit $100"},
	}
}
