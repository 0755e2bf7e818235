package model

// PassengerCategory is a fare class. Each category carries a fixed discount
// off the train's base fare and a flag for whether one unit occupies a
// physical seat (infants travel on a lap).
type PassengerCategory string

const (
	CategoryAdult  PassengerCategory = "adult"
	CategoryChild  PassengerCategory = "child"
	CategorySenior PassengerCategory = "senior"
	CategoryInfant PassengerCategory = "infant"
)

// Categories returns all passenger categories in display order.
func Categories() []PassengerCategory {
	return []PassengerCategory{CategoryAdult, CategoryChild, CategorySenior, CategoryInfant}
}

func (c PassengerCategory) Valid() bool {
	switch c {
	case CategoryAdult, CategoryChild, CategorySenior, CategoryInfant:
		return true
	}
	return false
}

// DiscountPercent returns the discount off the base fare, in whole percent.
func (c PassengerCategory) DiscountPercent() int64 {
	switch c {
	case CategoryChild:
		return 50
	case CategorySenior:
		return 30
	case CategoryInfant:
		return 100
	default:
		return 0
	}
}

// OccupiesSeat reports whether one unit of this category consumes a seat.
func (c PassengerCategory) OccupiesSeat() bool {
	return c != CategoryInfant
}

func (c PassengerCategory) String() string {
	return string(c)
}
