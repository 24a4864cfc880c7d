package domain

// DenominationName identifies a bill or coin within its table.
type DenominationName string

// Bill denomination names.
const (
	OneHundred DenominationName = "ONE_HUNDRED"
	Fifty      DenominationName = "FIFTY"
	Twenty     DenominationName = "TWENTY"
	Ten        DenominationName = "TEN"
	Five       DenominationName = "FIVE"
	Two        DenominationName = "TWO"
	One        DenominationName = "ONE"
)

// Coin denomination names.
const (
	Dollar     DenominationName = "DOLLAR"
	HalfDollar DenominationName = "HALF_DOLLAR"
	Quarter    DenominationName = "QUARTER"
	Dime       DenominationName = "DIME"
	Nickel     DenominationName = "NICKEL"
	Penny      DenominationName = "PENNY"
)

// Denomination represents a named unit of currency value, expressed in cents.
type Denomination struct {
	Name         DenominationName `json:"name"`
	ValueInCents int64            `json:"valueInCents"`
}

// The tables must stay strictly descending by value; BreakDown relies on it.
var (
	billDenominations = [...]Denomination{
		{Name: OneHundred, ValueInCents: 10_000},
		{Name: Fifty, ValueInCents: 5_000},
		{Name: Twenty, ValueInCents: 2_000},
		{Name: Ten, ValueInCents: 1_000},
		{Name: Five, ValueInCents: 500},
		{Name: Two, ValueInCents: 200},
		{Name: One, ValueInCents: 100},
	}

	coinDenominations = [...]Denomination{
		{Name: Dollar, ValueInCents: 100},
		{Name: HalfDollar, ValueInCents: 50},
		{Name: Quarter, ValueInCents: 25},
		{Name: Dime, ValueInCents: 10},
		{Name: Nickel, ValueInCents: 5},
		{Name: Penny, ValueInCents: 1},
	}
)

// BillDenominations returns the bill table, largest first.
// The returned slice is a copy and may be modified freely by the caller.
func BillDenominations() []Denomination {
	return append([]Denomination(nil), billDenominations[:]...)
}

// CoinDenominations returns the coin table, largest first.
// The returned slice is a copy and may be modified freely by the caller.
func CoinDenominations() []Denomination {
	return append([]Denomination(nil), coinDenominations[:]...)
}
