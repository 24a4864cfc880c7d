package domain

// ConversionKind names the three ways an amount can be converted.
type ConversionKind string

const (
	ConversionCombined ConversionKind = "combined"
	ConversionCoins    ConversionKind = "coins"
	ConversionBills    ConversionKind = "bills"
)

// IsValid reports whether k is one of the known conversion kinds.
func (k ConversionKind) IsValid() bool {
	switch k {
	case ConversionCombined, ConversionCoins, ConversionBills:
		return true
	}
	return false
}

// CombinedConversion is an amount split into bills, with whatever is left split into coins.
// The coin pass always consumes the rest, so there is no remainder.
type CombinedConversion struct {
	AmountCents int64
	Bills       Breakdown
	Coins       Breakdown
}

// Pieces returns the total number of bills and coins handed out.
func (c CombinedConversion) Pieces() int64 {
	return c.Bills.Pieces() + c.Coins.Pieces()
}

// CoinConversion is an amount split into coins only.
type CoinConversion struct {
	AmountCents int64
	Coins       Breakdown
}

// BillConversion is an amount split into bills only.
// Anything below the smallest bill is reported as RemainderCents.
type BillConversion struct {
	AmountCents    int64
	Bills          Breakdown
	RemainderCents int64
}
