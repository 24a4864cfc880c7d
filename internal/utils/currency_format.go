package utils

import (
	"github.com/shopspring/decimal"
)

// centsExponent is the power of ten that turns whole cents into currency units.
const centsExponent = -2

// CentsToDecimal converts an integer amount of cents into an exact decimal amount of currency units.
// Example: 18786 returns 187.86
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, centsExponent)
}

// FormatCents formats an amount of cents with two decimal places.
// Example: 18786 returns "187.86"
// Example: 5 returns "0.05"
func FormatCents(cents int64) string {
	return CentsToDecimal(cents).StringFixed(2)
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
