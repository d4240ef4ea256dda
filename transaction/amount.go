package transaction

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Decimals is the fixed number of decimal places of on-chain amounts.
const Decimals = 8

var (
	amountScale = decimal.New(1, Decimals)
	maxAmount   = decimal.NewFromInt(math.MaxInt64)
)

// ParseAmount converts a decimal string such as "1.5" into on-chain units
// (150000000).
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return AmountFromDecimal(d)
}

// AmountFromDecimal converts a decimal amount into on-chain units.
func AmountFromDecimal(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount %s", d)
	}
	v := d.Mul(amountScale)
	if !v.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", d, Decimals)
	}
	if v.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("amount %s is too large", d)
	}
	return v.IntPart(), nil
}

// FormatAmount renders on-chain units as a decimal string with all eight
// places.
func FormatAmount(v int64) string {
	return decimal.New(v, -Decimals).StringFixed(Decimals)
}
