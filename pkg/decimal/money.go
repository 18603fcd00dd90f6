package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSymbol prefixes every formatted amount.
const RupeeSymbol = "₹"

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Round rounds the money amount to paise
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Whole rounds to the nearest rupee, half away from zero.
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// FormatINR renders whole rupees with Indian digit grouping: the last three
// digits, then groups of two (₹11,61,695; -₹4,29,18,707).
func (m Money) FormatINR() string {
	digits := m.Whole().Decimal.Abs().StringFixed(0)
	sign := ""
	if m.Whole().Decimal.IsNegative() {
		sign = "-"
	}
	return sign + RupeeSymbol + GroupIndian(digits)
}

// GroupIndian inserts lakh/crore separators into a string of digits.
func GroupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

// FormatLakhs renders an amount in lakhs with one decimal ("₹11.6 Lakhs"),
// or in crores once it reaches one crore.
func (m Money) FormatLakhs() string {
	lakh := decimal.NewFromInt(100000)
	crore := decimal.NewFromInt(10000000)
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(crore):
		return sign + RupeeSymbol + abs.Div(crore).StringFixed(2) + " Cr"
	case abs.GreaterThanOrEqual(lakh):
		return sign + RupeeSymbol + abs.Div(lakh).StringFixed(1) + " Lakhs"
	}
	return m.FormatINR()
}
