package output

import (
	"strconv"

	"github.com/sipcalc/projection-engine/pkg/decimal"
)

// FormatCurrency renders whole rupees with Indian grouping (₹11,61,695).
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string { return decimal.NewMoney(amount).FormatINR() }

// FormatCompact renders an amount in lakhs or crores (₹11.6 Lakhs, ₹4.29 Cr).
func FormatCompact(amount float64) string { return decimal.NewMoney(amount).FormatLakhs() }

// FormatAmount renders an amount with two decimals for machine-readable output.
func FormatAmount(amount float64) string { return decimal.NewMoney(amount).Round().String() }

func intToString(i int) string { return strconv.Itoa(i) }
