package domain

import "github.com/shopspring/decimal"

const (
	amountScale  = 2
	workingScale = 4
)

// TotalAmount returns tickets × price in currency units: the product is
// truncated to four places and then rounded half away from zero to cents.
func TotalAmount(price decimal.Decimal, tickets int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(tickets))).
		Truncate(workingScale).
		Round(amountScale)
}
