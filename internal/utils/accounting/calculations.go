package accounting

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// OutstandingBalance returns what is still owed on an invoice: net minus paid, floored at zero.
func OutstandingBalance(net, paid decimal.Decimal) decimal.Decimal {
	return FloorAtZero(net.Sub(paid))
}

// FloorAtZero clamps negative amounts to zero.
func FloorAtZero(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// PercentOf computes base * percent / 100 rounded half away from zero to the given number of places.
// Example: PercentOf(2000, 10, 0) returns 200
// Example: PercentOf(1999, 12.5, 0) returns 250
func PercentOf(base, percent decimal.Decimal, places int32) decimal.Decimal {
	return base.Mul(percent).Div(hundred).Round(places)
}

// Overpayment returns how much of a payment exceeded the amount that was still owed.
func Overpayment(owedBefore, payment decimal.Decimal) decimal.Decimal {
	return FloorAtZero(payment.Sub(owedBefore))
}
