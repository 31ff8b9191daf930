package book

import "github.com/shopspring/decimal"

// priceToTick converts a price to a Tick under the book's tick size. It
// requires price to be a strictly positive, exact multiple of tickSize;
// any other input is rejected rather than rounded, since silently
// snapping a price to the nearest tick would violate the caller's intent
// and spec.md's exactness requirement.
func priceToTick(tickSize, price decimal.Decimal) (Tick, bool) {
	if !price.IsPositive() {
		return 0, false
	}
	quotient, remainder := price.QuoRem(tickSize, 0)
	if !remainder.IsZero() {
		return 0, false
	}
	return Tick(quotient.IntPart()), true
}

// tickToPrice is the inverse of priceToTick: price = tick * tickSize.
func tickToPrice(tickSize decimal.Decimal, tick Tick) decimal.Decimal {
	return tickSize.Mul(decimal.NewFromInt(int64(tick)))
}
