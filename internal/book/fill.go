package book

import "github.com/shopspring/decimal"

// Fill reports one executed match between exactly one resting maker order
// and the active taker. Fills always execute at the maker's tick,
// regardless of the taker's limit price.
type Fill struct {
	MakerOrderId OrderId
	TakerSide    Side
	Price        decimal.Decimal
	Quantity     decimal.Decimal
}
