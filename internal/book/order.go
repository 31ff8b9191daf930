package book

import "github.com/shopspring/decimal"

// Order is a resting or just-matched limit order. Id, Side, Tick, and
// Original are fixed at creation; Remaining is the only mutable field and
// only ever decreases, through matching or cancellation removing the order
// from the book entirely.
type Order struct {
	Id        OrderId
	Side      Side
	Tick      Tick
	Original  decimal.Decimal
	Remaining decimal.Decimal
}
