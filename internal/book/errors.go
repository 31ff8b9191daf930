package book

import "errors"

var (
	// ErrInvalidInput covers non-positive quantity/price and prices that
	// are not an exact multiple of the book's tick size.
	ErrInvalidInput = errors.New("book: invalid input")

	// ErrUnknownOrder is returned when a cancel targets an id that is not,
	// or is no longer, resting in the book.
	ErrUnknownOrder = errors.New("book: unknown order")

	// ErrInsufficientLiquidity is returned when a market order demands
	// more than the opposite side's total resting volume. The book is
	// left unchanged.
	ErrInsufficientLiquidity = errors.New("book: insufficient liquidity")
)
