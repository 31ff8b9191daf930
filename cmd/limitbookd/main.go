// Command limitbookd is a small, directly-driven host for the matching
// core: it builds one book, feeds it a scripted order stream, and logs
// fills and rejections as they come back. It stands in for the kind of
// external caller spec.md describes as living above the core (a
// sequencer, a gateway) — only here the "wire" is just a Go slice.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/solarpx/limitbook/internal/book"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}

type scriptedOrder struct {
	side     book.Side
	price    string
	quantity string
}

func main() {
	b, err := book.New(decimal.RequireFromString("0.01"))
	if err != nil {
		log.Fatal().Err(err).Msg("unable to construct book")
	}

	logger := log.With().Str("bookId", b.ID().String()).Logger()
	logger.Info().Str("tickSize", "0.01").Msg("book opened")

	script := []scriptedOrder{
		{book.Sell, "100.00", "50"},
		{book.Sell, "100.00", "20"},
		{book.Buy, "100.01", "80"},
		{book.Buy, "99.00", "10"},
	}

	for _, o := range script {
		price := decimal.RequireFromString(o.price)
		quantity := decimal.RequireFromString(o.quantity)

		id, fills, err := b.AddLimitOrder(o.side, price, quantity)
		if err != nil {
			logger.Error().Err(err).Str("side", o.side.String()).Str("price", o.price).Msg("order rejected")
			continue
		}

		event := logger.Info().
			Uint64("orderId", uint64(id)).
			Str("side", o.side.String()).
			Str("price", o.price).
			Str("quantity", o.quantity)
		if len(fills) == 0 {
			event.Msg("order resting")
		} else {
			event.Int("fills", len(fills)).Msg("order matched")
		}

		for _, f := range fills {
			logger.Info().
				Uint64("makerOrderId", uint64(f.MakerOrderId)).
				Str("takerSide", f.TakerSide.String()).
				Str("price", f.Price.String()).
				Str("quantity", f.Quantity.String()).
				Msg("fill")
		}
	}

	if price, volume, ok := b.BestBid(); ok {
		logger.Info().Str("price", price.String()).Str("volume", volume.String()).Msg("best bid")
	}
	if price, volume, ok := b.BestAsk(); ok {
		logger.Info().Str("price", price.String()).Str("volume", volume.String()).Msg("best ask")
	}
}
