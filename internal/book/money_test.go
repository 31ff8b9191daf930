package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPriceToTick_ExactMultiple(t *testing.T) {
	tickSize := decimal.RequireFromString("0.01")

	tick, ok := priceToTick(tickSize, decimal.RequireFromString("100.00"))
	assert.True(t, ok)
	assert.Equal(t, Tick(10000), tick)

	tick, ok = priceToTick(tickSize, decimal.RequireFromString("100.01"))
	assert.True(t, ok)
	assert.Equal(t, Tick(10001), tick)
}

func TestPriceToTick_RejectsOffGridPrice(t *testing.T) {
	tickSize := decimal.RequireFromString("0.01")

	_, ok := priceToTick(tickSize, decimal.RequireFromString("100.005"))
	assert.False(t, ok)
}

func TestPriceToTick_RejectsNonPositive(t *testing.T) {
	tickSize := decimal.RequireFromString("0.01")

	_, ok := priceToTick(tickSize, decimal.Zero)
	assert.False(t, ok)

	_, ok = priceToTick(tickSize, decimal.RequireFromString("-1.00"))
	assert.False(t, ok)
}

func TestTickToPrice_RoundTrips(t *testing.T) {
	tickSize := decimal.RequireFromString("0.01")

	price := tickToPrice(tickSize, 10001)
	assert.True(t, price.Equal(decimal.RequireFromString("100.01")))

	tick, ok := priceToTick(tickSize, price)
	assert.True(t, ok)
	assert.Equal(t, Tick(10001), tick)
}
