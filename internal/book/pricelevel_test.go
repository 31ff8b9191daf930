package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPriceLevel_AppendAndPeek(t *testing.T) {
	level := newPriceLevel(10000)

	a := &Order{Id: 1, Remaining: qty("10")}
	b := &Order{Id: 2, Remaining: qty("5")}
	level.append(a)
	level.append(b)

	assert.Equal(t, 2, level.count)
	assert.True(t, level.volume.Equal(qty("15")))
	assert.Equal(t, OrderId(1), level.peekFront().Id)
}

func TestPriceLevel_FillHeadPartial(t *testing.T) {
	level := newPriceLevel(10000)
	a := &Order{Id: 1, Remaining: qty("10")}
	level.append(a)

	filled := level.fillHead(qty("4"))
	assert.True(t, filled.Equal(qty("4")))
	assert.True(t, a.Remaining.Equal(qty("6")))
	assert.True(t, level.volume.Equal(qty("6")))
	assert.Equal(t, 1, level.count, "partial fill does not dequeue")
}

func TestPriceLevel_FillHeadFullThenPop(t *testing.T) {
	level := newPriceLevel(10000)
	a := &Order{Id: 1, Remaining: qty("10")}
	b := &Order{Id: 2, Remaining: qty("5")}
	level.append(a)
	level.append(b)

	filled := level.fillHead(qty("10"))
	assert.True(t, filled.Equal(qty("10")))
	assert.True(t, a.Remaining.IsZero())

	level.popFront()
	assert.Equal(t, 1, level.count)
	assert.Equal(t, OrderId(2), level.peekFront().Id)
	assert.False(t, level.empty())
}

func TestPriceLevel_RemoveFromMiddle(t *testing.T) {
	level := newPriceLevel(10000)
	a := &Order{Id: 1, Remaining: qty("10")}
	b := &Order{Id: 2, Remaining: qty("10")}
	c := &Order{Id: 3, Remaining: qty("10")}
	level.append(a)
	nb := level.append(b)
	level.append(c)

	level.remove(nb)

	assert.Equal(t, 2, level.count)
	assert.True(t, level.volume.Equal(qty("20")))

	var ids []OrderId
	for n := level.head; n != nil; n = n.next {
		ids = append(ids, n.order.Id)
	}
	assert.Equal(t, []OrderId{1, 3}, ids)
}

func TestPriceLevel_EmptyAfterDraining(t *testing.T) {
	level := newPriceLevel(10000)
	a := &Order{Id: 1, Remaining: qty("10")}
	level.append(a)

	level.fillHead(qty("10"))
	level.popFront()

	assert.True(t, level.empty())
	assert.True(t, level.volume.IsZero())
}
