package book

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderBook is the top-level matching engine for a single instrument. It
// is not internally synchronized: callers that submit from more than one
// goroutine must serialize access externally (spec.md §5).
type OrderBook struct {
	id       uuid.UUID
	tickSize decimal.Decimal

	bids *priceIndex
	asks *priceIndex

	registry *registry
	nextId   OrderId

	bidVolume decimal.Decimal
	askVolume decimal.Decimal
}

// New constructs an empty book with the given tick size, which must be a
// strictly positive decimal.
func New(tickSize decimal.Decimal) (*OrderBook, error) {
	if !tickSize.IsPositive() {
		return nil, ErrInvalidInput
	}
	return &OrderBook{
		id:        uuid.New(),
		tickSize:  tickSize,
		bids:      newBidIndex(),
		asks:      newAskIndex(),
		registry:  newRegistry(),
		nextId:    1,
		bidVolume: decimal.Zero,
		askVolume: decimal.Zero,
	}, nil
}

// ID identifies this book instance. It plays no role in matching; it
// exists so a host holding several coexisting books can key and log
// against them unambiguously.
func (b *OrderBook) ID() uuid.UUID {
	return b.id
}

// AddLimitOrder validates and accepts a limit order. It matches
// immediately against any crossing resting liquidity, then rests any
// unfilled remainder on the book. A fresh OrderId is always returned,
// even when the order fully executes and never rests (that id is then
// not cancelable, since nothing is registered under it).
func (b *OrderBook) AddLimitOrder(side Side, price, quantity decimal.Decimal) (OrderId, []Fill, error) {
	if !quantity.IsPositive() {
		return 0, nil, ErrInvalidInput
	}
	tick, ok := priceToTick(b.tickSize, price)
	if !ok {
		return 0, nil, ErrInvalidInput
	}

	fills, remaining := b.match(b.oppositeIndex(side), side, &tick, quantity)

	id := b.allocateId()
	if remaining.IsPositive() {
		own := b.sideIndex(side)
		order := &Order{Id: id, Side: side, Tick: tick, Original: quantity, Remaining: remaining}
		level := own.getOrCreate(tick)
		n := level.append(order)
		b.registry.set(id, side, tick, n)
		b.adjustVolume(side, remaining)
	}
	return id, fills, nil
}

// ExecuteMarketOrder validates and accepts a market order. It checks the
// opposite side's aggregate volume first: if that volume cannot cover the
// requested quantity, the book is left completely unchanged and
// ErrInsufficientLiquidity is returned. Otherwise the order is guaranteed
// to fill completely.
func (b *OrderBook) ExecuteMarketOrder(side Side, quantity decimal.Decimal) ([]Fill, error) {
	if !quantity.IsPositive() {
		return nil, ErrInvalidInput
	}
	if quantity.GreaterThan(b.sideVolume(oppositeSide(side))) {
		return nil, ErrInsufficientLiquidity
	}

	fills, _ := b.match(b.oppositeIndex(side), side, nil, quantity)
	return fills, nil
}

// CancelLimitOrder removes a resting order from the book. It fails with
// ErrUnknownOrder if the id is not, or is no longer, resting.
func (b *OrderBook) CancelLimitOrder(id OrderId) error {
	loc, ok := b.registry.get(id)
	if !ok {
		return ErrUnknownOrder
	}

	idx := b.sideIndex(loc.side)
	level, ok := idx.get(loc.tick)
	if !ok {
		return ErrUnknownOrder
	}

	remaining := loc.node.order.Remaining
	level.remove(loc.node)
	b.adjustVolume(loc.side, remaining.Neg())
	idx.deleteIfEmpty(level)
	b.registry.delete(id)
	return nil
}

// BestBid returns the highest resting buy price and its level volume.
func (b *OrderBook) BestBid() (price, volume decimal.Decimal, ok bool) {
	return b.bestOf(b.bids)
}

// BestAsk returns the lowest resting sell price and its level volume.
func (b *OrderBook) BestAsk() (price, volume decimal.Decimal, ok bool) {
	return b.bestOf(b.asks)
}

func (b *OrderBook) bestOf(idx *priceIndex) (price, volume decimal.Decimal, ok bool) {
	level, found := idx.best()
	if !found {
		return decimal.Zero, decimal.Zero, false
	}
	return tickToPrice(b.tickSize, level.tick), level.volume, true
}

// VolumeAt returns the resting volume at price on the given side, or zero
// if the price holds no resting orders (including when price does not
// align to the book's tick grid).
func (b *OrderBook) VolumeAt(side Side, price decimal.Decimal) decimal.Decimal {
	tick, ok := priceToTick(b.tickSize, price)
	if !ok {
		return decimal.Zero
	}
	level, ok := b.sideIndex(side).get(tick)
	if !ok {
		return decimal.Zero
	}
	return level.volume
}

// match drains the opposite-side index in price-time priority, consuming
// up to quantity. When bound is non-nil (a limit order), matching stops
// as soon as the opposite best tick no longer crosses bound; when bound
// is nil (a market order), matching continues until quantity is
// exhausted, which the caller must already have guaranteed is possible.
func (b *OrderBook) match(opposite *priceIndex, takerSide Side, bound *Tick, quantity decimal.Decimal) ([]Fill, decimal.Decimal) {
	var fills []Fill
	makerSide := oppositeSide(takerSide)

	for quantity.IsPositive() {
		level, ok := opposite.best()
		if !ok {
			break
		}
		if bound != nil && !crosses(takerSide, *bound, level.tick) {
			break
		}

		maker := level.peekFront()
		filled := level.fillHead(quantity)
		quantity = quantity.Sub(filled)
		b.adjustVolume(makerSide, filled.Neg())

		fills = append(fills, Fill{
			MakerOrderId: maker.Id,
			TakerSide:    takerSide,
			Price:        tickToPrice(b.tickSize, level.tick),
			Quantity:     filled,
		})

		if maker.Remaining.IsZero() {
			level.popFront()
			b.registry.delete(maker.Id)
			opposite.deleteIfEmpty(level)
		}
	}
	return fills, quantity
}

// crosses reports whether a resting level at makerTick is marketable
// against an incoming order of takerSide limited to takerTick.
func crosses(takerSide Side, takerTick, makerTick Tick) bool {
	if takerSide == Buy {
		return makerTick <= takerTick
	}
	return makerTick >= takerTick
}

func oppositeSide(side Side) Side {
	if side == Buy {
		return Sell
	}
	return Buy
}

func (b *OrderBook) sideIndex(side Side) *priceIndex {
	if side == Buy {
		return b.bids
	}
	return b.asks
}

func (b *OrderBook) oppositeIndex(side Side) *priceIndex {
	return b.sideIndex(oppositeSide(side))
}

func (b *OrderBook) sideVolume(side Side) decimal.Decimal {
	if side == Buy {
		return b.bidVolume
	}
	return b.askVolume
}

func (b *OrderBook) adjustVolume(side Side, delta decimal.Decimal) {
	if side == Buy {
		b.bidVolume = b.bidVolume.Add(delta)
	} else {
		b.askVolume = b.askVolume.Add(delta)
	}
}

func (b *OrderBook) allocateId() OrderId {
	id := b.nextId
	b.nextId++
	return id
}
