package book

import "github.com/shopspring/decimal"

// node is one link in a PriceLevel's resting-order queue. The registry
// holds a non-owning *node handle per live order so cancellation can
// unlink it directly, without a scan of the level.
type node struct {
	order *Order
	prev  *node
	next  *node
}

// PriceLevel is a single (side, tick) bucket: a time-ordered queue of
// resting orders plus cached aggregate volume and count. Earliest
// inserted sits at the head, which is where matching always consumes
// from, giving strict time priority within the level.
type PriceLevel struct {
	tick   Tick
	head   *node
	tail   *node
	volume decimal.Decimal
	count  int
}

func newPriceLevel(tick Tick) *PriceLevel {
	return &PriceLevel{tick: tick, volume: decimal.Zero}
}

// append pushes order onto the tail of the queue and returns the handle
// the registry should retain for O(1) future removal.
func (l *PriceLevel) append(order *Order) *node {
	n := &node{order: order}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.volume = l.volume.Add(order.Remaining)
	l.count++
	return n
}

// peekFront returns the head order without removing it, or nil if empty.
func (l *PriceLevel) peekFront() *Order {
	if l.head == nil {
		return nil
	}
	return l.head.order
}

// popFront unlinks the head node. It does not touch volume: by the time a
// head order is popped its Remaining has already reached zero and volume
// was decremented as that quantity was consumed, fill by fill.
func (l *PriceLevel) popFront() {
	if l.head == nil {
		return
	}
	l.unlink(l.head)
}

// fillHead consumes up to qty from the head order, updating both the
// order's Remaining and the level's cached volume in lockstep, and
// returns the quantity actually filled.
func (l *PriceLevel) fillHead(qty decimal.Decimal) decimal.Decimal {
	head := l.head.order
	filled := decimal.Min(qty, head.Remaining)
	head.Remaining = head.Remaining.Sub(filled)
	l.volume = l.volume.Sub(filled)
	return filled
}

// remove unlinks an arbitrary node (used by cancel) and subtracts its
// order's remaining quantity from the cached volume.
func (l *PriceLevel) remove(n *node) {
	l.volume = l.volume.Sub(n.order.Remaining)
	l.unlink(n)
}

func (l *PriceLevel) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.count--
}

func (l *PriceLevel) empty() bool {
	return l.count == 0
}
