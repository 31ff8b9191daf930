package book

import "github.com/tidwall/btree"

// priceIndex is an ordered map from Tick to PriceLevel for one side of the
// book. Bid and ask indexes use inverted comparators so that Min() always
// yields the "best" level for that side: highest tick for bids, lowest
// tick for asks. This mirrors the teacher engine's dual-BTreeG technique,
// generalized from a float64 price key to an int64 tick key.
type priceIndex struct {
	levels *btree.BTreeG[*PriceLevel]
}

func newBidIndex() *priceIndex {
	return &priceIndex{
		levels: btree.NewBTreeG(func(a, b *PriceLevel) bool { return a.tick > b.tick }),
	}
}

func newAskIndex() *priceIndex {
	return &priceIndex{
		levels: btree.NewBTreeG(func(a, b *PriceLevel) bool { return a.tick < b.tick }),
	}
}

// best returns the level at the best tick for this side, if any.
func (idx *priceIndex) best() (*PriceLevel, bool) {
	return idx.levels.MinMut()
}

// get returns the level at tick, if present.
func (idx *priceIndex) get(tick Tick) (*PriceLevel, bool) {
	return idx.levels.GetMut(&PriceLevel{tick: tick})
}

// getOrCreate returns the level at tick, creating and inserting an empty
// one if absent.
func (idx *priceIndex) getOrCreate(tick Tick) *PriceLevel {
	if level, ok := idx.get(tick); ok {
		return level
	}
	level := newPriceLevel(tick)
	idx.levels.Set(level)
	return level
}

// deleteIfEmpty removes level from the index when it has no resting
// orders left, preserving the no-empty-levels invariant.
func (idx *priceIndex) deleteIfEmpty(level *PriceLevel) {
	if level.empty() {
		idx.levels.Delete(level)
	}
}

func (idx *priceIndex) len() int {
	return idx.levels.Len()
}

// scan visits every level in best-to-worst order. It is unexported and
// used only by tests to check aggregate invariants; spec.md's Open
// Questions decide against exposing a public depth API.
func (idx *priceIndex) scan(iter func(*PriceLevel) bool) {
	idx.levels.Scan(iter)
}
