package chart

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// --- Chart ------------------------------------------------------------------

// Chart is the working storage of one parse: a sequence of columns, one per
// input position, plus a flat index of all items by id. Column k holds
// exactly the items whose span ends at k, in discovery order, with duplicates
// suppressed.
//
// The chart never shrinks. Items are appended, never removed or mutated in
// place, which is what allows the recognizer to iterate a column while still
// appending to it.
type Chart struct {
	cols  []*column
	items []Item // all inserted items, indexed by id
}

// A column is an insertion-ordered set: the list keeps discovery order, the
// digest set backs the membership test.
type column struct {
	list *arraylist.List
	seen map[string]struct{}
}

// NewChart creates an empty chart for an input of tokenCount tokens, i.e.
// with tokenCount+1 columns.
func NewChart(tokenCount int) *Chart {
	if tokenCount < 0 {
		tokenCount = 0
	}
	c := &Chart{cols: make([]*column, tokenCount+1)}
	for k := range c.cols {
		c.cols[k] = &column{
			list: arraylist.New(),
			seen: make(map[string]struct{}),
		}
	}
	return c
}

// Enqueue inserts an item into column k, unless an equal item is already
// present there. Item equality is judged by label, production value, dot and
// span; id, provenance and producer kind do not participate. A duplicate is
// discarded and the chart is left untouched.
//
// Ids are handed out lazily: only an item surviving deduplication draws the
// next id, so the id sequence stays dense and free of rollbacks. Enqueue
// returns the item as stored and whether insertion occurred.
//
// Enqueueing into a column that does not exist is a programming error; the
// recognizer's loop bounds prevent it.
func (c *Chart) Enqueue(it Item, k uint64) (Item, bool) {
	col := c.cols[k]
	d := it.digest()
	if _, dup := col.seen[d]; dup {
		return it, false
	}
	it.id = uint64(len(c.items))
	col.seen[d] = struct{}{}
	col.list.Add(it)
	c.items = append(c.items, it)
	return it, true
}

// ColumnCount returns the number of columns, which is token count + 1 for a
// regularly built chart.
func (c *Chart) ColumnCount() int {
	return len(c.cols)
}

// ColumnSize returns the current number of items in column k. The size may
// grow while the column is being processed.
func (c *Chart) ColumnSize(k uint64) int {
	if k >= uint64(len(c.cols)) {
		return 0
	}
	return c.cols[k].list.Size()
}

// ItemAt returns the i-th item of column k, in discovery order.
func (c *Chart) ItemAt(k uint64, i int) (Item, bool) {
	if k >= uint64(len(c.cols)) {
		return Item{}, false
	}
	if v, ok := c.cols[k].list.Get(i); ok {
		return v.(Item), true
	}
	return Item{}, false
}

// Item returns the item with a given id.
func (c *Chart) Item(id uint64) (Item, bool) {
	if id >= uint64(len(c.items)) {
		return Item{}, false
	}
	return c.items[id], true
}

// ItemCount returns the total number of items inserted into the chart. Ids
// are dense, so this equals the id the next inserted item would draw.
func (c *Chart) ItemCount() int {
	return len(c.items)
}
