package chart

import (
	"bytes"
	"fmt"
)

func dumpColumn(c *Chart, k uint64) {
	tracer().Debugf("--- Column %04d -----------------------------------", k)
	for i := 0; i < c.ColumnSize(k); i++ {
		item, _ := c.ItemAt(k, i)
		tracer().Debugf("[%2d] %s", i, item)
	}
}

// String renders the whole chart, one block per column, one line per item.
func (c *Chart) String() string {
	var b bytes.Buffer
	for k := 0; k < c.ColumnCount(); k++ {
		fmt.Fprintf(&b, "=== column %d ===\n", k)
		for i := 0; i < c.ColumnSize(uint64(k)); i++ {
			item, _ := c.ItemAt(uint64(k), i)
			fmt.Fprintf(&b, "  %s\n", item)
		}
	}
	return b.String()
}
