package chart

// Validate re-checks a finished chart independently of the recognizer's own
// bookkeeping. It is a pure function over the chart and the token sequence
// the chart was built from, and returns the number of violated checks; 0
// means the input is valid. Downstream consumers must treat exactly 0 as the
// sole proceed signal.
//
// Two structural checks are applied, each counting one violation on failure:
//
//  1. the chart has token count + 1 columns, i.e. it was built against an
//     input of the right length;
//  2. the chart's final column contains a complete item for the grammar's
//     start symbol spanning the entire input.
//
// Validate never panics, not even on an empty or truncated chart, and it
// never judges grammar or tokenization problems; those have to surface
// earlier.
func Validate(c *Chart, g *Grammar, tokens []string) int {
	violations := 0
	if c == nil || c.ColumnCount() == 0 {
		tracer().Debugf("validate: no chart")
		return 2
	}
	if c.ColumnCount() != len(tokens)+1 {
		tracer().Debugf("validate: %d columns for %d tokens", c.ColumnCount(), len(tokens))
		violations++
	}
	if !hasAcceptingItem(c, g, uint64(len(tokens))) {
		violations++
	}
	return violations
}

// hasAcceptingItem scans the last column of the chart for a complete
// start-symbol item spanning [0, tokenCount].
func hasAcceptingItem(c *Chart, g *Grammar, tokenCount uint64) bool {
	last := uint64(c.ColumnCount() - 1)
	for i := 0; i < c.ColumnSize(last); i++ {
		it, _ := c.ItemAt(last, i)
		if !it.Complete() || it.Label() != g.Start() {
			continue
		}
		if it.Span().From() == 0 && it.Span().To() == tokenCount {
			tracer().Debugf("validate: accepting item %v", it)
			return true
		}
	}
	return false
}
