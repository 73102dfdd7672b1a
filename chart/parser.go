package chart

import (
	"fmt"

	"github.com/npillmayer/tasten"
)

// --- Parser -----------------------------------------------------------------

// Parser is an Earley-style recognizer for a grammar. Create and initialize
// one with chart.NewParser(...).
//
// A parser is good for one input at a time: every call to Parse starts over
// with a fresh chart. Parsers must not be used concurrently; clients wanting
// to parse several inputs in parallel create one parser per input (the
// grammar itself is read-only and may be shared).
type Parser struct {
	g         *Grammar
	chart     *Chart
	tokens    []string
	root      *Symbol     // synthetic start wrapper, never part of the grammar
	rootProd  *Production // S' -> start symbol
	traceCols bool
}

// Option configures a parser.
type Option func(p *Parser)

// TraceColumns makes the parser dump every finished chart column to the
// tracer at debug level.
func TraceColumns(on bool) Option {
	return func(p *Parser) {
		p.traceCols = on
	}
}

// NewParser creates a parser for a given grammar.
func NewParser(g *Grammar, opts ...Option) *Parser {
	p := &Parser{g: g}
	if g != nil {
		// The root symbol wraps the start symbol in a single pseudo-rule.
		// Its label cannot collide with grammar symbols; see RootLabel.
		p.root = &Symbol{Name: RootLabel}
		p.rootProd = &Production{Serial: -1, lhs: p.root, rhs: []*Symbol{g.Start()}}
		p.root.alts = []*Production{p.rootProd}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the recognizer over a sequence of token strings and returns
// whether the input is derivable from the grammar's start symbol.
//
// Unparseable input is a regular outcome, not an error: the error return is
// reserved for misuse, i.e. a parser without a grammar. The chart built
// during the run stays available through Chart() until the next call.
func (p *Parser) Parse(tokens []string) (bool, error) {
	if p.g == nil {
		tracer().Errorf("Earley-parser not initialized")
		return false, fmt.Errorf("Earley-parser not initialized")
	}
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	tracer().Debugf("parsing %d tokens with grammar %q", len(tokens), p.g.Name)
	p.tokens = tokens
	p.chart = NewChart(len(tokens))
	seed := newItem(Seed, p.rootProd, 0, tasten.Span{0, 0}, nil)
	p.chart.Enqueue(seed, 0)
	for k := uint64(0); k <= uint64(len(tokens)); k++ {
		p.sweep(k)
		if p.traceCols {
			dumpColumn(p.chart, k)
		}
	}
	accept := p.accepted()
	tracer().Infof("parse of %d tokens done, accepted=%v, %d items in chart",
		len(tokens), accept, p.chart.ItemCount())
	return accept, nil
}

// Chart returns the chart of the most recent Parse call, or nil.
func (p *Parser) Chart() *Chart {
	return p.chart
}

// TokenAt returns the input token at position pos, or "".
func (p *Parser) TokenAt(pos uint64) string {
	if pos < uint64(len(p.tokens)) {
		return p.tokens[pos]
	}
	return ""
}

// --- The recognizer loop ----------------------------------------------------

// sweep processes column k to exhaustion. The column is an open-ended work
// queue: an index cursor walks forward over the column's current contents,
// and items appended behind the cursor during processing are visited before
// the sweep ends. Deduplication bounds the column size, so the cursor always
// catches up.
func (p *Parser) sweep(k uint64) {
	for i := 0; i < p.chart.ColumnSize(k); i++ {
		item, _ := p.chart.ItemAt(k, i)
		// exactly one action applies to every item
		switch {
		case !item.Complete() && !item.NextSymbol().IsTerminal():
			p.predict(item, k)
		case !item.Complete() && k < uint64(len(p.tokens)):
			p.scan(item, k)
		default:
			p.complete(item, k)
		}
	}
}

// predict hypothesizes expansions for the nonterminal expected next by item:
// one zero-progress item per alternative, starting at the current position.
func (p *Parser) predict(item Item, k uint64) {
	B := item.NextSymbol()
	for _, alt := range B.Alternatives() {
		pred := newItem(Predicted, alt, 0, tasten.Span{k, k}, nil)
		if stored, isnew := p.chart.Enqueue(pred, k); isnew {
			tracer().Debugf("predict  %v", stored)
		}
	}
}

// scan tries to consume the input token at position k against the terminal
// expected next by item. A match yields a complete item for the terminal in
// the next column; a mismatch is a normal dead end and yields nothing.
func (p *Parser) scan(item Item, k uint64) {
	t := item.NextSymbol()
	lexeme := p.tokens[k]
	if !t.Matches(lexeme) {
		return
	}
	if stored, isnew := p.chart.Enqueue(scannedItem(t, lexeme, k), k+1); isnew {
		tracer().Debugf("scan     %v", stored)
	}
}

// complete advances every item which has been waiting for the current item's
// label: items in the origin column which expect that label next and reach
// exactly to the current item's start. The advanced copies carry the current
// item's id in their provenance.
//
// The synthetic root is never advanced; acceptance is detected by looking for
// a complete start-symbol item instead.
//
// complete is also the fall-through for an incomplete item expecting a
// terminal in the last column. With no input left to scan, such an item is a
// dead end and produces nothing.
func (p *Parser) complete(item Item, k uint64) {
	if !item.Complete() {
		tracer().Debugf("dead end %v", item)
		return
	}
	B := item.Label()
	start := item.Span().From()
	for i := 0; i < p.chart.ColumnSize(start); i++ {
		s, _ := p.chart.ItemAt(start, i)
		if s.Complete() || s.NextSymbol() != B {
			continue
		}
		if s.Span().To() != start { // contiguity
			continue
		}
		if s.Label() == p.root {
			continue
		}
		if stored, isnew := p.chart.Enqueue(s.advanced(item), k); isnew {
			tracer().Debugf("complete %v", stored)
		}
	}
}

// accepted is true iff the final column contains a complete item for the
// start symbol covering the whole input.
func (p *Parser) accepted() bool {
	n := uint64(len(p.tokens))
	for i := 0; i < p.chart.ColumnSize(n); i++ {
		it, _ := p.chart.ItemAt(n, i)
		if it.Complete() && it.Label() == p.g.Start() && it.Span().From() == 0 {
			return true
		}
	}
	return false
}
