package chart

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/tasten"
)

//go:generate stringer -type=ProducerKind -linecomment

// ProducerKind tells which of the recognizer's actions created an item. It is
// recorded for diagnostics only and carries no semantics: neither item
// identity nor any parsing decision depends on it.
type ProducerKind int

const (
	Seed      ProducerKind = iota // seed
	Predicted                     // predicted
	Scanned                       // scanned
	Completed                     // completed
)

// --- Items ------------------------------------------------------------------

// Item is an Earley item: one partial or complete recognition of a single
// production, covering a span of input positions. Items are immutable; the
// recognizer only ever derives new items from existing ones.
//
// The dot position marks how many RHS symbols have been matched so far. An
// item with the dot behind the last RHS symbol is complete.
type Item struct {
	id    uint64 // unique within one chart, assigned on insertion
	prod  *Production
	dot   int
	span  tasten.Span
	links []uint64 // ids of the items which advanced this one, in RHS order
	kind  ProducerKind
}

// newItem creates an item with a zeroed id. The chart assigns the real id if
// and when the item survives deduplication.
func newItem(kind ProducerKind, prod *Production, dot int, span tasten.Span, links []uint64) Item {
	return Item{
		prod:  prod,
		dot:   dot,
		span:  span,
		links: links,
		kind:  kind,
	}
}

// scannedItem wraps a matched lexeme into a complete item labeled with the
// matched terminal. Its production is synthesized on the fly: the terminal
// expanding to exactly the matched literal.
func scannedItem(t *Symbol, lexeme string, at uint64) Item {
	lit := &Symbol{Name: lexeme, terminal: true}
	prod := &Production{Serial: -1, lhs: t, rhs: []*Symbol{lit}}
	return newItem(Scanned, prod, 1, tasten.Span{at, at + 1}, nil)
}

// advanced derives the successor of an item after its expected symbol has
// been recognized by cause. The dot moves right by one, the span extends to
// cause's end, and cause's id is appended to the provenance.
func (it Item) advanced(cause Item) Item {
	links := make([]uint64, len(it.links), len(it.links)+1)
	copy(links, it.links)
	links = append(links, cause.id)
	span := tasten.Span{it.span.From(), cause.span.To()}
	return newItem(Completed, it.prod, it.dot+1, span, links)
}

// ID returns the item's chart-unique identifier.
func (it Item) ID() uint64 {
	return it.id
}

// Label returns the symbol this item is recognizing, i.e. the LHS of its
// production.
func (it Item) Label() *Symbol {
	return it.prod.lhs
}

// Production returns the production alternative being matched.
func (it Item) Production() *Production {
	return it.prod
}

// Dot returns the dot position within [0, len(RHS)].
func (it Item) Dot() int {
	return it.dot
}

// Span returns the input positions covered so far.
func (it Item) Span() tasten.Span {
	return it.span
}

// Links returns the provenance of the item: the ids of the items which
// justified each matched RHS symbol, in RHS order. Callers must not modify
// the returned slice.
func (it Item) Links() []uint64 {
	return it.links
}

// Kind returns the action which produced this item.
func (it Item) Kind() ProducerKind {
	return it.kind
}

// Complete is true if all RHS symbols of the item's production have been
// matched.
func (it Item) Complete() bool {
	return it.dot >= len(it.prod.rhs)
}

// NextSymbol returns the symbol immediately after the dot, or nil if the item
// is complete.
func (it Item) NextSymbol() *Symbol {
	if it.Complete() {
		return nil
	}
	return it.prod.rhs[it.dot]
}

// itemCore is the hashed identity of an item: label, production by value, dot
// and span. The id, provenance and producer kind do not participate.
type itemCore struct {
	Label string
	RHS   []string
	Dot   int
	From  uint64
	To    uint64
}

// digest returns the deduplication key for an item.
func (it Item) digest() string {
	core := itemCore{
		Label: it.prod.lhs.Name,
		RHS:   make([]string, len(it.prod.rhs)),
		Dot:   it.dot,
		From:  it.span.From(),
		To:    it.span.To(),
	}
	for i, sym := range it.prod.rhs {
		core.RHS[i] = sym.Name
	}
	return string(structhash.Sha1(core, 1))
}

// String renders an item as
//
//    <id> <label> -> <production with dot marker> [<start>,<end>] <provenance> <kind>
//
// e.g. "5 Sum -> Sum + • Product [0,2] [3 4] completed".
func (it Item) String() string {
	var rhs strings.Builder
	for i, sym := range it.prod.rhs {
		if i == it.dot {
			rhs.WriteString("• ")
		}
		rhs.WriteString(sym.Name)
		if i < len(it.prod.rhs)-1 {
			rhs.WriteString(" ")
		}
	}
	if it.dot == len(it.prod.rhs) {
		rhs.WriteString(" •")
	}
	links := it.links
	if links == nil {
		links = []uint64{}
	}
	return fmt.Sprintf("%d %s -> %s [%d,%d] %v %s", it.id, it.prod.lhs.Name, rhs.String(),
		it.span.From(), it.span.To(), links, it.kind)
}
