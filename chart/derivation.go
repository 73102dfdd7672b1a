package chart

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/tasten"
)

// --- Derivation listener ----------------------------------------------------

// Listener is a type for walking a derivation recorded in the chart.
type Listener interface {
	Reduce(sym *Symbol, prod *Production, rhs []*RuleNode, span tasten.Span, level int) interface{}
	Terminal(sym *Symbol, lexeme string, span tasten.Span, level int) interface{}
}

// RuleNode represents a node occuring during a derivation walk.
type RuleNode struct {
	sym    *Symbol
	Extent tasten.Span // span of input symbols this rule covers
	Value  interface{} // user defined value
}

// Symbol returns the grammar symbol a RuleNode refers to.
// It is either a terminal or the LHS of a reduced rule.
func (rnode *RuleNode) Symbol() *Symbol {
	return rnode.sym
}

// --- Derivation walker ------------------------------------------------------

// WalkDerivation walks one derivation of the most recent parse, using the
// provenance recorded in the chart's items. The listener gets called for
// every terminal and for every non-terminal reduction, bottom-up.
//
// A complete item's provenance holds, in RHS order, the id of the item which
// recognized each RHS symbol, so the walk is a direct descent along the
// back-pointers; no searching is involved. In an ambiguous parse the chart
// keeps the provenance of the first derivation discovered, and that is the
// one reported.
//
// WalkDerivation returns nil if the last parse did not accept its input.
func (p *Parser) WalkDerivation(listener Listener) *RuleNode {
	if p.chart == nil {
		return nil
	}
	tracer().Debugf("=== Walk ===============================")
	n := uint64(len(p.tokens))
	var root *RuleNode
	for i := 0; i < p.chart.ColumnSize(n); i++ {
		item, _ := p.chart.ItemAt(n, i)
		if item.Complete() && item.Label() == p.g.Start() && item.Span().From() == 0 {
			root = p.walk(item, listener, 0)
			break
		}
	}
	if root == nil {
		tracer().Infof("no derivation to walk")
	}
	tracer().Debugf("========================================")
	return root
}

// walk descends along the provenance of item. Terminal items become leaves,
// everything else reduces after its children have been walked.
func (p *Parser) walk(item Item, listener Listener, level int) *RuleNode {
	rhs := item.Production().RHS()
	links := item.Links()
	if len(links) != len(rhs) {
		if stuck(fmt.Sprintf("provenance of %v has %d entries for %d RHS symbols", item, len(links), len(rhs))) {
			return nil
		}
	}
	ruleNodes := make([]*RuleNode, len(rhs))
	for i, id := range links {
		child, ok := p.chart.Item(id)
		if !ok || id >= item.ID() { // children are always discovered first
			if stuck(fmt.Sprintf("provenance of %v names invalid item #%d", item, id)) {
				return nil
			}
		}
		if child.Label() != rhs[i] {
			if stuck(fmt.Sprintf("item #%d does not recognize %s", id, rhs[i])) {
				return nil
			}
		}
		if child.Label().IsTerminal() {
			lexeme := child.Production().RHS()[0].Name
			tracer().Debugf("Tree node    %d: %s", child.Span().From(), lexeme)
			value := listener.Terminal(child.Label(), lexeme, child.Span(), level+1)
			ruleNodes[i] = &RuleNode{
				sym:    child.Label(),
				Extent: child.Span(),
				Value:  value,
			}
			continue
		}
		ruleNodes[i] = p.walk(child, listener, level+1)
	}
	value := listener.Reduce(item.Label(), item.Production(), ruleNodes, item.Span(), level)
	tracer().Debugf("Tree node    %d|-----%s-----|%d", item.Span().From(), item.Label().Name, item.Span().To())
	return &RuleNode{
		sym:    item.Label(),
		Extent: item.Span(),
		Value:  value,
	}
}

func stuck(msg string) bool {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-walk-stuck") {
		panic(`derivation walk is stuck.

Configuration flag panic-on-walk-stuck is set to true. It is aimed at helping
to debug a parse and do a post-mortem of why the walk got stuck. However, if
this is a production environment and you did not expect this to panic, please
unset panic-on-walk-stuck to its default (false).

` + msg)
	}
	return true
}
