package chart

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

//    S -> A A
//    A -> 'a'
//
func makePairGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Pairs")
	b.LHS("S").N("A").N("A").End()
	b.LHS("A").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestValidateAccepted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	g := makePairGrammar(t)
	parser := NewParser(g)
	tokens := strings.Fields("a a")
	accept, err := parser.Parse(tokens)
	if err != nil {
		t.Error(err)
	}
	if !accept {
		t.Errorf("Valid input string not accepted: 'a a'")
	}
	c := parser.Chart()
	if c.ColumnCount() != 3 {
		t.Errorf("expected 3 columns, got %d", c.ColumnCount())
	}
	found := false
	for i := 0; i < c.ColumnSize(2); i++ {
		item, _ := c.ItemAt(2, i)
		if item.Complete() && item.Label().Name == "S" &&
			item.Span().From() == 0 && item.Span().To() == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("final column misses a complete S item spanning [0,2]")
	}
	if n := Validate(c, g, tokens); n != 0 {
		t.Errorf("expected 0 violations, got %d", n)
	}
}

func TestValidateRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	// Half a pair: the chart length is fine, but no complete S item exists.
	g := makePairGrammar(t)
	parser := NewParser(g)
	tokens := strings.Fields("a")
	accept, err := parser.Parse(tokens)
	if err != nil {
		t.Error(err)
	}
	if accept {
		t.Errorf("Invalid input string accepted: 'a'")
	}
	if n := Validate(parser.Chart(), g, tokens); n != 1 {
		t.Errorf("expected exactly 1 violation, got %d", n)
	}
}

func TestValidateTruncatedChart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	// A chart with 2 columns confronted with 3 tokens fails the length check
	// and cannot contain an accepting item either.
	g := makePairGrammar(t)
	c := NewChart(1)
	tokens := strings.Fields("a a a")
	if n := Validate(c, g, tokens); n != 2 {
		t.Errorf("expected 2 violations, got %d", n)
	}
}

func TestValidateNoChart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	g := makePairGrammar(t)
	if n := Validate(nil, g, strings.Fields("a a")); n != 2 {
		t.Errorf("expected 2 violations for a missing chart, got %d", n)
	}
}
