package chart

import (
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// We use a small unambiguous expression grammar for testing. It is slightly
// adapted from
//
//      http://loup-vaillant.fr/tutorials/earley-parsing/recogniser
//
// This way we will be able to follow the examples there.
//
//     Sum     = Sum     '+' Product
//             | Product
//     Product = Product '*' Factor
//             | Factor
//     Factor  = '(' Sum ')'
//             | number
//
// 'number' is a terminal accepting single decimal digits.
//
func makeExprGrammar(t *testing.T) *Grammar {
	digits := make([]string, 10)
	for i := range digits {
		digits[i] = strconv.Itoa(i)
	}
	b := NewGrammarBuilder("Expressions")
	b.Terminal("number", digits...)
	b.LHS("Sum").N("Sum").T("+").N("Product").End()
	b.LHS("Sum").N("Product").End()
	b.LHS("Product").N("Product").T("*").N("Factor").End()
	b.LHS("Product").N("Factor").End()
	b.LHS("Factor").T("(").N("Sum").T(")").End()
	b.LHS("Factor").T("number").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

var inputStrings = []string{
	"1", "1 + 2", "1 * 2", "1 + 2 * 3", "1 * ( 2 + 3 )", "1 + 2 + 3 + 4", "1 * 2 + 3 * 4",
}

// --- the Tests -------------------------------------------------------------

func TestParser1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	g := makeExprGrammar(t)
	for n, input := range inputStrings {
		tracer().Infof("=== '%s' ========================", input)
		parser := NewParser(g)
		accept, err := parser.Parse(strings.Fields(input))
		if err != nil {
			t.Error(err)
		}
		if !accept {
			t.Errorf("Valid input string #%d not accepted: '%s'", n+1, input)
		}
	}
}

func TestParserRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	g := makeExprGrammar(t)
	invalid := []string{"1 +", "+", "1 2", "( 1", ")", "1 + + 2"}
	for _, input := range invalid {
		parser := NewParser(g)
		accept, err := parser.Parse(strings.Fields(input))
		if err != nil {
			t.Error(err)
		}
		if accept {
			t.Errorf("Invalid input string accepted: '%s'", input)
		}
		if n := Validate(parser.Chart(), g, strings.Fields(input)); n == 0 {
			t.Errorf("Validator found no violation for invalid input '%s'", input)
		}
	}
}

func TestParserEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	g := makeExprGrammar(t)
	parser := NewParser(g)
	accept, err := parser.Parse(nil)
	if err != nil {
		t.Error(err)
	}
	if accept {
		t.Errorf("empty input accepted, but the grammar derives no empty string")
	}
	if parser.Chart().ColumnCount() != 1 {
		t.Errorf("expected a single column for empty input, got %d", parser.Chart().ColumnCount())
	}
}

func TestParserLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	b := NewGrammarBuilder("LeftRec")
	b.LHS("S").N("S").T("a").End()
	b.LHS("S").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{1, 2, 5, 13} {
		tokens := make([]string, n)
		for i := range tokens {
			tokens[i] = "a"
		}
		parser := NewParser(g)
		accept, err := parser.Parse(tokens)
		if err != nil {
			t.Error(err)
		}
		if !accept {
			t.Errorf("left-recursive grammar did not accept %d tokens", n)
		}
	}
}

func TestParserAmbiguityNoDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	b := NewGrammarBuilder("Amb")
	b.LHS("S").N("S").N("S").End()
	b.LHS("S").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	tokens := strings.Fields("a a a a a")
	parser := NewParser(g, TraceColumns(true))
	accept, err := parser.Parse(tokens)
	if err != nil {
		t.Error(err)
	}
	if !accept {
		t.Errorf("ambiguous grammar did not accept %v", tokens)
	}
	c := parser.Chart()
	for k := uint64(0); k < uint64(c.ColumnCount()); k++ {
		seen := make(map[string]bool)
		for i := 0; i < c.ColumnSize(k); i++ {
			item, _ := c.ItemAt(k, i)
			d := item.digest()
			if seen[d] {
				t.Errorf("column %d contains duplicate item %v", k, item)
			}
			seen[d] = true
			if item.Span().To() != k {
				t.Errorf("item %v resides in column %d", item, k)
			}
		}
	}
}

func TestParserIdsAreDense(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	g := makeExprGrammar(t)
	parser := NewParser(g)
	if _, err := parser.Parse(strings.Fields("1 + 2 * 3")); err != nil {
		t.Error(err)
	}
	c := parser.Chart()
	for id := uint64(0); id < uint64(c.ItemCount()); id++ {
		item, ok := c.Item(id)
		if !ok || item.ID() != id {
			t.Errorf("id %d is not dense: %v, %v", id, item, ok)
		}
	}
}

func TestParserProducerKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	g := makeExprGrammar(t)
	parser := NewParser(g)
	tokens := strings.Fields("1 * ( 2 + 3 )")
	if _, err := parser.Parse(tokens); err != nil {
		t.Error(err)
	}
	c := parser.Chart()
	for id := uint64(0); id < uint64(c.ItemCount()); id++ {
		item, _ := c.Item(id)
		switch item.Kind() {
		case Seed:
			if id != 0 || item.Dot() != 0 {
				t.Errorf("unexpected seed item %v", item)
			}
		case Predicted:
			if item.Dot() != 0 || len(item.Links()) != 0 || item.Span().Len() != 0 {
				t.Errorf("malformed predicted item %v", item)
			}
		case Scanned:
			if !item.Complete() || !item.Label().IsTerminal() || item.Span().Len() != 1 {
				t.Errorf("malformed scanned item %v", item)
			}
		case Completed:
			if item.Dot() == 0 || len(item.Links()) != item.Dot() {
				t.Errorf("malformed advanced item %v", item)
			}
		}
	}
}

func TestParserRootNeverConsumed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	g := makeExprGrammar(t)
	for _, input := range inputStrings {
		parser := NewParser(g)
		if _, err := parser.Parse(strings.Fields(input)); err != nil {
			t.Error(err)
		}
		c := parser.Chart()
		roots := 0
		for id := uint64(0); id < uint64(c.ItemCount()); id++ {
			item, _ := c.Item(id)
			if item.Label().Name != RootLabel {
				continue
			}
			roots++
			if item.Dot() != 0 || item.Kind() != Seed {
				t.Errorf("synthetic root was advanced: %v", item)
			}
		}
		if roots != 1 {
			t.Errorf("expected exactly one root item, found %d", roots)
		}
	}
}

func TestParserSuffixNotAccepted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	// For "b a", a complete S item covering only the suffix [1,2] ends up in
	// the final column. Acceptance requires a start item anchored at 0.
	b := NewGrammarBuilder("Nested")
	b.LHS("S").T("b").N("S").T("b").End()
	b.LHS("S").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	parser := NewParser(g)
	tokens := strings.Fields("b a")
	accept, err := parser.Parse(tokens)
	if err != nil {
		t.Error(err)
	}
	if accept {
		t.Errorf("input 'b a' accepted, but S derives only 'a' and 'b…b' nestings")
	}
	c := parser.Chart()
	suffix := false
	last := uint64(len(tokens))
	for i := 0; i < c.ColumnSize(last); i++ {
		item, _ := c.ItemAt(last, i)
		if item.Complete() && item.Label() == g.Start() && item.Span().From() > 0 {
			suffix = true
		}
	}
	if !suffix {
		t.Errorf("test premise broken: no suffix-only S item in the final column")
	}
	if n := Validate(c, g, tokens); n != 1 {
		t.Errorf("expected exactly 1 violation, got %d", n)
	}
}

func TestParserNotInitialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	parser := NewParser(nil)
	if _, err := parser.Parse(strings.Fields("a")); err == nil {
		t.Errorf("expected an error from a parser without a grammar")
	}
}

func TestParserTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.chart")
	defer teardown()
	//
	g := makeExprGrammar(t)
	parser := NewParser(g, TraceColumns(true))
	tracer().SetTraceLevel(tracing.LevelDebug)
	accept, err := parser.Parse(strings.Fields("1 + 2"))
	if err != nil {
		t.Error(err)
	}
	if !accept {
		t.Errorf("Valid input string not accepted: '1 + 2'")
	}
	if s := parser.Chart().String(); !strings.Contains(s, "column 3") {
		t.Errorf("chart rendering misses final column:\n%s", s)
	}
}
