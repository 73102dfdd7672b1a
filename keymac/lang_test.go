package keymac

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tasten/chart"
)

func TestGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.keymac")
	defer teardown()
	//
	g := Grammar()
	if g == nil {
		t.Fatalf("no grammar for the macro language")
	}
	if g.Start().Name != "Script" {
		t.Errorf("expected start symbol Script, got %v", g.Start())
	}
	if Grammar() != g {
		t.Errorf("expected the grammar to be a shared singleton")
	}
}

var validMacros = []string{
	"keyboard.press('w')",
	"keyboard.release('space')",
	"keyboard.tap('enter')",
	"time.sleep(1)",
	`print("w a s d")`,
	"repeat 3 : ( keyboard.tap('w') time.sleep(1) )",
	"keyboard.press('w') time.sleep(2) keyboard.release('w')",
	"repeat 2 : ( repeat 2 : ( keyboard.tap('up') ) )",
}

func TestLanguageAccepts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.keymac")
	defer teardown()
	//
	g := Grammar()
	for n, src := range validMacros {
		tokens := Tokenize(src)
		parser := chart.NewParser(g)
		accept, err := parser.Parse(tokens)
		if err != nil {
			t.Error(err)
		}
		if !accept {
			t.Errorf("Valid macro #%d not accepted: %s", n+1, src)
		}
		if v := chart.Validate(parser.Chart(), g, tokens); v != 0 {
			t.Errorf("Valid macro #%d has %d violations: %s", n+1, v, src)
		}
	}
}

var invalidMacros = []string{
	"keyboard.push('w')",         // unknown method
	"keyboard.press(w)",          // missing quotes
	"keyboard.press('!')",        // not a key
	"time.sleep(250)",            // not a single digit
	"print(w a s)",               // missing quotes
	"repeat : ( time.sleep(1) )", // missing count
	"keyboard.press('w'",         // unbalanced parenthesis
	"",                           // empty script
}

func TestLanguageRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.keymac")
	defer teardown()
	//
	g := Grammar()
	for n, src := range invalidMacros {
		tokens := Tokenize(src)
		parser := chart.NewParser(g)
		accept, err := parser.Parse(tokens)
		if err != nil {
			t.Error(err)
		}
		if accept {
			t.Errorf("Invalid macro #%d accepted: %s", n+1, src)
		}
		if v := chart.Validate(parser.Chart(), g, tokens); v == 0 {
			t.Errorf("Invalid macro #%d validates with 0 violations: %s", n+1, src)
		}
	}
}
