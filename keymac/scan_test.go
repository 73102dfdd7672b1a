package keymac

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.keymac")
	defer teardown()
	//
	inputs := []struct {
		src  string
		want string
	}{
		{"keyboard.press('w')", "keyboard . press ( ' w ' )"},
		{`print("w a s")`, `print ( " w a s " )`},
		{"repeat 2 : ( time.sleep(1) )", "repeat 2 : ( time . sleep ( 1 ) )"},
		{"  keyboard.tap( 'up' ) ", "keyboard . tap ( ' up ' )"},
	}
	for n, input := range inputs {
		tokens := Tokenize(input.src)
		if got := strings.Join(tokens, " "); got != input.want {
			t.Errorf("tokenization #%d: got %q, want %q", n+1, got, input.want)
		}
	}
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("empty source tokenized to %v", tokens)
	}
}

func TestScanAgreesWithTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.keymac")
	defer teardown()
	//
	for n, src := range validMacros {
		tokens, err := ScanTokens(src)
		if err != nil {
			t.Errorf("scan #%d failed: %v", n+1, err)
			continue
		}
		if got, want := strings.Join(tokens, " "), strings.Join(Tokenize(src), " "); got != want {
			t.Errorf("scan #%d disagrees with Tokenize: %q vs %q", n+1, got, want)
		}
	}
}

func TestScanSkipsComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.keymac")
	defer teardown()
	//
	src := "# warm up\nkeyboard.tap('w')\ntime.sleep(1) # then rest\n"
	tokens, err := ScanTokens(src)
	if err != nil {
		t.Fatal(err)
	}
	want := "keyboard . tap ( ' w ' ) time . sleep ( 1 )"
	if got := strings.Join(tokens, " "); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestScanRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tasten.keymac")
	defer teardown()
	//
	if _, err := ScanTokens("keyboard.press('@')"); err == nil {
		t.Errorf("expected scan of '@' to fail, did not")
	}
}
