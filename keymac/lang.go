package keymac

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/tasten/chart"
)

// The macro language, in the EBNF dialect of chart.FromEBNF. Productions
// with a lower-case name are lexical and enumerate the lexemes they accept.
// The quote characters get named productions since symbol names may not
// contain an apostrophe.
const languageEBNF = `
Script    = Stmt | Stmt Script .
Stmt      = KeyCall | WaitCall | PrintCall | Repeat .
KeyCall   = "keyboard" "." method "(" quote key quote ")" .
WaitCall  = "time" "." "sleep" "(" digit ")" .
PrintCall = "print" "(" dquote Phrase dquote ")" .
Repeat    = "repeat" digit ":" "(" Script ")" .
Phrase    = key | key Phrase .

method = "press" | "release" | "tap" .
quote  = "'" .
dquote = "\"" .
key    = "a" | "b" | "c" | "d" | "e" | "f" | "g" | "h" | "i" | "j" | "k" | "l"
       | "m" | "n" | "o" | "p" | "q" | "r" | "s" | "t" | "u" | "v" | "w" | "x"
       | "y" | "z"
       | "up" | "down" | "left" | "right" | "space" | "enter" .
digit  = "0" | "1" | "2" | "3" | "4" | "5" | "6" | "7" | "8" | "9" .
`

var grammarOnce sync.Once // monitors one-time construction
var language *chart.Grammar

// Grammar returns the grammar of the macro language. It is built once and
// shared: grammars are read-only, every caller may parse with it
// concurrently.
func Grammar() *chart.Grammar {
	grammarOnce.Do(func() {
		g, err := chart.FromEBNF("keymac", "Script", strings.NewReader(languageEBNF))
		if err != nil {
			panic(fmt.Errorf("invalid built-in macro grammar: %w", err))
		}
		language = g
	})
	return language
}
