package keymac

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", ":", ".", "'", "\""}

// padding surrounds every literal with blanks, so that a whitespace split
// isolates it.
var padding *strings.Replacer

func init() {
	pairs := make([]string, 0, 2*len(literals))
	for _, lit := range literals {
		pairs = append(pairs, lit, " "+lit+" ")
	}
	padding = strings.NewReplacer(pairs...)
}

// Tokenize splits a macro source into its tokens: the literal characters
// become tokens of their own, everything else splits on whitespace. Tokenize
// is total, any input yields a token sequence; source errors surface later,
// when the parse rejects the sequence.
func Tokenize(src string) []string {
	return strings.Fields(padding.Replace(src))
}

// --- Comment-aware scanning -------------------------------------------------

var lexOnce sync.Once // monitors one-time DFA compilation
var lexer *lexmachine.Lexer
var lexerErr error

func initLexer() {
	lexOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`#[^\n]*\n?`), skip) // skip comments
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`[a-z]+`), lexeme)
		lexer.Add([]byte(`[0-9]+`), lexeme)
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lexer.Add([]byte(r), lexeme)
		}
		lexerErr = lexer.Compile()
	})
}

// ScanTokens produces the same token sequence as Tokenize, but skips
// '#'-comments and reports characters outside the language's alphabet as an
// error instead of passing them through.
func ScanTokens(src string) ([]string, error) {
	initLexer()
	if lexerErr != nil {
		return nil, fmt.Errorf("cannot initialize macro scanner: %w", lexerErr)
	}
	s, err := lexer.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var tokens []string
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				tracer().Errorf("scanner error: %v", ui)
				return nil, fmt.Errorf("unrecognized input at line %d, column %d",
					ui.StartLine, ui.StartColumn)
			}
			return nil, err
		}
		tokens = append(tokens, tok.(string))
	}
	return tokens, nil
}

// skip is a scanner action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// lexeme is a scanner action which passes the scanned match through as a
// plain string.
func lexeme(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return string(m.Bytes), nil
}
