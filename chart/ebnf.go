package chart

import (
	"fmt"
	"io"
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// FromEBNF builds a grammar from an EBNF source. The EBNF dialect is the one
// of golang.org/x/exp/ebnf: productions are terminated by a dot, literals are
// Go strings, and a production name starting with a lower-case letter denotes
// a lexical production. Lexical productions must enumerate literal tokens and
// become terminals with the enumerated tokens as their accepted literal set;
// all other productions become non-terminal rules. Quoted tokens appearing
// inside a non-terminal rule are auto-declared single-literal terminals.
//
// Example:
//
//    Greeting = word "!" .
//    word     = "hello" | "hi" .
//
// Only the plain BNF subset is supported: options [...], groups (...),
// repetitions {...} and ranges a…b are rejected. The source is verified with
// ebnf.Verify before conversion, which reports undefined names and
// productions unreachable from start.
func FromEBNF(name string, start string, src io.Reader) (*Grammar, error) {
	grammar, err := ebnf.Parse(name, src)
	if err != nil {
		return nil, fmt.Errorf("cannot parse EBNF source %q: %w", name, err)
	}
	if err := ebnf.Verify(grammar, start); err != nil {
		return nil, fmt.Errorf("EBNF source %q does not verify: %w", name, err)
	}
	b := NewGrammarBuilder(name)
	b.Start(start)
	// map iteration order is random; sort names for stable rule serials
	names := make([]string, 0, len(grammar))
	for prodname := range grammar {
		names = append(names, prodname)
	}
	sort.Strings(names)
	sort.SliceStable(names, func(i, j int) bool { // start symbol's rules first
		return names[i] == start && names[j] != start
	})
	for _, prodname := range names {
		prod := grammar[prodname]
		if isLexical(prodname) {
			if err := terminalFromEBNF(b, prod); err != nil {
				return nil, err
			}
			continue
		}
		if err := rulesFromEBNF(b, prod); err != nil {
			return nil, err
		}
	}
	return b.Grammar()
}

// terminalFromEBNF declares a terminal from a lexical production, e.g.
//
//    digit = "0" | "1" | "2" .
//
func terminalFromEBNF(b *GrammarBuilder, prod *ebnf.Production) error {
	name := prod.Name.String
	if prod.Expr == nil {
		b.Terminal(name) // legal, but never matches
		return nil
	}
	lits := make([]string, 0, 8)
	for _, alt := range alternativesOf(prod.Expr) {
		seq := sequenceOf(alt)
		if len(seq) != 1 {
			return fmt.Errorf("lexical production %q must enumerate single tokens", name)
		}
		token, ok := seq[0].(*ebnf.Token)
		if !ok {
			return fmt.Errorf("lexical production %q must enumerate literal tokens", name)
		}
		lits = append(lits, token.String)
	}
	b.Terminal(name, lits...)
	return nil
}

// rulesFromEBNF adds one rule per alternative of a non-terminal production.
func rulesFromEBNF(b *GrammarBuilder, prod *ebnf.Production) error {
	name := prod.Name.String
	if prod.Expr == nil {
		return fmt.Errorf("production %q is empty; empty productions are not supported", name)
	}
	for _, alt := range alternativesOf(prod.Expr) {
		rb := b.LHS(name)
		for _, expr := range sequenceOf(alt) {
			switch x := expr.(type) {
			case *ebnf.Name:
				if isLexical(x.String) {
					rb.T(x.String)
				} else {
					rb.N(x.String)
				}
			case *ebnf.Token:
				rb.T(x.String)
			default:
				return fmt.Errorf("production %q uses an unsupported EBNF construct (%T)", name, expr)
			}
		}
		rb.End()
	}
	return nil
}

// --- Helpers ----------------------------------------------------------------

// alternativesOf flattens an expression into its top-level alternatives.
func alternativesOf(expr ebnf.Expression) []ebnf.Expression {
	if alt, ok := expr.(ebnf.Alternative); ok {
		return alt
	}
	return []ebnf.Expression{expr}
}

// sequenceOf flattens an alternative into its sequence of factors.
func sequenceOf(expr ebnf.Expression) []ebnf.Expression {
	if seq, ok := expr.(ebnf.Sequence); ok {
		return seq
	}
	return []ebnf.Expression{expr}
}

// Names of lexical productions start with a lower-case letter; see the
// golang.org/x/exp/ebnf package documentation.
func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}
