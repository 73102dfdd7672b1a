/*
Package chart implements an Earley-style chart parser.

The parser is a recognizer for context-free grammars, including ambiguous and
left-recursive ones. It is intended for small to moderate grammars, e.g. for
configuration input or small domain-specific languages, where the flexibility
of Earley's algorithm outweighs its overhead. Clients construct a grammar
on-the-fly, without a code-generation or compile step, and may throw a parser
at any token sequence a couple of lines later.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add rules,
consisting of non-terminal symbols and terminals. Terminals carry a set of
literal token values they accept.

Example:

    b := chart.NewGrammarBuilder("Expressions")
    b.Terminal("number", "1", "2", "3")             // number -> '1' | '2' | '3'
    b.LHS("Sum").N("Sum").T("+").N("Product").End() // Sum    -> Sum + Product
    b.LHS("Sum").N("Product").End()                 // Sum    -> Product
    b.LHS("Product").T("number").End()              // Product-> number
    g, err := b.Grammar()

Referencing an undeclared terminal auto-declares it with its name as the sole
accepted literal, which is handy for punctuation and keywords. Referencing an
undeclared non-terminal is a configuration error, reported by b.Grammar()
before any parsing takes place. Alternatively, grammars may be read from an
EBNF source with FromEBNF.

Recognizing Input

A parser consumes a sequence of token strings, produced by whatever tokenizer
the client employs:

    p := chart.NewParser(g)
    accepted, err := p.Parse(strings.Fields("1 + 2"))

Parsing fills a chart: one column per input position, each column holding the
partial derivations discovered so far. The chart may be inspected afterwards,
validated with Validate, or walked with WalkDerivation to reconstruct a
derivation from the recorded provenance.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tasten.chart'.
func tracer() tracing.Trace {
	return tracing.Select("tasten.chart")
}
