package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// RootLabel is the label of the synthetic start item every parse is seeded
// with. The apostrophe is reserved: no user-supplied symbol name may contain
// one, which guarantees the root can never collide with a grammar symbol.
const RootLabel = "S'"

// Configuration errors, detected during grammar construction.
var (
	// ErrUnknownSymbol flags a symbol which is referenced in some production
	// but has no grammar entry of its own.
	ErrUnknownSymbol = errors.New("symbol has no grammar entry")

	// ErrReservedName flags a symbol name containing the reserved apostrophe.
	ErrReservedName = errors.New("symbol name contains reserved character \"'\"")

	// ErrSymbolClass flags a symbol which is used both as a terminal and as a
	// non-terminal.
	ErrSymbolClass = errors.New("symbol used both as terminal and as non-terminal")
)

// --- Symbols and productions ------------------------------------------------

// Symbol is a grammar symbol. A symbol is exactly one of two things: a
// terminal with a set of accepted literal token values, or a non-terminal
// with a list of alternative productions. The classification is fixed at
// grammar construction time.
type Symbol struct {
	Name     string
	terminal bool
	literals *treeset.Set  // accepted lexemes, terminal case
	alts     []*Production // alternative productions, non-terminal case
}

// IsTerminal returns true for terminal symbols.
func (sym *Symbol) IsTerminal() bool {
	return sym.terminal
}

// Matches tells if a terminal accepts a given lexeme. A terminal with an
// empty literal set is legal and matches nothing. For non-terminals, Matches
// always returns false.
func (sym *Symbol) Matches(lexeme string) bool {
	if !sym.terminal || sym.literals == nil {
		return false
	}
	return sym.literals.Contains(lexeme)
}

// Literals returns the accepted lexemes of a terminal, in lexicographic
// order. It returns nil for non-terminals.
func (sym *Symbol) Literals() []string {
	if !sym.terminal || sym.literals == nil {
		return nil
	}
	values := sym.literals.Values()
	lits := make([]string, len(values))
	for i, v := range values {
		lits[i] = v.(string)
	}
	return lits
}

// Alternatives returns the productions a non-terminal expands to. It returns
// nil for terminals.
func (sym *Symbol) Alternatives() []*Production {
	return sym.alts
}

func (sym *Symbol) String() string {
	return sym.Name
}

// Production is a single grammar rule: a non-terminal LHS expanding to a
// non-empty sequence of symbols.
type Production struct {
	Serial int // rule number within the grammar
	lhs    *Symbol
	rhs    []*Symbol
}

// LHS returns the left-hand-side symbol of a production.
func (p *Production) LHS() *Symbol {
	return p.lhs
}

// RHS returns the right-hand-side symbols of a production. Callers must not
// modify the returned slice.
func (p *Production) RHS() []*Symbol {
	return p.rhs
}

func (p *Production) String() string {
	names := make([]string, len(p.rhs))
	for i, sym := range p.rhs {
		names[i] = sym.Name
	}
	return fmt.Sprintf("%s -> %s", p.lhs.Name, strings.Join(names, " "))
}

// --- Grammar ----------------------------------------------------------------

// Grammar is a closed set of symbols and productions. Every symbol referenced
// anywhere in the grammar is guaranteed to have an entry; this is enforced
// during construction. A grammar is immutable after construction and may be
// shared by concurrent parsers.
type Grammar struct {
	Name    string
	start   *Symbol
	symbols map[string]*Symbol
	order   []string // symbol names in declaration order
	prods   []*Production
}

// Start returns the grammar's start symbol, i.e. the LHS of the first rule.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Lookup returns the symbol for a given name. An unknown name is a
// configuration error, wrapping ErrUnknownSymbol.
func (g *Grammar) Lookup(name string) (*Symbol, error) {
	if sym, ok := g.symbols[name]; ok {
		return sym, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, name)
}

// Production returns the rule with a given serial number, or nil.
func (g *Grammar) Production(serial int) *Production {
	if serial < 0 || serial >= len(g.prods) {
		return nil
	}
	return g.prods[serial]
}

// EachSymbol calls f for every symbol of the grammar, in declaration order.
func (g *Grammar) EachSymbol(f func(sym *Symbol)) {
	for _, name := range g.order {
		f(g.symbols[name])
	}
}

// Dump logs the grammar to the tracer, one line per rule. Visible with trace
// level debug only.
func (g *Grammar) Dump() {
	tracer().Debugf("Dump of grammar %q, start symbol %q", g.Name, g.start.Name)
	for _, p := range g.prods {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	g.EachSymbol(func(sym *Symbol) {
		if sym.IsTerminal() {
			tracer().Debugf("     %s = { %s }", sym.Name, strings.Join(sym.Literals(), " "))
		}
	})
}

// --- Grammar builder --------------------------------------------------------

// GrammarBuilder is used to construct a grammar rule by rule. The first
// rule's LHS becomes the grammar's start symbol, unless overridden with
// Start. All checks for grammar closure are deferred until Grammar() is
// called.
type GrammarBuilder struct {
	name  string
	start string
	terms map[string][]string // declared terminals
	order []string            // declaration order of terminals
	rules []protoRule
}

type protoRule struct {
	lhs string
	rhs []symref
}

// A RHS entry, recorded as terminal or non-terminal reference by the builder
// methods T and N.
type symref struct {
	name     string
	terminal bool
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  name,
		terms: make(map[string][]string),
	}
}

// Terminal declares a terminal symbol together with the literal token values
// it accepts. Declaring zero literals is legal; such a terminal never
// matches. Repeated declarations extend the literal set.
func (b *GrammarBuilder) Terminal(name string, literals ...string) *GrammarBuilder {
	if _, ok := b.terms[name]; !ok {
		b.order = append(b.order, name)
	}
	b.terms[name] = append(b.terms[name], literals...)
	return b
}

// Start overrides the start symbol. Without it, the LHS of the first rule
// starts the grammar.
func (b *GrammarBuilder) Start(name string) *GrammarBuilder {
	b.start = name
	return b
}

// LHS starts a new rule, given the left-hand-side symbol of the rule.
func (b *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: name}
}

// RuleBuilder assembles the right-hand side of one rule. Completing the rule
// with End() hands it back to the grammar builder.
type RuleBuilder struct {
	b   *GrammarBuilder
	lhs string
	rhs []symref
}

// N appends a non-terminal symbol to the RHS of the rule under construction.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, symref{name: name})
	return rb
}

// T appends a terminal symbol to the RHS of the rule under construction.
// Terminals need not be declared beforehand: an undeclared terminal is
// auto-declared with its name as the single accepted literal.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, symref{name: name, terminal: true})
	return rb
}

// End completes a rule and adds it to the grammar under construction.
func (rb *RuleBuilder) End() *GrammarBuilder {
	rb.b.rules = append(rb.b.rules, protoRule{lhs: rb.lhs, rhs: rb.rhs})
	return rb.b
}

// Grammar resolves all symbol references and returns the finished grammar.
// Any of the following is a configuration error: an empty grammar, an empty
// RHS, a symbol name containing an apostrophe, a symbol used both as terminal
// and non-terminal, or a non-terminal reference without a defining rule.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(b.rules) == 0 {
		return nil, fmt.Errorf("grammar %q has no rules", b.name)
	}
	g := &Grammar{
		Name:    b.name,
		symbols: make(map[string]*Symbol),
	}
	// terminals first, in declaration order
	for _, name := range b.order {
		if err := checkName(name); err != nil {
			return nil, err
		}
		sym := &Symbol{
			Name:     name,
			terminal: true,
			literals: treeset.NewWith(utils.StringComparator),
		}
		for _, lit := range b.terms[name] {
			sym.literals.Add(lit)
		}
		g.symbols[name] = sym
		g.order = append(g.order, name)
	}
	// non-terminals: every LHS gets an entry before references are resolved
	for _, rule := range b.rules {
		if err := checkName(rule.lhs); err != nil {
			return nil, err
		}
		if _, clash := b.terms[rule.lhs]; clash {
			return nil, fmt.Errorf("%w: %q", ErrSymbolClass, rule.lhs)
		}
		if _, ok := g.symbols[rule.lhs]; !ok {
			g.symbols[rule.lhs] = &Symbol{Name: rule.lhs}
			g.order = append(g.order, rule.lhs)
		}
	}
	// resolve RHS references rule by rule
	for _, rule := range b.rules {
		if len(rule.rhs) == 0 {
			return nil, fmt.Errorf("rule for %q has an empty RHS", rule.lhs)
		}
		lhs := g.symbols[rule.lhs]
		rhs := make([]*Symbol, len(rule.rhs))
		for i, ref := range rule.rhs {
			sym, err := g.resolve(ref)
			if err != nil {
				return nil, err
			}
			rhs[i] = sym
		}
		p := &Production{Serial: len(g.prods), lhs: lhs, rhs: rhs}
		if duplicateAlternative(lhs, rhs) {
			tracer().Debugf("dropping duplicate rule %s", p)
			continue
		}
		lhs.alts = append(lhs.alts, p)
		g.prods = append(g.prods, p)
	}
	start := b.start
	if start == "" {
		start = b.rules[0].lhs
	}
	sym, ok := g.symbols[start]
	if !ok || sym.IsTerminal() {
		return nil, fmt.Errorf("%w: start symbol %q", ErrUnknownSymbol, start)
	}
	g.start = sym
	tracer().Debugf("grammar %q has %d symbols in %d rules", g.Name, len(g.symbols), len(g.prods))
	return g, nil
}

// resolve maps a recorded RHS reference to its symbol, auto-declaring
// terminals referenced by T without a Terminal declaration.
func (g *Grammar) resolve(ref symref) (*Symbol, error) {
	if err := checkName(ref.name); err != nil {
		return nil, err
	}
	sym, ok := g.symbols[ref.name]
	if ok {
		if sym.IsTerminal() != ref.terminal {
			return nil, fmt.Errorf("%w: %q", ErrSymbolClass, ref.name)
		}
		return sym, nil
	}
	if !ref.terminal {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, ref.name)
	}
	sym = &Symbol{
		Name:     ref.name,
		terminal: true,
		literals: treeset.NewWith(utils.StringComparator),
	}
	sym.literals.Add(ref.name)
	g.symbols[ref.name] = sym
	g.order = append(g.order, ref.name)
	return sym, nil
}

// --- Helpers ----------------------------------------------------------------

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownSymbol)
	}
	if strings.ContainsRune(name, '\'') {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	return nil
}

// Alternatives of a LHS are deduplicated: a second rule with an identical RHS
// would only clutter the chart.
func duplicateAlternative(lhs *Symbol, rhs []*Symbol) bool {
	for _, alt := range lhs.alts {
		if len(alt.rhs) != len(rhs) {
			continue
		}
		same := true
		for i, sym := range alt.rhs {
			if sym != rhs[i] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
