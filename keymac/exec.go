package keymac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/tasten"
	"github.com/npillmayer/tasten/chart"
)

// ErrInvalidSyntax flags a macro source which the language's grammar does
// not derive. It is a property of the source, not of the system; callers
// usually show it to the user and carry on.
var ErrInvalidSyntax = errors.New("macro does not follow the language")

//go:generate stringer -type=OpKind -linecomment

// OpKind is the discriminator of macro ops.
type OpKind int

const (
	OpPress   OpKind = iota // press
	OpRelease               // release
	OpSleep                 // sleep
	OpPrint                 // print
)

// Op is one step of a compiled macro.
type Op struct {
	Kind  OpKind
	Arg   string        // key for press/release, phrase for print
	Pause time.Duration // sleep amount
}

func (op Op) String() string {
	switch op.Kind {
	case OpSleep:
		return fmt.Sprintf("sleep %v", op.Pause)
	case OpPrint:
		return fmt.Sprintf("print %q", op.Arg)
	}
	return fmt.Sprintf("%s '%s'", op.Kind, op.Arg)
}

// Driver is the sink of macro playback. Implementations turn ops into
// effects: terminal output, trace entries, or test records.
type Driver interface {
	Press(key string) error
	Release(key string) error
	Sleep(d time.Duration) error
	Print(text string) error
}

// --- Programs ---------------------------------------------------------------

// Program is a compiled macro: a flat sequence of ops, with statement
// structure such as repeat blocks already expanded.
type Program struct {
	ops []Op
}

// Ops returns the program's ops in playback order. Callers must not modify
// the returned slice.
func (p *Program) Ops() []Op {
	return p.ops
}

// Run plays the program against a driver, op by op. The first driver error
// stops the playback.
func (p *Program) Run(d Driver) error {
	for _, op := range p.ops {
		var err error
		switch op.Kind {
		case OpPress:
			err = d.Press(op.Arg)
		case OpRelease:
			err = d.Release(op.Arg)
		case OpSleep:
			err = d.Sleep(op.Pause)
		case OpPrint:
			err = d.Print(op.Arg)
		}
		if err != nil {
			return fmt.Errorf("macro playback failed at %v: %w", op, err)
		}
	}
	return nil
}

// Rewind returns the program which steps this program's movements backwards:
// ops play in reverse order, presses become releases and vice versa, and
// every key is mirrored to its directional counterpart, so that a macro
// walking a character somewhere walks it back home. Print phrases are
// mirrored the same way.
func (p *Program) Rewind() *Program {
	ops := make([]Op, 0, len(p.ops))
	for i := len(p.ops) - 1; i >= 0; i-- {
		op := p.ops[i]
		switch op.Kind {
		case OpPress:
			op.Kind = OpRelease
			op.Arg = MirrorKey(op.Arg)
		case OpRelease:
			op.Kind = OpPress
			op.Arg = MirrorKey(op.Arg)
		case OpPrint:
			op.Arg = mirrorPhrase(op.Arg)
		}
		ops = append(ops, op)
	}
	return &Program{ops: ops}
}

// --- Compiling --------------------------------------------------------------

// Compile turns a macro source into a runnable program. The source is
// tokenized, parsed against the language's grammar, and checked: only a
// chart passing validation with zero violations is compiled. A source the
// language does not derive returns an error wrapping ErrInvalidSyntax.
func Compile(src string) (*Program, error) {
	return compile(Tokenize(src))
}

// CompileScanned is Compile with the comment-aware scanner in front: '#'
// comments are dropped, characters outside the language's alphabet are
// reported as errors. Use it for macro files; Compile is for interactive
// one-liners.
func CompileScanned(src string) (*Program, error) {
	tokens, err := ScanTokens(src)
	if err != nil {
		return nil, err
	}
	return compile(tokens)
}

func compile(tokens []string) (*Program, error) {
	g := Grammar()
	parser := chart.NewParser(g)
	accept, err := parser.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("macro parse failed: %w", err)
	}
	tracer().Debugf("macro parse of %d tokens, accepted=%v", len(tokens), accept)
	if n := chart.Validate(parser.Chart(), g, tokens); n > 0 {
		return nil, fmt.Errorf("%w: %d violation(s)", ErrInvalidSyntax, n)
	}
	return Assemble(parser)
}

// Assemble builds the program from a parser's most recent, accepted parse.
// Callers which drive the parser themselves, e.g. to keep the chart around
// for inspection, use Assemble directly; everyone else goes through Compile.
func Assemble(parser *chart.Parser) (*Program, error) {
	root := parser.WalkDerivation(newProgBuilder())
	if root == nil {
		return nil, fmt.Errorf("macro has no derivation to compile")
	}
	ops, ok := root.Value.([]Op)
	if !ok {
		return nil, fmt.Errorf("macro derivation did not compile to ops")
	}
	tracer().Infof("macro compiled to %d ops", len(ops))
	return &Program{ops: ops}, nil
}

// --- Derivation listener ----------------------------------------------------

// progBuilder compiles a derivation bottom-up into op slices. Every node
// value is either a lexeme (terminals), a key list (phrases) or an op slice
// (statements and scripts).
type progBuilder struct {
	dispatch map[string]func(children []*chart.RuleNode) interface{}
}

func newProgBuilder() *progBuilder {
	b := &progBuilder{}
	b.dispatch = map[string]func(children []*chart.RuleNode) interface{}{
		"Script":    b.reduceScript,
		"KeyCall":   b.reduceKeyCall,
		"WaitCall":  b.reduceWaitCall,
		"PrintCall": b.reducePrintCall,
		"Repeat":    b.reduceRepeat,
		"Phrase":    b.reducePhrase,
	}
	return b
}

func (b *progBuilder) Reduce(lhs *chart.Symbol, prod *chart.Production, children []*chart.RuleNode,
	extent tasten.Span, level int) interface{} {
	//
	if r, ok := b.dispatch[lhs.Name]; ok {
		return r(children)
	}
	return children[0].Value // Stmt passes its statement through
}

func (b *progBuilder) Terminal(sym *chart.Symbol, lexeme string, extent tasten.Span,
	level int) interface{} {
	//
	return lexeme
}

// Script = Stmt | Stmt Script
func (b *progBuilder) reduceScript(children []*chart.RuleNode) interface{} {
	ops := children[0].Value.([]Op)
	if len(children) > 1 {
		ops = append(ops, children[1].Value.([]Op)...)
	}
	return ops
}

// KeyCall = "keyboard" "." method "(" quote key quote ")"
func (b *progBuilder) reduceKeyCall(children []*chart.RuleNode) interface{} {
	method := children[2].Value.(string)
	key := children[5].Value.(string)
	switch method {
	case "press":
		return []Op{{Kind: OpPress, Arg: key}}
	case "release":
		return []Op{{Kind: OpRelease, Arg: key}}
	}
	return []Op{{Kind: OpPress, Arg: key}, {Kind: OpRelease, Arg: key}} // tap
}

// WaitCall = "time" "." "sleep" "(" digit ")"
func (b *progBuilder) reduceWaitCall(children []*chart.RuleNode) interface{} {
	seconds, _ := strconv.Atoi(children[4].Value.(string))
	return []Op{{Kind: OpSleep, Pause: time.Duration(seconds) * time.Second}}
}

// PrintCall = "print" "(" dquote Phrase dquote ")"
func (b *progBuilder) reducePrintCall(children []*chart.RuleNode) interface{} {
	keys := children[3].Value.([]string)
	return []Op{{Kind: OpPrint, Arg: strings.Join(keys, " ")}}
}

// Repeat = "repeat" digit ":" "(" Script ")"
func (b *progBuilder) reduceRepeat(children []*chart.RuleNode) interface{} {
	count, _ := strconv.Atoi(children[1].Value.(string))
	body := children[4].Value.([]Op)
	ops := make([]Op, 0, count*len(body))
	for i := 0; i < count; i++ {
		ops = append(ops, body...)
	}
	return ops
}

// Phrase = key | key Phrase
func (b *progBuilder) reducePhrase(children []*chart.RuleNode) interface{} {
	keys := []string{children[0].Value.(string)}
	if len(children) > 1 {
		keys = append(keys, children[1].Value.([]string)...)
	}
	return keys
}

// --- Key mirroring ----------------------------------------------------------

var mirror = map[string]string{
	"a": "d", "d": "a", "w": "s", "s": "w",
	"left": "right", "right": "left", "up": "down", "down": "up",
}

// MirrorKey returns the directional counterpart of a key: a↔d, w↔s,
// left↔right, up↔down. A key without a counterpart mirrors to itself.
func MirrorKey(key string) string {
	if m, ok := mirror[key]; ok {
		return m
	}
	return key
}

// mirrorPhrase reverses a phrase of keys and mirrors each key, matching what
// Rewind does to key ops.
func mirrorPhrase(phrase string) string {
	keys := strings.Fields(phrase)
	mirrored := make([]string, len(keys))
	for i, key := range keys {
		mirrored[len(keys)-1-i] = MirrorKey(key)
	}
	return strings.Join(mirrored, " ")
}
