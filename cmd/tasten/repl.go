package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/tasten/chart"
	"github.com/npillmayer/tasten/keymac"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	play *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively check and play macro lines",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
	replFlags.play = cmd.Flags().Bool("play", false, "really play macros, sleeps included (default is a trace)")
	rootCmd.AddCommand(cmd)
}

// Repl is the interactive session: one macro script per line, plus a few
// colon commands acting on the last line's parse.
type Repl struct {
	repl    *readline.Instance
	grammar *chart.Grammar
	parser  *chart.Parser   // most recent parse, backs :chart
	prog    *keymac.Program // most recent compiled macro, backs :rewind
	driver  keymac.Driver
}

func runRepl(cmd *cobra.Command, args []string) error {
	repl, err := readline.New("tasten> ")
	if err != nil {
		return err
	}
	var driver keymac.Driver = keymac.TraceDriver{}
	if *replFlags.play {
		driver = keymac.TermDriver{}
	}
	r := &Repl{
		repl:    repl,
		grammar: keymac.Grammar(),
		driver:  driver,
	}
	pterm.Info.Println("Welcome to tasten") // colored welcome message
	tracer().Infof("Quit with <ctrl>D")     // inform user how to stop the CLI
	r.loop()
	return nil
}

func (r *Repl) loop() {
	for {
		line, err := r.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := r.command(line); quit {
				break
			}
			continue
		}
		r.eval(line)
	}
	println("Good bye!")
}

// command executes a colon command. Returns true to quit the session.
func (r *Repl) command(line string) bool {
	switch line {
	case ":quit":
		return true
	case ":chart":
		if r.parser == nil {
			pterm.Error.Println("no chart yet, enter a macro line first")
			break
		}
		renderChart(r.parser.Chart())
	case ":rewind":
		if r.prog == nil {
			pterm.Error.Println("no macro to rewind, enter a macro line first")
			break
		}
		if err := r.prog.Rewind().Run(r.driver); err != nil {
			pterm.Error.Println(err.Error())
		}
	default:
		pterm.Error.Println("commands are :chart, :rewind, :quit")
	}
	return false
}

// eval checks one macro line and, if it is valid, compiles and plays it.
// The parse is kept around for :chart even when the line is invalid.
func (r *Repl) eval(line string) {
	tokens := keymac.Tokenize(line)
	parser := chart.NewParser(r.grammar)
	if _, err := parser.Parse(tokens); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	r.parser = parser
	if n := chart.Validate(parser.Chart(), r.grammar, tokens); n > 0 {
		pterm.Error.Println(pterm.Sprintf("invalid syntax (%d violations)", n))
		return
	}
	prog, err := keymac.Assemble(parser)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	r.prog = prog
	pterm.Info.Println(pterm.Sprintf("✓ %d ops", len(prog.Ops())))
	if err := prog.Run(r.driver); err != nil {
		pterm.Error.Println(err.Error())
	}
}

// renderChart draws a parser's chart as a tree on the terminal: one node
// per column, with the column's items below, in discovery order.
func renderChart(c *chart.Chart) {
	ll := pterm.LeveledList{}
	for k := uint64(0); int(k) < c.ColumnCount(); k++ {
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  pterm.Sprintf("column %d", k),
		})
		for i := 0; i < c.ColumnSize(k); i++ {
			item, _ := c.ItemAt(k, i)
			ll = append(ll, pterm.LeveledListItem{
				Level: 1,
				Text:  item.String(),
			})
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
