package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/npillmayer/tasten/chart"
	"github.com/npillmayer/tasten/keymac"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check [macro file path]",
		Short:   "Check a macro script against the language's grammar",
		Example: `  cat move.mac | tasten check`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}
	tokens, err := keymac.ScanTokens(src)
	if err != nil {
		return err
	}
	g := keymac.Grammar()
	parser := chart.NewParser(g)
	if _, err := parser.Parse(tokens); err != nil {
		return err
	}
	if n := chart.Validate(parser.Chart(), g, tokens); n > 0 {
		return fmt.Errorf("invalid macro: %d violation(s)", n)
	}
	pterm.Info.Println(pterm.Sprintf("macro is valid, %d tokens", len(tokens)))
	return nil
}

// readSource reads a macro script from the file named by args, or from
// stdin if no file is given.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := ioutil.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := ioutil.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("cannot read macro file: %w", err)
	}
	return string(data), nil
}
