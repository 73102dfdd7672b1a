package main

import (
	"github.com/npillmayer/tasten/keymac"
	"github.com/spf13/cobra"
)

var runFlags = struct {
	dryRun *bool
	rewind *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "run [macro file path]",
		Short:   "Check a macro script, then play it",
		Example: `  tasten run move.mac --rewind`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRun,
	}
	runFlags.dryRun = cmd.Flags().Bool("dry-run", false, "trace ops instead of playing them")
	runFlags.rewind = cmd.Flags().Bool("rewind", false, "play the mirrored reverse of the macro")
	rootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}
	prog, err := keymac.CompileScanned(src)
	if err != nil {
		return err
	}
	if *runFlags.rewind {
		prog = prog.Rewind()
	}
	var driver keymac.Driver = keymac.TermDriver{}
	if *runFlags.dryRun {
		driver = keymac.TraceDriver{}
	}
	return prog.Run(driver)
}
