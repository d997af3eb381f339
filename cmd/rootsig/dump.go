package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rootsig/internal/rootsig"
	"rootsig/internal/sigfile"
	"rootsig/internal/ui"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file.toml>",
	Short: "Print the declaration elements of a root signature file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	sig, err := sigfile.Load(args[0])
	if err != nil {
		return err
	}

	if useColor(cmd, os.Stdout) {
		fmt.Println(ui.RenderSignature(sig.Name, sig.Elements))
		return nil
	}
	rootsig.DumpRootElements(os.Stdout, sig.Elements)
	fmt.Println()
	return nil
}
