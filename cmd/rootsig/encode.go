package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rootsig/internal/diagfmt"
	"rootsig/internal/driver"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] <file.toml>",
	Short: "Encode a root signature into a serialized metadata tree",
	Long:  `Encode validates a root signature file and serializes its nested metadata tree; conflicting signatures are rejected`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().String("format", "msgpack", "output format (msgpack|text)")
	encodeCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.ValidateFile(path, maxDiagnostics)
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		diagfmt.Pretty(os.Stderr, result.Bag, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
		return fmt.Errorf("%s: refusing to encode a conflicting root signature", path)
	}

	var encoded []byte
	switch format {
	case "msgpack":
		encoded, err = driver.EncodeMsgpack(result.Sig)
	case "text":
		var text string
		text, err = driver.EncodeText(result.Sig)
		encoded = []byte(text)
	default:
		return fmt.Errorf("unsupported format %q (must be msgpack or text)", format)
	}
	if err != nil {
		return fmt.Errorf("encoding failed: %w", err)
	}

	if output == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(output, encoded, 0o644)
}
