package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rootsig/internal/diag"
	"rootsig/internal/diagfmt"
	"rootsig/internal/driver"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] <file.toml|directory>",
	Short: "Validate register bindings of root signature files",
	Long:  `Validate checks every descriptor-table clause for overlapping register assignments within its register kind and space`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	validateCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	validateCmd.Flags().Bool("no-notes", false, "omit diagnostic notes from output")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noNotes, err := cmd.Flags().GetBool("no-notes")
	if err != nil {
		return fmt.Errorf("failed to get no-notes flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxDiagnostics)
	if info.IsDir() {
		results, err := driver.ValidateDir(cmd.Context(), path, maxDiagnostics, jobs)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		for i := range results {
			bag.Merge(results[i].Bag)
		}
	} else {
		result, err := driver.ValidateFile(path, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		bag.Merge(result.Bag)
	}
	bag.Sort()

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, bag, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stdout),
			ShowNotes: !noNotes,
		})
	case "json":
		if err := diagfmt.JSON(os.Stdout, bag, diagfmt.JSONOpts{IncludeNotes: !noNotes}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}
