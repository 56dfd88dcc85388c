package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sgftk/sgftk/internal/sgf"
)

// RootOptions holds global flags shared by all commands, plus the
// resources derived from them during PersistentPreRunE.
type RootOptions struct {
	Verbose       bool
	Format        string // "json" | "text"
	PropertyTypes string // optional YAML table path

	Logger *zap.Logger
	Types  sgf.Types
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sgftk CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sgftk",
		Short: "sgftk - SGF game record toolkit",
		Long:  "Parse, validate, normalize, summarize, and merge SGF game records.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			types, err := loadTypes(opts.PropertyTypes)
			if err != nil {
				return err
			}
			opts.Types = types
			opts.Logger = newLogger(opts.Verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.PropertyTypes, "property-types", "", "YAML table overriding property identifier types")

	// Add subcommands
	cmd.AddCommand(NewMergeCommand(opts))
	cmd.AddCommand(NewNormalizeCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// loadTypes builds the property type table, overlaying the YAML file on
// the defaults when one is given.
func loadTypes(path string) (sgf.Types, error) {
	if path == "" {
		return sgf.DefaultTypes(), nil
	}
	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("property types %q: %w", path, err)
	}
	defer src.Close()
	types, err := sgf.LoadTypes(src)
	if err != nil {
		return nil, fmt.Errorf("property types %q: %w", path, err)
	}
	return types, nil
}

// newLogger builds the diagnostic logger. Verbose mode logs structured
// debug output to stderr; otherwise logging is disabled so stdout stays
// clean for SGF and JSON output.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
