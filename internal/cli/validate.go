package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgftk/sgftk/internal/parser"
)

// ValidationResult holds one file's parse outcome.
type ValidationResult struct {
	File     string `json:"file"`
	Valid    bool   `json:"valid"`
	Games    int    `json:"games,omitempty"`
	Code     string `json:"code,omitempty"`
	Position string `json:"position,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Parse-check SGF files",
		Long: `Parse each file and report whether it is well-formed SGF, with the
error kind and position when it is not. No output files are produced.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(rootOpts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}

	results := make([]ValidationResult, 0, len(paths))
	invalid := 0
	for _, path := range paths {
		col, err := LoadCollection(path, rootOpts.Types, cmd.InOrStdin())
		if err != nil {
			invalid++
			results = append(results, describeFailure(path, err))
			continue
		}
		results = append(results, ValidationResult{File: path, Valid: true, Games: len(col)})
	}

	if formatter.Format == "json" {
		if err := formatter.JSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				formatter.Textf("ok\t%s\t%d game(s)\n", r.File, r.Games)
			} else {
				formatter.Textf("error\t%s\t%s\n", r.File, r.Error)
			}
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d files invalid", invalid, len(paths))
	}
	return nil
}

// describeFailure maps a load error to a structured result, surfacing the
// error code and source position for lex and parse failures.
func describeFailure(path string, err error) ValidationResult {
	r := ValidationResult{File: path, Error: err.Error()}
	var le *parser.LexError
	if errors.As(err, &le) {
		r.Code = string(le.Code)
		r.Position = le.Pos.String()
		return r
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		r.Code = string(pe.Code)
		r.Position = pe.Pos.String()
	}
	return r
}
