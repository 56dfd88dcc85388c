package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sgftk/sgftk/internal/sgf"
)

// summaryFields lists the root properties reported per game, in column
// order; "filename" is synthesized from the source path.
var summaryFields = []string{
	"DT", "RE", "PW", "WR", "PB", "BR", "KM", "HA",
	"SZ", "TM", "OT", "GN", "PC", "EV", "filename",
}

var summaryHeaders = map[string]string{
	"DT": "Date", "RE": "Result", "PW": "White", "WR": "W Rank",
	"PB": "Black", "BR": "B Rank", "KM": "Komi", "HA": "Handicap",
	"SZ": "Board Size", "TM": "Main Time", "OT": "Overtime",
	"GN": "Game Name", "PC": "Place", "EV": "Event",
	"filename": "Filename",
}

type summaryOptions struct {
	collections bool
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &summaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary PATH...",
		Short: "Summarize SGF game records",
		Long: `Read one or more SGF files (or directories of SGF files) and print a
tab-delimited table of game information, one row per game, with a header
row. The output is suitable for importing into a spreadsheet.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.collections, "collections", "c", false, "summarize every game in each file, not just the first")

	return cmd
}

func runSummary(rootOpts *RootOptions, opts *summaryOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}

	var rows []map[string]string
	for _, path := range paths {
		files, err := expandPath(path)
		if err != nil {
			return err
		}
		for _, file := range files {
			col, err := LoadCollection(file, rootOpts.Types, cmd.InOrStdin())
			if err != nil {
				formatter.Errorf("not a valid SGF file: %q (%v)\n", file, err)
				continue
			}
			games := col
			if !opts.collections {
				games = col[:1]
			}
			for _, g := range games {
				rows = append(rows, summarize(g, filepath.Base(file)))
			}
		}
	}

	if formatter.Format == "json" {
		return formatter.JSON(rows)
	}
	formatter.Textf("%s\n", headerRow())
	for _, row := range rows {
		cells := make([]string, len(summaryFields))
		for i, id := range summaryFields {
			cells[i] = row[id]
		}
		formatter.Textf("%s\n", strings.Join(cells, "\t"))
	}
	return nil
}

// expandPath resolves a directory into its files (subdirectories are
// ignored); a plain file resolves to itself.
func expandPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	return files, nil
}

// summarize extracts the summary fields from a game's root node.
func summarize(g *sgf.GameTree, filename string) map[string]string {
	row := make(map[string]string, len(summaryFields))
	for _, id := range summaryFields {
		row[id] = ""
	}
	row["filename"] = filename
	root := g.Root()
	if root == nil {
		return row
	}
	for _, id := range summaryFields {
		if p := root.Get(id); p != nil {
			row[id] = strings.TrimSpace(p.Values[0].Raw)
		}
	}
	return row
}

func headerRow() string {
	cells := make([]string, len(summaryFields))
	for i, id := range summaryFields {
		cells[i] = summaryHeaders[id]
	}
	return strings.Join(cells, "\t")
}
