package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/sgftk/sgftk/internal/sgf"
)

type normalizeOptions struct {
	output    string
	mainOnly  bool
	uncomment bool
	nfc       bool
	pretty    bool
}

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &normalizeOptions{}

	cmd := &cobra.Command{
		Use:   "normalize [FILE]",
		Short: "Put an SGF collection into normalized form",
		Long: `Normalize an SGF file (collection of game trees).

Any game tree with exactly one variation has that variation folded into
its trunk. Optionally strip out all variations (keep the main game only),
strip all comments, or apply Unicode NFC normalization to text values.
Omit FILE or use "-" to read from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runNormalize(rootOpts, opts, path, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output SGF path (default "-", stdout)`)
	cmd.Flags().BoolVarP(&opts.mainOnly, "main", "m", false, "output the main game only, stripping all variations")
	cmd.Flags().BoolVarP(&opts.uncomment, "uncomment", "u", false, "strip all comments from the output")
	cmd.Flags().BoolVar(&opts.nfc, "nfc", false, "apply Unicode NFC normalization to text values")
	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "pretty-format the output SGF")

	return cmd
}

func runNormalize(rootOpts *RootOptions, opts *normalizeOptions, path string, cmd *cobra.Command) error {
	col, err := LoadCollection(path, rootOpts.Types, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if opts.mainOnly {
		trunks := make(sgf.Collection, len(col))
		for i, g := range col {
			trunks[i] = g.Trunk()
		}
		col = trunks
	}
	if opts.uncomment {
		col.Uncomment()
	}
	if opts.nfc {
		normalizeUnicode(col, rootOpts.Types)
	}
	col.Normalize()
	return WriteText(opts.output, render(col, opts.pretty), cmd.OutOrStdout())
}

// normalizeUnicode rewrites every text-kinded value to Unicode NFC so that
// visually identical comments compare (and merge) equal regardless of
// which composition their editor produced.
func normalizeUnicode(c sgf.Collection, types sgf.Types) {
	for _, g := range c {
		normalizeTree(g, types)
	}
}

func normalizeTree(g *sgf.GameTree, types sgf.Types) {
	for _, n := range g.Nodes {
		for _, p := range n.Properties() {
			kind := types.Lookup(p.ID).Kind
			if kind != sgf.KindText && kind != sgf.KindSimple {
				continue
			}
			for i, v := range p.Values {
				p.Values[i].Raw = norm.NFC.String(v.Raw)
			}
		}
	}
	for _, b := range g.Branches {
		normalizeTree(b, types)
	}
}
