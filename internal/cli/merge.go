package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sgftk/sgftk/internal/merge"
	"github.com/sgftk/sgftk/internal/sgf"
)

type mergeOptions struct {
	output           string
	pretty           bool
	filenameComments bool
	branchesOnly     bool
	labels           []string // PATH=COMMENT
	ignore           []string // ID or ID=VALUE
	delimiters       []string // comment delimiter pair
}

// NewMergeCommand creates the merge command.
func NewMergeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge PRIMARY [SECONDARY...]",
		Short: "Merge SGF game records into one tree",
		Long: `Merge two or more SGF game records of the same game into one tree.

The primary (first) game's structure is left unchanged: its trunk remains
the trunk and its variations keep priority. Secondary games are folded in
left to right; lines they share with the accumulated tree are merged
property by property, divergent lines are appended as new variations.
Scalar property conflicts keep the primary's value and are recorded for
review. Inputs must hold a single game each. One path may be "-" for
standard input.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output SGF path (default "-", stdout)`)
	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "pretty-format the output SGF")
	cmd.Flags().BoolVarP(&opts.filenameComments, "filename-comments", "f", false, "use file names as default provenance comments")
	cmd.Flags().BoolVarP(&opts.branchesOnly, "comments-on-branches-only", "b", false, "label new variations only, not merged comments")
	cmd.Flags().StringArrayVar(&opts.labels, "label", nil, "provenance comment per input, as PATH=COMMENT (empty COMMENT disables)")
	cmd.Flags().StringArrayVarP(&opts.ignore, "ignore-property", "i", nil, "ignore a property on conflict, as ID (any value) or ID=VALUE")
	cmd.Flags().StringSliceVar(&opts.delimiters, "comment-delimiters", []string{"[[", "]]"}, "start and end of provenance comments")

	return cmd
}

func runMerge(rootOpts *RootOptions, opts *mergeOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
	log := rootOpts.Logger
	if len(opts.delimiters) != 2 {
		return fmt.Errorf("--comment-delimiters needs exactly a start and an end")
	}

	labels, err := parseLabels(opts.labels)
	if err != nil {
		return err
	}
	ignores := merge.DefaultIgnores()
	for _, spec := range opts.ignore {
		id, value, _ := strings.Cut(spec, "=")
		if id == "" {
			return fmt.Errorf("--ignore-property %q: missing identifier", spec)
		}
		ignores.Add(id, value)
	}

	engine := merge.NewEngine(merge.Options{
		Types:                  rootOpts.Types,
		Ignores:                ignores,
		CommentsOnBranchesOnly: opts.branchesOnly,
	})
	log.Debug("merge run", zap.String("run_id", engine.Report().RunID), zap.Int("inputs", len(args)))

	var acc *sgf.GameTree
	for i, path := range args {
		col, err := LoadCollection(path, rootOpts.Types, cmd.InOrStdin())
		if err != nil {
			return err
		}
		col.Normalize()
		game, err := merge.Single(col, path)
		if err != nil {
			return err
		}
		in := merge.Input{Tree: game, Label: opts.inputLabel(path, labels)}
		if i == 0 {
			acc = engine.Start(in)
			continue
		}
		err = engine.Accumulate(acc, in)
		if merge.IsIncompatibleRoot(err) {
			// Not the same game: skip this input, keep merging the rest.
			formatter.Errorf("skipping %q: %v\n", path, err)
			log.Warn("input skipped", zap.String("path", path), zap.Error(err))
			continue
		}
		if err != nil {
			return err
		}
		log.Debug("merged", zap.String("path", path))
	}

	report := engine.Report()
	out := render(sgf.Collection{acc}, opts.pretty)
	if err := WriteText(opts.output, out, cmd.OutOrStdout()); err != nil {
		return err
	}
	return emitReport(formatter, report, opts.output != "" && opts.output != stdio)
}

// emitReport prints the merge report: JSON format always gets the full
// report (on stdout when the SGF went to a file, stderr otherwise so the
// SGF stream stays clean); text format summarizes conflicts to stderr.
func emitReport(f *OutputFormatter, report *merge.Report, sgfWentToFile bool) error {
	if f.Format == "json" {
		if sgfWentToFile {
			return f.JSON(report)
		}
		enc := &OutputFormatter{Format: f.Format, Writer: f.ErrWriter, ErrWriter: f.ErrWriter}
		return enc.JSON(report)
	}
	for _, c := range report.Conflicts {
		f.Errorf("conflict at ply %d (%s): %s kept [%s], dropped [%s] from %s\n",
			c.Ply, c.Node, c.ID, c.Kept, c.Dropped, orUnlabeled(c.Source))
	}
	for _, b := range report.Branches {
		f.Errorf("new variation at ply %d: %s from %s\n", b.Ply, b.Head, orUnlabeled(b.Source))
	}
	return nil
}

func orUnlabeled(label string) string {
	if label == "" {
		return "unlabeled input"
	}
	return label
}

// parseLabels splits PATH=COMMENT flags into a map. An empty comment is
// kept: it explicitly disables labeling for that path.
func parseLabels(specs []string) (map[string]string, error) {
	labels := make(map[string]string, len(specs))
	for _, spec := range specs {
		path, comment, ok := strings.Cut(spec, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("--label %q: want PATH=COMMENT", spec)
		}
		if _, dup := labels[path]; dup {
			return nil, fmt.Errorf("--label %q: only one label per input path", spec)
		}
		labels[path] = comment
	}
	return labels, nil
}

// inputLabel resolves the provenance label for one input path: an explicit
// --label wins (empty disables), then --filename-comments derives one from
// the file name, otherwise the input is unlabeled.
func (o *mergeOptions) inputLabel(path string, labels map[string]string) string {
	if comment, ok := labels[path]; ok {
		if comment == "" {
			return ""
		}
		return o.delimiters[0] + comment + o.delimiters[1]
	}
	if o.filenameComments && path != stdio && path != "" {
		return o.delimiters[0] + filepath.Base(path) + o.delimiters[1]
	}
	return ""
}
