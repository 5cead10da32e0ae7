package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/render/text"
)

// conflictsCommand creates the conflicts command for version conflict reports.
func (c *CLI) conflictsCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "conflicts " + inputUse,
		Short: "Report dependencies reached in more than one version",
		Long: `Report every group:artifact reached in more than one version.

The views pick the first version reached during traversal, which is not
necessarily the highest. Conflicts where an older version won are flagged
with the highest version seen.

Examples:
  deptree conflicts deps.json
  deptree conflicts deps.json --strict   # exit 1 if an older version won`,
		Args:              inputArg,
		ValidArgsFunction: completeDumpFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			idx, err := loadIndex(ctx, args[0])
			if err != nil {
				return err
			}

			err = renderTo(ctx, c.Out, string(text.ModeConflicts), func(w io.Writer) error {
				return text.Conflicts(w, idx, text.Options{})
			})
			if err != nil {
				return err
			}

			if strict {
				for _, cf := range idx.Conflicts() {
					if cf.Downgraded() {
						return errors.New(errors.ErrCodeInvalidInput, "%s resolved to %s but %s is reachable", cf.GA, cf.Resolved, cf.Highest)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a lower version than the highest reachable one was resolved")

	return cmd
}
