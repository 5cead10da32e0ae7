package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/pkg/render/text"
)

// treeCommand creates the tree command for the full dependency tree.
func (c *CLI) treeCommand() *cobra.Command {
	return c.viewCommand(text.ModeTree, "Print the full dependency tree",
		`Print the dependency tree depth-first from the project root.

Only the resolved version of each group:artifact is shown (the first one
reached). A dependency whose subtree was already printed appears once more
with a "(*)" marker and is not expanded again. --scopes and --exclude hide
a dependency together with everything below it.

Examples:
  deptree tree deps.json
  deptree tree deps.json --scopes=runtime
  deptree tree deps.json --exclude 'org.jetbrains.kotlin:*'`)
}

// listCommand creates the list command for the flat coordinate listing.
func (c *CLI) listCommand() *cobra.Command {
	return c.viewCommand(text.ModeList, "List every active dependency once, sorted",
		`List every reachable coordinate with a compile, runtime or test scope,
sorted and without duplicates. Unlike the tree views, every version of a
group:artifact reached is listed, not just the resolved one.

Examples:
  deptree list deps.json
  deptree list deps.json --scopes=compile,runtime`)
}

// prunedCommand creates the pruned command for the shallowest-depth tree.
func (c *CLI) prunedCommand() *cobra.Command {
	return c.viewCommand(text.ModePruned, "Print each dependency once, at its shallowest depth",
		`Print a tree in which every dependency appears exactly once, under the
parent through which it is reached at the shallowest depth. Scope labels are
shown when --scopes or --all-scopes is given.

Examples:
  deptree pruned deps.json
  deptree pruned deps.json --all-scopes
  deptree pruned deps.json --scopes=runtime`)
}

// viewCommand builds one of the text view commands.
func (c *CLI) viewCommand(mode text.Mode, short, long string) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   string(mode) + " " + inputUse,
		Short: short,
		Long:  long,
		Args:  inputArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runView(cmd, args[0], mode, opts)
		},
	}

	flags.addFilterFlags(cmd)
	flags.addLayoutFlags(cmd)
	if mode == text.ModePruned {
		cmd.Flags().BoolVar(&flags.allScopes, "all-scopes", false, "show scope labels without filtering")
	}

	return cmd
}

// runView loads the dump and writes a single text view to c.Out.
func (c *CLI) runView(cmd *cobra.Command, input string, mode text.Mode, opts text.Options) error {
	ctx := cmd.Context()

	idx, err := loadIndex(ctx, input)
	if err != nil {
		return err
	}

	return renderTo(ctx, c.Out, string(mode), func(w io.Writer) error {
		return text.Render(w, idx, mode, opts)
	})
}
