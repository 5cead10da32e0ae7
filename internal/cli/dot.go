package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/render/nodelink"
	"github.com/matzehuels/deptree/pkg/resolve"
)

// dotCommand creates the dot command for Graphviz output of the pruned view.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		flags    viewFlags
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "dot " + inputUse,
		Short: "Render the pruned tree as a Graphviz diagram",
		Long: `Render the pruned dependency tree as a node-link diagram.

Each dependency is a node ranked by its shallowest depth, with an edge for
every direct dependency between shown nodes. The format defaults to DOT
text, or is taken from the output file extension. SVG and PNG are laid out
with an embedded Graphviz; no system install is needed.

Examples:
  deptree dot deps.json > deps.dot
  deptree dot deps.json -o deps.svg
  deptree dot deps.json -f png -o deps.png --scopes=runtime --detailed`,
		Args: inputArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			if format == "" && output != "" {
				format = strings.TrimPrefix(filepath.Ext(output), ".")
			}
			f, err := nodelink.ParseFormat(format)
			if err != nil {
				return err
			}
			return c.runDOT(cmd.Context(), args[0], nodelink.Options{
				Filter:   opts.Filter,
				Exclude:  opts.Exclude,
				Detailed: detailed,
			}, f, output)
		},
	}

	flags.addFilterFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot (default), svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show declaration and scopes in node labels")

	return cmd
}

// runDOT builds the diagram and writes it to output, or to c.Out when
// output is empty.
func (c *CLI) runDOT(ctx context.Context, input string, opts nodelink.Options, format nodelink.Format, output string) error {
	logger := loggerFromContext(ctx)

	idx, err := loadIndex(ctx, input)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	dot := nodelink.ToDOT(idx, opts)
	data, err := nodelink.Render(ctx, dot, format)
	if err != nil {
		return err
	}

	if output == "" {
		if _, err := c.Out.Write(data); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write output")
		}
		return nil
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}
	prog.done("Rendered " + string(format))

	nodes := idx.MinDepths(resolve.Predicate{Filter: opts.Filter, Exclude: opts.Exclude})
	written("Diagram", output,
		count(len(nodes), "node", "nodes"),
		count(strings.Count(dot, " -> "), "edge", "edges"))
	if format == nodelink.FormatDOT {
		hint("Render", "deptree dot "+input+" -o "+strings.TrimSuffix(output, filepath.Ext(output))+".svg")
	}
	return nil
}
