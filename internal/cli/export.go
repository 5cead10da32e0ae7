package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/pkg/errors"
	depio "github.com/matzehuels/deptree/pkg/io"
	"github.com/matzehuels/deptree/pkg/render/text"
	"github.com/matzehuels/deptree/pkg/resolve"
)

// exportCommand creates the export command for machine-readable reports.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		flags  viewFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export " + inputUse,
		Short: "Export the dependency list as JSON or YAML",
		Long: `Export every listed dependency with its declaration, scopes, resolution
status, shallowest depth and direct children, plus any version conflicts.

The format defaults to JSON, or is taken from the output file extension
(.json, .yaml, .yml).

Examples:
  deptree export deps.json > report.json
  deptree export deps.json -o report.yaml --scopes=runtime`,
		Args: inputArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			f := exportFormat(format, output)
			if err := depio.ValidateFormat(f); err != nil {
				return err
			}
			return c.runExport(cmd.Context(), args[0], opts, f, output)
		},
	}

	flags.addFilterFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json (default), yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// exportFormat picks the explicit format, else one implied by the output
// extension, else JSON.
func exportFormat(format, output string) string {
	if format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".yaml", ".yml":
		return depio.FormatYAML
	default:
		return depio.FormatJSON
	}
}

func (c *CLI) runExport(ctx context.Context, input string, opts text.Options, format, output string) error {
	idx, err := loadIndex(ctx, input)
	if err != nil {
		return err
	}

	report := depio.NewReport(idx, resolve.Predicate{Filter: opts.Filter, Exclude: opts.Exclude})

	if output == "" {
		return renderTo(ctx, c.Out, "export", func(w io.Writer) error {
			return depio.WriteReport(w, report, format)
		})
	}

	prog := newProgress(loggerFromContext(ctx))
	if err := depio.ExportReport(report, output, format); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "export %s", output)
	}
	prog.done("Exported " + format)

	written("Report", output,
		count(len(report.Dependencies), "dependency", "dependencies"),
		count(len(report.Conflicts), "conflict", "conflicts"))
	return nil
}
