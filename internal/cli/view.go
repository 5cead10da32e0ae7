package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/pkg/errors"
	depio "github.com/matzehuels/deptree/pkg/io"
	"github.com/matzehuels/deptree/pkg/observability"
	"github.com/matzehuels/deptree/pkg/render/text"
	"github.com/matzehuels/deptree/pkg/resolve"
	"github.com/matzehuels/deptree/pkg/scope"
)

// viewFlags holds the filtering and layout flags shared by view commands.
type viewFlags struct {
	scopes    string   // comma-separated scope filter
	exclude   []string // glob patterns hiding coordinates
	allScopes bool     // annotate the pruned view without filtering
	indent    int      // spaces per depth level
}

// addFilterFlags registers --scopes and --exclude.
func (f *viewFlags) addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.scopes, "scopes", "", "only show dependencies in these scopes: compile, runtime, test-compile, test-runtime (comma-separated)")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "hide coordinates matching a glob, e.g. 'org.jetbrains.kotlin:*' (repeatable)")
	_ = cmd.RegisterFlagCompletionFunc("scopes", completeScopes)
	cmd.ValidArgsFunction = completeDumpFile
}

// addLayoutFlags registers --indent.
func (f *viewFlags) addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.indent, "indent", 0, "spaces per depth level (default 2)")
}

// options merges flags over the config file. Flags the user did not set
// fall back to the config; exclusions from both are combined.
func (c *CLI) options(cmd *cobra.Command, f *viewFlags) (text.Options, error) {
	logger := loggerFromContext(cmd.Context())
	cfg := c.config
	var opts text.Options

	if cmd.Flags().Changed("scopes") {
		opts.Filter = scope.ParseFilter(f.scopes)
	} else if len(cfg.Scopes) > 0 {
		opts.Filter = scope.NewFilter(cfg.Scopes...)
	}
	if err := errors.ValidateScopes(opts.Filter.Names()); err != nil {
		logger.Warn(errors.UserMessage(err))
	}

	patterns := append(append([]string(nil), cfg.Exclude...), f.exclude...)
	ex, err := resolve.CompileExclusions(patterns)
	if err != nil {
		return text.Options{}, err
	}
	opts.Exclude = ex

	opts.AllScopes = cfg.AllScopes
	if cmd.Flags().Changed("all-scopes") {
		opts.AllScopes = f.allScopes
	}

	indent := cfg.Indent
	if cmd.Flags().Changed("indent") {
		indent = f.indent
	}
	if indent < 0 {
		return text.Options{}, errors.New(errors.ErrCodeUsage, "--indent must not be negative")
	}
	if indent > 0 {
		opts.Indent = strings.Repeat(" ", indent)
	}

	logger.Debug("View options", "filter", opts.Filter.String(), "exclude", len(opts.Exclude), "all_scopes", opts.AllScopes)
	return opts, nil
}

// inputArg validates the positional input path. A missing path is a usage
// error carrying the command's usage line.
func inputArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrCodeUsage, "Usage: %s", cmd.UseLine())
	}
	return errors.ValidateInputPath(args[0])
}

// loadIndex reads the dump at path and resolves it.
func loadIndex(ctx context.Context, path string) (*resolve.Index, error) {
	hooks := observability.Run()

	hooks.OnLoadStart(ctx, path)
	start := time.Now()
	g, err := depio.ImportJSON(path)
	nodes := 0
	if g != nil {
		nodes = g.NodeCount()
	}
	hooks.OnLoadComplete(ctx, path, nodes, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	idx := resolve.Resolve(g)
	hooks.OnResolveComplete(ctx, idx.ReachableCount(), len(idx.Conflicts()), time.Since(start))
	return idx, nil
}

// renderTo renders a view into memory and copies it to w only when
// rendering succeeded.
func renderTo(ctx context.Context, w io.Writer, mode string, render func(io.Writer) error) error {
	hooks := observability.Run()
	hooks.OnRenderStart(ctx, mode)

	start := time.Now()
	var buf bytes.Buffer
	err := render(&buf)
	hooks.OnRenderComplete(ctx, mode, buf.Len(), time.Since(start), err)
	if err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "render %s", mode)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write output")
	}
	return nil
}

// FormatError turns an error into the line printed on stderr before exiting.
// Usage errors print as-is; everything else is prefixed with "Error: ".
func FormatError(err error) string {
	if errors.KindOf(err) == errors.KindUsage {
		return errors.UserMessage(err)
	}
	return fmt.Sprintf("Error: %s", errors.UserMessage(err))
}
