package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/deptree/pkg/buildinfo"
	"github.com/matzehuels/deptree/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "deptree"

	// inputUse is the positional argument shown in usage lines.
	inputUse = "<json-file>"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives rendered views. Status lines and logs go to stderr.
	Out io.Writer

	configPath string
	config     Config
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "deptree renders Gradle dependency dumps as trees and lists",
		Long: `deptree reads the JSON dependency dump of a Gradle build and renders it as
a full tree, a flat list of resolved coordinates, or a pruned tree in which
every dependency appears once at its shallowest depth.

Dependencies can be filtered by scope (compile, runtime, test-compile,
test-runtime) and excluded by glob pattern.`,
		Version:       buildinfo.Resolved(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetRunHooks(logHooks{})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/deptree/config.toml)")

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.prunedCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.conflictsCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	lenient(root)
	return root
}

// Execute runs root with args after dropping the flags it does not define.
func Execute(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(KnownArgs(root, args))
	return root.ExecuteContext(ctx)
}

// KnownArgs removes every dash-prefixed argument that the target command
// does not define. The argument following an unknown flag is kept, so
// "list --color deps.json" still sees deps.json as its input. Values of
// known flags are carried over untouched.
func KnownArgs(root *cobra.Command, args []string) []string {
	if len(args) > 0 && strings.HasPrefix(args[0], cobra.ShellCompRequestCmd) {
		return args
	}

	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()
	cmd := root
	positional := false

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			if !positional {
				if sub := subcommand(cmd, arg); sub != nil {
					cmd = sub
					cmd.InitDefaultHelpFlag()
				} else {
					positional = true
				}
			}
			out = append(out, arg)
		default:
			f, inline := lookupFlag(cmd, arg)
			if f == nil {
				continue
			}
			out = append(out, arg)
			if !inline && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		}
	}
	return out
}

// subcommand returns the child of cmd named or aliased name.
func subcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return sub
		}
	}
	return nil
}

// lookupFlag finds the flag arg refers to on cmd, including inherited
// persistent flags. inline reports whether arg already carries its value.
func lookupFlag(cmd *cobra.Command, arg string) (f *pflag.Flag, inline bool) {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, inline = strings.Cut(name, "=")
		if f = cmd.Flags().Lookup(name); f == nil {
			f = cmd.InheritedFlags().Lookup(name)
		}
		return f, inline
	}

	short := arg[1:2]
	if f = cmd.Flags().ShorthandLookup(short); f == nil {
		f = cmd.InheritedFlags().ShorthandLookup(short)
	}
	return f, len(arg) > 2
}

// lenient makes cmd and all its subcommands ignore unknown flags. Execute
// already strips them; this covers callers that run the command directly.
func lenient(cmd *cobra.Command) {
	cmd.FParseErrWhitelist = cobra.FParseErrWhitelist{UnknownFlags: true}
	for _, sub := range cmd.Commands() {
		lenient(sub)
	}
}
