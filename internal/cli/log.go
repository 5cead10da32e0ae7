// Package cli implements the deptree command-line interface.
//
// Every view command takes the path of a Gradle dependency dump and writes
// its rendering to stdout. Output is rendered into a buffer first, so a
// failing run never leaves partial output behind. Logs and status lines go
// to stderr through charmbracelet/log and lipgloss.
//
// # Commands
//
// The main commands are:
//   - tree: full dependency tree with repeated subtrees marked "(*)"
//   - list: sorted list of every active coordinate
//   - pruned: tree with each coordinate once, at its shallowest depth
//   - dot: the pruned view as a Graphviz diagram (DOT, SVG or PNG)
//   - conflicts: GAs reached in more than one version
//   - export: the list view as JSON or YAML
//   - explore: interactive viewer cycling through the text views
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and run events reach the log through
// observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/deptree/pkg/observability"
)

// newLogger returns the stderr logger shared by all commands. Views go to
// stdout, so nothing logged here can end up in a rendered tree.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long writing a diagram or report took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs e.g. "Rendered svg (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey struct{}

// withLogger attaches l to ctx for the run hooks and subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() for contexts that never went through the root command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports run events to the logger carried in the event context.
type logHooks struct{}

var _ observability.RunHooks = logHooks{}

func (logHooks) OnLoadStart(ctx context.Context, path string) {
	loggerFromContext(ctx).Debug("Loading dump", "path", path)
}

func (logHooks) OnLoadComplete(ctx context.Context, path string, nodeCount int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("Load failed", "path", path, "err", err)
		return
	}
	l.Debug("Loaded dump", "path", path, "nodes", nodeCount, "took", d.Round(time.Microsecond))
}

func (logHooks) OnResolveComplete(ctx context.Context, reachable, conflicts int, d time.Duration) {
	l := loggerFromContext(ctx)
	l.Debug("Resolved graph", "reachable", reachable, "conflicts", conflicts, "took", d.Round(time.Microsecond))
	if conflicts > 0 {
		l.Debugf("%d GA(s) reached in more than one version; run 'deptree conflicts' for details", conflicts)
	}
}

func (logHooks) OnRenderStart(ctx context.Context, mode string) {
	loggerFromContext(ctx).Debug("Rendering", "mode", mode)
}

func (logHooks) OnRenderComplete(ctx context.Context, mode string, n int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("Render failed", "mode", mode, "err", err)
		return
	}
	l.Debug("Rendered", "mode", mode, "bytes", n, "took", d.Round(time.Microsecond))
}
