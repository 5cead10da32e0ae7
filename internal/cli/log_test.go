package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/deptree/pkg/observability"
)

func TestVerboseShowsOptionsLog(t *testing.T) {
	path := writeFile(t, "deps.json", sampleDump)

	tests := []struct {
		name    string
		level   log.Level
		wantLog bool
	}{
		{"info hides debug", log.InfoLevel, false},
		{"debug shows options", log.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			t.Cleanup(observability.Reset)
			var logs, out bytes.Buffer
			c := New(&logs, tt.level)
			c.Out = &out

			root := c.RootCommand()
			if err := Execute(context.Background(), root, []string{"tree", path, "--scopes=runtime"}); err != nil {
				t.Fatalf("tree: %v", err)
			}
			got := strings.Contains(logs.String(), "View options")
			if got != tt.wantLog {
				t.Errorf("options logged = %v, want %v:\n%s", got, tt.wantLog, logs.String())
			}
			if strings.Contains(out.String(), "View options") {
				t.Error("log lines leaked into the rendered view")
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Rendered svg")

	if !regexp.MustCompile(`Rendered svg \(\d+(\.\d+)?[mµn]?s\)`).MatchString(buf.String()) {
		t.Errorf("progress line = %q, want message with elapsed time", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should fall back to log.Default()")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.WarnLevel)
	ctx := withLogger(context.Background(), l)
	if loggerFromContext(ctx) != l {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	loggerFromContext(ctx).Warn("unknown scope(s) rutime")
	if !strings.Contains(buf.String(), "rutime") {
		t.Errorf("warning not written: %q", buf.String())
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.DebugLevel))

	h := logHooks{}
	h.OnLoadStart(ctx, "deps.json")
	h.OnLoadComplete(ctx, "deps.json", 3, time.Millisecond, nil)
	h.OnResolveComplete(ctx, 3, 1, time.Millisecond)
	h.OnRenderStart(ctx, "tree")
	h.OnRenderComplete(ctx, "tree", 42, time.Millisecond, nil)

	out := buf.String()
	for _, want := range []string{"Loading dump", "Loaded dump", "Resolved graph", "deptree conflicts", "Rendered"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))

	logHooks{}.OnLoadComplete(ctx, "deps.json", 3, time.Millisecond, nil)
	if buf.Len() != 0 {
		t.Errorf("hooks should log at debug level only, got:\n%s", buf.String())
	}
}
