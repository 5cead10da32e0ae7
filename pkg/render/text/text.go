package text

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/resolve"
	"github.com/matzehuels/deptree/pkg/scope"
)

// DefaultIndent is the per-level indentation of nested views.
const DefaultIndent = "  "

// Mode selects one of the text views.
type Mode string

// Supported modes.
const (
	ModeTree      Mode = "tree"
	ModeList      Mode = "list"
	ModePruned    Mode = "pruned"
	ModeConflicts Mode = "conflicts"
)

// Modes lists the renderable modes in display order.
var Modes = []Mode{ModeTree, ModeList, ModePruned, ModeConflicts}

// Options controls filtering and layout. The zero value renders everything
// with the default indentation.
type Options struct {
	// Filter restricts output to nodes carrying one of its scopes.
	Filter scope.Filter
	// Exclude hides coordinates matching any pattern (and, in nested views,
	// their subtrees).
	Exclude resolve.Exclusions
	// Indent is repeated once per depth level. Empty means DefaultIndent.
	Indent string
	// AllScopes shows scope annotations in the pruned view without
	// filtering. Tree and list always annotate.
	AllScopes bool
}

func (o Options) predicate() resolve.Predicate {
	return resolve.Predicate{Filter: o.Filter, Exclude: o.Exclude}
}

// Render dispatches to the renderer for mode.
func Render(w io.Writer, idx *resolve.Index, mode Mode, opts Options) error {
	switch mode {
	case ModeTree:
		return Tree(w, idx, opts)
	case ModeList:
		return List(w, idx, opts)
	case ModePruned:
		return Pruned(w, idx, opts)
	case ModeConflicts:
		return Conflicts(w, idx, opts)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown mode: %s", mode)
	}
}

// allScopesNote is the pruned view's annotation for --all-scopes.
var allScopesNote = "(showing all scopes: " + strings.Join(scope.All, ", ") + ")"

// printer writes indented lines and keeps the first write error.
type printer struct {
	w      io.Writer
	indent string
	err    error
}

func newPrinter(w io.Writer, opts Options) *printer {
	indent := opts.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	return &printer{w: w, indent: indent}
}

func (p *printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s+"\n")
}

// header prints the title, its underline, the optional note and a blank line.
func (p *printer) header(title, note string) {
	p.println(title)
	p.println(strings.Repeat("=", utf8.RuneCountInString(title)))
	if note != "" {
		p.println(note)
	}
	p.println("")
}

// node prints text at depth, followed by the label when non-empty.
func (p *printer) node(depth int, text, label string) {
	line := strings.Repeat(p.indent, depth) + text
	if label != "" {
		line += "  " + label
	}
	p.println(line)
}

func filterNote(f scope.Filter) string {
	if !f.IsSet() {
		return ""
	}
	return fmt.Sprintf("(filtered to: %s)", f)
}
