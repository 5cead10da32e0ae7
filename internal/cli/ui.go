package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	styleOK      = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	stylePath    = lipgloss.NewStyle().Foreground(colorWhite)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// statusOut receives status lines. Stdout is reserved for rendered views,
// so `deptree dot deps.json -o deps.svg 2>/dev/null` stays silent.
var statusOut io.Writer = os.Stderr

// written reports a file produced by dot or export:
//
//	✓ Diagram written
//	  → deps.svg
//	  12 nodes · 14 edges
//
// Empty facts are skipped.
func written(what, path string, facts ...string) {
	fmt.Fprintln(statusOut, styleOK.Render("✓")+" "+what+" written")
	fmt.Fprintln(statusOut, "  "+styleDim.Render("→")+" "+stylePath.Render(path))

	var shown []string
	for _, f := range facts {
		if f != "" {
			shown = append(shown, f)
		}
	}
	if len(shown) > 0 {
		fmt.Fprintln(statusOut, "  "+styleDim.Render(strings.Join(shown, " · ")))
	}
}

// count formats n with its noun, or "" when n is zero.
func count(n int, one, many string) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "1 " + one
	default:
		return fmt.Sprintf("%d %s", n, many)
	}
}

// hint suggests a follow-up command.
func hint(description, cmd string) {
	fmt.Fprintln(statusOut, styleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
