package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/pkg/render/text"
	"github.com/matzehuels/deptree/pkg/resolve"
)

// Explorer styles
var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	viewBodyStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	viewDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreChrome is the number of lines taken by tabs, help and footer.
const exploreChrome = 5

// exploreCommand creates the explore command for interactive browsing.
func (c *CLI) exploreCommand() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "explore " + inputUse,
		Short: "Browse the tree, list and pruned views interactively",
		Long: `Open a full-screen viewer that switches between the tree, list, pruned
and conflicts views of a dependency dump.

Keys: tab/→ next view, shift+tab/← previous view, ↑/↓ or j/k scroll,
pgup/pgdn page, g/G top/bottom, q quit.`,
		Args: inputArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runExplore(cmd.Context(), args[0], opts)
		},
	}

	flags.addFilterFlags(cmd)
	flags.addLayoutFlags(cmd)
	cmd.Flags().BoolVar(&flags.allScopes, "all-scopes", false, "show scope labels in the pruned view")

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, input string, opts text.Options) error {
	idx, err := loadIndex(ctx, input)
	if err != nil {
		return err
	}

	m, err := newExploreModel(idx, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// =============================================================================
// exploreModel - Interactive view switcher
// =============================================================================

// exploreView is one pre-rendered text view.
type exploreView struct {
	mode  text.Mode
	lines []string
}

// exploreModel is the bubbletea model for the explore command.
type exploreModel struct {
	views  []exploreView
	active int
	offset int
	height int
}

// newExploreModel renders every text view of idx up front.
func newExploreModel(idx *resolve.Index, opts text.Options) (exploreModel, error) {
	m := exploreModel{height: 20}
	for _, mode := range text.Modes {
		var buf bytes.Buffer
		if err := text.Render(&buf, idx, mode, opts); err != nil {
			return exploreModel{}, fmt.Errorf("render %s: %w", mode, err)
		}
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		m.views = append(m.views, exploreView{mode: mode, lines: lines})
	}
	return m, nil
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.active = (m.active + 1) % len(m.views)
			m.offset = 0
		case "shift+tab", "left", "h":
			m.active = (m.active + len(m.views) - 1) % len(m.views)
			m.offset = 0
		case "up", "k":
			m.scroll(-1)
		case "down", "j":
			m.scroll(1)
		case "pgup", "b":
			m.scroll(-m.height)
		case "pgdown", "f", " ":
			m.scroll(m.height)
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.scroll(len(m.current().lines))
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - exploreChrome
		if m.height < 5 {
			m.height = 5
		}
		m.scroll(0)
	}
	return m, nil
}

func (m *exploreModel) current() exploreView {
	return m.views[m.active]
}

// scroll moves the viewport by delta lines, clamped to the content.
func (m *exploreModel) scroll(delta int) {
	maxOffset := len(m.current().lines) - m.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.offset = min(max(m.offset+delta, 0), maxOffset)
}

func (m exploreModel) View() string {
	var b strings.Builder

	tabs := make([]string, len(m.views))
	for i, v := range m.views {
		if i == m.active {
			tabs[i] = tabActiveStyle.Render(string(v.mode))
		} else {
			tabs[i] = tabInactiveStyle.Render(string(v.mode))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	b.WriteString(viewDimStyle.Render("tab switch view  ↑/↓ scroll  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	lines := m.current().lines
	end := min(m.offset+m.height, len(lines))
	for _, line := range lines[m.offset:end] {
		b.WriteString(viewBodyStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(viewDimStyle.Render(fmt.Sprintf("  [%d-%d/%d]", m.offset+1, end, len(lines))))

	return b.String()
}
