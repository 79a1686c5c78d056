package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/asciiref/internal/query"
	"github.com/VoxDroid/asciiref/internal/render"
	"github.com/VoxDroid/asciiref/internal/tui/sanitize"
)

const footerText = "type to filter • 0x/0o/0b prefix targets one base • ↑/↓ pgup/pgdown scroll • ctrl+s scores • ctrl+o control rows • ctrl+e export • ctrl+t theme • esc clear/quit"

func (m *TuiModel) View() string {
	theme := render.ThemeFor(m.themeHighContrast)
	width := m.width
	if width <= 0 {
		width = m.vp.Width + 2
	}

	titleBox := m.renderTitleBox(" asciiref — ASCII reference ", width)
	input := m.input.View()

	tableStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.ActiveBdr)).
		Width(m.vp.Width)
	body := tableStyle.Render(m.vp.View())

	footer := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(theme.Muted)).Render(footerText)
	bottom := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.StatusBg)).
		Foreground(lipgloss.Color(theme.StatusFg)).
		Padding(0, 1).
		Width(width).
		Render(" " + m.statusLine() + " ")

	return lipgloss.JoinVertical(lipgloss.Left, titleBox, input, body, footer, bottom)
}

// statusLine summarises the current query for the bottom bar.
func (m *TuiModel) statusLine() string {
	shown := len(render.Rows(m.uiModel.Results(), m.renderOptions()))
	s := fmt.Sprintf("Showing %d of %d", shown, m.uiModel.Total())
	if q := m.uiModel.Query(); q != "" {
		s += fmt.Sprintf(" • query: %s", sanitize.Query(q))
		if mode := m.uiModel.Mode(); mode != query.ModeWeighted {
			s += " • mode: " + mode.String()
		}
	}
	if m.showScores {
		s += " • SCORES"
	}
	if m.status != "" {
		s += " • " + m.status
	}
	return s
}

// renderTitleBox produces the bordered title bar shown above the table.
func (m *TuiModel) renderTitleBox(text string, width int) string {
	theme := render.ThemeFor(m.themeHighContrast)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.TitleFg)).Background(lipgloss.Color(theme.TitleBg)).Padding(0, 1)
	title := titleStyle.Render(text)
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	titleInner := lipgloss.Place(inner, 1, lipgloss.Center, lipgloss.Center, title)
	return lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(theme.TitleBorder)).Width(inner).Render(titleInner)
}
