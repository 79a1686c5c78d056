package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/asciiref/internal/render"
)

// Options seed the TUI's display toggles.
type Options struct {
	HighContrast bool
	ShowScores   bool
	ShowControl  bool
}

// TuiModel is the Bubble Tea model used by cmd/tui.
type TuiModel struct {
	uiModel Model
	input   textinput.Model
	vp      viewport.Model

	width  int
	height int

	// accessibility / theme
	themeHighContrast bool
	showScores        bool
	showControl       bool

	status    string
	exporting bool
}

// Messages
type exportDoneMsg struct {
	path string
	err  error
}

// NewModel constructs the Bubble Tea TUI model. It accepts any implementation
// of Model (usually the framework-agnostic internal model) so tests can
// provide fakes.
func NewModel(ui Model, opts Options) *TuiModel {
	in := textinput.New()
	in.Prompt = "Search: "
	in.Placeholder = "glyph, mnemonic or number (0x41, 0o101, 0b1000001)"
	in.SetValue(ui.Query())
	in.Focus()

	return &TuiModel{
		uiModel:           ui,
		input:             in,
		vp:                viewport.New(0, 0),
		themeHighContrast: opts.HighContrast,
		showScores:        opts.ShowScores,
		showControl:       opts.ShowControl,
	}
}

// NewProgram constructs the tea.Program for the TUI.
func NewProgram(ui Model, opts Options) *tea.Program {
	m := NewModel(ui, opts)
	return tea.NewProgram(m, tea.WithAltScreen())
}

// Init sizes the viewport with reasonable defaults so the table shows on
// first render (before a WindowSizeMsg arrives) and starts the cursor blink.
func (m *TuiModel) Init() tea.Cmd {
	if m.vp.Width == 0 || m.vp.Height == 0 {
		m.ensureViewportSize(60, 20)
	}
	m.refreshTable()
	return textinput.Blink
}

func (m *TuiModel) renderOptions() render.Options {
	return render.Options{
		ShowScores:   m.showScores,
		ShowControl:  m.showControl,
		HighContrast: m.themeHighContrast,
	}
}

// refreshTable applies the current view model to the viewport.
func (m *TuiModel) refreshTable() {
	opts := m.renderOptions()
	if len(render.Rows(m.uiModel.Results(), opts)) == 0 {
		m.vp.SetContent(fmt.Sprintf("No characters match %q.", m.uiModel.Query()))
		return
	}
	m.vp.SetContent(render.Table(m.uiModel.Results(), opts))
}

// applyQuery pushes the input value into the model and redraws on change.
func (m *TuiModel) applyQuery() {
	if m.uiModel.SetQuery(m.input.Value()) {
		m.refreshTable()
		m.vp.GotoTop()
	}
}

func (m *TuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported to " + msg.path
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - len(m.input.Prompt) - 4
		// title box (3) + input (1) + footer (1) + status (1) + table border (2)
		bodyH := m.height - 8
		m.ensureViewportSize(m.width-2, bodyH)
		m.refreshTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *TuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		if m.input.Value() == "" {
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.applyQuery()
		return m, nil
	case tea.KeyCtrlT:
		m.themeHighContrast = !m.themeHighContrast
		m.refreshTable()
		return m, nil
	case tea.KeyCtrlS:
		m.showScores = !m.showScores
		m.refreshTable()
		return m, nil
	case tea.KeyCtrlO:
		m.showControl = !m.showControl
		m.refreshTable()
		return m, nil
	case tea.KeyCtrlE:
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		m.status = "exporting…"
		return m, exportCmd(m.uiModel.ExportView())
	case tea.KeyUp:
		m.vp.LineUp(1)
		return m, nil
	case tea.KeyDown:
		m.vp.LineDown(1)
		return m, nil
	case tea.KeyPgUp:
		m.vp.HalfViewUp()
		return m, nil
	case tea.KeyPgDown:
		m.vp.HalfViewDown()
		return m, nil
	case tea.KeyHome:
		m.vp.GotoTop()
		return m, nil
	case tea.KeyEnd:
		m.vp.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyQuery()
	return m, cmd
}

// exportCmd runs export off the update loop and reports back.
func exportCmd(export func(context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		p, err := export(context.Background())
		return exportDoneMsg{path: p, err: err}
	}
}
