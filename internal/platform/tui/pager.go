package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// minPagerHeight keeps the pager usable in tiny terminals.
const minPagerHeight = 3

// PagerModel is the Bubble Tea model for reading text paragraphs. The text is
// wrapped to the terminal width and scrolls when it does not fit.
type PagerModel struct {
	lines     []string
	viewport  viewport.Model
	keys      KeyMap
	help      help.Model
	dismissed bool
	aborted   bool
}

// NewPagerModel creates a pager for lines sized to width x height.
func NewPagerModel(lines []string, keys KeyMap, width, height int) PagerModel {
	h := help.New()
	h.Width = width
	m := PagerModel{
		lines: lines,
		keys:  keys,
		help:  h,
	}
	m.viewport = viewport.New(width, max(height-2, minPagerHeight))
	m.setContent(width)
	return m
}

func (m *PagerModel) setContent(width int) {
	m.viewport.SetContent(pageStyle.Render(wrapLines(m.lines, width-2)))
}

// Init initializes the pager model.
func (m PagerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the pager.
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Back):
			m.dismissed = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, minPagerHeight)
		m.help.Width = msg.Width
		m.setContent(msg.Width)
		return m, nil
	}

	// Pass scrolling keys to the viewport
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the visible part of the text and the help bar.
func (m PagerModel) View() string {
	if m.dismissed || m.aborted {
		return ""
	}
	return stack(m.viewport.View(), helpStyle.Render(m.help.View(pagerHelp{m.keys})))
}

// IsDismissed reports whether the player closed the pager.
func (m PagerModel) IsDismissed() bool {
	return m.dismissed
}

// IsAborted reports whether the player force-quit.
func (m PagerModel) IsAborted() bool {
	return m.aborted
}
