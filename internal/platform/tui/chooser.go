package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ChooserModel is the Bubble Tea model for picking one of a list of options.
// Moving past either end wraps around.
type ChooserModel struct {
	frame   string
	prompt  []string
	options []string
	cursor  int
	width   int
	keys    KeyMap
	help    help.Model
	chosen  bool
	aborted bool
}

// NewChooserModel creates a chooser shown below frame.
func NewChooserModel(frame string, prompt, options []string, keys KeyMap, width int) ChooserModel {
	h := help.New()
	h.Width = width
	return ChooserModel{
		frame:   frame,
		prompt:  prompt,
		options: options,
		width:   width,
		keys:    keys,
		help:    h,
	}
}

// Init initializes the chooser model.
func (m ChooserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the chooser.
func (m ChooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m ChooserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.options)
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case n == 0:
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.cursor = (m.cursor - 1 + n) % n

	case key.Matches(msg, m.keys.Next):
		m.cursor = (m.cursor + 1) % n

	case key.Matches(msg, m.keys.Select):
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the frame, the prompt and the options.
func (m ChooserModel) View() string {
	if m.chosen || m.aborted {
		return ""
	}

	prompt := make([]string, len(m.prompt))
	for i, p := range m.prompt {
		prompt[i] = promptStyle.Render(p)
	}

	var opts strings.Builder
	for i, o := range m.options {
		if i > 0 {
			opts.WriteString("  ")
		}
		if i == m.cursor {
			opts.WriteString(selectedStyle.Render(" " + o + " "))
		} else {
			opts.WriteString(" " + o + " ")
		}
	}

	return stack(
		m.frame,
		strings.Join(prompt, "\n"),
		wrapOptions(opts.String(), m.width),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Selected returns the highlighted option, or "" when there are none.
func (m ChooserModel) Selected() string {
	if len(m.options) == 0 {
		return ""
	}
	return m.options[m.cursor]
}

// IsChosen reports whether the player confirmed the highlighted option.
func (m ChooserModel) IsChosen() bool {
	return m.chosen
}

// IsAborted reports whether the player force-quit.
func (m ChooserModel) IsAborted() bool {
	return m.aborted
}

// wrapOptions keeps a long option row inside the terminal.
func wrapOptions(row string, width int) string {
	if width <= 0 {
		return row
	}
	return wrapLines([]string{row}, width)
}
