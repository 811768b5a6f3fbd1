package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/picotrek/internal/core"
)

// coarseSteps is how many steps pgup/pgdown move the dial.
const coarseSteps = 10

// DialModel is the Bubble Tea model for entering a number in [min, max].
// The value always sits on min + k*step.
type DialModel struct {
	frame   string
	prompt  string
	min     float64
	max     float64
	step    float64
	value   float64
	keys    KeyMap
	help    help.Model
	chosen  bool
	aborted bool
}

// NewDialModel creates a dial starting at min. A non-positive step moves by 1.
func NewDialModel(frame, prompt string, min, max, step float64, keys KeyMap, width int) DialModel {
	if step <= 0 {
		step = 1
	}
	if max < min {
		max = min
	}
	h := help.New()
	h.Width = width
	return DialModel{
		frame:  frame,
		prompt: prompt,
		min:    min,
		max:    max,
		step:   step,
		value:  min,
		keys:   keys,
		help:   h,
	}
}

// Init initializes the dial model.
func (m DialModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dial.
func (m DialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Increase):
			m.turn(1)
		case key.Matches(msg, m.keys.Decrease):
			m.turn(-1)
		case key.Matches(msg, m.keys.CoarseUp):
			m.turn(coarseSteps)
		case key.Matches(msg, m.keys.CoarseDown):
			m.turn(-coarseSteps)
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// turn moves the dial by n steps.
func (m *DialModel) turn(n int) {
	m.value = core.SnapStep(m.value+float64(n)*m.step, m.min, m.max, m.step)
}

// View renders the frame, the prompt and the current value.
func (m DialModel) View() string {
	if m.chosen || m.aborted {
		return ""
	}
	value := selectedStyle.Render(" " + formatNumber(m.value) + " ")
	bounds := helpStyle.Render("[" + formatNumber(m.min) + ".." + formatNumber(m.max) + "]")
	return stack(
		m.frame,
		promptStyle.Render(m.prompt),
		value+" "+bounds,
		helpStyle.Render(m.help.View(dialHelp{m.keys})),
	)
}

// Value returns the current dial value.
func (m DialModel) Value() float64 {
	return m.value
}

// IsChosen reports whether the player confirmed the value.
func (m DialModel) IsChosen() bool {
	return m.chosen
}

// IsAborted reports whether the player force-quit.
func (m DialModel) IsAborted() bool {
	return m.aborted
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
