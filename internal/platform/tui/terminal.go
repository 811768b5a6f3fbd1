// Package tui provides the Bubble Tea implementation of the game's display
// and input. Every prompt runs its own short program, so the game loop stays
// a plain sequential caller.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/picotrek/internal/core"
)

// Terminal draws frames into a character buffer and collects answers through
// chooser, dial and pager widgets.
type Terminal struct {
	screen *core.Screen
	frame  string
	keys   KeyMap
	width  int
	height int
	opts   []tea.ProgramOption
}

var (
	_ core.Display = (*Terminal)(nil)
	_ core.Input   = (*Terminal)(nil)
)

// NewTerminal creates a terminal with a frame buffer of screenW x screenH
// cells, laid out for a terminal of width x height. Extra program options are
// passed to every widget program.
func NewTerminal(screenW, screenH, width, height int, opts ...tea.ProgramOption) *Terminal {
	return &Terminal{
		screen: core.NewScreen(screenW, screenH),
		keys:   DefaultKeyMap(),
		width:  width,
		height: height,
		opts:   opts,
	}
}

// Clear blanks the frame buffer.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// DrawText draws text into the frame buffer.
func (t *Terminal) DrawText(x, y int, text string) {
	t.screen.DrawText(x, y, text)
}

// DrawLine draws a line into the frame buffer.
func (t *Terminal) DrawLine(x0, y0, x1, y1 int, r rune) {
	t.screen.DrawLine(x0, y0, x1, y1, r)
}

// Commit makes the buffer the frame shown above the next prompt.
func (t *Terminal) Commit() error {
	t.frame = RenderScreen(t.screen)
	return nil
}

// Frame returns the last committed frame.
func (t *Terminal) Frame() string {
	return t.frame
}

// Choose shows a chooser below the committed frame.
func (t *Terminal) Choose(prompt []string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("tui: choose: no options")
	}
	final, err := t.run(NewChooserModel(t.frame, prompt, options, t.keys, t.width))
	if err != nil {
		return "", err
	}
	m, ok := final.(ChooserModel)
	if !ok || m.IsAborted() || !m.IsChosen() {
		return "", core.ErrAborted
	}
	return m.Selected(), nil
}

// Number shows a dial below the committed frame.
func (t *Terminal) Number(prompt string, min, max, step float64) (float64, error) {
	final, err := t.run(NewDialModel(t.frame, prompt, min, max, step, t.keys, t.width))
	if err != nil {
		return 0, err
	}
	m, ok := final.(DialModel)
	if !ok || m.IsAborted() || !m.IsChosen() {
		return 0, core.ErrAborted
	}
	return m.Value(), nil
}

// Pages shows lines in a scrolling pager.
func (t *Terminal) Pages(lines []string) error {
	final, err := t.run(NewPagerModel(lines, t.keys, t.width, t.height))
	if err != nil {
		return err
	}
	m, ok := final.(PagerModel)
	if !ok || m.IsAborted() || !m.IsDismissed() {
		return core.ErrAborted
	}
	return nil
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, t.opts...)
	p := tea.NewProgram(model, opts...)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return final, nil
}
