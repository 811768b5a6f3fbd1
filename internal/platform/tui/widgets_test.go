package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/picotrek/internal/core"
	"github.com/vovakirdan/picotrek/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m tea.Model, msgs ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestChooserWrapsAround(t *testing.T) {
	m := NewChooserModel("", nil, []string{"A", "B", "C"}, DefaultKeyMap(), 40)

	tests := []struct {
		key      tea.KeyMsg
		expected string
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, "C"},
		{tea.KeyMsg{Type: tea.KeyDown}, "A"},
		{tea.KeyMsg{Type: tea.KeyRight}, "B"},
		{runeKey("j"), "C"},
		{runeKey("j"), "A"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "C"},
	}

	var model tea.Model = m
	for i, tt := range tests {
		model, _ = model.Update(tt.key)
		got := model.(ChooserModel).Selected()
		if got != tt.expected {
			t.Errorf("step %d: Selected() = %q, expected %q", i, got, tt.expected)
		}
	}
}

func TestChooserSelectAndAbort(t *testing.T) {
	m := NewChooserModel("", nil, []string{"YES", "NO"}, DefaultKeyMap(), 40)

	model, cmd := press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	c := model.(ChooserModel)
	if !c.IsChosen() || c.Selected() != "NO" {
		t.Errorf("chooser = (%v, %q), expected (true, NO)", c.IsChosen(), c.Selected())
	}
	if cmd == nil {
		t.Error("select should quit the program")
	}

	model, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !model.(ChooserModel).IsAborted() {
		t.Error("ctrl+c should abort the chooser")
	}
}

func TestChooserView(t *testing.T) {
	m := NewChooserModel("FRAME", []string{"Command?"}, []string{"LRS", "SRS"}, DefaultKeyMap(), 60)
	view := m.View()

	for _, want := range []string{"FRAME", "Command?", "LRS", "SRS"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestDialSnapsToRange(t *testing.T) {
	tests := []struct {
		name          string
		min, max, stp float64
		keys          []tea.KeyMsg
		expected      float64
	}{
		{"starts at min", 0, 360, 5, nil, 0},
		{"one step", 0, 360, 5, []tea.KeyMsg{{Type: tea.KeyUp}}, 5},
		{"clamped below", 0, 360, 5, []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}}, 0},
		{"coarse", 0, 360, 5, []tea.KeyMsg{{Type: tea.KeyPgUp}}, 50},
		{"coarse back", 0, 360, 5, []tea.KeyMsg{{Type: tea.KeyPgUp}, {Type: tea.KeyPgDown}}, 0},
		{"clamped above", 0, 30, 5, []tea.KeyMsg{{Type: tea.KeyPgUp}, {Type: tea.KeyPgUp}}, 30},
		{"stays on grid", 0, 7.5, 2, []tea.KeyMsg{{Type: tea.KeyPgUp}}, 6},
		{"zero step moves by one", 0, 3, 0, []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewDialModel("", "Heading", tt.min, tt.max, tt.stp, DefaultKeyMap(), 40)
			model, _ := press(m, tt.keys...)
			if got := model.(DialModel).Value(); got != tt.expected {
				t.Errorf("Value() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDialSelect(t *testing.T) {
	m := NewDialModel("", "Distance", 0, 8, 1, DefaultKeyMap(), 40)
	model, cmd := press(m, runeKey("+"), runeKey("+"), tea.KeyMsg{Type: tea.KeyEnter})
	d := model.(DialModel)

	if !d.IsChosen() || d.Value() != 2 {
		t.Errorf("dial = (%v, %v), expected (true, 2)", d.IsChosen(), d.Value())
	}
	if cmd == nil {
		t.Error("select should quit the program")
	}
	if !strings.Contains(m.View(), "Distance") {
		t.Errorf("View() missing prompt:\n%s", m.View())
	}
}

func TestPagerDismiss(t *testing.T) {
	lines := []string{"Photon torpedo burned out."}
	tests := []struct {
		name      string
		key       tea.KeyMsg
		dismissed bool
		aborted   bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, true, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPagerModel(lines, DefaultKeyMap(), 40, 10)
			model, _ := press(m, tt.key)
			p := model.(PagerModel)
			if p.IsDismissed() != tt.dismissed || p.IsAborted() != tt.aborted {
				t.Errorf("pager = (%v, %v), expected (%v, %v)",
					p.IsDismissed(), p.IsAborted(), tt.dismissed, tt.aborted)
			}
		})
	}
}

func TestPagerWrapsText(t *testing.T) {
	long := strings.Repeat("dilithium ", 12)
	m := NewPagerModel([]string{long}, DefaultKeyMap(), 30, 20)
	view := m.View()

	if !strings.Contains(view, "dilithium") {
		t.Fatalf("View() missing text:\n%s", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := len([]rune(strings.TrimRight(line, " "))); w > 30 {
			t.Errorf("line width = %d, expected <= 30: %q", w, line)
		}
	}
}

type fakeSource struct {
	records []storage.Record
	stats   *storage.Stats
	err     error
}

func (f fakeSource) RecentRecords(int) ([]storage.Record, error) { return f.records, f.err }
func (f fakeSource) Stats() (*storage.Stats, error)              { return f.stats, f.err }

func TestRecordsModel(t *testing.T) {
	src := fakeSource{
		records: []storage.Record{
			{ID: 2, Outcome: "victory", Stardate: 2530.5, Days: 30.5, HostilesDestroyed: 15},
			{ID: 1, Outcome: "destroyed", Stardate: 2510, Days: 10, HostilesDestroyed: 3, HostilesRemaining: 12},
		},
		stats: &storage.Stats{Games: 2, Victories: 1, HostilesDestroyed: 18, FastestVictory: 30.5},
	}

	m := NewRecordsModel(src, 80, 24)
	if got := len(m.Records()); got != 2 {
		t.Fatalf("Records() len = %d, expected 2", got)
	}

	view := m.View()
	for _, want := range []string{"SERVICE RECORD", "Victories: 1", "victory", "destroyed"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	model, cmd := press(m, runeKey("q"))
	if model.View() != "" || cmd == nil {
		t.Error("q should close the records view")
	}
}

func TestRecordsModelEmptyAndError(t *testing.T) {
	empty := NewRecordsModel(nil, 80, 24)
	if !strings.Contains(empty.View(), "No sessions recorded yet.") {
		t.Errorf("empty View() = %q", empty.View())
	}

	failing := NewRecordsModel(fakeSource{err: errors.New("disk on fire")}, 80, 24)
	if !strings.Contains(failing.View(), "disk on fire") {
		t.Errorf("failing View() = %q", failing.View())
	}
}

func TestFormatStats(t *testing.T) {
	got := FormatStats(&storage.Stats{Games: 3, Victories: 0, HostilesDestroyed: 4})
	expected := "Games: 3  Victories: 0  Klingons destroyed: 4"
	if got != expected {
		t.Errorf("FormatStats() = %q, expected %q", got, expected)
	}
}

func newTestTerminal(input string) *Terminal {
	return NewTerminal(40, 12, 80, 24,
		tea.WithInput(strings.NewReader(input)),
		tea.WithOutput(io.Discard),
	)
}

func TestTerminalCommit(t *testing.T) {
	term := newTestTerminal("")
	term.Clear()
	term.DrawText(1, 1, "USS ENTERPRISE")
	term.DrawLine(0, 3, 5, 3, '-')
	if err := term.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	frame := term.Frame()
	if !strings.Contains(frame, "USS ENTERPRISE") || !strings.Contains(frame, "------") {
		t.Errorf("Frame() = %q", frame)
	}
}

func TestTerminalWidgets(t *testing.T) {
	choice, err := newTestTerminal("j\r").Choose([]string{"Self Destruct?"}, []string{"YES", "NO"})
	if err != nil || choice != "NO" {
		t.Errorf("Choose() = (%q, %v), expected (NO, nil)", choice, err)
	}

	v, err := newTestTerminal("\x1b[A\x1b[A\r").Number("Heading", 0, 360, 5)
	if err != nil || v != 10 {
		t.Errorf("Number() = (%v, %v), expected (10, nil)", v, err)
	}

	if err := newTestTerminal("\r").Pages([]string{"Game Over."}); err != nil {
		t.Errorf("Pages() error = %v", err)
	}

	_, err = newTestTerminal("\x03").Choose(nil, []string{"OK"})
	if !errors.Is(err, core.ErrAborted) {
		t.Errorf("Choose() error = %v, expected %v", err, core.ErrAborted)
	}
}
