package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/picotrek/internal/storage"
)

// Service record layout constants
const (
	maxRecords     = 100 // Max records to load
	recordsChrome  = 10  // Rows taken by title, stats, borders and help
	minTableHeight = 3
)

// RecordSource is the subset of the store the records view reads.
type RecordSource interface {
	RecentRecords(limit int) ([]storage.Record, error)
	Stats() (*storage.Stats, error)
}

var _ RecordSource = (*storage.Store)(nil)

// RecordsKeyMap defines the key bindings for the records view.
type RecordsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q", "enter"),
			key.WithHelp("esc/q", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for the service record screen.
type RecordsModel struct {
	records  []storage.Record
	stats    *storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RecordsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRecordsModel creates a records model loaded from src.
func NewRecordsModel(src RecordSource, width, height int) RecordsModel {
	h := help.New()
	h.ShowAll = false

	m := RecordsModel{
		keys:   DefaultRecordsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load(src)
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *RecordsModel) load(src RecordSource) {
	if src == nil {
		return
	}
	records, err := src.RecentRecords(maxRecords)
	if err != nil {
		m.loadErr = err
		return
	}
	stats, err := src.Stats()
	if err != nil {
		m.loadErr = err
		return
	}
	m.records = records
	m.stats = stats
}

// createTable creates a new table with appropriate columns.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Outcome", Width: 13},
		{Title: "Stardate", Width: 9},
		{Title: "Days", Width: 6},
		{Title: "Kills", Width: 5},
		{Title: "Left", Width: 5},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-recordsChrome, minTableHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Reverse(true).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded records.
func (m *RecordsModel) updateTableRows() {
	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = recordRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func recordRow(r storage.Record) table.Row {
	return table.Row{
		fmt.Sprintf("%d", r.ID),
		r.Outcome,
		fmt.Sprintf("%.1f", r.Stardate),
		fmt.Sprintf("%.1f", r.Days),
		fmt.Sprintf("%d", r.HostilesDestroyed),
		fmt.Sprintf("%d", r.HostilesRemaining),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records view.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) || key.Matches(msg, m.keys.Back) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the service record.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SERVICE RECORD", m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.renderStats())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RecordsModel) renderStats() string {
	if m.stats == nil || m.stats.Games == 0 {
		return ""
	}
	return FormatStats(m.stats)
}

// FormatStats renders the aggregate line shown above the table.
func FormatStats(s *storage.Stats) string {
	line := fmt.Sprintf("Games: %d  Victories: %d  Klingons destroyed: %d",
		s.Games, s.Victories, s.HostilesDestroyed)
	if s.FastestVictory > 0 {
		line += fmt.Sprintf("  Fastest victory: %.1f days", s.FastestVictory)
	}
	return line
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Records unavailable:\n" + m.loadErr.Error())
	}
	if len(m.records) == 0 {
		return emptyStyle.Render("No sessions recorded yet.\nFinish a game to start your service record.")
	}
	return m.table.View()
}

// Records returns the loaded records.
func (m RecordsModel) Records() []storage.Record {
	return m.records
}

// RunRecords runs the service record screen.
func RunRecords(src RecordSource, width, height int, opts ...tea.ProgramOption) error {
	model := NewRecordsModel(src, width, height)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...,
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
