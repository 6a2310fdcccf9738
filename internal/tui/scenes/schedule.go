package scenes

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/tui/tuistyles"
)

var scheduleColumns = []table.Column{
	{Title: "Month", Width: 6},
	{Title: "Year", Width: 5},
	{Title: "Payment", Width: 13},
	{Title: "Principal", Width: 13},
	{Title: "Interest", Width: 13},
	{Title: "Remaining Balance", Width: 17},
}

var (
	keyTop    = key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "first month"))
	keyBottom = key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last month"))
)

// ScheduleModel shows the month-by-month amortization table
type ScheduleModel struct {
	table  table.Model
	rows   int
	width  int
	height int
}

// NewScheduleModel creates an empty schedule table
func NewScheduleModel() *ScheduleModel {
	t := table.New(
		table.WithColumns(scheduleColumns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(tuistyles.ColorBorder).
		BorderBottom(true).
		Foreground(tuistyles.ColorSecondary).
		Bold(true)
	styles.Selected = tuistyles.TableHighlightStyle
	t.SetStyles(styles)
	return &ScheduleModel{table: t}
}

// SetSchedule loads schedule entries into the table
func (m *ScheduleModel) SetSchedule(entries []domain.ScheduleEntry) {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			strconv.Itoa(e.Period),
			strconv.Itoa(e.Year),
			tuistyles.FormatCurrency(e.Payment),
			tuistyles.FormatCurrency(e.Principal),
			tuistyles.FormatCurrency(e.Interest),
			tuistyles.FormatCurrency(e.RemainingBalance),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.rows = len(rows)
}

// Rows returns the number of schedule rows loaded
func (m *ScheduleModel) Rows() int {
	return m.rows
}

// Cursor returns the highlighted row index
func (m *ScheduleModel) Cursor() int {
	return m.table.Cursor()
}

// SetSize fits the table to the terminal height
func (m *ScheduleModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if h := height - 10; h > 5 {
		m.table.SetHeight(h)
	}
}

// Update handles messages for the schedule scene
func (m *ScheduleModel) Update(msg tea.Msg) (*ScheduleModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyTop):
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, keyBottom):
			m.table.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the schedule table
func (m *ScheduleModel) View() string {
	if m.rows == 0 {
		return tuistyles.BorderStyle.Render("No schedule yet. Calculate a loan first.")
	}
	footer := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).
		Render("↑/↓ scroll • pgup/pgdn page • g/G first/last • r results • h edit loan")
	return lipgloss.JoinVertical(lipgloss.Left,
		tuistyles.TitleStyle.Render("Amortization Schedule"),
		tuistyles.BorderStyle.Render(m.table.View()),
		footer,
	)
}
