package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mortgo/internal/tui/tuistyles"
)

// GlobalKeyMap holds the application-wide key bindings
type GlobalKeyMap struct {
	Home     key.Binding
	Results  key.Binding
	Schedule key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// GlobalKeys are available outside the loan form; in the form only Help and ctrl+c apply.
var GlobalKeys = GlobalKeyMap{
	Home:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "edit loan")),
	Results:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "results")),
	Schedule: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "schedule table")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q/ctrl+c", "quit")),
}

// ShortHelp implements help.KeyMap
func (k GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Results, k.Schedule, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Results, k.Schedule},
		{k.Help, k.Back, k.Quit},
	}
}

type formKeyMap struct{ homeKeyMap }

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Prev, k.Breakdown}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Breakdown}, {k.Next, k.Prev}}
}

type scheduleKeyMap struct{}

func (scheduleKeyMap) ShortHelp() []key.Binding { return []key.Binding{keyTop, keyBottom} }

func (k scheduleKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// HelpModel renders the key binding reference
type HelpModel struct {
	help help.Model
}

// NewHelpModel creates the help scene
func NewHelpModel() *HelpModel {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = tuistyles.HelpKeyStyle
	h.Styles.FullDesc = tuistyles.HelpDescStyle
	h.Styles.ShortKey = tuistyles.HelpKeyStyle
	h.Styles.ShortDesc = tuistyles.HelpDescStyle
	return &HelpModel{help: h}
}

// SetSize updates the help width
func (m *HelpModel) SetSize(width, height int) {
	m.help.Width = width
}

// Update handles messages for the help scene
func (m *HelpModel) Update(msg tea.Msg) (*HelpModel, tea.Cmd) {
	return m, nil
}

// ShortHelpView renders the one-line binding summary used in the status bar
func (m *HelpModel) ShortHelpView() string {
	return m.help.ShortHelpView(GlobalKeys.ShortHelp())
}

// View renders the help scene
func (m *HelpModel) View() string {
	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render("mortgo - Mortgage Amortization Calculator"))
	content.WriteString("\n\n")

	section := func(title string, km help.KeyMap) {
		content.WriteString(tuistyles.SectionStyle.Render(title))
		content.WriteString("\n")
		content.WriteString(m.help.View(km))
		content.WriteString("\n\n")
	}
	section("Navigation", GlobalKeys)
	section("Loan Form", formKeyMap{homeKeys})
	section("Schedule", scheduleKeyMap{})

	content.WriteString(tuistyles.SubtitleStyle.Render(
		"The payment assumes a fixed rate. Extra repayments go straight to principal.\n" +
			"The down payment must be at least 3% of the home value."))
	return tuistyles.BorderStyle.Render(content.String())
}
