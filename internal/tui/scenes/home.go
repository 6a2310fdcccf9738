package scenes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/mortgo/internal/tui/tuistyles"
)

// Form field indices
const (
	FieldHomeValue = iota
	FieldDownPayment
	FieldInterestRate
	FieldTermYears
	FieldExtraPayment
	FieldPropertyTax
	FieldHomeInsurance
	FieldPMI
	FieldHOAFees
	FieldOtherCosts
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Home Value",
	"Down Payment",
	"Interest Rate %",
	"Loan Term (Years)",
	"Additional Repayment",
	"Property Tax",
	"Home Insurance",
	"PMI",
	"HOA Fees",
	"Total Monthly Costs",
}

// maxInterestRatePercent is the form's upper bound on the annual rate.
var maxInterestRatePercent = decimal.NewFromInt(100)

type homeKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Breakdown key.Binding
	Submit    key.Binding
}

var homeKeys = homeKeyMap{
	Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "previous field")),
	Breakdown: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "toggle cost breakdown")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
}

// HomeModel is the loan parameter form
type HomeModel struct {
	name         string
	inputs       []textinput.Model
	focus        int
	useBreakdown bool
	err          error
	width        int
	height       int
}

// NewHomeModel creates the form pre-filled with the default loan
func NewHomeModel() *HomeModel {
	m := &HomeModel{inputs: make([]textinput.Model, fieldCount)}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 16
		ti.Width = 18
		m.inputs[i] = ti
	}
	m.SetConfig(domain.DefaultLoanConfig())
	return m
}

// SetConfig fills the form from a loan configuration
func (m *HomeModel) SetConfig(cfg domain.LoanConfig) {
	m.name = cfg.Name
	m.inputs[FieldHomeValue].SetValue(cfg.HomeValue.String())
	m.inputs[FieldDownPayment].SetValue(cfg.DownPayment.String())
	m.inputs[FieldInterestRate].SetValue(cfg.AnnualInterestRatePercent.String())
	m.inputs[FieldTermYears].SetValue(strconv.Itoa(cfg.LoanTermYears))
	m.inputs[FieldExtraPayment].SetValue(cfg.AdditionalMonthlyPayment.String())
	m.inputs[FieldPropertyTax].SetValue(cfg.MonthlyCosts.PropertyTax.String())
	m.inputs[FieldHomeInsurance].SetValue(cfg.MonthlyCosts.HomeInsurance.String())
	m.inputs[FieldPMI].SetValue(cfg.MonthlyCosts.PMI.String())
	m.inputs[FieldHOAFees].SetValue(cfg.MonthlyCosts.HOAFees.String())
	m.inputs[FieldOtherCosts].SetValue(cfg.MonthlyCosts.Flat.String())
	m.useBreakdown = cfg.MonthlyCosts.UseBreakdown
	m.err = nil
	m.setFocus(0)
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetError shows an error below the form
func (m *HomeModel) SetError(err error) {
	m.err = err
}

// Err returns the current form error, if any
func (m *HomeModel) Err() error {
	return m.err
}

// Focused returns the index of the focused field
func (m *HomeModel) Focused() int {
	return m.visibleFields()[m.focus]
}

// SetValue replaces the text of a field
func (m *HomeModel) SetValue(field int, value string) {
	m.inputs[field].SetValue(value)
}

// UseBreakdown reports whether itemized costs are being entered
func (m *HomeModel) UseBreakdown() bool {
	return m.useBreakdown
}

// visibleFields lists the fields shown for the current cost mode
func (m *HomeModel) visibleFields() []int {
	fields := []int{FieldHomeValue, FieldDownPayment, FieldInterestRate, FieldTermYears, FieldExtraPayment}
	if m.useBreakdown {
		return append(fields, FieldPropertyTax, FieldHomeInsurance, FieldPMI, FieldHOAFees)
	}
	return append(fields, FieldOtherCosts)
}

func (m *HomeModel) setFocus(pos int) tea.Cmd {
	visible := m.visibleFields()
	if pos < 0 {
		pos = len(visible) - 1
	}
	if pos >= len(visible) {
		pos = 0
	}
	m.focus = pos
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[visible[pos]].Focus()
}

// Update handles messages for the form
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, homeKeys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, homeKeys.Prev):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(msg, homeKeys.Breakdown):
			m.useBreakdown = !m.useBreakdown
			return m, m.setFocus(0)
		case key.Matches(msg, homeKeys.Submit):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	field := m.Focused()
	m.inputs[field], cmd = m.inputs[field].Update(msg)
	return m, cmd
}

// submit validates the form; only a valid loan produces a calculation request.
func (m *HomeModel) submit() tea.Cmd {
	cfg, err := m.BuildConfig()
	if err != nil {
		m.err = err
		return func() tea.Msg { return tuimsg.ValidationFailedMsg{Err: err} }
	}
	m.err = nil
	return func() tea.Msg { return tuimsg.CalculateRequestedMsg{Config: cfg} }
}

// BuildConfig parses and validates the form into a loan configuration
func (m *HomeModel) BuildConfig() (domain.LoanConfig, error) {
	var errs []error
	money := func(field int) decimal.Decimal {
		v, err := parseAmount(m.inputs[field].Value())
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", fieldLabels[field], err))
			return decimal.Zero
		}
		if v.IsNegative() {
			errs = append(errs, fmt.Errorf("%s cannot be negative", fieldLabels[field]))
		}
		return v
	}

	cfg := domain.LoanConfig{
		Name:                      m.name,
		HomeValue:                 money(FieldHomeValue),
		DownPayment:               money(FieldDownPayment),
		AnnualInterestRatePercent: money(FieldInterestRate),
		AdditionalMonthlyPayment:  money(FieldExtraPayment),
	}

	if m.useBreakdown {
		cfg.MonthlyCosts = domain.MonthlyCosts{
			UseBreakdown:  true,
			PropertyTax:   money(FieldPropertyTax),
			HomeInsurance: money(FieldHomeInsurance),
			PMI:           money(FieldPMI),
			HOAFees:       money(FieldHOAFees),
		}
	} else {
		cfg.MonthlyCosts = domain.FlatMonthlyCosts(money(FieldOtherCosts))
	}

	years, err := strconv.Atoi(strings.TrimSpace(m.inputs[FieldTermYears].Value()))
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("%s must be a whole number of years", fieldLabels[FieldTermYears]))
	case years < 1:
		errs = append(errs, fmt.Errorf("%s must be at least 1", fieldLabels[FieldTermYears]))
	case years > 50:
		errs = append(errs, fmt.Errorf("%s cannot exceed 50", fieldLabels[FieldTermYears]))
	}
	cfg.LoanTermYears = years

	if cfg.AnnualInterestRatePercent.GreaterThan(maxInterestRatePercent) {
		errs = append(errs, fmt.Errorf("%s cannot exceed 100", fieldLabels[FieldInterestRate]))
	}

	if len(errs) == 0 {
		if minDown := domain.MinimumDownPayment(cfg.HomeValue); cfg.DownPayment.LessThan(minDown) {
			errs = append(errs, fmt.Errorf("down payment must be at least 3%% of home value (%s)", tuistyles.FormatCurrency(minDown)))
		}
	}

	if len(errs) > 0 {
		return domain.LoanConfig{}, errors.Join(errs...)
	}
	return cfg, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if cleaned == "" {
		return decimal.Zero, errors.New("value is required")
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// View renders the form
func (m *HomeModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.Render("Mortgage Payment Calculator"))
	content.WriteString("\n\n")
	content.WriteString(tuistyles.SectionStyle.Render("Input Data"))
	content.WriteString("\n")

	focused := m.Focused()
	row := func(field int) {
		labelStyle := tuistyles.FieldLabelStyle
		if field == focused {
			labelStyle = tuistyles.FocusedLabelStyle
		}
		content.WriteString("  ")
		content.WriteString(labelStyle.Render(fieldLabels[field]))
		content.WriteString(m.inputs[field].View())
		content.WriteString("\n")
	}

	for _, f := range []int{FieldHomeValue, FieldDownPayment, FieldInterestRate, FieldTermYears, FieldExtraPayment} {
		row(f)
	}

	content.WriteString("\n")
	mode := "flat"
	if m.useBreakdown {
		mode = "itemized"
	}
	content.WriteString(tuistyles.SectionStyle.Render("Additional Monthly Costs"))
	content.WriteString(tuistyles.SubtitleStyle.Render(" (" + mode + ", ctrl+b to switch)"))
	content.WriteString("\n")
	for _, f := range m.visibleFields()[FieldExtraPayment+1:] {
		row(f)
	}

	if m.err != nil {
		content.WriteString("\n")
		for _, line := range strings.Split(m.err.Error(), "\n") {
			content.WriteString(tuistyles.ErrorStyle.Render("✗ " + line))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true).
		Render("enter calculate • tab next field • ? help • ctrl+c quit"))

	return tuistyles.BorderStyle.Render(content.String())
}
