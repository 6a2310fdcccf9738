package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/output"
	"github.com/rgehrsitz/mortgo/internal/tui/components"
	"github.com/rgehrsitz/mortgo/internal/tui/tuistyles"
)

// ResultsModel represents the results display scene
type ResultsModel struct {
	report *domain.Report
	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetReport updates the report to display
func (m *ResultsModel) SetReport(report *domain.Report) {
	m.report = report
}

// Report returns the report on display
func (m *ResultsModel) Report() *domain.Report {
	return m.report
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.report == nil || m.report.Result == nil {
		return renderNoResultsState()
	}

	sections := []string{
		renderResultsHeader(m.report),
		"",
		renderProjectedPayments(m.report),
	}
	if m.report.HasAdditionalPayment() {
		sections = append(sections, "", renderImpact(m.report))
	}
	sections = append(sections, "", renderBreakdown(m.report.Breakdown))

	chartWidth := 60
	if m.width > 20 && m.width-8 < chartWidth {
		chartWidth = m.width - 8
	}
	sections = append(sections, "",
		components.NewBalanceChart("Loan Balance Over Time", m.report.YearlyBalances).WithSize(chartWidth, 10).Render(),
		"",
		renderResultsHelp(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderNoResultsState() string {
	return `No results to display.

Enter the loan details on the home screen and press enter to calculate.

Press ESC to go back.`
}

func renderResultsHeader(report *domain.Report) string {
	subtitle := fmt.Sprintf("%s loan at %s%% over %d years",
		tuistyles.FormatCurrency(report.Result.LoanAmount),
		report.Config.AnnualInterestRatePercent.StringFixed(2),
		report.Config.LoanTermYears)
	if report.Config.Name != "" {
		subtitle = report.Config.Name + ": " + subtitle
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		tuistyles.TitleStyle.Render("Projected Payments"),
		tuistyles.SubtitleStyle.Render(subtitle),
	)
}

func renderProjectedPayments(report *domain.Report) string {
	res := report.Result
	cards := []*components.MetricCard{
		components.NewCurrencyCard("Monthly Principal & Interest", res.ActualMonthlyPrincipalAndInterest),
		components.NewCurrencyCard("Total Monthly Payment", res.TotalMonthlyPayment),
		components.NewCurrencyCard("Total Interest", res.TotalInterestPaid),
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid(cards, 3),
		components.NewPayoffBar(res.PayoffMonths(), res.TotalPeriods).Render(),
	)
}

func renderImpact(report *domain.Report) string {
	res := report.Result
	cards := []*components.MetricCard{
		components.NewMetricCard("Months Saved", fmt.Sprintf("%d", res.MonthsSaved)).
			WithDescription(output.FormatMonths(res.PayoffMonths()) + " to payoff"),
		components.NewCurrencyCard("Interest Saved", res.InterestSaved).WithSavings(res.InterestSaved),
	}
	title := tuistyles.SectionStyle.Render(fmt.Sprintf("Impact of Additional %s per Month",
		tuistyles.FormatCurrency(report.Config.AdditionalMonthlyPayment)))
	return lipgloss.JoinVertical(lipgloss.Left, title, components.MetricGrid(cards, 2))
}

func renderBreakdown(lines []domain.BreakdownLine) string {
	var content strings.Builder
	content.WriteString(tuistyles.SectionStyle.Render("Monthly Payment Breakdown"))
	content.WriteString("\n")
	content.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-24s %14s %10s", "Component", "Amount", "Percent")))
	content.WriteString("\n")
	content.WriteString(strings.Repeat("─", 50))
	content.WriteString("\n")
	for _, line := range lines {
		content.WriteString(fmt.Sprintf("%-24s %14s %10s\n",
			line.Component,
			tuistyles.FormatCurrency(line.Amount),
			output.FormatPercentage(line.Percentage)))
	}
	return content.String()
}

func renderResultsHelp() string {
	return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).
		Render("t schedule • h edit loan • ? help • q quit")
}
