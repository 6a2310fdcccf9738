package output

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/rgehrsitz/mortgo/internal/domain"
)

// ErrNilReport is returned when a formatter is handed a report without a result.
var ErrNilReport = errors.New("report has no amortization result")

// ConsoleFormatter renders the summary view: projected payments, the extra payment impact,
// the monthly breakdown and the yearly balance series.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, ErrNilReport
	}
	cfg := report.Config
	res := report.Result

	var buf bytes.Buffer
	title := "MORTGAGE AMORTIZATION SUMMARY"
	if cfg.Name != "" {
		title += ": " + cfg.Name
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", 62))

	fmt.Fprintln(&buf, "LOAN DETAILS")
	fmt.Fprintf(&buf, "  %-30s %s\n", "Home Value:", FormatCurrency(cfg.HomeValue))
	fmt.Fprintf(&buf, "  %-30s %s (%s)\n", "Down Payment:", FormatCurrency(cfg.DownPayment), FormatPercentage(cfg.DownPaymentPercent()))
	fmt.Fprintf(&buf, "  %-30s %s\n", "Loan Amount:", FormatCurrency(res.LoanAmount))
	fmt.Fprintf(&buf, "  %-30s %s%%\n", "Interest Rate:", cfg.AnnualInterestRatePercent.StringFixed(2))
	fmt.Fprintf(&buf, "  %-30s %d years (%d months)\n", "Loan Term:", cfg.LoanTermYears, res.TotalPeriods)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PROJECTED PAYMENTS")
	fmt.Fprintf(&buf, "  %-30s %s\n", "Monthly Principal & Interest:", FormatCurrency(res.ActualMonthlyPrincipalAndInterest))
	fmt.Fprintf(&buf, "  %-30s %s\n", "Total Monthly Payment:", FormatCurrency(res.TotalMonthlyPayment))
	fmt.Fprintf(&buf, "  %-30s %s\n", "Total Interest:", FormatCurrency(res.TotalInterestPaid))
	fmt.Fprintf(&buf, "  %-30s %s\n", "Total Cost:", FormatCurrency(res.TotalCost))
	fmt.Fprintf(&buf, "  %-30s %s\n", "Payoff:", FormatMonths(res.PayoffMonths()))
	fmt.Fprintln(&buf)

	if report.HasAdditionalPayment() {
		fmt.Fprintf(&buf, "IMPACT OF ADDITIONAL %s PER MONTH\n", FormatCurrency(cfg.AdditionalMonthlyPayment))
		fmt.Fprintf(&buf, "  %-30s %d\n", "Months Saved:", res.MonthsSaved)
		fmt.Fprintf(&buf, "  %-30s %s\n", "Interest Saved:", FormatCurrency(res.InterestSaved))
		fmt.Fprintln(&buf)
	}

	if len(report.Breakdown) > 0 {
		fmt.Fprintln(&buf, "MONTHLY PAYMENT BREAKDOWN")
		fmt.Fprintf(&buf, "  %-24s %14s %10s\n", "Component", "Amount", "Percent")
		fmt.Fprintf(&buf, "  %s\n", strings.Repeat("-", 50))
		for _, line := range report.Breakdown {
			fmt.Fprintf(&buf, "  %-24s %14s %10s\n", line.Component, FormatCurrency(line.Amount), FormatPercentage(line.Percentage))
		}
		fmt.Fprintln(&buf)
	}

	if len(report.YearlyBalances) > 0 {
		fmt.Fprintln(&buf, "LOAN BALANCE OVER TIME")
		fmt.Fprintf(&buf, "  %-6s %16s\n", "Year", "Balance")
		for _, yb := range report.YearlyBalances {
			fmt.Fprintf(&buf, "  %-6d %16s\n", yb.Year, FormatCurrency(yb.Balance))
		}
	}

	return buf.Bytes(), nil
}

// ScheduleFormatter renders the full month-by-month schedule as a text table.
type ScheduleFormatter struct{}

func (s ScheduleFormatter) Name() string { return "schedule" }

func (s ScheduleFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, ErrNilReport
	}
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "AMORTIZATION SCHEDULE")
	fmt.Fprintln(&buf, strings.Repeat("=", 78))
	fmt.Fprintf(&buf, "%-6s %-5s %14s %14s %14s %18s\n", "Month", "Year", "Payment", "Principal", "Interest", "Remaining Balance")
	fmt.Fprintln(&buf, strings.Repeat("-", 78))
	for _, e := range report.Result.Schedule {
		fmt.Fprintf(&buf, "%-6d %-5d %14s %14s %14s %18s\n",
			e.Period, e.Year,
			FormatCurrency(e.Payment),
			FormatCurrency(e.Principal),
			FormatCurrency(e.Interest),
			FormatCurrency(e.RemainingBalance))
	}
	fmt.Fprintln(&buf, strings.Repeat("-", 78))
	fmt.Fprintf(&buf, "%-12s %14s %14s %14s\n", "Totals",
		FormatCurrency(report.Result.TotalPayments()),
		FormatCurrency(report.Result.LoanAmount),
		FormatCurrency(report.Result.TotalInterestPaid))
	return buf.Bytes(), nil
}
