package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/mortgo/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one metric per row).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, ErrNilReport
	}
	res := report.Result
	rows := [][]string{
		{"Metric", "Value"},
		{"Home Value", report.Config.HomeValue.StringFixed(2)},
		{"Down Payment", report.Config.DownPayment.StringFixed(2)},
		{"Loan Amount", res.LoanAmount.StringFixed(2)},
		{"Interest Rate Percent", report.Config.AnnualInterestRatePercent.String()},
		{"Loan Term Years", strconv.Itoa(report.Config.LoanTermYears)},
		{"Additional Monthly Payment", report.Config.AdditionalMonthlyPayment.StringFixed(2)},
		{"Base Principal And Interest", res.BasePrincipalAndInterest.StringFixed(2)},
		{"Monthly Principal And Interest", res.ActualMonthlyPrincipalAndInterest.StringFixed(2)},
		{"Total Monthly Payment", res.TotalMonthlyPayment.StringFixed(2)},
		{"Total Interest Paid", res.TotalInterestPaid.StringFixed(2)},
		{"Total Cost", res.TotalCost.StringFixed(2)},
		{"Theoretical Total Interest", res.TheoreticalTotalInterest.StringFixed(2)},
		{"Payoff Months", strconv.Itoa(res.PayoffMonths())},
		{"Final Balance", res.FinalBalance().StringFixed(2)},
		{"Months Saved", strconv.Itoa(res.MonthsSaved)},
		{"Interest Saved", res.InterestSaved.StringFixed(2)},
	}
	return writeCSV(rows)
}

// ScheduleCSVExporter writes one row per scheduled payment.
type ScheduleCSVExporter struct{}

func (s ScheduleCSVExporter) Name() string { return "schedule-csv" }

func (s ScheduleCSVExporter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, ErrNilReport
	}
	rows := make([][]string, 0, len(report.Result.Schedule)+1)
	rows = append(rows, []string{"Month", "Payment", "Principal", "Interest", "Remaining Balance", "Year"})
	for _, e := range report.Result.Schedule {
		rows = append(rows, []string{
			strconv.Itoa(e.Period),
			e.Payment.StringFixed(2),
			e.Principal.StringFixed(2),
			e.Interest.StringFixed(2),
			e.RemainingBalance.StringFixed(2),
			strconv.Itoa(e.Year),
		})
	}
	return writeCSV(rows)
}

// YearlyCSVExporter writes the lowest balance reached in each loan year.
type YearlyCSVExporter struct{}

func (y YearlyCSVExporter) Name() string { return "yearly-csv" }

func (y YearlyCSVExporter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, ErrNilReport
	}
	rows := make([][]string, 0, len(report.YearlyBalances)+1)
	rows = append(rows, []string{"Year", "Remaining Balance"})
	for _, yb := range report.YearlyBalances {
		rows = append(rows, []string{strconv.Itoa(yb.Year), yb.Balance.StringFixed(2)})
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
