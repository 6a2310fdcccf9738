package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityFormatter defines a formatter for sensitivity sweeps
type SensitivityFormatter interface {
	FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error)
	Name() string
}

var errEmptyAnalysis = errors.New("no points in sensitivity analysis")

// FormatParameterValue renders a swept value in the parameter's unit.
func FormatParameterValue(value decimal.Decimal, unit string) string {
	switch unit {
	case "percent":
		return value.StringFixed(3) + "%"
	case "years":
		return value.StringFixed(0) + "y"
	default:
		return FormatCurrency(value)
	}
}

// SensitivityConsoleFormatter formats sensitivity analysis output for console
type SensitivityConsoleFormatter struct{}

func (scf SensitivityConsoleFormatter) Name() string { return "console" }

func (scf SensitivityConsoleFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil || len(analysis.Points) == 0 {
		return "", errEmptyAnalysis
	}
	param := analysis.Parameter
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "SENSITIVITY ANALYSIS: %s\n", strings.ToUpper(strings.ReplaceAll(param.Name, "_", " ")))
	fmt.Fprintln(&buf, strings.Repeat("=", 77))
	fmt.Fprintf(&buf, "Range: %s to %s (%d steps)\n",
		FormatParameterValue(param.MinValue, param.Unit),
		FormatParameterValue(param.MaxValue, param.Unit),
		param.Steps)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-14s %-8s %-14s %-16s %-16s\n", "Value", "Months", "Monthly P&I", "Total Interest", "Interest Saved")
	fmt.Fprintln(&buf, strings.Repeat("-", 77))
	for _, p := range analysis.Points {
		value := FormatParameterValue(p.Value, param.Unit)
		if p.Failed {
			fmt.Fprintf(&buf, "%-14s FAILED: %s\n", value, p.FailureReason)
			continue
		}
		fmt.Fprintf(&buf, "%-14s %-8d %-14s %-16s %-16s\n",
			value,
			p.PayoffMonths,
			FormatCurrency(p.MonthlyPayment),
			FormatCurrency(p.TotalInterestPaid),
			FormatCurrency(p.InterestSaved))
	}
	fmt.Fprintln(&buf)

	s := analysis.Summary
	fmt.Fprintln(&buf, "SUMMARY:")
	if s.FailedPoints < len(analysis.Points) {
		fmt.Fprintf(&buf, "  Lowest interest:  %s at %s\n", FormatCurrency(s.LowestInterest), FormatParameterValue(s.LowestInterestValue, param.Unit))
		fmt.Fprintf(&buf, "  Highest interest: %s at %s\n", FormatCurrency(s.HighestInterest), FormatParameterValue(s.HighestInterestValue, param.Unit))
		fmt.Fprintf(&buf, "  Interest range:   %s\n", FormatCurrency(s.InterestRange))
	}
	if s.FailedPoints > 0 {
		fmt.Fprintf(&buf, "  Failed points:    %d\n", s.FailedPoints)
	}
	return buf.String(), nil
}

// SensitivityCSVFormatter writes one row per swept value
type SensitivityCSVFormatter struct{}

func (scf SensitivityCSVFormatter) Name() string { return "csv" }

func (scf SensitivityCSVFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil || len(analysis.Points) == 0 {
		return "", errEmptyAnalysis
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{analysis.Parameter.Name, "PayoffMonths", "MonthlyPayment", "TotalInterestPaid", "TotalCost", "InterestSaved", "Failed", "FailureReason"}); err != nil {
		return "", err
	}
	for _, p := range analysis.Points {
		row := []string{
			p.Value.String(),
			strconv.Itoa(p.PayoffMonths),
			p.MonthlyPayment.StringFixed(2),
			p.TotalInterestPaid.StringFixed(2),
			p.TotalCost.StringFixed(2),
			p.InterestSaved.StringFixed(2),
			strconv.FormatBool(p.Failed),
			p.FailureReason,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SensitivityJSONFormatter formats the sweep as indented JSON
type SensitivityJSONFormatter struct{}

func (sjf SensitivityJSONFormatter) Name() string { return "json" }

func (sjf SensitivityJSONFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", errEmptyAnalysis
	}
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// NewSensitivityFormatter creates a sensitivity formatter based on the format name
func NewSensitivityFormatter(format string) SensitivityFormatter {
	switch NormalizeFormatName(format) {
	case "csv":
		return SensitivityCSVFormatter{}
	case "json":
		return SensitivityJSONFormatter{}
	default:
		return SensitivityConsoleFormatter{}
	}
}
