package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Monthly Payment",
		"Principal & Interest",
		"Payoff Months",
		"Total Interest",
		"Total Cost",
		"Interest Saved",
		"Monthly Payment Diff",
		"Payoff Months Diff",
		"Interest Diff from Base",
		"Interest % Change",
		"Total Cost Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.MonthlyPayment.StringFixed(2),
		result.PrincipalAndInterest.StringFixed(2),
		strconv.Itoa(result.PayoffMonths),
		result.TotalInterest.StringFixed(2),
		result.TotalCost.StringFixed(2),
		result.InterestSaved.StringFixed(2),
		result.MonthlyPaymentDiff.StringFixed(2),
		strconv.Itoa(result.PayoffMonthsDiff),
		result.InterestDiffFromBase.StringFixed(2),
		result.InterestPctFromBase.StringFixed(2),
		result.TotalCostDiffFromBase.StringFixed(2),
	}
}
