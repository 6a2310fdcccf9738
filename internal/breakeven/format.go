package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/mortgo/internal/output"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a solver result
func (tf *TableFormatter) Format(result *PayoffResult) string {
	var sb strings.Builder

	sb.WriteString("PAYOFF SOLVER RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	sb.WriteString(fmt.Sprintf("Target:              %s\n", tf.describeTarget(result.Request)))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("REQUIRED PAYMENT\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Additional Monthly Payment: %s\n", tf.formatCurrency(result.RequiredExtraPayment)))
	sb.WriteString(fmt.Sprintf("Monthly Principal & Interest: %s\n", tf.formatCurrency(result.MonthlyPrincipalAndInterest)))
	sb.WriteString("\n")

	sb.WriteString("PROJECTED RESULTS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Payoff:          %s (%d months)\n", formatMonths(result.PayoffMonths), result.PayoffMonths))
	sb.WriteString(fmt.Sprintf("Total Interest:  %s\n", tf.formatCurrency(result.TotalInterest)))
	sb.WriteString(fmt.Sprintf("Interest Saved:  %s\n", tf.formatCurrency(result.InterestSaved)))
	sb.WriteString(fmt.Sprintf("Months Saved:    %d\n", result.MonthsSaved))
	sb.WriteString("\n")

	sb.WriteString("COMPARISON TO BASE LOAN\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	monthsDiff := result.PayoffMonths - result.BasePayoffMonths
	sb.WriteString(fmt.Sprintf("Payoff Change:   %d months\n", monthsDiff))
	interestDiff := result.TotalInterest.Sub(result.BaseTotalInterest)
	sb.WriteString(fmt.Sprintf("Interest Change: %s%s\n", tf.deltaSymbol(interestDiff), tf.formatCurrency(interestDiff.Abs())))
	sb.WriteString("\n")

	return sb.String()
}

// FormatLadder formats results for several payoff horizons
func (tf *TableFormatter) FormatLadder(ladder *PayoffLadder) string {
	var sb strings.Builder

	sb.WriteString("PAYOFF HORIZON COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	sb.WriteString(fmt.Sprintf("%-20s %15s %15s %12s %15s\n",
		"Horizon", "Extra/Month", "Monthly P&I", "Interest", "Saved"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, res := range ladder.Results {
		sb.WriteString(fmt.Sprintf("%-20s %15s %15s %12s %15s\n",
			tf.truncate(formatMonths(res.Request.TargetMonths), 20),
			tf.formatCurrency(res.RequiredExtraPayment),
			tf.formatCurrency(res.MonthlyPrincipalAndInterest),
			"$"+tf.formatShort(res.TotalInterest),
			"$"+tf.formatShort(res.BaseTotalInterest.Sub(res.TotalInterest))))
	}
	sb.WriteString("\n")

	if len(ladder.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range ladder.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *PayoffResult) (string, error) {
	return jf.marshal(result)
}

// FormatLadder formats a payoff ladder as JSON
func (jf *JSONFormatter) FormatLadder(ladder *PayoffLadder) (string, error) {
	return jf.marshal(ladder)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) describeTarget(req PayoffRequest) string {
	switch req.Target {
	case TargetPayoffMonths:
		return fmt.Sprintf("pay off within %s", formatMonths(req.TargetMonths))
	case TargetInterestSaved:
		return fmt.Sprintf("save at least %s in interest", tf.formatCurrency(req.TargetInterestSaved))
	default:
		return string(req.Target)
	}
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatCurrency(d decimal.Decimal) string {
	return output.FormatCurrency(d)
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func formatMonths(months int) string {
	years, rem := months/12, months%12
	unit := "years"
	if years == 1 {
		unit = "year"
	}
	switch {
	case years == 0:
		return fmt.Sprintf("%d months", rem)
	case rem == 0:
		return fmt.Sprintf("%d %s", years, unit)
	default:
		return fmt.Sprintf("%d %s %d months", years, unit, rem)
	}
}

func decimalFromInt(i int) decimal.Decimal {
	return decimal.NewFromInt(int64(i))
}
