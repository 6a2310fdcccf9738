package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxSensitivitySteps caps the number of points in one sweep.
const MaxSensitivitySteps = 200

// SensitivityAnalyzer performs parameter sweep analysis
type SensitivityAnalyzer struct {
	engine *AmortizationEngine
}

// NewSensitivityAnalyzer creates a new sensitivity analyzer
func NewSensitivityAnalyzer(engine *AmortizationEngine) *SensitivityAnalyzer {
	if engine == nil {
		engine = NewAmortizationEngine()
	}
	return &SensitivityAnalyzer{engine: engine}
}

// AnalyzeParameter sweeps one loan input between MinValue and MaxValue. Values that fail
// validation or never amortize are recorded as failed points and the sweep continues.
func (sa *SensitivityAnalyzer) AnalyzeParameter(
	ctx context.Context,
	base domain.LoanConfig,
	parameter domain.SensitivityParameter,
) (*domain.SensitivityAnalysis, error) {
	if err := validateParameter(parameter); err != nil {
		return nil, err
	}
	if parameter.Unit == "" {
		parameter.Unit = domain.UnitForParameter(parameter.Name)
	}

	values := generateParameterValues(parameter)
	points := make([]domain.SensitivityPoint, 0, len(values))

	for _, value := range values {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		modified := modifyLoanParameter(base, parameter.Name, value)
		result, err := sa.engine.Compute(modified)
		if err != nil {
			if errors.Is(err, ErrNonAmortizingLoan) || errors.Is(err, ErrInvalidConfiguration) {
				points = append(points, domain.SensitivityPoint{
					Value:         value,
					Failed:        true,
					FailureReason: err.Error(),
				})
				continue
			}
			return nil, fmt.Errorf("failed to compute %s=%s: %w", parameter.Name, value.String(), err)
		}

		points = append(points, domain.SensitivityPoint{
			Value:             value,
			PayoffMonths:      result.PayoffMonths(),
			MonthlyPayment:    result.ActualMonthlyPrincipalAndInterest,
			TotalInterestPaid: result.TotalInterestPaid,
			TotalCost:         result.TotalCost,
			InterestSaved:     result.InterestSaved,
		})
	}

	return &domain.SensitivityAnalysis{
		Base:      base,
		Parameter: parameter,
		Points:    points,
		Summary:   summarizeSensitivity(points),
	}, nil
}

func validateParameter(p domain.SensitivityParameter) error {
	switch p.Name {
	case domain.ParamExtraPayment, domain.ParamInterestRate, domain.ParamTermYears, domain.ParamDownPayment:
	default:
		return fmt.Errorf("unknown sensitivity parameter %q", p.Name)
	}
	if p.Steps < 1 || p.Steps > MaxSensitivitySteps {
		return fmt.Errorf("steps must be between 1 and %d, got %d", MaxSensitivitySteps, p.Steps)
	}
	if p.MaxValue.LessThan(p.MinValue) {
		return fmt.Errorf("max value %s is below min value %s", p.MaxValue.String(), p.MinValue.String())
	}
	return nil
}

// generateParameterValues generates evenly spaced values for a parameter sweep
func generateParameterValues(param domain.SensitivityParameter) []decimal.Decimal {
	if param.Steps <= 1 {
		return []decimal.Decimal{param.MinValue}
	}

	values := make([]decimal.Decimal, 0, param.Steps)
	stepSize := param.MaxValue.Sub(param.MinValue).Div(decimal.NewFromInt(int64(param.Steps - 1)))
	for i := 0; i < param.Steps; i++ {
		values = append(values, param.MinValue.Add(stepSize.Mul(decimal.NewFromInt(int64(i)))))
	}
	// Land exactly on the upper bound regardless of division rounding.
	values[len(values)-1] = param.MaxValue

	if param.Name == domain.ParamTermYears {
		for i := range values {
			values[i] = values[i].Round(0)
		}
	}
	return values
}

// modifyLoanParameter returns a copy of base with one input replaced
func modifyLoanParameter(base domain.LoanConfig, paramName string, value decimal.Decimal) domain.LoanConfig {
	modified := base
	switch paramName {
	case domain.ParamExtraPayment:
		modified.AdditionalMonthlyPayment = value
	case domain.ParamInterestRate:
		modified.AnnualInterestRatePercent = value
	case domain.ParamTermYears:
		modified.LoanTermYears = int(value.IntPart())
	case domain.ParamDownPayment:
		modified.DownPayment = value
	}
	return modified
}

func summarizeSensitivity(points []domain.SensitivityPoint) domain.SensitivitySummary {
	summary := domain.SensitivitySummary{}
	found := false
	for _, p := range points {
		if p.Failed {
			summary.FailedPoints++
			continue
		}
		if !found || p.TotalInterestPaid.LessThan(summary.LowestInterest) {
			summary.LowestInterest = p.TotalInterestPaid
			summary.LowestInterestValue = p.Value
		}
		if !found || p.TotalInterestPaid.GreaterThan(summary.HighestInterest) {
			summary.HighestInterest = p.TotalInterestPaid
			summary.HighestInterestValue = p.Value
		}
		found = true
	}
	summary.InterestRange = summary.HighestInterest.Sub(summary.LowestInterest)
	return summary
}
