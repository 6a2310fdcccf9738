package transform

import (
	"fmt"

	"github.com/rgehrsitz/mortgo/internal/calculation"
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SetTerm changes the loan term.
type SetTerm struct {
	Years int
}

func (s *SetTerm) Name() string {
	return "set_term"
}

func (s *SetTerm) Description() string {
	return fmt.Sprintf("Change the loan term to %d years", s.Years)
}

func (s *SetTerm) Validate(base *domain.LoanConfig) error {
	if err := requireBase(s.Name(), base); err != nil {
		return err
	}
	if s.Years < 1 {
		return NewTransformError(s.Name(), "validate", fmt.Sprintf("years must be at least 1, got %d", s.Years), nil)
	}
	if s.Years*12 > calculation.MaxTermMonths {
		return NewTransformError(s.Name(), "validate",
			fmt.Sprintf("term of %d years exceeds the %d month maximum", s.Years, calculation.MaxTermMonths), nil)
	}
	return nil
}

func (s *SetTerm) Apply(base *domain.LoanConfig) (*domain.LoanConfig, error) {
	modified := base.DeepCopy()
	modified.LoanTermYears = s.Years
	return modified, nil
}

// AdjustRate shifts the annual interest rate by DeltaPercent percentage points.
type AdjustRate struct {
	DeltaPercent decimal.Decimal
}

func (a *AdjustRate) Name() string {
	return "adjust_rate"
}

func (a *AdjustRate) Description() string {
	if a.DeltaPercent.IsNegative() {
		return fmt.Sprintf("Lower the interest rate by %s points", a.DeltaPercent.Neg().String())
	}
	return fmt.Sprintf("Raise the interest rate by %s points", a.DeltaPercent.String())
}

func (a *AdjustRate) Validate(base *domain.LoanConfig) error {
	if err := requireBase(a.Name(), base); err != nil {
		return err
	}
	if a.DeltaPercent.IsZero() {
		return NewTransformError(a.Name(), "validate", "delta cannot be zero", nil)
	}
	if base.AnnualInterestRatePercent.Add(a.DeltaPercent).IsNegative() {
		return NewTransformError(a.Name(), "validate",
			fmt.Sprintf("rate %s%% adjusted by %s would be negative",
				base.AnnualInterestRatePercent.String(), a.DeltaPercent.String()), nil)
	}
	return nil
}

func (a *AdjustRate) Apply(base *domain.LoanConfig) (*domain.LoanConfig, error) {
	modified := base.DeepCopy()
	modified.AnnualInterestRatePercent = modified.AnnualInterestRatePercent.Add(a.DeltaPercent)
	return modified, nil
}
