package transform

import (
	"fmt"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
)

// AddExtraPayment increases the additional monthly principal payment by Amount.
type AddExtraPayment struct {
	Amount decimal.Decimal
}

func (a *AddExtraPayment) Name() string {
	return "add_extra_payment"
}

func (a *AddExtraPayment) Description() string {
	return fmt.Sprintf("Add $%s to the monthly principal payment", a.Amount.StringFixed(2))
}

func (a *AddExtraPayment) Validate(base *domain.LoanConfig) error {
	if err := requireBase(a.Name(), base); err != nil {
		return err
	}
	if !a.Amount.IsPositive() {
		return NewTransformError(a.Name(), "validate", "amount must be positive", nil)
	}
	return nil
}

func (a *AddExtraPayment) Apply(base *domain.LoanConfig) (*domain.LoanConfig, error) {
	modified := base.DeepCopy()
	modified.AdditionalMonthlyPayment = modified.AdditionalMonthlyPayment.Add(a.Amount)
	return modified, nil
}

// SetExtraPayment replaces the additional monthly principal payment.
type SetExtraPayment struct {
	Amount decimal.Decimal
}

func (s *SetExtraPayment) Name() string {
	return "set_extra_payment"
}

func (s *SetExtraPayment) Description() string {
	if s.Amount.IsZero() {
		return "Remove the additional monthly payment"
	}
	return fmt.Sprintf("Pay an additional $%s per month", s.Amount.StringFixed(2))
}

func (s *SetExtraPayment) Validate(base *domain.LoanConfig) error {
	if err := requireBase(s.Name(), base); err != nil {
		return err
	}
	if s.Amount.IsNegative() {
		return NewTransformError(s.Name(), "validate", "amount cannot be negative", nil)
	}
	return nil
}

func (s *SetExtraPayment) Apply(base *domain.LoanConfig) (*domain.LoanConfig, error) {
	modified := base.DeepCopy()
	modified.AdditionalMonthlyPayment = s.Amount
	return modified, nil
}
