package transform

import (
	"fmt"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SetDownPayment replaces the down payment with a fixed amount.
type SetDownPayment struct {
	Amount decimal.Decimal
}

func (s *SetDownPayment) Name() string {
	return "set_down_payment"
}

func (s *SetDownPayment) Description() string {
	return fmt.Sprintf("Put $%s down", s.Amount.StringFixed(2))
}

func (s *SetDownPayment) Validate(base *domain.LoanConfig) error {
	if err := requireBase(s.Name(), base); err != nil {
		return err
	}
	return checkDownPayment(s.Name(), base.HomeValue, s.Amount)
}

func (s *SetDownPayment) Apply(base *domain.LoanConfig) (*domain.LoanConfig, error) {
	modified := base.DeepCopy()
	modified.DownPayment = s.Amount
	return modified, nil
}

// SetDownPaymentPercent sets the down payment to a percentage of home value.
type SetDownPaymentPercent struct {
	Percent decimal.Decimal // 20 == 20%
}

func (s *SetDownPaymentPercent) Name() string {
	return "set_down_payment_percent"
}

func (s *SetDownPaymentPercent) Description() string {
	return fmt.Sprintf("Put %s%% of the home value down", s.Percent.String())
}

func (s *SetDownPaymentPercent) Validate(base *domain.LoanConfig) error {
	if err := requireBase(s.Name(), base); err != nil {
		return err
	}
	if s.Percent.IsNegative() || s.Percent.GreaterThan(decimal.NewFromInt(100)) {
		return NewTransformError(s.Name(), "validate",
			fmt.Sprintf("percent must be between 0 and 100, got %s", s.Percent.String()), nil)
	}
	return checkDownPayment(s.Name(), base.HomeValue, s.amount(base.HomeValue))
}

func (s *SetDownPaymentPercent) Apply(base *domain.LoanConfig) (*domain.LoanConfig, error) {
	modified := base.DeepCopy()
	modified.DownPayment = s.amount(base.HomeValue)
	return modified, nil
}

func (s *SetDownPaymentPercent) amount(homeValue decimal.Decimal) decimal.Decimal {
	return homeValue.Mul(s.Percent).Div(decimal.NewFromInt(100))
}

func checkDownPayment(name string, homeValue, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewTransformError(name, "validate", "down payment cannot be negative", nil)
	}
	minimum := domain.MinimumDownPayment(homeValue)
	if amount.LessThan(minimum) {
		return NewTransformError(name, "validate",
			fmt.Sprintf("down payment must be at least 3%% of home value ($%s)", minimum.StringFixed(2)), nil)
	}
	return nil
}
