package calculation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration marks a loan configuration that violates a structural precondition.
	ErrInvalidConfiguration = errors.New("invalid loan configuration")

	// ErrNonAmortizingLoan marks a loan whose payment can never reduce the principal.
	ErrNonAmortizingLoan = errors.New("loan does not amortize")
)

// LoanError describes why a loan could not be scheduled.
type LoanError struct {
	Op     string
	Field  string
	Reason string
	Err    error
}

func (e *LoanError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
}

func (e *LoanError) Unwrap() error {
	return e.Err
}

func invalidField(field, reason string) error {
	return &LoanError{Op: "validate", Field: field, Reason: reason, Err: ErrInvalidConfiguration}
}

func nonAmortizing(reason string) error {
	return &LoanError{Op: "amortize", Reason: reason, Err: ErrNonAmortizingLoan}
}
