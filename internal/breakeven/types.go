package breakeven

import (
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
)

// PayoffTarget defines what outcome the solver searches for
type PayoffTarget string

const (
	TargetPayoffMonths  PayoffTarget = "payoff_months"  // Pay the loan off within N months
	TargetInterestSaved PayoffTarget = "interest_saved" // Save at least X in interest
)

// PayoffRequest defines the parameters for a solver run
type PayoffRequest struct {
	Base   domain.LoanConfig `json:"base"`
	Target PayoffTarget      `json:"target"`

	TargetMonths        int             `json:"targetMonths,omitempty"`
	TargetInterestSaved decimal.Decimal `json:"targetInterestSaved,omitempty"`

	// Upper bound on the additional monthly payment (default: the loan amount)
	MaxExtraPayment decimal.Decimal `json:"maxExtraPayment,omitempty"`

	MaxIterations int             `json:"maxIterations"` // Maximum solver iterations
	Tolerance     decimal.Decimal `json:"tolerance"`     // Convergence tolerance for binary search
}

// PayoffResult contains the results of a solver run
type PayoffResult struct {
	Request         PayoffRequest `json:"request"`
	Success         bool          `json:"success"`
	Iterations      int           `json:"iterations"`
	ConvergenceInfo string        `json:"convergenceInfo"`

	// Smallest additional monthly payment meeting the target
	RequiredExtraPayment decimal.Decimal `json:"requiredExtraPayment"`

	// Results at the required payment
	Result                      *domain.AmortizationResult `json:"-"`
	MonthlyPrincipalAndInterest decimal.Decimal            `json:"monthlyPrincipalAndInterest"`
	PayoffMonths                int                        `json:"payoffMonths"`
	TotalInterest               decimal.Decimal            `json:"totalInterest"`
	InterestSaved               decimal.Decimal            `json:"interestSaved"`
	MonthsSaved                 int                        `json:"monthsSaved"`

	// Base loan as configured
	BasePayoffMonths  int             `json:"basePayoffMonths"`
	BaseTotalInterest decimal.Decimal `json:"baseTotalInterest"`
}

// PayoffLadder contains solver results for several payoff horizons
type PayoffLadder struct {
	Base            domain.LoanConfig `json:"base"`
	Results         []PayoffResult    `json:"results"`
	Recommendations []string          `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance in dollars
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.New(1, -2), // $0.01 tolerance
		MaxIterations: 100,
	}
}

// Validate checks if the request is internally consistent
func (r *PayoffRequest) Validate() error {
	switch r.Target {
	case TargetPayoffMonths:
		term := r.Base.TermMonths()
		if r.TargetMonths < 1 {
			return &SolverError{
				Operation: "validate_request",
				Message:   "target months must be at least 1",
			}
		}
		if r.TargetMonths >= term {
			return &SolverError{
				Operation: "validate_request",
				Message:   "target months must be shorter than the loan term",
			}
		}
	case TargetInterestSaved:
		if !r.TargetInterestSaved.IsPositive() {
			return &SolverError{
				Operation: "validate_request",
				Message:   "target interest saved must be positive",
			}
		}
	default:
		return &SolverError{
			Operation: "validate_request",
			Message:   "unsupported payoff target: " + string(r.Target),
		}
	}

	if r.MaxExtraPayment.IsNegative() {
		return &SolverError{
			Operation: "validate_request",
			Message:   "max extra payment cannot be negative",
		}
	}

	return nil
}

// SolverError represents errors from the payoff solver
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
