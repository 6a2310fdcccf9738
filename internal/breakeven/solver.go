package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/mortgo/internal/calculation"
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/transform"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds the additional monthly payment needed to reach a payoff goal
type Solver struct {
	CalcEngine *calculation.AmortizationEngine
	Options    SolverOptions
}

// NewSolver creates a new payoff solver
func NewSolver(calcEngine *calculation.AmortizationEngine, options SolverOptions) *Solver {
	if calcEngine == nil {
		calcEngine = calculation.NewAmortizationEngine()
	}
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.AmortizationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Optimize searches for the smallest additional monthly payment that meets the request.
// Schedule length and interest paid are monotone in the extra payment. With no extra payment
// the loan runs its full term and saves nothing, so the lower bound never meets a valid target.
func (s *Solver) Optimize(ctx context.Context, req PayoffRequest) (*PayoffResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	baseResult, err := s.CalcEngine.Compute(req.Base)
	if err != nil {
		return nil, &SolverError{
			Operation: "optimize",
			Message:   "failed to calculate base loan",
			Cause:     err,
		}
	}
	if len(baseResult.Schedule) == 0 {
		return nil, &SolverError{
			Operation: "optimize",
			Message:   "loan amount is zero, nothing to pay off",
		}
	}

	if req.MaxExtraPayment.IsZero() {
		req.MaxExtraPayment = baseResult.LoanAmount
	}

	meets := func(result *domain.AmortizationResult) bool {
		switch req.Target {
		case TargetPayoffMonths:
			return result.PayoffMonths() <= req.TargetMonths
		default:
			return result.InterestSaved.GreaterThanOrEqual(req.TargetInterestSaved)
		}
	}

	lo := decimal.Zero
	hi := req.MaxExtraPayment

	hiResult, err := s.evaluate(req.Base, hi)
	if err != nil {
		return nil, err
	}
	if !meets(hiResult) {
		return nil, &SolverError{
			Operation: "optimize_" + string(req.Target),
			Message:   fmt.Sprintf("target is not reachable with an extra payment of up to $%s", hi.StringFixed(2)),
		}
	}

	iterations := 0
	for hi.Sub(lo).GreaterThan(req.Tolerance) && iterations < req.MaxIterations {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(two)
		midResult, err := s.evaluate(req.Base, mid)
		if err != nil {
			return nil, err
		}

		if meets(midResult) {
			hi = mid
			hiResult = midResult
		} else {
			lo = mid
		}
	}

	converged := hi.Sub(lo).LessThanOrEqual(req.Tolerance)

	// Round up to whole cents; rounding up keeps the target met.
	payment := hi.RoundCeil(2)
	if !payment.Equal(hi) {
		if rounded, err := s.evaluate(req.Base, payment); err == nil && meets(rounded) {
			hiResult = rounded
		} else {
			payment = hi
		}
	}

	result := s.buildResult(req, baseResult, payment, hiResult, iterations)
	result.Success = converged
	if converged {
		result.ConvergenceInfo = fmt.Sprintf("Binary search converged within $%s", req.Tolerance.StringFixed(2))
	} else {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	}
	return result, nil
}

// evaluate computes the base loan with the given additional monthly payment
func (s *Solver) evaluate(base domain.LoanConfig, extra decimal.Decimal) (*domain.AmortizationResult, error) {
	modified, err := transform.ApplyTransforms(&base, []transform.LoanTransform{
		&transform.SetExtraPayment{Amount: extra},
	})
	if err != nil {
		return nil, &SolverError{
			Operation: "evaluate",
			Message:   "failed to apply extra payment",
			Cause:     err,
		}
	}

	result, err := s.CalcEngine.Compute(*modified)
	if err != nil {
		return nil, &SolverError{
			Operation: "evaluate",
			Message:   fmt.Sprintf("failed to calculate loan with extra payment $%s", extra.StringFixed(2)),
			Cause:     err,
		}
	}
	return result, nil
}

// buildResult creates a solver result from an amortization result
func (s *Solver) buildResult(
	req PayoffRequest,
	base *domain.AmortizationResult,
	extra decimal.Decimal,
	result *domain.AmortizationResult,
	iterations int,
) *PayoffResult {
	return &PayoffResult{
		Request:                     req,
		Iterations:                  iterations,
		RequiredExtraPayment:        extra,
		Result:                      result,
		MonthlyPrincipalAndInterest: result.ActualMonthlyPrincipalAndInterest,
		PayoffMonths:                result.PayoffMonths(),
		TotalInterest:               result.TotalInterestPaid,
		InterestSaved:               result.InterestSaved,
		MonthsSaved:                 result.MonthsSaved,
		BasePayoffMonths:            base.PayoffMonths(),
		BaseTotalInterest:           base.TotalInterestPaid,
	}
}
