package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/output"
)

// OptimizeLadder solves for the extra payment needed at each payoff horizon (in years)
// and compares the outcomes
func (s *Solver) OptimizeLadder(
	ctx context.Context,
	base domain.LoanConfig,
	horizonYears []int,
) (*PayoffLadder, error) {
	if len(horizonYears) == 0 {
		return nil, &SolverError{
			Operation: "optimize_ladder",
			Message:   "at least one payoff horizon is required",
		}
	}

	var results []PayoffResult

	for _, years := range horizonYears {
		req := PayoffRequest{
			Base:          base,
			Target:        TargetPayoffMonths,
			TargetMonths:  years * 12,
			MaxIterations: s.Options.MaxIterations,
			Tolerance:     s.Options.Tolerance,
		}

		result, err := s.Optimize(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Horizons at or beyond the term are skipped
			continue
		}

		results = append(results, *result)
	}

	if len(results) == 0 {
		return nil, &SolverError{
			Operation: "optimize_ladder",
			Message:   "no payoff horizon could be solved",
		}
	}

	return &PayoffLadder{
		Base:            base,
		Results:         results,
		Recommendations: ladderRecommendations(results),
	}, nil
}

// ladderRecommendations reports the interest saved per extra dollar for each rung
func ladderRecommendations(results []PayoffResult) []string {
	recs := []string{}
	for _, r := range results {
		totalExtra := r.RequiredExtraPayment.Mul(decimalFromInt(r.PayoffMonths))
		recs = append(recs, fmt.Sprintf("Payoff in %s: pay %s more per month to save %s in interest (extra paid: %s)",
			formatMonths(r.Request.TargetMonths),
			output.FormatCurrency(r.RequiredExtraPayment),
			output.FormatCurrency(r.BaseTotalInterest.Sub(r.TotalInterest)),
			output.FormatCurrency(totalExtra)))
	}
	return recs
}
