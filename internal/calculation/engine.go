package calculation

import (
	"fmt"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxTermMonths bounds the schedule length the engine will build (50 years).
const MaxTermMonths = 600

// interestPrecision is the number of decimal places kept on each period's interest.
// Balances otherwise gain digits every month.
const interestPrecision int32 = 32

// divisionPrecision is the number of decimal places kept by the rate and level payment divisions.
// Rounding error in the payment compounds by (1+r)^n over the term.
const divisionPrecision int32 = 40

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)

	// SettlementTolerance is the residual balance treated as fully repaid.
	SettlementTolerance = decimal.New(1, -6)

	// FinalPeriodTolerance is the largest balance the last scheduled payment absorbs.
	// Anything above it at term end means the loan does not amortize.
	FinalPeriodTolerance = decimal.New(1, -2)
)

// AmortizationEngine computes amortization schedules
type AmortizationEngine struct {
	Logger Logger
	Debug  bool // Enable debug output for detailed calculations
}

// NewAmortizationEngine creates a new engine with a no-op logger
func NewAmortizationEngine() *AmortizationEngine {
	return &AmortizationEngine{Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op logger.
func (ae *AmortizationEngine) SetLogger(l Logger) {
	if l == nil {
		ae.Logger = NopLogger{}
		return
	}
	ae.Logger = l
}

// Compute builds the amortization schedule and summary for config.
// It is a pure function of its input and safe for concurrent use.
func Compute(config domain.LoanConfig) (*domain.AmortizationResult, error) {
	return NewAmortizationEngine().Compute(config)
}

// Compute builds the amortization schedule and summary for config.
func (ae *AmortizationEngine) Compute(config domain.LoanConfig) (*domain.AmortizationResult, error) {
	logger := ae.logger()

	if err := ValidateLoanConfig(config); err != nil {
		return nil, err
	}

	loanAmount := config.LoanAmount()
	monthlyRate := config.AnnualInterestRatePercent.DivRound(hundred.Mul(twelve), divisionPrecision)
	totalPeriods := config.TermMonths()
	extra := config.AdditionalMonthlyPayment

	if !loanAmount.IsPositive() {
		// Down payment covers the home: nothing to finance.
		logger.Debugf("loan amount %s is not positive, returning empty schedule", loanAmount.StringFixed(2))
		return &domain.AmortizationResult{
			LoanAmount:   decimal.Zero,
			MonthlyRate:  monthlyRate,
			TotalPeriods: totalPeriods,
			Schedule:     []domain.ScheduleEntry{},
		}, nil
	}

	basePayment := LevelPayment(loanAmount, monthlyRate, totalPeriods)
	if ae.Debug {
		logger.Debugf("loan=%s monthlyRate=%s periods=%d basePayment=%s extra=%s",
			loanAmount.StringFixed(2), monthlyRate.String(), totalPeriods, basePayment.StringFixed(6), extra.StringFixed(2))
	}

	schedule, err := buildSchedule(loanAmount, monthlyRate, totalPeriods, basePayment, extra)
	if err != nil {
		logger.Warnf("schedule not built: %v", err)
		return nil, err
	}

	result := summarize(config, loanAmount, monthlyRate, totalPeriods, basePayment, schedule)
	if ae.Debug {
		logger.Debugf("payoff after %d of %d months, interest=%s saved=%s",
			len(schedule), totalPeriods, result.TotalInterestPaid.StringFixed(2), result.InterestSaved.StringFixed(2))
	}
	return result, nil
}

func (ae *AmortizationEngine) logger() Logger {
	if ae == nil || ae.Logger == nil {
		return NopLogger{}
	}
	return ae.Logger
}

// ValidateLoanConfig checks the structural preconditions of the engine.
func ValidateLoanConfig(config domain.LoanConfig) error {
	if config.HomeValue.IsNegative() {
		return invalidField("home_value", "cannot be negative")
	}
	if config.DownPayment.IsNegative() {
		return invalidField("down_payment", "cannot be negative")
	}
	minDown := domain.MinimumDownPayment(config.HomeValue)
	if config.DownPayment.LessThan(minDown) {
		return invalidField("down_payment",
			fmt.Sprintf("must be at least 3%% of home value ($%s)", minDown.StringFixed(2)))
	}
	if config.AnnualInterestRatePercent.IsNegative() {
		return invalidField("interest_rate_percent", "cannot be negative")
	}
	if config.LoanTermYears < 1 {
		return invalidField("loan_term_years", fmt.Sprintf("must be at least 1, got %d", config.LoanTermYears))
	}
	if config.TermMonths() > MaxTermMonths {
		return invalidField("loan_term_years",
			fmt.Sprintf("term of %d months exceeds the maximum of %d", config.TermMonths(), MaxTermMonths))
	}
	if config.AdditionalMonthlyPayment.IsNegative() {
		return invalidField("additional_monthly_payment", "cannot be negative")
	}
	if field, ok := config.MonthlyCosts.Negative(); ok {
		return invalidField("monthly_costs."+field, "cannot be negative")
	}
	return nil
}

// LevelPayment returns the fixed monthly payment that repays loanAmount over totalPeriods.
func LevelPayment(loanAmount, monthlyRate decimal.Decimal, totalPeriods int) decimal.Decimal {
	periods := decimal.NewFromInt(int64(totalPeriods))
	if monthlyRate.IsZero() {
		return loanAmount.DivRound(periods, divisionPrecision)
	}
	growth := one.Add(monthlyRate).Pow(periods)
	return loanAmount.Mul(monthlyRate).Mul(growth).DivRound(growth.Sub(one), divisionPrecision)
}

// buildSchedule runs the period loop. The final payment is clamped to the remaining balance,
// with interest charged on that balance.
func buildSchedule(loanAmount, monthlyRate decimal.Decimal, totalPeriods int, basePayment, extra decimal.Decimal) ([]domain.ScheduleEntry, error) {
	scheduledPayment := basePayment
	if extra.IsPositive() {
		scheduledPayment = basePayment.Add(extra)
	}

	firstInterest := loanAmount.Mul(monthlyRate).Round(interestPrecision)
	if scheduledPayment.LessThanOrEqual(firstInterest) {
		return nil, nonAmortizing(fmt.Sprintf("monthly payment $%s does not cover first-month interest $%s",
			scheduledPayment.StringFixed(2), firstInterest.StringFixed(2)))
	}

	schedule := make([]domain.ScheduleEntry, 0, totalPeriods)
	remaining := loanAmount

	for period := 1; period <= totalPeriods; period++ {
		interest := remaining.Mul(monthlyRate).Round(interestPrecision)
		principal := basePayment.Sub(interest)
		if extra.IsPositive() {
			principal = principal.Add(extra)
		}

		settle := remaining.LessThan(principal.Add(SettlementTolerance))
		if period == totalPeriods && remaining.Sub(principal).LessThan(FinalPeriodTolerance) {
			settle = true
		}

		var payment decimal.Decimal
		if settle {
			principal = remaining
			interest = remaining.Mul(monthlyRate).Round(interestPrecision)
			payment = principal.Add(interest)
		} else {
			payment = scheduledPayment
		}

		remaining = remaining.Sub(principal)

		schedule = append(schedule, domain.ScheduleEntry{
			Period:           period,
			Payment:          payment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: remaining,
			Year:             (period + 11) / 12,
		})

		if !remaining.IsPositive() {
			return schedule, nil
		}
	}

	return nil, nonAmortizing(fmt.Sprintf("balance of $%s remains after %d months",
		remaining.StringFixed(2), totalPeriods))
}

// summarize aggregates the schedule into the result metrics.
func summarize(config domain.LoanConfig, loanAmount, monthlyRate decimal.Decimal, totalPeriods int, basePayment decimal.Decimal, schedule []domain.ScheduleEntry) *domain.AmortizationResult {
	otherCosts := config.OtherMonthlyCosts()
	actual := basePayment.Add(config.AdditionalMonthlyPayment)

	totalInterest := decimal.Zero
	totalPayments := decimal.Zero
	for _, entry := range schedule {
		totalInterest = totalInterest.Add(entry.Interest)
		totalPayments = totalPayments.Add(entry.Payment)
	}

	months := decimal.NewFromInt(int64(len(schedule)))
	theoretical := basePayment.Mul(decimal.NewFromInt(int64(totalPeriods))).Sub(loanAmount)

	return &domain.AmortizationResult{
		LoanAmount:                        loanAmount,
		MonthlyRate:                       monthlyRate,
		TotalPeriods:                      totalPeriods,
		Schedule:                          schedule,
		BasePrincipalAndInterest:          basePayment,
		ActualMonthlyPrincipalAndInterest: actual,
		TotalMonthlyPayment:               actual.Add(otherCosts),
		TotalInterestPaid:                 totalInterest,
		TotalCost:                         totalPayments.Add(otherCosts.Mul(months)),
		TheoreticalTotalInterest:          theoretical,
		MonthsSaved:                       totalPeriods - len(schedule),
		InterestSaved:                     theoretical.Sub(totalInterest),
	}
}
