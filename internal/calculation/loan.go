package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
	"github.com/policyrate/interest-calculator/pkg/dateutil"
)

// LoanStrategy accrues day-weighted interest on policy loans. Periods snap to
// month-end statement boundaries, non-final periods count the month-end day,
// and interest accumulates unrounded with a single rounding pass on the grand
// total. Negative resolved rates are clamped to zero before interest is
// computed.
type LoanStrategy struct {
	rates  *timeline.Store
	logger Logger
}

// NewLoanStrategy creates the loan-family strategy.
func NewLoanStrategy(rates *timeline.Store, logger Logger) *LoanStrategy {
	return &LoanStrategy{rates: rates, logger: logger}
}

func (s *LoanStrategy) Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) domain.Result {
	// Loan only rejects inverted spans; begin == end falls out of the loop
	// with no periods.
	if !in.HasSpan() || in.BeginDate.After(in.EndDate) {
		return domain.ZeroResult()
	}

	var (
		weightedSum decimal.Decimal
		totalDays   int
		total       decimal.Decimal
		periods     []domain.PeriodDetail
	)

	for _, w := range statementWindows(in.BeginDate, in.EndDate) {
		var lookup domain.RateLookup
		if lr, ok := resolveRate(s.rates, in.PlanCode, domain.KeyLoan, dateutil.MonthStart(w.start), in); ok {
			lookup = lr
		}

		rate := lookup.Adjusted
		if rate.IsNegative() {
			rate = decimal.Zero
		}

		interest := periodInterest(in.Principal, rate, w.days, w.start)
		total = total.Add(interest)
		weightedSum = weightedSum.Add(rate.Mul(decimal.NewFromInt(int64(w.days))))
		totalDays += w.days

		periods = append(periods, domain.PeriodDetail{
			StartDate:     w.start,
			EndDate:       w.end,
			Days:          w.days,
			OriginalRate:  lookup.Original,
			EffectiveRate: rate,
			Interest:      interest.Round(scale),
			Principal:     in.Principal,
		})
	}

	return domain.Result{
		EffectiveRate:  weightedAverage(weightedSum, totalDays),
		InterestAmount: total.Round(scale),
		Periods:        periods,
	}
}
