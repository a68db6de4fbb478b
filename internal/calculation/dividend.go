package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
	"github.com/policyrate/interest-calculator/pkg/dateutil"
)

// DividendStrategy reports the month-weighted average dividend rate over the
// span. Months count equally regardless of their day counts, and no interest
// amount is produced. A plan flag switches the lookup between the ordinary
// and the variable-annuity dividend tables per call.
type DividendStrategy struct {
	rates  *timeline.Store
	logger Logger
}

// NewDividendStrategy creates the dividend-family strategy.
func NewDividendStrategy(rates *timeline.Store, logger Logger) *DividendStrategy {
	return &DividendStrategy{rates: rates, logger: logger}
}

func (s *DividendStrategy) Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) domain.Result {
	if !in.HasSpan() || in.BeginDate.After(in.EndDate) {
		return domain.ZeroResult()
	}

	key := domain.KeyDividend
	if plan != nil && plan.VariableDividend {
		key = domain.KeyVariableDividend
	}

	// Raw whole-month span, corrected only when it comes out empty.
	months := dateutil.MonthSpan(in.BeginDate, in.EndDate)
	if months <= 0 {
		months++
	}
	if months <= 0 {
		return domain.ZeroResult()
	}

	var sum decimal.Decimal
	cur := dateutil.MonthStart(in.BeginDate)
	for i := 0; i < months; i++ {
		rate := in.KnownRate
		if rate.IsZero() {
			if lr, ok := resolveRate(s.rates, in.PlanCode, key, cur, in); ok {
				rate = lr.Adjusted
			}
		}
		sum = sum.Add(rate)
		cur = dateutil.AddMonths(cur, 1)
	}

	return domain.Result{
		EffectiveRate:  sum.Div(decimal.NewFromInt(int64(months))).Round(ratePrecision),
		InterestAmount: decimal.Zero,
	}
}
