package calculation

import (
	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
	"github.com/policyrate/interest-calculator/pkg/dateutil"
)

// FreeLookStrategy credits interest over the free-look grace period at one
// fixed rate, looked up once at the begin date's month. The rate key follows
// the calculation variant: the investment-yield variant reads its own table,
// every other variant reads the free-look default. A missing sub-account code
// falls back to the plan note's default; with neither, or with no rate found,
// the result is zero. There is no per-month rate iteration.
type FreeLookStrategy struct {
	rates  *timeline.Store
	logger Logger
}

// NewFreeLookStrategy creates the free-look-family strategy. One instance
// serves both the default and the investment-yield rate types.
func NewFreeLookStrategy(rates *timeline.Store, logger Logger) *FreeLookStrategy {
	return &FreeLookStrategy{rates: rates, logger: logger}
}

func (s *FreeLookStrategy) Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) domain.Result {
	if !in.HasSpan() || !in.BeginDate.Before(in.EndDate) {
		return domain.ZeroResult()
	}

	key := domain.KeyFreeLook
	if in.RateType == domain.RateTypeFreeLookInvestYield {
		key = domain.KeyInvestYield
	}

	planCode := in.PlanCode
	if planCode == "" && note != nil {
		planCode = note.DefaultSubAccountCode
	}
	if planCode == "" {
		return domain.ZeroResult()
	}

	lookup, ok := resolveRate(s.rates, planCode, key, dateutil.MonthStart(in.BeginDate), in)
	if !ok {
		return domain.ZeroResult()
	}

	// The month loop only gathers days; interest is computed once from the
	// day-weighted total under the single fixed rate.
	months := dateutil.MonthSpan(in.BeginDate, in.EndDate) + 1
	totalDays := 0
	cur := in.BeginDate
	for i := 0; i < months && cur.Before(in.EndDate); i++ {
		next := dateutil.NextMonthStart(cur)
		if !next.Before(in.EndDate) {
			next = in.EndDate
		}
		totalDays += dateutil.DayCount(cur, next)
		cur = next
	}

	interest := periodInterest(in.Principal, lookup.Adjusted, totalDays, in.BeginDate).Round(scale)

	return domain.Result{
		EffectiveRate:  lookup.Adjusted.Round(ratePrecision),
		InterestAmount: interest,
	}
}
