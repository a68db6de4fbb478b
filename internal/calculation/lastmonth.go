package calculation

import (
	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
	"github.com/policyrate/interest-calculator/pkg/dateutil"
)

// LastMonthStrategy applies a single rate snapshot, the rate in effect at
// the end date's month, to the whole span. Day count is inclusive of both
// span ends; the year length comes from the begin date. No per-period
// breakdown.
type LastMonthStrategy struct {
	rates  *timeline.Store
	logger Logger
}

// NewLastMonthStrategy creates the last-month-family strategy.
func NewLastMonthStrategy(rates *timeline.Store, logger Logger) *LastMonthStrategy {
	return &LastMonthStrategy{rates: rates, logger: logger}
}

func (s *LastMonthStrategy) Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) domain.Result {
	if !in.HasSpan() || in.BeginDate.After(in.EndDate) {
		return domain.ZeroResult()
	}

	rate := in.KnownRate
	if rate.IsZero() {
		if lr, ok := resolveRate(s.rates, in.PlanCode, domain.KeyLastMonth, dateutil.MonthStart(in.EndDate), in); ok {
			rate = lr.Adjusted
		}
	}

	totalDays := dateutil.DayCount(in.BeginDate, in.EndDate) + 1
	interest := periodInterest(in.Principal, rate, totalDays, in.BeginDate).Round(scale)

	return domain.Result{
		EffectiveRate:  rate.Round(ratePrecision),
		InterestAmount: interest,
	}
}
