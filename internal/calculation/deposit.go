package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
	"github.com/policyrate/interest-calculator/pkg/dateutil"
)

// DepositStrategy credits day-weighted interest on premium deposits. Each
// monthly period's interest is rounded to the output scale on its own and the
// rounded periods are summed. That is the opposite rounding moment of the
// loan family, and the two are not interchangeable.
type DepositStrategy struct {
	rates  *timeline.Store
	key    domain.RateKey
	logger Logger
}

// NewDepositStrategy creates the deposit-family strategy.
func NewDepositStrategy(rates *timeline.Store, logger Logger) *DepositStrategy {
	return &DepositStrategy{rates: rates, key: domain.KeyDeposit, logger: logger}
}

// withKey returns a copy of the strategy reading a different rate timeline.
// The annuity family's linear path is this algorithm under the annuity key.
func (s *DepositStrategy) withKey(key domain.RateKey) *DepositStrategy {
	return &DepositStrategy{rates: s.rates, key: key, logger: s.logger}
}

func (s *DepositStrategy) Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) domain.Result {
	// Deposit treats begin == end as an empty span.
	if !in.HasSpan() || !in.BeginDate.Before(in.EndDate) {
		return domain.ZeroResult()
	}

	var (
		weightedSum decimal.Decimal
		totalDays   int
		total       decimal.Decimal
		periods     []domain.PeriodDetail
	)

	for _, w := range monthlyWindows(in.BeginDate, in.EndDate) {
		var lookup domain.RateLookup
		if lr, ok := resolveRate(s.rates, in.PlanCode, s.key, dateutil.MonthStart(w.start), in); ok {
			lookup = lr
		}

		interest := periodInterest(in.Principal, lookup.Adjusted, w.days, w.start).Round(scale)
		total = total.Add(interest)
		weightedSum = weightedSum.Add(lookup.Adjusted.Mul(decimal.NewFromInt(int64(w.days))))
		totalDays += w.days

		periods = append(periods, domain.PeriodDetail{
			StartDate:     w.start,
			EndDate:       w.end,
			Days:          w.days,
			OriginalRate:  lookup.Original,
			EffectiveRate: lookup.Adjusted,
			Interest:      interest,
			Principal:     in.Principal,
		})
	}

	return domain.Result{
		EffectiveRate:  weightedAverage(weightedSum, totalDays),
		InterestAmount: total,
		Periods:        periods,
	}
}
