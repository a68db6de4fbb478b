package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
	"github.com/policyrate/interest-calculator/pkg/dateutil"
)

var twelve = decimal.NewFromInt(12)

// AverageDeclaredStrategy reports the trailing 12-month average of the
// declared rate, walking backward from the end date's month. The walk is
// always exactly 12 steps, sums the rates as stored (the caller's
// subtraction/discount adjustments do not apply), and ignores the begin date
// entirely. Both deviations come from the ported rules.
type AverageDeclaredStrategy struct {
	rates  *timeline.Store
	logger Logger
}

// NewAverageDeclaredStrategy creates the average-declared-family strategy.
func NewAverageDeclaredStrategy(rates *timeline.Store, logger Logger) *AverageDeclaredStrategy {
	return &AverageDeclaredStrategy{rates: rates, logger: logger}
}

func (s *AverageDeclaredStrategy) Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) domain.Result {
	if in.EndDate.IsZero() {
		return domain.ZeroResult()
	}

	var sum decimal.Decimal
	cur := dateutil.MonthStart(in.EndDate)
	for i := 0; i < 12; i++ {
		if rate, ok := s.rates.Lookup(in.PlanCode, domain.KeyDeclared, cur); ok {
			sum = sum.Add(rate)
		}
		cur = dateutil.AddMonths(cur, -1)
	}

	return domain.Result{
		EffectiveRate:  sum.Div(twelve).Round(ratePrecision),
		InterestAmount: decimal.Zero,
	}
}
