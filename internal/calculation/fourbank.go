package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
	"github.com/policyrate/interest-calculator/pkg/dateutil"
)

// maxFourBankPeriods caps the statement iteration; spans beyond ten years
// stop accruing.
const maxFourBankPeriods = 120

// FourBankStrategy blends two rates over the same statement loop: interest
// accrues at the loan-family rate the caller injects as the known rate, while
// the reported effective rate averages the four-reference-bank rate from its
// own lookups. The two never mix.
//
// Callers must compute the loan-family result for the same span first and
// pass its effective rate in as the known rate; when they do not, a lookup on
// the loan timeline at the begin month substitutes.
type FourBankStrategy struct {
	rates  *timeline.Store
	logger Logger
}

// NewFourBankStrategy creates the four-reference-bank-family strategy.
func NewFourBankStrategy(rates *timeline.Store, logger Logger) *FourBankStrategy {
	return &FourBankStrategy{rates: rates, logger: logger}
}

func (s *FourBankStrategy) Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) domain.Result {
	if !in.HasSpan() || !in.BeginDate.Before(in.EndDate) {
		return domain.ZeroResult()
	}

	loanRate := in.KnownRate
	if loanRate.IsZero() {
		if lr, ok := resolveRate(s.rates, in.PlanCode, domain.KeyLoan, dateutil.MonthStart(in.BeginDate), in); ok {
			loanRate = lr.Adjusted
		}
	}

	var (
		weightedSum decimal.Decimal
		totalDays   int
		total       decimal.Decimal
		periods     []domain.PeriodDetail
	)

	for i, w := range statementWindows(in.BeginDate, in.EndDate) {
		if i >= maxFourBankPeriods {
			break
		}

		var lookup domain.RateLookup
		if lr, ok := resolveRate(s.rates, in.PlanCode, domain.KeyFourBank, dateutil.MonthStart(w.start), in); ok {
			lookup = lr
		}

		interest := periodInterest(in.Principal, loanRate, w.days, w.start)
		total = total.Add(interest)
		weightedSum = weightedSum.Add(lookup.Adjusted.Mul(decimal.NewFromInt(int64(w.days))))
		totalDays += w.days

		periods = append(periods, domain.PeriodDetail{
			StartDate:     w.start,
			EndDate:       w.end,
			Days:          w.days,
			OriginalRate:  lookup.Original,
			EffectiveRate: lookup.Adjusted,
			Interest:      interest.Round(scale),
			Principal:     in.Principal,
			Tag:           "loan-rate accrual",
		})
	}

	return domain.Result{
		EffectiveRate:  weightedAverage(weightedSum, totalDays),
		InterestAmount: total.Round(scale),
		Periods:        periods,
	}
}
