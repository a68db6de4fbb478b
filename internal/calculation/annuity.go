package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
	"github.com/policyrate/interest-calculator/pkg/dateutil"
)

// compoundPrecision is the internal fractional precision of compounding
// factors, kept far beyond the output scale so multiplying factors across
// periods does not drift.
const compoundPrecision int32 = 32

var one = decimal.NewFromInt(1)

// AnnuityStrategy credits annuity sub-accounts. The plan's crediting flag
// routes between two sub-algorithms: linear crediting is the deposit-family
// day-weighted shape over the annuity rate timeline, and compound crediting
// raises per-period factors (1 + rate/10000)^(days/yearLength) and multiplies
// them across periods.
//
// Compound per-period interest is allocated by difference: each period
// reports cumulative-interest-through-it minus the previous cumulative
// figure, both rounded at the output scale, so the reported periods always
// sum exactly to the final total.
type AnnuityStrategy struct {
	rates   *timeline.Store
	targets InvestmentTargetSource
	linear  *DepositStrategy
	logger  Logger
}

// NewAnnuityStrategy creates the annuity-family strategy. targets supplies
// the issue-rate parameters for compound crediting and may be nil when no
// compound products exist.
func NewAnnuityStrategy(rates *timeline.Store, targets InvestmentTargetSource, logger Logger) *AnnuityStrategy {
	return &AnnuityStrategy{
		rates:   rates,
		targets: targets,
		linear:  NewDepositStrategy(rates, logger).withKey(domain.KeyAnnuity),
		logger:  logger,
	}
}

func (s *AnnuityStrategy) Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) domain.Result {
	if !in.HasSpan() || !in.BeginDate.Before(in.EndDate) {
		return domain.ZeroResult()
	}

	if plan != nil && plan.CompoundCrediting {
		return s.compound(in, scale)
	}
	return s.linear.Calculate(in, scale, plan, note)
}

func (s *AnnuityStrategy) compound(in domain.Input, scale int32) domain.Result {
	if s.targets == nil {
		return domain.ZeroResult()
	}
	indicator, ok := s.targets.IssueRateIndicator(in.PlanCode)
	if !ok {
		return domain.ZeroResult()
	}
	issueRate, ok := s.targets.IssueRate(in.PlanCode)
	if !ok {
		return domain.ZeroResult()
	}

	var (
		factor  = one
		prevCum decimal.Decimal
		periods []domain.PeriodDetail
	)

	for _, w := range monthlyWindows(in.BeginDate, in.EndDate) {
		rate, original := s.periodRate(in, indicator, issueRate, w.start)

		yearLen := decimal.NewFromInt(int64(dateutil.YearLength(w.start)))
		exponent := decimal.NewFromInt(int64(w.days)).DivRound(yearLen, compoundPrecision)
		base := one.Add(rate.Div(rateUnit))

		periodFactor, err := base.PowWithPrecision(exponent, compoundPrecision)
		if err != nil {
			s.logger.Warnf("compound factor for %s at %s failed: %v", in.PlanCode, w.start.Format("2006-01-02"), err)
			return domain.ZeroResult()
		}

		factor = factor.Mul(periodFactor).Round(compoundPrecision)

		cum := in.Principal.Mul(factor.Sub(one)).Round(scale)
		interest := cum.Sub(prevCum)
		prevCum = cum

		periods = append(periods, domain.PeriodDetail{
			StartDate:     w.start,
			EndDate:       w.end,
			Days:          w.days,
			OriginalRate:  original,
			EffectiveRate: rate,
			Interest:      interest,
			Principal:     in.Principal,
			Factor:        periodFactor,
		})
	}

	return domain.Result{
		EffectiveRate:  factor.Sub(one).Mul(rateUnit).Round(ratePrecision),
		InterestAmount: prevCum,
		Periods:        periods,
	}
}

// periodRate picks the issue-date rate while the policy year is within the
// configured count, and a fresh timeline lookup beyond it.
func (s *AnnuityStrategy) periodRate(in domain.Input, indicator domain.IssueRateIndicator, issueRate decimal.Decimal, at time.Time) (rate, original decimal.Decimal) {
	if indicator.Applies && !in.IssueDate.IsZero() && policyYear(in.IssueDate, at) <= indicator.Years {
		return issueRate, issueRate
	}
	if lr, ok := resolveRate(s.rates, in.PlanCode, domain.KeyAnnuity, dateutil.MonthStart(at), in); ok {
		return lr.Adjusted, lr.Original
	}
	return decimal.Zero, decimal.Zero
}

// policyYear numbers policy years from 1, rolling at each issue-date
// anniversary.
func policyYear(issueDate, at time.Time) int {
	years := at.Year() - issueDate.Year()
	if at.Month() < issueDate.Month() ||
		(at.Month() == issueDate.Month() && at.Day() < issueDate.Day()) {
		years--
	}
	return years + 1
}
