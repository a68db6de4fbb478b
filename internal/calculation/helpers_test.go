package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// seedRate installs an open-ended rate effective from the given date.
func seedRate(s *timeline.Store, plan string, key domain.RateKey, from time.Time, rate int64) {
	if err := s.Insert(plan, key, from, time.Time{}, dec(rate)); err != nil {
		panic(err)
	}
}

// fakeTargets is a canned InvestmentTargetSource for compound annuity tests.
type fakeTargets struct {
	indicator    domain.IssueRateIndicator
	indicatorOK  bool
	issueRate    decimal.Decimal
	issueRateOK  bool
}

func (f fakeTargets) IssueRateIndicator(string) (domain.IssueRateIndicator, bool) {
	return f.indicator, f.indicatorOK
}

func (f fakeTargets) IssueRate(string) (decimal.Decimal, bool) {
	return f.issueRate, f.issueRateOK
}
