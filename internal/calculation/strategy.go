package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
)

// Strategy is the uniform entry point of every rate calculation family.
// Strategies are pure functions of the input plus the rate timeline store;
// they hold no mutable state and may run concurrently.
//
// scale is the output scale of the interest amount: 0 for whole-unit
// currencies, 2 for cent-based ones. plan and note may be nil when the caller
// has no plan context; strategies that require them answer the zero result.
type Strategy interface {
	Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) domain.Result
}

// InvestmentTargetSource supplies the supplemental annuity parameters for
// compound crediting. Both lookups must succeed; the compound family answers
// the zero result when either is missing.
type InvestmentTargetSource interface {
	IssueRateIndicator(planCode string) (domain.IssueRateIndicator, bool)
	IssueRate(planCode string) (decimal.Decimal, bool)
}

// Dispatcher maps rate types to their strategies. It is built once from the
// full strategy set; construction fails if any known rate type is left
// without a strategy.
type Dispatcher struct {
	strategies map[domain.RateType]Strategy
	logger     Logger
}

// NewDispatcher builds the full strategy registry over one rate timeline
// store. targets may be nil when no compound annuity products are in play.
func NewDispatcher(rates *timeline.Store, targets InvestmentTargetSource, logger Logger) (*Dispatcher, error) {
	if logger == nil {
		logger = NopLogger{}
	}

	deposit := NewDepositStrategy(rates, logger)
	annuity := NewAnnuityStrategy(rates, targets, logger)
	freeLook := NewFreeLookStrategy(rates, logger)

	strategies := map[domain.RateType]Strategy{
		domain.RateTypeDeposit:             deposit,
		domain.RateTypeLoan:                NewLoanStrategy(rates, logger),
		domain.RateTypeDividend:            NewDividendStrategy(rates, logger),
		domain.RateTypeAverageDeclared:     NewAverageDeclaredStrategy(rates, logger),
		domain.RateTypeLastMonth:           NewLastMonthStrategy(rates, logger),
		domain.RateTypeFourBank:            NewFourBankStrategy(rates, logger),
		domain.RateTypeFreeLook:            freeLook,
		domain.RateTypeFreeLookInvestYield: freeLook,
		domain.RateTypeAnnuity:             annuity,
		domain.RateTypeCredited:            NewCreditedStrategy(deposit, annuity),
	}

	for _, rt := range domain.RateTypes() {
		if _, ok := strategies[rt]; !ok {
			return nil, fmt.Errorf("no strategy registered for rate type %q", rt)
		}
	}

	return &Dispatcher{strategies: strategies, logger: logger}, nil
}

// Calculate routes the input to its family's strategy. An unknown rate type
// is a caller error, reported with the supported set; everything else
// degrades inside the strategies to the canonical zero result.
func (d *Dispatcher) Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) (domain.Result, error) {
	strategy, ok := d.strategies[in.RateType]
	if !ok {
		return domain.ZeroResult(), fmt.Errorf("unsupported rate type %q (supported: %s)",
			in.RateType, strings.Join(d.Supported(), ", "))
	}

	d.logger.Debugf("calculating %s for plan %s over %s..%s",
		in.RateType, in.PlanCode,
		in.BeginDate.Format("2006-01-02"), in.EndDate.Format("2006-01-02"))

	return strategy.Calculate(in, scale, plan, note), nil
}

// Supported returns the registered rate type codes in sorted order.
func (d *Dispatcher) Supported() []string {
	out := make([]string, 0, len(d.strategies))
	for rt := range d.strategies {
		out = append(out, string(rt))
	}
	sort.Strings(out)
	return out
}
