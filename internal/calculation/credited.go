package calculation

import (
	"github.com/policyrate/interest-calculator/internal/domain"
)

// CreditedStrategy routes crediting by the plan's insurance type: annuity
// products credit through the annuity family, everything else through the
// deposit family. The switch happens per call, on the plan context supplied
// with the request.
type CreditedStrategy struct {
	deposit Strategy
	annuity Strategy
}

// NewCreditedStrategy creates the insurance-type crediting router.
func NewCreditedStrategy(deposit, annuity Strategy) *CreditedStrategy {
	return &CreditedStrategy{deposit: deposit, annuity: annuity}
}

func (s *CreditedStrategy) Calculate(in domain.Input, scale int32, plan *domain.PlanContext, note *domain.PlanNote) domain.Result {
	if plan != nil && plan.InsuranceType == domain.InsuranceTypeAnnuity {
		return s.annuity.Calculate(in, scale, plan, note)
	}
	return s.deposit.Calculate(in, scale, plan, note)
}
