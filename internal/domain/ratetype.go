package domain

// RateType discriminates which calculation family applies to a request.
type RateType string

const (
	// RateTypeDeposit credits day-weighted interest with per-period rounding.
	RateTypeDeposit RateType = "deposit"
	// RateTypeLoan accrues day-weighted interest on policy loans, rounded once
	// on the grand total.
	RateTypeLoan RateType = "loan"
	// RateTypeDividend reports a month-weighted average dividend rate, no
	// interest amount.
	RateTypeDividend RateType = "dividend"
	// RateTypeAverageDeclared reports the trailing 12-month average of the
	// declared rate, no interest amount.
	RateTypeAverageDeclared RateType = "average_declared"
	// RateTypeLastMonth takes a single rate snapshot at the end month and
	// applies it to the whole span.
	RateTypeLastMonth RateType = "last_month"
	// RateTypeFourBank blends an injected loan rate (interest) with the
	// four-reference-bank rate (reported effective rate).
	RateTypeFourBank RateType = "four_bank"
	// RateTypeFreeLook credits a fixed single rate over the free-look grace
	// period.
	RateTypeFreeLook RateType = "free_look"
	// RateTypeFreeLookInvestYield is the free-look variant keyed to the
	// investment-yield rate table.
	RateTypeFreeLookInvestYield RateType = "free_look_invest_yield"
	// RateTypeAnnuity credits annuity sub-accounts, linear or compound per
	// the plan's crediting flag.
	RateTypeAnnuity RateType = "annuity"
	// RateTypeCredited routes to the deposit or annuity family based on the
	// plan's insurance type.
	RateTypeCredited RateType = "credited"
)

// RateTypes returns every rate type the dispatcher must support. The
// dispatcher checks its registry against this set at construction.
func RateTypes() []RateType {
	return []RateType{
		RateTypeDeposit,
		RateTypeLoan,
		RateTypeDividend,
		RateTypeAverageDeclared,
		RateTypeLastMonth,
		RateTypeFourBank,
		RateTypeFreeLook,
		RateTypeFreeLookInvestYield,
		RateTypeAnnuity,
		RateTypeCredited,
	}
}

// Valid reports whether the rate type is a known discriminator value.
func (rt RateType) Valid() bool {
	for _, known := range RateTypes() {
		if rt == known {
			return true
		}
	}
	return false
}

// RateKey identifies which rate timeline a lookup targets within a plan.
// Strategies resolve their key per call; the dividend and free-look families
// switch between two keys depending on plan flags and calculation variant.
type RateKey string

const (
	KeyDeposit          RateKey = "deposit"
	KeyLoan             RateKey = "loan"
	KeyDividend         RateKey = "dividend"
	KeyVariableDividend RateKey = "dividend_va"
	KeyDeclared         RateKey = "declared"
	KeyLastMonth        RateKey = "last_month"
	KeyFourBank         RateKey = "four_bank"
	KeyFreeLook         RateKey = "free_look"
	KeyInvestYield      RateKey = "invest_yield"
	KeyAnnuity          RateKey = "annuity"
)
