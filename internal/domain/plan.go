package domain

// InsuranceType classifies a product for the routing switches: the credited
// router picks deposit vs annuity crediting by it, and the dividend family's
// variable-annuity key switch keys off the plan flag.
type InsuranceType string

const (
	InsuranceTypeGeneral InsuranceType = "general"
	InsuranceTypeAnnuity InsuranceType = "annuity"
)

// PlanContext is the read-only slice of the plan definition that calculation
// strategies consume. The plan-definition lookup that produces it is an
// external collaborator.
type PlanContext struct {
	PlanCode      string
	InsuranceType InsuranceType
	// VariableDividend switches the dividend family's lookup key to the
	// variable-annuity dividend table. The switch happens per call.
	VariableDividend bool
	// CompoundCrediting selects the compound sub-algorithm in the annuity
	// family.
	CompoundCrediting bool
}

// PlanNote carries the plan-note fields strategies read. Only the free-look
// family uses it, as the fallback sub-account code.
type PlanNote struct {
	DefaultSubAccountCode string
}

// IssueRateIndicator is the "apply prior issue rate" parameter pair resolved
// from the investment-target lookup for compound annuity crediting.
type IssueRateIndicator struct {
	// Applies enables issue-rate crediting for early policy years.
	Applies bool
	// Years is how many policy years the issue rate covers.
	Years int
}
