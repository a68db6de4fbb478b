package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Input carries everything a calculation strategy needs for one request.
// Values are passed by value and never mutated by strategies.
//
// A zero BeginDate or EndDate means the date was not supplied; strategies
// answer the canonical zero result for such spans. A zero KnownRate means
// "not supplied": that overload is part of the ported business rules, so a
// caller cannot inject an explicit rate of zero.
type Input struct {
	BeginDate time.Time
	EndDate   time.Time

	// Principal is the monetary base the interest applies to.
	Principal decimal.Decimal

	// RateType selects the calculation family.
	RateType RateType

	// KnownRate, when non-zero, substitutes for a timeline lookup in the
	// families that honor it (dividend, last-month, four-bank).
	KnownRate decimal.Decimal

	// RateSubtraction and RateDiscountPercent adjust looked-up rates.
	// Adjusted = (original − RateSubtraction) × (100 − RateDiscountPercent)/100.
	RateSubtraction     decimal.Decimal
	RateDiscountPercent decimal.Decimal

	// PlanCode identifies the sub-account plan whose timelines are queried.
	// The free-look family substitutes a plan-note default when absent.
	PlanCode string

	// IssueDate anchors policy-year arithmetic for anniversary-based rate
	// selection in the annuity family.
	IssueDate time.Time
}

// HasSpan reports whether both span dates were supplied.
func (in Input) HasSpan() bool {
	return !in.BeginDate.IsZero() && !in.EndDate.IsZero()
}
