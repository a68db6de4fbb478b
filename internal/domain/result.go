package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateLookup pairs the rate as stored on the timeline with the rate after
// the caller's subtraction/discount adjustments. Families differ on which of
// the two they average, so both are carried.
type RateLookup struct {
	Original decimal.Decimal
	Adjusted decimal.Decimal
}

// PeriodDetail is one row of a strategy's per-period breakdown.
type PeriodDetail struct {
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Days          int             `json:"days"`
	OriginalRate  decimal.Decimal `json:"original_rate"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	Interest      decimal.Decimal `json:"interest"`
	Principal     decimal.Decimal `json:"principal"`
	// Factor is the compounding multiplier for the period; only the compound
	// annuity family fills it.
	Factor decimal.Decimal `json:"factor,omitempty"`
	Tag    string          `json:"tag,omitempty"`
}

// Result is the uniform answer of every calculation strategy.
type Result struct {
	// EffectiveRate is the single rate representative of the whole span:
	// weighted average, simple average, or compound growth, depending on the
	// family.
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	// InterestAmount is rounded to the caller-supplied output scale.
	InterestAmount decimal.Decimal `json:"interest_amount"`
	// Periods is empty for families defined as "no breakdown".
	Periods []PeriodDetail `json:"periods,omitempty"`
}

// ZeroResult is the canonical response to invalid or boundary input. Invalid
// spans and missing required context degrade to it; they never raise.
func ZeroResult() Result {
	return Result{
		EffectiveRate:  decimal.Zero,
		InterestAmount: decimal.Zero,
	}
}

// IsZero reports whether the result equals the canonical zero result.
func (r Result) IsZero() bool {
	return r.EffectiveRate.IsZero() && r.InterestAmount.IsZero() && len(r.Periods) == 0
}
