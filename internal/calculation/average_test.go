package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
)

// TestAverageDeclaredTrailingTwelve tests the fixed 12-step backward walk
// from the end date's month
func TestAverageDeclaredTrailingTwelve(t *testing.T) {
	store := timeline.NewStore()
	seedRate(store, "SA001", domain.KeyDeclared, date(2019, 1, 1), 100)
	// Last three months of the walk (Oct..Dec 2020) declare 220.
	if err := store.Insert("SA001", domain.KeyDeclared, date(2020, 10, 1), timeline.InfiniteEndDate, dec(220)); err != nil {
		t.Fatal(err)
	}
	s := NewAverageDeclaredStrategy(store, NopLogger{})

	res := s.Calculate(domain.Input{
		EndDate:  date(2020, 12, 31),
		PlanCode: "SA001",
	}, 0, nil, nil)

	// Walk covers Dec 2020 back through Jan 2020: nine months at 100,
	// three at 220.
	expected := dec(9*100 + 3*220).Div(dec(12)).Round(10)
	assert.True(t, expected.Equal(res.EffectiveRate), "want %s got %s", expected, res.EffectiveRate)
	assert.True(t, res.InterestAmount.IsZero())
	assert.Empty(t, res.Periods)
}

// TestAverageDeclaredIgnoresAdjustmentsAndBeginDate tests the family's two
// documented deviations: discount adjustments and the begin date do not
// participate
func TestAverageDeclaredIgnoresAdjustmentsAndBeginDate(t *testing.T) {
	store := timeline.NewStore()
	seedRate(store, "SA001", domain.KeyDeclared, date(2019, 1, 1), 120)
	s := NewAverageDeclaredStrategy(store, NopLogger{})

	base := s.Calculate(domain.Input{
		EndDate:  date(2020, 12, 1),
		PlanCode: "SA001",
	}, 0, nil, nil)
	assert.True(t, dec(120).Equal(base.EffectiveRate))

	adjusted := s.Calculate(domain.Input{
		BeginDate:           date(2020, 11, 1),
		EndDate:             date(2020, 12, 1),
		RateSubtraction:     dec(40),
		RateDiscountPercent: dec(50),
		PlanCode:            "SA001",
	}, 0, nil, nil)
	assert.True(t, base.EffectiveRate.Equal(adjusted.EffectiveRate))
}

// TestAverageDeclaredMissingMonthsContributeZero tests the silent
// zero-contribution policy for months before the first declared rate
func TestAverageDeclaredMissingMonthsContributeZero(t *testing.T) {
	store := timeline.NewStore()
	// Declared only from July 2020; the walk's older months find nothing.
	seedRate(store, "SA001", domain.KeyDeclared, date(2020, 7, 1), 240)
	s := NewAverageDeclaredStrategy(store, NopLogger{})

	res := s.Calculate(domain.Input{
		EndDate:  date(2020, 12, 1),
		PlanCode: "SA001",
	}, 0, nil, nil)

	// Jul..Dec 2020 find 240; Jan..Jun find nothing.
	expected := dec(6 * 240).Div(dec(12)).Round(10)
	assert.True(t, expected.Equal(res.EffectiveRate), "want %s got %s", expected, res.EffectiveRate)
}

func TestAverageDeclaredMissingEndDate(t *testing.T) {
	s := NewAverageDeclaredStrategy(timeline.NewStore(), NopLogger{})
	res := s.Calculate(domain.Input{BeginDate: date(2020, 1, 1)}, 0, nil, nil)
	assert.True(t, res.IsZero())
}
