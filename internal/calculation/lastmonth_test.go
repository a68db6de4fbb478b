package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
)

// TestLastMonthKnownRate tests the single-snapshot computation with a
// caller-supplied rate: 1,000,000 × 300/10000 × 30/366 rounded to scale 0
func TestLastMonthKnownRate(t *testing.T) {
	s := NewLastMonthStrategy(timeline.NewStore(), NopLogger{})

	res := s.Calculate(domain.Input{
		BeginDate: date(2020, 6, 1),
		EndDate:   date(2020, 6, 30),
		Principal: dec(1000000),
		KnownRate: dec(300),
		PlanCode:  "SA001",
	}, 0, nil, nil)

	// Inclusive 30-day count over leap-year 2020.
	expected := dec(1000000).Mul(dec(300)).Div(dec(10000)).
		Mul(dec(30)).Div(dec(366)).Round(0)
	assert.True(t, expected.Equal(res.InterestAmount), "want %s got %s", expected, res.InterestAmount)
	assert.True(t, dec(2459).Equal(res.InterestAmount))
	assert.True(t, dec(300).Equal(res.EffectiveRate))
	assert.Empty(t, res.Periods, "last-month produces no breakdown")
}

// TestLastMonthLookupAtEndMonth tests that the snapshot reads the end date's
// month, not the begin date's
func TestLastMonthLookupAtEndMonth(t *testing.T) {
	store := timeline.NewStore()
	seedRate(store, "SA001", domain.KeyLastMonth, date(2020, 1, 1), 100)
	if err := store.Insert("SA001", domain.KeyLastMonth, date(2020, 6, 1), timeline.InfiniteEndDate, dec(300)); err != nil {
		t.Fatal(err)
	}
	s := NewLastMonthStrategy(store, NopLogger{})

	res := s.Calculate(domain.Input{
		BeginDate: date(2020, 2, 1),
		EndDate:   date(2020, 6, 30),
		Principal: dec(1000000),
		PlanCode:  "SA001",
	}, 0, nil, nil)

	assert.True(t, dec(300).Equal(res.EffectiveRate), "got %s", res.EffectiveRate)
}

// TestLastMonthYearLengthFromBeginDate tests that the denominator is the
// begin date's calendar year length
func TestLastMonthYearLengthFromBeginDate(t *testing.T) {
	s := NewLastMonthStrategy(timeline.NewStore(), NopLogger{})

	res := s.Calculate(domain.Input{
		BeginDate: date(2021, 12, 1), // 365-day year
		EndDate:   date(2022, 1, 30),
		Principal: dec(1000000),
		KnownRate: dec(300),
		PlanCode:  "SA001",
	}, 0, nil, nil)

	// 61 inclusive days over 365.
	expected := dec(1000000).Mul(dec(300)).Div(dec(10000)).
		Mul(dec(61)).Div(dec(365)).Round(0)
	assert.True(t, expected.Equal(res.InterestAmount), "want %s got %s", expected, res.InterestAmount)
}

func TestLastMonthInvalidSpan(t *testing.T) {
	s := NewLastMonthStrategy(timeline.NewStore(), NopLogger{})
	res := s.Calculate(domain.Input{BeginDate: date(2020, 6, 1), Principal: dec(1)}, 0, nil, nil)
	assert.True(t, res.IsZero())

	res = s.Calculate(domain.Input{
		BeginDate: date(2020, 7, 1),
		EndDate:   date(2020, 6, 1),
		Principal: dec(1),
	}, 0, nil, nil)
	assert.True(t, res.IsZero())
}
