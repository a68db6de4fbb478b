package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
	"github.com/policyrate/interest-calculator/pkg/dateutil"
)

// Rates are stored in hundredths-of-basis-point units: 250 means 2.50%.
var rateUnit = decimal.NewFromInt(10000)

var hundred = decimal.NewFromInt(100)

// ratePrecision is the canonical fractional precision of reported effective
// rates.
const ratePrecision int32 = 10

// window is one iteration step of a month-driven strategy loop. The
// accumulation folds over these; boundary computation stays here.
type window struct {
	start time.Time
	end   time.Time
	days  int
	final bool
}

// monthlyWindows slices [begin, end) at next-month-start boundaries. Day
// counts are exclusive of each window's end, so they sum to the span's total
// exclusive day count. Used by the deposit, annuity and free-look families.
func monthlyWindows(begin, end time.Time) []window {
	var windows []window
	cur := begin
	for cur.Before(end) {
		next := dateutil.NextMonthStart(cur)
		w := window{start: cur, end: next}
		if !next.Before(end) {
			w.end = end
			w.final = true
		}
		w.days = dateutil.DayCount(cur, w.end)
		windows = append(windows, w)
		cur = w.end
	}
	return windows
}

// statementWindows slices [begin, end) at month-end boundaries: each window
// snaps to the last day of its month, or to the caller's end date when that
// comes first. Non-final windows count one extra day, covering the month-end
// day itself. Used by the loan and four-bank families.
func statementWindows(begin, end time.Time) []window {
	var windows []window
	cur := begin
	for cur.Before(end) {
		monthEnd := dateutil.EndOfMonth(cur)
		if !monthEnd.Before(end) {
			windows = append(windows, window{
				start: cur,
				end:   end,
				days:  dateutil.DayCount(cur, end),
				final: true,
			})
			break
		}
		windows = append(windows, window{
			start: cur,
			end:   monthEnd,
			days:  dateutil.DayCount(cur, monthEnd) + 1,
		})
		cur = monthEnd.AddDate(0, 0, 1)
	}
	return windows
}

// periodInterest computes principal × (rate/10000) × (days / yearLength),
// with the year length taken from the window's own start date.
func periodInterest(principal, rate decimal.Decimal, days int, at time.Time) decimal.Decimal {
	yearLen := decimal.NewFromInt(int64(dateutil.YearLength(at)))
	return principal.
		Mul(rate).Div(rateUnit).
		Mul(decimal.NewFromInt(int64(days))).Div(yearLen)
}

// resolveRate looks up the rate in effect at date and applies the input's
// subtraction and percentage discount. Absent lookups report false; callers
// treat the period's rate as zero.
func resolveRate(rates *timeline.Store, plan string, key domain.RateKey, date time.Time, in domain.Input) (domain.RateLookup, bool) {
	original, ok := rates.Lookup(plan, key, date)
	if !ok {
		return domain.RateLookup{}, false
	}
	adjusted := original.Sub(in.RateSubtraction)
	if !in.RateDiscountPercent.IsZero() {
		adjusted = adjusted.Mul(hundred.Sub(in.RateDiscountPercent)).Div(hundred)
	}
	return domain.RateLookup{Original: original, Adjusted: adjusted}, true
}

// weightedAverage divides a rate×days sum by the total day count, at the
// canonical rate precision.
func weightedAverage(weightedSum decimal.Decimal, totalDays int) decimal.Decimal {
	if totalDays <= 0 {
		return decimal.Zero
	}
	return weightedSum.Div(decimal.NewFromInt(int64(totalDays))).Round(ratePrecision)
}
