// Package timeline holds the dated rate intervals backing all rate lookups.
package timeline

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/policyrate/interest-calculator/internal/domain"
)

// InfiniteEndDate marks the currently open-ended (latest) interval of a
// timeline. Insert and Delete maintain the invariant that exactly the latest
// interval carries it.
var InfiniteEndDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

var (
	// ErrDuplicateInterval reports an insert whose start date already exists
	// for the same (plan, rate key). Caller-level data-integrity bug.
	ErrDuplicateInterval = errors.New("interval with this start date already exists")
	// ErrIntervalNotFound reports a delete or update that matched nothing.
	ErrIntervalNotFound = errors.New("no matching interval")
)

// Interval is one dated rate entry of a timeline.
type Interval struct {
	Start time.Time
	End   time.Time
	Rate  decimal.Decimal
}

type timelineKey struct {
	Plan string
	Key  domain.RateKey
}

// Store keeps, per (plan code, rate key), an ordered set of non-overlapping
// date intervals. Apart from the latest interval, which is open-ended, the
// set is contiguous: each interval ends exactly one day before its successor
// starts. That invariant lets lookups stay a simple point query with backward
// fallback.
//
// Lookups run in parallel under the read lock; mutations serialize under the
// write lock. Mutation frequency is administrative-maintenance low.
type Store struct {
	mu        sync.RWMutex
	timelines map[timelineKey][]Interval
}

// NewStore creates an empty rate timeline store.
func NewStore() *Store {
	return &Store{
		timelines: make(map[timelineKey][]Interval),
	}
}

// Lookup resolves the rate in effect at date. Two-step fallback: the interval
// containing the date, else the interval with the latest start still at or
// before the date ("last rate known before"). No further fallback; callers
// treat an absent rate as zero.
func (s *Store) Lookup(plan string, key domain.RateKey, date time.Time) (decimal.Decimal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	iv := s.timelines[timelineKey{Plan: plan, Key: key}]
	i := sort.Search(len(iv), func(i int) bool { return iv[i].Start.After(date) }) - 1
	if i < 0 {
		return decimal.Zero, false
	}
	if !date.After(iv[i].End) {
		return iv[i].Rate, true
	}
	// Past the interval's end: still the last rate known before this date.
	return iv[i].Rate, true
}

// Intervals returns a copy of a timeline in ascending start order.
func (s *Store) Intervals(plan string, key domain.RateKey) []Interval {
	s.mu.RLock()
	defer s.mu.RUnlock()

	iv := s.timelines[timelineKey{Plan: plan, Key: key}]
	out := make([]Interval, len(iv))
	copy(out, iv)
	return out
}

// Insert adds a new interval. Inserting a start date that already exists
// fails. When the new interval becomes the timeline's latest, the previous
// latest interval's end is truncated to one day before the new start and the
// new interval takes the open-ended sentinel; otherwise the supplied end date
// is kept as-is.
func (s *Store) Insert(plan string, key domain.RateKey, start, end time.Time, rate decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := timelineKey{Plan: plan, Key: key}
	iv := s.timelines[k]

	i := sort.Search(len(iv), func(i int) bool { return !iv[i].Start.Before(start) })
	if i < len(iv) && iv[i].Start.Equal(start) {
		return fmt.Errorf("insert %s/%s at %s: %w", plan, key, start.Format("2006-01-02"), ErrDuplicateInterval)
	}

	entry := Interval{Start: start, End: end, Rate: rate}
	if i == len(iv) {
		if len(iv) > 0 {
			iv[len(iv)-1].End = start.AddDate(0, 0, -1)
		}
		entry.End = InfiniteEndDate
	}

	iv = append(iv, Interval{})
	copy(iv[i+1:], iv[i:])
	iv[i] = entry
	s.timelines[k] = iv
	return nil
}

// Delete removes the interval matching start and end exactly. Removing the
// latest interval restores the preceding interval's end to the open-ended
// sentinel so the timeline stays open at the tail.
func (s *Store) Delete(plan string, key domain.RateKey, start, end time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := timelineKey{Plan: plan, Key: key}
	iv := s.timelines[k]

	i := s.indexOf(iv, start)
	if i < 0 || !iv[i].End.Equal(end) {
		return fmt.Errorf("delete %s/%s at %s: %w", plan, key, start.Format("2006-01-02"), ErrIntervalNotFound)
	}

	iv = append(iv[:i], iv[i+1:]...)
	if i == len(iv) && len(iv) > 0 {
		iv[len(iv)-1].End = InfiniteEndDate
	}

	if len(iv) == 0 {
		delete(s.timelines, k)
	} else {
		s.timelines[k] = iv
	}
	return nil
}

// UpdateRate replaces the rate of the interval starting exactly at start.
// No boundary re-stitching.
func (s *Store) UpdateRate(plan string, key domain.RateKey, start time.Time, rate decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := timelineKey{Plan: plan, Key: key}
	iv := s.timelines[k]
	i := s.indexOf(iv, start)
	if i < 0 {
		return fmt.Errorf("update rate %s/%s at %s: %w", plan, key, start.Format("2006-01-02"), ErrIntervalNotFound)
	}
	iv[i].Rate = rate
	return nil
}

// UpdateEndDate replaces the end date of the interval starting exactly at
// start. No boundary re-stitching.
func (s *Store) UpdateEndDate(plan string, key domain.RateKey, start, end time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := timelineKey{Plan: plan, Key: key}
	iv := s.timelines[k]
	i := s.indexOf(iv, start)
	if i < 0 {
		return fmt.Errorf("update end date %s/%s at %s: %w", plan, key, start.Format("2006-01-02"), ErrIntervalNotFound)
	}
	iv[i].End = end
	return nil
}

func (s *Store) indexOf(iv []Interval, start time.Time) int {
	i := sort.Search(len(iv), func(i int) bool { return !iv[i].Start.Before(start) })
	if i < len(iv) && iv[i].Start.Equal(start) {
		return i
	}
	return -1
}
