package pricing

import (
	"fmt"
	"time"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/i18n"
)

// PriceTable holds the registration fee (RON) per race category for one
// pricing period.
type PriceTable struct {
	ThreeKm      int `json:"three_km"`
	TenKm        int `json:"ten_km"`
	HalfMarathon int `json:"half_marathon"`
	Children     int `json:"children"`
}

// Period is a named, day-granular date interval carrying a price table.
// Both endpoints are inclusive. Periods are static configuration: built
// once, never mutated.
type Period struct {
	Name   string     `json:"name"`
	Start  time.Time  `json:"start"` // midnight in the resolver's location
	End    time.Time  `json:"end"`   // midnight in the resolver's location
	Prices PriceTable `json:"prices"`
}

// Resolver answers which pricing tier is active for a given date and how
// far away the next tier transition is. It is a pure lookup over an
// ordered, non-overlapping period list; all methods take the query time
// explicitly so results are deterministic.
type Resolver struct {
	periods []Period
	loc     *time.Location
}

// NewResolver builds a Resolver over periods, which must be in ascending,
// non-overlapping order. Dates are compared at day granularity in loc.
func NewResolver(periods []Period, loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	ps := make([]Period, len(periods))
	copy(ps, periods)
	return &Resolver{periods: ps, loc: loc}
}

// DefaultPeriods returns the Crosul Sperantei 2025 pricing calendar
// (race day October 4th).
func DefaultPeriods(loc *time.Location) []Period {
	if loc == nil {
		loc = time.Local
	}
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	return []Period{
		{
			Name:   "Early Bird",
			Start:  day(2025, time.July, 14),
			End:    day(2025, time.July, 31),
			Prices: PriceTable{ThreeKm: 50, TenKm: 70, HalfMarathon: 90, Children: 40},
		},
		{
			Name:   "Regular",
			Start:  day(2025, time.August, 1),
			End:    day(2025, time.August, 31),
			Prices: PriceTable{ThreeKm: 60, TenKm: 80, HalfMarathon: 100, Children: 40},
		},
		{
			Name:   "Late Registration",
			Start:  day(2025, time.September, 1),
			End:    day(2025, time.September, 28),
			Prices: PriceTable{ThreeKm: 80, TenKm: 100, HalfMarathon: 120, Children: 40},
		},
	}
}

// NewDefaultResolver returns a Resolver over the 2025 pricing calendar.
func NewDefaultResolver(loc *time.Location) *Resolver {
	return NewResolver(DefaultPeriods(loc), loc)
}

// Periods returns a copy of the configured period list.
func (r *Resolver) Periods() []Period {
	out := make([]Period, len(r.periods))
	copy(out, r.periods)
	return out
}

// dayOf truncates t to midnight in the resolver's location so that
// time-of-day never causes off-by-one period boundaries.
func (r *Resolver) dayOf(t time.Time) time.Time {
	t = t.In(r.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.loc)
}

// CurrentPeriod returns the period containing t, or nil when t falls in a
// gap before, between or after the configured periods (the "registration
// closed" state).
func (r *Resolver) CurrentPeriod(t time.Time) *Period {
	d := r.dayOf(t)
	for i := range r.periods {
		p := &r.periods[i]
		if !d.Before(p.Start) && !d.After(p.End) {
			out := *p
			return &out
		}
	}
	return nil
}

// NextPeriod returns the first period whose start date is strictly after
// t, or nil when t is on or after the last period's start.
func (r *Resolver) NextPeriod(t time.Time) *Period {
	d := r.dayOf(t)
	for i := range r.periods {
		p := &r.periods[i]
		if p.Start.After(d) {
			out := *p
			return &out
		}
	}
	return nil
}

// DaysUntilNextPeriod returns the number of calendar days from t until the
// next period begins. ok is false when no next period exists.
func (r *Resolver) DaysUntilNextPeriod(t time.Time) (days int, ok bool) {
	next := r.NextPeriod(t)
	if next == nil {
		return 0, false
	}
	// Compare the two midnights on a UTC day grid so DST transitions in
	// the display timezone cannot skew the count.
	d := r.dayOf(t)
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(next.Start.Year(), next.Start.Month(), next.Start.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour)), true
}

// RegistrationOpen reports whether t is on or before the last period's end
// date. It stays true inside gaps between periods, where CurrentPeriod
// returns nil.
func (r *Resolver) RegistrationOpen(t time.Time) bool {
	if len(r.periods) == 0 {
		return false
	}
	last := r.periods[len(r.periods)-1]
	return !r.dayOf(t).After(last.End)
}

// QueryResult is a per-query view over the period list.
type QueryResult struct {
	Current       *Period `json:"current"`
	Next          *Period `json:"next"`
	DaysUntilNext int     `json:"days_until_next"`
	HasNext       bool    `json:"has_next"`
}

// Query bundles CurrentPeriod, NextPeriod and DaysUntilNextPeriod into a
// single derived view.
func (r *Resolver) Query(t time.Time) QueryResult {
	res := QueryResult{
		Current: r.CurrentPeriod(t),
		Next:    r.NextPeriod(t),
	}
	if res.Next != nil {
		res.DaysUntilNext, res.HasNext = r.DaysUntilNextPeriod(t)
	}
	return res
}

// Prices is the presentation view of the active price table, with every
// field ready for verbatim display. When registration is closed all fields
// carry the localized closed message instead.
type Prices struct {
	Children     string `json:"copii"`
	Amateurs     string `json:"amatori"`
	HalfMarathon string `json:"semimaraton"`
	Period       string `json:"period"`
	Closed       bool   `json:"closed"`
}

// CurrentPrices formats the active period's price table for display in
// lang. The 3km and 10km amateur categories are merged into one composite
// string. Without an active period every field carries the localized
// closed message; this never fails regardless of the input date.
func (r *Resolver) CurrentPrices(t time.Time, bundle *i18n.Bundle, lang i18n.Language) Prices {
	current := r.CurrentPeriod(t)
	if current == nil {
		closed := bundle.T(lang, "registrationClosed")
		return Prices{
			Children:     closed,
			Amateurs:     closed,
			HalfMarathon: closed,
			Period:       closed,
			Closed:       true,
		}
	}

	p := current.Prices
	return Prices{
		Children:     fmt.Sprintf("%d RON", p.Children),
		Amateurs:     fmt.Sprintf("%d RON (3km) / %d RON (10km)", p.ThreeKm, p.TenKm),
		HalfMarathon: fmt.Sprintf("%d RON", p.HalfMarathon),
		Period:       current.Name,
	}
}
