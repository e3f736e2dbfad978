package schedule

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/events"
	appLog "github.com/RoxanaAnamariaTurc/runner-app/internal/log"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/model"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/recurrence"
)

const defaultMaxOccurrencesPerEvent = 500

// Expander turns the static event catalog into concrete upcoming
// occurrences: weekly sessions are expanded via their recurrence rule,
// one-off events pass through when they fall inside the window.
type Expander struct {
	catalog *events.Catalog
	loc     *time.Location

	// MaxOccurrencesPerEvent caps a single event's expansion as a safety
	// net; zero means defaultMaxOccurrencesPerEvent.
	MaxOccurrencesPerEvent int
}

// NewExpander builds an Expander over catalog. Occurrences are produced
// in loc; nil falls back to time.Local.
func NewExpander(catalog *events.Catalog, loc *time.Location) *Expander {
	if loc == nil {
		loc = time.Local
	}
	return &Expander{catalog: catalog, loc: loc}
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// Upcoming returns all occurrences in [now, now+horizonDays], sorted by
// start time.
func (e *Expander) Upcoming(now time.Time, horizonDays int) ([]model.Occurrence, error) {
	if horizonDays <= 0 {
		return nil, errors.New("schedule: horizonDays must be positive")
	}

	now = now.In(e.loc)
	end := now.AddDate(0, 0, horizonDays)

	var out []model.Occurrence
	for _, ev := range e.catalog.All() {
		if recurrence.IsWeekly(ev.DateText) {
			occs, err := e.expandWeekly(ev, now, end)
			if err != nil {
				// A bad rule for one event must not break the whole feed.
				appLog.Error("schedule: weekly expansion failed", err, "event_id", ev.ID, "title", ev.Title)
				continue
			}
			out = append(out, occs...)
			continue
		}

		if !ev.Date.IsZero() && !ev.Date.Before(now) && !ev.Date.After(end) {
			out = append(out, model.Occurrence{
				EventID:  ev.ID,
				Title:    ev.Title,
				Location: ev.Location,
				Start:    ev.Date.In(e.loc),
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// expandWeekly expands one weekly event into occurrences within [now, end]
// using an RRULE built from the weekday names in its title.
func (e *Expander) expandWeekly(ev model.Event, now, end time.Time) ([]model.Occurrence, error) {
	days := recurrence.ExtractWeekdays(ev.Title)
	if len(days) == 0 {
		return nil, errors.New("no weekday in title")
	}

	if !ev.HasStartTime() {
		return nil, errors.New("no start time")
	}
	hour, minute, ok := splitStartTime(ev.StartTime)
	if !ok {
		return nil, errors.New("malformed start time " + ev.StartTime)
	}

	byDay := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		byDay = append(byDay, rruleWeekdays[d])
	}

	// Anchor DTSTART a week before the window at the session's
	// time-of-day so today's not-yet-started session is still included.
	anchor := now.AddDate(0, 0, -7)
	dtstart := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), hour, minute, 0, 0, e.loc)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byDay,
		Dtstart:   dtstart,
	})
	if err != nil {
		return nil, err
	}

	limit := e.MaxOccurrencesPerEvent
	if limit <= 0 {
		limit = defaultMaxOccurrencesPerEvent
	}

	times := rule.Between(now, end, true)
	if len(times) > limit {
		times = times[:limit]
	}

	occs := make([]model.Occurrence, 0, len(times))
	for _, t := range times {
		occs = append(occs, model.Occurrence{
			EventID:  ev.ID,
			Title:    ev.Title,
			Location: ev.Location,
			Start:    t.In(e.loc),
			Weekly:   true,
		})
	}
	return occs, nil
}

func splitStartTime(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return h, m, true
}
