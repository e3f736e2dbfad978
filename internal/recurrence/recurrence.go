package recurrence

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/i18n"
)

// NextOccurrence is the computed next instance of a weekly event,
// relative to a caller-supplied "now".
type NextOccurrence struct {
	// FormattedDate is the localized display string, e.g. "Today, 19:45"
	// or "Miercuri, 16 iulie, 19:45".
	FormattedDate string
	// DaysUntil is the number of days from now to the occurrence. It is 7
	// only when today's session has already started (rolled a full week).
	DaysUntil int
	// IsNextWeek is set for the rolled-over case above.
	IsNextWeek bool
	// Date is the occurrence's calendar date.
	Date time.Time
	// Weekday is the matched weekday the occurrence falls on.
	Weekday time.Weekday
}

// weekdayPattern matches one weekday's English name, common 3-letter
// abbreviation, or Romanian name inside free text. Boundaries are checked
// against any Unicode letter so names ending in diacritics (sâmbătă,
// duminică) still match whole words only.
type weekdayPattern struct {
	day time.Weekday
	re  *regexp.Regexp
}

func compileDayPattern(names ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[^\p{L}])(` + strings.Join(names, "|") + `)([^\p{L}]|$)`)
}

// Patterns are tried in Monday-first order, matching the event titles the
// club actually uses ("Easy Run Mon & Fri", "Tempo ... Wednesday").
var weekdayPatterns = []weekdayPattern{
	{time.Monday, compileDayPattern("monday", "mon", "luni")},
	{time.Tuesday, compileDayPattern("tuesday", "tue", "marți")},
	{time.Wednesday, compileDayPattern("wednesday", "wed", "miercuri")},
	{time.Thursday, compileDayPattern("thursday", "thu", "joi")},
	{time.Friday, compileDayPattern("friday", "fri", "vineri")},
	{time.Saturday, compileDayPattern("saturday", "sat", "sâmbătă")},
	{time.Sunday, compileDayPattern("sunday", "sun", "duminică")},
}

// ExtractWeekdays returns the weekdays referenced in an event title.
// A title referencing no weekday yields an empty slice, except for the
// "coffee run" special case which defaults to Saturday.
func ExtractWeekdays(title string) []time.Weekday {
	var days []time.Weekday
	for _, p := range weekdayPatterns {
		if p.re.MatchString(title) {
			days = append(days, p.day)
		}
	}

	// The Saturday Coffee Run never spells out its weekday.
	if len(days) == 0 && strings.Contains(strings.ToLower(title), "coffee run") {
		days = append(days, time.Saturday)
	}

	return days
}

// parseStartTime parses a trusted "HH:MM" value into minutes past
// midnight. Malformed values report ok=false so callers can fail soft.
func parseStartTime(s string) (minutes int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return h*60 + m, true
}

// NextWeeklyOccurrence computes the next occurrence of a weekly event from
// the weekday names embedded in its title and its start time, relative to
// now. It returns nil (never an error) when no weekday can be extracted or
// the start time is malformed; the caller then keeps the literal date text.
//
// A session happening today whose start time has already passed counts as
// next week's session, not today's.
func NextWeeklyOccurrence(title, startTime string, now time.Time, lang i18n.Language) *NextOccurrence {
	days := ExtractWeekdays(title)
	if len(days) == 0 {
		return nil
	}

	startMinutes, ok := parseStartTime(startTime)
	if !ok {
		return nil
	}
	nowMinutes := now.Hour()*60 + now.Minute()

	best := -1
	var bestDay time.Weekday
	for _, day := range days {
		until := (int(day) - int(now.Weekday()) + 7) % 7
		if until == 0 && nowMinutes >= startMinutes {
			until = 7
		}
		if best < 0 || until < best {
			best = until
			bestDay = day
		}
	}

	date := now.AddDate(0, 0, best)
	occ := &NextOccurrence{
		DaysUntil:  best,
		IsNextWeek: best > 6,
		Date:       date,
		Weekday:    bestDay,
	}
	occ.FormattedDate = formatOccurrence(occ, startTime, lang)
	return occ
}

// formatOccurrence renders the localized display string. Romanian puts
// the day number before the month and lowercases month names.
func formatOccurrence(occ *NextOccurrence, startTime string, lang i18n.Language) string {
	switch occ.DaysUntil {
	case 0:
		if lang == i18n.Romanian {
			return "Astăzi, " + startTime
		}
		return "Today, " + startTime
	case 1:
		if lang == i18n.Romanian {
			return "Mâine, " + startTime
		}
		return "Tomorrow, " + startTime
	}

	if lang == i18n.Romanian {
		return fmt.Sprintf("%s, %d %s, %s",
			DayName(occ.Weekday, i18n.Romanian), occ.Date.Day(), MonthName(occ.Date.Month(), i18n.Romanian), startTime)
	}
	return fmt.Sprintf("%s, %s %d, %s",
		DayName(occ.Weekday, i18n.English), MonthName(occ.Date.Month(), i18n.English), occ.Date.Day(), startTime)
}

// IsWeekly reports whether an event's date text marks it as a weekly
// recurring event.
func IsWeekly(dateText string) bool {
	lower := strings.ToLower(dateText)
	return strings.Contains(lower, "săptămânal") ||
		strings.Contains(lower, "weekly") ||
		strings.Contains(lower, "în fiecare") ||
		strings.Contains(lower, "every")
}

// DisplayDate returns the display string for an event's date: weekly
// events with a computable next occurrence get a localized "Next: "
// prefix, everything else passes the stored date text through unchanged.
func DisplayDate(title, dateText, startTime string, now time.Time, lang i18n.Language) string {
	if IsWeekly(dateText) {
		if occ := NextWeeklyOccurrence(title, startTime, now, lang); occ != nil {
			prefix := "Next: "
			if lang == i18n.Romanian {
				prefix = "Următorul: "
			}
			return prefix + occ.FormattedDate
		}
	}
	return dateText
}
