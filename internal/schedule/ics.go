package schedule

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/model"
)

const (
	icsProductID    = "-//Running & Cycling Club Blaj//Crosul Sperantei//RO"
	icsCalendarName = "Crosul Sperantei Blaj"
	icsTimezone     = "Europe/Bucharest"

	// Training sessions and the race are published as one-hour blocks;
	// exact durations vary on the day and are not part of the feed.
	occurrenceDuration = time.Hour
)

// BuildICS renders occurrences as an iCalendar subscription feed.
//
// Feed semantics rather than download semantics: METHOD:PUBLISH, a
// suggested refresh interval, and UIDs that stay stable across refreshes
// so calendar apps update events in place.
func BuildICS(occs []model.Occurrence, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName(icsCalendarName)
	cal.SetXWRTimezone(icsTimezone)
	cal.SetXPublishedTTL("PT1H")

	for _, occ := range occs {
		ev := cal.AddEvent(occurrenceUID(occ))
		ev.SetDtStampTime(now.UTC())
		ev.SetStartAt(occ.Start)
		ev.SetEndAt(occ.Start.Add(occurrenceDuration))
		ev.SetSummary(occ.Title)
		ev.SetLocation(occ.Location)
	}

	return cal.Serialize()
}

// occurrenceUID derives a stable per-instance UID from the event ID and
// the occurrence's local start time.
func occurrenceUID(occ model.Occurrence) string {
	return fmt.Sprintf("event-%d-%s@crosulsperantei.ro", occ.EventID, occ.Start.Format("20060102T150405"))
}
