package model

import "time"

// Event is a club event as configured in the static catalog. Localizable
// text lives in the i18n tables under the "<Key>Title", "<Key>Date", etc.
// resource names; this struct carries only language-independent data plus
// the canonical (Romanian) fallbacks.
type Event struct {
	ID  int
	Key string // i18n resource prefix, e.g. "event1"

	// Canonical Romanian values, used when no translation exists.
	Title       string
	DateText    string // free text, may embed weekday names and "(Săptămânal)"
	Location    string
	Description string

	Featured bool

	// Difficulty and price labels reference i18n keys where possible.
	Difficulty []string
	Prices     []PriceLine
	Distances  []string

	StartTime       string // "HH:MM", 24-hour, from trusted configuration
	RegistrationURL string

	// Date is set for one-off events only; weekly events derive their
	// occurrences from the weekday names in the title.
	Date time.Time
}

// PriceLine is one row of an event's price list, in display order.
type PriceLine struct {
	Category string // i18n key, e.g. "copii", "participare"
	Value    string // literal or i18n key, e.g. "Gratuit"
}

func (e Event) HasStartTime() bool {
	return e.StartTime != ""
}

// Occurrence is a single concrete instance of a weekly event after
// recurrence expansion, in the configured display timezone.
type Occurrence struct {
	EventID  int       `json:"event_id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
	Start    time.Time `json:"start"`
	Weekly   bool      `json:"weekly"`
}
