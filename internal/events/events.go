package events

import (
	"time"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/i18n"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/model"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/recurrence"
)

// Catalog holds the club's static event list. It is configuration data:
// constructed once, read-only afterwards.
type Catalog struct {
	events []model.Event
	bundle *i18n.Bundle
}

// NewCatalog returns the catalog of club events, localized through bundle.
func NewCatalog(bundle *i18n.Bundle) *Catalog {
	return &Catalog{events: defaultEvents(), bundle: bundle}
}

// All returns every event in catalog order.
func (c *Catalog) All() []model.Event {
	out := make([]model.Event, len(c.events))
	copy(out, c.events)
	return out
}

// ByID returns the event with the given id.
func (c *Catalog) ByID(id int) (model.Event, bool) {
	for _, ev := range c.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.Event{}, false
}

// Featured returns the events shown in the home-screen carousel.
func (c *Catalog) Featured() []model.Event {
	var out []model.Event
	for _, ev := range c.events {
		if ev.Featured {
			out = append(out, ev)
		}
	}
	return out
}

// Localized is the presentation view of an event: every field is ready
// for verbatim display in one language.
type Localized struct {
	ID                  int          `json:"id"`
	Title               string       `json:"title"`
	DisplayDate         string       `json:"display_date"`
	DateText            string       `json:"date_text"`
	Location            string       `json:"location"`
	Description         string       `json:"description"`
	DetailedDescription string       `json:"detailed_description"`
	Featured            bool         `json:"featured"`
	Weekly              bool         `json:"weekly"`
	Difficulty          []string     `json:"difficulty"`
	Prices              []PriceEntry `json:"prices"`
	Distances           []string     `json:"distances"`
	StartTime           string       `json:"start_time"`
	RegistrationURL     string       `json:"registration_url"`
}

// PriceEntry is one localized price row.
type PriceEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Localize renders ev for lang. Weekly events get their display date
// computed from now via the recurrence formatter; one-off events keep the
// stored date text.
func (c *Catalog) Localize(ev model.Event, now time.Time, lang i18n.Language) Localized {
	dateText := c.text(ev, "Date", ev.DateText, lang)

	out := Localized{
		ID:                  ev.ID,
		Title:               c.text(ev, "Title", ev.Title, lang),
		DateText:            dateText,
		DisplayDate:         recurrence.DisplayDate(ev.Title, dateText, ev.StartTime, now, lang),
		Location:            c.text(ev, "Location", ev.Location, lang),
		Description:         c.text(ev, "Description", ev.Description, lang),
		DetailedDescription: c.text(ev, "DetailedDescription", "", lang),
		Featured:            ev.Featured,
		Weekly:              recurrence.IsWeekly(ev.DateText),
		StartTime:           ev.StartTime,
		RegistrationURL:     ev.RegistrationURL,
	}

	for _, d := range ev.Difficulty {
		out.Difficulty = append(out.Difficulty, c.label(d, lang))
	}
	for _, p := range ev.Prices {
		out.Prices = append(out.Prices, PriceEntry{
			Label: c.label(p.Category, lang),
			Value: c.label(p.Value, lang),
		})
	}
	for _, d := range ev.Distances {
		out.Distances = append(out.Distances, c.label(d, lang))
	}
	return out
}

// LocalizeAll renders a list of events for lang.
func (c *Catalog) LocalizeAll(evs []model.Event, now time.Time, lang i18n.Language) []Localized {
	out := make([]Localized, 0, len(evs))
	for _, ev := range evs {
		out = append(out, c.Localize(ev, now, lang))
	}
	return out
}

// text resolves one "<key><suffix>" i18n resource with a canonical fallback.
func (c *Catalog) text(ev model.Event, suffix, fallback string, lang i18n.Language) string {
	key := ev.Key + suffix
	if c.bundle.Has(lang, key) || c.bundle.Has(i18n.English, key) {
		return c.bundle.T(lang, key)
	}
	return fallback
}

// label translates data values that double as i18n keys ("Gratuit",
// "Începător"); anything without a table entry is displayed literally.
func (c *Catalog) label(v string, lang i18n.Language) string {
	if c.bundle.Has(lang, v) || c.bundle.Has(i18n.English, v) {
		return c.bundle.T(lang, v)
	}
	return v
}

// raceDay is the 8th edition's start: October 4th 2025, 09:00 local time.
var raceDay = time.Date(2025, time.October, 4, 9, 0, 0, 0, bucharest())

func bucharest() *time.Location {
	loc, err := time.LoadLocation("Europe/Bucharest")
	if err != nil {
		return time.UTC
	}
	return loc
}

// defaultEvents mirrors the club's published 2025 program.
func defaultEvents() []model.Event {
	return []model.Event{
		{
			ID:          1,
			Key:         "event1",
			Title:       "Crosul Sperantei Blaj - Editia a VIII-a",
			DateText:    "4 Octombrie 2025",
			Location:    "Campia Libertatii, Blaj",
			Description: "Evenimentul principal al anului - crosul care aduna comunitatea pentru o cauza nobila.",
			Featured:    true,
			Difficulty:  []string{"Incepator", "Intermediar", "Avansat"},
			Prices: []model.PriceLine{
				{Category: "copii", Value: "Gratuit (sub 12 ani)"},
				{Category: "amatori", Value: "TBC RON"},
				{Category: "semimaraton", Value: "TBC RON"},
			},
			Distances:       []string{"3 km", "10 km", "21 km (semimaraton)"},
			StartTime:       "09:00",
			RegistrationURL: "https://racetime.ro/events/153/register",
			Date:            raceDay,
		},
		{
			ID:          2,
			Key:         "event2",
			Title:       "Coffee Run",
			DateText:    "Sâmbătă, 19 Iulie (Săptămânal)",
			Location:    "15400 (Vezi harta pentru rută)",
			Description: "Alergare relaxantă de 10km pentru începători - în fiecare sâmbătă dimineața.",
			Featured:    true,
			Difficulty:  []string{"Începător"},
			Prices: []model.PriceLine{
				{Category: "participare", Value: "Gratuit"},
			},
			Distances:       []string{"10 km"},
			StartTime:       "06:00",
			RegistrationURL: "https://strava.app.link/UcfoBqKd0Ub",
		},
		{
			ID:          3,
			Key:         "event3",
			Title:       "1h Tempo Running Session Wednesday",
			DateText:    "Miercuri, 16 Iulie (Săptămânal)",
			Location:    "Stadionul C.I.L.",
			Description: "Sesiune de antrenament tempo de 1 oră - nivel intermediar și începător.",
			Featured:    true,
			Difficulty:  []string{"Începător", "Intermediar"},
			Prices: []model.PriceLine{
				{Category: "participare", Value: "Gratuit"},
			},
			Distances:       []string{"Variază în funcție de nivel"},
			StartTime:       "19:45",
			RegistrationURL: "https://strava.app.link/KjhhilId0Ub",
		},
		{
			ID:          4,
			Key:         "event4",
			Title:       "Easy Run Mon & Fri",
			DateText:    "Luni și Vineri, 14 Iulie (Săptămânal)",
			Location:    "Kime Market",
			Description: "Alergare ușoară pentru începători - în fiecare luni și vineri seara.",
			Featured:    true,
			Difficulty:  []string{"Începător"},
			Prices: []model.PriceLine{
				{Category: "participare", Value: "Gratuit"},
			},
			Distances:       []string{"3-5 km (în funcție de nivel)"},
			StartTime:       "21:30",
			RegistrationURL: "https://strava.app.link/39KHNpGd0Ub",
		},
	}
}
