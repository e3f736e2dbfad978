package recurrence

import (
	"testing"
	"time"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/i18n"
)

// Wednesday, July 16 2025. All recurrence tests pin "now" explicitly.
func wednesdayAt(hour, minute int) time.Time {
	return time.Date(2025, 7, 16, hour, minute, 0, 0, time.UTC)
}

func TestExtractWeekdays(t *testing.T) {
	tests := []struct {
		title string
		want  []time.Weekday
	}{
		{"Easy Run Mon & Fri", []time.Weekday{time.Monday, time.Friday}},
		{"1h Tempo Running Session Wednesday", []time.Weekday{time.Wednesday}},
		{"Coffee Run", []time.Weekday{time.Saturday}},
		{"Alergare de sâmbătă dimineața", []time.Weekday{time.Saturday}},
		{"Antrenament MARȚI seara", []time.Weekday{time.Tuesday}},
		{"Track intervals (Thu)", []time.Weekday{time.Thursday}},
		// Substrings of unrelated words must not match.
		{"Monica's salmon dinner", nil},
		{"Saturn observation night", nil},
		{"Friendly 5k", nil},
		{"Crosul Sperantei Blaj - Editia a VIII-a", nil},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := ExtractWeekdays(tt.title)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractWeekdays(%q) = %v, want %v", tt.title, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ExtractWeekdays(%q)[%d] = %v, want %v", tt.title, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNextOccurrencePicksNearestWeekday(t *testing.T) {
	// Wednesday 14:00: Monday has wrapped to next week (5 days), Friday is
	// 2 days away, so Friday must win.
	occ := NextWeeklyOccurrence("Easy Run Mon & Fri", "21:30", wednesdayAt(14, 0), i18n.English)
	if occ == nil {
		t.Fatal("no occurrence computed")
	}
	if occ.Weekday != time.Friday {
		t.Errorf("Weekday = %v, want Friday", occ.Weekday)
	}
	if occ.DaysUntil != 2 {
		t.Errorf("DaysUntil = %d, want 2", occ.DaysUntil)
	}
	if occ.IsNextWeek {
		t.Error("IsNextWeek = true, want false")
	}
	if occ.FormattedDate != "Friday, July 18, 21:30" {
		t.Errorf("FormattedDate = %q", occ.FormattedDate)
	}
}

func TestNextOccurrenceCoffeeRunFallback(t *testing.T) {
	occ := NextWeeklyOccurrence("Coffee Run", "06:00", wednesdayAt(9, 0), i18n.Romanian)
	if occ == nil {
		t.Fatal("coffee run fallback did not produce an occurrence")
	}
	if occ.Weekday != time.Saturday {
		t.Errorf("Weekday = %v, want Saturday", occ.Weekday)
	}
	if occ.FormattedDate != "Sâmbătă, 19 iulie, 06:00" {
		t.Errorf("FormattedDate = %q", occ.FormattedDate)
	}
}

func TestNextOccurrenceSameDayBoundary(t *testing.T) {
	title := "1h Tempo Running Session Wednesday"

	// One minute before the session: still today.
	before := NextWeeklyOccurrence(title, "19:45", wednesdayAt(19, 44), i18n.English)
	if before == nil || before.DaysUntil != 0 {
		t.Fatalf("before start: got %+v, want DaysUntil 0", before)
	}
	if before.FormattedDate != "Today, 19:45" {
		t.Errorf("FormattedDate = %q, want Today, 19:45", before.FormattedDate)
	}

	// Exactly at the start time: rolls a full week forward.
	at := NextWeeklyOccurrence(title, "19:45", wednesdayAt(19, 45), i18n.English)
	if at == nil {
		t.Fatal("at start: no occurrence")
	}
	if at.DaysUntil != 7 {
		t.Errorf("at start: DaysUntil = %d, want 7", at.DaysUntil)
	}
	if !at.IsNextWeek {
		t.Error("at start: IsNextWeek = false, want true")
	}
	if at.FormattedDate != "Wednesday, July 23, 19:45" {
		t.Errorf("at start: FormattedDate = %q", at.FormattedDate)
	}

	// Past the start time behaves the same as exactly at it.
	after := NextWeeklyOccurrence(title, "19:45", wednesdayAt(22, 0), i18n.English)
	if after == nil || after.DaysUntil != 7 {
		t.Fatalf("after start: got %+v, want DaysUntil 7", after)
	}
}

func TestNextOccurrenceTomorrow(t *testing.T) {
	// Tuesday July 15 relative to the Wednesday session.
	now := time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC)

	en := NextWeeklyOccurrence("Tempo Wednesday", "19:45", now, i18n.English)
	if en == nil || en.FormattedDate != "Tomorrow, 19:45" {
		t.Fatalf("en = %+v, want Tomorrow, 19:45", en)
	}
	ro := NextWeeklyOccurrence("Tempo Wednesday", "19:45", now, i18n.Romanian)
	if ro == nil || ro.FormattedDate != "Mâine, 19:45" {
		t.Fatalf("ro = %+v, want Mâine, 19:45", ro)
	}
}

func TestLocaleTokenOrderDiffers(t *testing.T) {
	// The fallback templates order day and month differently per locale.
	now := wednesdayAt(10, 0)

	en := NextWeeklyOccurrence("Coffee Run", "06:00", now, i18n.English)
	if en == nil || en.FormattedDate != "Saturday, July 19, 06:00" {
		t.Fatalf("en = %+v, want Saturday, July 19, 06:00", en)
	}
	ro := NextWeeklyOccurrence("Coffee Run", "06:00", now, i18n.Romanian)
	if ro == nil || ro.FormattedDate != "Sâmbătă, 19 iulie, 06:00" {
		t.Fatalf("ro = %+v, want Sâmbătă, 19 iulie, 06:00", ro)
	}
}

func TestNextOccurrenceFailsSoft(t *testing.T) {
	now := wednesdayAt(12, 0)

	if occ := NextWeeklyOccurrence("Morning stretch", "07:00", now, i18n.English); occ != nil {
		t.Errorf("title without weekday: got %+v, want nil", occ)
	}
	if occ := NextWeeklyOccurrence("Tempo Wednesday", "late evening", now, i18n.English); occ != nil {
		t.Errorf("malformed start time: got %+v, want nil", occ)
	}
}

func TestNextOccurrenceIdempotent(t *testing.T) {
	now := wednesdayAt(14, 0)
	first := NextWeeklyOccurrence("Easy Run Mon & Fri", "21:30", now, i18n.Romanian)
	second := NextWeeklyOccurrence("Easy Run Mon & Fri", "21:30", now, i18n.Romanian)
	if first == nil || second == nil {
		t.Fatal("expected occurrences")
	}
	if *first != *second {
		t.Errorf("identical inputs produced different results: %+v vs %+v", first, second)
	}
}

func TestIsWeekly(t *testing.T) {
	tests := []struct {
		dateText string
		want     bool
	}{
		{"Sâmbătă, 19 Iulie (Săptămânal)", true},
		{"Saturday, July 19 (Weekly)", true},
		{"în fiecare miercuri", true},
		{"every Monday evening", true},
		{"4 Octombrie 2025", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsWeekly(tt.dateText); got != tt.want {
			t.Errorf("IsWeekly(%q) = %v, want %v", tt.dateText, got, tt.want)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	now := wednesdayAt(14, 0)

	// Weekly event: a localized prefix plus the computed occurrence.
	got := DisplayDate("Easy Run Mon & Fri", "Luni și Vineri, 14 Iulie (Săptămânal)", "21:30", now, i18n.Romanian)
	if got != "Următorul: Vineri, 18 iulie, 21:30" {
		t.Errorf("ro weekly DisplayDate = %q", got)
	}
	gotEn := DisplayDate("Easy Run Mon & Fri", "Monday and Friday, July 14 (Weekly)", "21:30", now, i18n.English)
	if gotEn != "Next: Friday, July 18, 21:30" {
		t.Errorf("en weekly DisplayDate = %q", gotEn)
	}

	// One-off event: literal text passes through.
	race := DisplayDate("Crosul Sperantei Blaj - Editia a VIII-a", "4 Octombrie 2025", "09:00", now, i18n.Romanian)
	if race != "4 Octombrie 2025" {
		t.Errorf("one-off DisplayDate = %q", race)
	}

	// Weekly text but no extractable weekday: literal text passes through.
	fallback := DisplayDate("Morning stretch", "Weekly mobility", "07:00", now, i18n.English)
	if fallback != "Weekly mobility" {
		t.Errorf("unparseable weekly DisplayDate = %q", fallback)
	}
}

func TestLocalizedNames(t *testing.T) {
	if got := DayName(time.Saturday, i18n.Romanian); got != "Sâmbătă" {
		t.Errorf("ro Saturday = %q", got)
	}
	if got := DayName(time.Wednesday, i18n.English); got != "Wednesday" {
		t.Errorf("en Wednesday = %q", got)
	}
	if got := MonthName(time.July, i18n.Romanian); got != "iulie" {
		t.Errorf("ro July = %q, want lowercase", got)
	}
	if got := MonthName(time.October, i18n.English); got != "October" {
		t.Errorf("en October = %q", got)
	}
}
