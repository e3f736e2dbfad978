package pricing

import (
	"strings"
	"testing"
	"time"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/i18n"
)

func testResolver(t *testing.T) (*Resolver, *time.Location) {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Bucharest")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return NewDefaultResolver(loc), loc
}

func TestCurrentPeriodEndpointsInclusive(t *testing.T) {
	r, loc := testResolver(t)

	tests := []struct {
		name string
		date time.Time
		want string // expected period name, "" for nil
	}{
		{"before first period", time.Date(2025, 7, 13, 12, 0, 0, 0, loc), ""},
		{"early bird start", time.Date(2025, 7, 14, 0, 0, 0, 0, loc), "Early Bird"},
		{"early bird start with time of day", time.Date(2025, 7, 14, 18, 30, 0, 0, loc), "Early Bird"},
		{"inside early bird", time.Date(2025, 7, 20, 9, 0, 0, 0, loc), "Early Bird"},
		{"early bird end", time.Date(2025, 7, 31, 23, 59, 0, 0, loc), "Early Bird"},
		{"regular start", time.Date(2025, 8, 1, 0, 0, 0, 0, loc), "Regular"},
		{"regular end", time.Date(2025, 8, 31, 12, 0, 0, 0, loc), "Regular"},
		{"late start", time.Date(2025, 9, 1, 7, 0, 0, 0, loc), "Late Registration"},
		{"late end", time.Date(2025, 9, 28, 23, 0, 0, 0, loc), "Late Registration"},
		{"after last period", time.Date(2025, 9, 29, 0, 0, 0, 0, loc), ""},
		{"far future", time.Date(2030, 1, 1, 0, 0, 0, 0, loc), ""},
		{"far past", time.Date(1999, 1, 1, 0, 0, 0, 0, loc), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.CurrentPeriod(tt.date)
			if tt.want == "" {
				if got != nil {
					t.Errorf("CurrentPeriod(%s) = %q, want nil", tt.date, got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("CurrentPeriod(%s) = nil, want %q", tt.date, tt.want)
			}
			if got.Name != tt.want {
				t.Errorf("CurrentPeriod(%s) = %q, want %q", tt.date, got.Name, tt.want)
			}
		})
	}
}

func TestCurrentPeriodNilInGaps(t *testing.T) {
	loc := time.UTC
	// Periods with a deliberate gap between them.
	periods := []Period{
		{Name: "A", Start: time.Date(2025, 1, 1, 0, 0, 0, 0, loc), End: time.Date(2025, 1, 10, 0, 0, 0, 0, loc)},
		{Name: "B", Start: time.Date(2025, 1, 20, 0, 0, 0, 0, loc), End: time.Date(2025, 1, 31, 0, 0, 0, 0, loc)},
	}
	r := NewResolver(periods, loc)

	for d := 11; d <= 19; d++ {
		date := time.Date(2025, 1, d, 12, 0, 0, 0, loc)
		if got := r.CurrentPeriod(date); got != nil {
			t.Errorf("CurrentPeriod(Jan %d) = %q, want nil inside gap", d, got.Name)
		}
		// Registration stays open during the gap: the divergence from
		// CurrentPeriod is intentional and preserved.
		if !r.RegistrationOpen(date) {
			t.Errorf("RegistrationOpen(Jan %d) = false, want true inside gap", d)
		}
	}
}

func TestNextPeriod(t *testing.T) {
	r, loc := testResolver(t)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"before first", time.Date(2025, 6, 1, 0, 0, 0, 0, loc), "Early Bird"},
		{"inside early bird", time.Date(2025, 7, 20, 10, 0, 0, 0, loc), "Regular"},
		{"day before regular", time.Date(2025, 7, 31, 22, 0, 0, 0, loc), "Regular"},
		{"on regular start", time.Date(2025, 8, 1, 0, 0, 0, 0, loc), "Late Registration"},
		{"on last period start", time.Date(2025, 9, 1, 0, 0, 0, 0, loc), ""},
		{"after everything", time.Date(2025, 12, 1, 0, 0, 0, 0, loc), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.NextPeriod(tt.date)
			if tt.want == "" {
				if got != nil {
					t.Errorf("NextPeriod = %q, want nil", got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("NextPeriod = nil, want %q", tt.want)
			}
			if got.Name != tt.want {
				t.Errorf("NextPeriod = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestDaysUntilNextPeriodCountsDown(t *testing.T) {
	r, loc := testResolver(t)

	// Walk from July 20 toward the Regular period start (Aug 1): the count
	// must decrease by exactly 1 per calendar day until the transition.
	date := time.Date(2025, 7, 20, 15, 45, 0, 0, loc)
	want := 12
	for ; want >= 1; want-- {
		got, ok := r.DaysUntilNextPeriod(date)
		if !ok {
			t.Fatalf("DaysUntilNextPeriod(%s): no next period", date.Format("2006-01-02"))
		}
		if got != want {
			t.Fatalf("DaysUntilNextPeriod(%s) = %d, want %d", date.Format("2006-01-02"), got, want)
		}
		date = date.AddDate(0, 0, 1)
	}

	// On the start date itself the Regular period has begun, so the
	// countdown rolls over to the Late Registration transition.
	got, ok := r.DaysUntilNextPeriod(time.Date(2025, 8, 1, 9, 0, 0, 0, loc))
	if !ok || got != 31 {
		t.Errorf("DaysUntilNextPeriod(Aug 1) = %d, %v; want 31, true", got, ok)
	}

	// Inside the last period there is no further transition.
	if _, ok := r.DaysUntilNextPeriod(time.Date(2025, 9, 10, 0, 0, 0, 0, loc)); ok {
		t.Error("DaysUntilNextPeriod inside last period: want ok=false")
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	r, loc := testResolver(t)

	morning, _ := r.DaysUntilNextPeriod(time.Date(2025, 7, 30, 0, 1, 0, 0, loc))
	night, _ := r.DaysUntilNextPeriod(time.Date(2025, 7, 30, 23, 59, 0, 0, loc))
	if morning != night {
		t.Errorf("time of day changed the day count: %d vs %d", morning, night)
	}
	if morning != 2 {
		t.Errorf("DaysUntilNextPeriod(Jul 30) = %d, want 2", morning)
	}
}

func TestCurrentPricesEarlyBird(t *testing.T) {
	r, loc := testResolver(t)
	bundle := i18n.NewBundle()

	got := r.CurrentPrices(time.Date(2025, 7, 20, 10, 0, 0, 0, loc), bundle, i18n.English)
	if got.Closed {
		t.Fatal("CurrentPrices(Jul 20): registration reported closed")
	}
	if got.Period != "Early Bird" {
		t.Errorf("Period = %q, want Early Bird", got.Period)
	}
	if !strings.Contains(got.Amateurs, "50 RON (3km)") {
		t.Errorf("Amateurs = %q, want the 50 RON 3km tier", got.Amateurs)
	}
	if !strings.Contains(got.Amateurs, "70 RON (10km)") {
		t.Errorf("Amateurs = %q, want the 70 RON 10km tier", got.Amateurs)
	}
	if got.Children != "40 RON" {
		t.Errorf("Children = %q, want 40 RON", got.Children)
	}
	if got.HalfMarathon != "90 RON" {
		t.Errorf("HalfMarathon = %q, want 90 RON", got.HalfMarathon)
	}
}

func TestCurrentPricesClosedSentinel(t *testing.T) {
	r, loc := testResolver(t)
	bundle := i18n.NewBundle()

	date := time.Date(2025, 9, 29, 8, 0, 0, 0, loc)

	if r.CurrentPeriod(date) != nil {
		t.Error("CurrentPeriod(Sep 29) should be nil after the last period")
	}
	if r.RegistrationOpen(date) {
		t.Error("RegistrationOpen(Sep 29) should be false")
	}

	ro := r.CurrentPrices(date, bundle, i18n.Romanian)
	if !ro.Closed {
		t.Fatal("CurrentPrices(Sep 29): want closed sentinel")
	}
	for name, field := range map[string]string{
		"copii": ro.Children, "amatori": ro.Amateurs,
		"semimaraton": ro.HalfMarathon, "period": ro.Period,
	} {
		if field != "Înregistrările sunt închise" {
			t.Errorf("closed sentinel field %s = %q", name, field)
		}
	}

	en := r.CurrentPrices(date, bundle, i18n.English)
	if en.Period != "Registration is closed" {
		t.Errorf("closed sentinel (en) = %q", en.Period)
	}
}

func TestRegistrationOpenBoundary(t *testing.T) {
	r, loc := testResolver(t)

	if !r.RegistrationOpen(time.Date(2025, 9, 28, 23, 59, 0, 0, loc)) {
		t.Error("RegistrationOpen on the last period's end date should be true")
	}
	if r.RegistrationOpen(time.Date(2025, 9, 29, 0, 0, 0, 0, loc)) {
		t.Error("RegistrationOpen the day after the last period should be false")
	}
}

func TestQueryBundlesViews(t *testing.T) {
	r, loc := testResolver(t)

	res := r.Query(time.Date(2025, 8, 15, 12, 0, 0, 0, loc))
	if res.Current == nil || res.Current.Name != "Regular" {
		t.Fatalf("Query current = %+v, want Regular", res.Current)
	}
	if res.Next == nil || res.Next.Name != "Late Registration" {
		t.Fatalf("Query next = %+v, want Late Registration", res.Next)
	}
	if !res.HasNext || res.DaysUntilNext != 17 {
		t.Errorf("Query days until next = %d (%v), want 17", res.DaysUntilNext, res.HasNext)
	}
}

func TestResolverNeverPanicsOnEmptyConfig(t *testing.T) {
	r := NewResolver(nil, time.UTC)
	now := time.Now()

	if r.CurrentPeriod(now) != nil {
		t.Error("empty resolver: CurrentPeriod should be nil")
	}
	if r.NextPeriod(now) != nil {
		t.Error("empty resolver: NextPeriod should be nil")
	}
	if _, ok := r.DaysUntilNextPeriod(now); ok {
		t.Error("empty resolver: DaysUntilNextPeriod should report no next period")
	}
	if r.RegistrationOpen(now) {
		t.Error("empty resolver: RegistrationOpen should be false")
	}
	got := r.CurrentPrices(now, i18n.NewBundle(), i18n.English)
	if !got.Closed {
		t.Error("empty resolver: CurrentPrices should be the closed sentinel")
	}
}
