package main

import (
	"strings"
	"testing"
	"time"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/model"
)

func TestResolveConfigPath(t *testing.T) {
	cases := []struct {
		name string
		flag string
		env  string
		want string
	}{
		{"flagWins", "/tmp/flag.yaml", "/tmp/env.yaml", "/tmp/flag.yaml"},
		{"envFallback", "", "/tmp/env.yaml", "/tmp/env.yaml"},
		{"packagedDefault", "", "", "/etc/runnerapp/config.yaml"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveConfigPath(tc.flag, tc.env); got != tc.want {
				t.Fatalf("resolveConfigPath(%q, %q) = %q, want %q", tc.flag, tc.env, got, tc.want)
			}
		})
	}
}

func TestWriteScheduleText(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Bucharest")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	var b strings.Builder
	writeScheduleText(&b, []model.Occurrence{
		{
			EventID:  3,
			Title:    "1h Tempo Running Session Wednesday",
			Location: "Stadionul C.I.L.",
			Start:    time.Date(2025, 7, 16, 19, 45, 0, 0, loc),
			Weekly:   true,
		},
	})
	out := b.String()
	if !strings.Contains(out, "Wed 2025-07-16 19:45") {
		t.Errorf("missing timestamp: %q", out)
	}
	if !strings.Contains(out, "1h Tempo Running Session Wednesday @ Stadionul C.I.L.") {
		t.Errorf("missing title/location: %q", out)
	}
}

func TestWriteScheduleTextEmpty(t *testing.T) {
	var b strings.Builder
	writeScheduleText(&b, nil)
	if !strings.Contains(b.String(), "no upcoming sessions") {
		t.Errorf("empty dump = %q", b.String())
	}
}
