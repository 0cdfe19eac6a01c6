package main

import (
	"testing"

	"github.com/kalends-io/kalends/calendar"
	"github.com/kalends-io/kalends/instant"
)

func TestParseUnitCalendarNames(t *testing.T) {
	cases := map[string]calendar.Unit{
		"year":   calendar.Year,
		"MONTH":  calendar.Month,
		"Week":   calendar.Week,
		"day":    calendar.Day,
		"hour_3": calendar.Hour3,
	}
	for name, want := range cases {
		got, err := parseUnit(name)
		if err != nil {
			t.Fatalf("parseUnit(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("parseUnit(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseUnitRawDuration(t *testing.T) {
	got, err := parseUnit("90s")
	if err != nil {
		t.Fatal(err)
	}
	want := calendar.RawUnit(90 * instant.Second)
	if got != want {
		t.Errorf("parseUnit(90s) = %v, want %v", got, want)
	}
}

func TestParseUnitRejectsGarbage(t *testing.T) {
	if _, err := parseUnit("not-a-unit"); err == nil {
		t.Error("expected error for unrecognized unit")
	}
}
