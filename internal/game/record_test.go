package game

import (
	"testing"
	"time"
)

func TestNewRecord(t *testing.T) {
	toronto := time.FixedZone("EST", -5*60*60)
	start := time.Date(2026, time.January, 10, 18, 30, 0, 0, toronto)
	parsed := Parsed{
		AwayTeam:   "Raiders",
		HomeTeam:   "Royals",
		Kind:       RegularSeason,
		GameNumber: "42",
		Note:       "TIME CHANGE",
	}

	rec, err := NewRecord("ATOM-A", parsed, start, "Port Credit Arena, Mississauga, ON")
	if err != nil {
		t.Fatalf("NewRecord failed: %v", err)
	}

	if rec.Key != "PORT-20260110-1830" {
		t.Errorf("unexpected key %q", rec.Key)
	}
	if rec.Venue != "Port Credit Arena" {
		t.Errorf("expected first comma segment only, got %q", rec.Venue)
	}
	if rec.Date.Format("2006-01-02") != "2026-01-10" {
		t.Errorf("unexpected date %v", rec.Date)
	}
	if rec.Time != "6:30 PM" {
		t.Errorf("unexpected time %q", rec.Time)
	}
	if rec.League != "ATOM-A" || rec.Kind != RegularSeason || rec.GameNumber != "42" {
		t.Errorf("unexpected record fields: %+v", rec)
	}
	if rec.Note != "TIME CHANGE" {
		t.Errorf("unexpected note %q", rec.Note)
	}
}

func TestRecordStartTime(t *testing.T) {
	toronto := time.FixedZone("EST", -5*60*60)
	rec := Record{
		Date: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		Time: "6:30 PM",
	}

	start, err := rec.StartTime(toronto)
	if err != nil {
		t.Fatalf("StartTime failed: %v", err)
	}
	want := time.Date(2026, time.January, 10, 18, 30, 0, 0, toronto)
	if !start.Equal(want) {
		t.Errorf("StartTime = %v, want %v", start, want)
	}

	rec.Time = "sometime"
	if _, err := rec.StartTime(toronto); err == nil {
		t.Error("expected error for unparseable time")
	}
}
