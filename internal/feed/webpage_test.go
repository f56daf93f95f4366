package feed

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestParseWebpage(t *testing.T) {
	data, err := os.ReadFile("testdata/sample_schedule.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	client := New(testZone)
	events, err := client.parseWebpage(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parseWebpage failed: %v", err)
	}

	// The header row and the undated photo-day row are skipped.
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.Description != "Raiders @ Royals - Regular Season GAME - LCMHL Game No. 42" {
		t.Errorf("unexpected description: %q", first.Description)
	}
	if first.Location != "Port Credit Arena, Mississauga" {
		t.Errorf("unexpected location: %q", first.Location)
	}
	want := time.Date(2026, time.January, 10, 18, 30, 0, 0, testZone)
	if !first.Start.Equal(want) {
		t.Errorf("expected start %v, got %v", want, first.Start)
	}

	// The second row uses the "Jan 2, 2006" layout.
	second := events[1]
	if second.Start.Month() != time.January || second.Start.Day() != 18 || second.Start.Hour() != 9 {
		t.Errorf("unexpected start for second event: %v", second.Start)
	}
}

func TestParseWebStart(t *testing.T) {
	client := New(testZone)

	tests := []struct {
		dateText string
		timeText string
		wantErr  bool
	}{
		{"2026-01-10", "6:30 PM", false},
		{"Jan 18, 2026", "9:00 AM", false},
		{"January 18, 2026", "9:00 am", false},
		{"01/10/2026", "6:30 PM", false},
		{"TBD", "6:30 PM", true},
		{"2026-01-10", "", true},
		{"2026-01-10", "18:30", true},
	}

	for _, tt := range tests {
		t.Run(tt.dateText+" "+tt.timeText, func(t *testing.T) {
			start, err := client.parseWebStart(tt.dateText, tt.timeText)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", start)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
