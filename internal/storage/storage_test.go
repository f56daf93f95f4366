package storage

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/lcmhl-games/internal/game"
)

func testSchedule() *game.Schedule {
	return &game.Schedule{
		League: "ATOM-A",
		Games: []game.Record{
			{
				Key:        "PORT-20260110-1830",
				League:     "ATOM-A",
				Kind:       game.RegularSeason,
				GameNumber: "42",
				Venue:      "Port Credit Arena",
				Date:       time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
				Time:       "6:30 PM",
				HomeTeam:   "Royals",
				AwayTeam:   "Raiders",
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	original := testSchedule()
	if err := store.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load("atom-a")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(loaded.Games))
	}
	if loaded.Games[0] != original.Games[0] {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded.Games[0], original.Games[0])
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	sched, err := store.Load("BANTAM-A")
	if err != nil {
		t.Fatalf("expected empty schedule for missing snapshot, got error: %v", err)
	}
	if sched.League != "BANTAM-A" {
		t.Errorf("unexpected league %q", sched.League)
	}
	if len(sched.Games) != 0 {
		t.Errorf("expected empty schedule, got %d games", len(sched.Games))
	}
}

func TestLoadMalformedSnapshot(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := os.WriteFile(store.Path("ATOM-A"), []byte("only,three,columns\n"), 0644); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}

	_, err = store.Load("ATOM-A")
	if err == nil {
		t.Fatal("expected error for malformed snapshot")
	}
	if !errors.Is(err, game.ErrMalformedRecordLine) {
		t.Errorf("expected ErrMalformedRecordLine, got %v", err)
	}
}

func TestPathNormalizesLeague(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if !strings.HasSuffix(store.Path("atom-a"), "schedule_ATOM-A.csv") {
		t.Errorf("unexpected snapshot path %q", store.Path("atom-a"))
	}
}
