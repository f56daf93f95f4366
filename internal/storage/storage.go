package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/lcmhl-games/internal/config"
	"github.com/pfrederiksen/lcmhl-games/internal/game"
)

// Store handles persistence of schedule snapshots, one flat file per
// league. A save happens only after a fully successful parse pass, so a
// snapshot on disk is always complete.
type Store struct {
	dataDir string
}

// New creates a Store rooted at dataDir, creating it if needed.
func New(dataDir string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{dataDir: dataDir}, nil
}

// Path returns the snapshot file path for a league.
func (s *Store) Path(league string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("schedule_%s.csv", config.NormalizeLeague(league)))
}

// Load reads the persisted snapshot for a league. A missing snapshot is
// not an error: it loads as an empty schedule, so a first compare reports
// every fetched game as added.
func (s *Store) Load(league string) (*game.Schedule, error) {
	data, err := os.ReadFile(s.Path(league))
	if err != nil {
		if os.IsNotExist(err) {
			return &game.Schedule{League: config.NormalizeLeague(league)}, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	sched, err := game.ParseSchedule(config.NormalizeLeague(league), string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return sched, nil
}

// Save writes a schedule snapshot to disk, replacing any previous one.
func (s *Store) Save(sched *game.Schedule) error {
	path := s.Path(sched.League)
	if err := os.WriteFile(path, []byte(sched.PersistedText()), 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
