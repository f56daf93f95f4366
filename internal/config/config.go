// Package config holds runtime configuration for the LCMHL schedule tool:
// the table mapping league identifiers to published feeds, the local
// timezone and the snapshot data directory. The table is passed into the
// fetch step explicitly so tests can substitute it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pfrederiksen/lcmhl-games/internal/feed"
)

// ErrUnknownLeague indicates a league with no configured feed. Reported
// before any network activity.
var ErrUnknownLeague = errors.New("unknown league")

// envFeedPrefix names the environment variables that override or add
// league feeds, e.g. LCMHL_FEED_ATOM_A. Underscores in the variable name
// map to dashes in the league identifier.
const envFeedPrefix = "LCMHL_FEED_"

// Feed describes where one league publishes its schedule.
type Feed struct {
	URL    string
	Source feed.Source
}

// Config captures runtime configuration for one invocation.
type Config struct {
	Feeds    map[string]Feed
	Timezone string
	DataDir  string
}

// defaultFeeds maps league identifiers to their published calendars. The
// Midget A schedule is only posted as a table on the league portal.
var defaultFeeds = map[string]Feed{
	"ATOM-A":   {URL: "https://calendar.google.com/calendar/ical/lcmhl.atom.a%40gmail.com/public/basic.ics", Source: feed.SourceICal},
	"ATOM-B":   {URL: "https://calendar.google.com/calendar/ical/lcmhl.atom.b%40gmail.com/public/basic.ics", Source: feed.SourceICal},
	"PEEWEE-A": {URL: "https://calendar.google.com/calendar/ical/lcmhl.peewee.a%40gmail.com/public/basic.ics", Source: feed.SourceICal},
	"BANTAM-A": {URL: "https://calendar.google.com/calendar/ical/lcmhl.bantam.a%40gmail.com/public/basic.ics", Source: feed.SourceICal},
	"MIDGET-A": {URL: "https://lcmhl.ca/schedule/midget-a", Source: feed.SourceWeb},
}

// FromEnv creates a configuration instance from compiled-in defaults,
// overridden by environment variables (and an optional .env file).
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Feeds:    make(map[string]Feed, len(defaultFeeds)),
		Timezone: getEnv("LCMHL_TIMEZONE", "America/Toronto"),
		DataDir:  getEnv("LCMHL_DATA_DIR", "~/.local/share/lcmhl-games"),
	}
	for league, f := range defaultFeeds {
		cfg.Feeds[league] = f
	}

	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, envFeedPrefix) || value == "" {
			continue
		}
		league := strings.ReplaceAll(strings.TrimPrefix(key, envFeedPrefix), "_", "-")
		cfg.Feeds[league] = Feed{URL: value, Source: feed.SourceICal}
	}

	return cfg, nil
}

// Feed returns the configured feed for league, matched case-insensitively.
func (c Config) Feed(league string) (Feed, error) {
	f, ok := c.Feeds[NormalizeLeague(league)]
	if !ok {
		return Feed{}, fmt.Errorf("%w: %s", ErrUnknownLeague, league)
	}
	return f, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// NormalizeLeague canonicalizes a league identifier for table lookups and
// snapshot file names.
func NormalizeLeague(league string) string {
	return strings.ToUpper(strings.TrimSpace(league))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
