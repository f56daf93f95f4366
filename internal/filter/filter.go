// Package filter narrows a parsed schedule for display.
//
// List mode can be restricted by team, venue, date range, weekends and
// upcoming-only. All string criteria are case-insensitive substring
// matches; an empty filter matches every game.
package filter

import (
	"strings"
	"time"

	"github.com/pfrederiksen/lcmhl-games/internal/game"
)

// Filter represents game filtering criteria.
type Filter struct {
	// Team name filtering; matches either home or away team.
	Teams []string

	// Venue filtering.
	Venues []string

	// Date range filtering (inclusive).
	From *time.Time
	To   *time.Time

	// Weekend-only filtering (Saturday/Sunday).
	WeekendsOnly bool

	// Upcoming-only filtering: drop games dated before today.
	UpcomingOnly bool

	// now is overridable for tests; defaults to time.Now.
	now func() time.Time
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return len(f.Teams) == 0 &&
		len(f.Venues) == 0 &&
		f.From == nil &&
		f.To == nil &&
		!f.WeekendsOnly &&
		!f.UpcomingOnly
}

// Matches reports whether a game passes all active criteria.
func (f *Filter) Matches(g game.Record) bool {
	if f.From != nil && g.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && g.Date.After(*f.To) {
		return false
	}

	if f.WeekendsOnly {
		weekday := g.Date.Weekday()
		if weekday != time.Saturday && weekday != time.Sunday {
			return false
		}
	}

	if f.UpcomingOnly && g.Date.Before(f.today()) {
		return false
	}

	if len(f.Teams) > 0 && !matchesAny(f.Teams, g.HomeTeam, g.AwayTeam) {
		return false
	}
	if len(f.Venues) > 0 && !matchesAny(f.Venues, g.Venue) {
		return false
	}

	return true
}

// Apply returns the games that match all criteria. An empty filter
// returns the original slice unchanged.
func (f *Filter) Apply(games []game.Record) []game.Record {
	if f.IsEmpty() {
		return games
	}

	matched := make([]game.Record, 0, len(games))
	for _, g := range games {
		if f.Matches(g) {
			matched = append(matched, g)
		}
	}
	return matched
}

// today truncates the current time to a UTC calendar date, the same shape
// record dates carry.
func (f *Filter) today() time.Time {
	nowFn := f.now
	if nowFn == nil {
		nowFn = time.Now
	}
	n := nowFn()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// matchesAny reports whether any candidate contains any of the wanted
// values, case-insensitively.
func matchesAny(wanted []string, candidates ...string) bool {
	for _, w := range wanted {
		w = strings.ToLower(w)
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c), w) {
				return true
			}
		}
	}
	return false
}
