package game

import (
	"strings"
	"time"
)

// Kind classifies a game within the season structure.
type Kind string

const (
	RegularSeason Kind = "REGULAR_SEASON"
	Playoff       Kind = "PLAYOFF"
)

// Record represents a single scheduled game. Records are immutable after
// construction; Key is derived once from venue, date and time and is never
// recomputed when a record is reloaded from a persisted snapshot.
type Record struct {
	Key        string
	League     string
	Kind       Kind
	Date       time.Time // calendar date only, local
	Time       string    // 12-hour clock with AM/PM marker, e.g. "6:30 PM"
	Venue      string
	GameNumber string // league-assigned number, or UnknownGameNumber
	HomeTeam   string
	AwayTeam   string
	Note       string // optional annotation, e.g. "TIME CHANGE"; empty when absent
}

// NewRecord builds a Record from one parsed feed event. start must already
// be normalized to local time; location keeps only its first comma segment.
func NewRecord(league string, parsed Parsed, start time.Time, location string) (Record, error) {
	venue := Venue(location)
	clock := start.Format(clockLayout)
	key, err := DeriveKey(venue, start, clock)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Key:        key.String(),
		League:     league,
		Kind:       parsed.Kind,
		Date:       time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		Time:       clock,
		Venue:      venue,
		GameNumber: parsed.GameNumber,
		HomeTeam:   parsed.HomeTeam,
		AwayTeam:   parsed.AwayTeam,
		Note:       parsed.Note,
	}, nil
}

// Venue extracts the venue from a feed location string: the first
// comma-delimited segment only, later segments (city, province) discarded.
func Venue(location string) string {
	venue, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(venue)
}

// Line renders the record in the canonical column order used for both
// display and persistence: key,league,kind,gameNumber,venue,date,time,home,away.
func (r Record) Line() string {
	return strings.Join([]string{
		r.Key,
		r.League,
		string(r.Kind),
		r.GameNumber,
		r.Venue,
		r.Date.Format(dateLayout),
		r.Time,
		r.HomeTeam,
		r.AwayTeam,
	}, ",")
}

// Matchup renders the comparison value for the record mapping.
func (r Record) Matchup() string {
	return "(" + r.GameNumber + ") " + r.AwayTeam + " @ " + r.HomeTeam
}

// StartTime combines the record's date and clock time in the given zone.
func (r Record) StartTime(loc *time.Location) (time.Time, error) {
	t, err := parseClock(r.Time)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
