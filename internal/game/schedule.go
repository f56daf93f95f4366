package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// persistedColumns is the column count of one persisted record line:
// key,league,kind,gameNumber,venue,date,time,home,away. Field values must
// not contain commas; the format has no quoting or escaping.
const persistedColumns = 9

// ErrMalformedRecordLine indicates a persisted line with the wrong column
// count. Snapshot loading aborts on the first malformed line.
var ErrMalformedRecordLine = errors.New("malformed record line")

// Schedule is an ordered collection of game records for one league.
// Order is feed order and carries no meaning beyond display. A Schedule is
// built once per run and only read afterwards.
type Schedule struct {
	League string
	Games  []Record
}

// Render returns one display line per record in collection order.
func (s *Schedule) Render() []string {
	lines := make([]string, 0, len(s.Games))
	for _, g := range s.Games {
		lines = append(lines, g.Line())
	}
	return lines
}

// PersistedText renders the schedule for storage: the same lines as
// Render, each newline-terminated.
func (s *Schedule) PersistedText() string {
	var b strings.Builder
	for _, g := range s.Games {
		b.WriteString(g.Line())
		b.WriteString("\n")
	}
	return b.String()
}

// ParseSchedule reconstructs a schedule from persisted text. Each line is
// split positionally on commas; the key is taken verbatim from the first
// column, never recomputed, so round-tripping preserves keys exactly.
func ParseSchedule(league, text string) (*Schedule, error) {
	sched := &Schedule{League: league}
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, ",")
		if len(cols) != persistedColumns {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrMalformedRecordLine, i+1, len(cols), persistedColumns)
		}
		date, err := time.Parse(dateLayout, cols[5])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecordLine, i+1, err)
		}
		sched.Games = append(sched.Games, Record{
			Key:        cols[0],
			League:     cols[1],
			Kind:       Kind(cols[2]),
			GameNumber: cols[3],
			Venue:      cols[4],
			Date:       date,
			Time:       cols[6],
			HomeTeam:   cols[7],
			AwayTeam:   cols[8],
		})
	}
	return sched, nil
}

// RecordMapping returns the key → matchup view of the schedule used for
// comparison. When the source produces duplicate keys (same venue, date and
// time for distinct games) the later record silently overwrites the earlier
// value; the earlier insertion position is kept.
func (s *Schedule) RecordMapping() *RecordMapping {
	m := NewRecordMapping()
	for _, g := range s.Games {
		m.Set(g.Key, g.Matchup())
	}
	return m
}

// RecordMapping is an insertion-ordered key → display-string view of a
// Schedule. Iteration order for reporting follows the collection order of
// the originating schedule, not sorted order.
type RecordMapping struct {
	keys   []string
	values map[string]string
}

// NewRecordMapping creates an empty mapping.
func NewRecordMapping() *RecordMapping {
	return &RecordMapping{values: make(map[string]string)}
}

// Set stores value under key. A repeated key keeps its original position
// and takes the new value.
func (m *RecordMapping) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *RecordMapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *RecordMapping) Keys() []string {
	return m.keys
}

// Len returns the number of distinct keys.
func (m *RecordMapping) Len() int {
	return len(m.keys)
}
