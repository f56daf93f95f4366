package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// venueCodeLen is the number of leading alphanumeric venue characters
	// used in a key. Fixed contract with downstream spreadsheet tooling;
	// do not change.
	venueCodeLen = 4

	dateLayout  = "2006-01-02"
	clockLayout = "3:04 PM"
)

// ErrInvalidTimeFormat indicates a game time that is not a 12-hour clock
// value with an AM/PM marker. A game with no derivable key cannot be
// tracked, so callers treat this as fatal for the record.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// GameKey identifies a game by where and when it is played. Two games at
// the same venue, date and time share a key by design: that is how "same
// game, possibly different teams or note" identity is expressed.
type GameKey struct {
	VenueCode string // first 4 alphanumeric characters of the venue, uppercased
	DateCode  string // compact digits, e.g. 20260110
	TimeCode  string // 24-hour HHMM
}

// String renders the key in its external form, e.g. "PORT-20260110-1830".
func (k GameKey) String() string {
	return k.VenueCode + "-" + k.DateCode + "-" + k.TimeCode
}

// DeriveKey computes the stable key for a game from its venue, calendar
// date and 12-hour clock time. It is pure: the same inputs always produce
// the same key.
func DeriveKey(venue string, date time.Time, clock string) (GameKey, error) {
	t, err := parseClock(clock)
	if err != nil {
		return GameKey{}, err
	}
	return GameKey{
		VenueCode: venueCode(venue),
		DateCode:  date.Format("20060102"),
		TimeCode:  t.Format("1504"),
	}, nil
}

// parseClock parses a 12-hour clock value with AM/PM marker.
// Accepts minor formatting variation ("6:30 PM", "06:30 PM", "6:30PM").
func parseClock(clock string) (time.Time, error) {
	clock = strings.ToUpper(strings.TrimSpace(clock))
	for _, layout := range []string{"3:04 PM", "03:04 PM", "3:04PM"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
}

// venueCode uppercases the venue, strips everything that is not an ASCII
// letter or digit, and keeps the first 4 characters. Shorter venues yield
// shorter codes (slicing semantics, no padding).
func venueCode(venue string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(venue) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	code := b.String()
	if len(code) > venueCodeLen {
		code = code[:venueCodeLen]
	}
	return code
}
