package game

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// UnknownGameNumber is the sentinel game number for descriptions where no
// league-assigned number is recoverable from the text.
const UnknownGameNumber = "unknown"

// ErrUnparsedDescription indicates an event description that matched none
// of the known patterns. Such events are not schedulable games (byes,
// informational entries) and are skipped rather than aborting the run.
var ErrUnparsedDescription = errors.New("unrecognized game description")

// Parsed holds the fields extracted from one event description.
type Parsed struct {
	AwayTeam   string
	HomeTeam   string
	Kind       Kind
	GameNumber string
	Note       string
}

// descriptionRule pairs a pattern with how its captures are interpreted.
type descriptionRule struct {
	pattern  *regexp.Regexp
	kind     Kind
	numbered bool
}

// descriptionRules is the ordered pattern ladder, most specific first.
// Each rule captures the away team (listed first, "@" separator) and the
// home team. The "(?:\s+s)?" group absorbs the stray "s" typo that appears
// next to the separator dash in some historical entries so it never ends up
// attached to the home team name. Numbered rules additionally capture the
// league-assigned game number and an optional trailing annotation.
//
// The upstream text format is unversioned and drifts across
// league-administration eras; these patterns need periodic maintenance.
var descriptionRules = []descriptionRule{
	{
		pattern:  regexp.MustCompile(`(?is)^\s*(.+?)\s*@\s*(.+?)(?:\s+s)?\s*-\s*regular.*?game\s+no\.?\s*(\d+)(?:\s*-\s*(\S.*?))?\s*$`),
		kind:     RegularSeason,
		numbered: true,
	},
	{
		pattern: regexp.MustCompile(`(?is)^\s*(.+?)\s*@\s*(.+?)(?:\s+s)?\s*-\s*regular`),
		kind:    RegularSeason,
	},
	{
		pattern:  regexp.MustCompile(`(?is)^\s*(.+?)\s*@\s*(.+?)(?:\s+s)?\s*-\s*playoff.*?game\s+no\.?\s*(\d+)(?:\s*-\s*(\S.*?))?\s*$`),
		kind:     Playoff,
		numbered: true,
	},
	{
		pattern: regexp.MustCompile(`(?is)^\s*(.+?)\s*@\s*(.+?)(?:\s+s)?\s*-\s*playoff`),
		kind:    Playoff,
	},
}

// ParseDescription extracts game fields from one free-text event
// description. Rules are tried in order and the first match wins, so a
// description carrying a game number always resolves via the more specific
// numbered rule.
func ParseDescription(text string) (Parsed, error) {
	for _, rule := range descriptionRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		parsed := Parsed{
			AwayTeam:   strings.TrimSpace(m[1]),
			HomeTeam:   strings.TrimSpace(m[2]),
			Kind:       rule.kind,
			GameNumber: UnknownGameNumber,
		}
		if rule.numbered {
			parsed.GameNumber = m[3]
			parsed.Note = strings.TrimSpace(m[4])
		}
		return parsed, nil
	}
	return Parsed{}, fmt.Errorf("%w: %q", ErrUnparsedDescription, strings.TrimSpace(text))
}
