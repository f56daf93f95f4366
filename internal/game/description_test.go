package game

import (
	"errors"
	"testing"
)

func TestParseDescription(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Parsed
	}{
		{
			name: "regular season with game number",
			text: "Raiders @ Royals - Regular Season GAME - LCMHL Game No. 42",
			want: Parsed{
				AwayTeam:   "Raiders",
				HomeTeam:   "Royals",
				Kind:       RegularSeason,
				GameNumber: "42",
			},
		},
		{
			name: "playoff with game number",
			text: "Hawks @ Flyers - Playoff GAME - LCMHL Game No. 7",
			want: Parsed{
				AwayTeam:   "Hawks",
				HomeTeam:   "Flyers",
				Kind:       Playoff,
				GameNumber: "7",
			},
		},
		{
			name: "regular season without recoverable number",
			text: "Raiders @ Royals - Regular Season GAME",
			want: Parsed{
				AwayTeam:   "Raiders",
				HomeTeam:   "Royals",
				Kind:       RegularSeason,
				GameNumber: UnknownGameNumber,
			},
		},
		{
			name: "playoff without recoverable number",
			text: "Hawks @ Flyers - Playoff Round Robin",
			want: Parsed{
				AwayTeam:   "Hawks",
				HomeTeam:   "Flyers",
				Kind:       Playoff,
				GameNumber: UnknownGameNumber,
			},
		},
		{
			name: "trailing annotation captured as note",
			text: "Raiders @ Royals - Regular Season GAME - LCMHL Game No. 42 - TIME CHANGE",
			want: Parsed{
				AwayTeam:   "Raiders",
				HomeTeam:   "Royals",
				Kind:       RegularSeason,
				GameNumber: "42",
				Note:       "TIME CHANGE",
			},
		},
		{
			name: "stray s typo before the dash is not part of the home team",
			text: "Raiders @ Royals s- Regular Season GAME - LCMHL Game No. 9",
			want: Parsed{
				AwayTeam:   "Raiders",
				HomeTeam:   "Royals",
				Kind:       RegularSeason,
				GameNumber: "9",
			},
		},
		{
			name: "team names trimmed of surrounding whitespace",
			text: "  Raiders  @  Royals   - Regular Season GAME - LCMHL Game No. 3",
			want: Parsed{
				AwayTeam:   "Raiders",
				HomeTeam:   "Royals",
				Kind:       RegularSeason,
				GameNumber: "3",
			},
		},
		{
			name: "hyphenated team names survive",
			text: "Ice-Dogs @ North-Stars - Playoff GAME - LCMHL Game No. 12",
			want: Parsed{
				AwayTeam:   "Ice-Dogs",
				HomeTeam:   "North-Stars",
				Kind:       Playoff,
				GameNumber: "12",
			},
		},
		{
			name: "case insensitive classification",
			text: "Raiders @ Royals - REGULAR SEASON game - lcmhl game no. 5",
			want: Parsed{
				AwayTeam:   "Raiders",
				HomeTeam:   "Royals",
				Kind:       RegularSeason,
				GameNumber: "5",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDescription(tt.text)
			if err != nil {
				t.Fatalf("ParseDescription(%q) failed: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseDescription(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseDescriptionLadderPrecedence(t *testing.T) {
	// A numbered description also satisfies the looser unnumbered pattern;
	// the numbered rule must win.
	got, err := ParseDescription("Raiders @ Royals - Regular Season GAME - LCMHL Game No. 42")
	if err != nil {
		t.Fatalf("ParseDescription failed: %v", err)
	}
	if got.GameNumber != "42" {
		t.Errorf("expected numbered rule to win, got game number %q", got.GameNumber)
	}
}

func TestParseDescriptionUnmatched(t *testing.T) {
	tests := []string{
		"",
		"BYE WEEK - no game scheduled",
		"Picture day at the arena",
		"Raiders practice - Regular Season",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := ParseDescription(text)
			if err == nil {
				t.Fatalf("expected error for %q", text)
			}
			if !errors.Is(err, ErrUnparsedDescription) {
				t.Errorf("expected ErrUnparsedDescription, got %v", err)
			}
		})
	}
}
