// Package feed fetches published league schedules and decodes them into
// neutral events for the game parser.
//
// Two sources are supported: the league's published iCalendar feeds and the
// schedule table on the league portal's web pages. Both produce the same
// Event shape, so the rest of the tool is format-agnostic.
package feed
