// Package cli implements the lcmhl-games command tree.
//
// list prints the current schedule for a league, save persists it as the
// comparison baseline, compare diffs a fresh fetch against the baseline,
// and export re-emits a persisted snapshot as an iCalendar document.
package cli
