package cli

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/lcmhl-games/internal/game"
)

// WriteSchedule prints one CSV line per game in collection order.
func WriteSchedule(w io.Writer, sched *game.Schedule) {
	for _, line := range sched.Render() {
		fmt.Fprintln(w, line)
	}
}

// WriteChanges prints one line per change in report order:
// <key> -- <subjectValue> -- <baselineValue>, with NONE for a missing side.
func WriteChanges(w io.Writer, changes []game.Change) {
	for _, c := range changes {
		fmt.Fprintln(w, c.Line())
	}
}
