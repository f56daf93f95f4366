package game

// Op classifies a single schedule change relative to the baseline.
type Op string

const (
	Added   Op = "added"
	Removed Op = "removed"
	Changed Op = "changed"
)

// noneValue renders a missing side of a change line.
const noneValue = "NONE"

// Change reports one differing key between a subject mapping and a
// baseline mapping. Subject or Baseline is empty when the key is absent on
// that side.
type Change struct {
	Key      string
	Op       Op
	Subject  string
	Baseline string
}

// Line renders the change in the console format:
// <key> -- <subjectValue> -- <baselineValue>, with NONE for a missing side.
func (c Change) Line() string {
	subject, baseline := c.Subject, c.Baseline
	if c.Op == Removed {
		subject = noneValue
	}
	if c.Op == Added {
		baseline = noneValue
	}
	return c.Key + " -- " + subject + " -- " + baseline
}

// Diff compares a subject mapping against a baseline mapping. Keys only in
// the subject report as added, keys only in the baseline as removed, keys
// in both with differing values as changed; equal pairs produce nothing.
// Report order is subject insertion order followed by baseline insertion
// order for removals — callers needing sorted output must sort explicitly.
func Diff(subject, baseline *RecordMapping) []Change {
	if subject == nil {
		subject = NewRecordMapping()
	}
	if baseline == nil {
		baseline = NewRecordMapping()
	}

	changes := make([]Change, 0)
	for _, key := range subject.Keys() {
		subjectValue, _ := subject.Get(key)
		baselineValue, ok := baseline.Get(key)
		if !ok {
			changes = append(changes, Change{Key: key, Op: Added, Subject: subjectValue})
			continue
		}
		if subjectValue != baselineValue {
			changes = append(changes, Change{Key: key, Op: Changed, Subject: subjectValue, Baseline: baselineValue})
		}
	}
	for _, key := range baseline.Keys() {
		if _, ok := subject.Get(key); ok {
			continue
		}
		baselineValue, _ := baseline.Get(key)
		changes = append(changes, Change{Key: key, Op: Removed, Baseline: baselineValue})
	}
	return changes
}
