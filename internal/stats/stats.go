// Package stats aggregates emotion counts over the diary collection. It is
// a read-only consumer of the persisted data and must tolerate entries that
// were never classified.
package stats

import (
	"time"

	"github.com/mongle/monglectl/internal/entry"
)

// Counts holds per-emotion totals for one calendar month.
type Counts map[entry.Emotion]int

// ForMonth counts classified entries whose date falls in the same calendar
// month and year as ref. All five labels are present in the result, zero or
// not; absent and unknown labels are not counted.
func ForMonth(entries []entry.Entry, ref time.Time) Counts {
	counts := Counts{}
	for _, em := range entry.Emotions {
		counts[em] = 0
	}
	for _, e := range entries {
		if !e.SameMonth(ref) {
			continue
		}
		if e.Emotion.Known() {
			counts[e.Emotion]++
		}
	}
	return counts
}

// Total returns the number of classified entries behind the counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
