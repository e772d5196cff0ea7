// Package timeline lays out time-ranged experience records on a chronological
// axis.
//
// The layout is a pure function of the records, an injected "now" and the
// viewport class. Dates are month granular. Non-overlapping records share a
// lane, lanes branch left and right of the center trunk, and records that
// start in the same row on the same side are stacked horizontally.
package timeline

import (
	"strings"
	"time"
)

// Record is one experience entry. Only ID, Start, End and ForceParallel are
// read by the layout; the rest is passed through for presentation.
type Record struct {
	ID            string   `json:"id" yaml:"id"`
	Role          string   `json:"role" yaml:"role"`
	Company       string   `json:"company" yaml:"company"`
	ForceParallel bool     `json:"forceParallel,omitempty" yaml:"force_parallel"`
	LogoURL       string   `json:"logoUrl,omitempty" yaml:"logo_url"`
	Location      string   `json:"location,omitempty" yaml:"location"`
	Start         string   `json:"start" yaml:"start"`
	End           string   `json:"end,omitempty" yaml:"end"`
	Summary       string   `json:"summary,omitempty" yaml:"summary"`
	Highlights    []string `json:"highlights,omitempty" yaml:"highlights"`
	Link          string   `json:"link,omitempty" yaml:"link"`
	Tags          []string `json:"tags,omitempty" yaml:"tags"`
}

// Ongoing reports whether the record has no end or ends "present".
func (r Record) Ongoing() bool {
	return r.End == "" || strings.EqualFold(strings.TrimSpace(r.End), "present")
}

// Interval is a resolved record span. End may precede Start.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ResolveInterval converts the record's free-text dates into calendar points.
// Missing, "present" and unparseable values resolve to the first day of
// now's month.
func ResolveInterval(r Record, now time.Time) Interval {
	now = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start, ok := ParseMonthYear(r.Start)
	if !ok {
		start = now
	}
	end := now
	if !r.Ongoing() {
		if parsed, ok := ParseMonthYear(r.End); ok {
			end = parsed
		}
	}
	return Interval{Start: start, End: end}
}

// Period formats the card period, e.g. "Apr 2025 - Present".
func Period(r Record) string {
	if r.End == "" {
		return r.Start + " - Present"
	}
	return r.Start + " - " + r.End
}

// EndLabel is the label drawn at the top of a track segment.
func EndLabel(r Record) string {
	if r.Ongoing() {
		return "Present"
	}
	return r.End
}

// Initials returns up to two upper-cased word initials, used when a record
// has no logo.
func Initials(company string) string {
	var b strings.Builder
	for _, word := range strings.Fields(company) {
		if b.Len() >= 2 {
			break
		}
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
	}
	return b.String()
}
