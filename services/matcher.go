package services

import "strings"

// Option is one rendered entry of an open dropdown. Position is its index in
// the rendered list at the moment of enumeration; it is only meaningful until
// the list re-renders.
type Option struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// Snapshot is an ordered, capped read of the rendered options at one point in
// time. Snapshots are never reused across fill attempts: option lists can
// depend on earlier selections (city options change with the department) and
// must always be re-read live.
type Snapshot []Option

// Titles returns the option titles in display order.
func (s Snapshot) Titles() []string {
	titles := make([]string, len(s))
	for i, opt := range s {
		titles[i] = opt.Title
	}
	return titles
}

// MatchKind classifies how an option matched the target value.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchPartial
)

// Match is the result of scanning a snapshot for a target value.
type Match struct {
	Kind   MatchKind
	Option Option
}

// MatchOption scans the snapshot in display order. The first option whose
// normalized title equals the normalized target wins as an exact match. A
// partial match (normalized title contains the normalized target) is only
// reported when no exact match exists anywhere in the snapshot. First
// occurrence wins; options are never re-sorted by match quality.
func MatchOption(target string, snapshot Snapshot) Match {
	want := Normalize(target)
	if want == "" {
		return Match{Kind: MatchNone}
	}

	partial := Match{Kind: MatchNone}
	for _, opt := range snapshot {
		title := Normalize(opt.Title)
		if title == want {
			return Match{Kind: MatchExact, Option: opt}
		}
		if partial.Kind == MatchNone && strings.Contains(title, want) {
			partial = Match{Kind: MatchPartial, Option: opt}
		}
	}
	return partial
}
