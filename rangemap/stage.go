package rangemap

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/kbukum/almanac/errors"
)

// Stage is a named set of source-disjoint entries, kept sorted by Source.
type Stage struct {
	name    string
	entries []Entry
}

// NewStage validates entries, sorts them by source start and rejects
// overlapping source intervals. The caller's slice is not retained.
func NewStage(name string, entries ...Entry) (Stage, error) {
	sorted := slices.Clone(entries)
	for _, e := range sorted {
		if err := e.Validate(); err != nil {
			return Stage{}, withStage(err, name)
		}
	}
	slices.SortFunc(sorted, func(a, b Entry) int {
		switch {
		case a.Source < b.Source:
			return -1
		case a.Source > b.Source:
			return 1
		}
		return 0
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Source < sorted[i-1].End() {
			return Stage{}, errors.InvalidInput("entries",
				fmt.Sprintf("stage %q has overlapping entries %s and %s", name, sorted[i-1], sorted[i])).
				WithDetail("stage", name)
		}
	}
	return Stage{name: name, entries: sorted}, nil
}

func withStage(err error, name string) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.WithDetail("stage", name)
	}
	return err
}

// Name returns the stage label, e.g. "seed-to-soil".
func (s Stage) Name() string { return s.name }

// From returns the source category of an "X-to-Y" name, or "".
func (s Stage) From() string {
	from, _, ok := strings.Cut(s.name, "-to-")
	if !ok {
		return ""
	}
	return from
}

// To returns the destination category of an "X-to-Y" name, or "".
func (s Stage) To() string {
	_, to, ok := strings.Cut(s.name, "-to-")
	if !ok {
		return ""
	}
	return to
}

// Entries returns a copy of the entries in source order.
func (s Stage) Entries() []Entry { return slices.Clone(s.entries) }

// Len returns the number of entries.
func (s Stage) Len() int { return len(s.entries) }

// locate returns the index of the first entry whose source interval ends
// after v, and whether that entry contains v. When it does not, the index
// names the next higher entry (or len(entries) when there is none).
func (s Stage) locate(v int64) (int, bool) {
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].End() > v })
	return i, i < len(s.entries) && s.entries[i].Source <= v
}

// Resolve translates v through the matching entry, or returns v unchanged.
func (s Stage) Resolve(v int64) int64 {
	i, ok := s.locate(v)
	if !ok {
		return v
	}
	out, _ := s.entries[i].Translate(v)
	return out
}

// ResolveRange translates the longest prefix of [start, start+length) that
// maps by a single offset and returns its translated start together with the
// consumed length. Inside an entry the prefix ends at the entry's end; outside
// every entry it is mapped by identity up to the next higher entry's start.
// For length >= 1 the consumed length is in [1, length].
func (s Stage) ResolveRange(start, length int64) (int64, int64) {
	if length < 1 {
		return start, 0
	}
	i, ok := s.locate(start)
	if ok {
		r, _, _ := s.entries[i].TranslateRange(start, length)
		return r.Start, r.Length
	}
	if i < len(s.entries) {
		return start, min(length, s.entries[i].Source-start)
	}
	return start, length
}
