package rangemap

import (
	"fmt"
	"math"

	"github.com/kbukum/almanac/validation"
)

// Entry maps [Source, Source+Length) onto [Dest, Dest+Length).
type Entry struct {
	Source int64 `json:"source"`
	Dest   int64 `json:"dest"`
	Length int64 `json:"length"`
}

// NewEntry builds an Entry from the values in input-line order
// (destination, source, length) and validates it.
func NewEntry(dest, source, length int64) (Entry, error) {
	e := Entry{Source: source, Dest: dest, Length: length}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Validate checks that the entry is non-empty, non-negative and that neither
// interval end overflows.
func (e Entry) Validate() error {
	v := validation.New().
		Min("dest", e.Dest, 0).
		Min("source", e.Source, 0).
		Min("length", e.Length, 1)
	if !v.HasErrors() {
		v.Custom(e.Source <= math.MaxInt64-e.Length && e.Dest <= math.MaxInt64-e.Length,
			"entry", fmt.Sprintf("%s overflows int64", e))
	}
	return v.Err()
}

// End is the exclusive upper bound of the source interval.
func (e Entry) End() int64 { return e.Source + e.Length }

// Offset is the constant added to a covered value.
func (e Entry) Offset() int64 { return e.Dest - e.Source }

// Contains reports whether v lies in the source interval.
func (e Entry) Contains(v int64) bool { return v >= e.Source && v < e.End() }

// Translate returns the destination of v, or false when v is not covered.
func (e Entry) Translate(v int64) (int64, bool) {
	if !e.Contains(v) {
		return 0, false
	}
	return e.Dest + (v - e.Source), true
}

// TranslateRange translates the part of [start, start+length) that this
// entry covers. It returns the translated portion and the remainder length
// that lies beyond the entry's source interval. It does not match when start
// itself is outside the source interval.
func (e Entry) TranslateRange(start, length int64) (Range, int64, bool) {
	dest, ok := e.Translate(start)
	if !ok || length < 1 {
		return Range{}, 0, false
	}
	n := min(length, e.End()-start)
	return Range{Start: dest, Length: n}, length - n, true
}

func (e Entry) String() string {
	return fmt.Sprintf("[%d,%d)->%d", e.Source, e.End(), e.Dest)
}
