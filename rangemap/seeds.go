package rangemap

import (
	"fmt"
	"math"

	"github.com/kbukum/almanac/errors"
	"github.com/kbukum/almanac/validation"
)

// SeedRange is the half-open interval [Start, Start+Length) of seed values.
type SeedRange struct {
	Start  int64 `json:"start"`
	Length int64 `json:"length"`
}

// End is the exclusive upper bound of the range.
func (r SeedRange) End() int64 { return r.Start + r.Length }

// Empty reports whether the range holds no values.
func (r SeedRange) Empty() bool { return r.Length <= 0 }

// Range is a resolved destination interval produced by range splitting.
type Range struct {
	Start  int64 `json:"start"`
	Length int64 `json:"length"`
}

// End is the exclusive upper bound of the range.
func (r Range) End() int64 { return r.Start + r.Length }

// Validate rejects negative bounds and ranges whose end overflows int64.
// index is the range's position in the seed list, used in field names.
func (r SeedRange) Validate(index int) error {
	field := fmt.Sprintf("seeds[%d]", index)
	v := validation.New().
		Min(field+".start", r.Start, 0).
		Min(field+".length", r.Length, 0)
	if !v.HasErrors() {
		v.Custom(r.Start <= math.MaxInt64-r.Length, field, fmt.Sprintf("range %d+%d overflows int64", r.Start, r.Length))
	}
	return v.Err()
}

// PairSeeds reads values as consecutive (start, length) pairs.
func PairSeeds(values []int64) ([]SeedRange, error) {
	if len(values)%2 != 0 {
		return nil, errors.InvalidInput("seeds",
			fmt.Sprintf("range mode needs start/length pairs, got %d values", len(values))).
			WithDetail("count", len(values))
	}
	ranges := make([]SeedRange, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		r := SeedRange{Start: values[i], Length: values[i+1]}
		if err := r.Validate(i / 2); err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// TotalSeeds returns the number of individual seed values covered by ranges.
func TotalSeeds(ranges []SeedRange) int64 {
	var n int64
	for _, r := range ranges {
		if !r.Empty() {
			n += r.Length
		}
	}
	return n
}
