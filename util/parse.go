package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInts parses a whitespace-separated list of base-10 integers.
// An empty or all-blank string yields an empty slice.
func ParseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d (%q): %w", i+1, f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseIntsN parses exactly n whitespace-separated integers.
func ParseIntsN(s string, n int) ([]int64, error) {
	vals, err := ParseInts(s)
	if err != nil {
		return nil, err
	}
	if len(vals) != n {
		return nil, fmt.Errorf("expected %d integers, got %d", n, len(vals))
	}
	return vals, nil
}
