package rangemap

import (
	"slices"

	"github.com/kbukum/almanac/errors"
)

// Pipeline is an ordered, immutable sequence of stages.
type Pipeline struct {
	stages []Stage
}

// NewPipeline composes stages in application order.
func NewPipeline(stages ...Stage) Pipeline {
	return Pipeline{stages: slices.Clone(stages)}
}

// Stages returns a copy of the stages in order.
func (p Pipeline) Stages() []Stage { return slices.Clone(p.stages) }

// Len returns the number of stages.
func (p Pipeline) Len() int { return len(p.stages) }

// Resolve pushes v through every stage.
func (p Pipeline) Resolve(v int64) int64 {
	for _, s := range p.stages {
		v = s.Resolve(v)
	}
	return v
}

// Trace returns the value after each stage.
func (p Pipeline) Trace(v int64) []int64 {
	path := make([]int64, len(p.stages))
	for i, s := range p.stages {
		v = s.Resolve(v)
		path[i] = v
	}
	return path
}

// MinimumDestination returns the smallest final value over seeds.
func (p Pipeline) MinimumDestination(seeds []int64) (int64, error) {
	if len(seeds) == 0 {
		return 0, errors.NoSeeds("points")
	}
	low := p.Resolve(seeds[0])
	for _, seed := range seeds[1:] {
		low = min(low, p.Resolve(seed))
	}
	return low, nil
}

// Segments splits r into sub-ranges that each map by a single offset through
// every stage, and returns their final destination ranges in seed order.
// The segment lengths sum to r.Length.
func (p Pipeline) Segments(r SeedRange) []Range {
	var out []Range
	cursor, remaining := r.Start, r.Length
	for remaining > 0 {
		v, n := cursor, remaining
		for _, s := range p.stages {
			v, n = s.ResolveRange(v, n)
		}
		out = append(out, Range{Start: v, Length: n})
		cursor += n
		remaining -= n
	}
	return out
}

// MinimumDestinationForRanges returns the smallest final value over every
// seed in ranges using range splitting. Empty ranges are skipped.
func (p Pipeline) MinimumDestinationForRanges(ranges []SeedRange) (int64, error) {
	var (
		low   int64
		found bool
	)
	for _, r := range ranges {
		for _, seg := range p.Segments(r) {
			if !found || seg.Start < low {
				low, found = seg.Start, true
			}
		}
	}
	if !found {
		return 0, errors.NoSeeds("ranges")
	}
	return low, nil
}

// MinimumDestinationBruteForce resolves every individual seed in ranges.
// Its cost is linear in the number of seeds; use it on small inputs only.
func (p Pipeline) MinimumDestinationBruteForce(ranges []SeedRange) (int64, error) {
	var (
		low   int64
		found bool
	)
	for _, r := range ranges {
		for v := r.Start; v < r.End(); v++ {
			if d := p.Resolve(v); !found || d < low {
				low, found = d, true
			}
		}
	}
	if !found {
		return 0, errors.NoSeeds("ranges")
	}
	return low, nil
}
