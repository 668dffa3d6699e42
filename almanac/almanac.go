package almanac

import (
	"fmt"

	"github.com/kbukum/almanac/rangemap"
	"github.com/kbukum/almanac/validation"
)

// Almanac is a parsed seed list together with its translation pipeline.
type Almanac struct {
	Seeds    []int64
	Pipeline rangemap.Pipeline
}

// New builds an Almanac from already constructed stages.
func New(seeds []int64, stages ...rangemap.Stage) *Almanac {
	return &Almanac{
		Seeds:    append([]int64(nil), seeds...),
		Pipeline: rangemap.NewPipeline(stages...),
	}
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]rangemap.SeedRange, error) {
	return rangemap.PairSeeds(a.Seeds)
}

// Part1 returns the lowest location of any individual seed.
func (a *Almanac) Part1() (int64, error) {
	return a.Pipeline.MinimumDestination(a.Seeds)
}

// Part2 returns the lowest location over all seed ranges.
func (a *Almanac) Part2() (int64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return a.Pipeline.MinimumDestinationForRanges(ranges)
}

// ValidateChain checks that each "X-to-Y" stage starts where the previous
// one ended. Stages with free-form labels are not checked.
func (a *Almanac) ValidateChain() error {
	v := validation.New()
	stages := a.Pipeline.Stages()
	for i := 1; i < len(stages); i++ {
		prev, cur := stages[i-1], stages[i]
		if prev.To() == "" || cur.From() == "" {
			continue
		}
		v.Custom(prev.To() == cur.From(), fmt.Sprintf("stages[%d]", i),
			fmt.Sprintf("%q does not follow %q", cur.Name(), prev.Name()))
	}
	return v.Err()
}
