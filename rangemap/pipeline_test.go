package rangemap

import (
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/almanac/errors"
)

func TestPipelineResolve_Sample(t *testing.T) {
	p := samplePipeline(t)
	want := map[int64]int64{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, loc := range want {
		if got := p.Resolve(seed); got != loc {
			t.Errorf("Resolve(%d) = %d, want %d", seed, got, loc)
		}
	}
}

func TestPipelineTrace(t *testing.T) {
	p := samplePipeline(t)
	want := []int64{81, 81, 81, 74, 78, 78, 82}
	if diff := cmp.Diff(want, p.Trace(79)); diff != "" {
		t.Errorf("Trace(79) mismatch (-want +got):\n%s", diff)
	}
	if got := len(NewPipeline().Trace(5)); got != 0 {
		t.Errorf("empty pipeline trace length = %d", got)
	}
}

func TestMinimumDestination_Sample(t *testing.T) {
	p := samplePipeline(t)
	got, err := p.MinimumDestination(sampleSeeds)
	if err != nil {
		t.Fatal(err)
	}
	if got != 35 {
		t.Errorf("MinimumDestination = %d, want 35", got)
	}
}

func TestMinimumDestinationForRanges_Sample(t *testing.T) {
	p := samplePipeline(t)
	ranges, err := PairSeeds(sampleSeeds)
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.MinimumDestinationForRanges(ranges)
	if err != nil {
		t.Fatal(err)
	}
	if got != 46 {
		t.Errorf("MinimumDestinationForRanges = %d, want 46", got)
	}
	brute, err := p.MinimumDestinationBruteForce(ranges)
	if err != nil {
		t.Fatal(err)
	}
	if brute != got {
		t.Errorf("brute force = %d, range splitting = %d", brute, got)
	}
}

func TestSegments_Sample(t *testing.T) {
	p := samplePipeline(t)
	tests := []struct {
		in   SeedRange
		want []Range
	}{
		{SeedRange{Start: 79, Length: 14}, []Range{{82, 3}, {46, 10}, {60, 1}}},
		{SeedRange{Start: 55, Length: 13}, []Range{{86, 4}, {94, 3}, {56, 4}, {97, 2}}},
		{SeedRange{Start: 55, Length: 0}, nil},
	}
	for _, tc := range tests {
		got := p.Segments(tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Segments(%+v) mismatch (-want +got):\n%s", tc.in, diff)
		}
		var total int64
		for _, s := range got {
			total += s.Length
		}
		if total != tc.in.Length {
			t.Errorf("Segments(%+v) lengths sum to %d", tc.in, total)
		}
	}
}

func TestSegments_EmptyPipelineIsIdentity(t *testing.T) {
	got := NewPipeline().Segments(SeedRange{Start: 10, Length: 5})
	if diff := cmp.Diff([]Range{{Start: 10, Length: 5}}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMinimumDestination_NoSeeds(t *testing.T) {
	p := samplePipeline(t)
	if _, err := p.MinimumDestination(nil); !errors.HasCode(err, errors.ErrCodeNoSeeds) {
		t.Errorf("expected NO_SEEDS for empty points, got %v", err)
	}
	if _, err := p.MinimumDestinationForRanges(nil); !errors.HasCode(err, errors.ErrCodeNoSeeds) {
		t.Errorf("expected NO_SEEDS for empty ranges, got %v", err)
	}
	zero := []SeedRange{{Start: 5, Length: 0}}
	if _, err := p.MinimumDestinationForRanges(zero); !errors.HasCode(err, errors.ErrCodeNoSeeds) {
		t.Errorf("expected NO_SEEDS for zero-length ranges, got %v", err)
	}
	if _, err := p.MinimumDestinationBruteForce(zero); !errors.HasCode(err, errors.ErrCodeNoSeeds) {
		t.Errorf("expected NO_SEEDS from brute force, got %v", err)
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	p := samplePipeline(t)
	first, _ := p.MinimumDestination(sampleSeeds)
	second, _ := p.MinimumDestination(sampleSeeds)
	if first != second {
		t.Errorf("repeated evaluation changed result: %d then %d", first, second)
	}
	ranges, _ := PairSeeds(sampleSeeds)
	a, _ := p.MinimumDestinationForRanges(ranges)
	b, _ := p.MinimumDestinationForRanges(ranges)
	if a != b {
		t.Errorf("repeated range evaluation changed result: %d then %d", a, b)
	}
}

func TestPipeline_ConcurrentUse(t *testing.T) {
	p := samplePipeline(t)
	ranges, _ := PairSeeds(sampleSeeds)
	var wg sync.WaitGroup
	results := make([]int64, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = p.MinimumDestinationForRanges(ranges)
		}()
	}
	wg.Wait()
	for i, r := range results {
		if r != 46 {
			t.Errorf("goroutine %d got %d", i, r)
		}
	}
}

func TestNewPipeline_DoesNotRetainInput(t *testing.T) {
	a := mustStage(t, "a-to-b", [3]int64{100, 0, 10})
	b := mustStage(t, "b-to-c", [3]int64{0, 100, 10})
	stages := []Stage{a, b}
	p := NewPipeline(stages...)
	stages[1] = a
	if got := p.Resolve(3); got != 3 {
		t.Errorf("Resolve(3) = %d, want 3 (pipeline saw caller mutation)", got)
	}
	if p.Len() != 2 || len(p.Stages()) != 2 {
		t.Errorf("unexpected stage count %d", p.Len())
	}
}

func TestPairSeeds(t *testing.T) {
	got, err := PairSeeds(sampleSeeds)
	if err != nil {
		t.Fatal(err)
	}
	want := []SeedRange{{Start: 79, Length: 14}, {Start: 55, Length: 13}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if TotalSeeds(got) != 27 {
		t.Errorf("TotalSeeds = %d, want 27", TotalSeeds(got))
	}
}

func TestPairSeeds_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
	}{
		{"odd count", []int64{1, 2, 3}},
		{"negative length", []int64{1, -2}},
		{"negative start", []int64{-1, 2}},
		{"end overflows", []int64{math.MaxInt64 - 1, 5}},
		{"second range overflows", []int64{0, 3, math.MaxInt64, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := PairSeeds(tc.values); !errors.HasCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
	if got, err := PairSeeds(nil); err != nil || len(got) != 0 {
		t.Errorf("PairSeeds(nil) = (%v, %v)", got, err)
	}
}

func TestPairSeeds_LargestRangeAccepted(t *testing.T) {
	got, err := PairSeeds([]int64{math.MaxInt64 - 5, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].End() != math.MaxInt64 {
		t.Errorf("End() = %d, want MaxInt64", got[0].End())
	}
}

func TestSeedRangeValidate_NamesField(t *testing.T) {
	err := SeedRange{Start: math.MaxInt64 - 1, Length: 5}.Validate(2)
	if err == nil || !strings.Contains(err.Error(), "seeds[2]") {
		t.Errorf("expected error naming seeds[2], got %v", err)
	}
}

// randomPipeline builds up to four stages of small, disjoint, shuffled entries.
func randomPipeline(t testing.TB, rng *rand.Rand) Pipeline {
	stages := make([]Stage, rng.IntN(5))
	for i := range stages {
		var entries []Entry
		var pos int64
		for range rng.IntN(5) {
			pos += rng.Int64N(6)
			length := 1 + rng.Int64N(6)
			entries = append(entries, Entry{Source: pos, Dest: rng.Int64N(41), Length: length})
			pos += length
		}
		rng.Shuffle(len(entries), func(a, b int) { entries[a], entries[b] = entries[b], entries[a] })
		s, err := NewStage("random", entries...)
		if err != nil {
			t.Fatalf("NewStage: %v", err)
		}
		stages[i] = s
	}
	return NewPipeline(stages...)
}

func TestRangesMatchBruteForce_Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 2023))
	for iter := 0; iter < 2000; iter++ {
		p := randomPipeline(t, rng)
		ranges := make([]SeedRange, 1+rng.IntN(3))
		for i := range ranges {
			ranges[i] = SeedRange{Start: rng.Int64N(41), Length: 1 + rng.Int64N(10)}
		}
		want, err := p.MinimumDestinationBruteForce(ranges)
		if err != nil {
			t.Fatal(err)
		}
		got, err := p.MinimumDestinationForRanges(ranges)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("iteration %d: ranges=%v range splitting=%d brute force=%d", iter, ranges, got, want)
		}

		var points []int64
		for _, r := range ranges {
			for v := r.Start; v < r.End(); v++ {
				points = append(points, v)
			}
		}
		viaPoints, err := p.MinimumDestination(points)
		if err != nil {
			t.Fatal(err)
		}
		if viaPoints != want {
			t.Fatalf("iteration %d: MinimumDestination over expanded points = %d, want %d", iter, viaPoints, want)
		}
	}
}

func FuzzSegmentsMatchResolve(f *testing.F) {
	f.Add(int64(79), int64(14))
	f.Add(int64(55), int64(13))
	f.Add(int64(0), int64(100))
	f.Fuzz(func(t *testing.T, start, length int64) {
		if start < 0 || start > 1000 || length < 0 || length > 200 {
			t.Skip()
		}
		p := samplePipeline(t)
		v := start
		for _, seg := range p.Segments(SeedRange{Start: start, Length: length}) {
			for k := int64(0); k < seg.Length; k++ {
				if want := p.Resolve(v); seg.Start+k != want {
					t.Fatalf("seed %d: segment maps to %d, Resolve gives %d", v, seg.Start+k, want)
				}
				v++
			}
		}
		if v != start+length {
			t.Fatalf("segments covered %d seeds, want %d", v-start, length)
		}
	})
}
