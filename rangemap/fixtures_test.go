package rangemap

import "testing"

// samplePipeline is the seven-stage almanac from the puzzle statement.
func samplePipeline(t testing.TB) Pipeline {
	t.Helper()
	return NewPipeline(
		mustStage(t, "seed-to-soil", [3]int64{50, 98, 2}, [3]int64{52, 50, 48}),
		mustStage(t, "soil-to-fertilizer", [3]int64{0, 15, 37}, [3]int64{37, 52, 2}, [3]int64{39, 0, 15}),
		mustStage(t, "fertilizer-to-water", [3]int64{49, 53, 8}, [3]int64{0, 11, 42}, [3]int64{42, 0, 7}, [3]int64{57, 7, 4}),
		mustStage(t, "water-to-light", [3]int64{88, 18, 7}, [3]int64{18, 25, 70}),
		mustStage(t, "light-to-temperature", [3]int64{45, 77, 23}, [3]int64{81, 45, 19}, [3]int64{68, 64, 13}),
		mustStage(t, "temperature-to-humidity", [3]int64{0, 69, 1}, [3]int64{1, 0, 69}),
		mustStage(t, "humidity-to-location", [3]int64{60, 56, 37}, [3]int64{56, 93, 4}),
	)
}

var sampleSeeds = []int64{79, 14, 55, 13}
