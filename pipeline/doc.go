// Package pipeline provides small, pull-based stream operators with a
// bounded worker pool.
//
// Pipelines are lazy: no work happens until First pulls values. Each stage
// pulls from the previous one on demand, and Reduce folds a stream into the
// single value First returns.
//
//	src := pipeline.FromSlice(ranges)
//	lows := pipeline.Parallel(src, workers, lowestOf)
//	low, _, err := pipeline.First(ctx, pipeline.Reduce(lows, math.MaxInt64, minInt64))
//
// Parallel is the only operator that starts goroutines; they stop when the
// source is exhausted, on the first error, or when the iterator is closed.
package pipeline
