package pipeline

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value, or (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases goroutines and other resources held by the iterator.
	Close() error
}

// Pipeline is a lazy, pull-based stream. Nothing runs until First pulls
// values; every pull builds fresh iterators, so a Pipeline may be run more
// than once.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// FromSlice yields the items in order.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc builds a pipeline from an iterator factory.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{create: fn}
}

// --- Terminals ---

// First returns the first value, or ok=false for an empty pipeline.
// Used with Reduce, which yields exactly one value.
func First[T any](ctx context.Context, p *Pipeline[T]) (T, bool, error) {
	iter := p.create(ctx)
	defer iter.Close()
	return iter.Next(ctx)
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	if it.index >= len(it.items) {
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

// result carries a value or error through a channel.
type result[T any] struct {
	val T
	err error
}

// channelIter reads results produced by background goroutines.
type channelIter[T any] struct {
	ch     <-chan result[T]
	closer func() error
}

func (it *channelIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	select {
	case r, open := <-it.ch:
		if !open {
			// Workers may drop their error once ctx is done.
			return zero, false, ctx.Err()
		}
		if r.err != nil {
			return zero, false, r.err
		}
		return r.val, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

func (it *channelIter[T]) Close() error {
	if it.closer != nil {
		return it.closer()
	}
	return nil
}
