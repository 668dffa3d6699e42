package pipeline

import (
	"context"
	"sync"
)

// Parallel applies fn to each value with up to n worker goroutines. Output
// order is not preserved unless n is 1. The first error from fn or the
// source is delivered to the consumer and cancels the remaining work.
// Close cancels the workers and waits for them to return.
func Parallel[I, O any](p *Pipeline[I], n int, fn func(context.Context, I) (O, error)) *Pipeline[O] {
	if n <= 0 {
		n = 1
	}
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			workerCtx, cancel := context.WithCancel(ctx)
			source := p.create(workerCtx)
			in := make(chan I, n)
			out := make(chan result[O], n)

			fail := func(err error) {
				select {
				case out <- result[O]{err: err}:
				case <-workerCtx.Done():
				}
				cancel()
			}

			var wg sync.WaitGroup

			wg.Add(1)
			go func() {
				defer wg.Done()
				defer close(in)
				for {
					val, ok, err := source.Next(workerCtx)
					if err != nil {
						fail(err)
						return
					}
					if !ok {
						return
					}
					select {
					case in <- val:
					case <-workerCtx.Done():
						return
					}
				}
			}()

			for range n {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for val := range in {
						o, err := fn(workerCtx, val)
						if err != nil {
							fail(err)
							return
						}
						select {
						case out <- result[O]{val: o}:
						case <-workerCtx.Done():
							return
						}
					}
				}()
			}

			go func() {
				wg.Wait()
				close(out)
			}()

			return &channelIter[O]{
				ch: out,
				closer: func() error {
					cancel()
					wg.Wait()
					return source.Close()
				},
			}
		},
	}
}
