package solver

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/almanac/almanac"
	"github.com/kbukum/almanac/errors"
	"github.com/kbukum/almanac/logger"
	"github.com/kbukum/almanac/observability"
	"github.com/kbukum/almanac/pipeline"
	"github.com/kbukum/almanac/rangemap"
)

// Solver runs both puzzle parts over parsed almanacs. It holds no per-run
// state and is safe for concurrent use.
type Solver struct {
	opts Options
	log  *logger.Logger
	obs  *observability.Provider
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger replaces the default "solver" component logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// WithTelemetry records spans and metrics through p.
func WithTelemetry(p *observability.Provider) Option {
	return func(s *Solver) { s.obs = p }
}

// New validates opts after applying defaults.
func New(opts Options, options ...Option) (*Solver, error) {
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{opts: opts}
	for _, o := range options {
		o(s)
	}
	if s.log == nil {
		s.log = logger.Get(logger.ComponentSolver)
	}
	if s.obs == nil {
		s.obs = observability.NewNoopProvider()
	}
	return s, nil
}

// Options returns the effective options.
func (s *Solver) Options() Options { return s.opts }

// Solve answers the configured parts for a.
func (s *Solver) Solve(ctx context.Context, a *almanac.Almanac) (*Result, error) {
	return s.run(ctx, "", func(context.Context) (*almanac.Almanac, error) { return a, nil })
}

// SolveFile parses the almanac at path inside the run, so parse failures
// are traced and counted like any other.
func (s *Solver) SolveFile(ctx context.Context, path string) (*Result, error) {
	return s.run(ctx, path, func(ctx context.Context) (*almanac.Almanac, error) {
		ctx, op := s.obs.Start(ctx, observability.SpanParse, attribute.String(observability.AttrPath, path))
		a, err := almanac.Load(path)
		if err == nil {
			op.SetAttributes(
				attribute.Int(observability.AttrStages, a.Pipeline.Len()),
				attribute.Int(observability.AttrSeeds, len(a.Seeds)),
			)
		}
		op.End(ctx, err)
		return a, err
	})
}

func (s *Solver) run(ctx context.Context, path string, load func(context.Context) (*almanac.Almanac, error)) (_ *Result, err error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString(), Mode: s.opts.Mode}

	ctx = logger.ContextWithRunID(ctx, res.RunID)
	log := s.log.WithContext(ctx)
	ctx, op := s.obs.Start(ctx, observability.SpanSolve,
		attribute.String(observability.AttrRunID, res.RunID),
		attribute.String(observability.AttrMode, string(s.opts.Mode)),
		attribute.Int(observability.AttrWorkers, s.opts.Workers),
	)
	defer func() {
		res.Duration = time.Since(start)
		status := "ok"
		if err != nil {
			status = "error"
			log.Error("run failed", logger.ErrorFields("solve", err))
		}
		s.obs.Metrics.RecordRun(ctx, string(s.opts.Mode), status, time.Since(start))
		op.End(ctx, err)
	}()

	if err := ctxErr(ctx, "solve"); err != nil {
		return nil, err
	}

	a, err := load(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("run started", logger.Fields(
		logger.FieldMode, s.opts.Mode,
		logger.FieldWorkers, s.opts.Workers,
		"stages", a.Pipeline.Len(),
		logger.FieldPath, path,
	))

	if s.opts.Strict {
		if err := a.ValidateChain(); err != nil {
			return nil, err
		}
	}

	// Seeds that do not pair up fail the run before part 1 is computed.
	var ranges []rangemap.SeedRange
	if s.opts.Mode.ranges() {
		if ranges, err = a.SeedRanges(); err != nil {
			return nil, err
		}
	}

	if s.opts.Mode.points() {
		low, err := s.part1(ctx, a)
		if err != nil {
			return nil, err
		}
		res.Part1 = &low
		log.Info("part 1 solved", logger.Fields(logger.FieldPart, 1, logger.FieldResult, low))
	}

	if s.opts.Mode.ranges() {
		low, segments, err := s.part2(ctx, a.Pipeline, ranges)
		if err != nil {
			return nil, err
		}
		res.Part2, res.Segments, res.Seeds = &low, segments, rangemap.TotalSeeds(ranges)
		log.Info("part 2 solved", logger.Fields(
			logger.FieldPart, 2,
			logger.FieldResult, low,
			logger.FieldSegments, segments,
			logger.FieldSeeds, res.Seeds,
		))

		if s.opts.Verify.Enabled {
			if res.Seeds > s.opts.Verify.Limit {
				log.Warn("verification skipped", logger.Fields(
					logger.FieldSeeds, res.Seeds,
					"limit", s.opts.Verify.Limit,
				))
			} else {
				if err := s.verify(ctx, a.Pipeline, ranges, low); err != nil {
					return nil, err
				}
				res.Verified = true
			}
		}
	} else {
		res.Seeds = int64(len(a.Seeds))
	}

	log.Debug("run finished", logger.DurationFields("solve", time.Since(start)))
	return res, nil
}

func (s *Solver) part1(ctx context.Context, a *almanac.Almanac) (low int64, err error) {
	ctx, op := s.obs.Start(ctx, observability.SpanPart1,
		attribute.Int(observability.AttrSeeds, len(a.Seeds)))
	defer func() { op.End(ctx, err) }()

	low, err = a.Part1()
	if err != nil {
		return 0, err
	}
	s.obs.Metrics.RecordSeeds(ctx, string(ModePoints), int64(len(a.Seeds)))
	op.SetAttributes(attribute.Int64(observability.AttrResult, low))

	if log := s.log.WithContext(ctx); log.Enabled(zerolog.DebugLevel) {
		seed, ok, err := pipeline.First(ctx, pipeline.Filter(pipeline.FromSlice(a.Seeds), func(v int64) bool {
			return a.Pipeline.Resolve(v) == low
		}))
		if err != nil {
			return 0, wrapCtx(err, "part1")
		}
		if ok {
			log.Debug("lowest seed", logger.Fields(
				"seed", seed,
				"trace", a.Pipeline.Trace(seed),
				"stages", stageNames(a.Pipeline),
			))
		}
	}
	return low, nil
}

func stageNames(p rangemap.Pipeline) []string {
	names := make([]string, 0, p.Len())
	for _, st := range p.Stages() {
		names = append(names, st.Name())
	}
	return names
}

// rangeLow is the per-range output of the worker pool.
type rangeLow struct {
	seeds    rangemap.SeedRange
	low      int64
	segments int
	found    bool
}

func mergeLows(acc, r rangeLow) rangeLow {
	switch {
	case !r.found:
	case !acc.found || r.low < acc.low:
		acc.low, acc.found = r.low, true
	}
	acc.segments += r.segments
	return acc
}

// part2 splits every non-empty seed range into uniform segments on the
// worker pool and keeps the lowest segment start.
func (s *Solver) part2(ctx context.Context, p rangemap.Pipeline, ranges []rangemap.SeedRange) (low int64, segments int, err error) {
	ctx, op := s.obs.Start(ctx, observability.SpanPart2,
		attribute.Int(observability.AttrWorkers, s.opts.Workers),
		attribute.Int64(observability.AttrSeeds, rangemap.TotalSeeds(ranges)))
	defer func() { op.End(ctx, err) }()

	src := pipeline.Filter(pipeline.FromSlice(ranges), func(r rangemap.SeedRange) bool { return !r.Empty() })
	lows := pipeline.Parallel(src, s.opts.Workers, func(ctx context.Context, r rangemap.SeedRange) (rangeLow, error) {
		if err := ctx.Err(); err != nil {
			return rangeLow{}, err
		}
		out := rangeLow{seeds: r, low: math.MaxInt64}
		for _, seg := range p.Segments(r) {
			out.low = min(out.low, seg.Start)
			out.found = true
			out.segments++
		}
		return out, nil
	})
	log := s.log.WithContext(ctx)
	lows = pipeline.Tap(lows, func(_ context.Context, r rangeLow) error {
		log.Debug("seed range resolved", logger.Fields(
			"start", r.seeds.Start,
			"length", r.seeds.Length,
			logger.FieldResult, r.low,
			logger.FieldSegments, r.segments,
		))
		return nil
	})

	total, _, err := pipeline.First(ctx, pipeline.Reduce(lows, rangeLow{}, mergeLows))
	if err != nil {
		return 0, 0, wrapCtx(err, "part2")
	}
	if !total.found {
		return 0, 0, errors.NoSeeds(string(ModeRanges))
	}

	s.obs.Metrics.RecordSeeds(ctx, string(ModeRanges), rangemap.TotalSeeds(ranges))
	s.obs.Metrics.RecordSegments(ctx, int64(total.segments))
	op.SetAttributes(
		attribute.Int64(observability.AttrResult, total.low),
		attribute.Int(observability.AttrSegments, total.segments),
	)
	return total.low, total.segments, nil
}

// verifyChunk bounds the seeds one worker resolves between context checks.
const verifyChunk = 1 << 16

// verify recomputes part 2 seed by seed on the worker pool and fails the run
// on disagreement. Ranges are cut into chunks so cancellation is noticed
// within one chunk.
func (s *Solver) verify(ctx context.Context, p rangemap.Pipeline, ranges []rangemap.SeedRange, want int64) (err error) {
	ctx, op := s.obs.Start(ctx, observability.SpanVerify)
	defer func() { op.End(ctx, err) }()

	lows := pipeline.Parallel(chunks(ranges, verifyChunk), s.opts.Workers, func(ctx context.Context, r rangemap.SeedRange) (rangeLow, error) {
		if err := ctx.Err(); err != nil {
			return rangeLow{}, err
		}
		low, err := p.MinimumDestinationBruteForce([]rangemap.SeedRange{r})
		if err != nil {
			return rangeLow{}, err
		}
		return rangeLow{seeds: r, low: low, found: true}, nil
	})

	total, _, err := pipeline.First(ctx, pipeline.Reduce(lows, rangeLow{}, mergeLows))
	if err != nil {
		return wrapCtx(err, "verify")
	}
	if !total.found || total.low != want {
		return errors.Internal(fmt.Errorf("range splitting found %d but brute force found %d", want, total.low)).
			WithDetails(map[string]any{"range_result": want, "brute_force_result": total.low})
	}
	s.log.WithContext(ctx).Debug("part 2 verified", logger.Fields(logger.FieldResult, want))
	return nil
}

// chunks yields the non-empty ranges cut into pieces of at most size seeds.
func chunks(ranges []rangemap.SeedRange, size int64) *pipeline.Pipeline[rangemap.SeedRange] {
	return pipeline.FromFunc(func(context.Context) pipeline.Iterator[rangemap.SeedRange] {
		return &chunkIter{pending: slices.Clone(ranges), size: size}
	})
}

type chunkIter struct {
	pending []rangemap.SeedRange
	size    int64
}

func (it *chunkIter) Next(ctx context.Context) (rangemap.SeedRange, bool, error) {
	if err := ctx.Err(); err != nil {
		return rangemap.SeedRange{}, false, err
	}
	for len(it.pending) > 0 {
		r := it.pending[0]
		if r.Empty() {
			it.pending = it.pending[1:]
			continue
		}
		n := min(r.Length, it.size)
		if n == r.Length {
			it.pending = it.pending[1:]
		} else {
			it.pending[0] = rangemap.SeedRange{Start: r.Start + n, Length: r.Length - n}
		}
		return rangemap.SeedRange{Start: r.Start, Length: n}, true, nil
	}
	return rangemap.SeedRange{}, false, nil
}

func (it *chunkIter) Close() error { return nil }

func ctxErr(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return errors.Canceled(op, err)
	}
	return nil
}

// wrapCtx turns context errors into CANCELED and leaves the rest alone.
func wrapCtx(err error, op string) error {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Canceled(op, err)
	}
	return err
}
