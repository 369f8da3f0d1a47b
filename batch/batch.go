package batch

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/katalvlaran/kstable/logging"
	"github.com/katalvlaran/kstable/market"
	"github.com/katalvlaran/kstable/search"
)

// Op selects the search operation of a Job.
type Op int

const (
	// OpFind runs search.Find.
	OpFind Op = iota
	// OpCount runs search.Count.
	OpCount
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpFind:
		return "find"
	case OpCount:
		return "count"
	default:
		return "unknown"
	}
}

// Job is one decision call.
type Job struct {
	Instance *market.Instance
	K        int
	Op       Op
}

// Outcome is the answer to one Job.
type Outcome struct {
	Job Job

	// Exists is set by OpFind; Matching is its witness, owned by the caller.
	Exists   bool
	Matching *market.Matching

	// Count is set by OpCount.
	Count int

	// Err is nil, or an error from package search other than ErrNotFound.
	Err error

	// Cached reports that the answer came from the memo.
	Cached bool
}

// Option configures a Runner.
type Option func(*Options)

// Options holds Runner settings.
type Options struct {
	// Workers is the number of goroutines; defaults to GOMAXPROCS.
	Workers int

	// Logger receives Debug records per job. Default nop.
	Logger logging.Logger

	// Search is passed to every search call.
	Search []search.Option
}

// DefaultOptions returns GOMAXPROCS workers and a nop logger.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0), Logger: logging.NewNop()}
}

// WithWorkers sets the worker count; n < 1 is ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithLogger installs l. A nil l is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSearchOptions appends options for every search call.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// Stats reports Runner activity.
type Stats struct {
	// Runs is the number of search calls made.
	Runs int64
	// Hits is the number of jobs answered from the memo.
	Hits int64
	// Memo is the number of memoized answers.
	Memo int
}

type memoKey struct {
	fingerprint uint64
	k           int
	op          Op
}

// cell holds one memoized answer; once guards its computation.
type cell struct {
	once sync.Once
	out  Outcome
}

// Runner executes jobs on a worker pool. It is safe for concurrent use and
// its memo persists across Run calls.
type Runner struct {
	opts Options
	memo *xsync.Map[memoKey, *cell]
	runs *xsync.Counter
	hits *xsync.Counter
}

// NewRunner returns a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Logger = logging.OrNop(o.Logger)

	return &Runner{
		opts: o,
		memo: xsync.NewMap[memoKey, *cell](),
		runs: xsync.NewCounter(),
		hits: xsync.NewCounter(),
	}
}

// Run answers every job and returns the outcomes in job order. Jobs whose
// search is cut short by ctx report search.ErrCanceled.
func (r *Runner) Run(ctx context.Context, jobs []Job) []Outcome {
	out := make([]Outcome, len(jobs))
	next := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(r.opts.Workers, len(jobs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				out[i] = r.do(ctx, jobs[i])
			}
		}()
	}
	for i := range jobs {
		next <- i
	}
	close(next)
	wg.Wait()

	return out
}

// Stats returns a snapshot of the counters.
func (r *Runner) Stats() Stats {
	return Stats{Runs: r.runs.Value(), Hits: r.hits.Value(), Memo: r.memo.Size()}
}

func (r *Runner) do(ctx context.Context, job Job) Outcome {
	if job.Instance == nil {
		return Outcome{Job: job, Err: market.ErrNilInstance}
	}
	key := memoKey{fingerprint: job.Instance.Fingerprint(), k: job.K, op: job.Op}
	c, _ := r.memo.LoadOrStore(key, &cell{})

	ran := false
	c.once.Do(func() {
		ran = true
		r.runs.Inc()
		c.out = r.compute(ctx, job)
	})
	res := c.out
	res.Job = job
	if ran {
		if unknown(res.Err) {
			r.memo.Delete(key)
		}
	} else {
		r.hits.Inc()
		res.Cached = true
	}
	if res.Matching != nil {
		res.Matching = res.Matching.Clone()
	}
	r.opts.Logger.Debug("batch: job done",
		"op", job.Op.String(), "k", job.K, "cached", res.Cached, "err", res.Err)

	return res
}

func (r *Runner) compute(ctx context.Context, job Job) Outcome {
	opts := append(append([]search.Option(nil), r.opts.Search...), search.WithContext(ctx))
	switch job.Op {
	case OpCount:
		n, err := search.Count(job.Instance, job.K, opts...)

		return Outcome{Count: n, Err: err}
	default:
		res, err := search.Find(job.Instance, job.K, opts...)
		if errors.Is(err, search.ErrNotFound) {
			err = nil
		}

		return Outcome{Exists: res.Matching != nil && err == nil, Matching: res.Matching, Err: err}
	}
}

func unknown(err error) bool {
	return errors.Is(err, search.ErrCanceled) || errors.Is(err, search.ErrBudgetExceeded)
}
