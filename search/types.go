package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/kstable/logging"
	"github.com/katalvlaran/kstable/market"
	"github.com/katalvlaran/kstable/verify"
)

var (
	// ErrNotFound indicates that no k-stable matching exists.
	ErrNotFound = errors.New("search: no k-stable matching")

	// ErrCanceled indicates that Options.Ctx ended the search; the answer is unknown.
	ErrCanceled = errors.New("search: canceled")

	// ErrBudgetExceeded indicates that Options.MaxNodes ended the search; the answer is unknown.
	ErrBudgetExceeded = errors.New("search: node budget exceeded")
)

// Regime identifies the strategy Find used.
type Regime int

const (
	// RegimeTrivial is k == 1.
	RegimeTrivial Regime = iota
	// RegimeLargeK is k >= LargeKRatio·n.
	RegimeLargeK
	// RegimeBacktrack is every other k.
	RegimeBacktrack
)

// String returns the regime name.
func (r Regime) String() string {
	switch r {
	case RegimeTrivial:
		return "trivial"
	case RegimeLargeK:
		return "large-k"
	case RegimeBacktrack:
		return "backtrack"
	default:
		return "unknown"
	}
}

// DefaultLargeKRatio is the k/n threshold of RegimeLargeK.
const DefaultLargeKRatio = 0.8

// Option configures a search.
type Option func(*Options)

// Options holds search settings.
type Options struct {
	// Ctx allows cancellation or deadlines; defaults to context.Background().
	// It is polled every 4096 search nodes.
	Ctx context.Context

	// Logger receives Debug records (regime, candidates, node counts). Default nop.
	Logger logging.Logger

	// LargeKRatio sets the RegimeLargeK threshold; values outside (0, 1] are ignored.
	LargeKRatio float64

	// MaxNodes bounds the backtracking nodes; 0 means unlimited.
	MaxNodes int

	// TrustLargeK reports ErrNotFound in RegimeLargeK as soon as every greedy
	// candidate fails, skipping the exhaustive fallback. The answer is then
	// heuristic. Default false.
	TrustLargeK bool

	// Verify is passed to the verifier at every leaf and candidate.
	Verify []verify.Option
}

// DefaultOptions returns Options with:
//   - Background context
//   - nop logger
//   - LargeKRatio = DefaultLargeKRatio
//   - unlimited nodes
//   - exhaustive fallback in RegimeLargeK
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      logging.NewNop(),
		LargeKRatio: DefaultLargeKRatio,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
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

// WithLargeKRatio sets the RegimeLargeK threshold.
func WithLargeKRatio(r float64) Option {
	return func(o *Options) {
		if r > 0 && r <= 1 {
			o.LargeKRatio = r
		}
	}
}

// WithMaxNodes bounds the backtracking nodes; n <= 0 means unlimited.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxNodes = n
	}
}

// WithTrustLargeK enables the heuristic large-k shortcut.
func WithTrustLargeK() Option {
	return func(o *Options) {
		o.TrustLargeK = true
	}
}

// WithVerifyOptions appends verifier options.
func WithVerifyOptions(opts ...verify.Option) Option {
	return func(o *Options) {
		o.Verify = append(o.Verify, opts...)
	}
}

// Apply returns o with opts applied and zero fields defaulted.
func (o Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	o.Logger = logging.OrNop(o.Logger)
	if o.LargeKRatio <= 0 || o.LargeKRatio > 1 {
		o.LargeKRatio = DefaultLargeKRatio
	}

	return o
}

// Result is the outcome of Find.
type Result struct {
	// Matching is the k-stable matching found; owned by the caller.
	Matching *market.Matching

	// Regime is the strategy selected for k.
	Regime Regime

	// Candidates is the number of distinct greedy candidates verified.
	Candidates int

	// Nodes and Pruned count backtracking nodes visited and cut.
	Nodes  int
	Pruned int
}
