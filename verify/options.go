package verify

import "github.com/katalvlaran/kstable/logging"

// Backend selects how the largest blocking coalition is computed.
type Backend int

const (
	// Combinatorial uses augmenting-path and blossom matchings. Polynomial.
	Combinatorial Backend = iota

	// PseudoBoolean encodes coalition existence for gophersat. Exponential worst case.
	PseudoBoolean

	// Flow is Combinatorial with house-model coalitions computed as a unit
	// max flow (maxmatch.Dinic) instead of Hopcroft-Karp.
	Flow
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case Combinatorial:
		return "combinatorial"
	case PseudoBoolean:
		return "pseudo-boolean"
	case Flow:
		return "flow"
	default:
		return "unknown"
	}
}

// DefaultMaxPBVariables caps the PB encoding (one variable per improvement edge).
const DefaultMaxPBVariables = 20000

// Option configures verification.
type Option func(*Options)

// Options holds verifier settings.
type Options struct {
	// Backend selects the coalition algorithm. Default Combinatorial.
	Backend Backend

	// Logger receives Debug records per decision. Default nop.
	Logger logging.Logger

	// MaxPBVariables bounds the PseudoBoolean encoding; above it the call
	// fails with market.ErrAllocationFailure. Default DefaultMaxPBVariables.
	MaxPBVariables int
}

// DefaultOptions returns Options with:
//   - Combinatorial backend
//   - nop logger
//   - MaxPBVariables = DefaultMaxPBVariables
func DefaultOptions() Options {
	return Options{
		Backend:        Combinatorial,
		Logger:         logging.NewNop(),
		MaxPBVariables: DefaultMaxPBVariables,
	}
}

// WithBackend selects the coalition backend.
func WithBackend(b Backend) Option {
	return func(o *Options) {
		o.Backend = b
	}
}

// WithLogger installs l. A nil l keeps the nop logger.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxPBVariables sets the PB variable budget; non-positive values are ignored.
func WithMaxPBVariables(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxPBVariables = n
		}
	}
}

// Apply returns o with opts applied in order.
func (o Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	o.Logger = logging.OrNop(o.Logger)
	if o.MaxPBVariables <= 0 {
		o.MaxPBVariables = DefaultMaxPBVariables
	}

	return o
}
