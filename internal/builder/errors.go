package builder

import "errors"

var (
	// ErrTooFewAgents indicates n < 1.
	ErrTooFewAgents = errors.New("builder: too few agents")

	// ErrNeedRandSource indicates a random constructor without WithSeed / WithRand.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrUnknownModel indicates an unsupported market.Model.
	ErrUnknownModel = errors.New("builder: unknown model")
)
