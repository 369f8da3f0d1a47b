package market

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every kstable package.
var (
	// ErrInvalidArgument covers n <= 0, n above MaxAgents, malformed preference
	// lists and k outside [1, n].
	ErrInvalidArgument = errors.New("market: invalid argument")

	// ErrInfeasibleMatching covers structural and model-specific validity failures.
	ErrInfeasibleMatching = errors.New("market: infeasible matching")

	// ErrAllocationFailure reports that a working buffer would exceed a configured budget.
	ErrAllocationFailure = errors.New("market: allocation failure")
)

// Instance construction failures.
var (
	// ErrNoAgents indicates an instance with zero agents.
	ErrNoAgents = fmt.Errorf("%w: no agents", ErrInvalidArgument)

	// ErrTooManyAgents indicates an instance above MaxAgents.
	ErrTooManyAgents = fmt.Errorf("%w: too many agents", ErrInvalidArgument)

	// ErrSelfReference indicates an agent listing itself.
	ErrSelfReference = fmt.Errorf("%w: self-reference in preference list", ErrInvalidArgument)

	// ErrWrongSide indicates a Marriage preference naming an agent of the same side.
	ErrWrongSide = fmt.Errorf("%w: preference names an agent of the same side", ErrInvalidArgument)

	// ErrBadPreferences indicates a preference list rejected by package prefs.
	ErrBadPreferences = fmt.Errorf("%w: bad preference list", ErrInvalidArgument)

	// ErrNilInstance indicates a nil *Instance.
	ErrNilInstance = fmt.Errorf("%w: nil instance", ErrInvalidArgument)

	// ErrKOutOfRange indicates a coalition threshold outside [1, n].
	ErrKOutOfRange = fmt.Errorf("%w: k outside [1, n]", ErrInvalidArgument)
)

// Matching validity failures.
var (
	// ErrModelMismatch indicates a matching built for another model or size.
	ErrModelMismatch = fmt.Errorf("%w: model or size mismatch", ErrInfeasibleMatching)

	// ErrOutOfBounds indicates a partner or good index outside the instance.
	ErrOutOfBounds = fmt.Errorf("%w: partner out of bounds", ErrInfeasibleMatching)

	// ErrSelfPair indicates an agent paired with itself.
	ErrSelfPair = fmt.Errorf("%w: agent paired with itself", ErrInfeasibleMatching)

	// ErrAsymmetric indicates pairs[pairs[i]] != i in a bilateral model.
	ErrAsymmetric = fmt.Errorf("%w: asymmetric pair", ErrInfeasibleMatching)

	// ErrSameSide indicates a Marriage pair within one side.
	ErrSameSide = fmt.Errorf("%w: pair within one side", ErrInfeasibleMatching)

	// ErrGoodOverAssigned indicates a good held by more than one agent.
	ErrGoodOverAssigned = fmt.Errorf("%w: good assigned more than once", ErrInfeasibleMatching)

	// ErrUnmatchedAgent indicates an unassigned agent in a model that requires a complete matching.
	ErrUnmatchedAgent = fmt.Errorf("%w: unmatched agent", ErrInfeasibleMatching)

	// ErrUnacceptable indicates an assignment outside an agent's preference list.
	ErrUnacceptable = fmt.Errorf("%w: unacceptable assignment", ErrInfeasibleMatching)
)
