// Package logging defines the structured Logger used by the search engine,
// the verifier and the batch runner, plus two implementations:
//
//   - NewSlog(l): adapter over a *slog.Logger.
//   - NewNop():   discards everything (the default everywhere).
//
// The interface mirrors the key-value style of zap.SugaredLogger so any
// structured logger can be plugged in with a thin adapter.
package logging
