// Package builder produces deterministic problem instances and brute-force
// oracles for tests and examples.
//
// Instance constructors follow one contract:
//   - parameters are validated up front and reported with sentinel errors;
//   - stochastic constructors require a seed (WithSeed) and are reproducible;
//   - option constructors panic on meaningless inputs, constructors never do.
//
// The oracles (Enumerate, MaxCoalition, CountStable) walk every valid
// matching of an instance. They are exponential and meant for n <= 8.
package builder
