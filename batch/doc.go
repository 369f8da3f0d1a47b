// Package batch runs many independent search calls concurrently.
//
// Each job gets its own search call and therefore its own matching buffer;
// workers share nothing but a memo of finished answers keyed by the
// instance fingerprint, k and the operation. Answers cut short by
// cancellation or a node budget are unknown and are never memoized.
package batch
