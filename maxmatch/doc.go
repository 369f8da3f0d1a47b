// Package maxmatch implements the maximum-matching algorithms behind the
// k-stability verifier, on dense integer-indexed graphs:
//
//   - HopcroftKarp
//
//   - Method: BFS layering + DFS augmentation along shortest paths.
//
//   - Graph:  bipartite (Left × Right), unit weights.
//
//   - Time:   O(E · √V).
//
//   - Dinic
//
//   - Method: level graph + blocking flow on the unit network s → L → R → t.
//
//   - Graph:  bipartite, same input as HopcroftKarp (verify.Flow backend).
//
//   - Time:   O(E · √V).
//
//   - Blossom
//
//   - Method: Edmonds' blossom shrinking, one BFS per free root.
//
//   - Graph:  general, unit weights (maximum cardinality).
//
//   - Time:   O(V³).
//
//   - MaxWeight
//
//   - Method: primal-dual weighted blossom (Galil's O(V³) variant).
//
//   - Graph:  general (bipartite graphs included), integer weights ≥ 0.
//
//   - Time:   O(V³).
//
// Each algorithm returns a Result whose Mate slice is symmetric
// (Mate[Mate[v]] == v) for the general algorithms; HopcroftKarp and Dinic
// return separate Left/Right mate slices. Unmatched vertices map to -1.
//
// All algorithms are deterministic: for a fixed input (including edge and
// adjacency order) they return the same matching.
//
// Errors:
//
//	ErrBadVertex      - an edge endpoint or adjacency entry is out of range.
//	ErrSelfLoop       - an edge joins a vertex to itself.
//	ErrNegativeWeight - MaxWeight received a negative weight.
package maxmatch
