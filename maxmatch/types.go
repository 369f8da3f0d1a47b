package maxmatch

import "errors"

// Free marks an unmatched vertex.
const Free = -1

// Sentinel errors for matching inputs.
var (
	// ErrBadVertex indicates an endpoint outside the vertex range.
	ErrBadVertex = errors.New("maxmatch: vertex out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("maxmatch: self-loop")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("maxmatch: negative edge weight")
)

// Edge is an undirected edge of a general graph.
type Edge struct {
	U, V int
	W    int64 // ignored by Blossom
}

// Result describes a matching of a general graph.
type Result struct {
	// Size is the number of matched edges.
	Size int

	// Weight is the total weight of matched edges (Size for cardinality algorithms).
	Weight int64

	// Mate[v] is v's partner or Free.
	Mate []int
}

// BipartiteResult describes a matching of a bipartite graph.
type BipartiteResult struct {
	// Size is the number of matched edges.
	Size int

	// Left[u] is the right vertex matched to left vertex u, or Free.
	Left []int

	// Right[v] is the left vertex matched to right vertex v, or Free.
	Right []int
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}

func checkEdges(n int, edges []Edge, weighted bool) error {
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return ErrBadVertex
		}
		if e.U == e.V {
			return ErrSelfLoop
		}
		if weighted && e.W < 0 {
			return ErrNegativeWeight
		}
	}

	return nil
}
