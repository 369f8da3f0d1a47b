package maxmatch

import "math"

// HopcroftKarp computes a maximum-cardinality matching of the bipartite graph
// with left vertices 0..left-1, right vertices 0..right-1 and adjacency
// adj[u] (right neighbours of left vertex u).
//
// Each phase builds BFS layers from all free left vertices and then augments
// along a maximal set of vertex-disjoint shortest paths with DFS, so at most
// O(√V) phases run. Neighbours are scanned in adjacency order, which keeps the
// result deterministic.
//
// Errors: ErrBadVertex if len(adj) != left or an entry is outside [0, right).
//
// Complexity: Time O(E·√V), Space O(V).
func HopcroftKarp(left, right int, adj [][]int) (BipartiteResult, error) {
	if left < 0 || right < 0 || len(adj) != left {
		return BipartiteResult{}, ErrBadVertex
	}
	for _, nbrs := range adj {
		for _, v := range nbrs {
			if v < 0 || v >= right {
				return BipartiteResult{}, ErrBadVertex
			}
		}
	}

	hk := &hkState{
		adj:   adj,
		left:  filled(left, Free),
		right: filled(right, Free),
		dist:  make([]int, left),
	}
	size := 0
	for hk.layer() {
		for u := range hk.left {
			if hk.left[u] == Free && hk.augment(u) {
				size++
			}
		}
	}

	return BipartiteResult{Size: size, Left: hk.left, Right: hk.right}, nil
}

type hkState struct {
	adj   [][]int
	left  []int
	right []int
	dist  []int
	queue []int
}

const unreached = math.MaxInt

// layer runs the BFS phase and reports whether a free right vertex is reachable.
func (hk *hkState) layer() bool {
	hk.queue = hk.queue[:0]
	for u, v := range hk.left {
		if v == Free {
			hk.dist[u] = 0
			hk.queue = append(hk.queue, u)
		} else {
			hk.dist[u] = unreached
		}
	}

	found := false
	for head := 0; head < len(hk.queue); head++ {
		u := hk.queue[head]
		for _, v := range hk.adj[u] {
			w := hk.right[v]
			if w == Free {
				found = true
			} else if hk.dist[w] == unreached {
				hk.dist[w] = hk.dist[u] + 1
				hk.queue = append(hk.queue, w)
			}
		}
	}

	return found
}

// augment searches a layered augmenting path from left vertex u.
func (hk *hkState) augment(u int) bool {
	for _, v := range hk.adj[u] {
		w := hk.right[v]
		if w == Free || (hk.dist[w] == hk.dist[u]+1 && hk.augment(w)) {
			hk.left[u] = v
			hk.right[v] = u

			return true
		}
	}
	hk.dist[u] = unreached

	return false
}
