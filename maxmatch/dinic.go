package maxmatch

// Dinic computes a maximum-cardinality bipartite matching as a maximum flow
// on the unit network source → left → right → sink, with level graphs and
// blocking flows. It takes the same input as HopcroftKarp and returns a
// matching of the same size, though not necessarily the same pairs. The
// verifier's Flow backend computes house-model coalitions with it.
//
// Steps:
//  1. Build the residual network: one arc per edge plus source and sink
//     arcs, each paired with its reverse arc.
//  2. Repeat until the sink is unreachable:
//     a. BFS from the source to assign levels.
//     b. Push unit paths along level-increasing arcs, advancing a
//     per-vertex arc iterator so each arc is scanned once per phase.
//  3. Read the matching from saturated left → right arcs.
//
// Errors: ErrBadVertex as in HopcroftKarp.
//
// Complexity: Time O(E·√V) on unit networks, Space O(V + E).
func Dinic(left, right int, adj [][]int) (BipartiteResult, error) {
	if left < 0 || right < 0 || len(adj) != left {
		return BipartiteResult{}, ErrBadVertex
	}

	// 1) Vertices: source, left block, right block, sink.
	net := newUnitNet(left + right + 2)
	src, sink := 0, left+right+1
	for u, nbrs := range adj {
		net.arc(src, 1+u)
		for _, v := range nbrs {
			if v < 0 || v >= right {
				return BipartiteResult{}, ErrBadVertex
			}
			net.arc(1+u, 1+left+v)
		}
	}
	for v := 0; v < right; v++ {
		net.arc(1+left+v, sink)
	}

	// 2) Phases.
	size := 0
	for net.levels(src, sink) {
		for i := range net.iter {
			net.iter[i] = 0
		}
		for net.push(src, sink) {
			size++
		}
	}

	// 3) Matching from saturated middle arcs.
	res := BipartiteResult{Size: size, Left: filled(left, Free), Right: filled(right, Free)}
	for u := 0; u < left; u++ {
		for _, a := range net.out[1+u] {
			to := net.to[a]
			if to > left && to < sink && net.cap[a] == 0 {
				res.Left[u] = to - 1 - left
				res.Right[to-1-left] = u
			}
		}
	}

	return res, nil
}

// unitNet is a residual network with unit capacities; arc a^1 reverses a.
type unitNet struct {
	to    []int
	cap   []int
	out   [][]int
	level []int
	iter  []int
	queue []int
}

func newUnitNet(n int) *unitNet {
	return &unitNet{out: make([][]int, n), level: make([]int, n), iter: make([]int, n)}
}

func (g *unitNet) arc(u, v int) {
	g.out[u] = append(g.out[u], len(g.to))
	g.to = append(g.to, v)
	g.cap = append(g.cap, 1)
	g.out[v] = append(g.out[v], len(g.to))
	g.to = append(g.to, u)
	g.cap = append(g.cap, 0)
}

// levels runs the BFS and reports whether the sink is reachable.
func (g *unitNet) levels(src, sink int) bool {
	for i := range g.level {
		g.level[i] = -1
	}
	g.level[src] = 0
	g.queue = append(g.queue[:0], src)
	for i := 0; i < len(g.queue); i++ {
		u := g.queue[i]
		for _, a := range g.out[u] {
			if v := g.to[a]; g.cap[a] > 0 && g.level[v] < 0 {
				g.level[v] = g.level[u] + 1
				g.queue = append(g.queue, v)
			}
		}
	}

	return g.level[sink] >= 0
}

// push sends one unit from u to sink along the level graph.
func (g *unitNet) push(u, sink int) bool {
	if u == sink {
		return true
	}
	for ; g.iter[u] < len(g.out[u]); g.iter[u]++ {
		a := g.out[u][g.iter[u]]
		v := g.to[a]
		if g.cap[a] == 0 || g.level[v] != g.level[u]+1 {
			continue
		}
		if g.push(v, sink) {
			g.cap[a]--
			g.cap[a^1]++

			return true
		}
	}

	return false
}
