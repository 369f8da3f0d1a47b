package maxmatch

// Blossom computes a maximum-cardinality matching of a general undirected
// graph with vertices 0..n-1 using Edmonds' blossom shrinking.
//
// Parallel edges are harmless. Edge weights are ignored. A greedy pass seeds
// the matching, then every still-free vertex roots one alternating-tree BFS;
// odd cycles are contracted onto their base, and an augmenting path, if found,
// is flipped.
//
// Errors: ErrBadVertex, ErrSelfLoop.
//
// Complexity: Time O(V³), Space O(V + E).
func Blossom(n int, edges []Edge) (Result, error) {
	if n < 0 {
		return Result{}, ErrBadVertex
	}
	if err := checkEdges(n, edges, false); err != nil {
		return Result{}, err
	}

	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	b := &blossomState{
		adj:     adj,
		mate:    filled(n, Free),
		parent:  make([]int, n),
		base:    make([]int, n),
		used:    make([]bool, n),
		blossom: make([]bool, n),
		onPath:  make([]bool, n),
	}

	size := 0
	for u := 0; u < n; u++ {
		if b.mate[u] != Free {
			continue
		}
		for _, v := range adj[u] {
			if b.mate[v] == Free {
				b.mate[u], b.mate[v] = v, u
				size++

				break
			}
		}
	}

	for root := 0; root < n; root++ {
		if b.mate[root] != Free {
			continue
		}
		if end := b.findPath(root); end != Free {
			b.flip(end)
			size++
		}
	}

	return Result{Size: size, Weight: int64(size), Mate: b.mate}, nil
}

type blossomState struct {
	adj     [][]int
	mate    []int
	parent  []int
	base    []int
	used    []bool
	blossom []bool
	onPath  []bool
	queue   []int
}

// lca returns the base of the blossom closed by the edge (x, y).
func (b *blossomState) lca(x, y int) int {
	for i := range b.onPath {
		b.onPath[i] = false
	}
	for {
		x = b.base[x]
		b.onPath[x] = true
		if b.mate[x] == Free {
			break
		}
		x = b.parent[b.mate[x]]
	}
	for {
		y = b.base[y]
		if b.onPath[y] {
			return y
		}
		y = b.parent[b.mate[y]]
	}
}

func (b *blossomState) markPath(v, root, child int) {
	for b.base[v] != root {
		b.blossom[b.base[v]] = true
		b.blossom[b.base[b.mate[v]]] = true
		b.parent[v] = child
		child = b.mate[v]
		v = b.parent[b.mate[v]]
	}
}

// findPath grows an alternating tree from root and returns the free vertex
// ending an augmenting path, or Free.
func (b *blossomState) findPath(root int) int {
	for i := range b.used {
		b.used[i] = false
		b.parent[i] = Free
		b.base[i] = i
	}
	b.used[root] = true
	b.queue = append(b.queue[:0], root)

	for head := 0; head < len(b.queue); head++ {
		v := b.queue[head]
		for _, to := range b.adj[v] {
			if b.base[v] == b.base[to] || b.mate[v] == to {
				continue
			}
			if to == root || (b.mate[to] != Free && b.parent[b.mate[to]] != Free) {
				cur := b.lca(v, to)
				for i := range b.blossom {
					b.blossom[i] = false
				}
				b.markPath(v, cur, to)
				b.markPath(to, cur, v)
				for i := range b.base {
					if b.blossom[b.base[i]] {
						b.base[i] = cur
						if !b.used[i] {
							b.used[i] = true
							b.queue = append(b.queue, i)
						}
					}
				}
			} else if b.parent[to] == Free {
				b.parent[to] = v
				if b.mate[to] == Free {
					return to
				}
				next := b.mate[to]
				b.used[next] = true
				b.queue = append(b.queue, next)
			}
		}
	}

	return Free
}

// flip augments along the parent chain ending at v.
func (b *blossomState) flip(v int) {
	for v != Free {
		pv := b.parent[v]
		ppv := b.mate[pv]
		b.mate[v] = pv
		b.mate[pv] = v
		v = ppv
	}
}
