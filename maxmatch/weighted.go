package maxmatch

import "golang.org/x/exp/slices"

// MaxWeight computes a maximum-weight matching of a general undirected graph
// with vertices 0..n-1. Cardinality is not forced: an edge of weight 0 never
// needs to be used.
//
// The algorithm is the primal-dual weighted blossom method in Galil's O(V³)
// formulation. Each stage grows alternating trees from all free vertices,
// adjusting dual variables by the smallest admissible delta until an
// augmenting path appears or no free vertex can gain. Weights are doubled
// internally so every dual stays an integer.
//
// Errors: ErrBadVertex, ErrSelfLoop, ErrNegativeWeight.
//
// Complexity: Time O(V³), Space O(V + E).
func MaxWeight(n int, edges []Edge) (Result, error) {
	if n < 0 {
		return Result{}, ErrBadVertex
	}
	if err := checkEdges(n, edges, true); err != nil {
		return Result{}, err
	}
	if len(edges) == 0 {
		return Result{Mate: filled(n, Free)}, nil
	}

	w := newWeighted(n, edges)
	w.run()

	res := Result{Mate: filled(n, Free)}
	for v := 0; v < n; v++ {
		p := w.mate[v]
		if p < 0 {
			continue
		}
		u := w.endpoint[p]
		res.Mate[v] = u
		if v < u {
			res.Size++
			res.Weight += edges[p/2].W
		}
	}

	return res, nil
}

// weighted holds the primal-dual state. Vertices are 0..n-1, non-trivial
// blossoms n..2n-1. Endpoint p of edge k is edges[k].U for p = 2k and
// edges[k].V for p = 2k+1; mate[v] stores the remote endpoint index.
type weighted struct {
	n         int
	edges     []Edge // weights doubled
	endpoint  []int
	neighbend [][]int

	mate          []int
	label         []int // 0 free, 1 S, 2 T, 5 S under scan
	labelend      []int
	inblossom     []int
	blossomparent []int
	blossombase   []int
	bestedge      []int

	blossomchilds    [][]int
	blossomendps     [][]int
	blossombestedges [][]int // nil: not computed

	unused    []int
	dualvar   []int64
	allowedge []bool
	queue     []int
}

func newWeighted(n int, edges []Edge) *weighted {
	w := &weighted{
		n:                n,
		edges:            make([]Edge, len(edges)),
		endpoint:         make([]int, 2*len(edges)),
		neighbend:        make([][]int, n),
		mate:             filled(n, Free),
		label:            make([]int, 2*n),
		labelend:         filled(2*n, Free),
		inblossom:        make([]int, n),
		blossomparent:    filled(2*n, Free),
		blossombase:      filled(2*n, Free),
		bestedge:         filled(2*n, Free),
		blossomchilds:    make([][]int, 2*n),
		blossomendps:     make([][]int, 2*n),
		blossombestedges: make([][]int, 2*n),
		dualvar:          make([]int64, 2*n),
		allowedge:        make([]bool, len(edges)),
	}

	var maxw int64
	for k, e := range edges {
		e.W *= 2
		w.edges[k] = e
		if e.W > maxw {
			maxw = e.W
		}
		w.endpoint[2*k] = e.U
		w.endpoint[2*k+1] = e.V
		w.neighbend[e.U] = append(w.neighbend[e.U], 2*k+1)
		w.neighbend[e.V] = append(w.neighbend[e.V], 2*k)
	}
	for v := 0; v < n; v++ {
		w.inblossom[v] = v
		w.blossombase[v] = v
		w.dualvar[v] = maxw
	}
	for b := n; b < 2*n; b++ {
		w.unused = append(w.unused, b)
	}

	return w
}

// at indexes s cyclically, accepting negative offsets.
func at(s []int, j int) int {
	j %= len(s)
	if j < 0 {
		j += len(s)
	}

	return s[j]
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func (w *weighted) slack(k int) int64 {
	e := w.edges[k]

	return w.dualvar[e.U] + w.dualvar[e.V] - 2*e.W
}

// leaves appends the vertices contained in blossom b to out.
func (w *weighted) leaves(b int, out []int) []int {
	if b < w.n {
		return append(out, b)
	}
	for _, t := range w.blossomchilds[b] {
		out = w.leaves(t, out)
	}

	return out
}

func (w *weighted) assignLabel(v, t, p int) {
	b := w.inblossom[v]
	w.label[v], w.label[b] = t, t
	w.labelend[v], w.labelend[b] = p, p
	w.bestedge[v], w.bestedge[b] = Free, Free
	switch t {
	case 1:
		w.queue = w.leaves(b, w.queue)
	case 2:
		base := w.blossombase[b]
		w.assignLabel(w.endpoint[w.mate[base]], 1, w.mate[base]^1)
	}
}

// scanBlossom traces back from v and w to find a common S-ancestor. It
// returns the base of the new blossom, or Free if the paths reach two
// different roots (an augmenting path).
func (w *weighted) scanBlossom(v, u int) int {
	var path []int
	base := Free
	for v != Free || u != Free {
		b := w.inblossom[v]
		if w.label[b]&4 != 0 {
			base = w.blossombase[b]

			break
		}
		path = append(path, b)
		w.label[b] = 5
		if w.labelend[b] == Free {
			v = Free
		} else {
			v = w.endpoint[w.labelend[b]]
			b = w.inblossom[v]
			v = w.endpoint[w.labelend[b]]
		}
		if u != Free {
			v, u = u, v
		}
	}
	for _, b := range path {
		w.label[b] = 1
	}

	return base
}

// addBlossom contracts the odd cycle closed by edge k into a new S-blossom.
func (w *weighted) addBlossom(base, k int) {
	v, u := w.edges[k].U, w.edges[k].V
	bb := w.inblossom[base]
	bv := w.inblossom[v]
	bu := w.inblossom[u]

	b := w.unused[len(w.unused)-1]
	w.unused = w.unused[:len(w.unused)-1]
	w.blossombase[b] = base
	w.blossomparent[b] = Free
	w.blossomparent[bb] = b

	var path, endps []int
	for bv != bb {
		w.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, w.labelend[bv])
		v = w.endpoint[w.labelend[bv]]
		bv = w.inblossom[v]
	}
	path = append(path, bb)
	reverse(path)
	reverse(endps)
	endps = append(endps, 2*k)
	for bu != bb {
		w.blossomparent[bu] = b
		path = append(path, bu)
		endps = append(endps, w.labelend[bu]^1)
		u = w.endpoint[w.labelend[bu]]
		bu = w.inblossom[u]
	}
	w.blossomchilds[b] = path
	w.blossomendps[b] = endps

	w.label[b] = 1
	w.labelend[b] = w.labelend[bb]
	w.dualvar[b] = 0
	for _, x := range w.leaves(b, nil) {
		if w.label[w.inblossom[x]] == 2 {
			w.queue = append(w.queue, x)
		}
		w.inblossom[x] = b
	}

	bestedgeto := filled(2*w.n, Free)
	for _, sub := range path {
		var lists [][]int
		if w.blossombestedges[sub] == nil {
			for _, x := range w.leaves(sub, nil) {
				ks := make([]int, len(w.neighbend[x]))
				for i, p := range w.neighbend[x] {
					ks[i] = p / 2
				}
				lists = append(lists, ks)
			}
		} else {
			lists = [][]int{w.blossombestedges[sub]}
		}
		for _, ks := range lists {
			for _, kk := range ks {
				j := w.edges[kk].V
				if w.inblossom[j] == b {
					j = w.edges[kk].U
				}
				bj := w.inblossom[j]
				if bj != b && w.label[bj] == 1 &&
					(bestedgeto[bj] == Free || w.slack(kk) < w.slack(bestedgeto[bj])) {
					bestedgeto[bj] = kk
				}
			}
		}
		w.blossombestedges[sub] = nil
		w.bestedge[sub] = Free
	}

	best := make([]int, 0, len(path))
	for _, kk := range bestedgeto {
		if kk != Free {
			best = append(best, kk)
		}
	}
	w.blossombestedges[b] = best
	w.bestedge[b] = Free
	for _, kk := range best {
		if w.bestedge[b] == Free || w.slack(kk) < w.slack(w.bestedge[b]) {
			w.bestedge[b] = kk
		}
	}
}

// expandBlossom dissolves blossom b. Mid-stage expansion of a T-blossom
// relabels the even-length path from its entry child to its base.
func (w *weighted) expandBlossom(b int, endstage bool) {
	for _, s := range w.blossomchilds[b] {
		w.blossomparent[s] = Free
		switch {
		case s < w.n:
			w.inblossom[s] = s
		case endstage && w.dualvar[s] == 0:
			w.expandBlossom(s, endstage)
		default:
			for _, x := range w.leaves(s, nil) {
				w.inblossom[x] = s
			}
		}
	}

	if !endstage && w.label[b] == 2 {
		childs := w.blossomchilds[b]
		endps := w.blossomendps[b]
		entry := w.inblossom[w.endpoint[w.labelend[b]^1]]
		j := slices.Index(childs, entry)
		jstep, trick := -1, 1
		if j&1 != 0 {
			j -= len(childs)
			jstep, trick = 1, 0
		}

		p := w.labelend[b]
		for j != 0 {
			w.label[w.endpoint[p^1]] = 0
			w.label[w.endpoint[at(endps, j-trick)^trick^1]] = 0
			w.assignLabel(w.endpoint[p^1], 2, p)
			w.allowedge[at(endps, j-trick)/2] = true
			j += jstep
			p = at(endps, j-trick) ^ trick
			w.allowedge[p/2] = true
			j += jstep
		}

		bv := at(childs, j)
		w.label[w.endpoint[p^1]], w.label[bv] = 2, 2
		w.labelend[w.endpoint[p^1]], w.labelend[bv] = p, p
		w.bestedge[bv] = Free
		j += jstep
		for at(childs, j) != entry {
			bv = at(childs, j)
			if w.label[bv] == 1 {
				j += jstep

				continue
			}
			reached := Free
			for _, x := range w.leaves(bv, nil) {
				if w.label[x] != 0 {
					reached = x

					break
				}
			}
			if reached != Free {
				w.label[reached] = 0
				w.label[w.endpoint[w.mate[w.blossombase[bv]]]] = 0
				w.assignLabel(reached, 2, w.labelend[reached])
			}
			j += jstep
		}
	}

	w.label[b], w.labelend[b] = Free, Free
	w.blossomchilds[b], w.blossomendps[b] = nil, nil
	w.blossombase[b] = Free
	w.blossombestedges[b] = nil
	w.bestedge[b] = Free
	w.unused = append(w.unused, b)
}

// augmentBlossom flips the matched edges inside b along the even path from
// vertex v to the base, making v the new base.
func (w *weighted) augmentBlossom(b, v int) {
	t := v
	for w.blossomparent[t] != b {
		t = w.blossomparent[t]
	}
	if t >= w.n {
		w.augmentBlossom(t, v)
	}

	childs := w.blossomchilds[b]
	endps := w.blossomendps[b]
	i := slices.Index(childs, t)
	j := i
	jstep, trick := -1, 1
	if i&1 != 0 {
		j -= len(childs)
		jstep, trick = 1, 0
	}
	for j != 0 {
		j += jstep
		t = at(childs, j)
		p := at(endps, j-trick) ^ trick
		if t >= w.n {
			w.augmentBlossom(t, w.endpoint[p])
		}
		j += jstep
		t = at(childs, j)
		if t >= w.n {
			w.augmentBlossom(t, w.endpoint[p^1])
		}
		w.mate[w.endpoint[p]] = p ^ 1
		w.mate[w.endpoint[p^1]] = p
	}

	w.blossomchilds[b] = append(slices.Clone(childs[i:]), childs[:i]...)
	w.blossomendps[b] = append(slices.Clone(endps[i:]), endps[:i]...)
	w.blossombase[b] = w.blossombase[w.blossomchilds[b][0]]
}

// augmentMatching flips the augmenting path through edge k.
func (w *weighted) augmentMatching(k int) {
	starts := [2][2]int{{w.edges[k].U, 2*k + 1}, {w.edges[k].V, 2 * k}}
	for _, sp := range starts {
		s, p := sp[0], sp[1]
		for {
			bs := w.inblossom[s]
			if bs >= w.n {
				w.augmentBlossom(bs, s)
			}
			w.mate[s] = p
			if w.labelend[bs] == Free {
				break
			}
			t := w.endpoint[w.labelend[bs]]
			bt := w.inblossom[t]
			s = w.endpoint[w.labelend[bt]]
			j := w.endpoint[w.labelend[bt]^1]
			if bt >= w.n {
				w.augmentBlossom(bt, j)
			}
			w.mate[j] = w.labelend[bt]
			p = w.labelend[bt] ^ 1
		}
	}
}

// delta kinds.
const (
	deltaVertex = iota
	deltaFreeEdge
	deltaInnerEdge
	deltaBlossom
)

// run executes stages until no augmentation improves the weight.
func (w *weighted) run() {
	n := w.n
	for stage := 0; stage < n; stage++ {
		for i := range w.label {
			w.label[i] = 0
			w.bestedge[i] = Free
		}
		for b := n; b < 2*n; b++ {
			w.blossombestedges[b] = nil
		}
		for k := range w.allowedge {
			w.allowedge[k] = false
		}
		w.queue = w.queue[:0]

		for v := 0; v < n; v++ {
			if w.mate[v] == Free && w.label[w.inblossom[v]] == 0 {
				w.assignLabel(v, 1, Free)
			}
		}

		augmented := false
		for {
			for len(w.queue) > 0 && !augmented {
				v := w.queue[len(w.queue)-1]
				w.queue = w.queue[:len(w.queue)-1]
				for _, p := range w.neighbend[v] {
					k := p / 2
					u := w.endpoint[p]
					if w.inblossom[v] == w.inblossom[u] {
						continue
					}
					var kslack int64
					if !w.allowedge[k] {
						kslack = w.slack(k)
						if kslack <= 0 {
							w.allowedge[k] = true
						}
					}
					if w.allowedge[k] {
						if w.label[w.inblossom[u]] == 0 {
							w.assignLabel(u, 2, p^1)
						} else if w.label[w.inblossom[u]] == 1 {
							if base := w.scanBlossom(v, u); base >= 0 {
								w.addBlossom(base, k)
							} else {
								w.augmentMatching(k)
								augmented = true

								break
							}
						} else if w.label[u] == 0 {
							w.label[u] = 2
							w.labelend[u] = p ^ 1
						}
					} else if w.label[w.inblossom[u]] == 1 {
						b := w.inblossom[v]
						if w.bestedge[b] == Free || kslack < w.slack(w.bestedge[b]) {
							w.bestedge[b] = k
						}
					} else if w.label[u] == 0 {
						if w.bestedge[u] == Free || kslack < w.slack(w.bestedge[u]) {
							w.bestedge[u] = k
						}
					}
				}
			}
			if augmented {
				break
			}

			kind := deltaVertex
			delta := w.dualvar[0]
			for v := 1; v < n; v++ {
				if w.dualvar[v] < delta {
					delta = w.dualvar[v]
				}
			}
			deltaEdge, deltaBlossomID := Free, Free
			for v := 0; v < n; v++ {
				if w.label[w.inblossom[v]] == 0 && w.bestedge[v] != Free {
					if d := w.slack(w.bestedge[v]); d < delta {
						delta, kind, deltaEdge = d, deltaFreeEdge, w.bestedge[v]
					}
				}
			}
			for b := 0; b < 2*n; b++ {
				if w.blossomparent[b] == Free && w.label[b] == 1 && w.bestedge[b] != Free {
					if d := w.slack(w.bestedge[b]) / 2; d < delta {
						delta, kind, deltaEdge = d, deltaInnerEdge, w.bestedge[b]
					}
				}
			}
			for b := n; b < 2*n; b++ {
				if w.blossombase[b] >= 0 && w.blossomparent[b] == Free && w.label[b] == 2 &&
					w.dualvar[b] < delta {
					delta, kind, deltaBlossomID = w.dualvar[b], deltaBlossom, b
				}
			}

			for v := 0; v < n; v++ {
				switch w.label[w.inblossom[v]] {
				case 1:
					w.dualvar[v] -= delta
				case 2:
					w.dualvar[v] += delta
				}
			}
			for b := n; b < 2*n; b++ {
				if w.blossombase[b] >= 0 && w.blossomparent[b] == Free {
					switch w.label[b] {
					case 1:
						w.dualvar[b] += delta
					case 2:
						w.dualvar[b] -= delta
					}
				}
			}

			if kind == deltaVertex {
				// no free vertex can gain
				break
			}
			switch kind {
			case deltaFreeEdge:
				w.allowedge[deltaEdge] = true
				i := w.edges[deltaEdge].U
				if w.label[w.inblossom[i]] == 0 {
					i = w.edges[deltaEdge].V
				}
				w.queue = append(w.queue, i)
			case deltaInnerEdge:
				w.allowedge[deltaEdge] = true
				w.queue = append(w.queue, w.edges[deltaEdge].U)
			case deltaBlossom:
				w.expandBlossom(deltaBlossomID, false)
			}
		}

		if !augmented {
			return
		}
		for b := n; b < 2*n; b++ {
			if w.blossomparent[b] == Free && w.blossombase[b] >= 0 && w.label[b] == 1 && w.dualvar[b] == 0 {
				w.expandBlossom(b, true)
			}
		}
	}
}
