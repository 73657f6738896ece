// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Single-pair Dijkstra with lazy decrease-key and deterministic tie-breaking.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/serenipy/core"
)

// ShortestPath computes a minimum-weight path from one node to another.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. from and to must exist (core.ErrUnknownNode, wrapped).
//  3. No edge may weigh less than zero or NaN (ErrNegativeWeight).
//
// Implementation:
//   - Stage 1: Pre-scan every edge once, evaluating the weight function into
//     a table indexed by EdgeID. Fail fast on negative weights.
//   - Stage 2: Run Dijkstra from `from`, popping (dist, node id) in ascending
//     order and relaxing incidences in edge insertion order on strict
//     improvement only. Stop as soon as `to` is settled.
//   - Stage 3: Walk predecessor edges back from `to` and reverse.
//
// Behavior highlights:
//   - Edges weighing +Inf are impassable.
//   - Among parallel edges the lightest wins; on equal weight the first inserted.
//   - Equal-weight alternative paths resolve identically on every run.
//   - from == to yields a single-node path of weight 0.
//
// Complexity:
//   - Time:  O(E + (V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, from, to core.NodeID, opts ...Option) (Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Path{}, ErrNilGraph
	}
	if !g.HasNode(from) {
		return Path{}, fmt.Errorf("dijkstra: source %d: %w", from, core.ErrUnknownNode)
	}
	if !g.HasNode(to) {
		return Path{}, fmt.Errorf("dijkstra: target %d: %w", to, core.ErrUnknownNode)
	}

	edges := g.Edges()
	weights := make([]float64, len(edges))
	var w float64
	for _, e := range edges {
		w = cfg.Weight(e)
		if math.IsNaN(w) || w < 0 {
			return Path{}, fmt.Errorf("%w: edge %s %d→%d weight=%v", ErrNegativeWeight, e.ID, e.From, e.To, w)
		}
		weights[e.ID] = w
	}

	if from == to {
		return Path{Nodes: []core.NodeID{from}, Edges: []core.EdgeID{}}, nil
	}

	r := &runner{
		g:       g,
		options: cfg,
		weights: weights,
		target:  to,
		dist:    make(map[core.NodeID]float64),
		prev:    make(map[core.NodeID]step),
		visited: make(map[core.NodeID]bool),
	}
	r.init(from)
	if err := r.process(); err != nil {
		return Path{}, err
	}

	return r.path(from)
}

// PathLength sums the physical lengths of the edges of p.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - core.ErrUnknownEdge: p references an edge not in g.
func PathLength(g *core.Graph, p Path) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	var total float64
	for _, id := range p.Edges {
		e, err := g.Edge(id)
		if err != nil {
			return 0, err
		}
		total += e.Length
	}

	return total, nil
}

// step records how a node was reached: the edge taken and the node it left.
type step struct {
	edge core.EdgeID
	from core.NodeID
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g       *core.Graph             // The input graph; read-only here.
	options Options                 // Weight function and distance cap.
	weights []float64               // EdgeID → weight, evaluated once.
	target  core.NodeID             // Destination; search stops once settled.
	dist    map[core.NodeID]float64 // Best known distance; absent means +∞.
	prev    map[core.NodeID]step    // Predecessor edge on the best path.
	visited map[core.NodeID]bool    // Settled nodes.
	pq      nodePQ                  // Lazy min-heap.
}

// init seeds the heap with the source at distance zero.
func (r *runner) init(source core.NodeID) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process settles nodes in (dist, id) order until the target is settled,
// the heap drains, or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Stale entry left by lazy decrease-key.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if item.id == r.target {
			return nil
		}

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of u's neighbours. Neighbors already omits
// directed edges that do not leave u.
func (r *runner) relax(u core.NodeID) error {
	incidences, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	du := r.dist[u]
	var (
		w, nd float64
		dv    float64
		ok    bool
	)
	for _, inc := range incidences {
		if r.visited[inc.To] {
			continue
		}
		// Edges added after the pre-scan are unknown to this run.
		if int(inc.Edge.ID) >= len(r.weights) {
			continue
		}
		w = r.weights[inc.Edge.ID]
		if math.IsInf(w, 1) {
			continue
		}

		nd = du + w
		if nd > r.options.MaxDistance {
			continue
		}
		// Strict improvement only: the first-seen edge keeps ties.
		if dv, ok = r.dist[inc.To]; ok && nd >= dv {
			continue
		}

		r.dist[inc.To] = nd
		r.prev[inc.To] = step{edge: inc.Edge.ID, from: u}
		heap.Push(&r.pq, &nodeItem{id: inc.To, dist: nd})
	}

	return nil
}

// path rebuilds the settled route to the target.
func (r *runner) path(source core.NodeID) (Path, error) {
	if !r.visited[r.target] {
		return Path{}, fmt.Errorf("%w: %d→%d", ErrNoPath, source, r.target)
	}

	nodes := []core.NodeID{r.target}
	edges := make([]core.EdgeID, 0, len(r.prev))
	cur := r.target
	for cur != source {
		s := r.prev[cur]
		edges = append(edges, s.edge)
		nodes = append(nodes, s.from)
		cur = s.from
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return Path{Nodes: nodes, Edges: edges, Weight: r.dist[r.target]}, nil
}

// nodeItem is a heap entry: a node and a tentative distance.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then node id, so the
// settle order never depends on insertion history.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
