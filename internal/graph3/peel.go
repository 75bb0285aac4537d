package graph3

// peeler holds the mutable adjacency summary used while finding an
// elimination order: for every vertex, its remaining incident-edge count
// and the XOR of those edges' IDs. Once degree drops to one, xorEdge
// alone identifies the sole remaining incident edge in O(1), so a vertex
// never needs a real adjacency list.
type peeler struct {
	graph   *Graph
	degree  []uint32
	xorEdge []uint32
	queue   []uint32 // vertices currently known to have degree 1
	order   []uint32 // edges peeled so far, in peel order
}

// newPeeler builds the initial adjacency summary by walking every edge
// once, then seeds the queue with every vertex already at degree 1.
func newPeeler(g *Graph) *peeler {
	p := &peeler{
		graph:   g,
		degree:  make([]uint32, g.V),
		xorEdge: make([]uint32, g.V),
		order:   make([]uint32, 0, g.E),
	}

	for j, e := range g.Edges {
		for _, v := range e.vertices() {
			p.degree[v]++
			p.xorEdge[v] ^= uint32(j)
		}
	}

	for v := uint32(0); v < g.V; v++ {
		if p.degree[v] == 1 {
			p.queue = append(p.queue, v)
		}
	}

	return p
}

// run drains the queue, peeling one edge per degree-1 vertex popped and
// pushing any newly-exposed degree-1 vertices. It returns once the queue
// empties, whether or not all edges were peeled — callers check len(order).
func (p *peeler) run() {
	for len(p.queue) > 0 {
		v := p.queue[len(p.queue)-1]
		p.queue = p.queue[:len(p.queue)-1]

		// A vertex can be enqueued once per degree-1 observation but its
		// degree may have since dropped to 0 via a different removal;
		// skip stale entries.
		if p.degree[v] != 1 {
			continue
		}

		j := p.xorEdge[v]
		p.order = append(p.order, j)

		for _, u := range p.graph.Edges[j].vertices() {
			p.degree[u]--
			p.xorEdge[u] ^= j
			if p.degree[u] == 1 {
				p.queue = append(p.queue, u)
			}
		}
	}
}

// Peel computes an elimination order proving g acyclic: repeatedly
// removing a degree-1 vertex together with its unique incident edge until
// the graph is empty. On success it records the order (edge IDs in the
// order peeled) on g and returns it; the labeler walks this order in
// reverse. On failure (residual edges remain) it returns
// ErrNotPeelable and g.Order is left nil.
//
// Complexity: O(V + E) time, O(V) extra space.
func (g *Graph) Peel() ([]uint32, error) {
	p := newPeeler(g)
	p.run()

	if uint32(len(p.order)) != g.E {
		return nil, ErrNotPeelable
	}

	g.Order = p.order

	return g.Order, nil
}
