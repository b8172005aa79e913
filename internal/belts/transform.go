package belts

import "github.com/katalvlaran/steadystate/core"

// unboundedCapacity stands in for an infinite edge or sink capacity: large
// enough to never bind in any realistic problem.
const unboundedCapacity = 1e18

// tolerance is the canonical numeric tolerance for feasibility and slack
// comparisons.
const tolerance = 1e-9

// transformedEdge remembers, for one original edge, the transformed-graph
// endpoints it was rewritten to and the capacity it was given, so the
// certificate extractor can read back realized flow or cut membership
// without re-deriving them.
type transformedEdge struct {
	outU, inV string
	capacity  float64
}

// transformed is the graph transformer's output: the split-node graph
// plus the bidirectional bookkeeping the wirer and certificate extractor
// need.
type transformed struct {
	g       *core.Graph
	in      map[string]string // original node id -> in-vertex id
	out     map[string]string // original node id -> out-vertex id
	split   map[string]bool   // original node ids that were split
	demand  map[string]float64
	edges   []transformedEdge // parallel to Problem.Edges
	sources map[string]bool
}

// transform builds the split-node graph: capped interior nodes become
// v_in/v_out pairs joined by a cap edge, and every original edge becomes an
// (u_out, v_in) edge of capacity hi-lo, accumulating demand deltas.
func transform(p Problem) *transformed {
	sources := make(map[string]bool, len(p.Sources))
	for _, s := range p.Sources {
		sources[s.ID] = true
	}

	t := &transformed{
		g:       core.NewGraph(),
		in:      make(map[string]string, len(p.Nodes)),
		out:     make(map[string]string, len(p.Nodes)),
		split:   make(map[string]bool, len(p.Nodes)),
		demand:  make(map[string]float64, len(p.Nodes)),
		sources: sources,
	}

	for _, n := range p.Nodes {
		if n.Cap != nil && !sources[n.ID] && n.ID != p.Sink {
			inID, outID := n.ID+"::in", n.ID+"::out"
			t.g.AddVertex(inID)
			t.g.AddVertex(outID)
			_, _ = t.g.AddEdge(inID, outID, *n.Cap)
			t.in[n.ID] = inID
			t.out[n.ID] = outID
			t.split[n.ID] = true
		} else {
			t.g.AddVertex(n.ID)
			t.in[n.ID] = n.ID
			t.out[n.ID] = n.ID
		}
	}

	t.edges = make([]transformedEdge, len(p.Edges))
	for i, e := range p.Edges {
		upper := unboundedCapacity
		if e.Upper != nil {
			upper = *e.Upper
		}
		capacity := upper - e.Lower
		outU, inV := t.out[e.From], t.in[e.To]
		_, _ = t.g.AddEdge(outU, inV, capacity)
		t.edges[i] = transformedEdge{outU: outU, inV: inV, capacity: capacity}

		t.demand[e.To] += e.Lower
		t.demand[e.From] -= e.Lower
	}

	return t
}
