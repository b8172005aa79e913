package belts

const superSource = "S*"
const superSink = "T*"

// wire attaches S* and T*, wiring source supplies and demand
// deltas so that a feasible original-network flow corresponds bijectively
// to an S*->T* flow of value exactly expected.
func wire(p Problem, t *transformed) (expected float64) {
	t.g.AddVertex(superSource)
	t.g.AddVertex(superSink)

	var totalSupply, totalLower float64
	for _, s := range p.Sources {
		totalSupply += s.Supply
		_, _ = t.g.AddEdge(superSource, t.in[s.ID], s.Supply)
	}
	for _, e := range p.Edges {
		totalLower += e.Lower
	}

	for id, d := range t.demand {
		switch {
		case d > tolerance:
			_, _ = t.g.AddEdge(superSource, t.in[id], d)
		case d < -tolerance:
			_, _ = t.g.AddEdge(t.out[id], superSink, -d)
		}
	}

	sinkCap := unboundedCapacity
	if totalSupply > 0 {
		sinkCap = totalSupply
	}
	_, _ = t.g.AddEdge(t.in[p.Sink], superSink, sinkCap)

	return totalSupply + totalLower
}
