package belts

// validate checks the belts invariants that the transformer assumes
// already hold: the sink exists and has no outgoing edges, every source has
// at least one outgoing edge, edge bounds are sane, and lower bounds fit
// within any node cap they feed.
func validate(p Problem) error {
	if p.Sink == "" {
		return ErrNoSink
	}

	known := make(map[string]bool, len(p.Nodes))
	caps := make(map[string]*float64, len(p.Nodes))
	for _, n := range p.Nodes {
		known[n.ID] = true
		caps[n.ID] = n.Cap
	}
	if !known[p.Sink] {
		return ErrNoSink
	}

	outgoing := make(map[string]int, len(p.Nodes))
	incomingLower := make(map[string]float64, len(p.Nodes))
	for _, e := range p.Edges {
		if !known[e.From] || !known[e.To] {
			return ErrUnknownNode
		}
		if e.Lower < 0 || (e.Upper != nil && *e.Upper < e.Lower) {
			return ErrNegativeBound
		}
		if e.From == p.Sink {
			return ErrSinkHasOutgoing
		}
		outgoing[e.From]++
		incomingLower[e.To] += e.Lower
	}

	for _, s := range p.Sources {
		if !known[s.ID] {
			return ErrUnknownNode
		}
		if outgoing[s.ID] == 0 {
			return ErrSourceHasNoEdge
		}
	}

	for id, cap := range caps {
		if cap != nil && incomingLower[id] > *cap+tolerance {
			return ErrLowerExceedsCap
		}
	}

	return nil
}
