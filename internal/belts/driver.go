package belts

// Solve runs the full belts pipeline: transform, wire, max-flow, then
// either flow reconstruction or a min-cut certificate.
func Solve(p Problem) (Result, error) {
	if err := validate(p); err != nil {
		return Result{}, err
	}

	t := transform(p)
	expected := wire(p, t)

	maxFlow, capMap, feasible, err := runMaxFlow(t, expected)
	if err != nil {
		return Result{}, err
	}

	if feasible {
		var totalSupply float64
		for _, s := range p.Sources {
			totalSupply += s.Supply
		}
		return Result{Feasible: true, Flows: reconstructFlows(p, t, capMap), TotalSupply: totalSupply}, nil
	}

	return certificate(p, t, expected, maxFlow, capMap), nil
}
