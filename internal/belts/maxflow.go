package belts

import "github.com/katalvlaran/steadystate/flow"

// runMaxFlow invokes the max-flow oracle on the wired graph and reports
// whether the saturation condition for feasibility holds.
func runMaxFlow(t *transformed, expected float64) (maxFlow float64, capMap map[string]map[string]float64, feasible bool, err error) {
	maxFlow, capMap, err = flow.Dinic(t.g, superSource, superSink, flow.DefaultOptions())
	if err != nil {
		return 0, nil, false, err
	}
	if maxFlow >= unboundedCapacity/2 {
		// A real network's max flow can never approach the sentinel used for
		// an uncapped edge or sink; reaching it means some source-to-sink
		// path carried no finite cap at all.
		return 0, nil, false, ErrMaxFlowUnbounded
	}

	return maxFlow, capMap, maxFlow >= expected-tolerance, nil
}
