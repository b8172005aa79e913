package belts

import (
	"context"
	"math"
	"sort"

	"github.com/katalvlaran/steadystate/flow"
)

// snap rounds values within tolerance of zero to exactly zero, per the
// numeric contract.
func snap(v float64) float64 {
	if math.Abs(v) <= tolerance {
		return 0
	}

	return v
}

// reconstructFlows implements the feasible half of flow reconstruction: for
// each original edge, its realized flow is lo + f_G(u_out, v_in), read back
// from the residual capacity left on the transformed edge.
func reconstructFlows(p Problem, t *transformed, capMap map[string]map[string]float64) []EdgeFlow {
	out := make([]EdgeFlow, len(p.Edges))
	for i, e := range p.Edges {
		te := t.edges[i]
		residual := capMap[te.outU][te.inV]
		pushed := te.capacity - residual
		out[i] = EdgeFlow{From: e.From, To: e.To, Flow: snap(e.Lower + pushed)}
	}

	return out
}

// certificate builds the min-cut witness for an infeasible
// problem, naming the binding node caps and edge upper bounds.
func certificate(p Problem, t *transformed, expected, maxFlow float64, capMap map[string]map[string]float64) Result {
	reachable := flow.ReachableSet(context.Background(), capMap, superSource, tolerance)

	var cutReachable, tightNodes []string
	for _, n := range p.Nodes {
		if reachable[t.in[n.ID]] {
			cutReachable = append(cutReachable, n.ID)
		}
		if t.split[n.ID] && reachable[t.in[n.ID]] && !reachable[t.out[n.ID]] {
			tightNodes = append(tightNodes, n.ID)
		}
	}
	sort.Strings(cutReachable)
	sort.Strings(tightNodes)

	var tightEdges []TightEdge
	for i, e := range p.Edges {
		te := t.edges[i]
		if reachable[te.outU] && !reachable[te.inV] {
			tightEdges = append(tightEdges, TightEdge{From: e.From, To: e.To})
		}
	}
	sort.Slice(tightEdges, func(i, j int) bool {
		if tightEdges[i].From != tightEdges[j].From {
			return tightEdges[i].From < tightEdges[j].From
		}

		return tightEdges[i].To < tightEdges[j].To
	})

	if cutReachable == nil {
		cutReachable = []string{}
	}
	if tightNodes == nil {
		tightNodes = []string{}
	}
	if tightEdges == nil {
		tightEdges = []TightEdge{}
	}

	return Result{
		Feasible:     false,
		Deficit:      expected - maxFlow,
		CutReachable: cutReachable,
		TightNodes:   tightNodes,
		TightEdges:   tightEdges,
	}
}
