package flow

import (
	"context"

	"github.com/katalvlaran/steadystate/core"
)

// buildCapMap constructs a nested map representing the residual capacities
// of graph g, aggregating parallel edges.
//
// The returned capMap has structure: capMap[u][v] = total float64 capacity
// from u -> v after summing all parallel edges in g and discarding
// capacities <= Epsilon.
//
// Complexity:
//
//	Time:   O(V + E) since core.Graph already stores parallel edges together.
//	Memory: O(V + E) for storing all capacities in capMap.
func buildCapMap(g *core.Graph, opts FlowOptions) (map[string]map[string]float64, error) {
	if err := opts.Ctx.Err(); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	capMap := make(map[string]map[string]float64, len(vertices))
	for _, u := range vertices {
		capMap[u] = make(map[string]float64)
	}

	for _, u := range vertices {
		if err := opts.Ctx.Err(); err != nil {
			return nil, err
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}

		seen := make(map[string]bool, len(neighbors))
		for _, e := range neighbors {
			if e.Capacity < -opts.Epsilon {
				return nil, EdgeError{From: u, To: e.To, Cap: e.Capacity}
			}
			if seen[e.To] {
				continue
			}
			seen[e.To] = true
			capMap[u][e.To] = g.TotalCapacity(u, e.To)
		}

		for v, total := range capMap[u] {
			if total <= opts.Epsilon {
				delete(capMap[u], v)
			}
		}
	}

	return capMap, nil
}

// ReachableSet performs a BFS over capMap from source, following only edges
// with capacity strictly above eps, and returns the set of reachable
// vertices. This is the min-cut side R = {v : v reachable from S* in the
// final residual graph}, the witness belts' certificate extractor reports.
func ReachableSet(ctx context.Context, capMap map[string]map[string]float64, source string, eps float64) map[string]bool {
	visited := map[string]bool{source: true}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		if ctx.Err() != nil {
			return visited
		}
		u := queue[i]
		for v, cap := range capMap[u] {
			if cap > eps && !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return visited
}
