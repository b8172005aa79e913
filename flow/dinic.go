package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/steadystate/core"
)

// Dinic computes the maximum flow from source to sink in the directed,
// capacitated graph g using Dinic's algorithm (level graph + blocking
// flows).
//
// It returns:
//   - maxFlow: the total flow value.
//   - capMap:  the final residual capacity map, capMap[u][v] = capacity
//     remaining on u->v after the flow. Belts' certificate extractor scans
//     this directly to compute the min-cut reachable set and to read back
//     realized per-edge flow (original capacity minus residual).
//   - err:     ErrSourceNotFound, ErrSinkNotFound, EdgeError, or a context
//     cancellation error.
//
// Steps:
//  1. Normalize options (O(1)).
//  2. Validate that source and sink exist in g (O(1)).
//  3. Build initial capacity map via buildCapMap (O(V+E)).
//  4. Repeat until no more augmenting paths:
//     a. BFS to build the level graph.
//     b. If sink unreachable, stop.
//     c. DFS-based blocking flow pushes until none remains, optionally
//     rebuilding the level graph every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V^2 * E) in general; O(E*sqrt(V)) on unit-capacity networks.
//	Memory: O(V + E) for capMap and auxiliary maps.
func Dinic(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow float64, capMap map[string]map[string]float64, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	capMap, err = buildCapMap(g, opts)
	if err != nil {
		return 0, nil, err
	}

	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		// BFS to compute levels.
		level := make(map[string]int, len(capMap))
		for u := range capMap {
			level[u] = -1
		}
		queue := []string{source}
		level[source] = 0
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for v, capUV := range capMap[u] {
				if capUV > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// Build level-graph adjacency: next[u] = neighbors v at level+1.
		next := make(map[string][]string, len(capMap))
		for u, nbrs := range capMap {
			for v, capUV := range nbrs {
				if capUV > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		// DFS-based blocking flow.
		iter := make(map[string]int, len(next))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := dfsDinicPush(ctx, capMap, next, iter, source, sink, math.MaxFloat64)
			if pushed <= 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, capMap, nil
}

// dfsDinicPush recursively pushes flow along the level graph. It respects
// cancellation via ctx, updates capMap in-place, and returns the amount
// actually sent.
func dfsDinicPush(
	ctx context.Context,
	capMap map[string]map[string]float64,
	next map[string][]string,
	iter map[string]int,
	u, sink string,
	available float64,
) float64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		iter[u] = i + 1
		v := next[u][i]
		capUV := capMap[u][v]
		if capUV <= 0 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		if send == 0 {
			continue
		}
		pushed := dfsDinicPush(ctx, capMap, next, iter, v, sink, send)
		if pushed > 0 {
			capMap[u][v] -= pushed
			capMap[v][u] += pushed

			return pushed
		}
	}

	return 0
}
