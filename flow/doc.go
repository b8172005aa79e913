// Package flow implements the maximum-flow oracle used by the belts
// package: Dinic's algorithm (level graph + blocking flow) on graphs
// represented by *core.Graph.
//
// # Algorithm
//
//   - Method: level graph construction + blocking-flow via DFS.
//   - Time:   O(V^2 * E) in general; O(E*sqrt(V)) on unit-capacity networks.
//   - Memory: O(V + E) for the level map, adjacency slices, and recursion state.
//
// Dinic was chosen as the sole oracle implementation (over Ford-Fulkerson
// or Edmonds-Karp) because belts needs exactly one deterministic max-flow
// routine behind a stable contract, and its level-graph/blocking-flow
// structure gives the best practical performance on the dense
// super-source/super-sink graphs the lower-bound reduction produces.
//
// # API
//
//	func Dinic(
//	    g *core.Graph,
//	    source, sink string,
//	    opts FlowOptions,
//	) (maxFlow float64, capMap map[string]map[string]float64, err error)
//
// capMap is the final residual capacity map: capMap[u][v] is the capacity
// remaining on u->v after the flow. belts' certificate extractor reads it
// directly to recover per-edge flow and, on infeasibility, the min-cut
// reachable set.
//
// # Errors
//
//	ErrSourceNotFound - if the source vertex is missing in the input graph.
//	ErrSinkNotFound   - if the sink vertex is missing.
//	EdgeError         - if a negative capacity (beyond Epsilon) is encountered.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
package flow
