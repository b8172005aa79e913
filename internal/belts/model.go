// Package belts builds and solves the bounded-flow network-feasibility
// problem: given a directed graph with per-edge lower/upper bounds,
// per-node throughput caps, several capped sources, and a single sink, it
// computes a feasible flow satisfying every bound, or an infeasibility
// certificate naming the binding node caps and edge upper bounds.
package belts

// Node is an original network vertex with an optional throughput cap.
// Cap == nil means unbounded.
type Node struct {
	ID  string
	Cap *float64
}

// Edge is a directed original-network edge with a bounded flow range.
// Upper == nil means unbounded.
type Edge struct {
	From, To string
	Lower    float64
	Upper    *float64
}

// Source is a supply-limited entry point into the network.
type Source struct {
	ID     string
	Supply float64
}

// Problem is the fully-parsed belts input.
type Problem struct {
	Nodes   []Node
	Edges   []Edge
	Sources []Source
	Sink    string
}

// EdgeFlow is one line of a feasible result: the realized flow on an
// original edge.
type EdgeFlow struct {
	From, To string
	Flow     float64
}

// TightEdge names an original edge whose upper bound is binding in the
// min-cut certificate.
type TightEdge struct {
	From, To string
}

// Result is the outcome of Solve.
type Result struct {
	Feasible     bool
	Flows        []EdgeFlow
	TotalSupply  float64 // sum of source supplies actually available
	Deficit      float64
	CutReachable []string
	TightNodes   []string
	TightEdges   []TightEdge
}
