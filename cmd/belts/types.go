package main

import "github.com/katalvlaran/steadystate/internal/belts"

type nodeWire struct {
	ID  string   `json:"id" validate:"required"`
	Cap *float64 `json:"cap"`
}

type edgeWire struct {
	From  string   `json:"from" validate:"required"`
	To    string   `json:"to" validate:"required"`
	Lower float64  `json:"lower" validate:"gte=0"`
	Upper *float64 `json:"upper"`
}

type sourceWire struct {
	ID     string  `json:"id" validate:"required"`
	Supply float64 `json:"supply" validate:"gte=0"`
}

// inputWire is the top-level belts input document.
type inputWire struct {
	Nodes   []nodeWire   `json:"nodes" validate:"required,min=1,dive"`
	Edges   []edgeWire   `json:"edges" validate:"dive"`
	Sources []sourceWire `json:"sources" validate:"required,min=1,dive"`
	Sink    string       `json:"sink" validate:"required"`
}

func (in inputWire) toProblem() belts.Problem {
	nodes := make([]belts.Node, len(in.Nodes))
	for i, n := range in.Nodes {
		nodes[i] = belts.Node{ID: n.ID, Cap: n.Cap}
	}

	edges := make([]belts.Edge, len(in.Edges))
	for i, e := range in.Edges {
		edges[i] = belts.Edge{From: e.From, To: e.To, Lower: e.Lower, Upper: e.Upper}
	}

	sources := make([]belts.Source, len(in.Sources))
	for i, s := range in.Sources {
		sources[i] = belts.Source{ID: s.ID, Supply: s.Supply}
	}

	return belts.Problem{Nodes: nodes, Edges: edges, Sources: sources, Sink: in.Sink}
}

type flowWire struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Flow float64 `json:"flow"`
}

type feasibleOutput struct {
	Feasible      bool       `json:"feasible"`
	Flows         []flowWire `json:"flows"`
	MaxFlowPerMin float64    `json:"max_flow_per_min"`
}

type tightEdgeWire struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type infeasibleOutput struct {
	Feasible     bool            `json:"feasible"`
	Deficit      float64         `json:"deficit"`
	CutReachable []string        `json:"cut_reachable"`
	TightNodes   []string        `json:"tight_nodes"`
	TightEdges   []tightEdgeWire `json:"tight_edges"`
}

type errorOutput struct {
	Feasible bool   `json:"feasible"`
	Error    string `json:"error"`
}

func toOutput(res belts.Result) any {
	if res.Feasible {
		flows := make([]flowWire, len(res.Flows))
		for i, f := range res.Flows {
			flows[i] = flowWire{From: f.From, To: f.To, Flow: f.Flow}
		}

		return feasibleOutput{Feasible: true, Flows: flows, MaxFlowPerMin: res.TotalSupply}
	}

	tightEdges := make([]tightEdgeWire, len(res.TightEdges))
	for i, e := range res.TightEdges {
		tightEdges[i] = tightEdgeWire{From: e.From, To: e.To}
	}

	return infeasibleOutput{
		Feasible:     false,
		Deficit:      res.Deficit,
		CutReachable: res.CutReachable,
		TightNodes:   res.TightNodes,
		TightEdges:   tightEdges,
	}
}
