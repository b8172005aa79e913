package belts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestSolve_SingleEdgeFeasible(t *testing.T) {
	p := Problem{
		Nodes:   []Node{{ID: "A"}, {ID: "B"}},
		Edges:   []Edge{{From: "A", To: "B", Lower: 0, Upper: f(10)}},
		Sources: []Source{{ID: "A", Supply: 7}},
		Sink:    "B",
	}

	res, err := Solve(p)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Len(t, res.Flows, 1)
	assert.InDelta(t, 7.0, res.Flows[0].Flow, tolerance)
}

func TestSolve_LowerBoundSatisfiedBySupply(t *testing.T) {
	p := Problem{
		Nodes: []Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []Edge{
			{From: "A", To: "B", Lower: 5, Upper: f(10)},
			{From: "B", To: "C", Lower: 0, Upper: f(10)},
		},
		Sources: []Source{{ID: "A", Supply: 8}},
		Sink:    "C",
	}

	res, err := Solve(p)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Len(t, res.Flows, 2)
	assert.InDelta(t, 8.0, res.Flows[0].Flow, tolerance)
	assert.InDelta(t, 8.0, res.Flows[1].Flow, tolerance)
}

func TestSolve_NodeCapInfeasible(t *testing.T) {
	p := Problem{
		Nodes: []Node{{ID: "A"}, {ID: "B", Cap: f(3)}, {ID: "C"}},
		Edges: []Edge{
			{From: "A", To: "B", Lower: 0, Upper: f(10)},
			{From: "B", To: "C", Lower: 0, Upper: f(10)},
		},
		Sources: []Source{{ID: "A", Supply: 7}},
		Sink:    "C",
	}

	res, err := Solve(p)
	require.NoError(t, err)
	require.False(t, res.Feasible)
	assert.InDelta(t, 4.0, res.Deficit, tolerance)
	assert.Equal(t, []string{"B"}, res.TightNodes)
}

func TestSolve_RejectsSinkWithOutgoingEdge(t *testing.T) {
	p := Problem{
		Nodes:   []Node{{ID: "A"}, {ID: "B"}},
		Edges:   []Edge{{From: "B", To: "A", Upper: f(1)}},
		Sources: []Source{{ID: "A", Supply: 1}},
		Sink:    "B",
	}
	_, err := Solve(p)
	assert.ErrorIs(t, err, ErrSinkHasOutgoing)
}
