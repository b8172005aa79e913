package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steadystate/core"
)

func buildGraph(t *testing.T, edges [][3]any) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0].(string), e[1].(string), e[2].(float64))
		require.NoError(t, err)
	}

	return g
}

func TestDinic_SimpleChain(t *testing.T) {
	g := buildGraph(t, [][3]any{
		{"S", "A", 10.0},
		{"A", "T", 7.0},
	})

	maxFlow, _, err := Dinic(g, "S", "T", DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 7.0, maxFlow, 1e-9)
}

func TestDinic_ParallelPathsSum(t *testing.T) {
	g := buildGraph(t, [][3]any{
		{"S", "A", 5.0},
		{"S", "B", 5.0},
		{"A", "T", 5.0},
		{"B", "T", 5.0},
	})

	maxFlow, _, err := Dinic(g, "S", "T", DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 10.0, maxFlow, 1e-9)
}

func TestDinic_BottleneckCap(t *testing.T) {
	g := buildGraph(t, [][3]any{
		{"S", "A", 10.0},
		{"A", "B", 2.0},
		{"B", "T", 10.0},
	})

	maxFlow, capMap, err := Dinic(g, "S", "T", DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, maxFlow, 1e-9)
	assert.InDelta(t, 0.0, capMap["A"]["B"], 1e-9)
}

func TestDinic_MissingSourceOrSink(t *testing.T) {
	g := buildGraph(t, [][3]any{{"A", "B", 1.0}})

	_, _, err := Dinic(g, "missing", "B", DefaultOptions())
	assert.ErrorIs(t, err, ErrSourceNotFound)

	_, _, err = Dinic(g, "A", "missing", DefaultOptions())
	assert.ErrorIs(t, err, ErrSinkNotFound)
}
