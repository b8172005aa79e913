package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_CreatesEndpointsAndAggregatesParallel(t *testing.T) {
	g := NewGraph()

	_, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 6)
	require.NoError(t, err)

	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, 10.0, g.TotalCapacity("A", "B"))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nbrs, 2)
}

func TestAddEdge_RejectsNegativeCapacity(t *testing.T) {
	g := NewGraph()
	_, err := g.AddEdge("A", "B", -1)
	assert.ErrorIs(t, err, ErrNegativeCapacity)
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := NewGraph()
	_, err := g.Neighbors("missing")
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestGetEdge_FindsByIDOrReportsMissing(t *testing.T) {
	g := NewGraph()
	eid, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, "A", e.From)
	assert.Equal(t, "B", e.To)

	_, err = g.GetEdge("missing")
	assert.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestVerticesAndEdges_SortedDeterministically(t *testing.T) {
	g := NewGraph()
	_, _ = g.AddEdge("C", "B", 1)
	_, _ = g.AddEdge("A", "C", 2)

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.True(t, edges[0].ID < edges[1].ID)
}

func TestCloneEmpty_CopiesVerticesOnly(t *testing.T) {
	g := NewGraph()
	_, _ = g.AddEdge("A", "B", 5)

	clone := g.CloneEmpty()
	assert.ElementsMatch(t, g.Vertices(), clone.Vertices())
	assert.Equal(t, 0, clone.Stats().EdgeCount)
}
