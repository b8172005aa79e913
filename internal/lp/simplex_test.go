package lp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_TrivialFeasible(t *testing.T) {
	// minimize x0 + x1, subject to x0 + x1 = 4, x0 <= 3
	p := Problem{
		NumVars: 2,
		AEq:     [][]float64{{1, 1}},
		BEq:     []float64{4},
		AUb:     [][]float64{{1, 0}},
		BUb:     []float64{3},
		C:       []float64{1, 1},
	}
	res, err := Solve(p)
	require.NoError(t, err)
	require.Equal(t, Optimal, res.Status)
	assert.InDelta(t, 4.0, res.Objective, tolerance)
	assert.InDelta(t, 4.0, res.X[0]+res.X[1], tolerance)
}

func TestSolve_MinimizesMachineCount(t *testing.T) {
	// minimize 2*x0 + 3*x1 s.t. x0 + x1 = 10, x0,x1 >= 0
	// optimum puts everything on the cheaper variable x0.
	p := Problem{
		NumVars: 2,
		AEq:     [][]float64{{1, 1}},
		BEq:     []float64{10},
		C:       []float64{2, 3},
	}
	res, err := Solve(p)
	require.NoError(t, err)
	require.Equal(t, Optimal, res.Status)
	assert.InDelta(t, 20.0, res.Objective, tolerance)
	assert.InDelta(t, 10.0, res.X[0], tolerance)
	assert.InDelta(t, 0.0, res.X[1], tolerance)
}

func TestSolve_Infeasible(t *testing.T) {
	// x0 <= 2 and x0 >= 5 (expressed as -x0 <= -5) cannot both hold.
	p := Problem{
		NumVars: 1,
		AUb:     [][]float64{{1}, {-1}},
		BUb:     []float64{2, -5},
		C:       []float64{1},
	}
	res, err := Solve(p)
	require.NoError(t, err)
	assert.Equal(t, Infeasible, res.Status)
}

func TestSolve_Unbounded(t *testing.T) {
	// minimize -x0 with only x0 >= 0: objective decreases without limit.
	p := Problem{
		NumVars: 1,
		C:       []float64{-1},
	}
	res, err := Solve(p)
	require.NoError(t, err)
	assert.Equal(t, Unbounded, res.Status)
}

func TestSolve_RedundantEqualityRow(t *testing.T) {
	// second row is twice the first; phase 1 must drive out the resulting
	// zero-level artificial without reporting infeasibility.
	p := Problem{
		NumVars: 2,
		AEq: [][]float64{
			{1, 1},
			{2, 2},
		},
		BEq: []float64{6, 12},
		C:   []float64{1, 1},
	}
	res, err := Solve(p)
	require.NoError(t, err)
	require.Equal(t, Optimal, res.Status)
	assert.InDelta(t, 6.0, res.Objective, tolerance)
}
