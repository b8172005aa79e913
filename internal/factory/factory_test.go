package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_SingleRecipeFeasible(t *testing.T) {
	p := Problem{
		Recipes: []Recipe{
			{ID: "smelt_iron", Outputs: map[string]float64{"iron": 2}, TimeS: 2, Machine: "furnace"},
		},
		Machines: []MachineType{
			{ID: "furnace", MaxCount: 10, BaseSpeed: 2},
		},
		RawCaps: map[string]float64{},
		Target:  Target{Item: "iron", RatePerMin: 120},
	}

	res, err := Solve(p)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	assert.InDelta(t, 60.0, res.CraftsPerMin["smelt_iron"], tolerance)
	assert.InDelta(t, 1.0, res.TotalMachines, tolerance)
	assert.InDelta(t, 120.0, res.TargetPerMin, tolerance)
}

func TestSolve_ModuleProductivityRaisesOutput(t *testing.T) {
	p := Problem{
		Recipes: []Recipe{
			{ID: "smelt_plate", Inputs: map[string]float64{"ore": 1}, Outputs: map[string]float64{"plate": 1}, TimeS: 1, Machine: "furnace"},
		},
		Machines: []MachineType{
			{ID: "furnace", MaxCount: 10, BaseSpeed: 1, Modules: []Module{{Prod: 0.5}}},
		},
		RawCaps: map[string]float64{"ore": 60},
		Target:  Target{Item: "plate", RatePerMin: 90},
	}

	res, err := Solve(p)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	assert.InDelta(t, 60.0, res.CraftsPerMin["smelt_plate"], tolerance)
}

func TestSolve_Phase2ReportsOreBottleneck(t *testing.T) {
	p := Problem{
		Recipes: []Recipe{
			{ID: "smelt_plate", Inputs: map[string]float64{"ore": 1}, Outputs: map[string]float64{"plate": 1}, TimeS: 1, Machine: "furnace"},
		},
		Machines: []MachineType{
			{ID: "furnace", MaxCount: 10, BaseSpeed: 1, Modules: []Module{{Prod: 0.5}}},
		},
		RawCaps: map[string]float64{"ore": 60},
		Target:  Target{Item: "plate", RatePerMin: 120},
	}

	res, err := Solve(p)
	require.NoError(t, err)
	require.False(t, res.Feasible)
	assert.InDelta(t, 90.0, res.MaxFeasibleTargetPerMin, tolerance)
	assert.Equal(t, []string{"ore"}, res.Bottlenecks.Raws)
}

func TestSolve_RejectsUnknownMachine(t *testing.T) {
	p := Problem{
		Recipes: []Recipe{{ID: "r", Outputs: map[string]float64{"iron": 1}, TimeS: 1, Machine: "ghost"}},
		Target:  Target{Item: "iron", RatePerMin: 10},
	}
	_, err := Solve(p)
	assert.ErrorIs(t, err, ErrUnknownMachine)
}
