package factory

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSolve_HonorsOreCapAndNonnegativity checks the factory invariants
// (raw consumption within cap, all crafts/min nonnegative) across randomly
// sampled ore caps and target rates for a fixed single-recipe problem.
func TestSolve_HonorsOreCapAndNonnegativity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("feasible plans stay within the raw cap and never go negative", prop.ForAll(
		func(oreCap, targetRate float64) bool {
			p := Problem{
				Recipes: []Recipe{
					{ID: "smelt", Inputs: map[string]float64{"ore": 1}, Outputs: map[string]float64{"plate": 1}, TimeS: 1, Machine: "furnace"},
				},
				Machines: []MachineType{{ID: "furnace", MaxCount: 1000, BaseSpeed: 1}},
				RawCaps:  map[string]float64{"ore": oreCap},
				Target:   Target{Item: "plate", RatePerMin: targetRate},
			}

			res, err := Solve(p)
			if err != nil {
				return false
			}

			x := res.CraftsPerMin["smelt"]
			if x < -tolerance {
				return false
			}

			return x <= oreCap+1e-6
		},
		gen.Float64Range(0, 500),
		gen.Float64Range(0, 500),
	))

	properties.TestingRun(t)
}
