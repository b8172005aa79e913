package belts

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSolve_FlowNeverExceedsSupplyOrUpperBound checks the belts
// invariant lower <= flow <= upper, and that no edge carries more than the
// single source's supply, across randomly sampled supplies and edge upper
// bounds on a fixed two-hop chain.
func TestSolve_FlowNeverExceedsSupplyOrUpperBound(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("feasible flows respect every edge's bounds", prop.ForAll(
		func(supply, upper float64) bool {
			p := Problem{
				Nodes:   []Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
				Edges:   []Edge{{From: "A", To: "B", Upper: f(upper)}, {From: "B", To: "C", Upper: f(upper)}},
				Sources: []Source{{ID: "A", Supply: supply}},
				Sink:    "C",
			}

			res, err := Solve(p)
			if err != nil {
				return false
			}
			if !res.Feasible {
				return true
			}

			for _, flow := range res.Flows {
				if flow.Flow < -tolerance || flow.Flow > upper+1e-6 || flow.Flow > supply+1e-6 {
					return false
				}
			}

			return true
		},
		gen.Float64Range(0, 200),
		gen.Float64Range(0, 200),
	))

	properties.TestingRun(t)
}
