package factory

import "github.com/katalvlaran/steadystate/internal/lp"

// Solve runs the two-phase driver: solve the target-rate
// LP; on infeasibility, reformulate to maximize the achievable target rate
// and solve again.
func Solve(p Problem) (Result, error) {
	if err := validate(p); err != nil {
		return Result{}, err
	}

	recipes, err := normalize(p)
	if err != nil {
		return Result{}, err
	}

	model := buildPhase1(p, recipes)
	res, err := lp.Solve(model.problem)
	if err != nil {
		return Result{}, err
	}

	switch res.Status {
	case lp.Optimal:
		rawUsed, machineUsed := usage(model, res.X)
		return Result{
			Feasible:       true,
			CraftsPerMin:   craftsMap(model, res.X),
			MachineCounts:  machineUsed,
			RawConsumption: rawUsed,
			TotalMachines:  snap(res.Objective),
			TargetPerMin:   p.Target.RatePerMin,
		}, nil
	case lp.Infeasible:
		return solvePhase2(p, model)
	default:
		return Result{}, ErrOracleAnomaly
	}
}

func solvePhase2(p Problem, model lpModel) (Result, error) {
	phase2 := model.toPhase2()
	res, err := lp.Solve(phase2.problem)
	if err != nil {
		return Result{}, err
	}

	switch res.Status {
	case lp.Optimal:
		y := res.X[phase2.extraYCol]
		return Result{
			Feasible:                false,
			MaxFeasibleTargetPerMin: snap(y),
			CraftsPerMin:            craftsMap(phase2, res.X),
			Bottlenecks:             bottlenecks(phase2, res.X),
		}, nil
	case lp.Infeasible:
		return Result{
			Feasible:                false,
			MaxFeasibleTargetPerMin: 0,
			CraftsPerMin:            map[string]float64{},
			Bottlenecks:             Bottlenecks{Machines: []string{}, Raws: []string{}},
		}, nil
	default:
		return Result{}, ErrOracleAnomaly
	}
}

func craftsMap(m lpModel, x []float64) map[string]float64 {
	out := make(map[string]float64, len(m.recipes))
	for _, r := range m.recipes {
		out[r.ID] = snap(x[m.varIndex[r.ID]])
	}

	return out
}
