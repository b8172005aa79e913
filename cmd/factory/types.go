package main

import "github.com/katalvlaran/steadystate/internal/factory"

// moduleWire is one entry of a machine's "modules" array (input schema).
type moduleWire struct {
	Speed float64 `json:"speed"`
	Prod  float64 `json:"prod"`
}

type machineWire struct {
	ID        string       `json:"id" validate:"required"`
	MaxCount  float64      `json:"max_count" validate:"gte=0"`
	BaseSpeed float64      `json:"base_speed" validate:"gt=0"`
	Modules   []moduleWire `json:"modules"`
}

type recipeWire struct {
	ID      string             `json:"id" validate:"required"`
	Inputs  map[string]float64 `json:"inputs"`
	Outputs map[string]float64 `json:"outputs" validate:"required,min=1"`
	TimeS   float64            `json:"time_s" validate:"gt=0"`
	Machine string             `json:"machine" validate:"required"`
}

type targetWire struct {
	Item       string  `json:"item" validate:"required"`
	RatePerMin float64 `json:"rate_per_min" validate:"gte=0"`
}

// inputWire is the top-level factory input document.
type inputWire struct {
	Recipes  []recipeWire       `json:"recipes" validate:"required,min=1,dive"`
	Machines []machineWire      `json:"machines" validate:"required,min=1,dive"`
	RawCaps  map[string]float64 `json:"raw_caps"`
	Target   targetWire         `json:"target" validate:"required"`
}

func (in inputWire) toProblem() factory.Problem {
	recipes := make([]factory.Recipe, len(in.Recipes))
	for i, r := range in.Recipes {
		recipes[i] = factory.Recipe{
			ID:      r.ID,
			Inputs:  r.Inputs,
			Outputs: r.Outputs,
			TimeS:   r.TimeS,
			Machine: r.Machine,
		}
	}

	machines := make([]factory.MachineType, len(in.Machines))
	for i, m := range in.Machines {
		mods := make([]factory.Module, len(m.Modules))
		for j, mod := range m.Modules {
			mods[j] = factory.Module{Speed: mod.Speed, Prod: mod.Prod}
		}
		machines[i] = factory.MachineType{
			ID:        m.ID,
			MaxCount:  m.MaxCount,
			BaseSpeed: m.BaseSpeed,
			Modules:   mods,
		}
	}

	return factory.Problem{
		Recipes:  recipes,
		Machines: machines,
		RawCaps:  in.RawCaps,
		Target:   factory.Target{Item: in.Target.Item, RatePerMin: in.Target.RatePerMin},
	}
}

// feasibleOutput and infeasibleOutput mirror the output schemas exactly;
// two distinct types keep the JSON field sets from bleeding into each
// other (an infeasible result never carries total_machines/target_per_min).
type feasibleOutput struct {
	Feasible       bool               `json:"feasible"`
	CraftsPerMin   map[string]float64 `json:"crafts_per_min"`
	MachineCounts  map[string]float64 `json:"machine_counts"`
	RawConsumption map[string]float64 `json:"raw_consumption"`
	TotalMachines  float64            `json:"total_machines"`
	TargetPerMin   float64            `json:"target_per_min"`
}

type bottlenecksWire struct {
	Machines []string `json:"machines"`
	Raws     []string `json:"raws"`
}

type infeasibleOutput struct {
	Feasible                bool               `json:"feasible"`
	MaxFeasibleTargetPerMin float64            `json:"max_feasible_target_per_min"`
	CraftsPerMin            map[string]float64 `json:"crafts_per_min"`
	Bottlenecks             bottlenecksWire    `json:"bottlenecks"`
}

type errorOutput struct {
	Feasible bool   `json:"feasible"`
	Error    string `json:"error"`
}

func toOutput(res factory.Result) any {
	if res.Feasible {
		return feasibleOutput{
			Feasible:       true,
			CraftsPerMin:   res.CraftsPerMin,
			MachineCounts:  res.MachineCounts,
			RawConsumption: res.RawConsumption,
			TotalMachines:  res.TotalMachines,
			TargetPerMin:   res.TargetPerMin,
		}
	}

	return infeasibleOutput{
		Feasible:                false,
		MaxFeasibleTargetPerMin: res.MaxFeasibleTargetPerMin,
		CraftsPerMin:            res.CraftsPerMin,
		Bottlenecks:             bottlenecksWire{Machines: res.Bottlenecks.Machines, Raws: res.Bottlenecks.Raws},
	}
}
