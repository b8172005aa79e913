package factory

// normalizedRecipe carries a Recipe alongside the per-machine modifiers
// resolved for it: effective crafting speed, machine cost, and
// productivity-scaled outputs.
type normalizedRecipe struct {
	Recipe
	EffCraftsPerMin float64
	MachineCost     float64
	EffOutputs      map[string]float64
}

// normalize resolves module effects per machine type and derives the
// effective speed, machine cost, and productivity-scaled output for every
// recipe.
//
// Stage 1 (Validate): every recipe's machine type must exist.
// Stage 2 (Aggregate): sum speed/productivity modifiers per machine type.
// Stage 3 (Derive): compute eff_crafts_per_min, machine_cost, eff_output.
func normalize(p Problem) ([]normalizedRecipe, error) {
	if len(p.Recipes) == 0 {
		return nil, ErrNoRecipes
	}

	machines := make(map[string]MachineType, len(p.Machines))
	for _, m := range p.Machines {
		machines[m.ID] = m
	}

	speedMod := make(map[string]float64, len(machines))
	prodMod := make(map[string]float64, len(machines))
	for id, m := range machines {
		var s, pr float64
		for _, mod := range m.Modules {
			s += mod.Speed
			pr += mod.Prod
		}
		speedMod[id] = s
		prodMod[id] = pr
	}

	out := make([]normalizedRecipe, 0, len(p.Recipes))
	for _, r := range p.Recipes {
		m, ok := machines[r.Machine]
		if !ok {
			return nil, ErrUnknownMachine
		}
		if r.TimeS <= 0 {
			return nil, ErrDegenerateRecipe
		}

		effCraftsPerMin := m.BaseSpeed * (1 + speedMod[r.Machine]) * 60 / r.TimeS
		if effCraftsPerMin <= 0 {
			return nil, ErrDegenerateRecipe
		}

		effOutputs := make(map[string]float64, len(r.Outputs))
		for item, qty := range r.Outputs {
			effOutputs[item] = qty * (1 + prodMod[r.Machine])
		}

		out = append(out, normalizedRecipe{
			Recipe:          r,
			EffCraftsPerMin: effCraftsPerMin,
			MachineCost:     1 / effCraftsPerMin,
			EffOutputs:      effOutputs,
		})
	}

	return out, nil
}

// netFlow returns effective_output(r, item) - input(r, item), the
// coefficient a recipe contributes to item's balance row.
func (nr normalizedRecipe) netFlow(item string) float64 {
	return nr.EffOutputs[item] - nr.Inputs[item]
}
