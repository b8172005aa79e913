package factory

// validate checks the problem-level invariants that normalize alone
// cannot: exactly one target, non-negative caps and rate.
func validate(p Problem) error {
	if len(p.Recipes) == 0 {
		return ErrNoRecipes
	}
	if p.Target.Item == "" {
		return ErrNoTarget
	}
	if p.Target.RatePerMin < 0 {
		return ErrNegativeRate
	}
	for _, cap := range p.RawCaps {
		if cap < 0 {
			return ErrNegativeRawCap
		}
	}

	return nil
}
