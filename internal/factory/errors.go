package factory

import "errors"

var (
	// ErrUnknownMachine is returned when a recipe names a machine type that
	// was not declared in the problem.
	ErrUnknownMachine = errors.New("factory: recipe references unknown machine type")
	// ErrNoRecipes is returned for a problem with no recipes at all.
	ErrNoRecipes = errors.New("factory: problem has no recipes")
	// ErrNoTarget is returned when the target item is empty.
	ErrNoTarget = errors.New("factory: target item is empty")
	// ErrNegativeRate is returned when the requested target rate is negative.
	ErrNegativeRate = errors.New("factory: target rate must be non-negative")
	// ErrNegativeRawCap is returned when a raw supply cap is negative.
	ErrNegativeRawCap = errors.New("factory: raw cap must be non-negative")
	// ErrDegenerateRecipe is returned when a recipe has non-positive time or
	// zero effective crafting speed.
	ErrDegenerateRecipe = errors.New("factory: recipe has non-positive craft time")
	// ErrOracleAnomaly is returned when the LP oracle reports an outcome the
	// two-phase driver cannot interpret (phase 2 unbounded).
	ErrOracleAnomaly = errors.New("factory: LP oracle reported an unbounded maximization")
)
