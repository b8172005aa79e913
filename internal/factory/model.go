// Package factory builds and solves the recipe/machine production-planning
// problem: given a recipe catalogue, machine assignments with modules, raw
// material supply caps, and a target item rate, it computes a steady-state
// plan (crafts per minute per recipe) that reaches the target while
// minimizing total machines, or the maximum achievable target rate together
// with a bottleneck diagnosis.
package factory

// Module is an installed machine upgrade: additive speed and productivity
// modifiers relative to 1.0.
type Module struct {
	Speed float64
	Prod  float64
}

// MachineType is a category of crafting machine.
type MachineType struct {
	ID        string
	MaxCount  float64
	BaseSpeed float64
	Modules   []Module
}

// Recipe consumes Inputs and produces Outputs, one craft taking TimeS
// seconds on machines of type Machine.
type Recipe struct {
	ID      string
	Inputs  map[string]float64
	Outputs map[string]float64
	TimeS   float64
	Machine string
}

// Target names the item and rate the plan must reach.
type Target struct {
	Item       string
	RatePerMin float64
}

// Problem is the fully-parsed factory input.
type Problem struct {
	Recipes  []Recipe
	Machines []MachineType
	RawCaps  map[string]float64
	Target   Target
}

// Bottlenecks names the binding caps found by the analyzer, sorted
// lexicographically.
type Bottlenecks struct {
	Machines []string
	Raws     []string
}

// Result is the outcome of Solve.
type Result struct {
	Feasible                bool
	CraftsPerMin            map[string]float64
	MachineCounts           map[string]float64 // per machine type, machines allocated
	RawConsumption          map[string]float64 // per raw item, units/min consumed
	TotalMachines           float64
	TargetPerMin            float64
	MaxFeasibleTargetPerMin float64
	Bottlenecks             Bottlenecks
}
