// Package steadystate provides two independent numeric solvers for
// steady-state optimization questions: production planning and
// material-routing feasibility.
//
// What is steadystate?
//
//	A pair of one-shot CLI tools sharing no state:
//		- factory: given a recipe catalogue with machine/module assignments,
//		  raw material supply caps, machine count caps, and a target item
//		  rate, computes a steady-state production plan (crafts per minute
//		  per recipe) that reaches the target while minimizing total
//		  machines, or reports the maximum achievable rate with a
//		  bottleneck diagnosis.
//		- belts: given a directed flow network with per-edge lower/upper
//		  bounds, per-node throughput caps, multiple capped sources, and a
//		  single sink, computes a feasible flow, or an infeasibility
//		  certificate (min-cut).
//
// Each tool reads one JSON document from stdin and writes one JSON document
// to stdout; there is no persistent state between invocations (see
// SPEC_FULL.md section 5 for the resource-lifecycle notes).
//
// Package layout:
//
//	cmd/factory/  — factory CLI entry point
//	cmd/belts/    — belts CLI entry point
//	internal/lp/     — the linear-program oracle (simplex) shared by factory
//	internal/factory/— recipe normalization, LP construction, two-phase
//	                    driver, bottleneck analysis
//	internal/belts/  — graph transformation, super-node wiring, max-flow
//	                    driver, min-cut certificate extraction
//	core/            — the directed capacitated graph belts builds internally
//	flow/            — the max-flow oracle (Dinic) belts calls
//	matrix/          — the dense matrix lp assembles its constraint system in
package steadystate
