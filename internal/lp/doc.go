// Package lp implements the linear-program oracle treated as a black box
// by the factory package: a two-phase primal simplex solving
//
//	minimize    c^T x
//	subject to  A_eq x = b_eq
//	            A_ub x <= b_ub
//	            x >= 0
//
// No off-the-shelf LP solver (gonum, lp_solve/GLPK/HiGHS bindings, ...) is
// wired into this module, so this package hand-rolls the oracle on the
// standard library, the way the factory package's own two-phase driver
// expects it to behave: deterministic, tie-broken lexicographically via
// Bland's rule, and reporting exactly one of Optimal, Infeasible, or
// Unbounded.
//
// # Method
//
// Phase 1 minimizes the sum of artificial variables introduced for every
// row lacking an obvious identity column (every equality row, and every
// inequality row whose slack could not serve as an initial basic
// variable). If the phase-1 optimum is not ~0, the system is infeasible.
// Otherwise infeasible artificial columns are driven out of the basis and
// phase 2 minimizes the caller's actual objective over the remaining
// feasible region.
//
// # Determinism
//
// Ties in the entering-variable rule and the leaving-variable ratio test
// are broken by the lowest column index (for the leaving row: the row whose
// basic variable has the lowest column index; Bland's rule), so the same
// Problem always yields byte-identical output — required by the numeric
// contract (tolerance 1e-9 everywhere, canonicalized ties).
package lp
