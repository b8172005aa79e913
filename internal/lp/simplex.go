package lp

import (
	"math"

	"github.com/katalvlaran/steadystate/matrix"
)

// tolerance is the canonical numeric tolerance used throughout this
// package, matching the system-wide numeric contract.
const tolerance = 1e-9

// Solve runs the two-phase primal simplex method described in doc.go and
// returns exactly one of Optimal, Infeasible, or Unbounded.
func Solve(p Problem) (Result, error) {
	numEq := len(p.AEq)
	numUb := len(p.AUb)
	numRows := numEq + numUb
	numSlack := numUb
	structCols := p.NumVars + numSlack

	// Stage 1: assemble the constraint matrix in a matrix.Dense, one row
	// per equality/inequality, columns = structural vars + slacks. A problem
	// with no constraint rows needs no matrix at all.
	var dense *matrix.Dense
	if numRows > 0 {
		var err error
		dense, err = matrix.NewDense(numRows, structCols)
		if err != nil {
			return Result{}, err
		}
	}
	rhs := make([]float64, numRows)
	needArt := make([]bool, numRows)

	for i := 0; i < numEq; i++ {
		b := p.BEq[i]
		sign := 1.0
		if b < 0 {
			sign = -1.0
		}
		for j := 0; j < p.NumVars; j++ {
			if err := dense.Set(i, j, sign*p.AEq[i][j]); err != nil {
				return Result{}, err
			}
		}
		rhs[i] = sign * b
		needArt[i] = true // equality rows never have a usable slack column
	}
	for k := 0; k < numUb; k++ {
		i := numEq + k
		b := p.BUb[k]
		sign := 1.0
		if b < 0 {
			sign = -1.0
		}
		for j := 0; j < p.NumVars; j++ {
			if err := dense.Set(i, j, sign*p.AUb[k][j]); err != nil {
				return Result{}, err
			}
		}
		slackCoeff := sign // slack column carries the same sign flip
		if err := dense.Set(i, p.NumVars+k, slackCoeff); err != nil {
			return Result{}, err
		}
		rhs[i] = sign * b
		needArt[i] = slackCoeff < 0 // usable identity column only if +1
	}

	numArt := 0
	artCol := make([]int, numRows) // artCol[i] = column index, or -1
	for i := range artCol {
		artCol[i] = -1
	}
	for i := 0; i < numRows; i++ {
		if needArt[i] {
			artCol[i] = structCols + numArt
			numArt++
		}
	}

	totalCols := structCols + numArt
	tab := newTableau(numRows, totalCols)
	basis := make([]int, numRows)
	for i := 0; i < numRows; i++ {
		row, rerr := dense.Row(i)
		if rerr != nil {
			return Result{}, rerr
		}
		copy(tab.rows[i], row)
		tab.rows[i][totalCols] = rhs[i]
		if artCol[i] >= 0 {
			tab.rows[i][artCol[i]] = 1
			basis[i] = artCol[i]
		} else {
			basis[i] = p.NumVars + (i - numEq) // the row's own slack column
		}
	}
	tab.basis = basis

	// Phase 1: drive the sum of artificial variables to zero.
	if numArt > 0 {
		cost1 := make([]float64, totalCols)
		for i := structCols; i < totalCols; i++ {
			cost1[i] = 1
		}
		tab.setObjective(cost1)
		allowed := allColumns(totalCols)
		if status := tab.run(allowed); status == statusUnbounded {
			// Phase 1 is a sum-of-nonnegatives minimization; it cannot be
			// unbounded below zero.
			return Result{}, errPhase1Unbounded
		}
		if -tab.rows[numRows][totalCols] > tolerance {
			return Result{Status: Infeasible}, nil
		}
		// Drive any zero-level artificial out of the basis so phase 2 never
		// has to reason about them.
		for i := 0; i < numRows; i++ {
			if tab.basis[i] < structCols {
				continue
			}
			for j := 0; j < structCols; j++ {
				if math.Abs(tab.rows[i][j]) > tolerance {
					tab.pivot(i, j)
					break
				}
			}
		}
	}

	// Phase 2: minimize the caller's real objective over structural and
	// slack columns; artificial columns stay excluded from entering.
	cost2 := make([]float64, totalCols)
	copy(cost2, p.C)
	tab.setObjective(cost2)
	allowed := make([]bool, totalCols)
	for j := 0; j < structCols; j++ {
		allowed[j] = true
	}
	status := tab.run(allowed)
	if status == statusUnbounded {
		return Result{Status: Unbounded}, nil
	}

	x := make([]float64, p.NumVars)
	for i := 0; i < numRows; i++ {
		if tab.basis[i] < p.NumVars {
			x[tab.basis[i]] = tab.rows[i][totalCols]
		}
	}
	var objective float64
	for j := 0; j < p.NumVars; j++ {
		objective += p.C[j] * x[j]
	}

	return Result{Status: Optimal, X: x, Objective: objective}, nil
}

func allColumns(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}

	return out
}
