package factory

import (
	"sort"

	"github.com/katalvlaran/steadystate/internal/lp"
)

// itemSets partitions every item referenced by the recipe catalogue into
// raw items (present in RawCaps) and non-raw items (balance rows, including
// the target), both returned in lexicographic order.
func itemSets(p Problem, recipes []normalizedRecipe) (raw, nonRaw []string) {
	seen := make(map[string]bool)
	for _, r := range recipes {
		for item := range r.Inputs {
			seen[item] = true
		}
		for item := range r.EffOutputs {
			seen[item] = true
		}
	}
	seen[p.Target.Item] = true

	for item := range seen {
		if _, ok := p.RawCaps[item]; ok {
			raw = append(raw, item)
		} else {
			nonRaw = append(nonRaw, item)
		}
	}
	sort.Strings(raw)
	sort.Strings(nonRaw)

	return raw, nonRaw
}

// recipeIndex returns recipes sorted by ID alongside a name-to-column map,
// the deterministic variable order every LP row is built against.
func recipeIndex(recipes []normalizedRecipe) ([]normalizedRecipe, map[string]int) {
	sorted := make([]normalizedRecipe, len(recipes))
	copy(sorted, recipes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	idx := make(map[string]int, len(sorted))
	for i, r := range sorted {
		idx[r.ID] = i
	}

	return sorted, idx
}

// machineIndex returns machine types sorted by ID.
func machineIndex(machines []MachineType) []MachineType {
	sorted := make([]MachineType, len(machines))
	copy(sorted, machines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return sorted
}

// lpModel bundles the assembled LP with the metadata bottlenecks() and the
// two-phase driver need to interpret its rows without re-deriving them.
type lpModel struct {
	recipes    []normalizedRecipe
	varIndex   map[string]int
	rawItems   []string
	targetRow  int // row index of the target item's equality row
	numVars    int
	extraYCol  int // -1 unless phase 2 appended the y column
	problem    lp.Problem
	rawCaps    map[string]float64
	machineCap map[string]float64
}

// buildPhase1 assembles the LP: item-balance equalities, raw and
// machine-capacity inequalities, and the machine-minimization objective.
func buildPhase1(p Problem, recipes []normalizedRecipe) lpModel {
	sortedRecipes, varIndex := recipeIndex(recipes)
	rawItems, nonRawItems := itemSets(p, recipes)
	machines := machineIndex(p.Machines)
	numVars := len(sortedRecipes)

	model := lpModel{
		recipes:    sortedRecipes,
		varIndex:   varIndex,
		rawItems:   rawItems,
		targetRow:  -1,
		numVars:    numVars,
		extraYCol:  -1,
		rawCaps:    p.RawCaps,
		machineCap: make(map[string]float64, len(machines)),
	}

	var aEq [][]float64
	var bEq []float64
	for _, item := range nonRawItems {
		row := make([]float64, numVars)
		for _, r := range sortedRecipes {
			row[varIndex[r.ID]] = r.netFlow(item)
		}
		if item == p.Target.Item {
			model.targetRow = len(aEq)
		}
		aEq = append(aEq, row)
		if item == p.Target.Item {
			bEq = append(bEq, p.Target.RatePerMin)
		} else {
			bEq = append(bEq, 0)
		}
	}

	var aUb [][]float64
	var bUb []float64
	for _, item := range rawItems {
		row := make([]float64, numVars)
		for _, r := range sortedRecipes {
			row[varIndex[r.ID]] = r.netFlow(item)
		}
		aUb = append(aUb, row) // net_flow(i) <= 0
		bUb = append(bUb, 0)

		negRow := make([]float64, numVars)
		for j, v := range row {
			negRow[j] = -v
		}
		aUb = append(aUb, negRow) // -net_flow(i) <= raw_cap(i)
		bUb = append(bUb, p.RawCaps[item])
	}
	for _, m := range machines {
		row := make([]float64, numVars)
		for _, r := range sortedRecipes {
			if r.Machine == m.ID {
				row[varIndex[r.ID]] = r.MachineCost
			}
		}
		aUb = append(aUb, row)
		bUb = append(bUb, m.MaxCount)
		model.machineCap[m.ID] = m.MaxCount
	}

	c := make([]float64, numVars)
	for _, r := range sortedRecipes {
		c[varIndex[r.ID]] = r.MachineCost
	}

	model.problem = lp.Problem{NumVars: numVars, AEq: aEq, BEq: bEq, AUb: aUb, BUb: bUb, C: c}

	return model
}

// toPhase2 rewrites the target row to net_flow(target) - y = 0 and replaces
// the objective with minimize -y, leaving raw and machine caps
// intact but widened by the new column.
func (m lpModel) toPhase2() lpModel {
	numVars := m.numVars + 1
	yCol := m.numVars

	widen := func(rows [][]float64) [][]float64 {
		out := make([][]float64, len(rows))
		for i, row := range rows {
			nr := make([]float64, numVars)
			copy(nr, row)
			out[i] = nr
		}

		return out
	}

	aEq := widen(m.problem.AEq)
	aEq[m.targetRow][yCol] = -1
	aUb := widen(m.problem.AUb)

	bEq := make([]float64, len(m.problem.BEq))
	copy(bEq, m.problem.BEq)
	bEq[m.targetRow] = 0

	c := make([]float64, numVars)
	c[yCol] = -1

	next := m
	next.numVars = numVars
	next.extraYCol = yCol
	next.problem = lp.Problem{NumVars: numVars, AEq: aEq, BEq: bEq, AUb: aUb, BUb: m.problem.BUb, C: c}

	return next
}
