package factory

import "sort"

// tolerance is the canonical numeric tolerance for constraint slack.
const tolerance = 1e-9

// snap rounds values within tolerance of zero to exactly zero, per the
// numeric contract.
func snap(v float64) float64 {
	if abs(v) <= tolerance {
		return 0
	}

	return v
}

// usage computes, at x, the raw consumption per raw item and the machine
// count used per machine type; shared by bottlenecks and the reporter.
func usage(m lpModel, x []float64) (rawUsed, machineUsed map[string]float64) {
	rawUsed = make(map[string]float64, len(m.rawItems))
	for _, item := range m.rawItems {
		var used float64
		for _, r := range m.recipes {
			used += x[m.varIndex[r.ID]] * (r.Inputs[item] - r.EffOutputs[item])
		}
		rawUsed[item] = snap(used)
	}

	machineUsed = make(map[string]float64, len(m.machineCap))
	for _, r := range m.recipes {
		machineUsed[r.Machine] += x[m.varIndex[r.ID]] * r.MachineCost
	}
	for id, v := range machineUsed {
		machineUsed[id] = snap(v)
	}

	return rawUsed, machineUsed
}

// bottlenecks evaluates every raw and machine inequality at x and reports
// the ones binding within tolerance, sorted by identifier.
func bottlenecks(m lpModel, x []float64) Bottlenecks {
	rawUsed, machineUsed := usage(m, x)

	var raws []string
	for _, item := range m.rawItems {
		if abs(m.rawCaps[item]-rawUsed[item]) <= tolerance {
			raws = append(raws, item)
		}
	}
	var machines []string
	for id, cap := range m.machineCap {
		if abs(cap-machineUsed[id]) <= tolerance {
			machines = append(machines, id)
		}
	}

	sort.Strings(raws)
	sort.Strings(machines)
	if raws == nil {
		raws = []string{}
	}
	if machines == nil {
		machines = []string{}
	}

	return Bottlenecks{Machines: machines, Raws: raws}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
