package validate

import "math"

// Tolerance for matching a reported objective against a candidate total.
const objTol = 1e-6

// reconcileObjective computes the three candidate totals and, when the
// solution reported an objective, checks it against the closest candidate.
//
// The instance format does not pin down which convention a reporter used:
// an optimizer for a maximize problem usually minimizes the negated
// objective internally (total_internal), while some tools print the original
// maximize-sense value with penalties subtracted (total_max_original).
// All three candidates are exposed in the stats either way.
func (v *run) reconcileObjective() {
	st := &v.rep.Stats

	linObj := 0.0
	if len(v.pb.ObjTerms) > 0 {
		val, ok := EvalLinear(v.sol, v.pb.ObjTerms)
		if !ok {
			v.rep.fatalf("objective: missing variable value in linear objective")
			val = math.NaN()
		}
		linObj = val
	}
	st.LinObj = linObj
	st.TotalMin = linObj + st.Penalty
	if v.pb.ObjSense == "max" {
		st.TotalInternal = -linObj + st.Penalty
	} else {
		st.TotalInternal = st.TotalMin
	}
	st.TotalMaxOriginal = linObj - st.Penalty

	if v.sol.ReportedObj == nil || math.IsNaN(*v.sol.ReportedObj) {
		return
	}
	reported := *v.sol.ReportedObj
	st.Reported = &reported

	candidates := []struct {
		name  string
		value float64
	}{
		{"total_min", st.TotalMin},
		{"total_internal", st.TotalInternal},
		{"total_max_original", st.TotalMaxOriginal},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if math.Abs(c.value-reported) < math.Abs(best.value-reported) {
			best = c
		}
	}
	st.BestMatch = best.name
	st.BestValue = best.value
	st.BestAbsErr = math.Abs(best.value - reported)
	if st.BestAbsErr > objTol {
		v.rep.fatalf("objective mismatch: reported o=%.12g best_match(%s)=%.12g |err|=%.3g > %v",
			reported, best.name, best.value, st.BestAbsErr, objTol)
	}
}
