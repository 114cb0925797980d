package validate

import (
	"wmibo/instance"
	"wmibo/solution"
)

// EvalLinear sums coefficient*value over the terms. ok is false when any
// referenced variable is unassigned, in which case the expression has no
// defined value and callers skip their numeric check.
func EvalLinear(sol *solution.Assignment, terms []instance.Term) (sum float64, ok bool) {
	for _, t := range terms {
		v, assigned := sol.Value(t.Kind.Token(t.Idx))
		if !assigned {
			return 0, false
		}
		sum += t.Coef * v
	}
	return sum, true
}
