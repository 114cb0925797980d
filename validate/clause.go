package validate

import (
	"wmibo/instance"
	"wmibo/solution"
)

// Truth is the three-valued result of evaluating a literal or clause under a
// partial assignment.
type Truth int

const (
	False Truth = iota
	True
	Unknown
)

// litValue resolves a literal against the assignment. The underlying value
// is rounded at 0.5 before negation is applied; an unassigned variable
// yields Unknown.
func litValue(sol *solution.Assignment, lit instance.Lit) Truth {
	v, ok := sol.Value(instance.Bool.Token(lit.Bvar))
	if !ok {
		return Unknown
	}
	b := v >= 0.5
	if lit.Neg {
		b = !b
	}
	if b {
		return True
	}
	return False
}

// EvalClause returns True as soon as any literal is true, Unknown when no
// literal is true but at least one is unassigned, and False otherwise. The
// result does not depend on literal order, only the evaluation cost does.
func EvalClause(sol *solution.Assignment, cl instance.Clause) Truth {
	res := False
	for _, lit := range cl.Lits {
		switch litValue(sol, lit) {
		case True:
			return True
		case Unknown:
			res = Unknown
		}
	}
	return res
}
