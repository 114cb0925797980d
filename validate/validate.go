// Package validate checks a parsed solution against a parsed WMIBO instance.
// Every check runs to completion and records its findings; nothing
// short-circuits, so the report lists all problems of a solution at once.
package validate

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"wmibo/instance"
	"wmibo/solution"
)

type run struct {
	pb      *instance.Problem
	sol     *solution.Assignment
	rep     *Report
	flagged mapset.Set[string] // constraint ids with an indicator diagnostic
}

// Validate runs all checks in a fixed order: variable domains, hard clauses,
// soft-clause penalties, linear constraints, objective reconciliation. The
// report is OK iff no fatal diagnostic was recorded.
func Validate(pb *instance.Problem, sol *solution.Assignment) *Report {
	v := &run{
		pb:      pb,
		sol:     sol,
		rep:     &Report{},
		flagged: mapset.NewSet[string](),
	}
	v.checkDomains()
	v.checkHardClauses()
	v.accumulatePenalty()
	v.checkLinear()
	v.reconcileObjective()

	v.rep.OK = true
	for _, d := range v.rep.Diags {
		if d.Severity == Fatal {
			v.rep.OK = false
			break
		}
	}
	return v.rep
}

// Clause identity in diagnostics is positional: 1-based index within its
// collection, in declaration order.
func (v *run) checkHardClauses() {
	for j, cl := range v.pb.CNFHard {
		switch EvalClause(v.sol, cl) {
		case Unknown:
			v.rep.fatalf("hard CNF clause #%d: missing bool var", j+1)
		case False:
			v.rep.fatalf("hard CNF clause #%d violated", j+1)
		}
	}
	for j, cl := range v.pb.WCNFHard {
		switch EvalClause(v.sol, cl) {
		case Unknown:
			v.rep.fatalf("hard WCNF clause #%d: missing bool var", j+1)
		case False:
			v.rep.fatalf("hard WCNF clause #%d violated", j+1)
		}
	}
}

func (v *run) accumulatePenalty() {
	st := &v.rep.Stats
	for j, cl := range v.pb.CNFSoft {
		switch EvalClause(v.sol, cl) {
		case Unknown:
			v.rep.fatalf("soft CNF clause #%d: missing bool var", j+1)
		case False:
			st.Penalty += 1
			st.SoftViolations++
			st.ViolatedCNFSoft = append(st.ViolatedCNFSoft, j+1)
		}
	}
	for j, cl := range v.pb.WCNFSoft {
		switch EvalClause(v.sol, cl) {
		case Unknown:
			v.rep.fatalf("soft WCNF clause #%d: missing bool var", j+1)
		case False:
			st.Penalty += float64(cl.Weight)
			st.SoftViolations++
			st.ViolatedWCNFSoft = append(st.ViolatedWCNFSoft, j+1)
		}
	}
}

func (v *run) checkLinear() {
	feasTol := v.pb.Opts.FeasTol
	for _, id := range v.pb.LinOrder {
		lc := v.pb.Lin[id]
		if !v.constraintActive(id) {
			continue
		}
		lhs, ok := EvalLinear(v.sol, lc.Terms)
		if !ok {
			v.rep.fatalf("linear constraint %s: missing variable value", id)
			continue
		}
		switch lc.Sense {
		case "<=":
			if lhs > lc.RHS+feasTol {
				v.rep.fatalf("linear %s violated: lhs=%.12g <= rhs=%.12g (tol=%v)", id, lhs, lc.RHS, feasTol)
			}
		case ">=":
			if lhs < lc.RHS-feasTol {
				v.rep.fatalf("linear %s violated: lhs=%.12g >= rhs=%.12g (tol=%v)", id, lhs, lc.RHS, feasTol)
			}
		default: // "="
			if math.Abs(lhs-lc.RHS) > feasTol {
				v.rep.fatalf("linear %s violated: lhs=%.12g = rhs=%.12g (tol=%v)", id, lhs, lc.RHS, feasTol)
			}
		}
	}
}
