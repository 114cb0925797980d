package validate

import (
	"math"

	"wmibo/instance"
)

// Booleans must be 0 or 1 up to this slack, independent of the instance
// tolerances.
const boolTol = 1e-9

// checkDomains verifies presence and domain membership for every declared
// variable count. Integer and real variables used without a matching var
// declaration skip the bounds check with a warning: the format allows them,
// but they often signal instance/solution skew.
func (v *run) checkDomains() {
	feasTol := v.pb.Opts.FeasTol
	intTol := v.pb.Opts.IntTol

	for k := 1; k <= v.pb.NbBool; k++ {
		val, ok := v.sol.Value(instance.Bool.Token(k))
		if !ok {
			v.rep.fatalf("missing assignment: b%d", k)
			continue
		}
		if math.Abs(val) > boolTol && math.Abs(val-1) > boolTol {
			v.rep.fatalf("b%d not boolean (0/1): %v", k, val)
		}
	}

	for k := 1; k <= v.pb.NbInt; k++ {
		val, ok := v.sol.Value(instance.Int.Token(k))
		if !ok {
			v.rep.fatalf("missing assignment: i%d", k)
			continue
		}
		if math.Abs(val-math.Round(val)) > intTol {
			v.rep.fatalf("i%d not integral within int_tol=%v: %v", k, intTol, val)
		}
		if decl, declared := v.pb.Vars[instance.VarKey{Kind: instance.Int, Idx: k}]; declared {
			if val < decl.Lo-intTol || val > decl.Hi+intTol {
				v.rep.fatalf("i%d out of bounds [%v,%v]: %v", k, decl.Lo, decl.Hi, val)
			}
		} else {
			v.rep.warnf("i%d has no 'var i %d ...' declaration; skipping bounds check", k, k)
		}
	}

	for k := 1; k <= v.pb.NbReal; k++ {
		val, ok := v.sol.Value(instance.Real.Token(k))
		if !ok {
			v.rep.fatalf("missing assignment: r%d", k)
			continue
		}
		decl, declared := v.pb.Vars[instance.VarKey{Kind: instance.Real, Idx: k}]
		switch {
		case declared && !decl.Free:
			if val < decl.Lo-feasTol || val > decl.Hi+feasTol {
				v.rep.fatalf("r%d out of bounds [%v,%v] (feas_tol=%v): %v", k, decl.Lo, decl.Hi, feasTol, val)
			}
		case !declared:
			v.rep.warnf("r%d has no 'var r %d ...' declaration; skipping bounds check", k, k)
		}
	}
}
