package validate

import "wmibo/instance"

// constraintActive resolves whether a linear constraint is enforced under
// the current assignment. Unbound constraints are always active. A Conflict
// binding or a missing indicator variable deactivates the constraint and is
// itself a fatal finding; the flagged set keeps re-resolution of the same id
// from duplicating that diagnostic.
func (v *run) constraintActive(id string) bool {
	ind, bound := v.pb.Ind[id]
	if !bound {
		return true
	}
	if ind.Kind == instance.Conflict {
		if v.flagged.Add(id) {
			v.rep.fatalf("conflicting indicators for constraint '%s'", id)
		}
		return false
	}
	switch litValue(v.sol, ind.Lit) {
	case Unknown:
		if v.flagged.Add(id) {
			v.rep.fatalf("missing indicator variable b%d for constraint '%s'", ind.Lit.Bvar, id)
		}
		return false
	case True:
		return true
	default:
		return false
	}
}
