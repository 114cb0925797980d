package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wmibo/instance"
	"wmibo/solution"
)

func assignment(values map[string]float64) *solution.Assignment {
	return &solution.Assignment{Values: values}
}

func TestEvalClause(t *testing.T) {
	sol := assignment(map[string]float64{"b1": 1, "b2": 0, "b3": 0.7})

	cases := []struct {
		name   string
		lits   []instance.Lit
		expect Truth
	}{
		{"positive true", []instance.Lit{{Bvar: 1}}, True},
		{"positive false", []instance.Lit{{Bvar: 2}}, False},
		{"negated true", []instance.Lit{{Bvar: 2, Neg: true}}, True},
		{"negated false", []instance.Lit{{Bvar: 1, Neg: true}}, False},
		{"rounded at half", []instance.Lit{{Bvar: 3}}, True},
		{"all false", []instance.Lit{{Bvar: 2}, {Bvar: 1, Neg: true}}, False},
		{"second lit saves", []instance.Lit{{Bvar: 2}, {Bvar: 1}}, True},
		{"missing var", []instance.Lit{{Bvar: 9}}, Unknown},
		{"missing and false", []instance.Lit{{Bvar: 2}, {Bvar: 9}}, Unknown},
		{"missing but satisfied", []instance.Lit{{Bvar: 9}, {Bvar: 1}}, True},
		{"empty clause", nil, False},
	}
	for _, tc := range cases {
		got := EvalClause(sol, instance.Clause{Lits: tc.lits})
		assert.Equal(t, tc.expect, got, tc.name)
	}
}

func TestEvalClauseOrderIndependent(t *testing.T) {
	sol := assignment(map[string]float64{"b1": 0, "b2": 1})
	lits := []instance.Lit{{Bvar: 9}, {Bvar: 1}, {Bvar: 2}}
	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		permuted := []instance.Lit{lits[p[0]], lits[p[1]], lits[p[2]]}
		got := EvalClause(sol, instance.Clause{Lits: permuted})
		assert.Equal(t, True, got, "permutation %v", p)
	}
}

func TestEvalLinear(t *testing.T) {
	sol := assignment(map[string]float64{"b1": 1, "i2": 3, "r1": -0.5})

	terms := []instance.Term{
		{Coef: 2, Kind: instance.Bool, Idx: 1},
		{Coef: 1, Kind: instance.Int, Idx: 2},
		{Coef: -4, Kind: instance.Real, Idx: 1},
	}
	sum, ok := EvalLinear(sol, terms)
	assert.True(t, ok)
	assert.Equal(t, 7.0, sum)

	sum, ok = EvalLinear(sol, nil)
	assert.True(t, ok)
	assert.Equal(t, 0.0, sum)

	_, ok = EvalLinear(sol, []instance.Term{{Coef: 1, Kind: instance.Real, Idx: 9}})
	assert.False(t, ok)
}
