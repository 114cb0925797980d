package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wmibo/instance"
	"wmibo/solution"
)

func parseBoth(t *testing.T, instText, solText string) (*instance.Problem, *solution.Assignment) {
	t.Helper()
	pb, err := instance.Parse(strings.NewReader(instText))
	require.NoError(t, err)
	return pb, solution.Parse(strings.NewReader(solText))
}

func messages(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}

func TestBooleanDomain(t *testing.T) {
	instText := "p wmibo 1 3 0 0\n"

	rep := Validate(parseBoth(t, instText, "v b1=0 b2=1 b3=1.0000000001"))
	assert.True(t, rep.OK)

	rep = Validate(parseBoth(t, instText, "v b1=0 b2=0.5 b3=1"))
	assert.False(t, rep.OK)
	require.Len(t, rep.Failures(), 1)
	assert.Contains(t, rep.Failures()[0].Message, "b2 not boolean")

	rep = Validate(parseBoth(t, instText, "v b1=0 b2=1"))
	assert.False(t, rep.OK)
	assert.Contains(t, messages(rep.Failures()), "missing assignment: b3")
}

func TestIntegerDomain(t *testing.T) {
	// A dyadic tolerance keeps the boundary arithmetic exact.
	instText := "p wmibo 1 0 1 0\nopt int_tol 0.25\nvar i 1 [0,5]\n"

	// Boundary values at exactly lo-tol and hi+tol are accepted.
	for _, solText := range []string{
		"v i1=3",
		"v i1=-0.25",
		"v i1=5.25",
	} {
		rep := Validate(parseBoth(t, instText, solText))
		assert.True(t, rep.OK, "solution %q should be accepted", solText)
	}

	rep := Validate(parseBoth(t, instText, "v i1=2.5"))
	assert.False(t, rep.OK)
	assert.Contains(t, rep.Failures()[0].Message, "not integral")

	rep = Validate(parseBoth(t, instText, "v i1=-0.3125"))
	assert.False(t, rep.OK)
	assert.Contains(t, messages(rep.Failures()), "i1 out of bounds [0,5]: -0.3125")

	rep = Validate(parseBoth(t, instText, "v i1=6"))
	assert.False(t, rep.OK)
	assert.Contains(t, rep.Failures()[0].Message, "out of bounds")

	// Defaults apply when no opt line overrides them; lo-tol is still
	// accepted exactly.
	rep = Validate(parseBoth(t, "p wmibo 1 0 1 0\nvar i 1 [0,5]\n", "v i1=-0.000001"))
	assert.True(t, rep.OK)
}

func TestIntegerWithoutDeclarationWarns(t *testing.T) {
	rep := Validate(parseBoth(t, "p wmibo 1 0 1 0\n", "v i1=100"))
	assert.True(t, rep.OK)
	require.Len(t, rep.Warnings(), 1)
	assert.Contains(t, rep.Warnings()[0].Message, "no 'var i 1 ...' declaration")
}

func TestRealDomain(t *testing.T) {
	instText := "p wmibo 1 0 0 2\nvar r 1 [0,1]\nvar r 2 free\n"

	rep := Validate(parseBoth(t, instText, "v r1=0.5 r2=-1e250"))
	assert.True(t, rep.OK)

	rep = Validate(parseBoth(t, instText, "v r1=1.5 r2=0"))
	assert.False(t, rep.OK)
	assert.Contains(t, rep.Failures()[0].Message, "r1 out of bounds")

	// Free variables skip the bounds check entirely.
	rep = Validate(parseBoth(t, instText, "v r1=1 r2=1e299"))
	assert.True(t, rep.OK)
}

func TestCustomTolerances(t *testing.T) {
	instText := "p wmibo 1 0 1 1\nopt int_tol 0.25\nopt feas_tol 1\nvar i 1 [0,5]\nvar r 1 [0,1]\n"

	rep := Validate(parseBoth(t, instText, "v i1=2.2 r1=1.9"))
	assert.True(t, rep.OK)

	rep = Validate(parseBoth(t, instText, "v i1=2.4 r1=2.1"))
	assert.False(t, rep.OK)
	assert.Len(t, rep.Failures(), 2)
}
