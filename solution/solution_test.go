package solution

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	text := `s OPTIMUM FOUND
o 42.5
v b1=1 b2=0
v i1=3 r1=2.75
`
	sol := Parse(strings.NewReader(text))
	assert.Equal(t, "OPTIMUM FOUND", sol.Status)
	require.NotNil(t, sol.ReportedObj)
	assert.Equal(t, 42.5, *sol.ReportedObj)
	assert.Equal(t, map[string]float64{"b1": 1, "b2": 0, "i1": 3, "r1": 2.75}, sol.Values)

	v, ok := sol.Value("r1")
	assert.True(t, ok)
	assert.Equal(t, 2.75, v)
	_, ok = sol.Value("r2")
	assert.False(t, ok)
}

func TestParseMalformedTokensSkipped(t *testing.T) {
	text := `o not-a-number
v b1 b2=yes b3=1 =5 b4=
v b3=0
garbage line
`
	sol := Parse(strings.NewReader(text))
	assert.Nil(t, sol.ReportedObj)
	// b1 has no '=', b2 and b4 have non-numeric values; the second v line
	// overwrites b3.
	assert.Equal(t, map[string]float64{"b3": 0, "": 5}, sol.Values)
}

func TestParseEmpty(t *testing.T) {
	sol := Parse(strings.NewReader(""))
	assert.Empty(t, sol.Status)
	assert.Nil(t, sol.ReportedObj)
	assert.Empty(t, sol.Values)
}
