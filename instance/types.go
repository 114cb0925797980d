package instance

import "fmt"

// Bounds beyond this magnitude are treated as unbounded.
const inf = 1e300

// VarKind is the family of a variable, matching its token prefix.
type VarKind byte

const (
	Bool VarKind = 'b'
	Int  VarKind = 'i'
	Real VarKind = 'r'
)

func (k VarKind) String() string { return string(rune(k)) }

// Token returns the assignment-map key for a variable, e.g. "b3".
func (k VarKind) Token(idx int) string { return fmt.Sprintf("%c%d", k, idx) }

// VarKey identifies a declaration; indices are unique per kind only.
type VarKey struct {
	Kind VarKind
	Idx  int
}

type VarDecl struct {
	Kind   VarKind
	Idx    int
	Lo     float64
	Hi     float64
	Free   bool
	Binary bool
}

// Lit is a possibly negated boolean variable.
type Lit struct {
	Bvar int
	Neg  bool
}

type Clause struct {
	Hard   bool
	Weight int
	Lits   []Lit
}

// Term is one coefficient*variable product of a linear expression.
type Term struct {
	Coef float64
	Kind VarKind
	Idx  int
}

type LinConstr struct {
	ID    string
	Sense string // "<=", ">=" or "="
	RHS   float64
	Terms []Term
}

// IndicatorKind tags an indicator binding. A constraint with no binding at
// all is unconditionally active, so absence from Problem.Ind encodes that
// case and no Unconditional kind exists here.
type IndicatorKind byte

const (
	// Guarded means the constraint is active iff its literal is true.
	Guarded IndicatorKind = iota
	// Conflict marks a constraint bound to two different literals.
	// Once set it is never downgraded back to Guarded.
	Conflict
)

type Indicator struct {
	Kind IndicatorKind
	Lit  Lit // meaningful only when Kind == Guarded
}

// Options holds the numeric tolerances of an instance. It is filled with
// defaults at the start of parsing and passed by value afterwards.
type Options struct {
	FeasTol float64
	IntTol  float64
}

// Problem is a parsed WMIBO instance. It is not mutated after Parse returns.
type Problem struct {
	NbBool int
	NbInt  int
	NbReal int

	Vars map[VarKey]VarDecl

	CNFHard  []Clause
	CNFSoft  []Clause
	WCNFHard []Clause
	WCNFSoft []Clause

	Lin      map[string]LinConstr
	LinOrder []string // constraint ids in declaration order

	Ind map[string]Indicator

	ObjSense string // "min", "max" or ""
	ObjTerms []Term

	Opts Options
}
