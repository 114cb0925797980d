package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
)

// ParseError reports a malformed instance line. Validation problems are not
// parse errors; this type only covers text the parser refuses to accept.
type ParseError struct {
	Line string
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %q", e.Msg, e.Line)
}

func errLine(line, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// knownBlocks are the block names whose content lines have a grammar.
// Content of any other block is ignored for forward compatibility.
var knownBlocks = mapset.NewSet("cnf", "wcnf", "lin", "ind", "obj")

// Parse reads a WMIBO instance. The returned Problem is complete and
// immutable; any malformed recognized line aborts with a *ParseError.
func Parse(r io.Reader) (*Problem, error) {
	pb := &Problem{
		Vars: make(map[VarKey]VarDecl),
		Lin:  make(map[string]LinConstr),
		Ind:  make(map[string]Indicator),
		Opts: Options{FeasTol: 1e-8, IntTol: 1e-6},
	}
	var (
		block     string
		sawHeader bool
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || isComment(line) {
			continue
		}
		var err error
		switch {
		case strings.HasPrefix(line, "p "):
			err = pb.parseHeader(line)
			sawHeader = err == nil
		case strings.HasPrefix(line, "begin "):
			name := strings.Fields(line)[1:]
			if len(name) == 0 {
				err = errLine(line, "bad begin line")
				break
			}
			if knownBlocks.Contains(name[0]) {
				block = name[0]
			} else {
				block = "" // unknown block, content will be skipped
			}
		case line == "end":
			block = ""
		case strings.HasPrefix(line, "opt "):
			err = pb.parseOpt(line)
		case strings.HasPrefix(line, "var "):
			err = pb.parseVarDecl(line)
		default:
			err = pb.parseBlockLine(block, line)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, &ParseError{Msg: "missing header 'p wmibo ...'"}
	}
	return pb, nil
}

// isComment recognizes "#..." and DIMACS-style "c" comments. A lone "c" or
// "c " opens a comment; "cl" does not, as clause lines start with it.
func isComment(line string) bool {
	if line[0] == '#' {
		return true
	}
	return line[0] == 'c' && (len(line) == 1 || unicode.IsSpace(rune(line[1])))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseHeader accepts both "p wmibo 1 B I R" and "p wmibo B I R".
func (pb *Problem) parseHeader(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 5 || fields[1] != "wmibo" {
		return errLine(line, "invalid header line")
	}
	at := 2
	if len(fields) >= 6 && fields[2] == "1" {
		at = 3 // explicit format version token
	}
	var counts [3]int
	for i := range counts {
		v, err := strconv.Atoi(fields[at+i])
		if err != nil {
			return errLine(line, "invalid count %q in header", fields[at+i])
		}
		counts[i] = v
	}
	pb.NbBool, pb.NbInt, pb.NbReal = counts[0], counts[1], counts[2]
	return nil
}

// parseOpt sets a numeric tolerance. Unknown keys and non-numeric values are
// dropped so instances written for newer validators keep parsing.
func (pb *Problem) parseOpt(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return errLine(line, "bad opt line")
	}
	if len(fields) > 3 {
		return nil // multi-token value is never numeric
	}
	v, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil
	}
	switch fields[1] {
	case "feas_tol":
		pb.Opts.FeasTol = v
	case "int_tol":
		pb.Opts.IntTol = v
	}
	return nil
}

func (pb *Problem) parseVarDecl(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return errLine(line, "bad var line")
	}
	if len(fields[1]) != 1 || !strings.ContainsAny(fields[1], "bir") {
		return errLine(line, "bad var kind %q", fields[1])
	}
	kind := VarKind(fields[1][0])
	idx, err := strconv.Atoi(fields[2])
	if err != nil {
		return errLine(line, "bad var index %q", fields[2])
	}
	decl := VarDecl{Kind: kind, Idx: idx}
	switch spec := fields[3]; spec {
	case "bin":
		decl.Lo, decl.Hi, decl.Binary = 0, 1, true
	case "free":
		decl.Lo, decl.Hi, decl.Free = -inf, inf, true
	default:
		b, err := boundsParser.ParseString("", spec)
		if err != nil {
			return errLine(line, "bad bounds %q", spec)
		}
		decl.Lo, decl.Hi = b.Lo, b.Hi
	}
	pb.Vars[VarKey{Kind: kind, Idx: idx}] = decl
	return nil
}

func (pb *Problem) parseBlockLine(block, line string) error {
	switch block {
	case "cnf":
		return pb.parseClauseLine(line, false)
	case "wcnf":
		return pb.parseClauseLine(line, true)
	case "lin":
		return pb.parseLinLine(line)
	case "ind":
		return pb.parseIndLine(line)
	case "obj":
		return pb.parseObjLine(line)
	}
	// Stray lines outside any known block are ignored, not rejected.
	return nil
}

// parseClauseLine handles "cl hard|soft <lit>* 0" and, when weighted,
// "wcl <weight> hard|soft <lit>* 0". The terminating 0 ends the literal
// list; anything after it is ignored.
func (pb *Problem) parseClauseLine(line string, weighted bool) error {
	fields := strings.Fields(line)
	weight := 1
	at := 2
	if weighted {
		if len(fields) < 4 || fields[0] != "wcl" || (fields[2] != "hard" && fields[2] != "soft") {
			return errLine(line, "bad wcnf clause line")
		}
		w, err := strconv.Atoi(fields[1])
		if err != nil {
			return errLine(line, "bad clause weight %q", fields[1])
		}
		weight = w
		at = 3
	} else if len(fields) < 2 || fields[0] != "cl" || (fields[1] != "hard" && fields[1] != "soft") {
		return errLine(line, "bad cnf clause line")
	}
	hard := fields[at-1] == "hard"
	var lits []Lit
	for _, tok := range fields[at:] {
		if tok == "0" {
			break
		}
		lit, err := parseLit(tok)
		if err != nil {
			return errLine(line, "%v", err)
		}
		lits = append(lits, lit)
	}
	cl := Clause{Hard: hard, Weight: weight, Lits: lits}
	switch {
	case weighted && hard:
		pb.WCNFHard = append(pb.WCNFHard, cl)
	case weighted:
		pb.WCNFSoft = append(pb.WCNFSoft, cl)
	case hard:
		pb.CNFHard = append(pb.CNFHard, cl)
	default:
		pb.CNFSoft = append(pb.CNFSoft, cl)
	}
	return nil
}

func (pb *Problem) parseLinLine(line string) error {
	ll, err := linParser.ParseString("", line)
	if err != nil {
		return errLine(line, "bad linear constraint line")
	}
	terms, err := convertTerms(ll.Terms)
	if err != nil {
		return errLine(line, "%v", err)
	}
	if _, dup := pb.Lin[ll.ID]; dup {
		return errLine(line, "duplicate linear constraint id %q", ll.ID)
	}
	pb.Lin[ll.ID] = LinConstr{ID: ll.ID, Sense: ll.Sense, RHS: ll.RHS, Terms: terms}
	pb.LinOrder = append(pb.LinOrder, ll.ID)
	return nil
}

func (pb *Problem) parseIndLine(line string) error {
	il, err := indParser.ParseString("", line)
	if err != nil {
		return errLine(line, "bad indicator line")
	}
	lit, err := parseLit(il.Lit)
	if err != nil {
		return errLine(line, "%v", err)
	}
	if prev, bound := pb.Ind[il.ID]; bound && (prev.Kind == Conflict || prev.Lit != lit) {
		pb.Ind[il.ID] = Indicator{Kind: Conflict}
	} else {
		pb.Ind[il.ID] = Indicator{Kind: Guarded, Lit: lit}
	}
	return nil
}

// parseObjLine sets the objective; a later obj line overwrites an earlier one.
func (pb *Problem) parseObjLine(line string) error {
	ol, err := objParser.ParseString("", line)
	if err != nil {
		return errLine(line, "bad objective line")
	}
	terms, err := convertTerms(ol.Terms)
	if err != nil {
		return errLine(line, "%v", err)
	}
	pb.ObjSense = ol.Sense
	pb.ObjTerms = terms
	return nil
}

func parseLit(tok string) (Lit, error) {
	orig := tok
	neg := strings.HasPrefix(tok, "~")
	if neg {
		tok = tok[1:]
	}
	if len(tok) < 2 || tok[0] != 'b' || !isDigits(tok[1:]) {
		return Lit{}, fmt.Errorf("bad literal token %q", orig)
	}
	idx, _ := strconv.Atoi(tok[1:])
	return Lit{Bvar: idx, Neg: neg}, nil
}

func parseVarTok(tok string) (VarKind, int, error) {
	if len(tok) < 2 || !strings.ContainsAny(tok[:1], "bir") || !isDigits(tok[1:]) {
		return 0, 0, fmt.Errorf("bad var token %q", tok)
	}
	idx, _ := strconv.Atoi(tok[1:])
	return VarKind(tok[0]), idx, nil
}

func convertTerms(in []grammarTerm) ([]Term, error) {
	terms := make([]Term, 0, len(in))
	for _, gt := range in {
		kind, idx, err := parseVarTok(gt.Var)
		if err != nil {
			return nil, err
		}
		terms = append(terms, Term{Coef: gt.Coef, Kind: kind, Idx: idx})
	}
	return terms, nil
}
