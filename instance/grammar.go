package instance

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammars for the structured line forms of the instance format. Clause and
// header lines are positional and handled by hand in parser.go; these three
// line shapes and the bracketed bounds token have real structure, so they are
// parsed by participle.

type grammarTerm struct {
	Coef float64 `parser:"@Number"`
	Var  string  `parser:"@Ident"`
}

type linLine struct {
	ID    string        `parser:"'lc' @Ident"`
	Sense string        `parser:"@('<=' | '>=' | '=')"`
	RHS   float64       `parser:"@Number ':'"`
	Terms []grammarTerm `parser:"@@*"`
}

type indLine struct {
	Lit string `parser:"'ind' @Ident"`
	ID  string `parser:"'=>' @Ident"`
}

type objLine struct {
	Sense string        `parser:"'obj' @('min' | 'max') ':' 'lin'"`
	Terms []grammarTerm `parser:"@@*"`
}

type boundsPair struct {
	Lo float64 `parser:"'[' @Number"`
	Hi float64 `parser:"',' @Number ']'"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `~?[A-Za-z_]\w*`},
	{Name: "Arrow", Pattern: `=>`},
	{Name: "Op", Pattern: `<=|>=|=`},
	{Name: "Punct", Pattern: `[\[\],:]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var (
	linParser    = participle.MustBuild[linLine](participle.Lexer(lineLexer))
	indParser    = participle.MustBuild[indLine](participle.Lexer(lineLexer))
	objParser    = participle.MustBuild[objLine](participle.Lexer(lineLexer))
	boundsParser = participle.MustBuild[boundsPair](participle.Lexer(lineLexer))
)
