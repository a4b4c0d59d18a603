package stlc

import (
	"github.com/npillmayer/slang"
	"github.com/npillmayer/slang/lang"
	"github.com/npillmayer/slang/lr"
	"github.com/npillmayer/slang/lr/scanner"
	"github.com/npillmayer/slang/lr/slr"
	"github.com/pingcap/errors"
)

// Token types
const (
	TokLambda slang.TokType = iota + 1
	TokVar
	TokDot
	TokColon
	TokLParen
	TokRParen
	TokUnit
	TokArrow
)

var lexerRules = []scanner.RegexRule{
	{Pattern: `\s+`, Skip: true},
	{Pattern: `\\|λ`, Type: TokLambda},
	{Pattern: `->`, Type: TokArrow},
	{Pattern: `\.`, Type: TokDot},
	{Pattern: `:`, Type: TokColon},
	{Pattern: `\(`, Type: TokLParen},
	{Pattern: `\)`, Type: TokRParen},
	{Pattern: `0`, Type: TokUnit},
	{Pattern: `[a-zA-Z_][a-zA-Z0-9_']*`, Type: TokVar},
}

var matcher = slr.TokTypeMatcher{
	"lambda": TokLambda,
	"var":    TokVar,
	".":      TokDot,
	":":      TokColon,
	"(":      TokLParen,
	")":      TokRParen,
	"0":      TokUnit,
	"->":     TokArrow,
}

// Rules returns the grammar of the simply typed lambda calculus. Reducers
// build terms with named variables.
//
//	S  ➞ E #eof
//	E  ➞ λ var . E  |  λ var : T . E  |  E1
//	E1 ➞ E1 E2  |  E2
//	E2 ➞ var  |  0  |  ( E )
//	T  ➞ T -> T  |  0  |  ( T )
func Rules() []*lr.Rule {
	b := lr.NewGrammarBuilder("STLC")
	b.LHS("S").N("E").EOF().Reduce(pick(0))
	b.LHS("E").T("lambda").T("var").T(".").N("E").Reduce(func(c []interface{}) (interface{}, error) {
		return &Lam{Param: lexeme(c[1]), Body: c[3].(Term)}, nil
	})
	b.LHS("E").T("lambda").T("var").T(":").N("T").T(".").N("E").Reduce(func(c []interface{}) (interface{}, error) {
		return &Lam{Param: lexeme(c[1]), Ty: c[3].(Type), Body: c[5].(Term)}, nil
	})
	b.LHS("E").N("E1").Reduce(pick(0))
	b.LHS("E1").N("E1").N("E2").Reduce(func(c []interface{}) (interface{}, error) {
		return &App{Fun: c[0].(Term), Arg: c[1].(Term)}, nil
	})
	b.LHS("E1").N("E2").Reduce(pick(0))
	b.LHS("E2").T("var").Reduce(func(c []interface{}) (interface{}, error) {
		return Ident{Name: lexeme(c[0])}, nil
	})
	b.LHS("E2").T("0").Reduce(func(c []interface{}) (interface{}, error) {
		return Unit{}, nil
	})
	b.LHS("E2").T("(").N("E").T(")").Reduce(pick(1))
	b.LHS("T").N("T").T("->").N("T").Reduce(func(c []interface{}) (interface{}, error) {
		return &Arrow{From: c[0].(Type), To: c[2].(Type)}, nil
	})
	b.LHS("T").T("0").Reduce(func(c []interface{}) (interface{}, error) {
		return UnitType{}, nil
	})
	b.LHS("T").T("(").N("T").T(")").Reduce(pick(1))
	rules, err := b.Rules()
	if err != nil {
		panic(err) // the grammar above is well-formed
	}
	return rules
}

// Precedence makes arrow types right-associative.
var Precedence = []lr.PrecedenceGroup{
	{Assoc: lr.RightAssoc, Terminals: []lr.Terminal{"->"}},
}

func pick(n int) lr.Reducer {
	return func(children []interface{}) (interface{}, error) {
		return children[n], nil
	}
}

func lexeme(tok interface{}) string {
	return tok.(slang.Token).Lexeme()
}

// --- Parser ----------------------------------------------------------------

// Parser parses terms of the simply typed lambda calculus. It is safe for
// concurrent use.
type Parser struct {
	lexer *scanner.RegexLexer
	g     *slr.Grammar
}

// NewParser creates a parser, compiling lexer and parsing table.
func NewParser() (*Parser, error) {
	lexer, err := scanner.NewRegexLexer(lexerRules)
	if err != nil {
		return nil, errors.Annotate(err, "STLC lexer")
	}
	g, err := slr.Build(Rules(), Precedence, matcher)
	if err != nil {
		return nil, err
	}
	return &Parser{lexer: lexer, g: g}, nil
}

// Grammar returns the compiled grammar.
func (p *Parser) Grammar() *slr.Grammar {
	return p.g
}

// Tokenizer returns a tokenizer for input.
func (p *Parser) Tokenizer(input string) scanner.Tokenizer {
	return p.lexer.Tokenizer(input)
}

// ParseTree parses input and returns the raw parse tree.
func (p *Parser) ParseTree(input string) (interface{}, error) {
	return lang.ParseTree(p.g, p.lexer.Tokenizer(input))
}

// Parse parses input into a term with named variables.
func (p *Parser) Parse(input string) (Term, error) {
	t, err := lang.Parse(p.g, p.lexer.Tokenizer(input))
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %q as %v", input, t)
	return t.(Term), nil
}
