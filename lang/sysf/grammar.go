package sysf

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
	TokForall
	TokIdent
	TokDot
	TokColon
	TokLParen
	TokRParen
	TokLBracket
	TokRBracket
	TokUnit
	TokArrow
)

var lexerRules = []scanner.RegexRule{
	{Pattern: `\s+`, Skip: true},
	{Pattern: `/|λ`, Type: TokLambda},
	{Pattern: `@|∀`, Type: TokForall},
	{Pattern: `->`, Type: TokArrow},
	{Pattern: `\.`, Type: TokDot},
	{Pattern: `:`, Type: TokColon},
	{Pattern: `\(`, Type: TokLParen},
	{Pattern: `\)`, Type: TokRParen},
	{Pattern: `\[`, Type: TokLBracket},
	{Pattern: `\]`, Type: TokRBracket},
	{Pattern: `0`, Type: TokUnit},
	{Pattern: `[a-zA-Z_][a-zA-Z0-9_']*`, Type: TokIdent},
}

var matcher = slr.TokTypeMatcher{
	"/":  TokLambda,
	"@":  TokForall,
	"v":  TokIdent,
	".":  TokDot,
	":":  TokColon,
	"(":  TokLParen,
	")":  TokRParen,
	"[":  TokLBracket,
	"]":  TokRBracket,
	"0":  TokUnit,
	"->": TokArrow,
}

// Rules returns the grammar of System F. Reducers build terms with named
// variables.
//
//	S   ➞ E #eof
//	E   ➞ / v : TY . E  |  @ v . E  |  E1
//	E1  ➞ E1 ES  |  E1 [ TY ]  |  ES
//	ES  ➞ v  |  0  |  ( E )
//	TY  ➞ TY1  |  @ v . TY1
//	TY1 ➞ TYS  |  TY1 -> TY1
//	TYS ➞ 0  |  v  |  ( TY )
func Rules() []*lr.Rule {
	b := lr.NewGrammarBuilder("SystemF")
	b.LHS("S").N("E").EOF().Reduce(pick(0))
	b.LHS("E").T("/").T("v").T(":").N("TY").T(".").N("E").Reduce(func(c []interface{}) (interface{}, error) {
		return &Abs{Param: lexeme(c[1]), Ty: c[3].(Type), Body: c[5].(Term)}, nil
	})
	b.LHS("E").T("@").T("v").T(".").N("E").Reduce(func(c []interface{}) (interface{}, error) {
		return &TAbs{Param: lexeme(c[1]), Body: c[3].(Term)}, nil
	})
	b.LHS("E").N("E1").Reduce(pick(0))
	b.LHS("E1").N("E1").N("ES").Reduce(func(c []interface{}) (interface{}, error) {
		return &App{Fun: c[0].(Term), Arg: c[1].(Term)}, nil
	})
	b.LHS("E1").N("E1").T("[").N("TY").T("]").Reduce(func(c []interface{}) (interface{}, error) {
		return &TApp{Fun: c[0].(Term), Ty: c[2].(Type)}, nil
	})
	b.LHS("E1").N("ES").Reduce(pick(0))
	b.LHS("ES").T("v").Reduce(func(c []interface{}) (interface{}, error) {
		return Ident{Name: lexeme(c[0])}, nil
	})
	b.LHS("ES").T("0").Reduce(func(c []interface{}) (interface{}, error) {
		return Unit{}, nil
	})
	b.LHS("ES").T("(").N("E").T(")").Reduce(pick(1))
	b.LHS("TY").N("TY1").Reduce(pick(0))
	b.LHS("TY").T("@").T("v").T(".").N("TY1").Reduce(func(c []interface{}) (interface{}, error) {
		return &Forall{Param: lexeme(c[1]), Body: c[3].(Type)}, nil
	})
	b.LHS("TY1").N("TYS").Reduce(pick(0))
	b.LHS("TY1").N("TY1").T("->").N("TY1").Reduce(func(c []interface{}) (interface{}, error) {
		return &Arrow{From: c[0].(Type), To: c[2].(Type)}, nil
	})
	b.LHS("TYS").T("0").Reduce(func(c []interface{}) (interface{}, error) {
		return UnitType{}, nil
	})
	b.LHS("TYS").T("v").Reduce(func(c []interface{}) (interface{}, error) {
		return TIdent{Name: lexeme(c[0])}, nil
	})
	b.LHS("TYS").T("(").N("TY").T(")").Reduce(pick(1))
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

// Parser parses System F terms. It is safe for concurrent use.
type Parser struct {
	lexer *scanner.RegexLexer
	g     *slr.Grammar
}

// NewParser creates a parser, compiling lexer and parsing table.
func NewParser() (*Parser, error) {
	lexer, err := scanner.NewRegexLexer(lexerRules)
	if err != nil {
		return nil, errors.Annotate(err, "System F lexer")
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
