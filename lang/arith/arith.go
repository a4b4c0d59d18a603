/*
Package arith is a small calculator for integer expressions, built on an
SLR(1) grammar:

	0: G  ::= S #eof
	1: S  ::= S + P
	2: S  ::= P
	3: P  ::= P x V
	4: P  ::= V
	5: V  ::= ( S )
	6: V  ::= val

Multiplication may be written as 'x' or '*'. Input is scanned by a
lexmachine DFA, and expressions are evaluated by the grammar's reducers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package arith

import (
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slang"
	"github.com/npillmayer/slang/lang"
	"github.com/npillmayer/slang/lr"
	"github.com/npillmayer/slang/lr/scanner"
	"github.com/npillmayer/slang/lr/scanner/lexmach"
	"github.com/npillmayer/slang/lr/slr"
	"github.com/pingcap/errors"
)

// tracer traces with key 'slang.lang'.
func tracer() tracing.Trace {
	return tracing.Select("slang.lang")
}

// Token types
const (
	Plus   slang.TokType = '+'
	Times  slang.TokType = '*'
	LParen slang.TokType = '('
	RParen slang.TokType = ')'
	Number slang.TokType = scanner.Int
)

var matcher = slr.TokTypeMatcher{
	"+":   Plus,
	"x":   Times,
	"(":   LParen,
	")":   RParen,
	"val": Number,
}

// Calculator parses and evaluates integer expressions. It is safe for
// concurrent use.
type Calculator struct {
	lx *lexmach.Lexer
	g  *slr.Grammar
}

// New creates a calculator, compiling its scanner and parsing table.
func New() (*Calculator, error) {
	lx := lexmach.New().
		Value(`[0-9]+`, Number, parseInt).
		Literal("+", Plus).
		Literal("*", Times).
		Keyword("x", Times).
		Literal("(", LParen).
		Literal(")", RParen).
		Skip(`( |\t|\n|\r)+`)
	if err := lx.Compile(); err != nil {
		return nil, errors.Annotate(err, "arithmetic scanner")
	}
	g, err := slr.Build(Rules(), []lr.PrecedenceGroup{
		{Assoc: lr.LeftAssoc, Terminals: []lr.Terminal{"+"}},
		{Assoc: lr.LeftAssoc, Terminals: []lr.Terminal{"x"}},
	}, matcher)
	if err != nil {
		return nil, err
	}
	return &Calculator{lx: lx, g: g}, nil
}

// Rules returns the rules of the expression grammar, including reducers
// evaluating to int64.
func Rules() []*lr.Rule {
	b := lr.NewGrammarBuilder("Arith")
	b.LHS("G").N("S").EOF().Reduce(pick(0))
	b.LHS("S").N("S").T("+").N("P").Reduce(add)
	b.LHS("S").N("P").Reduce(pick(0))
	b.LHS("P").N("P").T("x").N("V").Reduce(mul)
	b.LHS("P").N("V").Reduce(pick(0))
	b.LHS("V").T("(").N("S").T(")").Reduce(pick(1))
	b.LHS("V").T("val").Reduce(value)
	rules, err := b.Rules()
	if err != nil {
		panic(err) // the grammar above is well-formed
	}
	return rules
}

// Grammar returns the compiled grammar.
func (c *Calculator) Grammar() *slr.Grammar {
	return c.g
}

// Parse scans and parses an expression, returning the raw parse tree.
func (c *Calculator) Parse(input string) (interface{}, error) {
	sc, err := c.lx.Scanner(input)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return lang.ParseTree(c.g, sc)
}

// Eval parses and evaluates an expression.
func (c *Calculator) Eval(input string) (int64, error) {
	sc, err := c.lx.Scanner(input)
	if err != nil {
		return 0, errors.Trace(err)
	}
	v, err := lang.Parse(c.g, sc)
	if err != nil {
		return 0, err
	}
	tracer().Debugf("%s = %v", input, v)
	return v.(int64), nil
}

// --- Reducers --------------------------------------------------------------

func parseInt(s string) (interface{}, error) {
	return strconv.ParseInt(s, 10, 64)
}

func pick(n int) lr.Reducer {
	return func(children []interface{}) (interface{}, error) {
		return children[n], nil
	}
}

func add(children []interface{}) (interface{}, error) {
	return children[0].(int64) + children[2].(int64), nil
}

func mul(children []interface{}) (interface{}, error) {
	return children[0].(int64) * children[2].(int64), nil
}

func value(children []interface{}) (interface{}, error) {
	tok := children[0].(slang.Token)
	n, ok := tok.Value().(int64)
	if !ok {
		return nil, errors.Errorf("not a number: %q", tok.Lexeme())
	}
	return n, nil
}
