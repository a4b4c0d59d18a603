package lexmach

import (
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slang"
	"github.com/npillmayer/slang/lr/scanner"
)

const (
	tokNil slang.TokType = iota + 10
	tokQuote
	tokAssign
	tokPlus
)

func lispLexer() *Lexer {
	return New().
		Skip(`//[^\n]*\n?`).
		Keyword("nil", tokNil).
		Token(`\"[^"]*\"`, scanner.String).
		Token(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`, scanner.Ident).
		Token(`[1-9][0-9]*`, scanner.Int).
		Literal("'", tokQuote).
		Literal("=", tokAssign).
		Literal("+", tokPlus).
		Skip(`( |\,|\t|\n|\r)+`)
}

func TestTokenCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.scanner")
	defer teardown()
	//
	lx := lispLexer()
	if err := lx.Compile(); err != nil {
		t.Fatal(err)
	}
	counts := map[string]int{
		"1":                          1,
		"1+12":                       3,
		"Hello #World":               2,
		`x="mystring" // commented `: 3,
		"1,22,333":                   3,
		"'nil=x":                     4,
	}
	for input, n := range counts {
		sc, err := lx.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		count := 0
		for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
			t.Logf("%-28q %4d | %12s | @%d", input, tok.TokType(), tok.Lexeme(), tok.Span().From())
			count++
		}
		if count != n {
			t.Errorf("expected %q to yield %d tokens, have %d", input, n, count)
		}
	}
}

func TestKeywordBeforeIdent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.scanner")
	defer teardown()
	//
	sc, err := lispLexer().Scanner("nil nils")
	if err != nil {
		t.Fatal(err)
	}
	if tok := sc.NextToken(); tok.TokType() != tokNil {
		t.Errorf("expected keyword nil, have %v", tok)
	}
	if tok := sc.NextToken(); tok.TokType() != scanner.Ident || tok.Lexeme() != "nils" {
		t.Errorf("expected identifier nils (longest match), have %v", tok)
	}
}

func TestValuesAndSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.scanner")
	defer teardown()
	//
	lx := New().
		Value(`[0-9]+`, scanner.Int, func(s string) (interface{}, error) {
			return strconv.Atoi(s)
		}).
		Literal("+", tokPlus).
		Skip(`( |\t)+`)
	sc, err := lx.Scanner("12 + 345")
	if err != nil {
		t.Fatal(err)
	}
	tok := sc.NextToken()
	if tok.TokType() != scanner.Int || tok.Value() != 12 || tok.Span().From() != 0 || tok.Span().To() != 2 {
		t.Errorf("unexpected first token %v, value %v, span %v", tok, tok.Value(), tok.Span())
	}
	if tok = sc.NextToken(); tok.TokType() != tokPlus || tok.Span().From() != 3 {
		t.Errorf("unexpected second token %v at %v", tok, tok.Span())
	}
	if tok = sc.NextToken(); tok.Value() != 345 || tok.Span().To() != 8 {
		t.Errorf("unexpected third token %v, value %v, span %v", tok, tok.Value(), tok.Span())
	}
	for i := 0; i < 2; i++ {
		if tok = sc.NextToken(); tok.TokType() != scanner.EOF || tok.Span().From() != 8 {
			t.Errorf("expected EOF at 8, have %v at %v", tok, tok.Span())
		}
	}
}

func TestUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.scanner")
	defer teardown()
	//
	sc, err := New().Token(`[a-z]+`, scanner.Ident).Scanner("ab?cd")
	if err != nil {
		t.Fatal(err)
	}
	errcnt := 0
	sc.SetErrorHandler(func(error) { errcnt++ })
	var lexemes []string
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		lexemes = append(lexemes, tok.Lexeme())
	}
	if len(lexemes) != 2 || lexemes[0] != "ab" || lexemes[1] != "cd" || errcnt == 0 {
		t.Errorf("expected bad input to be reported and skipped, have %v and %d errors", lexemes, errcnt)
	}
}

func TestAddAfterCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.scanner")
	defer teardown()
	//
	lx := New().Token(`[a-z]+`, scanner.Ident)
	if err := lx.Compile(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected adding a rule to a compiled lexer to panic")
		}
	}()
	lx.Skip(` +`)
}
