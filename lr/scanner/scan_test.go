package scanner

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slang"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestScan1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		reader := strings.NewReader(input)
		name := fmt.Sprintf("input #%d", i)
		scanner := GoTokenizer(name, reader, SkipComments(true))
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

const (
	tokLambda slang.TokType = iota + 1
	tokDot
	tokArrow
	tokMinus
	tokNum
	tokIdent
)

func testLexer(t *testing.T) *RegexLexer {
	lexer, err := NewRegexLexer([]RegexRule{
		{Pattern: `\s+`, Skip: true},
		{Pattern: `\\`, Type: tokLambda},
		{Pattern: `\.`, Type: tokDot},
		{Pattern: `->`, Type: tokArrow},
		{Pattern: `-`, Type: tokMinus},
		{Pattern: `[0-9]+`, Type: tokNum, Value: func(s string) (interface{}, error) {
			return strconv.Atoi(s)
		}},
		{Pattern: `[a-z]`, Type: tokIdent}, // single letters only
		{Pattern: `[a-z]+`, Type: tokIdent},
	})
	if err != nil {
		t.Fatal(err)
	}
	return lexer
}

func TestRegexFirstMatchWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.scanner")
	defer teardown()
	//
	tokenizer := testLexer(t).Tokenizer(`\xy. x -> 42-`)
	var types []slang.TokType
	var lexemes []string
	var tok slang.Token
	for tok = tokenizer.NextToken(); tok.TokType() != EOF; tok = tokenizer.NextToken() {
		types = append(types, tok.TokType())
		lexemes = append(lexemes, tok.Lexeme())
		if tok.TokType() == tokNum && tok.Value() != 42 {
			t.Errorf("expected number token to carry value 42, has %v", tok.Value())
		}
	}
	expected := []slang.TokType{tokLambda, tokIdent, tokIdent, tokDot, tokIdent, tokArrow, tokNum, tokMinus}
	if fmt.Sprint(types) != fmt.Sprint(expected) {
		t.Errorf("expected token types %v, have %v (%v)", expected, types, lexemes)
	}
	if tok.Span().From() != 13 {
		t.Errorf("expected EOF at offset 13, is at %v", tok.Span())
	}
}

func TestRegexError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.scanner")
	defer teardown()
	//
	tokenizer := testLexer(t).Tokenizer(`x ? y`)
	var errs []error
	tokenizer.SetErrorHandler(func(err error) {
		errs = append(errs, err)
	})
	if tok := tokenizer.NextToken(); tok.Lexeme() != "x" {
		t.Errorf("expected first token to be x, is %v", tok)
	}
	if tok := tokenizer.NextToken(); tok.TokType() != EOF {
		t.Errorf("expected EOF after lexer error, have %v", tok)
	}
	if tok := tokenizer.NextToken(); tok.TokType() != EOF {
		t.Errorf("expected tokenizer to stay at EOF, have %v", tok)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, have %d", len(errs))
	}
	if lerr, ok := errs[0].(*LexError); !ok || lerr.Offset != 2 {
		t.Errorf("expected lexer error at offset 2, have %v", errs[0])
	}
}

func TestRegexBadPattern(t *testing.T) {
	_, err := NewRegexLexer([]RegexRule{{Pattern: `(`}})
	if err == nil {
		t.Errorf("expected invalid pattern to be rejected")
	}
}

func TestGoKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.scanner")
	defer teardown()
	//
	const tokIf slang.TokType = 100
	gs := GoTokenizer("kw", strings.NewReader("if iffy 'c' `raw`"),
		Keywords(map[string]slang.TokType{"if": tokIf}), UnifyStrings(true))
	expected := []slang.TokType{tokIf, Ident, String, String, EOF}
	for i, typ := range expected {
		tok := gs.NextToken()
		if tok.TokType() != typ {
			t.Errorf("token #%d: expected type %d, have %v", i, typ, tok)
		}
	}
}
