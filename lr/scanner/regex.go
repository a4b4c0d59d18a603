package scanner

import (
	"fmt"

	"github.com/grafana/regexp"
	"github.com/npillmayer/slang"
	"github.com/pingcap/errors"
)

// RegexRule is an alternative for a RegexLexer. Matches of a Skip rule are
// dropped (whitespace, comments). Value, if set, converts a lexeme to the
// token's value.
type RegexRule struct {
	Pattern string
	Type    slang.TokType
	Skip    bool
	Value   func(lexeme string) (interface{}, error)
}

// RegexLexer holds an ordered list of compiled rules. It is immutable and
// may be shared between tokenizers.
//
// In contrast to lexmachine, a RegexLexer does not search for the longest
// match. At each input position the rules are tried in order and the first
// rule with a non-empty match wins. Clients therefore list keywords in front
// of identifiers, and longer operators in front of their prefixes.
type RegexLexer struct {
	rules []RegexRule
	regex []*regexp.Regexp
}

// NewRegexLexer compiles a list of rules.
func NewRegexLexer(rules []RegexRule) (*RegexLexer, error) {
	lexer := &RegexLexer{rules: rules, regex: make([]*regexp.Regexp, len(rules))}
	for i, r := range rules {
		re, err := regexp.Compile(`^(?:` + r.Pattern + `)`)
		if err != nil {
			return nil, errors.Annotatef(err, "lexer rule #%d", i)
		}
		lexer.regex[i] = re
	}
	return lexer, nil
}

// Tokenizer creates a tokenizer for an input string.
func (lexer *RegexLexer) Tokenizer(input string) *RegexTokenizer {
	return &RegexTokenizer{
		lexer: lexer,
		input: input,
		Error: logError,
	}
}

// LexError is reported to the error handler of a RegexTokenizer if no rule
// matches at an input position.
type LexError struct {
	Offset int
	Rest   string
}

func (e *LexError) Error() string {
	rest := e.Rest
	if len(rest) > 10 {
		rest = rest[:10] + "…"
	}
	return fmt.Sprintf("unrecognized input at offset %d: %q", e.Offset, rest)
}

// RegexTokenizer is a Tokenizer over a RegexLexer. After an error it
// reports EOF.
type RegexTokenizer struct {
	lexer *RegexLexer
	input string
	pos   int
	Error func(error) // error handler
	done  bool
}

var _ Tokenizer = (*RegexTokenizer)(nil)

// SetErrorHandler sets an error handler for the tokenizer.
func (t *RegexTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *RegexTokenizer) NextToken() slang.Token {
	for !t.done && t.pos < len(t.input) {
		rule, n := t.match()
		if n == 0 {
			t.fail(&LexError{Offset: t.pos, Rest: t.input[t.pos:]})
			break
		}
		from := t.pos
		t.pos += n
		r := t.lexer.rules[rule]
		if r.Skip {
			continue
		}
		lexeme := t.input[from:t.pos]
		var v interface{}
		if r.Value != nil {
			var err error
			if v, err = r.Value(lexeme); err != nil {
				t.fail(errors.Annotatef(err, "offset %d", from))
				break
			}
		}
		token := NewToken(r.Type, lexeme, slang.Span{uint64(from), uint64(t.pos)}, v)
		tracer().Debugf("token %v at %v", token, token.span)
		return token
	}
	return eofToken(t.pos)
}

// match returns the index of the first rule matching at the current
// position, and the length of the match. Empty matches do not count.
func (t *RegexTokenizer) match() (int, int) {
	rest := t.input[t.pos:]
	for i, re := range t.lexer.regex {
		if loc := re.FindStringIndex(rest); loc != nil && loc[1] > 0 {
			return i, loc[1]
		}
	}
	return -1, 0
}

func (t *RegexTokenizer) fail(err error) {
	t.done = true
	t.Error(err)
}
