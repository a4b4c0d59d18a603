package slr

import (
	"github.com/npillmayer/slang"
	"github.com/npillmayer/slang/lr"
)

// Matcher relates input tokens to terminals. Match has to be a pure
// predicate. It is never called for lr.EOF.
type Matcher interface {
	Match(t lr.Terminal, tok interface{}) bool
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(t lr.Terminal, tok interface{}) bool

// Match calls f(t, tok).
func (f MatcherFunc) Match(t lr.Terminal, tok interface{}) bool {
	return f(t, tok)
}

// TokTypeMatcher matches slang.Token values by token type. Terminals not in
// the map do not match any token.
//
//	m := slr.TokTypeMatcher{"+": '+', "val": scanner.Int}
type TokTypeMatcher map[lr.Terminal]slang.TokType

// Match is part of interface Matcher.
func (m TokTypeMatcher) Match(t lr.Terminal, tok interface{}) bool {
	token, ok := tok.(slang.Token)
	if !ok {
		return false
	}
	typ, ok := m[t]
	return ok && token.TokType() == typ
}

// LexemeMatcher matches tokens whose lexeme (or string value) is the name
// of the terminal.
var LexemeMatcher = MatcherFunc(func(t lr.Terminal, tok interface{}) bool {
	switch x := tok.(type) {
	case string:
		return x == string(t)
	case slang.Token:
		return x.Lexeme() == string(t)
	}
	return false
})
