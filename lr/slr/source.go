package slr

import (
	"github.com/npillmayer/slang/lr/scanner"
)

// TokenSource is a pull-based stream of tokens. NextToken returns false once
// the stream is exhausted. It may block.
type TokenSource interface {
	NextToken() (interface{}, bool)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func() (interface{}, bool)

// NextToken calls f.
func (f TokenSourceFunc) NextToken() (interface{}, bool) {
	return f()
}

// Tokens returns a token source for an in-memory list of tokens.
func Tokens(tokens ...interface{}) TokenSource {
	return &sliceSource{tokens: tokens}
}

// Strings returns a token source for a list of strings.
func Strings(tokens ...string) TokenSource {
	s := &sliceSource{tokens: make([]interface{}, len(tokens))}
	for i, tok := range tokens {
		s.tokens[i] = tok
	}
	return s
}

type sliceSource struct {
	tokens []interface{}
	pos    int
}

func (s *sliceSource) NextToken() (interface{}, bool) {
	if s.pos >= len(s.tokens) {
		return nil, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

// Scan returns a token source reading from a tokenizer. The stream ends
// with the tokenizer's first EOF token.
func Scan(tokenizer scanner.Tokenizer) TokenSource {
	done := false
	return TokenSourceFunc(func() (interface{}, bool) {
		if done {
			return nil, false
		}
		tok := tokenizer.NextToken()
		if tok.TokType() == scanner.EOF {
			done = true
			return nil, false
		}
		return tok, true
	})
}
