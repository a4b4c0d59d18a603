package scanner

import (
	"fmt"

	"github.com/npillmayer/slang"
)

// DefaultToken is the token type produced by the tokenizers of this module.
type DefaultToken struct {
	kind   slang.TokType
	lexeme string
	value  interface{}
	span   slang.Span
}

var _ slang.Token = DefaultToken{}

// NewToken creates a token. value may be nil.
func NewToken(typ slang.TokType, lexeme string, span slang.Span, value interface{}) DefaultToken {
	return DefaultToken{kind: typ, lexeme: lexeme, value: value, span: span}
}

func eofToken(at int) DefaultToken {
	return NewToken(EOF, "", slang.Span{uint64(at), uint64(at)}, nil)
}

// TokType is part of interface slang.Token.
func (t DefaultToken) TokType() slang.TokType { return t.kind }

// Value is part of interface slang.Token.
func (t DefaultToken) Value() interface{} { return t.value }

// Lexeme is part of interface slang.Token.
func (t DefaultToken) Lexeme() string { return t.lexeme }

// Span is part of interface slang.Token.
func (t DefaultToken) Span() slang.Span { return t.span }

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("<%d|%q>", t.kind, t.lexeme)
}
