package scanner

import (
	"io"
	"text/scanner"

	"github.com/npillmayer/slang"
	"github.com/pingcap/errors"
)

// GoScanner reads tokens similar to those of the Go language. Identifiers
// registered as keywords are reported with their keyword token type.
type GoScanner struct {
	sc           scanner.Scanner
	onError      func(error)
	keywords     map[string]slang.TokType
	unifyStrings bool
}

var _ Tokenizer = (*GoScanner)(nil)

// GoTokenizer creates a Go-like tokenizer reading from input. sourceID names
// the input in error messages.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *GoScanner {
	gs := &GoScanner{onError: logError}
	gs.sc.Init(input)
	gs.sc.Filename = sourceID
	gs.sc.Error = func(s *scanner.Scanner, msg string) {
		gs.onError(errors.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

// SetErrorHandler is part of interface Tokenizer.
func (gs *GoScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	gs.onError = h
}

// NextToken is part of interface Tokenizer.
func (gs *GoScanner) NextToken() slang.Token {
	typ := slang.TokType(gs.sc.Scan())
	from, to := gs.sc.Position.Offset, gs.sc.Pos().Offset
	if typ == EOF {
		return eofToken(to)
	}
	lexeme := gs.sc.TokenText()
	switch typ {
	case Ident:
		if kw, ok := gs.keywords[lexeme]; ok {
			typ = kw
		}
	case RawString, Char:
		if gs.unifyStrings {
			typ = String
		}
	}
	tracer().Debugf("go scanner: %d %q", typ, lexeme)
	return NewToken(typ, lexeme, slang.Span{uint64(from), uint64(to)}, nil)
}

// Option configures a GoScanner.
type Option func(*GoScanner)

// SkipComments drops comments instead of reporting them as tokens.
func SkipComments(b bool) Option {
	return func(gs *GoScanner) {
		if b {
			gs.sc.Mode |= scanner.SkipComments
		} else {
			gs.sc.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings reports raw strings and character literals as strings.
func UnifyStrings(b bool) Option {
	return func(gs *GoScanner) {
		gs.unifyStrings = b
	}
}

// Keywords maps identifiers to keyword token types.
func Keywords(kw map[string]slang.TokType) Option {
	return func(gs *GoScanner) {
		gs.keywords = kw
	}
}
