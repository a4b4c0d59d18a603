package slr

import (
	"fmt"

	"github.com/npillmayer/slang"
	"github.com/npillmayer/slang/lr"
	"github.com/pingcap/errors"
)

// ParseErrorKind classifies parse errors.
type ParseErrorKind int

// Kinds of parse errors.
const (
	NoAction      ParseErrorKind = iota + 1 // lookahead does not match any action of the current state
	UnexpectedEnd                           // token stream ends inside an incomplete derivation
)

func (k ParseErrorKind) String() string {
	switch k {
	case NoAction:
		return "syntax error"
	case UnexpectedEnd:
		return "unexpected end of input"
	}
	return fmt.Sprintf("parse error kind %d", int(k))
}

// ParseError aborts a parse. There is no error recovery.
type ParseError struct {
	Kind     ParseErrorKind
	State    int           // state of the parser at the time of the error
	Token    interface{}   // offending lookahead, nil at end of input
	Position int           // ordinal number of the lookahead within the token stream
	Expected []lr.Terminal // terminals with an action in State
}

func (e *ParseError) Error() string {
	if e.Kind == UnexpectedEnd {
		return fmt.Sprintf("%s, expected one of %v", e.Kind, e.Expected)
	}
	tok := e.Token
	if t, ok := tok.(slang.Token); ok {
		tok = fmt.Sprintf("%q at %v", t.Lexeme(), t.Span())
	}
	return fmt.Sprintf("%s: unexpected token #%d %v, expected one of %v", e.Kind, e.Position, tok, e.Expected)
}

// AsParseError extracts a ParseError from err, if there is one.
func AsParseError(err error) (*ParseError, bool) {
	perr, ok := errors.Cause(err).(*ParseError)
	return perr, ok
}
