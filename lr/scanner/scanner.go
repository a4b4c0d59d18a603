/*
Package scanner defines the tokenizer interface consumed by the parsers of
package slr, together with two implementations.

RegexLexer tokenizes by an ordered list of regular expressions: at each input
position the first rule that matches wins. GoScanner reads Go-like tokens,
backed by the standard library's text/scanner. A third implementation, an
adapter for the lexmachine DFA generator, lives in sub-package lexmach.

All tokenizers produce DefaultTokens and report lexical errors to an error
handler, which by default logs them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slang"
)

// tracer traces with key 'slang.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("slang.scanner")
}

// Token types shared by all tokenizers. Values match those of text/scanner,
// clients are free to use small positive numbers (e.g. runes) for their own
// token types.
const (
	EOF       slang.TokType = scanner.EOF
	Ident     slang.TokType = scanner.Ident
	Int       slang.TokType = scanner.Int
	Float     slang.TokType = scanner.Float
	Char      slang.TokType = scanner.Char
	String    slang.TokType = scanner.String
	RawString slang.TokType = scanner.RawString
	Comment   slang.TokType = scanner.Comment
)

// Tokenizer is the interface parsers read tokens from. After the end of input,
// NextToken returns tokens of type EOF.
type Tokenizer interface {
	NextToken() slang.Token
	SetErrorHandler(func(error))
}

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// Lexeme extracts a string from a token, which may be a slang.Token, a
// string or a byte slice.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case slang.Token:
		return t.Lexeme()
	}
	return fmt.Sprintf("%v", token)
}
