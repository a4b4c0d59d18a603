package lexmach

import (
	"github.com/grafana/regexp"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slang"
	"github.com/npillmayer/slang/lr/scanner"
	"github.com/pingcap/errors"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'slang.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("slang.scanner")
}

// Converter turns a lexeme into a token value.
type Converter func(lexeme string) (interface{}, error)

// Lexer collects lexmachine rules and, once compiled, creates scanners.
type Lexer struct {
	lexer    *lexmachine.Lexer
	rules    int
	compiled bool
}

// New creates a lexer without any rules.
func New() *Lexer {
	return &Lexer{lexer: lexmachine.NewLexer()}
}

func (lx *Lexer) add(pattern string, action lexmachine.Action) *Lexer {
	if lx.compiled {
		panic("lexmach: rule added to compiled lexer")
	}
	lx.lexer.Add([]byte(pattern), action)
	lx.rules++
	return lx
}

// Skip drops matches of pattern, e.g. whitespace or comments.
func (lx *Lexer) Skip(pattern string) *Lexer {
	return lx.add(pattern, skip)
}

// Token emits a token of type tt for each match of pattern. The token's value
// is its lexeme.
func (lx *Lexer) Token(pattern string, tt slang.TokType) *Lexer {
	return lx.add(pattern, emit(tt, nil))
}

// Value emits a token of type tt for each match of pattern, converting the
// lexeme to the token's value. Conversion errors are scanner errors.
func (lx *Lexer) Value(pattern string, tt slang.TokType, convert Converter) *Lexer {
	return lx.add(pattern, emit(tt, convert))
}

// Literal matches the string lit verbatim.
func (lx *Lexer) Literal(lit string, tt slang.TokType) *Lexer {
	return lx.add(regexp.QuoteMeta(lit), emit(tt, nil))
}

// Keyword matches the word kw. Keywords have to be declared before any
// identifier pattern they would otherwise lose a tie against.
func (lx *Lexer) Keyword(kw string, tt slang.TokType) *Lexer {
	return lx.Literal(kw, tt)
}

// Compile builds the DFA. Afterwards no more rules may be added.
func (lx *Lexer) Compile() error {
	if lx.compiled {
		return nil
	}
	if err := lx.lexer.Compile(); err != nil {
		tracer().Errorf("cannot compile DFA: %v", err)
		return errors.Annotate(err, "lexmach")
	}
	lx.compiled = true
	tracer().Debugf("lexmach: compiled DFA from %d rules", lx.rules)
	return nil
}

// Scanner creates a tokenizer for input. The lexer is compiled on first use.
func (lx *Lexer) Scanner(input string) (*Scanner, error) {
	if err := lx.Compile(); err != nil {
		return nil, err
	}
	s, err := lx.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &Scanner{scanner: s, onError: logError}, nil
}

// --- Actions ---------------------------------------------------------------

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func emit(tt slang.TokType, convert Converter) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		var v interface{} = string(m.Bytes)
		if convert != nil {
			var err error
			if v, err = convert(string(m.Bytes)); err != nil {
				return nil, errors.Annotatef(err, "at position %d", m.TC)
			}
		}
		return s.Token(int(tt), v, m), nil
	}
}

// --- Scanner ---------------------------------------------------------------

// Scanner reads tokens from a single input string.
type Scanner struct {
	scanner *lexmachine.Scanner
	onError func(error)
	end     uint64 // input position behind last token
}

var _ scanner.Tokenizer = (*Scanner)(nil)

// SetErrorHandler sets an error handler for the scanner. A nil handler
// restores the default, which logs errors.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	sc.onError = h
}

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface. After the end of input it
// keeps returning EOF tokens.
func (sc *Scanner) NextToken() slang.Token {
	tok, err, eof := sc.scanner.Next()
	for err != nil {
		sc.onError(err)
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			sc.scanner.TC = max(ui.FailTC, ui.StartTC+1)
		}
		tok, err, eof = sc.scanner.Next()
	}
	if eof {
		return scanner.NewToken(scanner.EOF, "", slang.Span{sc.end, sc.end}, nil)
	}
	lt := tok.(*lexmachine.Token)
	sc.end = uint64(lt.TC + len(lt.Lexeme))
	t := scanner.NewToken(slang.TokType(lt.Type), string(lt.Lexeme),
		slang.Span{uint64(lt.TC), sc.end}, lt.Value)
	tracer().Debugf("lexmach: %v", t)
	return t
}
