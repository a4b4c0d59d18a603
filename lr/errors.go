package lr

import (
	"fmt"

	"github.com/pingcap/errors"
)

// ErrorKind classifies construction errors.
type ErrorKind int

// Kinds of construction errors.
const (
	MalformedGrammar     ErrorKind = iota + 1 // rule list violates basic well-formedness
	CyclicFirst                               // FIRST(A) depends on itself other than by direct left recursion
	CyclicFollow                              // FOLLOW(A) depends on itself through pattern-final occurrences
	DuplicatePrecedence                       // a terminal occurs in more than one precedence group
	AmbiguousPrecedence                       // a rule contains terminals with different precedence
	ShiftReduceConflict                       // shift/reduce conflict without precedence to resolve it
	ReduceReduceConflict                      // two rules reducible on the same lookahead
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedGrammar:
		return "malformed grammar"
	case CyclicFirst:
		return "cyclic FIRST dependency"
	case CyclicFollow:
		return "cyclic FOLLOW dependency"
	case DuplicatePrecedence:
		return "duplicate precedence"
	case AmbiguousPrecedence:
		return "ambiguous rule precedence"
	case ShiftReduceConflict:
		return "shift/reduce conflict"
	case ReduceReduceConflict:
		return "reduce/reduce conflict"
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// ConstructionError is returned when a grammar cannot be compiled into an
// SLR(1) table. No partial tables are ever handed out together with a
// ConstructionError.
//
// Errors returned from this package may be wrapped to carry a stack trace;
// use errors.Cause (pingcap/errors) or errors.As to get at the ConstructionError.
type ConstructionError struct {
	Kind   ErrorKind
	Symbol Symbol // the offending symbol, if any
	Rule   *Rule  // the offending rule, if any
	msg    string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func constructionError(kind ErrorKind, sym Symbol, rule *Rule, format string, args ...interface{}) error {
	err := &ConstructionError{
		Kind:   kind,
		Symbol: sym,
		Rule:   rule,
		msg:    fmt.Sprintf(format, args...),
	}
	tracer().Errorf("grammar construction: %v", err)
	return errors.Trace(err)
}

func malformed(sym Symbol, rule *Rule, format string, args ...interface{}) error {
	return constructionError(MalformedGrammar, sym, rule, format, args...)
}

// AsConstructionError extracts a ConstructionError from err, if there is one.
func AsConstructionError(err error) (*ConstructionError, bool) {
	cerr, ok := errors.Cause(err).(*ConstructionError)
	return cerr, ok
}
