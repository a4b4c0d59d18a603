package stlc

import (
	"fmt"

	"github.com/pingcap/errors"
)

// TypeErrorKind classifies type errors.
type TypeErrorKind int

// Kinds of type errors.
const (
	Mismatch          TypeErrorKind = iota + 1 // argument type differs from parameter type
	NotAFunction                               // application of a term without arrow type
	MissingAnnotation                          // abstraction without parameter type
	UnboundVariable                            // variable index outside of the context
)

func (k TypeErrorKind) String() string {
	switch k {
	case Mismatch:
		return "type mismatch"
	case NotAFunction:
		return "not a function"
	case MissingAnnotation:
		return "missing type annotation"
	case UnboundVariable:
		return "unbound variable"
	}
	return fmt.Sprintf("type error kind %d", int(k))
}

// TypeError is returned by TypeOf.
type TypeError struct {
	Kind TypeErrorKind
	Term Term
	Msg  string
}

func (e *TypeError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s in %v", e.Kind, e.Term)
	}
	return fmt.Sprintf("%s in %v: %s", e.Kind, e.Term, e.Msg)
}

func typeError(kind TypeErrorKind, t Term, format string, args ...interface{}) error {
	return errors.Trace(&TypeError{Kind: kind, Term: t, Msg: fmt.Sprintf(format, args...)})
}

// AsTypeError extracts a TypeError from err, if there is one.
func AsTypeError(err error) (*TypeError, bool) {
	terr, ok := errors.Cause(err).(*TypeError)
	return terr, ok
}

// EvalErrorKind classifies evaluation errors.
type EvalErrorKind int

// Kinds of evaluation errors.
const (
	Stuck     EvalErrorKind = iota + 1 // no rule applies to a non-value
	StepLimit                          // evaluation exceeded the step bound
)

func (k EvalErrorKind) String() string {
	switch k {
	case Stuck:
		return "evaluation stuck"
	case StepLimit:
		return "step limit exceeded"
	}
	return fmt.Sprintf("evaluation error kind %d", int(k))
}

// EvalError is returned by Eval and Run.
type EvalError struct {
	Kind  EvalErrorKind
	Term  Term // term at the time of the error
	Steps int
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s after %d steps: %v", e.Kind, e.Steps, e.Term)
}

func evalError(kind EvalErrorKind, t Term, steps int) error {
	return errors.Trace(&EvalError{Kind: kind, Term: t, Steps: steps})
}

// AsEvalError extracts an EvalError from err, if there is one.
func AsEvalError(err error) (*EvalError, bool) {
	eerr, ok := errors.Cause(err).(*EvalError)
	return eerr, ok
}
