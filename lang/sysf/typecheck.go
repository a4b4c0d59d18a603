package sysf

import (
	"fmt"

	"github.com/npillmayer/slang/runtime"
	"github.com/pingcap/errors"
)

// TypeErrorKind classifies type errors.
type TypeErrorKind int

// Kinds of type errors.
const (
	Mismatch        TypeErrorKind = iota + 1 // argument type differs from parameter type
	NotAFunction                             // term application of a term without arrow type
	NotPolymorphic                           // type application of a term without universal type
	UnboundVariable                          // index outside of the context or of the wrong kind
)

func (k TypeErrorKind) String() string {
	switch k {
	case Mismatch:
		return "type mismatch"
	case NotAFunction:
		return "not a function"
	case NotPolymorphic:
		return "not polymorphic"
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

// --- Type operations -------------------------------------------------------

// ShiftType adds d to the index of every type variable in ty which is free
// at cutoff c.
func ShiftType(d, c int, ty Type) Type {
	switch x := ty.(type) {
	case TVar:
		if x.Index >= c {
			return TVar{Index: x.Index + d, Name: x.Name}
		}
		return x
	case *Arrow:
		return &Arrow{From: ShiftType(d, c, x.From), To: ShiftType(d, c, x.To)}
	case *Forall:
		return &Forall{Param: x.Param, Body: ShiftType(d, c+1, x.Body)}
	}
	return ty
}

// SubstType replaces type variable j in ty by s.
func SubstType(j int, s Type, ty Type) Type {
	switch x := ty.(type) {
	case TVar:
		if x.Index == j {
			return s
		}
		return x
	case *Arrow:
		return &Arrow{From: SubstType(j, s, x.From), To: SubstType(j, s, x.To)}
	case *Forall:
		return &Forall{Param: x.Param, Body: SubstType(j+1, ShiftType(1, 0, s), x.Body)}
	}
	return ty
}

// Instantiate substitutes s for the bound variable of a universal type.
func Instantiate(f *Forall, s Type) Type {
	return ShiftType(-1, 0, SubstType(0, ShiftType(1, 0, s), f.Body))
}

// --- Type checker ----------------------------------------------------------

// TypeOf computes the type of a closed nameless term.
func TypeOf(t Term) (Type, error) {
	ty, err := typeOf(t, nil)
	if err == nil {
		tracer().Debugf("%v : %v", t, ty)
	}
	return ty, err
}

// Contexts are chains of binder scopes. Term binders carry their type,
// valid in the context outside of the binder.
func typeOf(t Term, ctx *runtime.Scope) (Type, error) {
	switch x := t.(type) {
	case Unit:
		return UnitType{}, nil
	case Var:
		tag, err := ctx.Index(x.Index)
		if err != nil {
			return nil, typeError(UnboundVariable, t, "%v", err)
		}
		if tag.Kind != runtime.TermVar {
			return nil, typeError(UnboundVariable, t, "%s is a type variable", tag.Name())
		}
		return ShiftType(x.Index+1, 0, tag.Data.(Type)), nil
	case Ident:
		return nil, typeError(UnboundVariable, t, "named variable")
	case *Abs:
		tag := runtime.NewTag(x.Param, runtime.TermVar).WithData(x.Ty)
		body, err := typeOf(x.Body, ctx.Bind(tag))
		if err != nil {
			return nil, err
		}
		return &Arrow{From: x.Ty, To: ShiftType(-1, 0, body)}, nil
	case *TAbs:
		tag := runtime.NewTag(x.Param, runtime.TypeVar)
		body, err := typeOf(x.Body, ctx.Bind(tag))
		if err != nil {
			return nil, err
		}
		return &Forall{Param: x.Param, Body: body}, nil
	case *App:
		fty, err := typeOf(x.Fun, ctx)
		if err != nil {
			return nil, err
		}
		aty, err := typeOf(x.Arg, ctx)
		if err != nil {
			return nil, err
		}
		arrow, ok := fty.(*Arrow)
		if !ok {
			return nil, typeError(NotAFunction, t, "function has type %v", fty)
		}
		if !TypeEqual(arrow.From, aty) {
			return nil, typeError(Mismatch, t, "%v applied to %v", fty, aty)
		}
		return arrow.To, nil
	case *TApp:
		fty, err := typeOf(x.Fun, ctx)
		if err != nil {
			return nil, err
		}
		forall, ok := fty.(*Forall)
		if !ok {
			return nil, typeError(NotPolymorphic, t, "term has type %v", fty)
		}
		return Instantiate(forall, x.Ty), nil
	}
	return nil, typeError(Mismatch, t, "unknown term type %T", t)
}
