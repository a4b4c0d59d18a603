package stlc

import (
	"github.com/npillmayer/slang/runtime"
)

// TypeOf computes the type of a closed nameless term. Every abstraction
// has to carry a type annotation.
func TypeOf(t Term) (Type, error) {
	return typeOf(t, nil)
}

func typeOf(t Term, ctx *runtime.Scope) (Type, error) {
	switch x := t.(type) {
	case Unit:
		return UnitType{}, nil
	case Var:
		tag, err := ctx.Index(x.Index)
		if err != nil {
			return nil, typeError(UnboundVariable, t, "%v", err)
		}
		return tag.Data.(Type), nil
	case Ident:
		return nil, typeError(UnboundVariable, t, "named variable")
	case *Lam:
		if x.Ty == nil {
			return nil, typeError(MissingAnnotation, t, "parameter %s", x.Param)
		}
		tag := runtime.NewTag(x.Param, runtime.TermVar).WithData(x.Ty)
		body, err := typeOf(x.Body, ctx.Bind(tag))
		if err != nil {
			return nil, err
		}
		return &Arrow{From: x.Ty, To: body}, nil
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
	}
	return nil, typeError(Mismatch, t, "unknown term type %T", t)
}
