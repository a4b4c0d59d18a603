package sysf

import (
	"github.com/npillmayer/slang/runtime"
	"github.com/pingcap/errors"
)

// ToDBI converts a term with named variables to nameless form. Term and
// type binders share a single stack, so indices count binders of both
// kinds. A variable refers to the innermost binder of its own kind with the
// same name. Free variables are reported as runtime.UnboundError.
func ToDBI(t Term) (Term, error) {
	return toDBI(t, &runtime.ScopeTree{})
}

func toDBI(t Term, scopes *runtime.ScopeTree) (Term, error) {
	switch x := t.(type) {
	case Ident:
		_, d, err := scopes.Current().DistanceOf(x.Name, runtime.TermVar)
		if err != nil {
			return nil, err
		}
		return Var{Index: d, Name: x.Name}, nil
	case Var, Unit:
		return x, nil
	case *Abs:
		ty, err := typeToDBI(x.Ty, scopes)
		if err != nil {
			return nil, err
		}
		scopes.PushBinder(runtime.NewTag(x.Param, runtime.TermVar))
		body, err := toDBI(x.Body, scopes)
		scopes.PopScope()
		if err != nil {
			return nil, err
		}
		return &Abs{Param: x.Param, Ty: ty, Body: body}, nil
	case *TAbs:
		scopes.PushBinder(runtime.NewTag(x.Param, runtime.TypeVar))
		body, err := toDBI(x.Body, scopes)
		scopes.PopScope()
		if err != nil {
			return nil, err
		}
		return &TAbs{Param: x.Param, Body: body}, nil
	case *App:
		f, err := toDBI(x.Fun, scopes)
		if err != nil {
			return nil, err
		}
		a, err := toDBI(x.Arg, scopes)
		if err != nil {
			return nil, err
		}
		return &App{Fun: f, Arg: a}, nil
	case *TApp:
		f, err := toDBI(x.Fun, scopes)
		if err != nil {
			return nil, err
		}
		ty, err := typeToDBI(x.Ty, scopes)
		if err != nil {
			return nil, err
		}
		return &TApp{Fun: f, Ty: ty}, nil
	}
	return nil, errors.Errorf("unknown term type %T", t)
}

func typeToDBI(ty Type, scopes *runtime.ScopeTree) (Type, error) {
	switch x := ty.(type) {
	case TIdent:
		_, d, err := scopes.Current().DistanceOf(x.Name, runtime.TypeVar)
		if err != nil {
			return nil, err
		}
		return TVar{Index: d, Name: x.Name}, nil
	case TVar, UnitType:
		return x, nil
	case *Arrow:
		from, err := typeToDBI(x.From, scopes)
		if err != nil {
			return nil, err
		}
		to, err := typeToDBI(x.To, scopes)
		if err != nil {
			return nil, err
		}
		return &Arrow{From: from, To: to}, nil
	case *Forall:
		scopes.PushBinder(runtime.NewTag(x.Param, runtime.TypeVar))
		body, err := typeToDBI(x.Body, scopes)
		scopes.PopScope()
		if err != nil {
			return nil, err
		}
		return &Forall{Param: x.Param, Body: body}, nil
	}
	return nil, errors.Errorf("unknown type %T", ty)
}
