package stlc

import (
	"github.com/npillmayer/slang/runtime"
	"github.com/pingcap/errors"
)

// ToDBI converts a term with named variables to nameless form. A variable
// refers to the innermost enclosing binder of the same name. Free variables
// are reported as runtime.UnboundError.
func ToDBI(t Term) (Term, error) {
	return toDBI(t, &runtime.ScopeTree{})
}

func toDBI(t Term, scopes *runtime.ScopeTree) (Term, error) {
	switch x := t.(type) {
	case Ident:
		_, d, err := scopes.Current().Distance(x.Name)
		if err != nil {
			return nil, err
		}
		return Var{Index: d, Name: x.Name}, nil
	case Var, Unit:
		return x, nil
	case *Lam:
		scopes.PushBinder(runtime.NewTag(x.Param, runtime.TermVar))
		body, err := toDBI(x.Body, scopes)
		scopes.PopScope()
		if err != nil {
			return nil, err
		}
		return &Lam{Param: x.Param, Ty: x.Ty, Body: body}, nil
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
	}
	return nil, errors.Errorf("unknown term type %T", t)
}
