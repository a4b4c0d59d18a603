package stlc

import (
	"github.com/npillmayer/slang/lang"
)

// Shift adds d to the index of every variable in t which is free at
// cutoff c, i.e. has an index of at least c.
func Shift(d, c int, t Term) Term {
	switch x := t.(type) {
	case Var:
		if x.Index >= c {
			return Var{Index: x.Index + d, Name: x.Name}
		}
		return x
	case *Lam:
		return &Lam{Param: x.Param, Ty: x.Ty, Body: Shift(d, c+1, x.Body)}
	case *App:
		return &App{Fun: Shift(d, c, x.Fun), Arg: Shift(d, c, x.Arg)}
	}
	return t
}

// Subst replaces variable j in t by s.
func Subst(j int, s Term, t Term) Term {
	switch x := t.(type) {
	case Var:
		if x.Index == j {
			return s
		}
		return x
	case *Lam:
		return &Lam{Param: x.Param, Ty: x.Ty, Body: Subst(j+1, Shift(1, 0, s), x.Body)}
	case *App:
		return &App{Fun: Subst(j, s, x.Fun), Arg: Subst(j, s, x.Arg)}
	}
	return t
}

// beta substitutes v for the parameter of an abstraction body.
func beta(body, v Term) Term {
	return Shift(-1, 0, Subst(0, Shift(1, 0, v), body))
}

// Step performs a single call-by-value reduction step. It returns false if
// t is a value or if no rule applies.
func Step(t Term) (Term, bool) {
	app, ok := t.(*App)
	if !ok {
		return t, false
	}
	if !IsValue(app.Fun) {
		f, ok := Step(app.Fun)
		return &App{Fun: f, Arg: app.Arg}, ok
	}
	if !IsValue(app.Arg) {
		a, ok := Step(app.Arg)
		return &App{Fun: app.Fun, Arg: a}, ok
	}
	if lam, ok := app.Fun.(*Lam); ok {
		return beta(lam.Body, app.Arg), true
	}
	return t, false
}

// Eval evaluates a closed nameless term by substitution, until it is a
// value. maxSteps bounds the number of reduction steps, see lang.MaxSteps.
func Eval(t Term, maxSteps int) (Term, error) {
	maxSteps = lang.MaxSteps(maxSteps)
	for steps := 0; ; steps++ {
		if IsValue(t) {
			tracer().Debugf("evaluated in %d steps: %v", steps, t)
			return t, nil
		}
		if steps >= maxSteps {
			return t, evalError(StepLimit, t, steps)
		}
		next, ok := Step(t)
		if !ok {
			return t, evalError(Stuck, t, steps)
		}
		t = next
	}
}
