/*
Package stlc implements the simply typed lambda calculus with a single base
type, unit, written as '0'.

Syntax

	e  ::=  x  |  0  |  \x:T.e  |  \x.e  |  e e  |  (e)
	T  ::=  0  |  T -> T  |  (T)

Application associates to the left, arrow types associate to the right and
the body of an abstraction extends as far to the right as possible. 'λ' may
be used instead of '\'.

# Processing

Parse yields terms with named variables. ToDBI converts them to nameless
form, where every variable knows the distance to its binder (its de Bruijn
index). All other operations work on nameless terms: TypeOf type checks a
term, Eval evaluates it by substitution (call-by-value), and Run evaluates
it on a CEK machine.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stlc

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slang.lang'.
func tracer() tracing.Trace {
	return tracing.Select("slang.lang")
}

// --- Types -----------------------------------------------------------------

// Type is a type of the simply typed lambda calculus.
type Type interface {
	fmt.Stringer
	isType()
}

// UnitType is the type of unit.
type UnitType struct{}

// Arrow is the type of functions from From to To.
type Arrow struct {
	From, To Type
}

func (UnitType) isType() {}
func (*Arrow) isType()   {}

func (UnitType) String() string {
	return "0"
}

func (a *Arrow) String() string {
	if _, ok := a.From.(*Arrow); ok {
		return "(" + a.From.String() + ")->" + a.To.String()
	}
	return a.From.String() + "->" + a.To.String()
}

// TypeEqual compares types structurally.
func TypeEqual(a, b Type) bool {
	switch x := a.(type) {
	case UnitType:
		_, ok := b.(UnitType)
		return ok
	case *Arrow:
		y, ok := b.(*Arrow)
		return ok && TypeEqual(x.From, y.From) && TypeEqual(x.To, y.To)
	}
	return false
}

// --- Terms -----------------------------------------------------------------

// Term is a term of the simply typed lambda calculus.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Ident is a named variable. It occurs in terms only before ToDBI.
type Ident struct {
	Name string
}

// Var is a nameless variable, referencing the binder Index levels up.
// Name is kept for printing.
type Var struct {
	Index int
	Name  string
}

// Lam is an abstraction. Ty is nil for abstractions without type annotation.
type Lam struct {
	Param string
	Ty    Type
	Body  Term
}

// App is an application.
type App struct {
	Fun, Arg Term
}

// Unit is the single value of type unit.
type Unit struct{}

func (Ident) isTerm() {}
func (Var) isTerm()   {}
func (*Lam) isTerm()  {}
func (*App) isTerm()  {}
func (Unit) isTerm()  {}

func (x Ident) String() string { return x.Name }
func (v Var) String() string   { return Format(v, false) }
func (l *Lam) String() string  { return Format(l, false) }
func (a *App) String() string  { return Format(a, false) }
func (Unit) String() string    { return "0" }

// IsValue is true for abstractions and unit.
func IsValue(t Term) bool {
	switch t.(type) {
	case *Lam, Unit:
		return true
	}
	return false
}

// Equal compares terms structurally, ignoring the names of bound variables.
// Type annotations have to match.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Ident:
		y, ok := b.(Ident)
		return ok && x.Name == y.Name
	case Var:
		y, ok := b.(Var)
		return ok && x.Index == y.Index
	case Unit:
		_, ok := b.(Unit)
		return ok
	case *Lam:
		y, ok := b.(*Lam)
		if !ok || (x.Ty == nil) != (y.Ty == nil) {
			return false
		}
		return (x.Ty == nil || TypeEqual(x.Ty, y.Ty)) && Equal(x.Body, y.Body)
	case *App:
		y, ok := b.(*App)
		return ok && Equal(x.Fun, y.Fun) && Equal(x.Arg, y.Arg)
	}
	return false
}

// --- Printing --------------------------------------------------------------

// Format prints a term in the syntax accepted by Parse. If indices is set,
// variables are printed as their de Bruijn index.
func Format(t Term, indices bool) string {
	var b strings.Builder
	format(&b, t, indices)
	return b.String()
}

func format(b *strings.Builder, t Term, indices bool) {
	switch x := t.(type) {
	case Ident:
		b.WriteString(x.Name)
	case Var:
		if indices || x.Name == "" {
			b.WriteString(fmt.Sprintf("#%d", x.Index))
		} else {
			b.WriteString(x.Name)
		}
	case Unit:
		b.WriteString("0")
	case *Lam:
		b.WriteString(`\`)
		b.WriteString(x.Param)
		if x.Ty != nil {
			b.WriteString(":")
			b.WriteString(x.Ty.String())
		}
		b.WriteString(".")
		format(b, x.Body, indices)
	case *App:
		if _, ok := x.Fun.(*Lam); ok {
			parens(b, x.Fun, indices)
		} else {
			format(b, x.Fun, indices)
		}
		b.WriteString(" ")
		switch x.Arg.(type) {
		case *Lam, *App:
			parens(b, x.Arg, indices)
		default:
			format(b, x.Arg, indices)
		}
	default:
		b.WriteString(fmt.Sprintf("<%T>", t))
	}
}

func parens(b *strings.Builder, t Term, indices bool) {
	b.WriteString("(")
	format(b, t, indices)
	b.WriteString(")")
}
