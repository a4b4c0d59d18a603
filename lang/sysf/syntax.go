/*
Package sysf implements System F, the polymorphic lambda calculus, with
unit as its only base type.

Syntax

	e  ::=  x  |  0  |  /x:T.e  |  @X.e  |  e e  |  e[T]  |  (e)
	T  ::=  X  |  0  |  T -> T  |  @X.T  |  (T)

'/' introduces a term abstraction, '@' a type abstraction or a universal
type. 'λ' and '∀' may be used instead. Arrow types associate to the right.
The body of a universal type may not itself be universal without
parentheses.

Parse yields terms with named variables, ToDBI converts them to nameless
form and TypeOf type checks nameless terms.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sysf

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

// Type is a type of System F.
type Type interface {
	fmt.Stringer
	isType()
}

// TIdent is a named type variable. It occurs in types only before ToDBI.
type TIdent struct {
	Name string
}

// TVar is a nameless type variable.
type TVar struct {
	Index int
	Name  string
}

// UnitType is the type of unit.
type UnitType struct{}

// Arrow is a function type.
type Arrow struct {
	From, To Type
}

// Forall is a universal type.
type Forall struct {
	Param string
	Body  Type
}

func (TIdent) isType()   {}
func (TVar) isType()     {}
func (UnitType) isType() {}
func (*Arrow) isType()   {}
func (*Forall) isType()  {}

func (x TIdent) String() string  { return x.Name }
func (v TVar) String() string    { return FormatType(v, false) }
func (UnitType) String() string  { return "0" }
func (a *Arrow) String() string  { return FormatType(a, false) }
func (f *Forall) String() string { return FormatType(f, false) }

// TypeEqual compares types structurally, ignoring the names of bound type
// variables.
func TypeEqual(a, b Type) bool {
	switch x := a.(type) {
	case TIdent:
		y, ok := b.(TIdent)
		return ok && x.Name == y.Name
	case TVar:
		y, ok := b.(TVar)
		return ok && x.Index == y.Index
	case UnitType:
		_, ok := b.(UnitType)
		return ok
	case *Arrow:
		y, ok := b.(*Arrow)
		return ok && TypeEqual(x.From, y.From) && TypeEqual(x.To, y.To)
	case *Forall:
		y, ok := b.(*Forall)
		return ok && TypeEqual(x.Body, y.Body)
	}
	return false
}

// --- Terms -----------------------------------------------------------------

// Term is a term of System F.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Ident is a named term variable. It occurs in terms only before ToDBI.
type Ident struct {
	Name string
}

// Var is a nameless term variable.
type Var struct {
	Index int
	Name  string
}

// Abs is a term abstraction.
type Abs struct {
	Param string
	Ty    Type
	Body  Term
}

// App is the application of a term to a term.
type App struct {
	Fun, Arg Term
}

// TAbs is a type abstraction.
type TAbs struct {
	Param string
	Body  Term
}

// TApp is the application of a term to a type.
type TApp struct {
	Fun Term
	Ty  Type
}

// Unit is the single value of type unit.
type Unit struct{}

func (Ident) isTerm() {}
func (Var) isTerm()   {}
func (*Abs) isTerm()  {}
func (*App) isTerm()  {}
func (*TAbs) isTerm() {}
func (*TApp) isTerm() {}
func (Unit) isTerm()  {}

func (x Ident) String() string { return x.Name }
func (v Var) String() string   { return Format(v, false) }
func (a *Abs) String() string  { return Format(a, false) }
func (a *App) String() string  { return Format(a, false) }
func (a *TAbs) String() string { return Format(a, false) }
func (a *TApp) String() string { return Format(a, false) }
func (Unit) String() string    { return "0" }

// --- Printing --------------------------------------------------------------

// Format prints a term in the syntax accepted by Parse. If indices is set,
// variables are printed as their de Bruijn index.
func Format(t Term, indices bool) string {
	var b strings.Builder
	format(&b, t, indices)
	return b.String()
}

// FormatType prints a type in the syntax accepted by Parse.
func FormatType(ty Type, indices bool) string {
	var b strings.Builder
	formatType(&b, ty, indices)
	return b.String()
}

func format(b *strings.Builder, t Term, indices bool) {
	switch x := t.(type) {
	case Ident:
		b.WriteString(x.Name)
	case Var:
		writeVar(b, x.Index, x.Name, indices)
	case Unit:
		b.WriteString("0")
	case *Abs:
		b.WriteString("/" + x.Param + ":")
		formatType(b, x.Ty, indices)
		b.WriteString(".")
		format(b, x.Body, indices)
	case *TAbs:
		b.WriteString("@" + x.Param + ".")
		format(b, x.Body, indices)
	case *App:
		formatFun(b, x.Fun, indices)
		b.WriteString(" ")
		switch x.Arg.(type) {
		case Ident, Var, Unit:
			format(b, x.Arg, indices)
		default:
			b.WriteString("(")
			format(b, x.Arg, indices)
			b.WriteString(")")
		}
	case *TApp:
		formatFun(b, x.Fun, indices)
		b.WriteString("[")
		formatType(b, x.Ty, indices)
		b.WriteString("]")
	default:
		b.WriteString(fmt.Sprintf("<%T>", t))
	}
}

// formatFun prints the left part of an application.
func formatFun(b *strings.Builder, t Term, indices bool) {
	switch t.(type) {
	case *Abs, *TAbs:
		b.WriteString("(")
		format(b, t, indices)
		b.WriteString(")")
	default:
		format(b, t, indices)
	}
}

func formatType(b *strings.Builder, ty Type, indices bool) {
	switch x := ty.(type) {
	case TIdent:
		b.WriteString(x.Name)
	case TVar:
		writeVar(b, x.Index, x.Name, indices)
	case UnitType:
		b.WriteString("0")
	case *Forall:
		b.WriteString("@" + x.Param + ".")
		if _, ok := x.Body.(*Forall); ok {
			typeParens(b, x.Body, indices)
		} else {
			formatType(b, x.Body, indices)
		}
	case *Arrow:
		switch x.From.(type) {
		case *Arrow, *Forall:
			typeParens(b, x.From, indices)
		default:
			formatType(b, x.From, indices)
		}
		b.WriteString("->")
		if _, ok := x.To.(*Forall); ok {
			typeParens(b, x.To, indices)
		} else {
			formatType(b, x.To, indices)
		}
	default:
		b.WriteString(fmt.Sprintf("<%T>", ty))
	}
}

func typeParens(b *strings.Builder, ty Type, indices bool) {
	b.WriteString("(")
	formatType(b, ty, indices)
	b.WriteString(")")
}

func writeVar(b *strings.Builder, index int, name string, indices bool) {
	if indices || name == "" {
		b.WriteString(fmt.Sprintf("#%d", index))
	} else {
		b.WriteString(name)
	}
}
