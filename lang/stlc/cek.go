package stlc

import (
	"github.com/npillmayer/slang/lang"
	"github.com/npillmayer/slang/runtime"
)

// Closure is the value of an abstraction on the CEK machine: the
// abstraction together with the environment it has been evaluated in.
// The only other value is Unit.
type Closure struct {
	Lam *Lam
	Env *runtime.MemoryFrame
}

// Continuations
type (
	topK struct{} // nothing left to do
	argK struct { // evaluate the argument of an application next
		arg  Term
		env  *runtime.MemoryFrame
		next interface{}
	}
	funK struct { // apply a function to the current value
		fn   Closure
		next interface{}
	}
)

// Machine is a CEK machine: C is the term under evaluation, E the
// environment holding the values of its free variables and K the
// continuation.
type Machine struct {
	C     Term
	E     *runtime.MemoryFrame
	K     interface{}
	Steps int
}

// NewMachine creates a machine for evaluating a closed nameless term.
func NewMachine(t Term) *Machine {
	return &Machine{C: t, K: topK{}}
}

// Halted is true if the machine holds a value and has nothing left to do.
func (m *Machine) Halted() bool {
	_, top := m.K.(topK)
	return top && IsValue(m.C)
}

// Step performs a single transition. It returns false if the machine is
// halted.
func (m *Machine) Step() (bool, error) {
	switch c := m.C.(type) {
	case Var:
		f, err := m.E.Lookup(c.Index)
		if err != nil {
			return false, evalError(Stuck, m.C, m.Steps)
		}
		switch v := f.Value.(type) {
		case Closure:
			m.C, m.E = v.Lam, v.Env
		default:
			m.C, m.E = Unit{}, nil
		}
	case *App:
		m.C, m.K = c.Fun, argK{arg: c.Arg, env: m.E, next: m.K}
	case *Lam, Unit:
		switch k := m.K.(type) {
		case topK:
			return false, nil
		case argK:
			lam, ok := c.(*Lam)
			if !ok {
				return false, evalError(Stuck, &App{Fun: c, Arg: k.arg}, m.Steps)
			}
			m.C, m.E, m.K = k.arg, k.env, funK{fn: Closure{Lam: lam, Env: m.E}, next: k.next}
		case funK:
			v := m.value()
			m.C, m.E, m.K = k.fn.Lam.Body, k.fn.Env.Push(k.fn.Lam.Param, v), k.next
		}
	default:
		return false, evalError(Stuck, m.C, m.Steps)
	}
	m.Steps++
	return true, nil
}

// value packs the current control value.
func (m *Machine) value() interface{} {
	if lam, ok := m.C.(*Lam); ok {
		return Closure{Lam: lam, Env: m.E}
	}
	return Unit{}
}

// Value reads back the current control term into a closed term, by
// substituting the values of the environment for its free variables.
func (m *Machine) Value() Term {
	return readback(m.C, m.E, 0)
}

func readback(t Term, env *runtime.MemoryFrame, depth int) Term {
	switch x := t.(type) {
	case Var:
		if x.Index < depth {
			return x
		}
		f, err := env.Lookup(x.Index - depth)
		if err != nil {
			return x
		}
		return Shift(depth, 0, valueTerm(f.Value))
	case *Lam:
		return &Lam{Param: x.Param, Ty: x.Ty, Body: readback(x.Body, env, depth+1)}
	case *App:
		return &App{Fun: readback(x.Fun, env, depth), Arg: readback(x.Arg, env, depth)}
	}
	return t
}

func valueTerm(v interface{}) Term {
	if clo, ok := v.(Closure); ok {
		return readback(clo.Lam, clo.Env, 0)
	}
	return Unit{}
}

// Run evaluates a closed nameless term on a CEK machine and reads back the
// resulting value. maxSteps bounds the number of transitions, see
// lang.MaxSteps.
func Run(t Term, maxSteps int) (Term, error) {
	maxSteps = lang.MaxSteps(maxSteps)
	m := NewMachine(t)
	for !m.Halted() {
		if m.Steps >= maxSteps {
			return m.Value(), evalError(StepLimit, m.Value(), m.Steps)
		}
		if _, err := m.Step(); err != nil {
			return m.Value(), err
		}
	}
	tracer().Debugf("CEK machine halted after %d steps", m.Steps)
	return m.Value(), nil
}
