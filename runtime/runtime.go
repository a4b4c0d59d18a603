/*
Package runtime implements the runtime structures shared by the interpreters
of the example languages: scopes holding variable binders, and memory
frames holding the values of bound variables.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

# Symbol Table and Scope Tree

Scopes form a tree, each scope linking back to its parent. For languages
with nameless (de Bruijn) variable representation, every binder opens a
scope of its own. The index of a variable is then the number of scopes
between its occurrence and the scope of its binder. ScopeTree is a stack of
scopes used during conversion to this representation; type checkers use
scopes as immutable typing contexts, extending them with Bind.

# Memory Frames

Memory frames are linked into environments, holding one value per
frame. Environments are persistent: extending an environment does not
modify it, so closures may capture them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package runtime

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pingcap/errors"
)

// tracer traces with key 'slang.lang'.
func tracer() tracing.Trace {
	return tracing.Select("slang.lang")
}

// UnboundError is returned for a variable reference without a binder,
// given either by name or by index.
type UnboundError struct {
	Name  string
	Index int
}

func (e *UnboundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unbound variable %q", e.Name)
	}
	return fmt.Sprintf("unbound variable #%d", e.Index)
}

func unboundName(name string) error {
	return errors.Trace(&UnboundError{Name: name, Index: -1})
}

func unboundIndex(i int) error {
	return errors.Trace(&UnboundError{Index: i})
}

// IsUnbound is true if err is caused by an UnboundError.
func IsUnbound(err error) bool {
	_, ok := errors.Cause(err).(*UnboundError)
	return ok
}
