package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// TagKind separates the namespaces of variables. System F, for example, binds
// term variables and type variables in the same context.
type TagKind int8

// Kinds of tags. Lookups with kind Undefined match tags of any kind.
const (
	Undefined TagKind = iota
	TermVar
	TypeVar
)

func (k TagKind) String() string {
	switch k {
	case TermVar:
		return "term"
	case TypeVar:
		return "type"
	}
	return "undefined"
}

// Tag is an entry of a symbol table: a named variable of some kind, optionally
// decorated with client data, e.g. its type. We call it tag instead of symbol
// because grammars have symbols too.
type Tag struct {
	name string
	Kind TagKind
	Data interface{}
}

// NewTag creates a tag.
func NewTag(name string, kind TagKind) *Tag {
	return &Tag{name: name, Kind: kind}
}

// WithData attaches client data to a tag:
//
//	tag := NewTag("x", TermVar).WithData(ty)
func (tag *Tag) WithData(d interface{}) *Tag {
	tag.Data = d
	return tag
}

// Name returns the tag's name.
func (tag *Tag) Name() string {
	return tag.name
}

func (tag *Tag) String() string {
	return fmt.Sprintf("<%s %s>", tag.Kind, tag.name)
}

// --- Symbol tables ---------------------------------------------------------

// SymbolTable maps names to tags. Iteration is in name order.
type SymbolTable struct {
	tags *treemap.Map
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{tags: treemap.NewWithStringComparator()}
}

// Lookup returns the tag for name, or nil.
func (symtab *SymbolTable) Lookup(name string) *Tag {
	if tag, found := symtab.tags.Get(name); found {
		return tag.(*Tag)
	}
	return nil
}

// Insert stores tag, replacing and returning a tag of the same name, if any.
func (symtab *SymbolTable) Insert(tag *Tag) *Tag {
	old := symtab.Lookup(tag.name)
	symtab.tags.Put(tag.name, tag)
	return old
}

// Len returns the number of tags.
func (symtab *SymbolTable) Len() int {
	return symtab.tags.Size()
}

// Each calls f for every tag, ordered by name.
func (symtab *SymbolTable) Each(f func(*Tag)) {
	symtab.tags.Each(func(_, tag interface{}) {
		f(tag.(*Tag))
	})
}

// --- Scopes ----------------------------------------------------------------

// Scope is a node of a scope tree. Each scope owns a symbol table and links
// to its enclosing scope. Scopes created by Bind hold exactly one tag, their
// binder; a chain of those is a typing context.
//
// The nil scope is the empty context: it contains no tags and has depth 0.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
	binder *Tag
}

// NewScope creates an empty scope nested in parent, which may be nil.
func NewScope(name string, parent *Scope) *Scope {
	return &Scope{Name: name, Parent: parent, symtab: NewSymbolTable()}
}

func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Symbols returns the symbol table of a scope.
func (s *Scope) Symbols() *SymbolTable {
	return s.symtab
}

// Define stores tag in s, returning a tag of the same name it replaces.
func (s *Scope) Define(tag *Tag) *Tag {
	return s.symtab.Insert(tag)
}

// Bind returns a child scope of s with tag as its binder. s is not modified
// and may be nil.
func (s *Scope) Bind(tag *Tag) *Scope {
	sc := NewScope(tag.Name(), s)
	sc.Define(tag)
	sc.binder = tag
	return sc
}

// Binder returns the binder tag of a scope created by Bind, or nil.
func (s *Scope) Binder() *Tag {
	if s == nil {
		return nil
	}
	return s.binder
}

// Depth counts the scopes from s up to the root, s included.
func (s *Scope) Depth() int {
	d := 0
	for ; s != nil; s = s.Parent {
		d++
	}
	return d
}

// Lookup finds the innermost tag for name, together with the scope defining
// it. Returns nil for unknown names.
func (s *Scope) Lookup(name string) (*Tag, *Scope) {
	for ; s != nil; s = s.Parent {
		if tag := s.symtab.Lookup(name); tag != nil {
			return tag, s
		}
	}
	return nil, nil
}

// Distance finds the innermost tag for name and counts the scopes between s
// and the defining scope, 0 meaning s itself. If every binder opens a scope,
// this is the de Bruijn index of a variable occurrence.
func (s *Scope) Distance(name string) (*Tag, int, error) {
	return s.DistanceOf(name, Undefined)
}

// DistanceOf is like Distance, but skips tags of other kinds.
func (s *Scope) DistanceOf(name string, kind TagKind) (*Tag, int, error) {
	for d := 0; s != nil; s, d = s.Parent, d+1 {
		tag := s.symtab.Lookup(name)
		if tag != nil && (kind == Undefined || tag.Kind == kind) {
			return tag, d, nil
		}
	}
	return nil, -1, unboundName(name)
}

// Index returns the binder i scopes up from s; Index(0) is s' own binder.
func (s *Scope) Index(i int) (*Tag, error) {
	for n := 0; n < i && s != nil; n++ {
		s = s.Parent
	}
	if i < 0 || s.Binder() == nil {
		return nil, unboundIndex(i)
	}
	return s.binder, nil
}

// --- Scope trees -----------------------------------------------------------

// ScopeTree is used as a stack of scopes during static analysis, e.g. while
// walking an AST. Scopes popped from the stack remain linked to their parents,
// so the scopes pushed over time form a tree. The zero value is an empty stack.
type ScopeTree struct {
	base *Scope
	tos  *Scope
}

// Current returns the innermost scope, which is nil for an empty stack.
func (st *ScopeTree) Current() *Scope {
	return st.tos
}

// Globals returns the outermost scope. It panics for an empty stack.
func (st *ScopeTree) Globals() *Scope {
	if st.base == nil {
		panic("attempt to access global scope from empty stack")
	}
	return st.base
}

// PushBinder pushes a scope holding a single binder.
func (st *ScopeTree) PushBinder(tag *Tag) *Scope {
	return st.push(st.tos.Bind(tag))
}

func (st *ScopeTree) push(sc *Scope) *Scope {
	if st.tos == nil {
		st.base = sc
	}
	st.tos = sc
	tracer().Debugf("push scope [%s] at depth %d", sc.Name, sc.Depth())
	return sc
}

// PopScope pops the innermost scope. It panics for an empty stack.
func (st *ScopeTree) PopScope() *Scope {
	if st.tos == nil {
		panic("attempt to pop scope from empty stack")
	}
	sc := st.tos
	tracer().Debugf("pop scope [%s]", sc.Name)
	if st.tos = sc.Parent; st.tos == nil {
		st.base = nil
	}
	return sc
}
