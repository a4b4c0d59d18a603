package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSymbolTable(t *testing.T) {
	symtab := NewSymbolTable()
	for _, name := range []string{"c", "a", "b"} {
		if old := symtab.Insert(NewTag(name, TermVar)); old != nil {
			t.Errorf("expected %s to be new, replaced %v", name, old)
		}
	}
	a := symtab.Lookup("a")
	if a == nil || a.Name() != "a" || a.Kind != TermVar {
		t.Fatalf("expected to find term variable a, have %v", a)
	}
	if old := symtab.Insert(NewTag("a", TypeVar).WithData(5)); old != a {
		t.Errorf("expected a to be replaced")
	}
	if symtab.Len() != 3 || symtab.Lookup("a").Data != 5 {
		t.Errorf("expected 3 tags with a carrying 5, have %d", symtab.Len())
	}
	var names string
	symtab.Each(func(tag *Tag) { names += tag.Name() })
	if names != "abc" {
		t.Errorf("expected tags in name order, have %q", names)
	}
	if symtab.Lookup("d") != nil {
		t.Errorf("expected d to be undefined")
	}
}

func TestScopeUpsearch(t *testing.T) {
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.Define(NewTag("new-sym", Undefined))
	if sym, sc := scope.Lookup("new-sym"); sym == nil || sc != scopep {
		t.Errorf("expected to find symbol in parent scope")
	}
	if scope.Symbols().Len() != 0 {
		t.Errorf("expected current scope to be empty")
	}
}

func TestBinderDistance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lang")
	defer teardown()
	//
	// \x. \y. \x. …
	var ctx *Scope
	ctx = ctx.Bind(NewTag("x", TermVar))
	ctx = ctx.Bind(NewTag("y", TermVar))
	ctx = ctx.Bind(NewTag("x", TermVar).WithData("inner"))
	if ctx.Depth() != 3 {
		t.Errorf("expected depth 3, have %d", ctx.Depth())
	}
	tag, d, err := ctx.Distance("x")
	if err != nil || d != 0 || tag.Data != "inner" {
		t.Errorf("expected x to be bound by innermost binder, have %d", d)
	}
	if _, d, _ = ctx.Distance("y"); d != 1 {
		t.Errorf("expected distance 1 for y, have %d", d)
	}
	if _, _, err = ctx.Distance("z"); !IsUnbound(err) {
		t.Errorf("expected z to be unbound, have %v", err)
	}
	if tag, _ := ctx.Index(1); tag == nil || tag.Name() != "y" {
		t.Errorf("expected binder #1 to be y, is %v", tag)
	}
	if _, err := ctx.Index(3); !IsUnbound(err) {
		t.Errorf("expected index 3 to be unbound")
	}
}

func TestScopeTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lang")
	defer teardown()
	//
	st := &ScopeTree{}
	st.PushBinder(NewTag("X", TypeVar))
	st.PushBinder(NewTag("x", TermVar))
	if tag, d, _ := st.Current().Distance("X"); d != 1 || tag.Kind != TypeVar {
		t.Errorf("expected X at distance 1, is at %d", d)
	}
	st.PushBinder(NewTag("X", TermVar))
	if _, d, _ := st.Current().DistanceOf("X", TypeVar); d != 2 {
		t.Errorf("expected type variable X at distance 2, is at %d", d)
	}
	if _, d, _ := st.Current().DistanceOf("X", TermVar); d != 0 {
		t.Errorf("expected term variable X at distance 0, is at %d", d)
	}
	st.PopScope()
	st.PopScope()
	if _, d, _ := st.Current().Distance("X"); d != 0 {
		t.Errorf("expected X at distance 0 after pop, is at %d", d)
	}
	if st.Globals().Name != "X" {
		t.Errorf("expected X to be the outermost scope")
	}
	st.PopScope()
	if st.Current() != nil {
		t.Errorf("expected empty scope stack")
	}
}

func TestMemoryFrames(t *testing.T) {
	var env *MemoryFrame
	env = env.Push("a", 1).Push("b", 2)
	outer := env
	env = env.Push("c", 3)
	if f, err := env.Lookup(2); err != nil || f.Value != 1 {
		t.Errorf("expected frame #2 to hold a=1")
	}
	if outer.Depth() != 2 || env.Depth() != 3 {
		t.Errorf("extending an environment should not modify it")
	}
	if _, err := env.Lookup(3); !IsUnbound(err) {
		t.Errorf("expected lookup beyond environment to fail")
	}
	if env.String() != "[c=3, b=2, a=1]" {
		t.Errorf("unexpected environment %v", env)
	}
}
