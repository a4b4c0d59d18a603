package lr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func createTables(t *testing.T, rules []*Rule, groups []PrecedenceGroup) (*TableGenerator, error) {
	ga, err := Analyse(rules)
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}
	lrgen := NewTableGenerator(ga, groups)
	return lrgen, lrgen.CreateTables()
}

// find the first state containing an item which is complete for a rule
func stateCompleting(cfsm *CFSM, rule int) *CFSMState {
	for _, s := range cfsm.States() {
		for _, item := range s.Items() {
			if item.rule.ID == rule && item.IsComplete() {
				return s
			}
		}
	}
	return nil
}

func TestExprTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lr")
	defer teardown()
	//
	lrgen, err := createTables(t, exprRules(t), nil)
	if err != nil {
		t.Fatalf("expression grammar should not have conflicts: %v", err)
	}
	cfsm := lrgen.CFSM()
	if cfsm.Size() != 12 {
		t.Errorf("expected CFSM with 12 states, have %d", cfsm.Size())
	}
	if cfsm.S0.ID != 0 || cfsm.S0.Closure().Size() != 7 {
		t.Errorf("unexpected start state %v", cfsm.S0)
	}
	table := lrgen.Table()
	if a, ok := table.Action(0, "val"); !ok || a.Kind != Shift {
		t.Errorf("expected shift on val in state 0, have %v", a)
	}
	if _, ok := table.Action(0, "+"); ok {
		t.Errorf("expected no action on + in state 0")
	}
	if _, ok := table.Goto(0, "S"); !ok {
		t.Errorf("expected GOTO(0, S)")
	}
	accepting := 0
	for _, s := range cfsm.States() {
		if a, ok := table.Action(s.ID, EOF); ok && a.Kind == Accept {
			accepting++
		}
	}
	if accepting != 1 {
		t.Errorf("expected exactly 1 accepting state, have %d", accepting)
	}
	s := stateCompleting(cfsm, 6) // V := val ●
	if s == nil {
		t.Fatalf("no state completes rule 6")
	}
	for _, T := range []Terminal{EOF, ")", "+", "x"} {
		if a, ok := table.Action(s.ID, T); !ok || a.Kind != Reduce || a.Target != 6 {
			t.Errorf("expected reduce 6 on %v in state %d, have %v", T, s.ID, a)
		}
	}
	var terminals []Terminal
	table.EachAction(s.ID, func(T Terminal, a Action) bool {
		terminals = append(terminals, T)
		return true
	})
	if !sameTerminals(terminals, EOF, ")", "+", "x") {
		t.Errorf("expected actions ordered by terminal, have %v", terminals)
	}
}

func TestActionEncoding(t *testing.T) {
	for _, a := range []Action{{Kind: Accept}, {Kind: Shift, Target: 0}, {Kind: Shift, Target: 17},
		{Kind: Reduce, Target: 0}, {Kind: Reduce, Target: 4}} {
		if b := decodeAction(a.encode()); b != a {
			t.Errorf("action %v decodes to %v", a, b)
		}
	}
}

/*
Ambiguous expression grammar:

	0: G  ::= E #eof
	1: E  ::= E + E
	2: E  ::= E * E
	3: E  ::= n
*/
func ambiguousRules(t *testing.T) []*Rule {
	b := NewGrammarBuilder("Ambiguous")
	b.LHS("G").N("E").EOF().End()
	b.LHS("E").N("E").T("+").N("E").End()
	b.LHS("E").N("E").T("*").N("E").End()
	b.LHS("E").T("n").End()
	rules, err := b.Rules()
	if err != nil {
		t.Fatal(err)
	}
	return rules
}

func TestUnresolvedConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lr")
	defer teardown()
	//
	_, err := createTables(t, ambiguousRules(t), nil)
	cerr, ok := AsConstructionError(err)
	if !ok || cerr.Kind != ShiftReduceConflict {
		t.Fatalf("expected shift/reduce conflict, got %v", err)
	}
	if cerr.Symbol != Terminal("+") && cerr.Symbol != Terminal("*") {
		t.Errorf("expected conflict error to name an operator, names %v", cerr.Symbol)
	}
}

func TestPrecedenceResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lr")
	defer teardown()
	//
	groups := []PrecedenceGroup{
		{Assoc: LeftAssoc, Terminals: []Terminal{"+"}},
		{Assoc: LeftAssoc, Terminals: []Terminal{"*"}},
	}
	lrgen, err := createTables(t, ambiguousRules(t), groups)
	if err != nil {
		t.Fatal(err)
	}
	table := lrgen.Table()
	plus := stateCompleting(lrgen.CFSM(), 1) // E := E + E ●
	if a, _ := table.Action(plus.ID, "*"); a.Kind != Shift {
		t.Errorf("E + E ● with lookahead *: expected shift, have %v", a)
	}
	if a, _ := table.Action(plus.ID, "+"); a.Kind != Reduce || a.Target != 1 {
		t.Errorf("E + E ● with lookahead +: expected reduce 1, have %v", a)
	}
	times := stateCompleting(lrgen.CFSM(), 2) // E := E * E ●
	for _, T := range []Terminal{"+", "*", EOF} {
		if a, _ := table.Action(times.ID, T); a.Kind != Reduce || a.Target != 2 {
			t.Errorf("E * E ● with lookahead %v: expected reduce 2, have %v", T, a)
		}
	}
	if p, ok := lrgen.Precedence().OfRule(ambiguousRules(t)[2]); !ok || p.Rank != 1 {
		t.Errorf("expected rule 2 to have rank 1, has %v", p)
	}
}

func TestRightAssociativity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Arrows")
	b.LHS("S").N("TY").EOF().End()
	b.LHS("TY").N("TY").T("->").N("TY").End()
	b.LHS("TY").T("0").End()
	rules, _ := b.Rules()
	groups := []PrecedenceGroup{{Assoc: RightAssoc, Terminals: []Terminal{"->"}}}
	lrgen, err := createTables(t, rules, groups)
	if err != nil {
		t.Fatal(err)
	}
	s := stateCompleting(lrgen.CFSM(), 1)
	if a, _ := lrgen.Table().Action(s.ID, "->"); a.Kind != Shift {
		t.Errorf("TY -> TY ● with lookahead ->: expected shift, have %v", a)
	}
	if a, _ := lrgen.Table().Action(s.ID, EOF); a.Kind != Reduce {
		t.Errorf("TY -> TY ● with lookahead #eof: expected reduce, have %v", a)
	}
}

func TestAmbiguousRulePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Mixed")
	b.LHS("G").N("E").EOF().End()
	b.LHS("E").N("E").T("+").N("E").T("*").N("E").End()
	b.LHS("E").T("n").End()
	rules, _ := b.Rules()
	groups := []PrecedenceGroup{
		{Assoc: LeftAssoc, Terminals: []Terminal{"+"}},
		{Assoc: LeftAssoc, Terminals: []Terminal{"*"}},
	}
	_, err := createTables(t, rules, groups)
	if cerr, ok := AsConstructionError(err); !ok || cerr.Kind != AmbiguousPrecedence {
		t.Errorf("expected ambiguous precedence error, got %v", err)
	}
	// same tag twice is fine
	groups = []PrecedenceGroup{{Assoc: LeftAssoc, Terminals: []Terminal{"+", "*"}}}
	if _, err := NewPrecedenceTable(rules, groups); err != nil {
		t.Errorf("equal tags within a rule should be accepted: %v", err)
	}
}

func TestDuplicatePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lr")
	defer teardown()
	//
	groups := []PrecedenceGroup{
		{Assoc: LeftAssoc, Terminals: []Terminal{"+"}},
		{Assoc: RightAssoc, Terminals: []Terminal{"*", "+"}},
	}
	_, err := createTables(t, ambiguousRules(t), groups)
	if cerr, ok := AsConstructionError(err); !ok || cerr.Kind != DuplicatePrecedence {
		t.Errorf("expected duplicate precedence error, got %v", err)
	}
}

func TestReduceReduceConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("RR")
	b.LHS("G").N("S").EOF().End()
	b.LHS("S").N("A").End()
	b.LHS("S").N("B").End()
	b.LHS("A").T("x").End()
	b.LHS("B").T("x").End()
	rules, _ := b.Rules()
	_, err := createTables(t, rules, nil)
	if cerr, ok := AsConstructionError(err); !ok || cerr.Kind != ReduceReduceConflict {
		t.Errorf("expected reduce/reduce conflict, got %v", err)
	}
}

func TestDeterministicConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lr")
	defer teardown()
	//
	g1, _ := createTables(t, exprRules(t), nil)
	g2, _ := createTables(t, exprRules(t), nil)
	d1, d2 := g1.Table().TableData(), g2.Table().TableData()
	if len(d1) != len(d2) {
		t.Fatalf("tables differ in size")
	}
	for i := range d1 {
		if strings.Join(d1[i], "|") != strings.Join(d2[i], "|") {
			t.Errorf("row %d differs: %v vs %v", i, d1[i], d2[i])
		}
	}
}

func TestIntrospection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lr")
	defer teardown()
	//
	lrgen, err := createTables(t, exprRules(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	lrgen.CFSM().PrintStates(&b)
	if !strings.HasPrefix(b.String(), "STATE[0]\n* G := ● S #eof\n  S := ● S + P\n") {
		t.Errorf("unexpected state listing:\n%s", b.String())
	}
	kernels := 0
	for _, line := range strings.Split(b.String(), "\n") {
		if strings.HasPrefix(line, "* ") {
			kernels++
		}
	}
	if kernels < lrgen.CFSM().Size() {
		t.Errorf("expected every state to have a kernel item, have %d marks", kernels)
	}
	if strings.Count(b.String(), "STATE[") != lrgen.CFSM().Size() {
		t.Errorf("expected every state to be listed")
	}
	data := lrgen.Table().TableData()
	if len(data) != lrgen.CFSM().Size()+1 {
		t.Errorf("expected header plus one row per state, have %d rows", len(data))
	}
	if data[0][0] != "state" || data[0][1] != "#eof" {
		t.Errorf("unexpected table header %v", data[0])
	}
	b.Reset()
	if err := lrgen.CFSM().ToGraphViz(&b); err != nil {
		t.Error(err)
	}
	if !strings.Contains(b.String(), "-> accept") {
		t.Errorf("expected GraphViz output to contain an accept edge")
	}
	b.Reset()
	lrgen.Table().AsHTML(&b)
	if !strings.Contains(b.String(), "<table") {
		t.Errorf("expected HTML table")
	}
}
