package slr

import (
	"io"

	"github.com/npillmayer/slang/lr"
)

// Grammar is a compiled SLR(1) grammar: rules, the matcher for terminals,
// and the parsing table. It is read-only after Build and safe for
// concurrent use.
type Grammar struct {
	rules   []*lr.Rule
	matcher Matcher
	ga      *lr.Analysis
	lrgen   *lr.TableGenerator
	table   *lr.ParsingTable
}

// Build analyses a list of rules and compiles them, together with
// precedence declarations, into an SLR(1) parsing table. It returns an error
// (an *lr.ConstructionError, possibly wrapped) if the rules are malformed or
// if a conflict cannot be resolved.
func Build(rules []*lr.Rule, groups []lr.PrecedenceGroup, m Matcher) (*Grammar, error) {
	ga, err := lr.Analyse(rules)
	if err != nil {
		return nil, err
	}
	lrgen := lr.NewTableGenerator(ga, groups)
	if err := lrgen.CreateTables(); err != nil {
		return nil, err
	}
	return &Grammar{
		rules:   rules,
		matcher: m,
		ga:      ga,
		lrgen:   lrgen,
		table:   lrgen.Table(),
	}, nil
}

// Rules returns the grammar's rules.
func (g *Grammar) Rules() []*lr.Rule {
	return g.rules
}

// Analysis returns the grammar analysis (FIRST and FOLLOW sets).
func (g *Grammar) Analysis() *lr.Analysis {
	return g.ga
}

// CFSM returns the LR(0) automaton of the grammar.
func (g *Grammar) CFSM() *lr.CFSM {
	return g.lrgen.CFSM()
}

// States returns all states of the grammar's automaton.
func (g *Grammar) States() []*lr.CFSMState {
	return g.lrgen.CFSM().States()
}

// Table returns the parsing table.
func (g *Grammar) Table() *lr.ParsingTable {
	return g.table
}

// PrintStates lists the states of the automaton with their items.
func (g *Grammar) PrintStates(w io.Writer) {
	g.lrgen.CFSM().PrintStates(w)
}
