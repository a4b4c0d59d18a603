/*
Package lr implements the analysis and table construction for SLR(1) parsing.

# Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Rule 0 is the start
rule and has to end with the end-of-input terminal EOF. Rules may carry a
reducer, which is applied to the (already transformed) children of a rule
node after parsing.

Example:

	b := lr.NewGrammarBuilder("G")
	b.LHS("G").N("S").EOF().Reduce(pick(0))        // G  ->  S #eof
	b.LHS("S").N("S").T("+").N("P").Reduce(plus)   // S  ->  S + P
	b.LHS("S").N("P").End()                        // S  ->  P
	b.LHS("P").T("val").End()                      // P  ->  val
	rules, err := b.Rules()

Precedence and associativity of terminals are declared as an ordered list
of groups; a group's index is its rank, later groups binding tighter:

	prec := []lr.PrecedenceGroup{
	    {Assoc: lr.LeftAssoc, Terminals: []lr.Terminal{"+"}},
	    {Assoc: lr.LeftAssoc, Terminals: []lr.Terminal{"x"}},
	}

# Static Grammar Analysis

Rules are subjected to an Analysis object, which computes FIRST and
FOLLOW sets for the grammar and pre-computes, for every non-terminal, the
set of items predicted by expanding it. Cyclic FIRST or FOLLOW dependencies
are reported as construction errors.

	ga, err := lr.Analyse(rules)
	fmt.Printf("FIRST(S) = %v", ga.First(lr.NonTerminal("S")))

# Parser Construction

Using grammar analysis as input, the characteristic finite state machine
(CFSM) is built breadth-first from the closure of the start item. The CFSM is
then transformed into an SLR(1) parsing table, resolving shift/reduce
conflicts by precedence. The CFSM will not be thrown away,
but is made available to the client. This is intended
for debugging purposes. It can be exported to Graphviz's Dot-format.

	lrgen := lr.NewTableGenerator(ga, prec)
	if err := lrgen.CreateTables(); err != nil { … }
	table := lrgen.Table()

Package slr drives a parser from these tables.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slang.lr'.
func tracer() tracing.Trace {
	return tracing.Select("slang.lr")
}
