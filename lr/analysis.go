package lr

import (
	"github.com/emirpasic/gods/sets/treeset"
	"golang.org/x/exp/slices"
	"golang.org/x/tools/container/intsets"
)

// Analysis holds the results of static grammar analysis: FIRST and FOLLOW
// sets for all symbols, and for every non-terminal the set of items predicted
// by expanding it. Clients usually do not call the analysis directly, but
// use it implicitly through a TableGenerator. An Analysis is read-only after
// creation.
//
// Terminal sets are kept as bit-sets over the index of a terminal in the
// (sorted) list of terminals.
type Analysis struct {
	rules        []*Rule
	byLHS        map[NonTerminal][]*Rule
	terminals    []Terminal // sorted by name
	nonterminals []NonTerminal
	tindex       map[Terminal]int
	ntindex      map[NonTerminal]int
	first        map[NonTerminal]*intsets.Sparse
	follow       map[NonTerminal]*intsets.Sparse
	ntclosure    map[NonTerminal][]Item
}

// Analyse analyses a list of rules. It fails if the rules are malformed (see
// CheckRules) or if FIRST or FOLLOW sets contain cyclic dependencies.
func Analyse(rules []*Rule) (*Analysis, error) {
	if err := CheckRules(rules); err != nil {
		return nil, err
	}
	ga := &Analysis{
		rules:   rules,
		byLHS:   make(map[NonTerminal][]*Rule),
		tindex:  make(map[Terminal]int),
		ntindex: make(map[NonTerminal]int),
		first:   make(map[NonTerminal]*intsets.Sparse),
		follow:  make(map[NonTerminal]*intsets.Sparse),
	}
	ga.collectSymbols()
	tracer().Infof("grammar has %d rules, %d terminals, %d non-terminals",
		len(rules), len(ga.terminals), len(ga.nonterminals))
	visiting := &intsets.Sparse{}
	for _, A := range ga.nonterminals {
		if _, err := ga.computeFirst(A, visiting); err != nil {
			return nil, err
		}
	}
	for _, A := range ga.nonterminals {
		if _, err := ga.computeFollow(A, visiting); err != nil {
			return nil, err
		}
	}
	ga.computeClosureCache()
	return ga, nil
}

func (ga *Analysis) collectSymbols() {
	for _, r := range ga.rules {
		ga.byLHS[r.LHS] = append(ga.byLHS[r.LHS], r)
		ga.ntindex[r.LHS] = -1
		for _, sym := range r.RHS {
			switch X := sym.(type) {
			case Terminal:
				ga.tindex[X] = -1
			case NonTerminal:
				ga.ntindex[X] = -1
			}
		}
	}
	for T := range ga.tindex {
		ga.terminals = append(ga.terminals, T)
	}
	for A := range ga.ntindex {
		ga.nonterminals = append(ga.nonterminals, A)
	}
	slices.Sort(ga.terminals)
	slices.Sort(ga.nonterminals)
	for i, T := range ga.terminals {
		ga.tindex[T] = i
	}
	for i, A := range ga.nonterminals {
		ga.ntindex[A] = i
	}
}

// Rules returns the rules of the analysed grammar.
func (ga *Analysis) Rules() []*Rule {
	return ga.rules
}

// RulesFor returns all rules with left hand side A, in rule order.
func (ga *Analysis) RulesFor(A NonTerminal) []*Rule {
	return ga.byLHS[A]
}

// Terminals returns all terminals of the grammar, sorted by name.
// EOF is always among them.
func (ga *Analysis) Terminals() []Terminal {
	return ga.terminals
}

// NonTerminals returns all non-terminals of the grammar, sorted by name.
func (ga *Analysis) NonTerminals() []NonTerminal {
	return ga.nonterminals
}

// TerminalIndex returns the position of T in Terminals(), or -1.
func (ga *Analysis) TerminalIndex(T Terminal) int {
	if i, ok := ga.tindex[T]; ok {
		return i
	}
	return -1
}

// NonTerminalIndex returns the position of A in NonTerminals(), or -1.
func (ga *Analysis) NonTerminalIndex(A NonTerminal) int {
	if i, ok := ga.ntindex[A]; ok {
		return i
	}
	return -1
}

// --- FIRST and FOLLOW ------------------------------------------------------

// First returns FIRST(sym). For a terminal this is the terminal itself.
func (ga *Analysis) First(sym Symbol) []Terminal {
	return ga.terminalsOf(ga.firstSet(sym))
}

// Follow returns FOLLOW(A).
func (ga *Analysis) Follow(A NonTerminal) []Terminal {
	return ga.terminalsOf(ga.follow[A])
}

func (ga *Analysis) firstSet(sym Symbol) *intsets.Sparse {
	switch X := sym.(type) {
	case Terminal:
		s := &intsets.Sparse{}
		if i, ok := ga.tindex[X]; ok {
			s.Insert(i)
		}
		return s
	case NonTerminal:
		return ga.first[X]
	}
	return &intsets.Sparse{}
}

func (ga *Analysis) terminalsOf(set *intsets.Sparse) []Terminal {
	if set == nil {
		return nil
	}
	r := make([]Terminal, 0, set.Len())
	for _, i := range set.AppendTo(nil) {
		r = append(r, ga.terminals[i])
	}
	return r
}

// FIRST(A) is the union of the FIRST sets of the leading symbols of A's rules.
// Direct left recursion is skipped. Any other path leading back to A while
// FIRST(A) is still being computed is an error: `visiting` holds the
// non-terminals in progress.
func (ga *Analysis) computeFirst(A NonTerminal, visiting *intsets.Sparse) (*intsets.Sparse, error) {
	if f, ok := ga.first[A]; ok {
		return f, nil
	}
	inx := ga.ntindex[A]
	if visiting.Has(inx) {
		return nil, constructionError(CyclicFirst, A, nil, "FIRST(%v) depends on itself", A)
	}
	visiting.Insert(inx)
	defer visiting.Remove(inx)
	set := &intsets.Sparse{}
	for _, r := range ga.byLHS[A] {
		switch X := r.RHS[0].(type) {
		case Terminal:
			set.Insert(ga.tindex[X])
		case NonTerminal:
			if X == A {
				continue
			}
			fx, err := ga.computeFirst(X, visiting)
			if err != nil {
				return nil, err
			}
			set.UnionWith(fx)
		}
	}
	tracer().Debugf("FIRST(%v) = %v", A, ga.terminalsOf(set))
	ga.first[A] = set
	return set, nil
}

// FOLLOW(A) collects, for every occurrence of A in a pattern, FIRST of the
// symbol behind it, or FOLLOW of the rule's LHS if A ends the pattern.
func (ga *Analysis) computeFollow(A NonTerminal, visiting *intsets.Sparse) (*intsets.Sparse, error) {
	if f, ok := ga.follow[A]; ok {
		return f, nil
	}
	inx := ga.ntindex[A]
	if visiting.Has(inx) {
		return nil, constructionError(CyclicFollow, A, nil, "FOLLOW(%v) depends on itself", A)
	}
	visiting.Insert(inx)
	defer visiting.Remove(inx)
	set := &intsets.Sparse{}
	for _, r := range ga.rules {
		for i, sym := range r.RHS {
			if X, ok := sym.(NonTerminal); !ok || X != A {
				continue
			}
			if i+1 < len(r.RHS) {
				set.UnionWith(ga.firstSet(r.RHS[i+1]))
			} else if r.LHS != A {
				fl, err := ga.computeFollow(r.LHS, visiting)
				if err != nil {
					return nil, err
				}
				set.UnionWith(fl)
			}
		}
	}
	tracer().Debugf("FOLLOW(%v) = %v", A, ga.terminalsOf(set))
	ga.follow[A] = set
	return set, nil
}

// --- Item closures ---------------------------------------------------------

// For every non-terminal A we pre-compute the start items of all rules
// reachable by repeatedly expanding leading non-terminals, starting with A's
// own rules. Closing an item set then amounts to a union with the cached
// sets of all non-terminals behind a dot.
func (ga *Analysis) computeClosureCache() {
	ga.ntclosure = make(map[NonTerminal][]Item, len(ga.nonterminals))
	for _, A := range ga.nonterminals {
		items := treeset.NewWith(itemComparator)
		reached := &intsets.Sparse{}
		reached.Insert(ga.ntindex[A])
		frontier := []NonTerminal{A}
		for len(frontier) > 0 { // breadth first
			var next []NonTerminal
			for _, B := range frontier {
				for _, r := range ga.byLHS[B] {
					items.Add(StartItem(r))
					if C, ok := r.RHS[0].(NonTerminal); ok && reached.Insert(ga.ntindex[C]) {
						next = append(next, C)
					}
				}
			}
			frontier = next
		}
		ga.ntclosure[A] = itemsOf(items)
		tracer().Debugf("closure cache for %v has %d items", A, len(ga.ntclosure[A]))
	}
}

// Predicted returns the cached item set for non-terminal A: all start items
// reachable by expanding A.
func (ga *Analysis) Predicted(A NonTerminal) []Item {
	return ga.ntclosure[A]
}

// Close computes the closure of a set of kernel items. The result is
// canonical: equal item sets yield equal closures, independent of the order
// of the kernel.
func (ga *Analysis) Close(kernel []Item) *Closure {
	set := treeset.NewWith(itemComparator)
	expanded := &intsets.Sparse{}
	for _, item := range kernel {
		set.Add(item)
		if A, ok := item.PeekSymbol().(NonTerminal); ok && expanded.Insert(ga.ntindex[A]) {
			for _, predicted := range ga.ntclosure[A] {
				set.Add(predicted)
			}
		}
	}
	return newClosure(itemsOf(set))
}

func itemsOf(set *treeset.Set) []Item {
	items := make([]Item, 0, set.Size())
	for _, x := range set.Values() {
		items = append(items, x.(Item))
	}
	return items
}
