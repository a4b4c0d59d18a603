package lr

import "fmt"

// Associativity of a precedence group.
type Associativity int8

// Associativities for precedence groups.
const (
	LeftAssoc Associativity = iota + 1
	RightAssoc
)

func (a Associativity) String() string {
	switch a {
	case LeftAssoc:
		return "left"
	case RightAssoc:
		return "right"
	}
	return fmt.Sprintf("assoc(%d)", int(a))
}

// PrecedenceGroup is a set of terminals sharing a precedence rank and an
// associativity. Groups are handed to the table generator as an ordered
// list; the index of a group is its rank, earlier groups bind weaker.
//
//	groups := []lr.PrecedenceGroup{
//	    {Assoc: lr.LeftAssoc, Terminals: []lr.Terminal{"+", "-"}},
//	    {Assoc: lr.LeftAssoc, Terminals: []lr.Terminal{"*", "/"}},
//	}
type PrecedenceGroup struct {
	Assoc     Associativity
	Terminals []Terminal
}

// Precedence is a (rank, associativity) tag for a terminal or a rule.
type Precedence struct {
	Rank  int
	Assoc Associativity
}

func (p Precedence) String() string {
	return fmt.Sprintf("(%d,%s)", p.Rank, p.Assoc)
}

// PrecedenceTable holds the precedence tags of terminals and of the rules
// containing tagged terminals.
type PrecedenceTable struct {
	terminals map[Terminal]Precedence
	rules     map[int]Precedence
}

// NewPrecedenceTable assigns precedence tags to terminals from groups, and
// derives a tag for every rule which contains at least one tagged terminal.
// A terminal listed more than once is a DuplicatePrecedence error; a rule
// containing terminals with different tags is an AmbiguousPrecedence error.
func NewPrecedenceTable(rules []*Rule, groups []PrecedenceGroup) (*PrecedenceTable, error) {
	pt := &PrecedenceTable{
		terminals: make(map[Terminal]Precedence),
		rules:     make(map[int]Precedence),
	}
	for rank, group := range groups {
		for _, T := range group.Terminals {
			if p, ok := pt.terminals[T]; ok {
				return nil, constructionError(DuplicatePrecedence, T, nil,
					"terminal %v already has precedence %v", T, p)
			}
			pt.terminals[T] = Precedence{Rank: rank, Assoc: group.Assoc}
		}
	}
	for _, r := range rules {
		for _, sym := range r.RHS {
			T, ok := sym.(Terminal)
			if !ok {
				continue
			}
			p, ok := pt.terminals[T]
			if !ok {
				continue
			}
			if q, tagged := pt.rules[r.ID]; tagged && q != p {
				return nil, constructionError(AmbiguousPrecedence, T, r,
					"rule %v: terminal %v has precedence %v, rule already has %v", r, T, p, q)
			}
			pt.rules[r.ID] = p
		}
	}
	tracer().Debugf("precedence: %d terminals, %d rules tagged", len(pt.terminals), len(pt.rules))
	return pt, nil
}

// OfTerminal returns the precedence of T, if T is tagged.
func (pt *PrecedenceTable) OfTerminal(T Terminal) (Precedence, bool) {
	p, ok := pt.terminals[T]
	return p, ok
}

// OfRule returns the precedence of rule r, if r contains a tagged terminal.
func (pt *PrecedenceTable) OfRule(r *Rule) (Precedence, bool) {
	p, ok := pt.rules[r.ID]
	return p, ok
}
