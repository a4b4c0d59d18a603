package lr

import (
	"bytes"
	"strings"
)

// Reducer computes the semantic value of a rule from the semantic values of
// its children, given in pattern order.
type Reducer func(children []interface{}) (interface{}, error)

// Rule is a grammar production. Rules are numbered densely from 0, with
// rule 0 being the start rule.
type Rule struct {
	ID      int         // serial number, index into the rule list
	LHS     NonTerminal // left hand side
	RHS     []Symbol    // pattern
	Reducer Reducer     // optional semantic action
}

// Len returns the length of the rule's pattern.
func (r *Rule) Len() int {
	return len(r.RHS)
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.LHS.Name())
	b.WriteString(" :=")
	for _, sym := range r.RHS {
		b.WriteByte(' ')
		b.WriteString(sym.Name())
	}
	return b.String()
}

// --- Items -----------------------------------------------------------------

// Item is a rule together with a cursor (the "dot") marking progress
// through the rule's pattern, 0 ≤ dot ≤ len(pattern).
type Item struct {
	rule *Rule
	dot  int
}

// StartItem returns the item for r with the dot at the leftmost position.
func StartItem(r *Rule) Item {
	return Item{rule: r}
}

// Rule returns the rule of item i.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the cursor position of item i.
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol after the dot, or nil for a complete item.
func (i Item) PeekSymbol() Symbol {
	if i.dot >= len(i.rule.RHS) {
		return nil
	}
	return i.rule.RHS[i.dot]
}

// IsComplete is true if the dot is behind the last symbol of the pattern.
func (i Item) IsComplete() bool {
	return i.dot == len(i.rule.RHS)
}

// Advance returns the item with the dot moved one position to the right.
// Advancing a complete item is a no-op.
func (i Item) Advance() Item {
	if i.IsComplete() {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1}
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteString(i.rule.LHS.Name())
	b.WriteString(" :=")
	for n, sym := range i.rule.RHS {
		if n == i.dot {
			b.WriteString(" ●")
		}
		b.WriteByte(' ')
		b.WriteString(sym.Name())
	}
	if i.IsComplete() {
		b.WriteString(" ●")
	}
	return b.String()
}

// compareItems orders items by rule number, then by dot position.
func compareItems(a, b Item) int {
	if a.rule.ID != b.rule.ID {
		if a.rule.ID < b.rule.ID {
			return -1
		}
		return 1
	}
	if a.dot < b.dot {
		return -1
	} else if a.dot > b.dot {
		return 1
	}
	return 0
}

// itemComparator adapts compareItems for gods containers.
func itemComparator(a, b interface{}) int {
	return compareItems(a.(Item), b.(Item))
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a helper to assemble a list of rules.
//
//	b := lr.NewGrammarBuilder("G")
//	b.LHS("S").N("A").T("a").EOF().End()  // S  ->  A a #eof
//	b.LHS("A").T("b").Reduce(f)           // A  ->  b   { f }
//	rules, err := b.Rules()
type GrammarBuilder struct {
	name  string
	rules []*Rule
}

// NewGrammarBuilder creates a builder for a named grammar.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{name: name}
}

// Name returns the name of the grammar under construction.
func (b *GrammarBuilder) Name() string {
	return b.name
}

// RuleBuilder collects the pattern of a single rule.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *Rule
}

// LHS starts a new rule for non-terminal name.
func (b *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{
		gb:   b,
		rule: &Rule{LHS: NonTerminal(name)},
	}
}

// N appends a non-terminal to the pattern.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	return rb.Sym(NonTerminal(name))
}

// T appends a terminal to the pattern.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	return rb.Sym(Terminal(name))
}

// Sym appends an arbitrary symbol to the pattern.
func (rb *RuleBuilder) Sym(sym Symbol) *RuleBuilder {
	rb.rule.RHS = append(rb.rule.RHS, sym)
	return rb
}

// EOF appends the end-of-input terminal. Only the start rule should do this.
func (rb *RuleBuilder) EOF() *RuleBuilder {
	return rb.Sym(EOF)
}

// End completes a rule without a reducer.
func (rb *RuleBuilder) End() *Rule {
	return rb.Reduce(nil)
}

// Reduce completes a rule, attaching a reducer.
func (rb *RuleBuilder) Reduce(f Reducer) *Rule {
	rb.rule.Reducer = f
	rb.rule.ID = len(rb.gb.rules)
	rb.gb.rules = append(rb.gb.rules, rb.rule)
	return rb.rule
}

// Rules returns the rules collected so far, numbered in declaration order.
// It checks the well-formedness conditions every grammar has to meet (see
// CheckRules).
func (b *GrammarBuilder) Rules() ([]*Rule, error) {
	if err := CheckRules(b.rules); err != nil {
		return nil, err
	}
	Dump(b.rules)
	return b.rules, nil
}

// CheckRules tests a rule list for well-formedness:
// it has to be non-empty and densely numbered, rule 0 has to end with EOF,
// EOF may not occur anywhere else, patterns may not be empty, and every
// non-terminal in a pattern has to have a rule. The start rule's LHS may
// neither occur in a pattern nor have a second rule, otherwise the item
// completing rule 0 would be predicted inside nested derivations.
func CheckRules(rules []*Rule) error {
	if len(rules) == 0 {
		return malformed(nil, nil, "grammar has no rules")
	}
	lhs := make(map[NonTerminal]bool, len(rules))
	for i, r := range rules {
		if r == nil || r.ID != i {
			return malformed(nil, r, "rule #%d is not numbered %d", i, i)
		}
		if len(r.RHS) == 0 {
			return malformed(r.LHS, r, "empty pattern for rule %v", r)
		}
		if i > 0 && r.LHS == rules[0].LHS {
			return malformed(r.LHS, r, "start symbol %v has a second rule %v", r.LHS, r)
		}
		lhs[r.LHS] = true
	}
	for _, r := range rules {
		for n, sym := range r.RHS {
			if sym == rules[0].LHS {
				return malformed(sym, r, "start symbol %v occurs in pattern of %v", sym, r)
			}
			if sym == EOF && (r.ID != 0 || n != len(r.RHS)-1) {
				return malformed(EOF, r, "%v may only end the start rule, found in %v", EOF, r)
			}
			if nt, ok := sym.(NonTerminal); ok && !lhs[nt] {
				return malformed(nt, r, "non-terminal %v has no rule", nt)
			}
		}
	}
	if start := rules[0]; start.RHS[len(start.RHS)-1] != EOF {
		return malformed(start.LHS, start, "start rule %v does not end with %v", start, EOF)
	}
	return nil
}

// Dump is a debugging helper, listing rules to the tracer.
func Dump(rules []*Rule) {
	for _, r := range rules {
		tracer().Debugf("%3d: %v", r.ID, r)
	}
}
