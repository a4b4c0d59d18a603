/*
Package slr provides an SLR(1)-parser. Clients build a grammar from a list of
rules (see package lr), optional precedence declarations, and a matcher which
relates input tokens to the grammar's terminals. The resulting Grammar
drives a shift-reduce parser over a stream of tokens.

This parser is intended for small to moderate grammars, e.g. for configuration
input or small domain-specific languages. It is *not* intended for full-fledged
programming languages (there are superb other tools around for these kinds of
usages, usually creating LALR(1)-parsers, which are able to recognize a super-set
of SLR-languages).

The main focus for this implementation is adaptability and on-the-fly usage.
Clients are able to construct the parse tables from a grammar and use the
parser directly, without a code-generation or compile step. If you want, you
can create a grammar from user input and use a parser for it in a couple of
lines of code.

# Usage

Clients construct a list of rules, usually by using a grammar builder:

	b := lr.NewGrammarBuilder("Signed Variables Grammar")
	b.LHS("S").N("Var").EOF().End()                     // S    --> Var #eof
	b.LHS("Var").N("Sign").T("a").End()                 // Var  --> Sign a
	b.LHS("Sign").T("+").End()                          // Sign --> +
	b.LHS("Sign").T("-").End()                          // Sign --> -
	rules, err := b.Rules()

These rules are subjected to grammar analysis and table generation:

	g, err := slr.Build(rules, nil, slr.MatcherFunc(func(t lr.Terminal, tok interface{}) bool {
		return string(t) == tok.(string)
	}))

Build fails with an *lr.ConstructionError if the grammar is not SLR(1), i.e. if
a conflict cannot be resolved by precedence. Finally parse some input:

	tree, err := g.Parse(slr.Tokens("+", "a"))
	value, err := slr.Transform(tree)

Parse returns a raw parse tree of *Node values, with input tokens as leaves.
Transform folds the tree bottom-up, applying the reducers of the rules.

A Grammar is immutable and may be used by concurrent parses.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package slr

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slang"
	"github.com/npillmayer/slang/lr"
	"github.com/pingcap/errors"
)

// tracer traces with key 'slang.lr'.
func tracer() tracing.Trace {
	return tracing.Select("slang.lr")
}

// parser holds the state of a single parse: the parse stack and the lookahead.
// It is discarded after the parse.
type parser struct {
	g     *Grammar
	src   TokenSource
	stack []stackitem // parser stack
	la    interface{} // lookahead token
	eos   bool        // lookahead is end of stream
	pos   int         // ordinal of lookahead token
}

// We store pairs of state-IDs and operands on the parse stack. An operand is
// either an input token or a *Node. The bottom of the stack holds state 0
// and no operand.
type stackitem struct {
	stateID int
	operand interface{}
	span    slang.Span // input span over which this operand reaches
}

// Parse parses a stream of tokens and returns a raw parse tree. Tokens are
// pulled from src one at a time; exhaustion of src is the end of input.
// Parse errors are of type *ParseError. Panics of the matcher are not
// recovered.
func (g *Grammar) Parse(src TokenSource) (interface{}, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	p := &parser{
		g:     g,
		src:   src,
		stack: make([]stackitem, 1, 64), // push S0
		pos:   -1,
	}
	p.stack[0].stateID = g.lrgen.CFSM().S0.ID
	p.advance()
	// http://www.cse.unt.edu/~sweany/CSCE3650/HANDOUTS/LRParseAlg.pdf
	for {
		state := p.stack[len(p.stack)-1].stateID // TOS
		T, action, found := p.findAction(state)
		if !found {
			return nil, p.syntaxError(state)
		}
		tracer().Debugf("action(%d, %v) = %v", state, T, action)
		switch action.Kind {
		case lr.Shift:
			p.stack = append(p.stack, // push a terminal onto stack
				stackitem{stateID: action.Target, operand: p.la, span: spanOf(p.la)})
			p.advance()
		case lr.Reduce:
			if err := p.reduce(g.rules[action.Target]); err != nil {
				return nil, err
			}
		case lr.Accept:
			return p.accept(), nil
		}
	}
}

// pull the next lookahead from the token source. Once the source is
// exhausted, the lookahead stays at end of stream.
func (p *parser) advance() {
	if p.eos {
		return
	}
	p.pos++
	tok, ok := p.src.NextToken()
	if !ok {
		tracer().Debugf("end of token stream after %d tokens", p.pos)
		p.la, p.eos = nil, true
		return
	}
	tracer().Debugf("got token %v from source", tok)
	p.la = tok
}

// matches tests the lookahead against a terminal. EOF matches the end of
// the stream only, without asking the matcher.
func (p *parser) matches(T lr.Terminal) bool {
	if T == lr.EOF {
		return p.eos
	}
	if p.eos {
		return false
	}
	return p.g.matcher.Match(T, p.la)
}

// findAction finds the first terminal in the action row of state which
// matches the lookahead. Terminals are tested in name order.
func (p *parser) findAction(state int) (T lr.Terminal, action lr.Action, found bool) {
	p.g.table.EachAction(state, func(t lr.Terminal, a lr.Action) bool {
		if p.matches(t) {
			T, action, found = t, a, true
			return false
		}
		return true
	})
	return
}

// reduce performs a reduce action for a rule
//
//	LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn should be represented on the stack as operands
//
//	[TOS]  Sn(Xn, span_n) ... S1(X1, span1)  ...
//
// They are replaced by a single node for the rule, and the GOTO state for
// the LHS is pushed.
func (p *parser) reduce(rule *lr.Rule) error {
	tracer().Debugf("reduce %v", rule)
	n := rule.Len()
	handle := p.stack[len(p.stack)-n:]
	node := &Node{
		Rule:     rule,
		Children: make([]interface{}, n),
	}
	for i, item := range handle {
		node.Children[i] = item.operand
		node.Span = node.Span.Extend(item.span)
	}
	p.stack = p.stack[:len(p.stack)-n] // pop handle
	state := p.stack[len(p.stack)-1]   // TOS
	nextstate, ok := p.g.table.Goto(state.stateID, rule.LHS)
	if !ok { // cannot happen for tables built by package lr
		return errors.Errorf("no GOTO entry for state %d and %v", state.stateID, rule.LHS)
	}
	tracer().Debugf("reduced to next state = %d", nextstate)
	p.stack = append(p.stack, // push a non-terminal onto stack
		stackitem{stateID: nextstate, operand: node, span: node.Span})
	return nil
}

// accept returns the single operand on the stack. If the start rule has more
// than one symbol in front of EOF, its operands are wrapped into a node for
// the start rule.
func (p *parser) accept() interface{} {
	operands := p.stack[1:]
	tracer().Debugf("accept with %d operand(s)", len(operands))
	if len(operands) == 1 {
		return operands[0].operand
	}
	node := &Node{
		Rule:     p.g.rules[0],
		Children: make([]interface{}, len(operands)),
	}
	for i, item := range operands {
		node.Children[i] = item.operand
		node.Span = node.Span.Extend(item.span)
	}
	return node
}

func (p *parser) syntaxError(state int) error {
	var expected []lr.Terminal
	p.g.table.EachAction(state, func(t lr.Terminal, a lr.Action) bool {
		expected = append(expected, t)
		return true
	})
	perr := &ParseError{
		Kind:     NoAction,
		State:    state,
		Token:    p.la,
		Position: p.pos,
		Expected: expected,
	}
	if p.eos {
		perr.Kind = UnexpectedEnd
	}
	tracer().Infof("%v", perr)
	return errors.Trace(perr)
}

func spanOf(tok interface{}) slang.Span {
	if t, ok := tok.(slang.Token); ok {
		return t.Span()
	}
	return slang.Span{}
}
