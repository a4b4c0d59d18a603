package lr

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/exp/slices"
)

// AcceptState is the pseudo state targeted by transitions on EOF. It is
// not a real state of the CFSM.
const AcceptState = -1

// === CFSM Construction =====================================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID      int          // serial ID of this state, in order of discovery
	closure *Closure     // configuration items within this state
	edges   *treemap.Map // Symbol -> state ID, ordered by symbol
}

// Transition is an edge of the CFSM.
type Transition struct {
	Symbol Symbol
	Target int // state ID or AcceptState
}

// Closure returns the item set identifying state s.
func (s *CFSMState) Closure() *Closure {
	return s.closure
}

// Items returns the items of s, sorted by rule number.
func (s *CFSMState) Items() []Item {
	return s.closure.Items()
}

// Transition returns the target of the edge labelled A, if any.
func (s *CFSMState) Transition(A Symbol) (int, bool) {
	target, found := s.edges.Get(A)
	if !found {
		return 0, false
	}
	return target.(int), true
}

// Transitions returns all outgoing edges of s, ordered by symbol.
func (s *CFSMState) Transitions() []Transition {
	r := make([]Transition, 0, s.edges.Size())
	it := s.edges.Iterator()
	for it.Next() {
		r = append(r, Transition{Symbol: it.Key().(Symbol), Target: it.Value().(int)})
	}
	return r
}

// IsAccepting is true if s has a transition on EOF.
func (s *CFSMState) IsAccepting() bool {
	_, found := s.edges.Get(EOF)
	return found
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.closure.Size())
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	for _, item := range s.closure.items {
		tracer().Debugf("    %v", item)
	}
	tracer().Debugf("-------------------------")
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(0) state diagram. Will be constructed by a TableGenerator.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes.
//
// State IDs reflect the order of discovery. They are stable for a given rule
// list, but clients should not rely on concrete numbers.
type CFSM struct {
	ga     *Analysis
	states *arraylist.List         // all the states, indexed by ID
	byKey  map[string][]*CFSMState // closure digest -> states
	S0     *CFSMState              // start state
}

// create an empty (initial) CFSM automata.
func emptyCFSM(ga *Analysis) *CFSM {
	return &CFSM{
		ga:     ga,
		states: arraylist.New(),
		byKey:  make(map[string][]*CFSMState),
	}
}

// Add a state to the CFSM, if no state with an equal closure is present.
// Returns the state and a flag indicating whether it is new.
func (c *CFSM) addState(cl *Closure) (*CFSMState, bool) {
	if s := c.findStateByItems(cl); s != nil {
		return s, false
	}
	s := &CFSMState{
		ID:      c.states.Size(),
		closure: cl,
		edges:   treemap.NewWith(symbolComparator),
	}
	c.states.Add(s)
	c.byKey[cl.Key()] = append(c.byKey[cl.Key()], s)
	return s, true
}

// Find a CFSM state by the contained item set.
func (c *CFSM) findStateByItems(cl *Closure) *CFSMState {
	for _, s := range c.byKey[cl.Key()] {
		if s.closure.Equals(cl) {
			return s
		}
	}
	return nil
}

// Construct the characteristic finite state machine CFSM for a grammar,
// breadth first, starting with the closure of the start item. For every
// state, items are grouped by the symbol after the dot; advancing a group
// and closing it yields the target state for this symbol. A group for EOF
// leads to the accept pseudo state.
func buildCFSM(ga *Analysis) *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	cfsm := emptyCFSM(ga)
	closure0 := ga.Close([]Item{StartItem(ga.rules[0])})
	cfsm.S0, _ = cfsm.addState(closure0)
	cfsm.S0.Dump()
	queue := []*CFSMState{cfsm.S0}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		groups := treemap.NewWith(symbolComparator) // Symbol -> []Item
		for _, item := range s.closure.items {
			A := item.PeekSymbol()
			if A == nil {
				continue
			}
			var kernel []Item
			if g, found := groups.Get(A); found {
				kernel = g.([]Item)
			}
			groups.Put(A, append(kernel, item.Advance()))
		}
		it := groups.Iterator()
		for it.Next() {
			A := it.Key().(Symbol)
			if A == EOF {
				tracer().Debugf("goto(%d) --%v--> accept", s.ID, A)
				s.edges.Put(A, AcceptState)
				continue
			}
			snew, isNew := cfsm.addState(ga.Close(it.Value().([]Item)))
			if isNew {
				queue = append(queue, snew)
				snew.Dump()
			}
			tracer().Debugf("goto(%d) --%v--> %d", s.ID, A, snew.ID)
			s.edges.Put(A, snew.ID)
		}
	}
	tracer().Infof("CFSM has %d states", cfsm.states.Size())
	return cfsm
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// State returns the state with a given ID.
func (c *CFSM) State(id int) *CFSMState {
	s, ok := c.states.Get(id)
	if !ok {
		return nil
	}
	return s.(*CFSMState)
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	r := make([]*CFSMState, 0, c.states.Size())
	it := c.states.Iterator()
	for it.Next() {
		r = append(r, it.Value().(*CFSMState))
	}
	return r
}

// PrintStates lists every state with its items. Kernel items are marked
// with '*'.
//
//	STATE[0]
//	* G := ● S #eof
//	  S := ● S + P
//	  …
func (c *CFSM) PrintStates(w io.Writer) {
	for _, s := range c.States() {
		fmt.Fprintf(w, "STATE[%d]\n", s.ID)
		kernel := s.closure.Kernel()
		for _, item := range s.Items() {
			mark := " "
			if slices.Contains(kernel, item) {
				mark = "*"
			}
			fmt.Fprintf(w, "%s %v\n", mark, item)
		}
	}
}

// ToGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	_, err := io.WriteString(w, `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	if err != nil {
		return err
	}
	acc := false
	for _, s := range c.States() {
		fmt.Fprintf(w, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.closure))
		for _, e := range s.Transitions() {
			if e.Target == AcceptState {
				acc = true
				fmt.Fprintf(w, "s%03d -> accept [label=\"%s\"]\n", s.ID, escape(e.Symbol.Name()))
				continue
			}
			fmt.Fprintf(w, "s%03d -> s%03d [label=\"%s\"]\n", s.ID, e.Target, escape(e.Symbol.Name()))
		}
	}
	if acc {
		io.WriteString(w, "accept [shape=doublecircle, fillcolor=lightgray]\n")
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

func nodecolor(state *CFSMState) string {
	if state.IsAccepting() {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(cl *Closure) string {
	var b strings.Builder
	for _, item := range cl.items {
		b.WriteString(escape(item.String()))
		b.WriteString("\\l")
	}
	return b.String()
}

var graphvizEscaper = strings.NewReplacer(
	`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`)

func escape(s string) string {
	return graphvizEscaper.Replace(s)
}
