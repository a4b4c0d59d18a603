package lr

import (
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/npillmayer/slang/lr/sparse"
	"github.com/pterm/pterm"
)

// https://www.cs.bgu.ac.il/~comp151/wiki.files/ps6.html#sec-2-7-3

// ActionKind is the kind of a parser action.
type ActionKind int8

// Kinds of actions in the ACTION table.
const (
	Shift ActionKind = iota + 1
	Reduce
	Accept
)

// Action is an entry of the ACTION table. For Shift, Target is the state
// to push; for Reduce, it is the ID of the rule to reduce.
type Action struct {
	Kind   ActionKind
	Target int
}

// Table entries are encoded as int32: accept is 0, shift s is 2s+1 and
// reduce r is 2r+2.
func (a Action) encode() int32 {
	switch a.Kind {
	case Shift:
		return int32(2*a.Target + 1)
	case Reduce:
		return int32(2*a.Target + 2)
	}
	return 0
}

func decodeAction(v int32) Action {
	switch {
	case v == 0:
		return Action{Kind: Accept}
	case v%2 == 1:
		return Action{Kind: Shift, Target: int(v-1) / 2}
	}
	return Action{Kind: Reduce, Target: int(v-2) / 2}
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return strconv.Itoa(a.Target)
	case Reduce:
		return "r" + strconv.Itoa(a.Target)
	case Accept:
		return "acc"
	}
	return "<none>"
}

// ===========================================================================

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a list of rules, then an Analysis for it,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an SLR(1)-parser recognizing the grammar.
type TableGenerator struct {
	ga     *Analysis
	groups []PrecedenceGroup
	dfa    *CFSM
	prec   *PrecedenceTable
	table  *ParsingTable
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
// Groups may be nil for grammars without shift/reduce conflicts.
func NewTableGenerator(ga *Analysis, groups []PrecedenceGroup) *TableGenerator {
	return &TableGenerator{
		ga:     ga,
		groups: groups,
	}
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		lrgen.dfa = buildCFSM(lrgen.ga)
	}
	return lrgen.dfa
}

// Table returns the parsing table. The table has to be built by calling
// CreateTables() previously; otherwise Table returns nil.
func (lrgen *TableGenerator) Table() *ParsingTable {
	if lrgen.table == nil {
		tracer().Errorf("tables not yet initialized")
	}
	return lrgen.table
}

// Precedence returns the precedence table, which is available after a call
// to CreateTables().
func (lrgen *TableGenerator) Precedence() *PrecedenceTable {
	return lrgen.prec
}

// CreateTables creates the necessary data structures for an SLR parser.
// If it returns an error, no table is available.
func (lrgen *TableGenerator) CreateTables() error {
	prec, err := NewPrecedenceTable(lrgen.ga.rules, lrgen.groups)
	if err != nil {
		return err
	}
	lrgen.prec = prec
	dfa := lrgen.CFSM()
	table := &ParsingTable{
		ga:      lrgen.ga,
		dfa:     dfa,
		actions: sparse.NewIntMatrix(dfa.Size(), len(lrgen.ga.terminals)),
		gotos:   sparse.NewIntMatrix(dfa.Size(), len(lrgen.ga.nonterminals)),
	}
	for _, state := range dfa.States() {
		if err := lrgen.buildRow(table, state); err != nil {
			return err
		}
	}
	tracer().Infof("ACTION table %dx%d has %d entries, GOTO table %dx%d has %d entries",
		table.actions.Rows(), table.actions.Cols(), table.actions.Len(),
		table.gotos.Rows(), table.gotos.Cols(), table.gotos.Len())
	lrgen.table = table
	return nil
}

// For building a row of the tables we first split the transitions of a state
// into GOTO entries (non-terminal edges) and shift candidates (terminal edges,
// with EOF becoming accept). Then, for every complete item, we produce a
// reduce candidate for each terminal in FOLLOW(LHS). Candidates are merged
// per terminal; shift/reduce conflicts are resolved by precedence.
func (lrgen *TableGenerator) buildRow(table *ParsingTable, state *CFSMState) error {
	ga := lrgen.ga
	tracer().Debugf("--- state %d --------------------------------", state.ID)
	shifts := make(map[Terminal]Action)
	for _, e := range state.Transitions() {
		switch sym := e.Symbol.(type) {
		case NonTerminal:
			table.gotos.Set(state.ID, ga.ntindex[sym], int32(e.Target))
		case Terminal:
			if e.Target == AcceptState {
				shifts[sym] = Action{Kind: Accept}
			} else {
				shifts[sym] = Action{Kind: Shift, Target: e.Target}
			}
		}
	}
	reduces := make(map[Terminal]*Rule)
	for _, item := range state.Items() {
		if !item.IsComplete() {
			continue
		}
		for _, T := range ga.Follow(item.rule.LHS) {
			if r, ok := reduces[T]; ok && r != item.rule {
				return constructionError(ReduceReduceConflict, T, item.rule,
					"state %d: lookahead %v reduces both %v and %v", state.ID, T, r, item.rule)
			}
			reduces[T] = item.rule
		}
	}
	for j, T := range ga.terminals {
		sh, canShift := shifts[T]
		r, canReduce := reduces[T]
		var action Action
		switch {
		case canShift && canReduce:
			a, err := lrgen.resolve(state, T, sh, r)
			if err != nil {
				return err
			}
			action = a
		case canShift:
			action = sh
		case canReduce:
			action = Action{Kind: Reduce, Target: r.ID}
		default:
			continue
		}
		tracer().Debugf("    action(%d, %v) = %v", state.ID, T, action)
		table.actions.Set(state.ID, j, action.encode())
	}
	return nil
}

// resolve a shift/reduce conflict with the precedence of the lookahead
// terminal and the precedence of the rule.
func (lrgen *TableGenerator) resolve(state *CFSMState, T Terminal, sh Action, r *Rule) (Action, error) {
	tp, tok := lrgen.prec.OfTerminal(T)
	rp, rok := lrgen.prec.OfRule(r)
	if !tok || !rok {
		return sh, constructionError(ShiftReduceConflict, T, r,
			"state %d: lookahead %v may shift or reduce %v; no precedence declared", state.ID, T, r)
	}
	reduce := Action{Kind: Reduce, Target: r.ID}
	var action Action
	switch {
	case tp.Rank > rp.Rank:
		action = sh
	case tp.Rank < rp.Rank:
		action = reduce
	case tp.Assoc == RightAssoc:
		action = sh
	default:
		action = reduce
	}
	tracer().Debugf("    conflict on %v between %v and %v resolved to %v", T, sh, reduce, action)
	return action, nil
}

// === Parsing Table =========================================================

// ParsingTable is a combined ACTION and GOTO table for an SLR(1) parser.
// It is immutable after construction and may be read concurrently.
type ParsingTable struct {
	ga      *Analysis
	dfa     *CFSM
	actions *sparse.IntMatrix // states x terminals
	gotos   *sparse.IntMatrix // states x non-terminals
}

// StateCount returns the number of states, i.e. rows of the table.
func (t *ParsingTable) StateCount() int {
	return t.actions.Rows()
}

// Action returns the action for a state and a lookahead terminal.
func (t *ParsingTable) Action(state int, T Terminal) (Action, bool) {
	j, ok := t.ga.tindex[T]
	if !ok {
		return Action{}, false
	}
	v, ok := t.actions.At(state, j)
	if !ok {
		return Action{}, false
	}
	return decodeAction(v), true
}

// Goto returns the state to go to after reducing A in state.
func (t *ParsingTable) Goto(state int, A NonTerminal) (int, bool) {
	j, ok := t.ga.ntindex[A]
	if !ok {
		return 0, false
	}
	v, ok := t.gotos.At(state, j)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// EachAction calls f for every action of a state, ordered by terminal, until
// f returns false.
func (t *ParsingTable) EachAction(state int, f func(T Terminal, a Action) bool) {
	t.actions.EachInRow(state, func(j int, v int32) bool {
		return f(t.ga.terminals[j], decodeAction(v))
	})
}

// Header returns the column labels of the table: a state column, followed
// by terminals and non-terminals.
func (t *ParsingTable) Header() []string {
	h := make([]string, 0, 1+len(t.ga.terminals)+len(t.ga.nonterminals))
	h = append(h, "state")
	for _, T := range t.ga.terminals {
		h = append(h, T.Name())
	}
	for _, A := range t.ga.nonterminals {
		h = append(h, A.Name())
	}
	return h
}

// TableData returns the table as rows of strings, with a header row first.
// Shift entries are shown as the target state, reduce entries as r<rule>,
// accept as "acc".
func (t *ParsingTable) TableData() [][]string {
	data := [][]string{t.Header()}
	for i := 0; i < t.StateCount(); i++ {
		row := make([]string, len(data[0]))
		row[0] = strconv.Itoa(i)
		for j, T := range t.ga.terminals {
			if a, ok := t.Action(i, T); ok {
				row[1+j] = a.String()
			}
		}
		for j, A := range t.ga.nonterminals {
			if s, ok := t.Goto(i, A); ok {
				row[1+len(t.ga.terminals)+j] = strconv.Itoa(s)
			}
		}
		data = append(data, row)
	}
	return data
}

// Render prints the table to w.
func (t *ParsingTable) Render(w io.Writer) error {
	return pterm.DefaultTable.WithHasHeader().WithData(t.TableData()).WithWriter(w).Render()
}

// String renders the table to a string.
func (t *ParsingTable) String() string {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(t.TableData()).Srender()
	if err != nil {
		return err.Error()
	}
	return s
}

// AsHTML exports the table in HTML-format.
func (t *ParsingTable) AsHTML(w io.Writer) {
	data := t.TableData()
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, "<img src=\"cfsm.png\"/><p>")
	io.WriteString(w, fmt.Sprintf("ACTION table of size = %d, GOTO table of size = %d<p>",
		t.actions.Len(), t.gotos.Len()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	for i, row := range data {
		if i == 0 {
			io.WriteString(w, "<tr bgcolor=#cccccc>")
		} else {
			io.WriteString(w, "<tr>")
		}
		for _, td := range row {
			if td == "" {
				io.WriteString(w, "<td>&nbsp;</td>")
				continue
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, html.EscapeString(td))
			io.WriteString(w, "</td>")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
