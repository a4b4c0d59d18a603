package lr

import (
	"strings"
)

// Symbol is a grammar symbol, i.e. either a Terminal or a NonTerminal.
//
// Symbols are compared by name. Terminals and non-terminals live in separate
// namespaces: Terminal("E") and NonTerminal("E") are different symbols.
type Symbol interface {
	Name() string
	IsTerminal() bool
	String() string
}

// Terminal is a token category of a grammar. Concrete tokens are related to
// terminals by a matcher during parsing.
type Terminal string

// Name returns the display name of t.
func (t Terminal) Name() string { return string(t) }

// IsTerminal is true for terminals.
func (t Terminal) IsTerminal() bool { return true }

func (t Terminal) String() string { return string(t) }

// NonTerminal is a grammar symbol expanded by one or more rules.
type NonTerminal string

// Name returns the display name of n.
func (n NonTerminal) Name() string { return string(n) }

// IsTerminal is false for non-terminals.
func (n NonTerminal) IsTerminal() bool { return false }

func (n NonTerminal) String() string { return string(n) }

// EOF is the end-of-input terminal. It matches the end of a token stream and
// is never handed to a matcher.
const EOF Terminal = "#eof"

// CompareSymbols defines a total order on symbols: by name first, and
// terminals before non-terminals of the same name.
func CompareSymbols(a, b Symbol) int {
	if c := strings.Compare(a.Name(), b.Name()); c != 0 {
		return c
	}
	if a.IsTerminal() == b.IsTerminal() {
		return 0
	}
	if a.IsTerminal() {
		return -1
	}
	return 1
}

// symbolComparator adapts CompareSymbols for gods containers.
func symbolComparator(a, b interface{}) int {
	return CompareSymbols(a.(Symbol), b.(Symbol))
}
