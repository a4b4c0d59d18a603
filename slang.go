package slang

import "fmt"

// TokType categorizes tokens. Constants are defined by scanners and
// front-ends.
type TokType int

// Token is what the scanners of this module produce. The parse engine treats
// tokens as opaque values and relates them to terminals through a matcher, so
// Token is merely the shape our own scanners and front-ends agree on.
//
// A token for an integer could look like
//
//	TokType = Int    // kind of token
//	Lexeme  = "34"   // as it appeared in the input
//	Value   = 34     // optional converted value
//	Span    = 0…2    // occupied input positions
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// Span is a run of input positions, from a start position up to the position
// just behind the end.
type Span [2]uint64

// From returns the start position.
func (s Span) From() uint64 { return s[0] }

// To returns the position behind the end.
func (s Span) To() uint64 { return s[1] }

// Len returns the number of positions covered.
func (s Span) Len() uint64 { return s[1] - s[0] }

// IsNull is true for the zero span. Nodes without any tokens, and tokens not
// produced by a scanner, have null spans.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. Null spans are
// neutral.
func (s Span) Extend(other Span) Span {
	switch {
	case s.IsNull():
		return other
	case other.IsNull():
		return s
	}
	return Span{min(s[0], other[0]), max(s[1], other[1])}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
