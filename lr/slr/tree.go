package slr

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/slang"
	"github.com/npillmayer/slang/lr"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Node is an inner node of a raw parse tree, created by reducing a rule.
// Children are input tokens or *Node values, in pattern order.
type Node struct {
	Rule     *lr.Rule
	Children []interface{}
	Span     slang.Span // input span covered, if tokens carry spans
}

func (n *Node) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(n.Rule.LHS.Name())
	for _, c := range n.Children {
		b.WriteByte(' ')
		b.WriteString(leafString(c))
	}
	b.WriteString(")")
	return b.String()
}

// Transform folds a raw parse tree bottom-up. Leaves are returned unchanged.
// For a node, every child is transformed first, then the rule's reducer is
// applied to the transformed children. Rules without a reducer return the
// children as a []interface{}. Errors from reducers are returned unchanged.
func Transform(tree interface{}) (interface{}, error) {
	node, ok := tree.(*Node)
	if !ok {
		return tree, nil
	}
	children := make([]interface{}, len(node.Children))
	for i, c := range node.Children {
		v, err := Transform(c)
		if err != nil {
			return nil, err
		}
		children[i] = v
	}
	if node.Rule.Reducer == nil {
		return children, nil
	}
	return node.Rule.Reducer(children)
}

// PrintTree prints a raw parse tree, one node per line, indented by depth.
// Nodes are shown by their rule, leaves by their lexeme.
func PrintTree(w io.Writer, tree interface{}) {
	printTree(w, tree, 0)
}

func printTree(w io.Writer, tree interface{}, depth int) {
	indent := strings.Repeat("  ", depth)
	node, ok := tree.(*Node)
	if !ok {
		fmt.Fprintf(w, "%s%s\n", indent, leafString(tree))
		return
	}
	fmt.Fprintf(w, "%s%v\n", indent, node.Rule)
	for _, c := range node.Children {
		printTree(w, c, depth+1)
	}
}

// RenderTree renders a raw parse tree to w as a pterm tree.
func RenderTree(w io.Writer, tree interface{}) error {
	var ll pterm.LeveledList
	ll = leveled(ll, tree, 0)
	root := putils.TreeFromLeveledList(ll)
	return pterm.DefaultTree.WithRoot(root).WithWriter(w).Render()
}

func leveled(ll pterm.LeveledList, tree interface{}, level int) pterm.LeveledList {
	node, ok := tree.(*Node)
	if !ok {
		return append(ll, pterm.LeveledListItem{Level: level, Text: leafString(tree)})
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: node.Rule.String()})
	for _, c := range node.Children {
		ll = leveled(ll, c, level+1)
	}
	return ll
}

func leafString(leaf interface{}) string {
	switch x := leaf.(type) {
	case *Node:
		return x.String()
	case slang.Token:
		return x.Lexeme()
	case string:
		return x
	}
	return fmt.Sprintf("%v", leaf)
}
