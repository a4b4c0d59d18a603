package lr

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
)

// Closure is a canonical set of items. It identifies a state of the CFSM.
// Items are held sorted by (rule, dot), and a digest over this sorted list
// serves as a hash key for finding states with identical item sets.
type Closure struct {
	items []Item
	key   string
}

// closureKey is the shape we hand to structhash. Only rule numbers and dot
// positions take part, rules themselves (with their reducers) do not.
type closureKey struct {
	Items []itemKey
}

type itemKey struct {
	Rule int
	Dot  int
}

// newClosure wraps a list of items, which has to be sorted and free of
// duplicates.
func newClosure(items []Item) *Closure {
	c := &Closure{items: items}
	k := closureKey{Items: make([]itemKey, len(items))}
	for i, item := range items {
		k.Items[i] = itemKey{Rule: item.rule.ID, Dot: item.dot}
	}
	hash, err := structhash.Hash(k, 1)
	if err != nil {
		hash = fmt.Sprintf("%v", k.Items)
	}
	c.key = hash
	return c
}

// Items returns the items of c, sorted by rule number and dot position.
func (c *Closure) Items() []Item {
	return c.items
}

// Size returns the number of items in c.
func (c *Closure) Size() int {
	return len(c.items)
}

// Key returns the digest of c's item set.
func (c *Closure) Key() string {
	return c.key
}

// Equals is true if c and other contain the same items.
func (c *Closure) Equals(other *Closure) bool {
	if c.key != other.key || len(c.items) != len(other.items) {
		return false
	}
	for i, item := range c.items {
		if compareItems(item, other.items[i]) != 0 {
			return false
		}
	}
	return true
}

// Kernel returns the items of c which are not start items, plus the start
// items of rule 0.
func (c *Closure) Kernel() []Item {
	var kernel []Item
	for _, item := range c.items {
		if item.dot > 0 || item.rule.ID == 0 {
			kernel = append(kernel, item)
		}
	}
	return kernel
}

func (c *Closure) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, item := range c.items {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}
