package runtime

import (
	"fmt"
	"strings"
)

// This module implements environments of memory frames.
// Memory frames are used by an interpreter to hold the values of
// bound variables.

// MemoryFrame is a memory frame, representing the value of a single
// variable. Frames link to their parent, forming an environment. The
// nil frame is the empty environment.
type MemoryFrame struct {
	Name   string
	Value  interface{}
	Parent *MemoryFrame
}

// Push returns a new environment, extending mf by a frame for a variable.
// mf is not modified; it may be nil.
func (mf *MemoryFrame) Push(nm string, value interface{}) *MemoryFrame {
	return &MemoryFrame{
		Name:   nm,
		Value:  value,
		Parent: mf,
	}
}

func (mf *MemoryFrame) String() string {
	if mf == nil {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[")
	mf.Each(func(i int, f *MemoryFrame) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%s=%v", f.Name, f.Value))
	})
	b.WriteString("]")
	return b.String()
}

// Depth returns the number of frames in the environment.
func (mf *MemoryFrame) Depth() int {
	d := 0
	for ; mf != nil; mf = mf.Parent {
		d++
	}
	return d
}

// Lookup returns the i-th frame of the environment, with mf being the 0-th.
func (mf *MemoryFrame) Lookup(i int) (*MemoryFrame, error) {
	f := mf
	for n := 0; n < i && f != nil; n++ {
		f = f.Parent
	}
	if i < 0 || f == nil {
		return nil, unboundIndex(i)
	}
	return f, nil
}

// Each calls f for every frame, starting with mf at index 0.
func (mf *MemoryFrame) Each(f func(i int, frame *MemoryFrame)) {
	for i := 0; mf != nil; mf, i = mf.Parent, i+1 {
		f(i, mf)
	}
}
