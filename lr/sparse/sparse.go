/*
Package sparse implements a sparse matrix of int32 values, used to store the
ACTION and GOTO tables of LR parsers. Parsing tables are typically filled to
only a few percent.

Entries are kept per row, sorted by column, so that lookup is a binary search
within a row and rows may be iterated in column order.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sparse

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// IntMatrix is a sparse matrix of int32 with fixed dimensions.
//
//	M := sparse.NewIntMatrix(10, 10)
//	M.Set(2, 3, 4711)
//	v, ok := M.At(2, 3)    // 4711, true
//	_, ok = M.At(3, 2)     // ok == false
//
// Entries may be overwritten and cleared. The zero value is not usable.
type IntMatrix struct {
	rows  [][]entry
	ncols int
	count int
}

type entry struct {
	col   int
	value int32
}

// NewIntMatrix creates an empty matrix with m rows and n columns.
func NewIntMatrix(m, n int) *IntMatrix {
	return &IntMatrix{rows: make([][]entry, m), ncols: n}
}

// Rows returns the number of rows.
func (m *IntMatrix) Rows() int {
	return len(m.rows)
}

// Cols returns the number of columns.
func (m *IntMatrix) Cols() int {
	return m.ncols
}

// Len returns the number of entries set.
func (m *IntMatrix) Len() int {
	return m.count
}

func (m *IntMatrix) find(i, j int) (int, bool) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.ncols {
		panic(fmt.Sprintf("sparse: index (%d,%d) out of range %dx%d", i, j, len(m.rows), m.ncols))
	}
	return slices.BinarySearchFunc(m.rows[i], j, func(e entry, col int) int {
		return e.col - col
	})
}

// At returns the entry at (i,j), and false if there is none.
func (m *IntMatrix) At(i, j int) (int32, bool) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.ncols {
		return 0, false
	}
	k, found := m.find(i, j)
	if !found {
		return 0, false
	}
	return m.rows[i][k].value, true
}

// Set stores a value at (i,j), overwriting any previous entry. Indices
// outside the matrix' dimensions panic.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	k, found := m.find(i, j)
	if found {
		m.rows[i][k].value = value
		return m
	}
	m.rows[i] = slices.Insert(m.rows[i], k, entry{col: j, value: value})
	m.count++
	return m
}

// Clear removes the entry at (i,j), if any.
func (m *IntMatrix) Clear(i, j int) {
	if k, found := m.find(i, j); found {
		m.rows[i] = slices.Delete(m.rows[i], k, k+1)
		m.count--
	}
}

// EachInRow calls f for every entry in row i, in column order, until f
// returns false.
func (m *IntMatrix) EachInRow(i int, f func(j int, value int32) bool) {
	for _, e := range m.rows[i] {
		if !f(e.col, e.value) {
			return
		}
	}
}

func (m *IntMatrix) String() string {
	return fmt.Sprintf("sparse(%dx%d, %d entries)", len(m.rows), m.ncols, m.count)
}
