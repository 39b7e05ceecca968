package structure

import (
	"fmt"
	"slices"
)

// Matrix is a rectangular grid of integers. Its extents never change.
type Matrix struct {
	rows, cols int
	cells      [][]int
}

// NewMatrix builds a Matrix from rows. Every row must have the same length.
func NewMatrix(rows [][]int) *Matrix {
	m := &Matrix{rows: len(rows), cells: make([][]int, len(rows))}
	if len(rows) > 0 {
		m.cols = len(rows[0])
	}
	for r, row := range rows {
		if len(row) != m.cols {
			panic(fmt.Sprintf("structure: matrix row %d has %d columns, want %d", r, len(row), m.cols))
		}
		m.cells[r] = slices.Clone(row)
	}

	return m
}

// Kind implements Structure.
func (m *Matrix) Kind() Kind { return KindMatrix }

// Rows returns the row extent.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column extent.
func (m *Matrix) Cols() int { return m.cols }

// At returns the cell at (r, c).
func (m *Matrix) At(r, c int) int {
	mustIndex("matrix row", r, m.rows)
	mustIndex("matrix column", c, m.cols)

	return m.cells[r][c]
}

// Set overwrites the cell at (r, c) and returns the previous value.
func (m *Matrix) Set(r, c, v int) int {
	mustIndex("matrix row", r, m.rows)
	mustIndex("matrix column", c, m.cols)
	old := m.cells[r][c]
	m.cells[r][c] = v

	return old
}

// Values returns a deep copy of the grid.
func (m *Matrix) Values() [][]int {
	out := make([][]int, m.rows)
	for r := range m.cells {
		out[r] = slices.Clone(m.cells[r])
	}

	return out
}

// Clone implements Structure.
func (m *Matrix) Clone() Structure { return NewMatrix(m.cells) }

// Equal implements Structure.
func (m *Matrix) Equal(other Structure) bool {
	o, ok := other.(*Matrix)
	if !ok || o.rows != m.rows || o.cols != m.cols {
		return false
	}
	for r := range m.cells {
		if !equalInts(m.cells[r], o.cells[r]) {
			return false
		}
	}

	return true
}

func (m *Matrix) String() string { return fmt.Sprint(m.cells) }
