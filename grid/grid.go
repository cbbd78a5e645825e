// Package grid implements the toroidal character grid and instruction
// pointer that the interpreter core executes over.
package grid

import "github.com/sarchlab/zfunge/ferr"

// Grid is an immutable R x C rectangle of characters. Cells are
// addressed as cells[y][x]: row indexes the horizontal axis (x), col
// indexes the vertical axis (y) — this convention is part of the
// contract because the IP exposes (row, col) == (X, Y) to debuggers
// and callbacks, and must be reproduced bit-identically.
type Grid struct {
	cells         [][]rune
	width, height int
}

// New validates that every row has identical length and builds an
// immutable grid. A grid with zero rows or zero columns is rejected.
func New(rows [][]rune) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ferr.Shape("grid has zero rows")
	}

	width := len(rows[0])
	if width == 0 {
		return nil, ferr.Shape("grid has zero columns")
	}

	for _, row := range rows {
		if len(row) != width {
			return nil, ferr.Shape("row has unequal length after padding")
		}
	}

	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = append([]rune(nil), row...)
	}

	return &Grid{cells: cells, width: width, height: len(rows)}, nil
}

// IP returns the initial instruction pointer at (0, 0) sized to this
// grid's dimensions, with no delta set.
func (g *Grid) IP() IP {
	return NewIP(g.width, g.height)
}

// At is a total function: IP's invariants guarantee it is always
// in-bounds.
func (g *Grid) At(ip IP) rune {
	return g.cells[ip.Y][ip.X]
}

// Width and Height expose the grid's dimensions.
func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Rows returns the grid's rows for dump/inspection purposes. Callers
// must not mutate the returned slices.
func (g *Grid) Rows() [][]rune {
	return g.cells
}
