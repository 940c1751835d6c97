package domain

import "github.com/pkg/errors"

// Board is a copy of the grid contents. Row 0 is the top row.
type Board [Rows][Columns]Occupant

// Ints flattens the board to the [][]int shape sent over the wire.
func (b Board) Ints() [][]int {
	out := make([][]int, Rows)
	for r := range b {
		out[r] = make([]int, Columns)
		for c, o := range b[r] {
			out[r][c] = int(o)
		}
	}
	return out
}

// Grid owns the cell occupancy of a single game.
type Grid struct {
	cells Board
}

func NewGrid() *Grid {
	return &Grid{}
}

// GridFromBoard builds a grid holding a copy of b.
func GridFromBoard(b Board) *Grid {
	return &Grid{cells: b}
}

func InBounds(row, column int) bool {
	return row >= 0 && row < Rows && column >= 0 && column < Columns
}

func (g *Grid) OccupantAt(row, column int) (Occupant, error) {
	if !InBounds(row, column) {
		return Empty, errors.Wrapf(ErrOutOfBounds, "read at (%d, %d)", row, column)
	}
	return g.cells[row][column], nil
}

// SetOccupant writes without checking gravity, callers keep that invariant.
func (g *Grid) SetOccupant(row, column int, o Occupant) error {
	if !InBounds(row, column) {
		return errors.Wrapf(ErrOutOfBounds, "write at (%d, %d)", row, column)
	}
	g.cells[row][column] = o
	return nil
}

// TopAvailableRow scans from the bottom row up and returns the first empty
// row of the column, or NotFound.
func (g *Grid) TopAvailableRow(column int) int {
	if column < 0 || column >= Columns {
		return NotFound
	}
	for row := Rows - 1; row >= 0; row-- {
		if g.cells[row][column] == Empty {
			return row
		}
	}
	return NotFound
}

// here row 0 represents the top row (0 -> top and 5 -> bottom)
func (g *Grid) IsColumnFull(column int) bool {
	if column < 0 || column >= Columns {
		return true
	}
	return g.cells[0][column] != Empty
}

func (g *Grid) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if !g.IsColumnFull(c) {
			return false
		}
	}
	return true
}

// ValidColumns lists the columns that can still take a disc, left to right.
func (g *Grid) ValidColumns() []int {
	cols := []int{}
	for c := 0; c < Columns; c++ {
		if !g.IsColumnFull(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for r := range g.cells {
		for _, o := range g.cells[r] {
			if o != Empty {
				n++
			}
		}
	}
	return n
}

func (g *Grid) Clear() {
	g.cells = Board{}
}

// Snapshot returns a copy that is safe to hand to listeners.
func (g *Grid) Snapshot() Board {
	return g.cells
}

// Drop places o in the lowest empty cell of the column.
func (g *Grid) Drop(column int, o Occupant) (int, error) {
	if column < 0 || column >= Columns {
		return NotFound, errors.Wrapf(ErrOutOfBounds, "column %d", column)
	}
	row := g.TopAvailableRow(column)
	if row == NotFound {
		return NotFound, ErrColumnFull
	}
	g.cells[row][column] = o
	return row, nil
}

// SimulateMove drops o into a copy of b and returns the copy with the row used.
func SimulateMove(b Board, column int, o Occupant) (Board, int, error) {
	g := GridFromBoard(b)
	row, err := g.Drop(column, o)
	if err != nil {
		return b, NotFound, err
	}
	return g.cells, row, nil
}
