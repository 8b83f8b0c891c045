// Package grid holds the mutable rows×cols matrix of cell styles edited by
// the layout tools, plus the border-pattern resolver that assigns edge and
// corner styles to boundary cells.
package grid

import (
	"errors"
	"fmt"
	"iter"

	"github.com/dasdy/multitile/model"
)

// ErrOutOfRange is returned by Get/Set when indices fall outside the
// current dimensions. This is always a caller bug, not bad user input.
var ErrOutOfRange = errors.New("cell index out of range")

// Grid is a rectangular, at least 1×1, mutable matrix of style tokens.
// It is not safe for concurrent mutation; callers serialize access.
type Grid struct {
	cells [][]model.StyleToken
}

// New creates a rows×cols grid filled with model.Normal.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid dimensions must be at least 1x1, got %dx%d", rows, cols)
	}

	cells := make([][]model.StyleToken, rows)
	for i := range cells {
		cells[i] = make([]model.StyleToken, cols)
	}

	return &Grid{cells: cells}, nil
}

// Rows returns the current number of rows.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the current number of columns.
func (g *Grid) Cols() int {
	return len(g.cells[0])
}

// Get returns the token at (row, col), or ErrOutOfRange.
func (g *Grid) Get(row, col int) (model.StyleToken, error) {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return model.Normal, fmt.Errorf("get (%d,%d) in %dx%d grid: %w", row, col, g.Rows(), g.Cols(), ErrOutOfRange)
	}

	return g.cells[row][col], nil
}

// Set stores a token at (row, col), or returns ErrOutOfRange.
func (g *Grid) Set(row, col int, tok model.StyleToken) error {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return fmt.Errorf("set (%d,%d) in %dx%d grid: %w", row, col, g.Rows(), g.Cols(), ErrOutOfRange)
	}

	g.cells[row][col] = tok

	return nil
}

// Resize trims trailing rows/columns when shrinking and appends
// Normal-filled ones when growing. The two axes are handled independently,
// and anything trimmed is forgotten: growing back yields Normal cells.
func (g *Grid) Resize(newRows, newCols int) error {
	if newRows < 1 || newCols < 1 {
		return fmt.Errorf("grid dimensions must be at least 1x1, got %dx%d", newRows, newCols)
	}

	if newRows < len(g.cells) {
		g.cells = g.cells[:newRows]
	}

	for len(g.cells) < newRows {
		g.cells = append(g.cells, make([]model.StyleToken, newCols))
	}

	for i, row := range g.cells {
		if newCols < len(row) {
			g.cells[i] = row[:newCols]

			continue
		}

		for len(g.cells[i]) < newCols {
			g.cells[i] = append(g.cells[i], model.Normal)
		}
	}

	return nil
}

// RowTokens iterates over the grid row by row, top to bottom. Rows are
// copied, so holding on to one or re-running the sequence is fine.
func (g *Grid) RowTokens() iter.Seq[[]model.StyleToken] {
	return func(yield func([]model.StyleToken) bool) {
		for _, row := range g.cells {
			out := make([]model.StyleToken, len(row))
			copy(out, row)

			if !yield(out) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]model.StyleToken, len(g.cells))
	for i, row := range g.cells {
		cells[i] = make([]model.StyleToken, len(row))
		copy(cells[i], row)
	}

	return &Grid{cells: cells}
}
