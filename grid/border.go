package grid

import "github.com/dasdy/multitile/model"

// Resolve picks the style for the cell at (row, col) of a numRows×numCols
// grid under the given border pattern. Interior cells, and any cell when
// pattern is nil, resolve to Normal.
//
// The rule order matters: corners are checked before plain edges, so a cell
// that is both top and left (including the degenerate 1×1 and 1×N grids)
// gets the corner token rather than either edge.
func Resolve(row, col, numRows, numCols int, pattern *model.BorderPattern) model.StyleToken {
	isTop := row == 0
	isBottom := row == numRows-1
	isLeft := col == 0
	isRight := col == numCols-1

	if !isTop && !isBottom && !isLeft && !isRight {
		return model.Normal
	}

	if pattern == nil {
		return model.Normal
	}

	switch {
	case isTop && isLeft && pattern.Top && pattern.Left:
		return model.TopLeftCorner
	case isTop && isRight && pattern.Top && pattern.Right:
		return model.TopRightCorner
	case isBottom && isLeft && pattern.Bottom && pattern.Left:
		return model.BottomLeftCorner
	case isBottom && isRight && pattern.Bottom && pattern.Right:
		return model.BottomRightCorner
	case isTop && pattern.Top:
		return model.TopEdge
	case isBottom && pattern.Bottom:
		return model.BottomEdge
	case isLeft && pattern.Left:
		return model.LeftEdge
	case isRight && pattern.Right:
		return model.RightEdge
	default:
		return model.Normal
	}
}

// ApplyPattern rewrites every cell of g with Resolve's answer for the
// current dimensions. It cannot fail for a valid grid.
func ApplyPattern(g *Grid, pattern *model.BorderPattern) {
	rows, cols := g.Rows(), g.Cols()

	for i := range rows {
		for j := range cols {
			// Set cannot fail here: the loop ranges over current dimensions.
			_ = g.Set(i, j, Resolve(i, j, rows, cols, pattern))
		}
	}
}
