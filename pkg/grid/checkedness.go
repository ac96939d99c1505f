package grid

import "errors"

// ErrUncheckedCell is returned when a white cell does not belong to both an
// across run and a down run of length >= 2 — i.e. some letter in the grid
// would be determined by only one of the two crossing words.
var ErrUncheckedCell = errors.New("grid contains a white cell not checked in both directions")

// isFullyChecked reports whether every white cell lies in an across run and
// a down run each of length >= 2. Combined with hasShortWords' floor of 3,
// this means every letter cell ends up checked by two words of length >= 3.
func isFullyChecked(grid *Grid) bool {
	if grid == nil || grid.Size == 0 {
		return false
	}

	acrossRun := runLengths(grid, ACROSS)
	downRun := runLengths(grid, DOWN)

	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			if grid.Cells[row][col].IsBlack {
				continue
			}
			if acrossRun[row][col] < 2 || downRun[row][col] < 2 {
				return false
			}
		}
	}
	return true
}

// runLengths returns, for each cell, the length of the maximal white run
// containing it in the given direction (0 for black cells).
func runLengths(grid *Grid, dir Direction) [][]int {
	lengths := make([][]int, grid.Size)
	for i := range lengths {
		lengths[i] = make([]int, grid.Size)
	}

	if dir == ACROSS {
		for row := 0; row < grid.Size; row++ {
			col := 0
			for col < grid.Size {
				if grid.Cells[row][col].IsBlack {
					col++
					continue
				}
				start := col
				for col < grid.Size && !grid.Cells[row][col].IsBlack {
					col++
				}
				for c := start; c < col; c++ {
					lengths[row][c] = col - start
				}
			}
		}
		return lengths
	}

	for col := 0; col < grid.Size; col++ {
		row := 0
		for row < grid.Size {
			if grid.Cells[row][col].IsBlack {
				row++
				continue
			}
			start := row
			for row < grid.Size && !grid.Cells[row][col].IsBlack {
				row++
			}
			for r := start; r < row; r++ {
				lengths[r][col] = row - start
			}
		}
	}
	return lengths
}
