package grid

// EnumerateSlots scans the grid for every maximal run of white cells in
// both orientations, assigns clue numbers in row-major reading order (a
// cell gets one number shared by the across and down slot it starts, if
// any), and replaces grid.Slots with the result. Runs of length 1 are
// skipped; validator checks (wordlength.go, checkedness.go) reject grids
// that still contain runs shorter than the required minimum.
func EnumerateSlots(grid *Grid) {
	grid.Slots = nil

	number := 1
	numberAt := make(map[[2]int]int)

	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			if grid.Cells[row][col].IsBlack {
				continue
			}

			startsAcross := (col == 0 || grid.Cells[row][col-1].IsBlack) &&
				col+1 < grid.Size && !grid.Cells[row][col+1].IsBlack
			startsDown := (row == 0 || grid.Cells[row-1][col].IsBlack) &&
				row+1 < grid.Size && !grid.Cells[row+1][col].IsBlack

			if startsAcross || startsDown {
				numberAt[[2]int{row, col}] = number
				grid.Cells[row][col].Number = number
				number++
			}
		}
	}

	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			if grid.Cells[row][col].IsBlack {
				continue
			}
			if col != 0 && !grid.Cells[row][col-1].IsBlack {
				continue
			}
			cells := []*Cell{}
			for c := col; c < grid.Size && !grid.Cells[row][c].IsBlack; c++ {
				cells = append(cells, grid.Cells[row][c])
			}
			if len(cells) >= 2 {
				grid.Slots = append(grid.Slots, &Slot{
					Number:    numberAt[[2]int{row, col}],
					Direction: ACROSS,
					StartRow:  row,
					StartCol:  col,
					Length:    len(cells),
					Cells:     cells,
				})
			}
		}
	}

	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			if grid.Cells[row][col].IsBlack {
				continue
			}
			if row != 0 && !grid.Cells[row-1][col].IsBlack {
				continue
			}
			cells := []*Cell{}
			for r := row; r < grid.Size && !grid.Cells[r][col].IsBlack; r++ {
				cells = append(cells, grid.Cells[r][col])
			}
			if len(cells) >= 2 {
				grid.Slots = append(grid.Slots, &Slot{
					Number:    numberAt[[2]int{row, col}],
					Direction: DOWN,
					StartRow:  row,
					StartCol:  col,
					Length:    len(cells),
					Cells:     cells,
				})
			}
		}
	}
}
