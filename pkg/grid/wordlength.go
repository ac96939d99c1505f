package grid

import "errors"

// ErrShortWords is returned when a grid contains a run of white cells
// shorter than MinWordLength.
var ErrShortWords = errors.New("grid contains words shorter than minimum allowed length")

// MinWordLength is the minimum run length allowed in either orientation.
const MinWordLength = 3

// hasShortWords reports whether the grid contains any across or down run
// with length in [2, MinWordLength), i.e. too short to be a word but not a
// lone unchecked cell. Runs of length 1 are the checkedness validator's
// concern, not this one.
func hasShortWords(grid *Grid) bool {
	if grid == nil || grid.Size == 0 {
		return false
	}

	for row := 0; row < grid.Size; row++ {
		run := 0
		for col := 0; col < grid.Size; col++ {
			if grid.Cells[row][col].IsBlack {
				if run > 1 && run < MinWordLength {
					return true
				}
				run = 0
			} else {
				run++
			}
		}
		if run > 1 && run < MinWordLength {
			return true
		}
	}

	for col := 0; col < grid.Size; col++ {
		run := 0
		for row := 0; row < grid.Size; row++ {
			if grid.Cells[row][col].IsBlack {
				if run > 1 && run < MinWordLength {
					return true
				}
				run = 0
			} else {
				run++
			}
		}
		if run > 1 && run < MinWordLength {
			return true
		}
	}

	return false
}
