package puzzle

import (
	"time"

	"github.com/crossgen/fillengine/pkg/grid"
)

// Entry is one filled slot in a solved puzzle: its clue number, orientation,
// and the word the solver placed there. Clue text is out of scope for this
// module (see pkg/puzzle doc) — callers needing clues generate them from
// Number/Direction/Answer against their own clue database.
type Entry struct {
	Number    int
	Direction grid.Direction
	Answer    string
	Length    int
}

// Metadata carries identifying information about a generated puzzle.
type Metadata struct {
	ID         string
	Title      string
	Author     string
	Difficulty grid.Difficulty
	Theme      string
	CreatedAt  time.Time
}

// Puzzle is a complete, solved crossword: a filled grid, its entries split
// by orientation and sorted by clue number, and identifying metadata.
type Puzzle struct {
	Grid     *grid.Grid
	Across   []Entry
	Down     []Entry
	Metadata Metadata
}
