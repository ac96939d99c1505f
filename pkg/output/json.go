// Package output renders a solved puzzle.Puzzle into the wire formats
// consumers ask for. Only JSON export is in scope; document/vector
// rendering (.puz, ipuz, PDF) is a consumer concern, not core.
package output

import (
	"encoding/json"
	"time"

	"github.com/crossgen/fillengine/pkg/puzzle"
)

// EntryJSON is one clue entry in the JSON export.
type EntryJSON struct {
	Number int    `json:"number"`
	Answer string `json:"answer"`
	Length int    `json:"length"`
}

// PuzzleJSON is the exported shape of a solved puzzle.
type PuzzleJSON struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Difficulty string    `json:"difficulty"`
	Theme      string    `json:"theme,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`

	Grid [][]string `json:"grid"` // letters, or "." for a black cell

	Across []EntryJSON `json:"across"`
	Down   []EntryJSON `json:"down"`
}

// FormatJSON converts a solved puzzle.Puzzle into its JSON-ready shape.
func FormatJSON(p *puzzle.Puzzle) *PuzzleJSON {
	size := p.Grid.Size
	grid := make([][]string, size)
	for r := 0; r < size; r++ {
		grid[r] = make([]string, size)
		for c := 0; c < size; c++ {
			cell := p.Grid.Cells[r][c]
			if cell.IsBlack || cell.Letter == 0 {
				grid[r][c] = "."
			} else {
				grid[r][c] = string(cell.Letter)
			}
		}
	}

	return &PuzzleJSON{
		ID:         p.Metadata.ID,
		Title:      p.Metadata.Title,
		Author:     p.Metadata.Author,
		Difficulty: string(p.Metadata.Difficulty),
		Theme:      p.Metadata.Theme,
		CreatedAt:  p.Metadata.CreatedAt,
		Grid:       grid,
		Across:     toEntryJSON(p.Across),
		Down:       toEntryJSON(p.Down),
	}
}

func toEntryJSON(entries []puzzle.Entry) []EntryJSON {
	out := make([]EntryJSON, len(entries))
	for i, e := range entries {
		out[i] = EntryJSON{Number: e.Number, Answer: e.Answer, Length: e.Length}
	}
	return out
}

// MarshalJSON serializes a PuzzleJSON to JSON bytes.
func (p *PuzzleJSON) MarshalJSON() ([]byte, error) {
	type Alias PuzzleJSON
	return json.Marshal((*Alias)(p))
}

// ToJSON converts a solved puzzle.Puzzle directly to indented JSON bytes.
func ToJSON(p *puzzle.Puzzle) ([]byte, error) {
	return json.MarshalIndent(FormatJSON(p), "", "  ")
}
