package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crossgen/fillengine/pkg/grid"
)

// entryData is one clue entry as it appears in an exported puzzle JSON file.
type entryData struct {
	Number int    `json:"number"`
	Answer string `json:"answer"`
	Length int    `json:"length"`
}

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate crossword puzzle files",
	Long: `Validate one or more exported puzzle JSON files for correctness.

Checks include:
  - Grid symmetry, connectivity, minimum word length, and checkedness
  - Every grid entry has a corresponding across/down answer of matching length

Examples:
  # Validate a single puzzle file
  crossgen validate --input puzzle.json

  # Validate all puzzles in a directory
  crossgen validate --input ./puzzles`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "input file or directory to validate (required)")
	validateCmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if verbosity > 0 {
		fmt.Printf("Validating: %s\n", validateInput)
	}

	info, err := os.Stat(validateInput)
	if err != nil {
		return fmt.Errorf("failed to access input path: %w", err)
	}

	var filesToValidate []string
	if info.IsDir() {
		files, err := filepath.Glob(filepath.Join(validateInput, "*.json"))
		if err != nil {
			return fmt.Errorf("failed to list directory: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no .json files found in directory: %s", validateInput)
		}
		filesToValidate = files
	} else {
		filesToValidate = []string{validateInput}
	}

	validFiles, invalidFiles := 0, 0
	for _, filePath := range filesToValidate {
		if verbosity > 0 {
			fmt.Printf("\nValidating: %s\n", filePath)
		}

		valid, err := validatePuzzleFile(filePath)
		switch {
		case err != nil:
			fmt.Printf("FAIL %s: ERROR - %v\n", filepath.Base(filePath), err)
			invalidFiles++
		case !valid:
			invalidFiles++
		default:
			if verbosity > 0 {
				fmt.Printf("OK %s: VALID\n", filepath.Base(filePath))
			}
			validFiles++
		}
	}

	fmt.Printf("\nValidation Summary:\n")
	fmt.Printf("  Total files:   %d\n", len(filesToValidate))
	fmt.Printf("  Valid:         %d\n", validFiles)
	fmt.Printf("  Invalid:       %d\n", invalidFiles)

	if invalidFiles > 0 {
		os.Exit(1)
	}
	return nil
}

// validatePuzzleFile checks a single exported puzzle JSON file, returning
// whether it passed and an error only for files that could not be parsed.
func validatePuzzleFile(filePath string) (bool, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	var doc struct {
		Grid   [][]string  `json:"grid"`
		Across []entryData `json:"across"`
		Down   []entryData `json:"down"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("invalid JSON format: %w", err)
	}
	if len(doc.Grid) == 0 {
		fmt.Printf("FAIL %s: INVALID - empty grid\n", filepath.Base(filePath))
		return false, nil
	}

	g, err := gridFromCells(doc.Grid)
	if err != nil {
		return false, err
	}

	var errs []string
	if result := grid.ValidateStructure(g, 0); !result.OK {
		errs = append(errs, result.Reason.Error())
	}
	errs = append(errs, entryCompletenessErrors(g, doc.Across, doc.Down)...)

	if len(errs) > 0 {
		fmt.Printf("FAIL %s: INVALID\n", filepath.Base(filePath))
		for _, e := range errs {
			fmt.Printf("   - %s\n", e)
		}
		return false, nil
	}
	return true, nil
}

// gridFromCells rebuilds a grid.Grid (including its slots) from an exported
// puzzle's letter/black-cell grid.
func gridFromCells(cells [][]string) (*grid.Grid, error) {
	size := len(cells)
	g := grid.NewEmptyGrid(grid.GridConfig{Size: size})

	for row := 0; row < size; row++ {
		if len(cells[row]) != size {
			return nil, fmt.Errorf("row %d has %d columns, want %d", row, len(cells[row]), size)
		}
		for col, cell := range cells[row] {
			if cell == "." || cell == "" {
				g.Cells[row][col].IsBlack = true
				continue
			}
			g.Cells[row][col].Letter = rune(cell[0])
		}
	}

	grid.EnumerateSlots(g)
	return g, nil
}

// entryCompletenessErrors checks that every slot the grid enumerates has a
// matching provided entry of the same clue number and length, and that no
// provided entry is empty or orphaned.
func entryCompletenessErrors(g *grid.Grid, across, down []entryData) []string {
	var errs []string

	expected := make(map[[2]int]int) // (number, direction) -> length
	for _, s := range g.Slots {
		expected[[2]int{s.Number, int(s.Direction)}] = s.Length
	}

	check := func(entries []entryData, dir grid.Direction, label string) {
		provided := make(map[int]bool, len(entries))
		for _, e := range entries {
			provided[e.Number] = true
			if strings.TrimSpace(e.Answer) == "" {
				errs = append(errs, fmt.Sprintf("%s entry %d has an empty answer", label, e.Number))
			}
			wantLen, ok := expected[[2]int{e.Number, int(dir)}]
			if !ok {
				errs = append(errs, fmt.Sprintf("%s entry %d has no corresponding slot in the grid", label, e.Number))
				continue
			}
			if e.Length != wantLen {
				errs = append(errs, fmt.Sprintf("%s entry %d: length mismatch (grid wants %d, got %d)", label, e.Number, wantLen, e.Length))
			}
		}
		for key, length := range expected {
			if key[1] != int(dir) {
				continue
			}
			if !provided[key[0]] {
				errs = append(errs, fmt.Sprintf("missing %s entry %d (length %d)", label, key[0], length))
			}
		}
	}

	check(across, grid.ACROSS, "across")
	check(down, grid.DOWN, "down")
	return errs
}
