package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/crossgen/fillengine/pkg/grid"
	"github.com/crossgen/fillengine/pkg/oracle"
	"github.com/crossgen/fillengine/pkg/output"
	"github.com/crossgen/fillengine/pkg/puzzle"
	"github.com/crossgen/fillengine/pkg/skeleton"
	"github.com/crossgen/fillengine/pkg/wordsupply"
)

var (
	genCount      int
	genDifficulty string
	genSize       int
	genOutput     string
	genWordlist   string
	genOracle     string
	genCacheDB    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate crossword puzzles",
	Long: `Generate one or more crossword puzzles using constraint satisfaction fill.

Examples:
  # Generate 10 easy puzzles
  crossgen generate --wordlist words.txt --count 10 --difficulty easy --output ./puzzles

  # Generate a single hard 15x15 puzzle, consulting Datamuse when a slot's
  # domain empties
  crossgen generate --wordlist words.txt --difficulty hard --size 15 --oracle datamuse`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of puzzles to generate")
	generateCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "medium", "puzzle difficulty (easy, medium, hard, expert)")
	generateCmd.Flags().IntVarP(&genSize, "size", "s", 15, "grid size (odd, >= 5)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", ".", "output directory")
	generateCmd.Flags().StringVarP(&genWordlist, "wordlist", "w", "", "path to a Peter Broda format wordlist")
	generateCmd.Flags().StringVar(&genOracle, "oracle", "none", "word oracle for empty-domain recovery (none, datamuse)")
	generateCmd.Flags().StringVar(&genCacheDB, "cache-db", "./oracle_cache.db", "sqlite database caching oracle responses")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	difficulty, err := parseDifficulty(genDifficulty)
	if err != nil {
		return fmt.Errorf("invalid difficulty: %w", err)
	}

	if genWordlist == "" {
		return fmt.Errorf("--wordlist flag is required")
	}
	if verbosity > 0 {
		fmt.Printf("Loading wordlist from: %s\n", genWordlist)
	}

	words, err := wordsupply.LoadBrodaFile(genWordlist)
	if err != nil {
		return fmt.Errorf("failed to load wordlist: %w", err)
	}
	supply := wordsupply.New()
	supply.LoadBase(words)
	if verbosity > 0 {
		fmt.Printf("Loaded %d words\n", supply.Size())
	}

	wordOracle, err := setupOracle(genOracle, genCacheDB)
	if err != nil {
		return fmt.Errorf("failed to set up oracle: %w", err)
	}

	builder, err := skeleton.NewBuilder(nil)
	if err != nil {
		return fmt.Errorf("failed to load skeleton library: %w", err)
	}
	generator := puzzle.NewGenerator(builder, supply)

	if err := os.MkdirAll(genOutput, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Generating %d puzzle(s) with difficulty: %s\n", genCount, genDifficulty)

	for i := 1; i <= genCount; i++ {
		start := time.Now()
		fmt.Printf("[%d/%d] Generating puzzle... ", i, genCount)

		config := puzzle.Config{
			Size:       genSize,
			Difficulty: difficulty,
			Oracle:     wordOracle,
			Title:      fmt.Sprintf("Crossword Puzzle %d - %s", i, time.Now().Format("2006-01-02")),
			Author:     "crossgen",
		}

		puz, err := generator.GeneratePuzzle(ctx, config)
		if err != nil {
			fmt.Printf("FAILED\n")
			return fmt.Errorf("failed to generate puzzle %d: %w", i, err)
		}

		path := filepath.Join(genOutput, fmt.Sprintf("puzzle_%03d.json", i))
		data, err := output.ToJSON(puz)
		if err != nil {
			fmt.Printf("FAILED\n")
			return fmt.Errorf("failed to format puzzle %d: %w", i, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Printf("FAILED\n")
			return fmt.Errorf("failed to write puzzle %d: %w", i, err)
		}

		fmt.Printf("OK (%.1fs)\n", time.Since(start).Seconds())
	}

	fmt.Printf("\nSuccessfully generated %d puzzle(s) in %s\n", genCount, genOutput)
	return nil
}

// parseDifficulty converts string difficulty to grid.Difficulty.
func parseDifficulty(diff string) (grid.Difficulty, error) {
	switch strings.ToLower(diff) {
	case "easy":
		return grid.Easy, nil
	case "medium":
		return grid.Medium, nil
	case "hard":
		return grid.Hard, nil
	case "expert":
		return grid.Expert, nil
	default:
		return grid.Medium, fmt.Errorf("invalid difficulty: %s (must be easy, medium, hard, or expert)", diff)
	}
}

// setupOracle builds the empty-domain recovery oracle named by provider, or
// nil for "none" (recovery then always fails, which is fine for a rich
// enough wordlist).
func setupOracle(provider, cacheDBPath string) (oracle.Oracle, error) {
	switch strings.ToLower(provider) {
	case "none", "":
		return nil, nil
	case "datamuse":
		base := oracle.NewDatamuseOracle(10 * time.Second)

		db, err := openCacheDB(cacheDBPath)
		if err != nil {
			return nil, err
		}
		cached, err := oracle.NewSQLiteCache(db, base)
		if err != nil {
			return nil, fmt.Errorf("failed to create oracle cache: %w", err)
		}
		return cached, nil
	default:
		return nil, fmt.Errorf("invalid oracle: %s (must be none or datamuse)", provider)
	}
}

func openCacheDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	return db, nil
}
