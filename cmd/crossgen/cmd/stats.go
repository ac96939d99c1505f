package cmd

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
)

var statsDB string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display oracle cache statistics",
	Long: `Display statistics about a word oracle's sqlite cache database.

Shows information about:
  - Total cached patterns and words
  - Patterns with the most cached words
  - Most frequently cached words across patterns

Examples:
  # Show stats for the default cache location
  crossgen stats

  # Show stats for a custom cache database
  crossgen stats --db /path/to/oracle_cache.db`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsDB, "db", "d", "", "path to oracle cache database (default: ./oracle_cache.db)")
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath := statsDB
	if dbPath == "" {
		dbPath = "./oracle_cache.db"
	}

	if verbosity > 0 {
		fmt.Printf("Reading cache database: %s\n", dbPath)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("cache database not found at %s", dbPath)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	fmt.Printf("\nOracle Cache Statistics\n")
	fmt.Printf("=======================\n")
	fmt.Printf("Database: %s\n\n", dbPath)

	if err := displayCacheTotals(db); err != nil {
		return err
	}
	if err := displayPatternsWithMostWords(db); err != nil {
		return err
	}
	if err := displayMostCommonWords(db); err != nil {
		return err
	}

	return nil
}

func displayCacheTotals(db *sql.DB) error {
	var patterns, rows int
	err := db.QueryRow(`SELECT COUNT(DISTINCT pattern), COUNT(*) FROM oracle_cache`).Scan(&patterns, &rows)
	if err != nil {
		return fmt.Errorf("failed to query cache totals: %w", err)
	}

	fmt.Println("Cache Totals:")
	fmt.Println("-------------")
	fmt.Printf("  Distinct patterns: %d\n", patterns)
	fmt.Printf("  Cached words:      %d\n\n", rows)
	return nil
}

func displayPatternsWithMostWords(db *sql.DB) error {
	fmt.Println("Patterns With the Most Cached Words:")
	fmt.Println("-------------------------------------")

	rows, err := db.Query(`
		SELECT pattern, COUNT(*) as count
		FROM oracle_cache
		GROUP BY pattern
		ORDER BY count DESC, pattern
		LIMIT 10
	`)
	if err != nil {
		return fmt.Errorf("failed to query patterns: %w", err)
	}
	defer rows.Close()

	hasRows := false
	for rows.Next() {
		hasRows = true
		var pattern string
		var count int
		if err := rows.Scan(&pattern, &count); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
		fmt.Printf("  %-20s: %d word(s)\n", pattern, count)
	}
	if !hasRows {
		fmt.Println("  No cached patterns found")
	}
	fmt.Println()

	return rows.Err()
}

func displayMostCommonWords(db *sql.DB) error {
	fmt.Println("Most Common Cached Words:")
	fmt.Println("-------------------------")

	rows, err := db.Query(`
		SELECT word, COUNT(*) as count
		FROM oracle_cache
		GROUP BY word
		ORDER BY count DESC, word
		LIMIT 10
	`)
	if err != nil {
		return fmt.Errorf("failed to query most common words: %w", err)
	}
	defer rows.Close()

	hasRows := false
	for rows.Next() {
		hasRows = true
		var word string
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
		fmt.Printf("  %-20s: appears in %d pattern(s)\n", word, count)
	}
	if !hasRows {
		fmt.Println("  No cached words found")
	}
	fmt.Println()

	return rows.Err()
}
