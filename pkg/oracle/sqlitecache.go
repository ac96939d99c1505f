package oracle

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SQLiteCache wraps an Oracle with a persistent cache keyed by pattern,
// sparing the wrapped oracle repeat requests for a pattern already seen
// (by any solve run sharing the database, not just this process).
type SQLiteCache struct {
	db   *sql.DB
	next Oracle
}

// NewSQLiteCache opens (creating if needed) the oracle_cache table on db
// and returns a cache that falls through to next on a miss.
func NewSQLiteCache(db *sql.DB, next Oracle) (*SQLiteCache, error) {
	if db == nil {
		return nil, fmt.Errorf("oracle: sqlite cache requires a non-nil database")
	}
	if next == nil {
		return nil, fmt.Errorf("oracle: sqlite cache requires a wrapped oracle")
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS oracle_cache (
			pattern TEXT NOT NULL,
			word    TEXT NOT NULL,
			PRIMARY KEY (pattern, word)
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("oracle: init cache schema: %w", err)
	}

	return &SQLiteCache{db: db, next: next}, nil
}

// Request serves cached words for pattern when present, and otherwise
// queries next and persists whatever it returns for future callers.
func (c *SQLiteCache) Request(ctx context.Context, pattern string, count int, used map[string]bool) ([]string, error) {
	key := normalizePattern(pattern)

	cached, err := c.lookup(ctx, key)
	if err == nil && len(cached) > 0 {
		return filterUsed(cached, used, count), nil
	}

	words, err := c.next.Request(ctx, pattern, count, used)
	if err != nil {
		return nil, err
	}
	if len(words) > 0 {
		c.store(ctx, key, words)
	}
	return words, nil
}

func (c *SQLiteCache) lookup(ctx context.Context, pattern string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT word FROM oracle_cache WHERE pattern = ?`, pattern)
	if err != nil {
		return nil, fmt.Errorf("oracle: cache lookup: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("oracle: scan cached word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (c *SQLiteCache) store(ctx context.Context, pattern string, words []string) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	for _, w := range words {
		tx.ExecContext(ctx, `INSERT OR IGNORE INTO oracle_cache (pattern, word) VALUES (?, ?)`, pattern, w)
	}
	tx.Commit()
}

func filterUsed(words []string, used map[string]bool, count int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if used[w] {
			continue
		}
		out = append(out, w)
		if count > 0 && len(out) >= count {
			break
		}
	}
	return out
}

func normalizePattern(pattern string) string {
	return strings.ToUpper(pattern)
}
