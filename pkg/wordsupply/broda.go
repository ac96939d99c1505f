package wordsupply

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadBrodaFile reads a Peter Broda-format wordlist (lines of
// "WORD;SCORE") and returns Entries with quality normalized to [0,1] by the
// maximum score observed in the file. Callers pass the result to LoadBase
// or LoadThemed.
func LoadBrodaFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open broda wordlist: %w", err)
	}
	defer file.Close()

	type raw struct {
		text  string
		score int
	}
	var rows []raw
	maxScore := 0

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) != 2 {
			return nil, fmt.Errorf("broda wordlist line %d: expected WORD;SCORE, got %q", lineNum, line)
		}

		text := strings.ToUpper(strings.TrimSpace(parts[0]))
		score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("broda wordlist line %d: invalid score: %w", lineNum, err)
		}

		rows = append(rows, raw{text: text, score: score})
		if score > maxScore {
			maxScore = score
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read broda wordlist: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		quality := 0.0
		if maxScore > 0 {
			quality = float64(r.score) / float64(maxScore)
		}
		entries = append(entries, Entry{Text: r.text, Quality: quality})
	}
	return entries, nil
}
