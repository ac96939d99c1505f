package csp

import (
	"github.com/crossgen/fillengine/pkg/grid"
	"github.com/crossgen/fillengine/pkg/wordsupply"
)

// recoverEmptyDomain asks the configured oracle for fresh candidates when a
// slot's domain has emptied, seeding the domain with whatever comes back.
// It reports false when recovery could not repair the domain: no oracle
// configured, budget already spent, or an empty/erroring response.
func (e *engine) recoverEmptyDomain(s *grid.Slot) bool {
	if e.config.Oracle == nil {
		return false
	}
	if e.oracleCalls >= e.config.OracleBudget {
		e.oracleExhausted = true
		return false
	}

	pattern := e.buildPattern(s)

	words, err := e.config.Oracle.Request(e.ctx, pattern, e.config.NeighborQuota, e.used)
	e.oracleCalls++
	e.reportProgress()

	if err != nil || len(words) == 0 {
		if e.oracleCalls >= e.config.OracleBudget {
			e.oracleExhausted = true
		}
		return false
	}

	fresh := make([]*wordsupply.Entry, 0, len(words))
	for _, w := range words {
		if !acceptOracleWord(w, s.Length, pattern, e.used) {
			continue
		}
		fresh = append(fresh, &wordsupply.Entry{Text: w, Origin: wordsupply.OriginOracle})
	}
	if len(fresh) == 0 {
		if e.oracleCalls >= e.config.OracleBudget {
			e.oracleExhausted = true
		}
		return false
	}

	e.domains[s] = fresh
	e.supply.AddOracle(toSupplyEntries(fresh))
	return true
}

// buildPattern returns s's pattern as the fixed letters placed before
// solving plus the crossing letters of s's already-assigned neighbors —
// '.' standing in for every cell neither determines. Solve never writes
// into the grid itself until WriteAssignment after a full solution, so
// s.Pattern() alone would see only the fixed letters; the current
// assignment is the only place mid-search crossing letters live.
func (e *engine) buildPattern(s *grid.Slot) string {
	pattern := make([]rune, s.Length)
	for i, c := range s.Cells {
		if c.Fixed && c.Letter != 0 {
			pattern[i] = c.Letter
		} else {
			pattern[i] = '.'
		}
	}

	for _, edge := range e.graph.Neighbors(s) {
		entry, ok := e.assignment[edge.Other]
		if !ok {
			continue
		}
		pattern[edge.I] = rune(entry.Text[edge.J])
	}

	return string(pattern)
}

// acceptOracleWord applies the oracle response filter: a returned word is
// admitted only if it has the slot's length, is uppercase A-Z throughout,
// matches every fixed/crossing letter in pattern, and is not already used
// elsewhere in the grid.
func acceptOracleWord(word string, length int, pattern string, used map[string]bool) bool {
	if len(word) != length {
		return false
	}
	if !isUpperAlpha(word) {
		return false
	}
	if !matchesPattern(word, pattern) {
		return false
	}
	if used[word] {
		return false
	}
	return true
}

// isUpperAlpha reports whether word consists only of uppercase A-Z runes.
func isUpperAlpha(word string) bool {
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// matchesPattern reports whether word agrees with pattern at every
// position pattern fixes (every rune other than '.').
func matchesPattern(word, pattern string) bool {
	if len(word) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '.' && pattern[i] != word[i] {
			return false
		}
	}
	return true
}

func toSupplyEntries(entries []*wordsupply.Entry) []wordsupply.Entry {
	out := make([]wordsupply.Entry, len(entries))
	for i, e := range entries {
		out[i] = *e
	}
	return out
}
