package csp

import (
	"github.com/crossgen/fillengine/pkg/grid"
	"github.com/crossgen/fillengine/pkg/wordsupply"
)

// buildInitialDomains assigns each slot the supply's candidates of matching
// length, filtered by any letters fixed on the grid before solving began.
func (e *engine) buildInitialDomains() domainSet {
	domains := make(domainSet, len(e.grid.Slots))
	for _, s := range e.grid.Slots {
		domains[s] = filterFixed(s, e.supply.Candidates(s.Length))
	}
	return domains
}

func filterFixed(s *grid.Slot, candidates []*wordsupply.Entry) []*wordsupply.Entry {
	anyFixed := false
	for _, c := range s.Cells {
		if c.Fixed {
			anyFixed = true
			break
		}
	}
	if !anyFixed {
		out := make([]*wordsupply.Entry, len(candidates))
		copy(out, candidates)
		return out
	}

	out := make([]*wordsupply.Entry, 0, len(candidates))
	for _, cand := range candidates {
		if matchesFixed(s, cand.Text) {
			out = append(out, cand)
		}
	}
	return out
}

func matchesFixed(s *grid.Slot, text string) bool {
	for i, c := range s.Cells {
		if c.Fixed && rune(text[i]) != c.Letter {
			return false
		}
	}
	return true
}

// repairEmptyDomains runs oracle recovery on any slot whose domain came out
// of node consistency empty. A slot with no constraint-graph neighbors
// would otherwise never pass through AC-3's queue, so this pass must run
// before arc consistency rather than rely on it.
func (e *engine) repairEmptyDomains() bool {
	for _, s := range e.grid.Slots {
		if len(e.domains[s]) == 0 {
			e.lastEmptySlot = s.Pattern()
			if !e.recoverEmptyDomain(s) {
				return false
			}
		}
	}
	return true
}
