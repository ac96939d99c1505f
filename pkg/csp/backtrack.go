package csp

import (
	"sort"

	"github.com/crossgen/fillengine/pkg/grid"
	"github.com/crossgen/fillengine/pkg/wordsupply"
)

// search performs the backtracking step. It returns (true, nil) on a
// complete assignment, (false, nil) when this branch is exhausted without
// a terminal condition, and (false, failure) when the whole solve must
// stop (cancellation or the backtrack budget).
func (e *engine) search() (bool, *Failure) {
	if e.ctx.Err() != nil {
		return false, e.fail(ReasonCancelled)
	}

	slot := e.selectSlot()
	if slot == nil {
		return true, nil
	}

	for _, candidate := range e.orderCandidates(slot) {
		if !e.consistentWithAssigned(slot, candidate) {
			continue
		}

		snapshot := e.domains.clone()
		e.domains[slot] = []*wordsupply.Entry{candidate}
		e.assignment[slot] = candidate
		e.used[candidate.Text] = true

		if e.runAC3(e.arcsToRecheck(slot, nil)) {
			solved, failure := e.search()
			if failure != nil {
				return false, failure
			}
			if solved {
				return true, nil
			}
		}

		e.domains = snapshot
		delete(e.assignment, slot)
		delete(e.used, candidate.Text)

		e.backtracks++
		e.reportProgress()
		if e.backtracks >= e.config.BacktrackBudget {
			return false, e.fail(ReasonBacktrackBudget)
		}
	}

	return false, nil
}

// selectSlot picks the next unassigned slot by minimum remaining values,
// breaking ties by degree among unassigned neighbors (descending), then by
// slot position for determinism.
func (e *engine) selectSlot() *grid.Slot {
	var best *grid.Slot
	bestSize, bestDegree := -1, -1

	for _, s := range e.grid.Slots {
		if _, assigned := e.assignment[s]; assigned {
			continue
		}
		size := len(e.domains[s])
		degree := e.unassignedDegree(s)

		switch {
		case best == nil:
		case size < bestSize:
		case size == bestSize && degree > bestDegree:
		case size == bestSize && degree == bestDegree && slotLess(s, best):
		default:
			continue
		}
		best, bestSize, bestDegree = s, size, degree
	}
	return best
}

func (e *engine) unassignedDegree(s *grid.Slot) int {
	count := 0
	for _, edge := range e.graph.Neighbors(s) {
		if _, assigned := e.assignment[edge.Other]; !assigned {
			count++
		}
	}
	return count
}

func slotLess(a, b *grid.Slot) bool {
	if a.StartRow != b.StartRow {
		return a.StartRow < b.StartRow
	}
	if a.StartCol != b.StartCol {
		return a.StartCol < b.StartCol
	}
	return a.Direction < b.Direction
}

// orderCandidates ranks slot's domain least-constraining-value first: the
// candidate eliminating the fewest values from unassigned neighbors' domains
// sorts first, ties broken by quality descending then lexicographically.
func (e *engine) orderCandidates(s *grid.Slot) []*wordsupply.Entry {
	domain := e.domains[s]
	type scored struct {
		entry *wordsupply.Entry
		elim  int
	}

	scoredList := make([]scored, 0, len(domain))
	for _, cand := range domain {
		if e.used[cand.Text] {
			continue
		}
		scoredList = append(scoredList, scored{entry: cand, elim: e.eliminationCount(s, cand)})
	}

	sort.SliceStable(scoredList, func(i, j int) bool {
		a, b := scoredList[i], scoredList[j]
		if a.elim != b.elim {
			return a.elim < b.elim
		}
		if a.entry.Quality != b.entry.Quality {
			return a.entry.Quality > b.entry.Quality
		}
		return a.entry.Text < b.entry.Text
	})

	out := make([]*wordsupply.Entry, len(scoredList))
	for i, sc := range scoredList {
		out[i] = sc.entry
	}
	return out
}

func (e *engine) eliminationCount(s *grid.Slot, candidate *wordsupply.Entry) int {
	count := 0
	for _, edge := range e.graph.Neighbors(s) {
		if _, assigned := e.assignment[edge.Other]; assigned {
			continue
		}
		letter := candidate.Text[edge.I]
		for _, other := range e.domains[edge.Other] {
			if other.Text == candidate.Text || other.Text[edge.J] != letter {
				count++
			}
		}
	}
	return count
}

func (e *engine) consistentWithAssigned(s *grid.Slot, candidate *wordsupply.Entry) bool {
	if e.used[candidate.Text] {
		return false
	}
	for _, edge := range e.graph.Neighbors(s) {
		assignedEntry, ok := e.assignment[edge.Other]
		if !ok {
			continue
		}
		if candidate.Text[edge.I] != assignedEntry.Text[edge.J] {
			return false
		}
	}
	return true
}
