// Package constraintgraph derives the intersection structure between a
// grid's slots: which pairs of perpendicular slots share a cell, and at
// which offset into each.
package constraintgraph

import "github.com/crossgen/fillengine/pkg/grid"

// Edge records that cell i of Slot and cell j of Other hold the same
// letter.
type Edge struct {
	Other *grid.Slot
	I, J  int
}

// Graph is an adjacency list keyed by slot identity (start, orientation),
// never by pointer identity, so two graphs built from structurally equal
// grids compare equal by content.
type Graph struct {
	neighbors map[slotKey][]Edge
	bySlot    map[slotKey]*grid.Slot
}

type slotKey struct {
	row, col int
	dir      grid.Direction
}

func keyOf(s *grid.Slot) slotKey {
	row, col, dir := s.Key()
	return slotKey{row, col, dir}
}

// Build computes the constraint graph for every slot in g. Each cell
// position is visited once; a position touched by exactly one across and
// one down slot yields one Edge in each direction. Parallel slots never
// share a position and are never compared.
func Build(g *grid.Grid) *Graph {
	graph := &Graph{
		neighbors: make(map[slotKey][]Edge),
		bySlot:    make(map[slotKey]*grid.Slot),
	}

	type occupant struct {
		slot  *grid.Slot
		index int
	}
	across := make(map[[2]int]occupant)
	down := make(map[[2]int]occupant)

	for _, s := range g.Slots {
		graph.bySlot[keyOf(s)] = s
		for i, c := range s.Cells {
			pos := [2]int{c.Row, c.Col}
			if s.Direction == grid.ACROSS {
				across[pos] = occupant{s, i}
			} else {
				down[pos] = occupant{s, i}
			}
		}
	}

	for pos, a := range across {
		d, ok := down[pos]
		if !ok {
			continue
		}
		graph.neighbors[keyOf(a.slot)] = append(graph.neighbors[keyOf(a.slot)], Edge{Other: d.slot, I: a.index, J: d.index})
		graph.neighbors[keyOf(d.slot)] = append(graph.neighbors[keyOf(d.slot)], Edge{Other: a.slot, I: d.index, J: a.index})
	}

	return graph
}

// Neighbors returns the edges incident to s: the other slot and the
// (i, j) overlap offsets.
func (g *Graph) Neighbors(s *grid.Slot) []Edge {
	return g.neighbors[keyOf(s)]
}

// Degree returns the number of perpendicular slots s intersects.
func (g *Graph) Degree(s *grid.Slot) int {
	return len(g.neighbors[keyOf(s)])
}
