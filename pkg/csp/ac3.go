package csp

import (
	"github.com/crossgen/fillengine/pkg/grid"
	"github.com/crossgen/fillengine/pkg/wordsupply"
)

// arc is a directed constraint: x.Cells[i] must agree with some entry in
// Dom(y) at y.Cells[j], and that entry must not be the same word as x's.
type arc struct {
	x, y *grid.Slot
	i, j int
}

// allArcs builds the full directed arc set from the constraint graph, two
// arcs per intersecting pair of slots.
func (e *engine) allArcs() []arc {
	var arcs []arc
	for _, s := range e.grid.Slots {
		for _, edge := range e.graph.Neighbors(s) {
			arcs = append(arcs, arc{x: s, y: edge.Other, i: edge.I, j: edge.J})
		}
	}
	return arcs
}

// arcsToRecheck returns the arcs (z, changed) for every neighbor z of
// changed other than exclude, the standard AC-3 re-enqueue step after
// Dom(changed) narrows.
func (e *engine) arcsToRecheck(changed, exclude *grid.Slot) []arc {
	var arcs []arc
	for _, edge := range e.graph.Neighbors(changed) {
		if edge.Other == exclude {
			continue
		}
		arcs = append(arcs, arc{x: edge.Other, y: changed, i: edge.J, j: edge.I})
	}
	return arcs
}

// runAC3 drains queue, narrowing domains until it stabilizes or a domain
// empties and oracle recovery cannot repair it.
func (e *engine) runAC3(queue []arc) bool {
	inQueue := make(map[arc]bool, len(queue))
	for _, a := range queue {
		inQueue[a] = true
	}

	for len(queue) > 0 {
		if e.ctx.Err() != nil {
			return false
		}

		a := queue[0]
		queue = queue[1:]
		delete(inQueue, a)

		if !e.revise(a) {
			continue
		}

		if len(e.domains[a.x]) == 0 {
			e.lastEmptySlot = a.x.Pattern()
			if !e.recoverEmptyDomain(a.x) {
				return false
			}
		}

		for _, next := range e.arcsToRecheck(a.x, a.y) {
			if !inQueue[next] {
				inQueue[next] = true
				queue = append(queue, next)
			}
		}
	}
	return true
}

// revise prunes Dom(a.x) to entries supported by Dom(a.y): a.x's candidate
// survives only if some distinct a.y candidate agrees with it at the
// crossing cell. It reports whether the domain changed.
func (e *engine) revise(a arc) bool {
	e.arcRevisions++

	domX := e.domains[a.x]
	domY := e.domains[a.y]

	kept := make([]*wordsupply.Entry, 0, len(domX))
	changed := false
	for _, wx := range domX {
		if supportedBy(wx, domY, a.i, a.j) {
			kept = append(kept, wx)
		} else {
			changed = true
		}
	}
	if changed {
		e.domains[a.x] = kept
	}
	return changed
}

// supportedBy reports whether some entry in domY, distinct from wx, agrees
// with wx at the crossing offsets (i in wx, j in the domY entry).
func supportedBy(wx *wordsupply.Entry, domY []*wordsupply.Entry, i, j int) bool {
	for _, wy := range domY {
		if wy.Text == wx.Text {
			continue
		}
		if wy.Text[j] == wx.Text[i] {
			return true
		}
	}
	return false
}
