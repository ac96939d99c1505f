// Package csp is the constraint-satisfaction engine that fills a validated
// grid's slots from a word supply: domain construction, AC-3 arc
// consistency, backtracking search with MRV/degree/LCV ordering, and the
// empty-domain recovery protocol that consults a Word Oracle.
package csp

import (
	"context"

	"github.com/crossgen/fillengine/pkg/constraintgraph"
	"github.com/crossgen/fillengine/pkg/grid"
	"github.com/crossgen/fillengine/pkg/oracle"
	"github.com/crossgen/fillengine/pkg/wordsupply"
)

// FailureReason discriminates why Solve did not return an assignment.
type FailureReason string

const (
	ReasonUnsolvable      FailureReason = "unsolvable"
	ReasonOracleBudget    FailureReason = "oracle_budget_exhausted"
	ReasonBacktrackBudget FailureReason = "backtrack_budget_exhausted"
	ReasonCancelled       FailureReason = "cancelled"
)

// Failure is the terminal non-solution outcome of Solve, carrying the
// counters a caller needs to diagnose or report on a failed run.
type Failure struct {
	Reason        FailureReason
	Backtracks    int
	OracleCalls   int
	ArcRevisions  int
	LastEmptySlot string // pattern of the slot whose domain emptied last, if any
}

func (f *Failure) Error() string {
	return string(f.Reason)
}

// Config bounds and equips one Solve call.
type Config struct {
	NeighborQuota   int // entries requested per oracle call; default 20
	OracleBudget    int // max oracle calls for the whole solve; default 50
	BacktrackBudget int // max backtracks for the whole solve; default 10000
	Oracle          oracle.Oracle

	// OnProgress, if set, is called after every backtrack and oracle call
	// with the engine's running counters. It never receives partial
	// assignments, only counts, and must return quickly since it runs on
	// the solver's own goroutine.
	OnProgress func(Snapshot)
}

// Snapshot is a point-in-time read of the engine's running counters, sent
// to OnProgress during a solve.
type Snapshot struct {
	Backtracks   int
	OracleCalls  int
	ArcRevisions int
}

// DefaultConfig returns the budgets named in the engine's public contract.
func DefaultConfig() Config {
	return Config{
		NeighborQuota:   20,
		OracleBudget:    50,
		BacktrackBudget: 10000,
	}
}

func (c Config) withDefaults() Config {
	if c.NeighborQuota <= 0 {
		c.NeighborQuota = 20
	}
	if c.OracleBudget <= 0 {
		c.OracleBudget = 50
	}
	if c.BacktrackBudget <= 0 {
		c.BacktrackBudget = 10000
	}
	return c
}

// Assignment maps a solved Slot to the Entry placed in it.
type Assignment map[*grid.Slot]*wordsupply.Entry

// Result is a successful Solve outcome plus its counters.
type Result struct {
	Assignment   Assignment
	Backtracks   int
	OracleCalls  int
	ArcRevisions int
}

// domainSet maps each slot to its current candidate entries, quality order
// preserved from the supply.
type domainSet map[*grid.Slot][]*wordsupply.Entry

func (d domainSet) clone() domainSet {
	out := make(domainSet, len(d))
	for s, entries := range d {
		out[s] = entries // revise always replaces the slice, never mutates in place
	}
	return out
}

// engine holds the mutable state of one Solve call.
type engine struct {
	ctx    context.Context
	config Config
	grid   *grid.Grid
	supply *wordsupply.Supply
	graph  *constraintgraph.Graph

	domains    domainSet
	assignment Assignment
	used       map[string]bool

	backtracks      int
	oracleCalls     int
	arcRevisions    int
	oracleExhausted bool
	lastEmptySlot   string
}

// Solve runs the CSP engine against a structurally validated grid and word
// supply. It never mutates g; on success the caller writes the assignment
// back with WriteAssignment.
func Solve(ctx context.Context, g *grid.Grid, supply *wordsupply.Supply, config Config) (*Result, *Failure) {
	config = config.withDefaults()

	e := &engine{
		ctx:        ctx,
		config:     config,
		grid:       g,
		supply:     supply,
		graph:      constraintgraph.Build(g),
		assignment: make(Assignment),
		used:       make(map[string]bool),
	}

	if err := ctx.Err(); err != nil {
		return nil, e.fail(ReasonCancelled)
	}

	e.domains = e.buildInitialDomains()
	if !e.repairEmptyDomains() {
		return nil, e.classifyFailure()
	}
	if !e.runAC3(e.allArcs()) {
		return nil, e.classifyFailure()
	}

	ok, failure := e.search()
	if failure != nil {
		return nil, failure
	}
	if !ok {
		return nil, e.classifyFailure()
	}

	return &Result{
		Assignment:   e.assignment,
		Backtracks:   e.backtracks,
		OracleCalls:  e.oracleCalls,
		ArcRevisions: e.arcRevisions,
	}, nil
}

// reportProgress notifies the configured OnProgress hook, if any, of the
// engine's current counters.
func (e *engine) reportProgress() {
	if e.config.OnProgress == nil {
		return
	}
	e.config.OnProgress(Snapshot{
		Backtracks:   e.backtracks,
		OracleCalls:  e.oracleCalls,
		ArcRevisions: e.arcRevisions,
	})
}

func (e *engine) fail(reason FailureReason) *Failure {
	return &Failure{
		Reason:        reason,
		Backtracks:    e.backtracks,
		OracleCalls:   e.oracleCalls,
		ArcRevisions:  e.arcRevisions,
		LastEmptySlot: e.lastEmptySlot,
	}
}

// classifyFailure picks the terminal reason for an exhausted search that
// did not abort early on cancellation or the backtrack budget: unsolvable,
// unless the run actually used up its oracle budget on the way, in which
// case oracle_budget_exhausted — a domain left permanently empty because
// there never was a budget to spend (Oracle == nil, or OracleBudget never
// reached) is reported as unsolvable, matching the node-consistency case in
// the engine's contract.
func (e *engine) classifyFailure() *Failure {
	if e.ctx.Err() != nil {
		return e.fail(ReasonCancelled)
	}
	if e.oracleExhausted {
		return e.fail(ReasonOracleBudget)
	}
	return e.fail(ReasonUnsolvable)
}

// WriteAssignment writes a successful Result's entries into g's cells and
// re-runs structural validation as a safety net. It is the only place the
// engine's output touches grid state.
func WriteAssignment(g *grid.Grid, result *Result) grid.ValidationResult {
	for slot, entry := range result.Assignment {
		for i, cell := range slot.Cells {
			cell.Letter = rune(entry.Text[i])
		}
	}
	return grid.ValidateStructure(g, 0)
}
