// Package puzzle orchestrates skeleton construction, constraint-satisfaction
// fill, and metadata assembly into a complete, solved crossword. Clue text
// generation, rendering, and persistence are consumers of this package, not
// part of it.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/crossgen/fillengine/pkg/csp"
	"github.com/crossgen/fillengine/pkg/grid"
	"github.com/crossgen/fillengine/pkg/oracle"
	"github.com/crossgen/fillengine/pkg/skeleton"
	"github.com/crossgen/fillengine/pkg/wordsupply"
)

var (
	// ErrInvalidConfig is returned when Config fails validation.
	ErrInvalidConfig = errors.New("puzzle: invalid configuration")
	// ErrSkeletonFailed is returned when no grid skeleton could be built.
	ErrSkeletonFailed = errors.New("puzzle: skeleton construction failed")
	// ErrFillFailed is returned when the CSP engine could not fill the
	// skeleton; wraps the engine's *csp.Failure.
	ErrFillFailed = errors.New("puzzle: fill failed")
)

// Config configures one GeneratePuzzle call.
type Config struct {
	Size          int
	Difficulty    grid.Difficulty
	Seed          int64
	MaxBlockRatio float64

	Oracle          oracle.Oracle
	OracleBudget    int
	BacktrackBudget int
	NeighborQuota   int

	Title  string
	Author string
	Theme  string

	// ID, if set, is used as the puzzle's Metadata.ID instead of a
	// generated UUID. Callers that need to correlate a run before it
	// completes (e.g. a progress stream opened alongside the request)
	// set this to a value they already handed out.
	ID string

	// OnProgress, if set, is forwarded to the CSP engine and called with
	// its running counters during the solve.
	OnProgress func(csp.Snapshot)
}

// Generator wires a skeleton builder and a word supply into the fill
// engine. Both are reused across GeneratePuzzle calls.
type Generator struct {
	builder *skeleton.Builder
	supply  *wordsupply.Supply
}

// NewGenerator returns a Generator over builder and supply.
func NewGenerator(builder *skeleton.Builder, supply *wordsupply.Supply) *Generator {
	return &Generator{builder: builder, supply: supply}
}

// GeneratePuzzle builds a grid skeleton, fills it via the CSP engine, and
// assembles the result into a Puzzle. The pipeline is: validate config,
// build skeleton, solve, write the solution into the grid, extract entries.
func (g *Generator) GeneratePuzzle(ctx context.Context, config Config) (*Puzzle, error) {
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	config = setDefaults(config)

	skel, err := g.builder.Build(skeleton.BuilderConfig{
		Size:          config.Size,
		Difficulty:    config.Difficulty,
		Seed:          config.Seed,
		MaxBlockRatio: config.MaxBlockRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSkeletonFailed, err)
	}

	cspConfig := csp.Config{
		Oracle:          config.Oracle,
		OracleBudget:    config.OracleBudget,
		BacktrackBudget: config.BacktrackBudget,
		NeighborQuota:   config.NeighborQuota,
		OnProgress:      config.OnProgress,
	}

	result, failure := csp.Solve(ctx, skel, g.supply, cspConfig)
	if failure != nil {
		return nil, fmt.Errorf("%w: %s", ErrFillFailed, failure.Reason)
	}

	if vr := csp.WriteAssignment(skel, result); !vr.OK {
		return nil, fmt.Errorf("%w: filled grid failed validation: %v", ErrFillFailed, vr.Reason)
	}

	across, down := splitEntries(result)

	id := config.ID
	if id == "" {
		id = uuid.New().String()
	}

	return &Puzzle{
		Grid:   skel,
		Across: across,
		Down:   down,
		Metadata: Metadata{
			ID:         id,
			Title:      config.Title,
			Author:     config.Author,
			Difficulty: config.Difficulty,
			Theme:      config.Theme,
			CreatedAt:  time.Now(),
		},
	}, nil
}

// splitEntries converts a solved assignment into clue-number-ordered Across
// and Down entry lists.
func splitEntries(result *csp.Result) (across, down []Entry) {
	for slot, entry := range result.Assignment {
		e := Entry{Number: slot.Number, Direction: slot.Direction, Answer: entry.Text, Length: slot.Length}
		if slot.Direction == grid.ACROSS {
			across = append(across, e)
		} else {
			down = append(down, e)
		}
	}
	sort.Slice(across, func(i, j int) bool { return across[i].Number < across[j].Number })
	sort.Slice(down, func(i, j int) bool { return down[i].Number < down[j].Number })
	return across, down
}

func validateConfig(config Config) error {
	if config.Size != 0 && (config.Size < 5 || config.Size%2 == 0) {
		return errors.New("size must be odd and >= 5")
	}
	switch config.Difficulty {
	case "", grid.Easy, grid.Medium, grid.Hard, grid.Expert:
	default:
		return errors.New("invalid difficulty level")
	}
	return nil
}

func setDefaults(config Config) Config {
	if config.Size == 0 {
		config.Size = 15
	}
	if config.Difficulty == "" {
		config.Difficulty = grid.Medium
	}
	if config.Title == "" {
		config.Title = fmt.Sprintf("Crossword Puzzle - %s", time.Now().Format("2006-01-02"))
	}
	if config.Author == "" {
		config.Author = "crossgen"
	}
	return config
}
