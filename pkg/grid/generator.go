package grid

import (
	"errors"
	"time"
)

// Difficulty is a named block-density preset.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

// ErrGenerationFailed is returned when no valid skeleton was found within
// MaxGenerationAttempts.
var ErrGenerationFailed = errors.New("failed to generate valid grid after maximum attempts")

// MaxGenerationAttempts bounds the random-seeding retry loop in Generate.
const MaxGenerationAttempts = 1000

// GeneratorConfig configures random skeleton generation.
type GeneratorConfig struct {
	GridConfig
	Difficulty    Difficulty // density preset, overridden by BlackDensity if nonzero
	BlackDensity  float64    // custom black-cell fraction
	Seed          int64      // random seed; 0 picks one from the clock
	MaxBlockRatio float64    // ceiling passed to ValidateStructure; 0 uses the default
}

// getDifficultyDensity maps a difficulty preset to a black-square fraction.
// These are conservative relative to hand-built grids: random placement
// creates short runs more easily than a constraint-aware placement would.
func getDifficultyDensity(difficulty Difficulty) float64 {
	switch difficulty {
	case Easy:
		return 0.06
	case Medium:
		return 0.08
	case Hard:
		return 0.10
	case Expert:
		return 0.12
	default:
		return 0.08
	}
}

// Generate randomly seeds block layouts until one satisfies
// ValidateStructure, or returns ErrGenerationFailed after
// MaxGenerationAttempts. On success the grid's slots are already computed.
func Generate(config GeneratorConfig) (*Grid, error) {
	blackDensity := config.BlackDensity
	if blackDensity == 0 {
		blackDensity = getDifficultyDensity(config.Difficulty)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for attempt := 0; attempt < MaxGenerationAttempts; attempt++ {
		candidate := NewEmptyGrid(config.GridConfig)

		seedBlackSquares(candidate, SeedConfig{
			Seed:         seed + int64(attempt),
			BlackDensity: blackDensity,
		})
		enforceSymmetry(candidate)

		result := ValidateStructure(candidate, config.MaxBlockRatio)
		if !result.OK {
			continue
		}

		EnumerateSlots(candidate)
		return candidate, nil
	}

	return nil, ErrGenerationFailed
}
