package grid

import "math/rand"

// SeedConfig configures random black-square seeding.
type SeedConfig struct {
	Seed         int64   // random seed for reproducibility
	BlackDensity float64 // target fraction of black cells, e.g. 0.08
}

// seedBlackSquares randomly places black squares in the top-left quadrant;
// enforceSymmetry mirrors them afterward to the bottom-right quadrant. The
// center cell is never made black so connectivity can seed from it.
func seedBlackSquares(grid *Grid, config SeedConfig) {
	r := rand.New(rand.NewSource(config.Seed))

	totalCells := grid.Size * grid.Size
	targetBlackCells := int(float64(totalCells) * config.BlackDensity)
	blacksToPlace := targetBlackCells / 2

	quadrantSize := grid.Size / 2
	center := grid.Size / 2

	var positions []struct{ row, col int }
	for row := 0; row < quadrantSize; row++ {
		for col := 0; col < quadrantSize; col++ {
			positions = append(positions, struct{ row, col int }{row, col})
		}
	}

	r.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	placed := 0
	for i := 0; i < len(positions) && placed < blacksToPlace; i++ {
		pos := positions[i]
		grid.Cells[pos.row][pos.col].IsBlack = true
		placed++
	}

	grid.Cells[center][center].IsBlack = false
}
