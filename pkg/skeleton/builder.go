package skeleton

import "github.com/crossgen/fillengine/pkg/grid"

// BuilderConfig configures Build's choice between a library pattern and
// random generation.
type BuilderConfig struct {
	Size          int
	Difficulty    grid.Difficulty
	Seed          int64   // forwarded to grid.Generate on fallback; 0 picks one from the clock
	MaxBlockRatio float64 // forwarded to grid.Generate on fallback; 0 uses the default
}

// Builder produces grid skeletons, preferring a curated library pattern and
// falling back to grid.Generate's random seeding for sizes the library does
// not cover.
type Builder struct {
	library *Library
}

// NewBuilder wraps library (the bundled Default() library if nil) in a
// Builder.
func NewBuilder(library *Library) (*Builder, error) {
	if library == nil {
		var err error
		library, err = Default()
		if err != nil {
			return nil, err
		}
	}
	return &Builder{library: library}, nil
}

// Build returns a grid for config.Size, taken from the library when a
// pattern exists at that size and generated randomly otherwise.
func (b *Builder) Build(config BuilderConfig) (*grid.Grid, error) {
	if g, err := b.library.Select(config.Size, config.Difficulty); err == nil {
		return g, nil
	}

	return grid.Generate(grid.GeneratorConfig{
		GridConfig:    grid.GridConfig{Size: config.Size},
		Difficulty:    config.Difficulty,
		Seed:          config.Seed,
		MaxBlockRatio: config.MaxBlockRatio,
	})
}
