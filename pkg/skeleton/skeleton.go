// Package skeleton implements the grid construction interface: a curated
// library of pre-validated block-mask patterns keyed by size and
// difficulty, with a fall-through to random seeding for sizes the library
// does not cover.
package skeleton

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/crossgen/fillengine/pkg/grid"
)

//go:embed schemas/patterns.schema.json
var schemaFS embed.FS

//go:embed patterns.yaml
var bundledLibrary []byte

var librarySchema *jsonschema.Schema

func init() {
	data, err := schemaFS.ReadFile("schemas/patterns.schema.json")
	if err != nil {
		panic(fmt.Sprintf("skeleton: read embedded schema: %v", err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("patterns.schema.json", strings.NewReader(string(data))); err != nil {
		panic(fmt.Sprintf("skeleton: add schema resource: %v", err))
	}
	librarySchema, err = compiler.Compile("patterns.schema.json")
	if err != nil {
		panic(fmt.Sprintf("skeleton: compile embedded schema: %v", err))
	}
}

// ErrNoMatchingPattern is returned when a library has no pattern for the
// requested size at any difficulty.
var ErrNoMatchingPattern = errors.New("skeleton: no pattern in library for requested size")

// ErrInvalidPattern is returned when a loaded pattern fails schema
// validation or does not describe a structurally valid grid.
var ErrInvalidPattern = errors.New("skeleton: invalid pattern")

// Pattern is one named, pre-validated block-mask entry in a Library.
type Pattern struct {
	Name       string
	Size       int
	Difficulty grid.Difficulty
	Mask       []string // one string per row, '#' black, anything else white
}

// Library is a set of patterns grouped for lookup by size and difficulty.
type Library struct {
	patterns []Pattern
}

// document mirrors the YAML/JSON shape validated against
// schemas/patterns.schema.json.
type document struct {
	Patterns []struct {
		Name       string   `yaml:"name" json:"name"`
		Size       int      `yaml:"size" json:"size"`
		Difficulty string   `yaml:"difficulty" json:"difficulty"`
		Mask       []string `yaml:"mask" json:"mask"`
	} `yaml:"patterns" json:"patterns"`
}

// Default is the library bundled with this module (pkg/skeleton/patterns.yaml).
func Default() (*Library, error) {
	return LoadLibrary(bundledLibrary)
}

// LoadLibrary parses a YAML pattern-library document, validates it against
// the embedded JSON Schema, and checks every mask against
// grid.ValidateStructure before trusting it as a skeleton source.
func LoadLibrary(data []byte) (*Library, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalidPattern, err)
	}

	// jsonschema.Validate expects the untyped shape encoding/json would
	// produce (float64 for numbers, etc), so round-trip the parsed YAML
	// through JSON rather than handing it the yaml.v3 Go values directly.
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: re-encode for schema check: %v", ErrInvalidPattern, err)
	}
	var asAny interface{}
	if err := json.Unmarshal(asJSON, &asAny); err != nil {
		return nil, fmt.Errorf("%w: decode for schema check: %v", ErrInvalidPattern, err)
	}
	if err := librarySchema.Validate(asAny); err != nil {
		return nil, fmt.Errorf("%w: schema: %v", ErrInvalidPattern, err)
	}

	lib := &Library{}
	for _, p := range doc.Patterns {
		pattern := Pattern{
			Name:       p.Name,
			Size:       p.Size,
			Difficulty: grid.Difficulty(p.Difficulty),
			Mask:       p.Mask,
		}
		g, err := buildFromMask(pattern.Size, pattern.Mask)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidPattern, pattern.Name, err)
		}
		if result := grid.ValidateStructure(g, 0); !result.OK {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidPattern, pattern.Name, result.Reason)
		}
		lib.patterns = append(lib.patterns, pattern)
	}

	return lib, nil
}

// Select returns a built, slot-enumerated grid for size at the closest
// available difficulty (exact match preferred, else the nearest preset in
// the Easy < Medium < Hard < Expert ordering), or ErrNoMatchingPattern if
// the library carries nothing for that size.
func (l *Library) Select(size int, difficulty grid.Difficulty) (*grid.Grid, error) {
	var candidates []Pattern
	for _, p := range l.patterns {
		if p.Size == size {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: size %d", ErrNoMatchingPattern, size)
	}

	best := candidates[0]
	bestDist := difficultyDistance(best.Difficulty, difficulty)
	for _, c := range candidates[1:] {
		if d := difficultyDistance(c.Difficulty, difficulty); d < bestDist {
			best, bestDist = c, d
		}
	}

	return buildFromMask(best.Size, best.Mask)
}

var difficultyRank = map[grid.Difficulty]int{
	grid.Easy:   0,
	grid.Medium: 1,
	grid.Hard:   2,
	grid.Expert: 3,
}

func difficultyDistance(a, b grid.Difficulty) int {
	da, ok := difficultyRank[a]
	if !ok {
		da = 1
	}
	db, ok := difficultyRank[b]
	if !ok {
		db = 1
	}
	diff := da - db
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// BuildFromMask constructs a grid directly from an explicit block mask
// (one string per row, '#' marking black cells) without consulting any
// library, validating the result the same way a library entry is validated.
func BuildFromMask(size int, mask []string) (*grid.Grid, error) {
	g, err := buildFromMask(size, mask)
	if err != nil {
		return nil, err
	}
	if result := grid.ValidateStructure(g, 0); !result.OK {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, result.Reason)
	}
	return g, nil
}

func buildFromMask(size int, mask []string) (*grid.Grid, error) {
	if len(mask) != size {
		return nil, fmt.Errorf("mask has %d rows, want %d", len(mask), size)
	}
	g := grid.NewEmptyGrid(grid.GridConfig{Size: size})
	for r, row := range mask {
		if len(row) != size {
			return nil, fmt.Errorf("mask row %d has %d columns, want %d", r, len(row), size)
		}
		for c, ch := range row {
			if ch == '#' {
				g.Cells[r][c].IsBlack = true
			}
		}
	}
	grid.EnumerateSlots(g)
	return g, nil
}
