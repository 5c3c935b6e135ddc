package mapgen

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
)

var (
	ErrShapeTooSmall = errors.New("map limits cannot hold every island tile")
	ErrInvalidShape  = errors.New("shape is not a valid island")
	ErrNoValidShape  = errors.New("no connected island shape found")
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Width  uint
	Height uint
	// MaxAttempts bounds how many random shapes are tried before giving up.
	MaxAttempts int
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(w, h uint) MapConfig {
	return MapConfig{
		Width:       w,
		Height:      h,
		MaxAttempts: 10,
	}
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
		logger: log.With().Str("component", "mapgen").Logger(),
	}
}

// Generate creates a random island shape and places the tiles on it.
func (g *Generator) Generate() (*island.Board, error) {
	shape, err := g.Shape()
	if err != nil {
		return nil, err
	}
	return g.Fill(shape)
}

// GenerateClassic places the tiles on the standard island layout.
func (g *Generator) GenerateClassic() (*island.Board, error) {
	return g.Fill(ClassicShape())
}

// Shape grows a random connected island of island.TileCount cells within the
// configured limits.
func (g *Generator) Shape() (*island.Shape, error) {
	if g.config.Width*g.config.Height < uint(island.TileCount) {
		return nil, fmt.Errorf("%dx%d: %w", g.config.Width, g.config.Height, ErrShapeTooSmall)
	}

	attempts := max(g.config.MaxAttempts, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		shape := g.growShape()
		if shape.IsConnected() && shape.TileCount() == island.TileCount {
			g.logger.Debug().Int("attempt", attempt).Msg("Generated island shape")
			return shape, nil
		}
		g.logger.Debug().Int("attempt", attempt).Msg("Rejected island shape")
	}
	return nil, fmt.Errorf("after %d attempts: %w", attempts, ErrNoValidShape)
}

// growShape starts from a random cell and keeps adding a random cell bordering
// the land until the island is complete.
func (g *Generator) growShape() *island.Shape {
	size := core.NewCoordinate(g.config.Width, g.config.Height)
	shape := island.NewShape(size)
	bounds, _ := shape.Grid().Bounds()

	frontier := mapset.New[core.Coordinate]()
	add := func(c core.Coordinate) {
		_ = shape.Set(c, true)
		frontier.Remove(c)
		for _, n := range c.Neighbors(&bounds) {
			if !shape.IsStandable(n) {
				frontier.Put(n)
			}
		}
	}

	add(core.NewCoordinate(uint(g.rng.Intn(int(size.X))), uint(g.rng.Intn(int(size.Y)))))
	for shape.TileCount() < island.TileCount && frontier.Size() > 0 {
		candidates := sorted(frontier)
		add(candidates[g.rng.Intn(len(candidates))])
	}
	return shape
}

// Fill shuffles the island tiles onto the land cells of shape. The shape must
// be connected and hold exactly island.TileCount cells.
func (g *Generator) Fill(shape *island.Shape) (*island.Board, error) {
	if n := shape.TileCount(); n != island.TileCount {
		return nil, fmt.Errorf("%d land cells, want %d: %w", n, island.TileCount, ErrInvalidShape)
	}
	if !shape.IsConnected() {
		return nil, fmt.Errorf("disconnected land: %w", ErrInvalidShape)
	}

	kinds := island.AllKinds()
	g.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})

	board := island.NewBoard(shape.Size())
	i := 0
	for c := range shape.Land() {
		if err := board.Place(c, island.NewTile(kinds[i])); err != nil {
			return nil, err
		}
		i++
	}

	g.logger.Info().
		Uint("width", board.Width()).
		Uint("height", board.Height()).
		Msg("Island filled")
	return board, nil
}

// ClassicShape is the standard layout: rows of 2, 4, 6, 6, 4 and 2 tiles.
func ClassicShape() *island.Shape {
	widths := []uint{2, 4, 6, 6, 4, 2}
	shape := island.NewShape(core.NewCoordinate(6, uint(len(widths))))
	for y, w := range widths {
		start := (6 - w) / 2
		for x := start; x < start+w; x++ {
			_ = shape.Set(core.NewCoordinate(x, uint(y)), true)
		}
	}
	return shape
}

func sorted(set mapset.Set[core.Coordinate]) []core.Coordinate {
	out := make([]core.Coordinate, 0, set.Size())
	set.Each(func(c core.Coordinate) {
		out = append(out, c)
	})
	slices.SortFunc(out, core.Coordinate.Compare)
	return out
}
