package rocket

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rocket-run/internal/config"
	"github.com/vovakirdan/rocket-run/internal/core"
)

// Obstacle is a falling asteroid. Its fall speed is shared by the session.
type Obstacle struct {
	X, Y       float64 // Top-left corner in world units
	Size       float64 // Obstacles are square
	ScoreValue int     // Points awarded when it passes the bottom edge
	Variant    int     // Cosmetic sprite index, no gameplay effect
}

// Box returns the collision box for this obstacle.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Size, o.Size)
}

// ScoreValue returns the points for an obstacle of the given size:
// round((maxSize - size) * perUnit). Smaller obstacles are worth more.
func ScoreValue(size, maxSize, perUnit float64) int {
	return int(math.Round((maxSize - size) * perUnit))
}

// Spawner creates obstacles with randomized size, position and variant.
type Spawner struct {
	rng *rand.Rand
	cfg config.RocketObstacles
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.RocketObstacles) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Spawn creates an obstacle just above the visible area, fully inside the
// playfield horizontally.
func (sp *Spawner) Spawn(playfieldWidth float64) Obstacle {
	minSize := sp.cfg.MinSize
	maxSize := sp.cfg.MaxSize

	size := minSize
	if maxSize > minSize {
		size = minSize + sp.rng.Float64()*(maxSize-minSize)
	}

	x := 0.0
	if span := playfieldWidth - size; span > 0 {
		x = sp.rng.Float64() * span
	}

	variant := 0
	if sp.cfg.Variants > 1 {
		variant = sp.rng.Intn(sp.cfg.Variants)
	}

	return Obstacle{
		X:          x,
		Y:          -size,
		Size:       size,
		ScoreValue: ScoreValue(size, maxSize, sp.cfg.ScorePerUnit),
		Variant:    variant,
	}
}
