package rocket

import "github.com/vovakirdan/rocket-run/internal/core"

// Craft is the player-controlled rocket.
type Craft struct {
	X, Y  float64 // Top-left corner in world units
	W, H  float64
	Speed float64 // Horizontal distance per move intent
}

// Box returns the collision box for the craft.
func (c Craft) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.W, c.H)
}

// Move shifts the craft horizontally by dir*Speed.
// The move is rejected, leaving the craft in place, if the craft would end
// up outside [0, maxX]. Returns whether the craft moved.
func (c *Craft) Move(dir int, maxX float64) bool {
	next := c.X + float64(dir)*c.Speed
	if next < 0 || next > maxX {
		return false
	}
	c.X = next
	return true
}
