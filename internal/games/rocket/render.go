package rocket

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rocket-run/internal/core"
)

// Visual characters for rendering
const (
	CraftNose = '▲'
	CraftBody = '█'
	HUDRow    = 0
)

// sprite is the terminal look of one obstacle variant.
type sprite struct {
	fill  rune
	color core.Color
}

var obstacleSprites = []sprite{
	{'▓', core.ColorGray},
	{'▒', core.ColorOrange},
	{'█', core.ColorYellow},
	{'░', core.ColorWhite},
}

// Viewport maps world units onto the screen area below the HUD row.
type Viewport struct {
	Top    int // First screen row of the playfield
	Cols   int
	Rows   int
	WorldW float64
	WorldH float64
}

// NewViewport creates a viewport filling the screen under a one-row HUD.
func NewViewport(screenW, screenH int, worldW, worldH float64) Viewport {
	return Viewport{
		Top:    HUDRow + 1,
		Cols:   core.Max(screenW, 1),
		Rows:   core.Max(screenH-1, 1),
		WorldW: worldW,
		WorldH: worldH,
	}
}

// Project converts a world box into screen cells. Every box covers at least
// one cell so small obstacles stay visible on small terminals.
func (v Viewport) Project(b core.Box) core.Rect {
	sx := float64(v.Cols) / v.WorldW
	sy := float64(v.Rows) / v.WorldH

	x0 := int(math.Floor(b.X * sx))
	x1 := int(math.Ceil(b.Right() * sx))
	y0 := int(math.Floor(b.Y * sy))
	y1 := int(math.Ceil(b.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+v.Top, x1-x0, y1-y0)
}

// fill draws r clipped to the playfield rows.
func (v Viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	y0 := core.Clamp(r.Y, v.Top, v.Top+v.Rows)
	y1 := core.Clamp(r.Bottom(), v.Top, v.Top+v.Rows)
	for y := y0; y < y1; y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, y, ch, c)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	worldW, worldH := g.session.Playfield()
	vp := NewViewport(dst.Width(), dst.Height(), worldW, worldH)

	// Obstacles
	for _, o := range g.session.Obstacles() {
		sp := obstacleSprites[o.Variant%len(obstacleSprites)]
		vp.fill(dst, vp.Project(o.Box()), sp.fill, sp.color)
	}

	// Craft (drawn even when paused, so the scene stays visible)
	g.drawCraft(dst, vp)

	state := g.session.State()
	if state.Paused {
		drawCenteredMessage(dst,
			"GAME PAUSED",
			fmt.Sprintf("Level: %d  |  Score: %d", state.Level, state.Score),
			"Press Space to resume",
		)
		return
	}

	g.drawHUD(dst, state)
}

// drawCraft renders the rocket: a nose row above a solid body.
func (g *Game) drawCraft(dst *core.Screen, vp Viewport) {
	color := core.ColorBrightCyan
	if g.Flashing() {
		color = core.ColorBrightRed
	}

	r := vp.Project(g.session.Craft().Box())
	vp.fill(dst, r, CraftBody, color)
	if r.H > 1 {
		vp.fill(dst, core.NewRect(r.X, r.Y, r.W, 1), ' ', core.ColorDefault)
		vp.fill(dst, core.NewRect(r.X+r.W/2, r.Y, 1, 1), CraftNose, color)
	}
}

// drawHUD draws score left, level centered and lives right.
func (g *Game) drawHUD(dst *core.Screen, state core.GameState) {
	score := fmt.Sprintf(" Score: %d ", state.Score)
	level := fmt.Sprintf(" Level: %d ", state.Level)
	lives := fmt.Sprintf(" Lives: %d ", state.Lives)

	dst.DrawTextColor(1, HUDRow, score, core.ColorBrightWhite)
	dst.DrawTextColor((dst.Width()-len(level))/2, HUDRow, level, core.ColorBrightYellow)

	livesColor := core.ColorBrightWhite
	if state.Lives <= 1 {
		livesColor = core.ColorBrightRed
	}
	dst.DrawTextColor(dst.Width()-len(lives)-1, HUDRow, lives, livesColor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := 3 + 2*len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+2*i, l)
	}
}
