// Package window is the desktop frontend: it runs the rocket session on
// Ebitengine's fixed-rate loop and draws it 1:1 in world units.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/rocket-run/internal/audio"
	"github.com/vovakirdan/rocket-run/internal/core"
	"github.com/vovakirdan/rocket-run/internal/games/rocket"
)

var (
	backgroundColor = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	craftColor      = color.RGBA{R: 80, G: 220, B: 255, A: 255}
	hitColor        = color.RGBA{R: 255, G: 70, B: 60, A: 255}
	flameColor      = color.RGBA{R: 255, G: 160, B: 40, A: 255}
	hudColor        = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 160}

	obstacleColors = []color.RGBA{
		{R: 130, G: 130, B: 140, A: 255},
		{R: 200, G: 110, B: 50, A: 255},
		{R: 220, G: 190, B: 70, A: 255},
		{R: 210, G: 210, B: 220, A: 255},
	}
)

var hudFace font.Face = basicfont.Face7x13

// Config configures the window frontend.
type Config struct {
	Runtime    core.RuntimeConfig
	Sound      audio.Player
	Logger     *log.Logger
	OnGameOver func(cue core.Cue) // Called once per finished game
}

// Frontend implements ebiten.Game around a rocket.Game.
type Frontend struct {
	game   *rocket.Game
	cfg    Config
	keys   keyState
	state  core.GameState
	over   *core.Cue // Final result shown until confirmed
	paused bool
}

// NewFrontend creates a frontend and resets the game.
func NewFrontend(game *rocket.Game, cfg Config) *Frontend {
	if cfg.Sound == nil {
		cfg.Sound = audio.Nop{}
	}
	game.Reset(cfg.Runtime)
	return &Frontend{
		game:  game,
		cfg:   cfg,
		keys:  ebitenKeys{},
		state: game.State(),
	}
}

// Update advances one tick.
func (f *Frontend) Update() error {
	in := readInput(f.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if f.over != nil {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			f.over = nil
		}
		return nil
	}

	result := f.game.Step(in)
	f.state = result.State

	for _, cue := range result.Cues {
		f.cfg.Sound.Play(cue.Kind)
		if cue.Kind == core.CueGameOver {
			c := cue
			f.over = &c
			if f.cfg.Logger != nil {
				f.cfg.Logger.Info("game over", "score", cue.Score, "level", cue.Level)
			}
			if f.cfg.OnGameOver != nil {
				f.cfg.OnGameOver(cue)
			}
		}
	}

	if f.state.Paused != f.paused {
		f.paused = f.state.Paused
		f.cfg.Sound.SetMusicPaused(f.paused)
	}
	return nil
}

// Draw renders the playfield, HUD and overlays.
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s := f.game.Session()
	for _, o := range s.Obstacles() {
		c := obstacleColors[o.Variant%len(obstacleColors)]
		fillBox(screen, o.Box(), c)
	}
	f.drawCraft(screen, s.Craft())

	w, h := s.Playfield()
	switch {
	case f.over != nil:
		f.drawOverlay(screen, w, h,
			"Game Over!",
			fmt.Sprintf("Your score: %d", f.over.Score),
			fmt.Sprintf("Level reached: %d", f.over.Level),
			"Press Enter to play again",
		)
	case f.state.Paused:
		f.drawOverlay(screen, w, h,
			"Game Paused",
			fmt.Sprintf("Level: %d", f.state.Level),
			fmt.Sprintf("Score: %d", f.state.Score),
		)
	default:
		f.drawHUD(screen, w)
	}
}

// Layout keeps the logical screen at the playfield size; Ebitengine scales
// it to the window.
func (f *Frontend) Layout(_, _ int) (int, int) {
	w, h := f.game.Session().Playfield()
	return int(w), int(h)
}

func (f *Frontend) drawCraft(screen *ebiten.Image, c rocket.Craft) {
	body := craftColor
	if f.game.Flashing() {
		body = hitColor
	}

	// Nose, hull and exhaust flame
	nose := core.NewBox(c.X+c.W*0.35, c.Y, c.W*0.3, c.H*0.25)
	hull := core.NewBox(c.X+c.W*0.15, c.Y+c.H*0.25, c.W*0.7, c.H*0.6)
	fins := core.NewBox(c.X, c.Y+c.H*0.6, c.W, c.H*0.25)
	flame := core.NewBox(c.X+c.W*0.4, c.Y+c.H*0.85, c.W*0.2, c.H*0.15)

	fillBox(screen, nose, body)
	fillBox(screen, hull, body)
	fillBox(screen, fins, body)
	fillBox(screen, flame, flameColor)
}

func (f *Frontend) drawHUD(screen *ebiten.Image, width float64) {
	score := fmt.Sprintf("Score: %d", f.state.Score)
	level := fmt.Sprintf("Level: %d", f.state.Level)
	lives := fmt.Sprintf("Lives: %d", f.state.Lives)

	text.Draw(screen, score, hudFace, 10, 20, hudColor)
	text.Draw(screen, level, hudFace, (int(width)-textWidth(level))/2, 20, hudColor)
	text.Draw(screen, lives, hudFace, int(width)-textWidth(lives)-10, 20, hudColor)
}

func (f *Frontend) drawOverlay(screen *ebiten.Image, w, h float64, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)

	const lineHeight = 24
	y := int(h)/2 - len(lines)*lineHeight/2
	for _, line := range lines {
		text.Draw(screen, line, hudFace, (int(w)-textWidth(line))/2, y, hudColor)
		y += lineHeight
	}
}

func fillBox(screen *ebiten.Image, b core.Box, c color.Color) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

func textWidth(s string) int {
	return font.MeasureString(hudFace, s).Ceil()
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *rocket.Game, cfg Config) error {
	f := NewFrontend(game, cfg)

	w, h := game.Session().Playfield()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Runtime.TickRate > 0 {
		ebiten.SetTPS(cfg.Runtime.TickRate)
	}

	if err := ebiten.RunGame(f); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
