package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rocket-run/internal/core"
)

// keyState reports keyboard state for one frame.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}
	pauseKeys   = []ebiten.Key{ebiten.KeySpace, ebiten.KeyP}
	confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// readInput builds the input frame for one tick. Steering keys act while
// held, like keyboard auto-repeat; the others act once per press.
func readInput(ks keyState) core.InputFrame {
	in := core.NewInputFrame()
	if anyKey(ks.Pressed, leftKeys) {
		in.Set(core.ActionMoveLeft)
	}
	if anyKey(ks.Pressed, rightKeys) {
		in.Set(core.ActionMoveRight)
	}
	if anyKey(ks.JustPressed, pauseKeys) {
		in.Set(core.ActionPause)
	}
	if anyKey(ks.JustPressed, confirmKeys) {
		in.Set(core.ActionConfirm)
	}
	if anyKey(ks.JustPressed, restartKeys) {
		in.Set(core.ActionRestart)
	}
	if anyKey(ks.JustPressed, quitKeys) {
		in.Set(core.ActionQuit)
	}
	return in
}

func anyKey(check func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}
