package app

import (
	"aimlab/internal/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type InputKind int

const (
	InputQuit InputKind = iota
	InputRestart
	InputShoot
	InputCopySummary
)

// InputEvent is one player action; Pos is only set for InputShoot.
type InputEvent struct {
	Kind InputKind
	Pos  geom.Point
}

func Quit() InputEvent        { return InputEvent{Kind: InputQuit} }
func Restart() InputEvent     { return InputEvent{Kind: InputRestart} }
func CopySummary() InputEvent { return InputEvent{Kind: InputCopySummary} }

func Shoot(x, y float64) InputEvent {
	return InputEvent{Kind: InputShoot, Pos: geom.Pt(x, y)}
}

// PollInput drains the actions ebiten saw since the previous tick. The
// window close request comes first so nothing else runs on the final frame.
func PollInput() []InputEvent {
	var evs []InputEvent
	if ebiten.IsWindowBeingClosed() {
		return append(evs, Quit())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		evs = append(evs, Restart())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		evs = append(evs, Shoot(float64(x), float64(y)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		evs = append(evs, CopySummary())
	}
	return evs
}
