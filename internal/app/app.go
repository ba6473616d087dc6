package app

import (
	"aimlab/internal/analytics"
	"aimlab/internal/gamedata"
	"aimlab/internal/geom"
	"aimlab/internal/hud"
	"aimlab/internal/targets"
	"aimlab/internal/utility"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ScreenWidth  = targets.GameWidth
	ScreenHeight = targets.GameHeight
	WindowTitle  = "Aim-Lab"

	scoreSize   = 128
	statusSize  = 36
	summarySize = 15
)

var (
	ColBg     = utility.MustHexColor("#050103")
	ColLabel  = utility.MustHexColor("#332925")
	ColTarget = utility.MustHexColor("#d95338")
	ColFaint  = utility.MustHexColor("#6b5a52")
)

// Player plays a short sound; *sound.Blip satisfies it.
type Player interface {
	Play()
}

// App owns the game state, the labels and the frame clock. It implements
// ebiten.Game; all of its state is touched only from the game loop.
type App struct {
	Game      *gamedata.Game
	Sound     Player              // nil disables the hit sound
	Clipboard func(string) error // nil disables copying the round summary

	ScoreLabel   *hud.Label
	StatusLabel  *hud.Label
	SummaryLabel *hud.Label

	bounds geom.Bounds
	now    func() time.Time
	last   time.Time
}

func New(game *gamedata.Game) *App {
	bounds := geom.Bounds{W: ScreenWidth, H: ScreenHeight}
	a := &App{
		Game:         game,
		ScoreLabel:   hud.NewLabel(game.Score(), hud.NewFace(scoreSize), ColLabel, bounds, hud.AnchorCenter),
		StatusLabel:  hud.NewLabel(game.Status(), hud.NewFace(statusSize), ColLabel, bounds, hud.AnchorTop),
		SummaryLabel: hud.NewLabel("", hud.NewFace(summarySize), ColFaint, bounds, hud.AnchorBottom),
		bounds:       bounds,
		now:          time.Now,
	}
	return a
}

// Update collects this frame's input and the wall-clock time since the
// previous frame, then advances the game.
func (a *App) Update() error {
	now := a.now()
	var elapsed time.Duration
	if !a.last.IsZero() {
		elapsed = now.Sub(a.last)
	}
	a.last = now
	return a.AdvanceFrame(PollInput(), elapsed)
}

// AdvanceFrame runs one input and update pass. It returns ebiten.Termination
// when the window was asked to close.
func (a *App) AdvanceFrame(input []InputEvent, elapsed time.Duration) error {
	for _, ev := range input {
		switch ev.Kind {
		case InputQuit:
			a.Game.Abandon()
			return ebiten.Termination
		case InputRestart:
			a.Game.Reset()
		case InputShoot:
			if a.Game.AttemptShoot(ev.Pos) && a.Sound != nil {
				a.Sound.Play()
			}
		case InputCopySummary:
			a.copySummary()
		}
	}
	a.Game.Tick(elapsed.Seconds())
	a.syncLabels()
	return nil
}

func (a *App) summary() string {
	if a.Game.Active() || a.Game.RoundID() == "" {
		return ""
	}
	return analytics.Summary(a.Game.Score(), a.Game.RoundStats())
}

func (a *App) copySummary() {
	s := a.summary()
	if s == "" || a.Clipboard == nil {
		return
	}
	if err := a.Clipboard(s); err != nil {
		log.Printf("[App] clipboard error: %v\n", err)
		return
	}
	log.Printf("[App] copied round summary: %s\n", s)
}

// syncLabels re-renders a label only when its backing value changed.
func (a *App) syncLabels() {
	setIfChanged(a.ScoreLabel, a.Game.Score())
	setIfChanged(a.StatusLabel, a.Game.Status())
	setIfChanged(a.SummaryLabel, a.summary())
}

func setIfChanged(l *hud.Label, v any) {
	if s := fmt.Sprint(v); s != l.Value() {
		l.Set(s)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)

	a.ScoreLabel.Render(screen)
	a.StatusLabel.Render(screen)
	if a.SummaryLabel.Value() != "" {
		a.SummaryLabel.Render(screen)
	}

	for _, t := range a.Game.Targets.GetList() {
		t.Draw(screen, ColTarget)
	}
}

// Layout keeps the logical surface fixed and lets ebiten scale the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
