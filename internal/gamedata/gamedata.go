package gamedata

import (
	"aimlab/internal/analytics"
	"aimlab/internal/events"
	"aimlab/internal/geom"
	"aimlab/internal/targets"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

type Scene string

const (
	SceneActive   = Scene("active")
	SceneGameOver = Scene("game_over")
)

const RestartMessage = "press 'space' to restart game"

type Config struct {
	RoundDuration  int // seconds
	InitialTargets int
	TargetRadius   int
	SpawnMargin    int
}

func DefaultConfig() Config {
	return Config{
		RoundDuration:  30,
		InitialTargets: 10,
		TargetRadius:   targets.DefaultRadius,
		SpawnMargin:    targets.DefaultMargin,
	}
}

// NewTargetStore builds a target store sized for the default playfield and
// the radius and margin in cfg.
func NewTargetStore(cfg Config, opts ...targets.Option) *targets.Store {
	base := []targets.Option{
		targets.WithRadius(float64(cfg.TargetRadius)),
		targets.WithMargin(cfg.SpawnMargin),
	}
	return targets.NewStore(append(base, opts...)...)
}

// GameData is a read-only snapshot for rendering and tests.
type GameData struct {
	Scene    Scene
	RoundID  string
	Score    int
	TimeLeft float64
	Targets  []*targets.Target
	Stats    analytics.Stats
}

// Game is the round state machine. Active accepts shots and counts down;
// GameOver ignores both until Reset. It is owned by the game loop goroutine.
type Game struct {
	scene    Scene
	score    int
	timeLeft float64
	clock    float64 // seconds elapsed in the current round
	roundID  string
	stats    analytics.Stats
	Targets  *targets.Store
	Events   *events.Bus
	Tracker  *analytics.Tracker
	Config   Config
	now      func() time.Time
}

func NewGame(ts *targets.Store, bus *events.Bus, cfg Config) *Game {
	return &Game{
		scene:   SceneGameOver,
		Targets: ts,
		Events:  bus,
		Tracker: analytics.NewTracker(),
		Config:  cfg,
		now:     time.Now,
	}
}

func (g *Game) Get() GameData {
	return GameData{
		Scene:    g.scene,
		RoundID:  g.roundID,
		Score:    g.score,
		TimeLeft: g.timeLeft,
		Targets:  g.Targets.GetList(),
		Stats:    g.RoundStats(),
	}
}

func (g *Game) Scene() Scene {
	return g.scene
}

func (g *Game) Active() bool {
	return g.scene == SceneActive
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) TimeLeft() float64 {
	return g.timeLeft
}

func (g *Game) RoundID() string {
	return g.roundID
}

// RoundStats returns live stats while active and the final stats after the
// round has ended.
func (g *Game) RoundStats() analytics.Stats {
	if g.Active() {
		return g.Tracker.Stats()
	}
	return g.stats
}

// Status is the text shown by the timer label.
func (g *Game) Status() string {
	if !g.Active() {
		return RestartMessage
	}
	return fmt.Sprint(int(math.Floor(math.Max(g.timeLeft, 0))))
}

// Reset starts a new round. A round still in progress is reported as aborted.
func (g *Game) Reset() {
	g.Abandon()

	g.roundID = uuid.NewString()
	g.score = 0
	g.timeLeft = float64(g.Config.RoundDuration)
	g.clock = 0
	g.stats = analytics.Stats{}
	g.Tracker.Reset()

	g.Targets.Clear()
	for i := 0; i < g.Config.InitialTargets; i++ {
		g.SpawnTarget()
	}
	g.scene = SceneActive

	g.publish(events.Event{
		Kind:       events.KindRoundStarted,
		DurationMs: g.Config.RoundDuration * 1000,
	})
}

// Abandon ends a round in progress before its countdown runs out, e.g. when
// the window closes.
func (g *Game) Abandon() {
	if !g.Active() {
		return
	}
	g.publish(events.Event{
		Kind:       events.KindRoundEnded,
		DurationMs: int(math.Round(g.clock * 1000)),
		Aborted:    true,
	})
	g.stats = g.Tracker.Stats()
	g.scene = SceneGameOver
	g.Targets.Clear()
}

func (g *Game) SpawnTarget() *targets.Target {
	return g.Targets.Add(g.clock)
}

// AttemptShoot removes the first target, in spawn order, containing p and
// replaces it. At most one target is destroyed per shot.
func (g *Game) AttemptShoot(p geom.Point) bool {
	if !g.Active() {
		return false
	}

	hit := g.Targets.HitFirst(p)
	if hit == nil {
		g.Tracker.Miss()
		g.publish(events.Event{Kind: events.KindShot, X: p.X, Y: p.Y})
		return false
	}

	g.SpawnTarget()
	g.score++
	reaction := g.Tracker.Hit(hit.SpawnedAt, g.clock)
	g.publish(events.Event{
		Kind:       events.KindShot,
		Hit:        true,
		X:          p.X,
		Y:          p.Y,
		TargetID:   hit.ID,
		ReactionMs: reaction,
	})
	return true
}

// Tick advances the countdown by elapsed seconds. Non-positive elapsed
// values and ticks outside an active round are ignored.
func (g *Game) Tick(elapsed float64) {
	if !g.Active() || g.timeLeft <= 0 || elapsed <= 0 {
		return
	}

	g.Tracker.Observe(math.Min(elapsed, g.timeLeft))
	g.clock += elapsed
	g.timeLeft -= elapsed
	if g.timeLeft > 0 {
		return
	}

	g.stats = g.Tracker.Stats()
	g.scene = SceneGameOver
	g.Targets.Clear()
	g.publish(events.Event{
		Kind:       events.KindRoundEnded,
		DurationMs: g.Config.RoundDuration * 1000,
	})
}

func (g *Game) publish(ev events.Event) {
	if g.Events == nil {
		return
	}
	ev.RoundID = g.roundID
	ev.At = g.now()
	ev.Score = g.score
	ev.TimeLeft = math.Max(g.timeLeft, 0)
	g.Events.Publish(ev)
}
