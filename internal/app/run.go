package app

import (
	"aimlab/internal/broadcast"
	"aimlab/internal/config"
	"aimlab/internal/db"
	"aimlab/internal/events"
	"aimlab/internal/gamedata"
	"aimlab/internal/server"
	"aimlab/internal/sound"
	"aimlab/internal/telemetry"
	"aimlab/internal/wshub"
	"context"
	"log"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const shutdownTimeout = 3 * time.Second

func Run() error {
	appCfg := config.Load()

	gameCfg := gamedata.Config{
		RoundDuration:  appCfg.RoundDuration,
		InitialTargets: appCfg.TargetCount,
		TargetRadius:   appCfg.TargetRadius,
		SpawnMargin:    appCfg.SpawnMargin,
	}
	bus := events.NewBus()
	game := gamedata.NewGame(gamedata.NewTargetStore(gameCfg), bus, gameCfg)
	b := broadcast.NewBroadcaster(bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sinks sync.WaitGroup

	// Optional database telemetry
	if appCfg.DatabaseURL != "" {
		database, err := db.Connect(appCfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] Failed to connect: %v (running without telemetry)\n", err)
		} else if err := database.Migrate(); err != nil {
			log.Printf("[DB] Migration failed: %v (running without telemetry)\n", err)
			database.Close()
		} else {
			defer database.Close()
			sub := b.Subscribe()
			sinks.Add(1)
			go func() {
				defer sinks.Done()
				telemetry.NewWriter(database).Run(ctx, sub)
			}()
			log.Println("[DB] Telemetry enabled")
		}
	} else {
		log.Println("[DB] DATABASE_URL not set, running without telemetry")
	}

	// Optional spectator feed
	if appCfg.SpectatorAddr != "" {
		hub := wshub.NewHub()
		go hub.Pump(ctx, b.Subscribe())
		go func() {
			if err := server.Run(ctx, appCfg.SpectatorAddr, hub); err != nil {
				log.Printf("[Spectator] %v\n", err)
			}
		}()
	}

	a := New(game)
	a.Clipboard = clipboard.WriteAll
	if appCfg.Sound {
		a.Sound = sound.NewBlip(audio.NewContext(sound.SampleRate))
	}
	game.Reset()
	a.syncLabels()

	ebiten.SetWindowSize(ScreenWidth*appCfg.WindowScale, ScreenHeight*appCfg.WindowScale)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(appCfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(a)

	// The loop has stopped publishing; closing the bus lets every sink see
	// the final events and then a closed channel.
	bus.Close()
	waitFor(&sinks, shutdownTimeout)
	if dropped := bus.Dropped(); dropped > 0 {
		log.Printf("[App] %d events dropped by a full bus\n", dropped)
	}
	return err
}

func waitFor(wg *sync.WaitGroup, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		log.Println("[App] timed out waiting for telemetry to flush")
	}
}
