// cmd/game/main.go
package main

import (
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"polyline-td/internal/app"
	"polyline-td/internal/config"
	"polyline-td/internal/defs"
	"polyline-td/internal/logger"
	"polyline-td/internal/render"
	"polyline-td/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	logger.Init(settings, nil)

	if settings.PprofAddr != "" {
		go func() {
			slog.Info("pprof listening", "component", "main", "addr", settings.PprofAddr)
			if err := http.ListenAndServe(settings.PprofAddr, nil); err != nil {
				slog.Error("pprof stopped", "component", "main", "error", err)
			}
		}()
	}

	catalog, err := defs.LoadCatalog(settings.DefsDir)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	levels := app.NewLevelManager(catalog, app.Options{MaxLevel: settings.MaxLevel(), Seed: settings.Seed})
	if err := levels.Select(settings.Level); err != nil {
		log.Fatalf("Failed to select level: %v", err)
	}

	sm := state.NewStateMachine(&state.Shared{
		Catalog:  catalog,
		Levels:   levels,
		Settings: settings,
		Face:     render.DefaultFace,
	})
	sm.SetState(state.NewMenuState(sm))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Polyline Tower Defense")
	ebiten.SetTPS(settings.TickRate)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
