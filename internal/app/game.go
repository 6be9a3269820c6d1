// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"polyline-td/internal/config"
	"polyline-td/internal/defs"
	"polyline-td/internal/economy"
	"polyline-td/internal/entity"
	"polyline-td/internal/event"
	"polyline-td/internal/system"
	"polyline-td/internal/utils"
)

var (
	ErrTowerNotFound = errors.New("tower not found")
	ErrGameOver      = errors.New("game is over")
)

// Скорости игры, между которыми переключается кнопка скорости.
var gameSpeeds = []float64{1, 2, 4}

// Options — параметры новой партии.
type Options struct {
	MaxLevel int   // предел уровня башен: 3 для классических улучшений, 7 для путей
	Seed     int64 // сид для колеса удачи, 0 — от времени
}

// Game holds the main game state and logic for one level.
type Game struct {
	SessionID       string
	Level           defs.LevelDefinition
	Catalog         *defs.Catalog
	Economy         *economy.Economy
	Resolver        *system.CombatResolver
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	ids        *entity.IDAllocator
	maxLevel   int
	lives      int
	isPaused   bool
	isGameOver bool
	speedIndex int
	log        *slog.Logger
}

// NewGame initializes a new game instance for the given level.
func NewGame(catalog *defs.Catalog, level defs.LevelDefinition, opts Options) (*Game, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if opts.MaxLevel < 1 {
		opts.MaxLevel = config.ClassicMaxLevel
	}

	ids := entity.NewIDAllocator()
	scheduler, err := system.NewSpawnScheduler(level, catalog, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to create spawn scheduler for level %d: %w", level.ID, err)
	}

	sessionID := uuid.NewString()
	econ := economy.New(level.MoneyStart)
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		SessionID:       sessionID,
		Level:           level,
		Catalog:         catalog,
		Economy:         econ,
		Resolver:        system.NewCombatResolver(scheduler, econ, eventDispatcher),
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(opts.Seed),
		ids:             ids,
		maxLevel:        opts.MaxLevel,
		lives:           level.Lives,
		log:             slog.With("component", "game", "session", sessionID),
	}

	listener := &GameEventListener{log: g.log}
	for _, t := range []event.EventType{event.EnemyKilled, event.LifeLost, event.WaveStarted, event.LevelComplete} {
		eventDispatcher.Subscribe(t, listener)
	}

	g.log.Info("Game started",
		"level", level.ID,
		"waves", len(level.Waves),
		"money", level.MoneyStart,
		"lives", level.Lives,
		"max_tower_level", opts.MaxLevel,
	)
	if len(level.Waves) > 0 {
		eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: 1})
	}
	return g, nil
}

// Update продвигает симуляцию. На паузе и после поражения ничего не делает.
func (g *Game) Update(deltaTime float64) system.TickResult {
	if g.isPaused || g.isGameOver {
		return system.TickResult{}
	}

	res := g.Resolver.Tick(deltaTime * gameSpeeds[g.speedIndex])
	if res.Escaped > 0 {
		g.loseLives(res.Escaped)
	}
	return res
}

func (g *Game) loseLives(n int) {
	g.lives -= n
	if g.lives > 0 {
		return
	}
	g.lives = 0
	if !g.isGameOver {
		g.isGameOver = true
		g.log.Info("Game over", "wave", g.Resolver.Scheduler().WaveIndex()+1)
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

func (g *Game) Pause()  { g.isPaused = true }
func (g *Game) Resume() { g.isPaused = false }

// TogglePause переключает паузу и возвращает новое состояние.
func (g *Game) TogglePause() bool {
	g.isPaused = !g.isPaused
	return g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// CycleSpeed переключает скорость x1 → x2 → x4 → x1.
func (g *Game) CycleSpeed() float64 {
	g.speedIndex = (g.speedIndex + 1) % len(gameSpeeds)
	return gameSpeeds[g.speedIndex]
}

func (g *Game) Speed() float64 {
	return gameSpeeds[g.speedIndex]
}

func (g *Game) Lives() int {
	return g.lives
}

func (g *Game) Money() int {
	return g.Economy.Balance()
}

func (g *Game) IsGameOver() bool {
	return g.isGameOver
}

func (g *Game) IsLevelComplete() bool {
	return g.Resolver.LevelComplete()
}

// MaxTowerLevel — предел уровня для башен этой партии.
func (g *Game) MaxTowerLevel() int {
	return g.maxLevel
}
