// cmd/termview/main.go
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"polyline-td/internal/app"
	"polyline-td/internal/config"
	"polyline-td/internal/defs"
	"polyline-td/internal/economy"
	"polyline-td/internal/entity"
	"polyline-td/internal/logger"
	"polyline-td/internal/types"
)

const logFile = "termview.log"

// termView — терминальный фронтенд: та же симуляция, отрисовка символами.
type termView struct {
	screen  tcell.Screen
	levels  *app.LevelManager
	catalog *defs.Catalog
	game    *app.Game
	view    viewport
	clicks  *rate.Limiter

	cursorCol, cursorRow int
	placing              defs.TowerKind
	selected             types.EntityID // 0 — ничего не выбрано
	pathIndex            int
	pathSystem           bool
	message              string
	lastUpdate           time.Time
}

func newTermView(screen tcell.Screen, levels *app.LevelManager, catalog *defs.Catalog, pathSystem bool) (*termView, error) {
	g, err := levels.NewGame()
	if err != nil {
		return nil, err
	}
	w, h := screen.Size()
	return &termView{
		screen:     screen,
		levels:     levels,
		catalog:    catalog,
		game:       g,
		view:       newViewport(w, h),
		clicks:     rate.NewLimiter(rate.Every(config.ClickDebounce), 1),
		pathSystem: pathSystem,
		placing:    defs.TowerBasic,
		lastUpdate: time.Now(),
	}, nil
}

func (t *termView) run(tickRate int) {
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			now := time.Now()
			deltaTime := now.Sub(t.lastUpdate).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			t.lastUpdate = now
			t.game.Update(deltaTime)
			t.draw()
		}
	}
}

func (t *termView) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 && t.clicks.Allow() {
			col, row := ev.Position()
			if row < t.view.rows {
				t.cursorCol, t.cursorRow = col, row
				t.activate()
			}
		}
	case *tcell.EventResize:
		w, h := t.screen.Size()
		t.view = newViewport(w, h)
		t.cursorCol = clamp(t.cursorCol, 0, t.view.cols-1)
		t.cursorRow = clamp(t.cursorRow, 0, t.view.rows-1)
		t.screen.Sync()
	}
	return true
}

func (t *termView) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		t.cursorRow = clamp(t.cursorRow-1, 0, t.view.rows-1)
	case tcell.KeyDown:
		t.cursorRow = clamp(t.cursorRow+1, 0, t.view.rows-1)
	case tcell.KeyLeft:
		t.cursorCol = clamp(t.cursorCol-1, 0, t.view.cols-1)
	case tcell.KeyRight:
		t.cursorCol = clamp(t.cursorCol+1, 0, t.view.cols-1)
	case tcell.KeyEnter:
		if t.game.IsGameOver() || t.game.IsLevelComplete() {
			t.nextGame()
			return true
		}
		t.activate()
	case tcell.KeyTab:
		if t.pathSystem {
			t.pathIndex = (t.pathIndex + 1) % len(defs.UpgradePaths)
		}
	case tcell.KeyRune:
		return t.handleRune(ev.Rune())
	}
	return true
}

func (t *termView) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(defs.TowerKinds) {
			t.placing = defs.TowerKinds[i]
			t.selected = 0
		}
	case r == ' ':
		t.activate()
	case r == 'p':
		t.game.TogglePause()
	case r == 'f':
		t.game.CycleSpeed()
	case r == 'u' && t.selected != 0:
		t.report(t.game.UpgradeTower(t.selected, t.upgradePath()))
	case r == 'g' && t.selected != 0:
		outcome, err := t.game.Gamble(t.selected)
		t.report(err)
		if err == nil {
			t.message = fmt.Sprintf("Gamble: %s", outcome)
		}
	case r == 's' && t.selected != 0:
		value, err := t.game.SellTower(t.selected)
		t.report(err)
		if err == nil {
			t.message = fmt.Sprintf("Sold for $%d", value)
			t.selected = 0
		}
	}
	return true
}

func (t *termView) upgradePath() defs.UpgradePath {
	if !t.pathSystem {
		return defs.PathClassic
	}
	return defs.UpgradePaths[t.pathIndex]
}

// activate выбирает башню под курсором или строит новую.
func (t *termView) activate() {
	x, y := t.view.toWorld(t.cursorCol, t.cursorRow)
	if tower, ok := t.game.TowerAt(x, y, t.view.pickRadius()); ok {
		t.selected = tower.ID
		return
	}
	t.selected = 0
	if t.placing == "" {
		return
	}
	if _, err := t.game.PlaceTower(t.placing, x, y); err != nil {
		t.report(err)
	}
}

func (t *termView) nextGame() {
	if t.game.IsLevelComplete() && !t.levels.Next() {
		t.message = "All levels complete"
		return
	}
	g, err := t.levels.NewGame()
	if err != nil {
		t.report(err)
		return
	}
	t.game = g
	t.selected = 0
	t.message = ""
}

func (t *termView) report(err error) {
	if err == nil {
		return
	}
	slog.Debug("Command rejected", "component", "termview", "error", err)
	switch {
	case errors.Is(err, economy.ErrInsufficientFunds):
		t.message = "Not enough money"
	case errors.Is(err, entity.ErrMaxLevelReached):
		t.message = "Tower is at max level"
	default:
		t.message = err.Error()
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run держит всю настройку в одной функции, чтобы отложенные Close и Fini
// отработали до выхода с ошибкой.
func run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	catalog, err := defs.LoadCatalog(settings.DefsDir)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}
	levels := app.NewLevelManager(catalog, app.Options{MaxLevel: settings.MaxLevel(), Seed: settings.Seed})
	if err := levels.Select(settings.Level); err != nil {
		return fmt.Errorf("failed to select level: %w", err)
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()
	logger.Init(settings, f)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	tv, err := newTermView(screen, levels, catalog, settings.PathUpgrades)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	tv.run(settings.TickRate)
	return nil
}
