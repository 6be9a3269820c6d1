// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"

	"polyline-td/internal/app"
	"polyline-td/internal/config"
	"polyline-td/internal/defs"
	"polyline-td/internal/economy"
	"polyline-td/internal/entity"
	"polyline-td/internal/render"
	"polyline-td/internal/types"
	"polyline-td/internal/ui"
)

var _ State = (*GameState)(nil)

// Сколько секунд висит сообщение об ошибке команды
const messageDuration = 2.0

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.WorldRenderer
	hud      *ui.HUD
	panel    *ui.TowerPanel
	clicks   *rate.Limiter

	placing    defs.TowerKind // выбранный для постройки тип, пусто — не строим
	lastGamble defs.GambleOutcome
	message    string
	messageTTL float64
	snapshot   app.Snapshot
	log        *slog.Logger
}

func NewGameState(sm *StateMachine, g *app.Game) *GameState {
	shared := sm.Shared
	return &GameState{
		sm:       sm,
		game:     g,
		renderer: render.NewWorldRenderer(shared.Catalog, shared.Face),
		hud:      ui.NewHUD(shared.Catalog, shared.Face),
		panel:    ui.NewTowerPanel(shared.Face, shared.Settings.PathUpgrades),
		clicks:   rate.NewLimiter(rate.Every(config.ClickDebounce), 1),
		snapshot: g.Snapshot(),
		log:      slog.With("component", "game_state", "session", g.SessionID),
	}
}

func (g *GameState) Enter() {
	// Возврат из паузы тоже приходит сюда, состояние не сбрасываем
}

func (g *GameState) Update(deltaTime float64) {
	if g.game.IsGameOver() || g.game.IsLevelComplete() {
		g.updateFinished()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.CycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.placing = ""
		g.panel.Close()
	}
	for i, key := range towerKeys {
		if i < len(defs.TowerKinds) && inpututil.IsKeyJustPressed(key) {
			g.selectTowerKind(defs.TowerKinds[i])
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.clicks.Allow() {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.placing = ""
	}

	g.game.Update(deltaTime)
	g.refresh(deltaTime)
}

// refresh обновляет снимок, панель и сообщения после тика.
func (g *GameState) refresh(deltaTime float64) {
	g.snapshot = g.game.Snapshot()
	g.hud.Selected = g.placing
	g.hud.Sync(g.snapshot, g.sm.Shared.Catalog)

	g.panel.Update(deltaTime)
	if g.panel.Visible() {
		if tv, ok := g.selectedTower(); ok {
			g.panel.Layout(tv, g.snapshot.Money)
		} else {
			g.panel.Close()
		}
	}

	if g.messageTTL > 0 {
		g.messageTTL -= deltaTime
		if g.messageTTL <= 0 {
			g.message = ""
		}
	}
}

func (g *GameState) updateFinished() {
	g.snapshot = g.game.Snapshot()
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	lm := g.sm.Shared.Levels
	if g.game.IsLevelComplete() && lm.Next() {
		next, err := lm.NewGame()
		if err == nil {
			g.sm.SetState(NewGameState(g.sm, next))
			return
		}
		g.log.Error("Failed to start next level", "error", err)
	}
	g.sm.SetState(NewMenuState(g.sm))
}

func (g *GameState) handleClick(x, y int) {
	if g.panel.Contains(x, y) {
		if action, ok := ui.HitTest(g.panel.Buttons, x, y); ok {
			g.apply(action)
		}
		return
	}
	if g.hud.Contains(x, y) {
		if action, ok := ui.HitTest(g.hud.Buttons, x, y); ok {
			g.apply(action)
		}
		return
	}

	if g.placing != "" {
		if _, err := g.game.PlaceTower(g.placing, float64(x), float64(y)); err != nil {
			g.report(err)
		}
		return
	}
	if t, ok := g.game.TowerAt(float64(x), float64(y), config.TowerRadius); ok {
		g.lastGamble = ""
		g.panel.Open(t.ID)
		return
	}
	g.panel.Close()
}

func (g *GameState) apply(action ui.Action) {
	id := g.panel.TowerID
	switch action.Kind {
	case ui.ActionSelectTower:
		g.selectTowerKind(action.Tower)
	case ui.ActionUpgrade:
		g.report(g.game.UpgradeTower(id, action.Path))
	case ui.ActionGamble:
		outcome, err := g.game.Gamble(id)
		if err == nil {
			g.lastGamble = outcome
		}
		g.report(err)
	case ui.ActionSell:
		if _, err := g.game.SellTower(id); err != nil {
			g.report(err)
			return
		}
		g.panel.Close()
	case ui.ActionClosePanel:
		g.panel.Close()
	case ui.ActionToggleSpeed:
		g.game.CycleSpeed()
	case ui.ActionTogglePause:
		g.sm.SetState(NewPauseState(g.sm, g))
	}
}

func (g *GameState) selectTowerKind(kind defs.TowerKind) {
	if g.placing == kind {
		g.placing = ""
		return
	}
	g.placing = kind
	g.panel.Close()
}

// report показывает пользователю понятное сообщение об ошибке команды.
func (g *GameState) report(err error) {
	if err == nil {
		return
	}
	g.log.Debug("Command rejected", "error", err)
	switch {
	case errors.Is(err, economy.ErrInsufficientFunds):
		g.message = "Not enough money"
	case errors.Is(err, entity.ErrMaxLevelReached):
		g.message = "Tower is at max level"
	default:
		g.message = err.Error()
	}
	g.messageTTL = messageDuration
}

func (g *GameState) selectedTower() (app.TowerView, bool) {
	return findTower(g.snapshot, g.panel.TowerID)
}

func findTower(s app.Snapshot, id types.EntityID) (app.TowerView, bool) {
	for _, t := range s.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return app.TowerView{}, false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snapshot, g.panel.TowerID)

	face := g.sm.Shared.Face
	if g.placing != "" {
		x, y := ebiten.CursorPosition()
		if y < config.ScreenHeight-config.UIBarHeight && !g.panel.Contains(x, y) {
			def := g.sm.Shared.Catalog.Towers[g.placing]
			g.renderer.DrawGhost(screen, g.placing, x, y, def.Cost <= g.snapshot.Money)
		}
	}

	if tv, ok := g.selectedTower(); ok {
		g.panel.Draw(screen, tv, g.lastGamble)
	}
	g.hud.Draw(screen, g.snapshot)

	if g.message != "" {
		render.DrawCentered(screen, face, g.message, 30, config.TextLightColor)
	}

	switch {
	case g.snapshot.GameOver:
		render.DrawOverlay(screen, face, "GAME OVER", fmt.Sprintf("Reached wave %d. Enter for menu", g.snapshot.Wave))
	case g.snapshot.LevelComplete:
		render.DrawOverlay(screen, face, "LEVEL COMPLETE", "Enter to continue")
	}
}

func (g *GameState) Exit() {}
