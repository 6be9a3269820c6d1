// internal/state/menu_state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"polyline-td/internal/config"
	"polyline-td/internal/render"
)

var _ State = (*MenuState)(nil)

// MenuState — выбор уровня
type MenuState struct {
	sm     *StateMachine
	cursor int
	errMsg string
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {
	// Курсор на текущем уровне менеджера
	current := m.sm.Shared.Levels.Current().ID
	for i, l := range m.sm.Shared.Catalog.Levels {
		if l.ID == current {
			m.cursor = i
		}
	}
}

func (m *MenuState) Update(deltaTime float64) {
	levels := m.sm.Shared.Catalog.Levels
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) && m.cursor > 0 {
		m.cursor--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && m.cursor < len(levels)-1 {
		m.cursor++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.start(levels[m.cursor].ID)
	}
}

func (m *MenuState) start(levelID int) {
	lm := m.sm.Shared.Levels
	if err := lm.Select(levelID); err != nil {
		m.errMsg = err.Error()
		return
	}
	g, err := lm.NewGame()
	if err != nil {
		slog.Error("Failed to start level", "component", "menu", "level", levelID, "error", err)
		m.errMsg = err.Error()
		return
	}
	m.sm.SetState(NewGameState(m.sm, g))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.sm.Shared.Face

	render.DrawCentered(screen, face, "POLYLINE TOWER DEFENSE", 200, config.TextLightColor)
	render.DrawCentered(screen, face, "Up/Down to choose a level, Enter to start", 230, config.TextDimColor)

	y := 300
	for i, l := range m.sm.Shared.Catalog.Levels {
		line := fmt.Sprintf("Level %d: %s  (%d waves)", l.ID, l.Name, len(l.Waves))
		c := config.TextDimColor
		if i == m.cursor {
			line = "> " + line + " <"
			c = config.TextLightColor
		}
		render.DrawCentered(screen, face, line, y, c)
		y += 24
	}
	if m.errMsg != "" {
		render.DrawCentered(screen, face, m.errMsg, y+24, config.PathColor)
	}
}

func (m *MenuState) Exit() {
	m.errMsg = ""
}
