// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"polyline-td/internal/app"
	"polyline-td/internal/config"
	"polyline-td/internal/defs"
)

const (
	hudMargin      = 12
	paletteButtonW = 150
	paletteButtonH = 44
	controlButtonW = 70
)

// HUD — нижняя панель: выбор башни, деньги, жизни, волна, скорость и пауза.
type HUD struct {
	Buttons  []Button
	Selected defs.TowerKind
	face     font.Face
}

// NewHUD раскладывает кнопки башен в порядке меню.
func NewHUD(catalog *defs.Catalog, face font.Face) *HUD {
	h := &HUD{face: face}
	top := config.ScreenHeight - config.UIBarHeight + hudMargin
	x := hudMargin
	for i, kind := range defs.TowerKinds {
		def, ok := catalog.Towers[kind]
		if !ok {
			continue
		}
		h.Buttons = append(h.Buttons, Button{
			Rect:   image.Rect(x, top, x+paletteButtonW, top+paletteButtonH),
			Label:  fmt.Sprintf("%d %s $%d", i+1, def.Name, def.Cost),
			Action: Action{Kind: ActionSelectTower, Tower: kind},
			Color:  def.Visuals.Color,
		})
		x += paletteButtonW + hudMargin
	}

	right := config.ScreenWidth - hudMargin
	h.Buttons = append(h.Buttons,
		Button{
			Rect:   image.Rect(right-controlButtonW, top, right, top+paletteButtonH),
			Label:  "Pause",
			Action: Action{Kind: ActionTogglePause},
		},
		Button{
			Rect:   image.Rect(right-2*controlButtonW-hudMargin, top, right-controlButtonW-hudMargin, top+paletteButtonH),
			Label:  "x1",
			Action: Action{Kind: ActionToggleSpeed},
		},
	)
	return h
}

// Contains reports whether the point is on the bottom bar.
func (h *HUD) Contains(x, y int) bool {
	return y >= config.ScreenHeight-config.UIBarHeight
}

// Sync обновляет подписи и доступность кнопок по снимку.
func (h *HUD) Sync(s app.Snapshot, catalog *defs.Catalog) {
	for i := range h.Buttons {
		b := &h.Buttons[i]
		switch b.Action.Kind {
		case ActionSelectTower:
			b.Disabled = catalog.Towers[b.Action.Tower].Cost > s.Money
		case ActionToggleSpeed:
			b.Label = fmt.Sprintf("x%g", s.Speed)
		case ActionTogglePause:
			b.Label = "Pause"
			if s.Paused {
				b.Label = "Resume"
			}
		}
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	top := float32(config.ScreenHeight - config.UIBarHeight)
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, config.UIBarHeight, config.UIBarColor, false)

	for i := range h.Buttons {
		h.Buttons[i].Draw(screen, h.face)
		if h.Buttons[i].Action.Kind == ActionSelectTower && h.Buttons[i].Action.Tower == h.Selected {
			r := h.Buttons[i].Rect
			vector.StrokeRect(screen, float32(r.Min.X)-2, float32(r.Min.Y)-2, float32(r.Dx())+4, float32(r.Dy())+4, 2, config.RangeColor, true)
		}
	}

	status := fmt.Sprintf("Money: %d   Lives: %d   Wave: %d/%d", s.Money, s.Lives, s.Wave, s.WaveCount)
	text.Draw(screen, status, h.face, hudMargin, config.ScreenHeight-hudMargin-8, config.TextLightColor)
}
