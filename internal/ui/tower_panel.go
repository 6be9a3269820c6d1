// internal/ui/tower_panel.go
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
	panelPadding  = 15
	lineHeight    = 20
	buttonHeight  = 32
	buttonSpacing = 8
	statsLines    = 8
)

// TowerPanel рисует содержимое выезжающей панели и её кнопки.
type TowerPanel struct {
	*Panel
	Buttons    []Button
	PathSystem bool // улучшения по путям вместо классического
	face       font.Face
}

func NewTowerPanel(face font.Face, pathSystem bool) *TowerPanel {
	return &TowerPanel{Panel: NewPanel(), PathSystem: pathSystem, face: face}
}

// Layout пересчитывает кнопки под текущее положение панели и состояние башни.
func (p *TowerPanel) Layout(t app.TowerView, money int) {
	x0 := int(p.X) + panelPadding
	x1 := int(p.X+p.Width) - panelPadding
	y := panelPadding + lineHeight*(statsLines+1)

	p.Buttons = p.Buttons[:0]
	maxed := t.Level >= t.MaxLevel
	paths := []defs.UpgradePath{defs.PathClassic}
	if p.PathSystem {
		paths = defs.UpgradePaths
	}
	for _, path := range paths {
		label := fmt.Sprintf("Upgrade %s ($%d)", path, t.UpgradeCost)
		if maxed {
			label = "Max level"
		}
		p.Buttons = append(p.Buttons, Button{
			Rect:     image.Rect(x0, y, x1, y+buttonHeight),
			Label:    label,
			Hint:     defs.UpgradeDescriptions[path],
			Action:   Action{Kind: ActionUpgrade, Path: path},
			Disabled: maxed || money < t.UpgradeCost,
		})
		y += buttonHeight + buttonSpacing + lineHeight
	}

	half := (x1 - x0 - buttonSpacing) / 2
	p.Buttons = append(p.Buttons,
		Button{
			Rect:     image.Rect(x0, y, x0+half, y+buttonHeight),
			Label:    fmt.Sprintf("Gamble ($%d)", t.UpgradeCost),
			Action:   Action{Kind: ActionGamble},
			Disabled: money < t.UpgradeCost,
		},
		Button{
			Rect:   image.Rect(x1-half, y, x1, y+buttonHeight),
			Label:  fmt.Sprintf("Sell ($%d)", t.SellValue),
			Action: Action{Kind: ActionSell},
		},
	)
	y += buttonHeight + buttonSpacing
	p.Buttons = append(p.Buttons, Button{
		Rect:   image.Rect(x0, y, x1, y+buttonHeight),
		Label:  "Close",
		Action: Action{Kind: ActionClosePanel},
	})
}

// Draw рисует панель для башни t. Ничего не делает, если панель скрыта.
func (p *TowerPanel) Draw(screen *ebiten.Image, t app.TowerView, lastGamble defs.GambleOutcome) {
	if !p.Visible() {
		return
	}
	height := float32(config.ScreenHeight - config.UIBarHeight)
	vector.DrawFilledRect(screen, float32(p.X), 0, float32(p.Width), height, config.PanelColor, false)
	vector.StrokeLine(screen, float32(p.X), 0, float32(p.X), height, 2, config.TextDimColor, true)

	x := int(p.X) + panelPadding
	y := panelPadding + lineHeight
	lines := []string{
		t.Name,
		fmt.Sprintf("Level: %d / %d", t.Level, t.MaxLevel),
		fmt.Sprintf("Damage: %.1f", t.Damage),
		fmt.Sprintf("Range: %.0f", t.Range),
		fmt.Sprintf("Attack speed: %.2f/s", t.AttackSpeed),
		fmt.Sprintf("Kills: %d", t.Kills),
		fmt.Sprintf("Sell value: $%d", t.SellValue),
	}
	if lastGamble != "" {
		lines = append(lines, fmt.Sprintf("Last gamble: %s", lastGamble))
	}
	for i, line := range lines {
		c := config.TextLightColor
		if i > 0 {
			c = config.TextDimColor
		}
		text.Draw(screen, line, p.face, x, y, c)
		y += lineHeight
	}

	for i := range p.Buttons {
		p.Buttons[i].Draw(screen, p.face)
	}
}
