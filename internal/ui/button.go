// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"polyline-td/internal/config"
)

// Отступ подсказки от нижнего края кнопки
const hintOffset = 14

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Label    string
	Hint     string // строка под кнопкой, пусто — нет
	Action   Action
	Disabled bool
	Color    color.RGBA
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку с подписью по центру.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := b.Color
	if bg.A == 0 {
		bg = color.RGBA{70, 70, 90, 255}
	}
	textColor := config.TextLightColor
	if b.Disabled {
		bg = color.RGBA{50, 50, 55, 255}
		textColor = config.TextDimColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.TextDimColor, true)

	bounds := text.BoundString(face, b.Label)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Label, face, textX, textY, textColor)

	if b.Hint != "" {
		text.Draw(screen, b.Hint, face, b.Rect.Min.X, b.Rect.Max.Y+hintOffset, config.TextDimColor)
	}
}

// HitTest возвращает действие первой активной кнопки под точкой.
func HitTest(buttons []Button, x, y int) (Action, bool) {
	for i := range buttons {
		if buttons[i].Contains(x, y) && !buttons[i].Disabled {
			return buttons[i].Action, true
		}
	}
	return Action{}, false
}
