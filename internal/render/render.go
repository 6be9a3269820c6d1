// internal/render/render.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"polyline-td/internal/app"
	"polyline-td/internal/config"
	"polyline-td/internal/defs"
	"polyline-td/internal/types"
)

// DefaultFace — растровый шрифт, которым рисуется весь текст.
var DefaultFace font.Face = basicfont.Face7x13

// WorldRenderer рисует карту и сущности по снимку состояния.
type WorldRenderer struct {
	catalog *defs.Catalog
	face    font.Face
}

func NewWorldRenderer(catalog *defs.Catalog, face font.Face) *WorldRenderer {
	if face == nil {
		face = DefaultFace
	}
	return &WorldRenderer{catalog: catalog, face: face}
}

// Draw рисует путь, башни, врагов, снаряды и следы атак.
// selected — башня, у которой показывается радиус.
func (r *WorldRenderer) Draw(screen *ebiten.Image, s app.Snapshot, selected types.EntityID) {
	screen.Fill(config.BackgroundColor)
	r.drawPath(screen, s.Path)

	for _, t := range s.Towers {
		r.drawTower(screen, t, t.ID == selected)
	}
	for _, e := range s.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range s.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, config.ProjectileColor, true)
	}
}

func (r *WorldRenderer) drawPath(screen *ebiten.Image, path []defs.Point) {
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(config.StrokeWidth), config.PathColor, true)
	}
	for _, p := range path {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.WaypointRadius, config.PathColor, true)
	}
}

func (r *WorldRenderer) drawTower(screen *ebiten.Image, t app.TowerView, selected bool) {
	x, y := float32(t.X), float32(t.Y)
	if selected {
		vector.StrokeCircle(screen, x, y, float32(t.Range), 1, config.RangeColor, true)
	}
	if t.EffectActive {
		vector.StrokeLine(screen, float32(t.EffectFromX), float32(t.EffectFromY), float32(t.EffectToX), float32(t.EffectToY), 2, config.EffectColor, true)
	}

	fill := color.RGBA{128, 128, 128, 255}
	glyph := "?"
	if def, ok := r.catalog.Towers[t.Kind]; ok {
		fill = def.Visuals.Color
		glyph = def.Visuals.Glyph
	}
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius+float32(config.StrokeWidth), config.TowerStrokeColor, true)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, fill, true)

	bounds := text.BoundString(r.face, glyph)
	text.Draw(screen, glyph, r.face, int(t.X)-bounds.Dx()/2, int(t.Y)+bounds.Dy()/2, config.TextLightColor)
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := float32(e.X), float32(e.Y)
	fill := config.EnemyColor
	if def, ok := r.catalog.Enemies[e.DefID]; ok && def.Visuals.Color.A != 0 {
		fill = def.Visuals.Color
	}
	if e.Slowed {
		fill = config.EnemySlowedColor
	}
	if e.State != "walking" {
		fill = config.EnemyDyingColor
	}
	vector.DrawFilledCircle(screen, x, y, config.EnemyRadius, fill, true)

	if e.MaxHealth <= 0 || e.State != "walking" {
		return
	}
	const barW, barH = 2 * config.EnemyRadius, 4
	top := y - config.EnemyRadius - 8
	vector.DrawFilledRect(screen, x-barW/2, top, barW, barH, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, x-barW/2, top, barW*float32(e.Health/e.MaxHealth), barH, config.HealthBarFront, false)
}

// DrawGhost рисует полупрозрачную башню и её радиус под курсором.
func (r *WorldRenderer) DrawGhost(screen *ebiten.Image, kind defs.TowerKind, x, y int, affordable bool) {
	def, ok := r.catalog.Towers[kind]
	if !ok {
		return
	}
	c := def.Visuals.Color
	c.A = 120
	if !affordable {
		c = color.RGBA{200, 40, 40, 120}
	}
	vector.StrokeCircle(screen, float32(x), float32(y), float32(def.Range), 1, config.GhostRangeColor, true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), config.TowerRadius, c, true)
}

// DrawCentered пишет строку по центру экрана на высоте y.
func DrawCentered(screen *ebiten.Image, face font.Face, s string, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (config.ScreenWidth-bounds.Dx())/2, y, c)
}

// DrawOverlay затемняет экран и пишет заголовок с подсказкой.
func DrawOverlay(screen *ebiten.Image, face font.Face, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	DrawCentered(screen, face, title, config.ScreenHeight/2-10, config.TextLightColor)
	if hint != "" {
		DrawCentered(screen, face, hint, config.ScreenHeight/2+14, config.TextDimColor)
	}
}
