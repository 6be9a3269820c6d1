package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"polyline-td/internal/app"
	"polyline-td/internal/config"
	"polyline-td/internal/types"
)

var (
	styleBase   = tcell.StyleDefault.Background(rgb(config.BackgroundColor)).Foreground(rgb(config.TextLightColor))
	stylePath   = styleBase.Foreground(rgb(config.PathColor))
	styleStatus = tcell.StyleDefault.Background(rgb(config.UIBarColor)).Foreground(rgb(config.TextLightColor))
	styleDim    = styleStatus.Foreground(rgb(config.TextDimColor))
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *termView) draw() {
	s := t.game.Snapshot()
	t.screen.Clear()
	w, h := t.screen.Size()
	for row := 0; row < t.view.rows; row++ {
		for col := 0; col < w; col++ {
			t.screen.SetContent(col, row, ' ', nil, styleBase)
		}
	}

	t.drawPath(s)
	selected, hasSelected := selectedTower(s, t.selected)
	if hasSelected {
		t.drawRange(selected)
	}
	for _, tw := range s.Towers {
		t.drawTower(tw)
	}
	for _, p := range s.Projectiles {
		t.put(p.X, p.Y, '*', styleBase.Foreground(rgb(config.ProjectileColor)))
	}
	for _, e := range s.Enemies {
		t.drawEnemy(e)
	}

	// Курсор
	ch, _, st, _ := t.screen.GetContent(t.cursorCol, t.cursorRow)
	t.screen.SetContent(t.cursorCol, t.cursorRow, ch, nil, st.Reverse(true))

	t.drawStatus(s, w, h)
	t.screen.Show()
}

func (t *termView) put(x, y float64, r rune, style tcell.Style) {
	if col, row, ok := t.view.toCell(x, y); ok {
		t.screen.SetContent(col, row, r, nil, style)
	}
}

// drawPath рисует отрезки пути точками с шагом в полклетки.
func (t *termView) drawPath(s app.Snapshot) {
	step := config.ScreenWidth / float64(t.view.cols) / 2
	for i := 1; i < len(s.Path); i++ {
		a, b := s.Path[i-1], s.Path[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := distance(dx, dy)
		if length == 0 {
			continue
		}
		for d := 0.0; d <= length; d += step {
			t.put(a.X+dx*d/length, a.Y+dy*d/length, '·', stylePath)
		}
	}
	for _, p := range s.Path {
		t.put(p.X, p.Y, 'o', stylePath)
	}
}

func (t *termView) drawRange(tw app.TowerView) {
	r := tw.Range
	cx, cy := tw.X, tw.Y
	for a := 0; a < 72; a++ {
		x, y := circlePoint(cx, cy, r, a)
		t.put(x, y, '.', styleBase.Foreground(rgb(config.RangeColor)))
	}
}

func (t *termView) drawTower(tw app.TowerView) {
	glyph := '?'
	style := styleBase.Bold(true)
	if def, ok := t.catalog.Towers[tw.Kind]; ok {
		if def.Visuals.Glyph != "" {
			glyph = []rune(def.Visuals.Glyph)[0]
		}
		style = style.Foreground(rgb(def.Visuals.Color))
	}
	if t.selected == tw.ID {
		style = style.Underline(true)
	}
	t.put(tw.X, tw.Y, glyph, style)
}

func (t *termView) drawEnemy(e app.EnemyView) {
	c := config.EnemyColor
	glyph := '@'
	switch {
	case e.State != "walking":
		c = config.EnemyDyingColor
		glyph = 'x'
	case e.Slowed:
		c = config.EnemySlowedColor
	}
	t.put(e.X, e.Y, glyph, styleBase.Foreground(rgb(c)))
}

func (t *termView) drawStatus(s app.Snapshot, w, h int) {
	line1 := fmt.Sprintf(" $%d  Lives %d  Wave %d/%d  x%g", s.Money, s.Lives, s.Wave, s.WaveCount, s.Speed)
	switch {
	case s.GameOver:
		line1 += "  GAME OVER (Enter to restart)"
	case s.LevelComplete:
		line1 += "  LEVEL COMPLETE (Enter for next)"
	case s.Paused:
		line1 += "  PAUSED"
	}

	line2 := fmt.Sprintf(" Build: %s  [1-5] type  [Space] place/select  [p]ause  [f]ast  [q]uit", t.placing)
	line3 := " " + t.message
	if tw, ok := selectedTower(s, t.selected); ok {
		line2 = fmt.Sprintf(" %s L%d/%d dmg %.1f rng %.0f spd %.2f kills %d", tw.Name, tw.Level, tw.MaxLevel,
			tw.Damage, tw.Range, tw.AttackSpeed, tw.Kills)
		line3 = fmt.Sprintf(" [u]pgrade %s $%d  [g]amble $%d  [s]ell $%d  %s",
			t.upgradePath(), tw.UpgradeCost, tw.UpgradeCost, tw.SellValue, t.message)
	}

	for i, line := range []string{line1, line2, line3} {
		style := styleStatus
		if i == 2 {
			style = styleDim
		}
		drawString(t.screen, 0, h-statusRows+i, w, line, style)
	}
}

func drawString(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		if col >= width {
			return
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		screen.SetContent(col, y, ' ', nil, style)
	}
}

// selectedTower ищет выбранную башню в снимке; проданная башня не находится.
func selectedTower(s app.Snapshot, id types.EntityID) (app.TowerView, bool) {
	if id == 0 {
		return app.TowerView{}, false
	}
	for _, tw := range s.Towers {
		if tw.ID == id {
			return tw, true
		}
	}
	return app.TowerView{}, false
}
