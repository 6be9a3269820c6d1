package main

import "polyline-td/internal/config"

// viewport переводит координаты игрового поля в клетки терминала и обратно.
type viewport struct {
	cols, rows int // клеток под поле, без строк статуса
}

const statusRows = 3

func newViewport(width, height int) viewport {
	rows := height - statusRows
	if rows < 1 {
		rows = 1
	}
	if width < 1 {
		width = 1
	}
	return viewport{cols: width, rows: rows}
}

func fieldHeight() float64 {
	return config.ScreenHeight - config.UIBarHeight
}

// toCell возвращает клетку для точки поля; ok=false, если точка за краем.
func (v viewport) toCell(x, y float64) (col, row int, ok bool) {
	col = int(x / config.ScreenWidth * float64(v.cols))
	row = int(y / fieldHeight() * float64(v.rows))
	ok = x >= 0 && y >= 0 && col < v.cols && row < v.rows
	return col, row, ok
}

// toWorld возвращает центр клетки в координатах поля.
func (v viewport) toWorld(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * config.ScreenWidth / float64(v.cols)
	y = (float64(row) + 0.5) * fieldHeight() / float64(v.rows)
	return x, y
}

// pickRadius — радиус выбора башни, не меньше половины клетки.
func (v viewport) pickRadius() float64 {
	cell := config.ScreenWidth / float64(v.cols)
	if h := fieldHeight() / float64(v.rows); h > cell {
		cell = h
	}
	if cell < config.TowerRadius {
		return config.TowerRadius
	}
	return cell
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
