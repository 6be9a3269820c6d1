package main

import "math"

func distance(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// circlePoint возвращает точку окружности для шага в 5 градусов.
func circlePoint(cx, cy, r float64, step int) (float64, float64) {
	angle := float64(step) * 5 * math.Pi / 180
	return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
}
