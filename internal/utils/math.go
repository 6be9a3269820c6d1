// internal/utils/math.go
package utils

import "math"

// MoveTowards сдвигает value к target не более чем на maxDelta.
func MoveTowards(value, target, maxDelta float64) float64 {
	if math.Abs(target-value) <= maxDelta {
		return target
	}
	if target > value {
		return value + maxDelta
	}
	return value - maxDelta
}

// PointInCircle проверяет попадание точки в круг.
func PointInCircle(px, py, cx, cy, r float64) bool {
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}
