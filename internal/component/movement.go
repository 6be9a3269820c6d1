// component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// DistanceTo возвращает евклидово расстояние до другой точки.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Path — компонент пути. Индекс только растёт.
type Path struct {
	Waypoints    []Position
	CurrentIndex int
}

// Finished reports whether every waypoint has been reached.
func (p *Path) Finished() bool {
	return p.CurrentIndex >= len(p.Waypoints)
}

// Target возвращает текущую точку назначения.
func (p *Path) Target() (Position, bool) {
	if p.Finished() {
		return Position{}, false
	}
	return p.Waypoints[p.CurrentIndex], true
}
