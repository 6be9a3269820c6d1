package entity

import (
	"polyline-td/internal/component"
	"polyline-td/internal/config"
	"polyline-td/internal/defs"
	"polyline-td/internal/types"
)

// Enemy — враг, идущий по ломаной. Жизненный цикл: Walking → Dying → Removed.
// Дошедший до конца пути враг сразу переходит в Removed с флагом Escaped.
type Enemy struct {
	ID        types.EntityID
	DefID     string
	Position  component.Position
	Path      component.Path
	Speed     float64 // единиц в секунду
	Health    float64
	MaxHealth float64
	Reward    int
	State     component.Lifecycle
	Slow      component.SlowEffect
	Escaped   bool

	deathTimer float64
}

// NewEnemy создаёт врага в точке появления. Если первая точка пути совпадает
// с точкой появления, она пропускается.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, spawn component.Position, waypoints []component.Position) *Enemy {
	e := &Enemy{
		ID:        id,
		DefID:     def.ID,
		Position:  spawn,
		Path:      component.Path{Waypoints: waypoints},
		Speed:     def.Speed,
		Health:    def.Health,
		MaxHealth: def.Health,
		Reward:    def.Reward,
		State:     component.Walking,
	}
	if len(waypoints) > 0 && waypoints[0] == spawn {
		e.Path.CurrentIndex = 1
	}
	return e
}

// Alive reports whether the enemy can still be targeted.
func (e *Enemy) Alive() bool {
	return e.State == component.Walking
}

// ShouldRemove reports whether the enemy may be deleted from the active set.
func (e *Enemy) ShouldRemove() bool {
	return e.State == component.Removed
}

// Advance продвигает врага на один тик. Возвращает true ровно в тот тик,
// когда враг прошёл последнюю точку пути.
//
// За тик враг достигает не более одной точки пути: остаток хода после
// привязки к точке не переносится на следующий отрезок.
func (e *Enemy) Advance(deltaTime float64) bool {
	switch e.State {
	case component.Dying:
		e.deathTimer -= deltaTime
		if e.deathTimer <= 0 {
			e.deathTimer = 0
			e.State = component.Removed
		}
		return false
	case component.Removed:
		return false
	}

	target, ok := e.Path.Target()
	if !ok {
		e.escape()
		return true
	}

	step := e.Speed * e.Slow.Multiplier() * deltaTime
	e.Slow.Tick(deltaTime)

	dx := target.X - e.Position.X
	dy := target.Y - e.Position.Y
	dist := e.Position.DistanceTo(target)

	if dist <= step {
		e.Position = target
		e.Path.CurrentIndex++
		if e.Path.Finished() {
			e.escape()
			return true
		}
		return false
	}

	e.Position.X += dx / dist * step
	e.Position.Y += dy / dist * step
	return false
}

// TakeDamage наносит урон. Неположительный урон и урон по умирающему врагу
// ничего не делают. Возвращает true, если этот удар убил врага.
func (e *Enemy) TakeDamage(amount float64) bool {
	if e.State != component.Walking || amount <= 0 {
		return false
	}
	e.Health -= amount
	if e.Health > 0 {
		return false
	}
	e.Health = 0
	e.State = component.Dying
	e.deathTimer = config.DeathDuration
	return true
}

// ApplySlow накладывает замедление на живого врага.
func (e *Enemy) ApplySlow(factor, duration float64) {
	if !e.Alive() {
		return
	}
	e.Slow.Apply(factor, duration)
}

func (e *Enemy) escape() {
	e.Escaped = true
	e.State = component.Removed
}
