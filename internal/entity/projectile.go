package entity

import (
	"polyline-td/internal/component"
	"polyline-td/internal/config"
	"polyline-td/internal/types"
)

// Projectile — самонаводящийся снаряд. Цель хранится только по ID
// и проверяется каждый тик.
type Projectile struct {
	Position     component.Position
	TargetID     types.EntityID
	Damage       float64
	Speed        float64
	SplashRadius float64
}

// Step двигает снаряд к текущей позиции цели. Возвращает done=true, если
// снаряд нужно убрать (попал или цель пропала), и число убитых попаданием врагов.
func (p *Projectile) Step(deltaTime float64, enemies *EnemyList) (done bool, kills int) {
	target, ok := enemies.Get(p.TargetID)
	if !ok || !target.Alive() {
		// Цель пропала, снаряд исчезает без урона
		return true, 0
	}

	dx := target.Position.X - p.Position.X
	dy := target.Position.Y - p.Position.Y
	dist := p.Position.DistanceTo(target.Position)
	step := p.Speed * deltaTime

	if dist <= step {
		p.Position = target.Position
	} else if dist > 0 {
		p.Position.X += dx / dist * step
		p.Position.Y += dy / dist * step
	}

	if p.Position.DistanceTo(target.Position) >= config.HitThreshold {
		return false, 0
	}
	return true, p.hit(target, enemies)
}

func (p *Projectile) hit(target *Enemy, enemies *EnemyList) int {
	kills := 0
	if target.TakeDamage(p.Damage) {
		kills++
	}
	if p.SplashRadius <= 0 {
		return kills
	}
	for _, e := range enemies.All() {
		if e.ID == target.ID || !e.Alive() {
			continue
		}
		if e.Position.DistanceTo(p.Position) <= p.SplashRadius && e.TakeDamage(p.Damage) {
			kills++
		}
	}
	return kills
}
