// internal/component/visual.go
package component

// AttackEffect — короткий визуальный след атаки башни (линия от башни к цели).
// На геймплей не влияет.
type AttackEffect struct {
	FromX, FromY float64
	ToX, ToY     float64
	Timer        float64 // Сколько времени эффекту осталось
	Duration     float64 // Общая продолжительность эффекта
}

// Start перезапускает эффект.
func (e *AttackEffect) Start(from, to Position, duration float64) {
	e.FromX, e.FromY = from.X, from.Y
	e.ToX, e.ToY = to.X, to.Y
	e.Timer = duration
	e.Duration = duration
}

// Tick уменьшает таймер эффекта.
func (e *AttackEffect) Tick(deltaTime float64) {
	if e.Timer <= 0 {
		return
	}
	e.Timer -= deltaTime
	if e.Timer < 0 {
		e.Timer = 0
	}
}

// Active reports whether the effect should still be drawn.
func (e *AttackEffect) Active() bool {
	return e.Timer > 0
}
