package component

// Combat — боевые характеристики башни
type Combat struct {
	Range           float64
	Damage          float64
	AttackSpeed     float64 // Атак в секунду
	Cooldown        float64 // Оставшееся время до следующей атаки
	ProjectileSpeed float64
}

// Interval — период между атаками.
func (c *Combat) Interval() float64 {
	return 1.0 / c.AttackSpeed
}

// Tick уменьшает перезарядку, не опуская её ниже нуля.
func (c *Combat) Tick(deltaTime float64) {
	c.Cooldown -= deltaTime
	if c.Cooldown < 0 {
		c.Cooldown = 0
	}
}

// Ready reports whether the tower may attack this tick.
func (c *Combat) Ready() bool {
	return c.Cooldown <= 0
}
