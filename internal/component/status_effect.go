// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Timer      float64 // How much time is left for the effect.
	SlowFactor float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
}

// Active reports whether the slow still applies.
func (s *SlowEffect) Active() bool {
	return s.Timer > 0
}

// Multiplier returns the current speed multiplier.
func (s *SlowEffect) Multiplier() float64 {
	if !s.Active() {
		return 1.0
	}
	return s.SlowFactor
}

// Apply накладывает замедление: сильнейший множитель и наибольшая длительность.
func (s *SlowEffect) Apply(factor, duration float64) {
	if factor <= 0 || duration <= 0 {
		return
	}
	if !s.Active() || factor < s.SlowFactor {
		s.SlowFactor = factor
	}
	if duration > s.Timer {
		s.Timer = duration
	}
}

// Tick отсчитывает время эффекта.
func (s *SlowEffect) Tick(deltaTime float64) {
	if s.Timer <= 0 {
		return
	}
	s.Timer -= deltaTime
	if s.Timer <= 0 {
		s.Timer = 0
		s.SlowFactor = 1.0
	}
}
