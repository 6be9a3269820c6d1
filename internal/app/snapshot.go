package app

import (
	"polyline-td/internal/defs"
	"polyline-td/internal/types"
)

// EnemyView — состояние врага для отрисовки.
type EnemyView struct {
	ID        types.EntityID
	DefID     string
	X, Y      float64
	Health    float64
	MaxHealth float64
	State     string
	Slowed    bool
}

// TowerView — состояние башни для отрисовки и панели.
type TowerView struct {
	ID          types.EntityID
	Kind        defs.TowerKind
	Name        string
	X, Y        float64
	Range       float64
	Damage      float64
	AttackSpeed float64
	Cooldown    float64
	Level       int
	MaxLevel    int
	UpgradeCost int
	SellValue   int
	Kills       int

	// Луч последней прямой атаки, пока он виден
	EffectActive             bool
	EffectFromX, EffectFromY float64
	EffectToX, EffectToY     float64
}

type ProjectileView struct {
	X, Y float64
}

// Snapshot — копия состояния партии только для чтения.
type Snapshot struct {
	Enemies       []EnemyView
	Towers        []TowerView
	Projectiles   []ProjectileView
	Path          []defs.Point
	Money         int
	Lives         int
	Wave          int // с единицы
	WaveCount     int
	Paused        bool
	GameOver      bool
	LevelComplete bool
	Speed         float64
}

// Snapshot собирает текущее состояние. Фронтенды читают только его.
func (g *Game) Snapshot() Snapshot {
	scheduler := g.Resolver.Scheduler()
	s := Snapshot{
		Money:         g.Economy.Balance(),
		Lives:         g.lives,
		Wave:          scheduler.WaveIndex() + 1,
		WaveCount:     scheduler.WaveCount(),
		Paused:        g.isPaused,
		GameOver:      g.isGameOver,
		LevelComplete: g.Resolver.LevelComplete(),
		Speed:         g.Speed(),
	}
	if s.Wave > s.WaveCount {
		s.Wave = s.WaveCount
	}

	for _, p := range scheduler.Path() {
		s.Path = append(s.Path, defs.Point{X: p.X, Y: p.Y})
	}

	for _, e := range g.Resolver.Enemies().All() {
		s.Enemies = append(s.Enemies, EnemyView{
			ID:        e.ID,
			DefID:     e.DefID,
			X:         e.Position.X,
			Y:         e.Position.Y,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			State:     e.State.String(),
			Slowed:    e.Slow.Active(),
		})
	}

	for _, t := range g.Resolver.Towers() {
		tv := TowerView{
			ID:          t.ID,
			Kind:        t.Kind,
			Name:        t.Def.Name,
			X:           t.Position.X,
			Y:           t.Position.Y,
			Range:       t.Combat.Range,
			Damage:      t.Combat.Damage,
			AttackSpeed: t.Combat.AttackSpeed,
			Cooldown:    t.Combat.Cooldown,
			Level:       t.Level,
			MaxLevel:    t.MaxLevel,
			UpgradeCost: t.UpgradeCost,
			SellValue:   t.SellValue(),
			Kills:       t.Kills,
		}
		if t.Effect.Active() {
			tv.EffectActive = true
			tv.EffectFromX, tv.EffectFromY = t.Effect.FromX, t.Effect.FromY
			tv.EffectToX, tv.EffectToY = t.Effect.ToX, t.Effect.ToY
		}
		s.Towers = append(s.Towers, tv)
		for _, p := range t.Projectiles {
			s.Projectiles = append(s.Projectiles, ProjectileView{X: p.Position.X, Y: p.Position.Y})
		}
	}
	return s
}
