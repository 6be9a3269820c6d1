package entity

import (
	"errors"
	"fmt"
	"math"

	"polyline-td/internal/component"
	"polyline-td/internal/config"
	"polyline-td/internal/defs"
	"polyline-td/internal/types"
)

var (
	ErrMaxLevelReached    = errors.New("tower is at max level")
	ErrUnknownUpgradePath = errors.New("unknown upgrade path")
)

// Tower — башня. Цель и снаряды ссылаются на врагов только по ID.
type Tower struct {
	ID          types.EntityID
	Kind        defs.TowerKind
	Def         defs.TowerDefinition
	Position    component.Position
	Combat      component.Combat
	Level       int
	MaxLevel    int
	UpgradeCost int
	Invested    int // стоимость постройки плюс все оплаченные улучшения
	LastPath    defs.UpgradePath
	TargetID    types.EntityID
	Effect      component.AttackEffect
	Projectiles []*Projectile
	Kills       int
}

// NewTower создаёт башню первого уровня по определению из каталога.
func NewTower(id types.EntityID, def defs.TowerDefinition, pos component.Position, maxLevel int) *Tower {
	if maxLevel < 1 {
		maxLevel = 1
	}
	return &Tower{
		ID:       id,
		Kind:     def.Kind,
		Def:      def,
		Position: pos,
		Combat: component.Combat{
			Range:           def.Range,
			Damage:          def.Damage,
			AttackSpeed:     def.AttackSpeed,
			ProjectileSpeed: def.ProjectileSpeed,
		},
		Level:       1,
		MaxLevel:    maxLevel,
		UpgradeCost: def.UpgradeCost,
		Invested:    def.Cost,
	}
}

// FindTarget выбирает ближайшего живого врага в радиусе. При равенстве
// расстояний побеждает первый по порядку.
func (t *Tower) FindTarget(enemies []*Enemy) *Enemy {
	var nearest *Enemy
	minDistance := math.MaxFloat64
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		distance := t.Position.DistanceTo(e.Position)
		if distance <= t.Combat.Range && distance < minDistance {
			minDistance = distance
			nearest = e
		}
	}
	return nearest
}

// Attack пытается атаковать. Возвращает true, если атака состоялась.
func (t *Tower) Attack(enemies []*Enemy) bool {
	if !t.Combat.Ready() {
		return false
	}
	target := t.FindTarget(enemies)
	if target == nil {
		t.TargetID = 0
		return false
	}
	t.TargetID = target.ID

	switch t.Def.Attack {
	case defs.AttackProjectile:
		proj := &Projectile{
			Position: t.Position,
			TargetID: target.ID,
			Damage:   t.Combat.Damage,
			Speed:    t.Combat.ProjectileSpeed,
		}
		if t.Def.Effect != nil {
			proj.SplashRadius = t.Def.Effect.SplashRadius
		}
		t.Projectiles = append(t.Projectiles, proj)
	default:
		if target.TakeDamage(t.Combat.Damage) {
			t.Kills++
		}
		if t.Def.Effect != nil && t.Def.Effect.SlowFactor > 0 {
			target.ApplySlow(t.Def.Effect.SlowFactor, t.Def.Effect.SlowDuration)
		}
	}

	t.Combat.Cooldown = t.Combat.Interval()
	t.Effect.Start(t.Position, target.Position, config.AttackEffectDuration)
	return true
}

// Update тикает перезарядку, снаряды и визуальный эффект.
func (t *Tower) Update(deltaTime float64, enemies *EnemyList) {
	t.Combat.Tick(deltaTime)

	kept := t.Projectiles[:0]
	for _, p := range t.Projectiles {
		done, kills := p.Step(deltaTime, enemies)
		t.Kills += kills
		if !done {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(t.Projectiles); i++ {
		t.Projectiles[i] = nil
	}
	t.Projectiles = kept

	t.Effect.Tick(deltaTime)
}

// CanUpgrade reports whether another level is available.
func (t *Tower) CanUpgrade() bool {
	return t.Level < t.MaxLevel
}

// CheckUpgrade проверяет улучшение по пути без изменения состояния.
// Вызывается до списания денег.
func (t *Tower) CheckUpgrade(path defs.UpgradePath) error {
	if !t.CanUpgrade() {
		return fmt.Errorf("tower %d level %d/%d: %w", t.ID, t.Level, t.MaxLevel, ErrMaxLevelReached)
	}
	if _, ok := defs.UpgradeTable[path]; !ok {
		return fmt.Errorf("path %q: %w", path, ErrUnknownUpgradePath)
	}
	return nil
}

// Upgrade повышает уровень и масштабирует характеристики по выбранному пути.
// Оплата уже списана вызывающим; её сумма добавляется к вложениям.
func (t *Tower) Upgrade(path defs.UpgradePath) error {
	if err := t.CheckUpgrade(path); err != nil {
		return err
	}
	t.Combat = t.NextLevelStats(path)
	t.Level++
	t.LastPath = path
	t.Invested += t.UpgradeCost
	t.UpgradeCost = int(math.Round(float64(t.UpgradeCost) * config.UpgradeCostMultiplier))
	return nil
}

// NextLevelStats возвращает характеристики после улучшения по пути.
func (t *Tower) NextLevelStats(path defs.UpgradePath) component.Combat {
	next := t.Combat
	m, ok := defs.UpgradeTable[path]
	if !ok {
		return next
	}
	next.Damage *= m.Damage
	next.Range *= m.Range
	next.AttackSpeed *= m.AttackSpeed
	return next
}

// SellValue — доля всех вложений в башню.
func (t *Tower) SellValue() int {
	return int(float64(t.Invested) * config.SellFraction)
}

// ScaleStats умножает урон, радиус и скорость атаки на factor.
func (t *Tower) ScaleStats(factor float64) {
	t.Combat.Damage *= factor
	t.Combat.Range *= factor
	t.Combat.AttackSpeed *= factor
}

// BoostStats прибавляет фиксированные бонусы к характеристикам.
func (t *Tower) BoostStats(damage, rng, attackSpeed float64) {
	t.Combat.Damage += damage
	t.Combat.Range += rng
	t.Combat.AttackSpeed += attackSpeed
}
