package entity

import (
	"errors"
	"math"
	"testing"

	"polyline-td/internal/component"
	"polyline-td/internal/defs"
)

func TestFindTargetPicksNearestInRange(t *testing.T) {
	tower := NewTower(100, basicDef(), component.Position{}, 3)
	far := newEnemyAt(1, 80, 0)
	near := newEnemyAt(2, 0, 50)

	if got := tower.FindTarget([]*Enemy{far, near}); got != near {
		t.Errorf("Expected enemy at 50, got %+v", got)
	}
}

func TestFindTargetIgnoresOutOfRangeAndDying(t *testing.T) {
	tower := NewTower(100, basicDef(), component.Position{}, 3)
	outside := newEnemyAt(1, 100.5, 0)
	dying := newEnemyAt(2, 10, 0)
	dying.TakeDamage(1000)

	if got := tower.FindTarget([]*Enemy{outside, dying}); got != nil {
		t.Errorf("Expected no target, got %+v", got)
	}

	edge := newEnemyAt(3, 100, 0)
	if got := tower.FindTarget([]*Enemy{outside, edge}); got != edge {
		t.Errorf("Expected enemy exactly at range, got %+v", got)
	}
}

func TestFindTargetTieBreaksByOrder(t *testing.T) {
	tower := NewTower(100, basicDef(), component.Position{}, 3)
	first := newEnemyAt(1, 30, 40)
	second := newEnemyAt(2, -50, 0)

	if got := tower.FindTarget([]*Enemy{first, second}); got != first {
		t.Errorf("Expected first enemy on tie, got %+v", got)
	}
}

func TestAttackProjectileAndCooldown(t *testing.T) {
	tower := NewTower(100, basicDef(), component.Position{}, 3)
	target := newEnemyAt(1, 50, 0)
	enemies := []*Enemy{target}

	if !tower.Attack(enemies) {
		t.Fatal("Expected attack")
	}
	if len(tower.Projectiles) != 1 || tower.TargetID != target.ID {
		t.Fatalf("Expected one projectile at enemy 1, got %d (target %d)", len(tower.Projectiles), tower.TargetID)
	}
	if tower.Combat.Cooldown != 0.5 {
		t.Errorf("Expected cooldown 0.5, got %f", tower.Combat.Cooldown)
	}
	if !tower.Effect.Active() || tower.Effect.ToX != 50 {
		t.Errorf("Expected attack effect toward target, got %+v", tower.Effect)
	}
	if target.Health != 50 {
		t.Errorf("Projectile attack must not damage immediately, health %f", target.Health)
	}

	if tower.Attack(enemies) {
		t.Error("Expected no attack while cooling down")
	}
}

func TestAttackWithoutTarget(t *testing.T) {
	tower := NewTower(100, basicDef(), component.Position{}, 3)
	if tower.Attack([]*Enemy{newEnemyAt(1, 500, 0)}) {
		t.Error("Expected no attack")
	}
	if tower.Combat.Cooldown != 0 {
		t.Errorf("Cooldown must not reset without attack, got %f", tower.Combat.Cooldown)
	}
}

func TestAttackDirectWithSlow(t *testing.T) {
	def := basicDef()
	def.Kind = defs.TowerIce
	def.Attack = defs.AttackDirect
	def.Damage = 5
	def.Effect = &defs.EffectDef{SlowFactor: 0.5, SlowDuration: 2}
	tower := NewTower(100, def, component.Position{}, 3)
	target := newEnemyAt(1, 20, 0)

	if !tower.Attack([]*Enemy{target}) {
		t.Fatal("Expected attack")
	}
	if target.Health != 45 {
		t.Errorf("Expected health 45, got %f", target.Health)
	}
	if !target.Slow.Active() || target.Slow.SlowFactor != 0.5 {
		t.Errorf("Expected slow effect, got %+v", target.Slow)
	}
	if len(tower.Projectiles) != 0 {
		t.Error("Direct attack must not spawn projectiles")
	}
}

func TestUpdateResolvesProjectileHit(t *testing.T) {
	tower := NewTower(100, basicDef(), component.Position{}, 3)
	target := newEnemyAt(1, 60, 0)
	enemies := listOf(target)

	tower.Attack(enemies.Living())
	tower.Update(0.1, enemies) // 30 единиц
	if len(tower.Projectiles) != 1 {
		t.Fatalf("Expected projectile in flight, got %d", len(tower.Projectiles))
	}
	tower.Update(0.1, enemies)
	if len(tower.Projectiles) != 0 {
		t.Fatalf("Expected projectile to hit, got %d", len(tower.Projectiles))
	}
	if target.Health != 40 {
		t.Errorf("Expected health 40, got %f", target.Health)
	}
	if tower.Combat.Cooldown < 0 {
		t.Errorf("Cooldown must never be negative, got %f", tower.Combat.Cooldown)
	}
}

func TestUpgradeEconomics(t *testing.T) {
	tower := NewTower(100, basicDef(), component.Position{}, 2)

	if err := tower.Upgrade(defs.PathDamage); err != nil {
		t.Fatalf("Upgrade: %v", err)
	}
	if tower.Level != 2 || tower.UpgradeCost != 75 {
		t.Errorf("Expected level 2 and upgrade cost 75, got %d and %d", tower.Level, tower.UpgradeCost)
	}
	if math.Abs(tower.Combat.Damage-13) > 1e-9 {
		t.Errorf("Expected damage 13, got %f", tower.Combat.Damage)
	}
	if tower.Invested != 150 {
		t.Errorf("Expected invested 150, got %d", tower.Invested)
	}

	before := *tower
	err := tower.Upgrade(defs.PathDamage)
	if !errors.Is(err, ErrMaxLevelReached) {
		t.Fatalf("Expected ErrMaxLevelReached, got %v", err)
	}
	if tower.Level != before.Level || tower.Combat != before.Combat || tower.UpgradeCost != before.UpgradeCost || tower.Invested != before.Invested {
		t.Errorf("Failed upgrade changed the tower: %+v", tower)
	}
}

func TestUpgradeUnknownPath(t *testing.T) {
	tower := NewTower(100, basicDef(), component.Position{}, 3)
	if err := tower.Upgrade("wizardry"); !errors.Is(err, ErrUnknownUpgradePath) {
		t.Errorf("Expected ErrUnknownUpgradePath, got %v", err)
	}
	if tower.Level != 1 {
		t.Errorf("Expected level 1, got %d", tower.Level)
	}
}

func TestNextLevelStatsDoesNotMutate(t *testing.T) {
	tower := NewTower(100, basicDef(), component.Position{}, 3)
	next := tower.NextLevelStats(defs.PathRange)
	if math.Abs(next.Range-130) > 1e-9 {
		t.Errorf("Expected range 130, got %f", next.Range)
	}
	if tower.Combat.Range != 100 {
		t.Errorf("Preview must not change the tower, range %f", tower.Combat.Range)
	}
}

func TestSellValue(t *testing.T) {
	tower := NewTower(100, basicDef(), component.Position{}, 3)
	if got := tower.SellValue(); got != 50 {
		t.Errorf("Expected sell value 50, got %d", got)
	}
	tower.Upgrade(defs.PathBalanced)
	if got := tower.SellValue(); got != 75 {
		t.Errorf("Expected sell value 75 after upgrade, got %d", got)
	}
}
