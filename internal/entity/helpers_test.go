package entity

import (
	"polyline-td/internal/component"
	"polyline-td/internal/defs"
	"polyline-td/internal/types"
)

var gruntDef = defs.EnemyDefinition{ID: "grunt", Health: 50, Speed: 10, Reward: 25}

// newEnemyAt создаёт неподвижного врага: путь из одной далёкой точки.
func newEnemyAt(id types.EntityID, x, y float64) *Enemy {
	pos := component.Position{X: x, Y: y}
	return NewEnemy(id, gruntDef, pos, []component.Position{{X: 10000, Y: 10000}})
}

func listOf(enemies ...*Enemy) *EnemyList {
	l := NewEnemyList()
	for _, e := range enemies {
		l.Add(e)
	}
	return l
}

func basicDef() defs.TowerDefinition {
	return defs.TowerDefinition{
		Kind:            defs.TowerBasic,
		Range:           100,
		Damage:          10,
		AttackSpeed:     2,
		Cost:            100,
		UpgradeCost:     50,
		ProjectileSpeed: 300,
		Attack:          defs.AttackProjectile,
	}
}
