// internal/defs/towers.go
package defs

import "image/color"

// TowerKind — закрытый перечень архетипов башен.
type TowerKind string

const (
	TowerBasic  TowerKind = "basic"
	TowerArcher TowerKind = "archer"
	TowerCannon TowerKind = "cannon"
	TowerSniper TowerKind = "sniper"
	TowerIce    TowerKind = "ice"
)

// TowerKinds перечисляет архетипы в порядке меню.
var TowerKinds = []TowerKind{TowerBasic, TowerArcher, TowerCannon, TowerSniper, TowerIce}

// Valid reports whether k is one of the known archetypes.
func (k TowerKind) Valid() bool {
	for _, known := range TowerKinds {
		if k == known {
			return true
		}
	}
	return false
}

// AttackMode определяет, как башня доставляет урон.
type AttackMode string

const (
	AttackProjectile AttackMode = "projectile"
	AttackDirect     AttackMode = "direct"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Kind            TowerKind  `json:"kind"`
	Name            string     `json:"name"`
	Range           float64    `json:"range"`
	Damage          float64    `json:"damage"`
	AttackSpeed     float64    `json:"attack_speed"` // атак в секунду
	Cost            int        `json:"cost"`
	UpgradeCost     int        `json:"upgrade_cost"`
	ProjectileSpeed float64    `json:"projectile_speed"`
	Attack          AttackMode `json:"attack"`
	Effect          *EffectDef `json:"effect,omitempty"`
	Visuals         Visuals    `json:"visuals"`
}

// EffectDef — необязательные параметры особого эффекта башни.
type EffectDef struct {
	// Для ледяной башни
	SlowFactor   float64 `json:"slow_factor,omitempty"`
	SlowDuration float64 `json:"slow_duration,omitempty"`
	// Для пушки
	SplashRadius float64 `json:"splash_radius,omitempty"`
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color color.RGBA `json:"color"`
	Glyph string     `json:"glyph"`
}
