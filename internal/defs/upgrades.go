// internal/defs/upgrades.go
package defs

// UpgradePath — именованный профиль масштабирования характеристик.
type UpgradePath string

const (
	PathClassic  UpgradePath = "classic"
	PathBalanced UpgradePath = "balanced"
	PathDamage   UpgradePath = "damage"
	PathRange    UpgradePath = "range"
	PathSpeed    UpgradePath = "speed"
)

// UpgradePaths перечисляет пути в порядке меню улучшений.
var UpgradePaths = []UpgradePath{PathBalanced, PathDamage, PathRange, PathSpeed}

// Multipliers — на что умножаются характеристики при одном улучшении.
type Multipliers struct {
	Damage      float64
	Range       float64
	AttackSpeed float64
}

// UpgradeTable — балансная таблица множителей по путям.
var UpgradeTable = map[UpgradePath]Multipliers{
	PathClassic:  {Damage: 1.2, Range: 1.1, AttackSpeed: 1.1},
	PathBalanced: {Damage: 1.15, Range: 1.1, AttackSpeed: 1.1},
	PathDamage:   {Damage: 1.3, Range: 1.05, AttackSpeed: 1.05},
	PathRange:    {Damage: 1.05, Range: 1.3, AttackSpeed: 1.05},
	PathSpeed:    {Damage: 1.05, Range: 1.05, AttackSpeed: 1.3},
}

// UpgradeDescriptions — подписи для меню путей.
var UpgradeDescriptions = map[UpgradePath]string{
	PathClassic:  "Standard upgrade",
	PathBalanced: "Well-rounded improvements",
	PathDamage:   "Focus on firepower",
	PathRange:    "Extend attack range",
	PathSpeed:    "Faster attacks",
}
