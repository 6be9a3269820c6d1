// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth   = 1200
	ScreenHeight  = 950
	UIBarHeight   = 120
	MaxDeltaTime  = 0.06
	ClickDebounce = 100 * time.Millisecond

	// Снаряд засчитывает попадание ближе этого расстояния (в пикселях)
	HitThreshold = 10.0
	// Длительность анимации смерти врага, секунды
	DeathDuration = 0.5
	// Сколько живёт визуальный след атаки башни
	AttackEffectDuration = 0.15

	SellFraction          = 0.5
	UpgradeCostMultiplier = 1.5
	ClassicMaxLevel       = 3
	PathSystemMaxLevel    = 7

	// Коэффициенты для гамбла
	GambleMaxDamageBonus = 5
	GambleMaxRangeBonus  = 100.0
	GambleMaxSpeedBonus  = 2.5

	EnemyRadius      = 12.0
	TowerRadius      = 18.0
	ProjectileRadius = 4.0
	WaypointRadius   = 4.0

	PanelWidth      = 350.0
	PanelSlideSpeed = 900.0 // пикселей в секунду
)

var (
	BackgroundColor  = color.RGBA{59, 122, 87, 255}
	UIBarColor       = color.RGBA{47, 79, 79, 255}
	PanelColor       = color.RGBA{30, 30, 40, 230}
	PathColor        = color.RGBA{200, 40, 40, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{150, 150, 150, 255}
	EnemyColor       = color.RGBA{120, 200, 60, 255}
	EnemyDyingColor  = color.RGBA{90, 90, 90, 160}
	EnemySlowedColor = color.RGBA{120, 200, 255, 255}
	HealthBarBack    = color.RGBA{80, 0, 0, 255}
	HealthBarFront   = color.RGBA{0, 220, 0, 255}
	ProjectileColor  = color.RGBA{255, 230, 120, 255}
	RangeColor       = color.RGBA{255, 255, 0, 200}
	GhostRangeColor  = color.RGBA{211, 211, 211, 160}
	EffectColor      = color.RGBA{255, 255, 255, 200}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	StrokeWidth      = 2.0
)
