// internal/defs/levels.go
package defs

// Point — точка на карте в пикселях.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	EnemyID   string  `json:"enemy"`
	Count     int     `json:"count"`
	SpawnRate float64 `json:"spawn_rate"` // секунд между появлениями
}

// LevelDefinition — уровень: маршрут, волны и стартовые ресурсы.
type LevelDefinition struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Spawn      Point            `json:"spawn"`
	Path       []Point          `json:"path"`
	Waves      []WaveDefinition `json:"waves"`
	MoneyStart int              `json:"money_start"`
	Lives      int              `json:"lives"`
}
