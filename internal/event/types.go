// internal/event/types.go
package event

const (
	EnemySpawned   EventType = "EnemySpawned"   // Враг появился
	EnemyKilled    EventType = "EnemyKilled"    // Враг убит и убран, Data — награда
	LifeLost       EventType = "LifeLost"       // Враг дошёл до конца пути
	WaveStarted    EventType = "WaveStarted"    // Началась волна, Data — номер с единицы
	WaveEnded      EventType = "WaveEnded"      // Волна закончилась
	LevelComplete  EventType = "LevelComplete"  // Волны кончились
	GameOver       EventType = "GameOver"       // Жизни кончились
	TowerPlaced    EventType = "TowerPlaced"    // Башня построена
	TowerUpgraded  EventType = "TowerUpgraded"  // Башня улучшена
	TowerRemoved   EventType = "TowerRemoved"   // Башня продана
	GambleResolved EventType = "GambleResolved" // Результат колеса
)
