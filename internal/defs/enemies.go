// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  float64 `json:"health"`
	Speed   float64 `json:"speed"` // единиц в секунду
	Reward  int     `json:"reward"`
	Visuals Visuals `json:"visuals"`
}
