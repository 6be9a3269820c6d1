package app

import (
	"testing"

	"polyline-td/internal/defs"
)

func testCatalog() *defs.Catalog {
	return &defs.Catalog{
		Towers: map[defs.TowerKind]defs.TowerDefinition{
			defs.TowerBasic: {
				Kind: defs.TowerBasic, Name: "Basic", Range: 200, Damage: 100, AttackSpeed: 1,
				Cost: 100, UpgradeCost: 50, Attack: defs.AttackDirect,
			},
		},
		Enemies: map[string]defs.EnemyDefinition{
			"grunt": {ID: "grunt", Health: 50, Speed: 100, Reward: 25},
		},
		Levels: []defs.LevelDefinition{
			testLevel(1, 10000, 1000, 10),
			testLevel(2, 50, 500, 1),
		},
	}
}

func testLevel(id int, pathEnd float64, money, lives int) defs.LevelDefinition {
	return defs.LevelDefinition{
		ID:         id,
		Spawn:      defs.Point{X: 0, Y: 0},
		Path:       []defs.Point{{X: 0, Y: 0}, {X: pathEnd, Y: 0}},
		Waves:      []defs.WaveDefinition{{EnemyID: "grunt", Count: 1, SpawnRate: 1.0}},
		MoneyStart: money,
		Lives:      lives,
	}
}

func newTestGame(t *testing.T, level defs.LevelDefinition) *Game {
	t.Helper()
	g, err := NewGame(testCatalog(), level, Options{MaxLevel: 3, Seed: 42})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

// runFor прогоняет симуляцию кадрами по 50 мс.
func runFor(g *Game, seconds float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += 0.05 {
		g.Update(0.05)
	}
}
