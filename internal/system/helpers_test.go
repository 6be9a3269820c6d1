package system

import (
	"polyline-td/internal/component"
	"polyline-td/internal/defs"
	"polyline-td/internal/economy"
	"polyline-td/internal/entity"
	"polyline-td/internal/event"
	"polyline-td/internal/types"
)

func testCatalog() *defs.Catalog {
	return &defs.Catalog{
		Enemies: map[string]defs.EnemyDefinition{
			"grunt": {ID: "grunt", Health: 50, Speed: 100, Reward: 25},
		},
	}
}

func testLevel(pathEnd float64, waves ...defs.WaveDefinition) defs.LevelDefinition {
	return defs.LevelDefinition{
		ID:         1,
		Spawn:      defs.Point{X: 0, Y: 0},
		Path:       []defs.Point{{X: 0, Y: 0}, {X: pathEnd, Y: 0}},
		Waves:      waves,
		MoneyStart: 1000,
		Lives:      10,
	}
}

func newTestScheduler(waves ...defs.WaveDefinition) *SpawnScheduler {
	s, err := NewSpawnScheduler(testLevel(10000, waves...), testCatalog(), entity.NewIDAllocator())
	if err != nil {
		panic(err)
	}
	return s
}

func newTestResolver(pathEnd float64, waves ...defs.WaveDefinition) (*CombatResolver, *economy.Economy, *event.Dispatcher) {
	s, err := NewSpawnScheduler(testLevel(pathEnd, waves...), testCatalog(), entity.NewIDAllocator())
	if err != nil {
		panic(err)
	}
	econ := economy.New(1000)
	events := event.NewDispatcher()
	return NewCombatResolver(s, econ, events), econ, events
}

type eventCounter map[event.EventType]int

func (c eventCounter) OnEvent(e event.Event) {
	c[e.Type]++
}

func (c eventCounter) subscribeAll(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.EnemySpawned, event.EnemyKilled, event.LifeLost,
		event.WaveStarted, event.WaveEnded, event.LevelComplete,
	} {
		d.Subscribe(t, c)
	}
}

func entityTower(id uint64, def defs.TowerDefinition, x, y float64) *entity.Tower {
	return entity.NewTower(types.EntityID(id), def, component.Position{X: x, Y: y}, 3)
}
