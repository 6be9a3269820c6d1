// internal/system/wave.go
package system

import (
	"fmt"

	"polyline-td/internal/component"
	"polyline-td/internal/defs"
	"polyline-td/internal/entity"
)

// Погрешность сравнения накопленного времени с интервалом появления.
// Без неё сумма 0.1*10 даёт 0.9999999999999999 и появление сдвигается на тик.
const spawnEpsilon = 1e-9

// SpawnScheduler выпускает врагов текущей волны с заданным интервалом.
// Переход к следующей волне делает CombatResolver.
type SpawnScheduler struct {
	waves   []defs.WaveDefinition
	enemies map[string]defs.EnemyDefinition
	spawn   component.Position
	path    []component.Position
	ids     *entity.IDAllocator
	wave    component.Wave
}

func NewSpawnScheduler(level defs.LevelDefinition, catalog *defs.Catalog, ids *entity.IDAllocator) (*SpawnScheduler, error) {
	enemies := make(map[string]defs.EnemyDefinition, len(level.Waves))
	for i, w := range level.Waves {
		def, err := catalog.Enemy(w.EnemyID)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i+1, err)
		}
		if w.SpawnRate <= 0 {
			return nil, fmt.Errorf("wave %d: spawn rate must be positive, got %f", i+1, w.SpawnRate)
		}
		enemies[w.EnemyID] = def
	}

	path := make([]component.Position, len(level.Path))
	for i, p := range level.Path {
		path[i] = component.Position{X: p.X, Y: p.Y}
	}

	return &SpawnScheduler{
		waves:   level.Waves,
		enemies: enemies,
		spawn:   component.Position{X: level.Spawn.X, Y: level.Spawn.Y},
		path:    path,
		ids:     ids,
	}, nil
}

// Tick накапливает время и выпускает столько врагов, сколько положено.
// Остаток времени сохраняется, так что средний темп не зависит от dt.
func (s *SpawnScheduler) Tick(deltaTime float64) []*entity.Enemy {
	w, ok := s.Current()
	if !ok || s.wave.Spawned >= w.Count {
		return nil
	}

	s.wave.Accumulator += deltaTime
	var spawned []*entity.Enemy
	for s.wave.Accumulator+spawnEpsilon >= w.SpawnRate && s.wave.Spawned < w.Count {
		spawned = append(spawned, entity.NewEnemy(s.ids.NewEntity(), s.enemies[w.EnemyID], s.spawn, s.path))
		s.wave.Spawned++
		s.wave.Accumulator -= w.SpawnRate
	}
	return spawned
}

// QuotaMet reports whether the current wave has spawned all its enemies.
func (s *SpawnScheduler) QuotaMet() bool {
	w, ok := s.Current()
	return ok && s.wave.Spawned >= w.Count
}

// AdvanceWave переходит к следующей волне. Возвращает false, если волн больше нет.
func (s *SpawnScheduler) AdvanceWave() bool {
	if s.Exhausted() {
		return false
	}
	s.wave = component.Wave{Index: s.wave.Index + 1}
	return !s.Exhausted()
}

// Exhausted reports whether all waves are done; the scheduler is inert then.
func (s *SpawnScheduler) Exhausted() bool {
	return s.wave.Index >= len(s.waves)
}

// Current возвращает определение текущей волны.
func (s *SpawnScheduler) Current() (defs.WaveDefinition, bool) {
	if s.Exhausted() {
		return defs.WaveDefinition{}, false
	}
	return s.waves[s.wave.Index], true
}

func (s *SpawnScheduler) WaveIndex() int {
	return s.wave.Index
}

func (s *SpawnScheduler) WaveCount() int {
	return len(s.waves)
}

func (s *SpawnScheduler) SpawnedInWave() int {
	return s.wave.Spawned
}

// Path возвращает маршрут врагов (для отрисовки).
func (s *SpawnScheduler) Path() []component.Position {
	return s.path
}
