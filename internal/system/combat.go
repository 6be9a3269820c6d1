package system

import (
	"log/slog"

	"polyline-td/internal/economy"
	"polyline-td/internal/entity"
	"polyline-td/internal/event"
	"polyline-td/internal/types"
)

// TickResult — что произошло за один тик.
type TickResult struct {
	Spawned       int
	Escaped       int
	Killed        int
	Reward        int
	WaveAdvanced  bool
	LevelComplete bool
}

// CombatResolver связывает башни, врагов и снаряды в один тик
// с фиксированным порядком шагов.
type CombatResolver struct {
	scheduler     *SpawnScheduler
	enemies       *entity.EnemyList
	towers        []*entity.Tower
	economy       *economy.Economy
	events        *event.Dispatcher
	levelComplete bool
	log           *slog.Logger
}

func NewCombatResolver(scheduler *SpawnScheduler, econ *economy.Economy, events *event.Dispatcher) *CombatResolver {
	if events == nil {
		events = event.NewDispatcher()
	}
	return &CombatResolver{
		scheduler: scheduler,
		enemies:   entity.NewEnemyList(),
		economy:   econ,
		events:    events,
		log:       slog.With("component", "combat"),
	}
}

// Tick выполняет один кадр симуляции:
//  1. появление врагов;
//  2. движение всех врагов;
//  3. башни: перезарядка и снаряды, затем атака по живым врагам;
//  4. уборка удалённых врагов и начисление наград;
//  5. проверка перехода к следующей волне.
func (r *CombatResolver) Tick(deltaTime float64) TickResult {
	var res TickResult

	for _, e := range r.scheduler.Tick(deltaTime) {
		r.enemies.Add(e)
		res.Spawned++
		r.events.Dispatch(event.Event{Type: event.EnemySpawned, Data: e.ID})
	}

	for _, e := range r.enemies.All() {
		if e.Advance(deltaTime) {
			res.Escaped++
			r.events.Dispatch(event.Event{Type: event.LifeLost, Data: e.ID})
		}
	}

	living := r.enemies.Living()
	for _, t := range r.towers {
		t.Update(deltaTime, r.enemies)
		t.Attack(living)
	}

	r.enemies.Sweep(func(e *entity.Enemy) {
		if e.Escaped {
			return
		}
		r.economy.Credit(e.Reward)
		res.Killed++
		res.Reward += e.Reward
		r.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: e.Reward})
	})

	if !r.levelComplete && r.enemies.Len() == 0 {
		switch {
		case r.scheduler.Exhausted():
			// Уровень без волн
			r.completeLevel(&res)
		case r.scheduler.QuotaMet():
			finished := r.scheduler.WaveIndex() + 1
			r.events.Dispatch(event.Event{Type: event.WaveEnded, Data: finished})
			if r.scheduler.AdvanceWave() {
				res.WaveAdvanced = true
				r.log.Info("Wave cleared", "wave", finished, "next", finished+1)
				r.events.Dispatch(event.Event{Type: event.WaveStarted, Data: finished + 1})
			} else {
				r.completeLevel(&res)
			}
		}
	}

	return res
}

// completeLevel отмечает конец уровня; сообщается один раз.
func (r *CombatResolver) completeLevel(res *TickResult) {
	r.levelComplete = true
	res.LevelComplete = true
	r.log.Info("Level complete", "waves", r.scheduler.WaveCount())
	r.events.Dispatch(event.Event{Type: event.LevelComplete})
}

// LevelComplete reports whether every wave has been cleared.
func (r *CombatResolver) LevelComplete() bool {
	return r.levelComplete
}

func (r *CombatResolver) Scheduler() *SpawnScheduler {
	return r.scheduler
}

func (r *CombatResolver) Enemies() *entity.EnemyList {
	return r.enemies
}

// Towers возвращает башни в порядке постройки.
func (r *CombatResolver) Towers() []*entity.Tower {
	return r.towers
}

func (r *CombatResolver) AddTower(t *entity.Tower) {
	r.towers = append(r.towers, t)
}

// Tower ищет башню по ID.
func (r *CombatResolver) Tower(id types.EntityID) (*entity.Tower, bool) {
	for _, t := range r.towers {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// RemoveTower убирает башню вместе с её снарядами.
func (r *CombatResolver) RemoveTower(id types.EntityID) (*entity.Tower, bool) {
	for i, t := range r.towers {
		if t.ID == id {
			r.towers = append(r.towers[:i], r.towers[i+1:]...)
			return t, true
		}
	}
	return nil, false
}
