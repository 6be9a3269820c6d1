package entity

import "polyline-td/internal/types"

// EnemyList — упорядоченный набор активных врагов с поиском по ID.
// Порядок вставки сохраняется, поэтому выбор цели детерминирован.
type EnemyList struct {
	items []*Enemy
	index map[types.EntityID]*Enemy
}

func NewEnemyList() *EnemyList {
	return &EnemyList{index: make(map[types.EntityID]*Enemy)}
}

func (l *EnemyList) Add(e *Enemy) {
	l.items = append(l.items, e)
	l.index[e.ID] = e
}

// Get возвращает врага, если он ещё в активном наборе.
func (l *EnemyList) Get(id types.EntityID) (*Enemy, bool) {
	e, ok := l.index[id]
	return e, ok
}

// All возвращает врагов в порядке появления. Срез нельзя изменять.
func (l *EnemyList) All() []*Enemy {
	return l.items
}

// Living возвращает только идущих врагов.
func (l *EnemyList) Living() []*Enemy {
	living := make([]*Enemy, 0, len(l.items))
	for _, e := range l.items {
		if e.Alive() {
			living = append(living, e)
		}
	}
	return living
}

func (l *EnemyList) Len() int {
	return len(l.items)
}

// Sweep удаляет всех врагов в состоянии Removed, вызывая fn для каждого
// в порядке появления. Возвращает число удалённых.
func (l *EnemyList) Sweep(fn func(e *Enemy)) int {
	kept := l.items[:0]
	removed := 0
	for _, e := range l.items {
		if e.ShouldRemove() {
			if fn != nil {
				fn(e)
			}
			delete(l.index, e.ID)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = nil
	}
	l.items = kept
	return removed
}

// Clear убирает всех врагов.
func (l *EnemyList) Clear() {
	l.items = nil
	l.index = make(map[types.EntityID]*Enemy)
}
