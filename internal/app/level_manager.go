package app

import (
	"fmt"

	"polyline-td/internal/defs"
)

// LevelManager хранит порядок уровней и создаёт партии для них.
type LevelManager struct {
	catalog *defs.Catalog
	current int // индекс в catalog.Levels
	opts    Options
}

func NewLevelManager(catalog *defs.Catalog, opts Options) *LevelManager {
	return &LevelManager{catalog: catalog, opts: opts}
}

// Current возвращает определение выбранного уровня.
func (m *LevelManager) Current() defs.LevelDefinition {
	return m.catalog.Levels[m.current]
}

func (m *LevelManager) Count() int {
	return len(m.catalog.Levels)
}

// Next переходит к следующему уровню. Возвращает false на последнем.
func (m *LevelManager) Next() bool {
	if m.current+1 >= len(m.catalog.Levels) {
		return false
	}
	m.current++
	return true
}

// Select выбирает уровень по ID.
func (m *LevelManager) Select(id int) error {
	for i, l := range m.catalog.Levels {
		if l.ID == id {
			m.current = i
			return nil
		}
	}
	return fmt.Errorf("level %d: %w", id, defs.ErrUnknownLevel)
}

// NewGame начинает партию на текущем уровне.
func (m *LevelManager) NewGame() (*Game, error) {
	return NewGame(m.catalog, m.Current(), m.opts)
}
