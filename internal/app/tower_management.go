// internal/app/tower_management.go
package app

import (
	"fmt"

	"polyline-td/internal/component"
	"polyline-td/internal/defs"
	"polyline-td/internal/entity"
	"polyline-td/internal/event"
	"polyline-td/internal/types"
	"polyline-td/internal/utils"
)

// PlaceTower ставит башню, если хватает денег.
func (g *Game) PlaceTower(kind defs.TowerKind, x, y float64) (types.EntityID, error) {
	if g.isGameOver {
		return 0, ErrGameOver
	}
	def, err := g.Catalog.Tower(kind)
	if err != nil {
		return 0, err
	}
	if err := g.Economy.Debit(def.Cost); err != nil {
		g.log.Debug("Tower placement rejected", "kind", kind, "cost", def.Cost, "money", g.Economy.Balance())
		return 0, fmt.Errorf("place %s tower: %w", kind, err)
	}

	tower := entity.NewTower(g.ids.NewEntity(), def, component.Position{X: x, Y: y}, g.maxLevel)
	g.Resolver.AddTower(tower)

	g.log.Info("Tower placed", "id", tower.ID, "kind", kind, "x", x, "y", y, "cost", def.Cost)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: tower.ID})
	return tower.ID, nil
}

// UpgradeTower улучшает башню по пути. Проверка уровня и пути идёт до списания денег.
func (g *Game) UpgradeTower(id types.EntityID, path defs.UpgradePath) error {
	if g.isGameOver {
		return ErrGameOver
	}
	tower, err := g.tower(id)
	if err != nil {
		return err
	}
	if err := tower.CheckUpgrade(path); err != nil {
		return err
	}
	cost := tower.UpgradeCost
	if err := g.Economy.Debit(cost); err != nil {
		return fmt.Errorf("upgrade tower %d: %w", id, err)
	}
	if err := tower.Upgrade(path); err != nil {
		g.Economy.Credit(cost)
		return err
	}

	g.log.Info("Tower upgraded", "id", id, "path", path, "level", tower.Level, "cost", cost)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return nil
}

// SellTower убирает башню и возвращает долю вложенных денег.
func (g *Game) SellTower(id types.EntityID) (int, error) {
	if g.isGameOver {
		return 0, ErrGameOver
	}
	tower, ok := g.Resolver.RemoveTower(id)
	if !ok {
		return 0, fmt.Errorf("sell tower %d: %w", id, ErrTowerNotFound)
	}
	value := tower.SellValue()
	g.Economy.Credit(value)

	g.log.Info("Tower sold", "id", id, "kind", tower.Kind, "value", value)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: id})
	return value, nil
}

// Tower возвращает башню по ID.
func (g *Game) Tower(id types.EntityID) (*entity.Tower, bool) {
	return g.Resolver.Tower(id)
}

// TowerAt ищет башню под точкой; при перекрытии берётся построенная последней.
func (g *Game) TowerAt(x, y, radius float64) (*entity.Tower, bool) {
	towers := g.Resolver.Towers()
	for i := len(towers) - 1; i >= 0; i-- {
		t := towers[i]
		if utils.PointInCircle(x, y, t.Position.X, t.Position.Y, radius) {
			return t, true
		}
	}
	return nil, false
}

func (g *Game) tower(id types.EntityID) (*entity.Tower, error) {
	tower, ok := g.Resolver.Tower(id)
	if !ok {
		return nil, fmt.Errorf("tower %d: %w", id, ErrTowerNotFound)
	}
	return tower, nil
}
