package app

import (
	"fmt"

	"polyline-td/internal/config"
	"polyline-td/internal/defs"
	"polyline-td/internal/event"
	"polyline-td/internal/types"
)

// Gamble крутит колесо удачи за цену улучшения башни.
// Уровень башни не меняется; FREE возвращает деньги.
func (g *Game) Gamble(id types.EntityID) (defs.GambleOutcome, error) {
	if g.isGameOver {
		return "", ErrGameOver
	}
	tower, err := g.tower(id)
	if err != nil {
		return "", err
	}
	cost := tower.UpgradeCost
	if err := g.Economy.Debit(cost); err != nil {
		return "", fmt.Errorf("gamble on tower %d: %w", id, err)
	}

	weights := make([]int, len(defs.GambleWheel))
	for i, sector := range defs.GambleWheel {
		weights[i] = sector.Weight
	}
	outcome := defs.GambleWheel[g.Rng.ChooseWeighted(weights)].Outcome

	switch outcome {
	case defs.GambleDouble:
		tower.ScaleStats(2)
	case defs.GambleHalf:
		tower.ScaleStats(0.5)
	case defs.GambleFree:
		g.Economy.Credit(cost)
	case defs.GambleMax:
		tower.BoostStats(config.GambleMaxDamageBonus, config.GambleMaxRangeBonus, config.GambleMaxSpeedBonus)
	}
	if outcome != defs.GambleFree {
		tower.Invested += cost
	}

	g.log.Info("Gamble resolved", "id", id, "outcome", outcome, "cost", cost)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GambleResolved, Data: outcome})
	return outcome, nil
}
