package app

import (
	"errors"
	"testing"

	"polyline-td/internal/defs"
	"polyline-td/internal/economy"
)

func TestGambleOutcomes(t *testing.T) {
	g := newTestGame(t, testLevel(1, 10000, 100000, 10))
	id, _ := g.PlaceTower(defs.TowerBasic, 50, 0)
	tower, _ := g.Tower(id)

	seen := make(map[defs.GambleOutcome]int)
	for i := 0; i < 200; i++ {
		before := tower.Combat
		money := g.Money()
		invested := tower.Invested
		cost := tower.UpgradeCost

		outcome, err := g.Gamble(id)
		if err != nil {
			t.Fatalf("Gamble failed: %v", err)
		}
		seen[outcome]++

		if tower.Level != 1 {
			t.Fatalf("Expected gamble to keep level 1, got %d", tower.Level)
		}
		if tower.UpgradeCost != cost {
			t.Fatalf("Expected upgrade cost unchanged at %d, got %d", cost, tower.UpgradeCost)
		}

		switch outcome {
		case defs.GambleDouble:
			if tower.Combat.Damage != before.Damage*2 {
				t.Errorf("DOUBLE: expected damage %v, got %v", before.Damage*2, tower.Combat.Damage)
			}
		case defs.GambleHalf:
			if tower.Combat.Range != before.Range*0.5 {
				t.Errorf("HALF: expected range %v, got %v", before.Range*0.5, tower.Combat.Range)
			}
		case defs.GambleNothing:
			if tower.Combat != before {
				t.Errorf("NOTHING: expected stats unchanged, got %+v", tower.Combat)
			}
		case defs.GambleFree:
			if g.Money() != money {
				t.Errorf("FREE: expected money refunded to %d, got %d", money, g.Money())
			}
			if tower.Invested != invested {
				t.Errorf("FREE: expected investment unchanged at %d, got %d", invested, tower.Invested)
			}
		case defs.GambleMax:
			if tower.Combat.Range != before.Range+100 {
				t.Errorf("MAX: expected range %v, got %v", before.Range+100, tower.Combat.Range)
			}
		default:
			t.Fatalf("unexpected outcome %q", outcome)
		}

		if outcome != defs.GambleFree {
			if g.Money() != money-cost {
				t.Errorf("%s: expected money %d, got %d", outcome, money-cost, g.Money())
			}
			if tower.Invested != invested+cost {
				t.Errorf("%s: expected investment %d, got %d", outcome, invested+cost, tower.Invested)
			}
		}

		// Держим характеристики в разумных пределах
		tower.Combat = before
	}

	if len(seen) < 4 {
		t.Errorf("Expected most wheel sectors to come up in 200 spins, got %v", seen)
	}
}

func TestGambleInsufficientFunds(t *testing.T) {
	g := newTestGame(t, testLevel(1, 10000, 120, 10))
	id, _ := g.PlaceTower(defs.TowerBasic, 50, 0)
	tower, _ := g.Tower(id)
	before := tower.Combat

	if _, err := g.Gamble(id); !errors.Is(err, economy.ErrInsufficientFunds) {
		t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
	}
	if tower.Combat != before {
		t.Errorf("Expected stats unchanged, got %+v", tower.Combat)
	}
	if g.Money() != 20 {
		t.Errorf("Expected money 20, got %d", g.Money())
	}
}

func TestGambleSameSeedSameOutcome(t *testing.T) {
	spin := func() []defs.GambleOutcome {
		g := newTestGame(t, testLevel(1, 10000, 100000, 10))
		id, _ := g.PlaceTower(defs.TowerBasic, 50, 0)
		var out []defs.GambleOutcome
		for i := 0; i < 10; i++ {
			o, err := g.Gamble(id)
			if err != nil {
				t.Fatalf("Gamble failed: %v", err)
			}
			out = append(out, o)
		}
		return out
	}

	a, b := spin(), spin()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spin %d: expected identical outcomes for the same seed, got %s and %s", i, a[i], b[i])
		}
	}
}
