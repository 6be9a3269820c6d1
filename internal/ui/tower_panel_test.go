package ui

import (
	"testing"

	"polyline-td/internal/app"
	"polyline-td/internal/defs"
)

func shownPanel(pathSystem bool) *TowerPanel {
	p := NewTowerPanel(nil, pathSystem)
	p.Open(1)
	for i := 0; i < 10; i++ {
		p.Update(0.1)
	}
	return p
}

func countKind(buttons []Button, kind ActionKind) int {
	n := 0
	for _, b := range buttons {
		if b.Action.Kind == kind {
			n++
		}
	}
	return n
}

func TestTowerPanelLayoutClassic(t *testing.T) {
	p := shownPanel(false)
	p.Layout(app.TowerView{ID: 1, Level: 1, MaxLevel: 3, UpgradeCost: 50, SellValue: 50}, 1000)

	if n := countKind(p.Buttons, ActionUpgrade); n != 1 {
		t.Errorf("Expected 1 upgrade button, got %d", n)
	}
	for _, kind := range []ActionKind{ActionGamble, ActionSell, ActionClosePanel} {
		if n := countKind(p.Buttons, kind); n != 1 {
			t.Errorf("Expected one button of kind %d, got %d", kind, n)
		}
	}

	b := p.Buttons[0]
	action, ok := HitTest(p.Buttons, b.Rect.Min.X+1, b.Rect.Min.Y+1)
	if !ok || action.Kind != ActionUpgrade || action.Path != defs.PathClassic {
		t.Errorf("Expected classic upgrade action, got %+v (ok=%v)", action, ok)
	}
}

func TestTowerPanelLayoutPaths(t *testing.T) {
	p := shownPanel(true)
	p.Layout(app.TowerView{ID: 1, Level: 1, MaxLevel: 7, UpgradeCost: 50}, 1000)

	if n := countKind(p.Buttons, ActionUpgrade); n != len(defs.UpgradePaths) {
		t.Errorf("Expected %d upgrade buttons, got %d", len(defs.UpgradePaths), n)
	}
}

func TestTowerPanelDisablesUnaffordableAndMaxed(t *testing.T) {
	p := shownPanel(false)
	p.Layout(app.TowerView{ID: 1, Level: 3, MaxLevel: 3, UpgradeCost: 113}, 1000)
	if !p.Buttons[0].Disabled {
		t.Error("Expected upgrade disabled at max level")
	}

	p.Layout(app.TowerView{ID: 1, Level: 1, MaxLevel: 3, UpgradeCost: 50}, 40)
	for _, b := range p.Buttons {
		switch b.Action.Kind {
		case ActionUpgrade, ActionGamble:
			if !b.Disabled {
				t.Errorf("Expected %q disabled with 40 money", b.Label)
			}
		case ActionSell:
			if b.Disabled {
				t.Error("Expected sell to stay enabled")
			}
		}
	}

	b := p.Buttons[0]
	if _, ok := HitTest(p.Buttons, b.Rect.Min.X+1, b.Rect.Min.Y+1); ok {
		t.Error("Expected disabled button to ignore clicks")
	}
}

func TestHUDSync(t *testing.T) {
	catalog := &defs.Catalog{Towers: map[defs.TowerKind]defs.TowerDefinition{
		defs.TowerBasic:  {Kind: defs.TowerBasic, Name: "Basic", Cost: 100},
		defs.TowerSniper: {Kind: defs.TowerSniper, Name: "Sniper", Cost: 250},
	}}
	h := NewHUD(catalog, nil)

	if n := countKind(h.Buttons, ActionSelectTower); n != 2 {
		t.Fatalf("Expected 2 tower buttons, got %d", n)
	}

	h.Sync(app.Snapshot{Money: 150, Speed: 2, Paused: true}, catalog)
	for _, b := range h.Buttons {
		switch b.Action.Kind {
		case ActionSelectTower:
			want := b.Action.Tower == defs.TowerSniper
			if b.Disabled != want {
				t.Errorf("%s: expected disabled=%v", b.Action.Tower, want)
			}
		case ActionToggleSpeed:
			if b.Label != "x2" {
				t.Errorf("Expected speed label x2, got %q", b.Label)
			}
		case ActionTogglePause:
			if b.Label != "Resume" {
				t.Errorf("Expected pause label Resume, got %q", b.Label)
			}
		}
	}
}

func TestTowerPanelUpgradeHints(t *testing.T) {
	p := shownPanel(true)
	p.Layout(app.TowerView{ID: 1, Level: 1, MaxLevel: 7, UpgradeCost: 50}, 1000)

	for _, b := range p.Buttons {
		if b.Action.Kind != ActionUpgrade {
			if b.Hint != "" {
				t.Errorf("Expected no hint on %q, got %q", b.Label, b.Hint)
			}
			continue
		}
		want := defs.UpgradeDescriptions[b.Action.Path]
		if want == "" || b.Hint != want {
			t.Errorf("path %s: expected hint %q, got %q", b.Action.Path, want, b.Hint)
		}
	}

	// Подсказка не должна залезать на следующую кнопку
	for i := 1; i < len(p.Buttons); i++ {
		prev := p.Buttons[i-1]
		if prev.Hint != "" && p.Buttons[i].Rect.Min.Y < prev.Rect.Max.Y+hintOffset {
			t.Errorf("button %d overlaps the hint of button %d", i, i-1)
		}
	}
}
