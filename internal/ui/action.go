package ui

import "polyline-td/internal/defs"

// ActionKind — что делает нажатая кнопка.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelectTower
	ActionUpgrade
	ActionSell
	ActionGamble
	ActionClosePanel
	ActionToggleSpeed
	ActionTogglePause
)

// Action — команда от UI к игровому состоянию.
type Action struct {
	Kind  ActionKind
	Tower defs.TowerKind   // для ActionSelectTower
	Path  defs.UpgradePath // для ActionUpgrade
}
