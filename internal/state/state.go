// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"polyline-td/internal/app"
	"polyline-td/internal/config"
	"polyline-td/internal/defs"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Shared — то, что нужно всем состояниям: каталог, уровни, настройки и шрифт.
type Shared struct {
	Catalog  *defs.Catalog
	Levels   *app.LevelManager
	Settings *config.Settings
	Face     font.Face
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Shared  *Shared
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(shared *Shared) *StateMachine {
	return &StateMachine{Shared: shared}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
