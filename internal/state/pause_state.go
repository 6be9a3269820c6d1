// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"polyline-td/internal/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует поверх замороженной игры.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.game.Pause()
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	render.DrawOverlay(screen, s.stateMachine.Shared.Face, "PAUSED", "P, Esc or click to resume")
}

func (s *PauseState) Exit() {
	s.previousState.game.Resume()
}
