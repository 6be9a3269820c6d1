package app

import (
	"log/slog"

	"polyline-td/internal/event"
)

// GameEventListener пишет в лог значимые игровые события.
type GameEventListener struct {
	log *slog.Logger
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		l.log.Debug("Enemy killed", "reward", e.Data)
	case event.LifeLost:
		l.log.Info("Enemy reached the end of the path", "enemy", e.Data)
	case event.WaveStarted:
		l.log.Info("Wave started", "wave", e.Data)
	case event.LevelComplete:
		l.log.Info("All waves cleared")
	}
}
