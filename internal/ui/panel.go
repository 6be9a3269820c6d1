// internal/ui/panel.go
package ui

import (
	"polyline-td/internal/config"
	"polyline-td/internal/types"
	"polyline-td/internal/utils"
)

// PanelState — стадия выезжающей панели башни.
type PanelState int

const (
	PanelHidden PanelState = iota
	PanelSlidingIn
	PanelShown
	PanelSlidingOut
)

func (s PanelState) String() string {
	switch s {
	case PanelHidden:
		return "hidden"
	case PanelSlidingIn:
		return "sliding-in"
	case PanelShown:
		return "shown"
	case PanelSlidingOut:
		return "sliding-out"
	default:
		return "unknown"
	}
}

// Panel выезжает справа и показывает выбранную башню.
// Hidden → SlidingIn → Shown → SlidingOut → Hidden.
type Panel struct {
	TowerID types.EntityID
	X       float64 // левый край панели на экране
	Width   float64
	state   PanelState
	speed   float64
}

func NewPanel() *Panel {
	return &Panel{
		X:     config.ScreenWidth,
		Width: config.PanelWidth,
		speed: config.PanelSlideSpeed,
	}
}

func (p *Panel) State() PanelState {
	return p.state
}

// Visible reports whether any part of the panel is on screen.
func (p *Panel) Visible() bool {
	return p.state != PanelHidden
}

// Open показывает панель для башни. Если панель уже открыта, меняется только башня.
func (p *Panel) Open(id types.EntityID) {
	p.TowerID = id
	if p.state == PanelShown {
		return
	}
	p.state = PanelSlidingIn
}

// Close убирает панель. Выбор башни сбрасывается, когда панель скроется.
func (p *Panel) Close() {
	if p.state == PanelHidden {
		return
	}
	p.state = PanelSlidingOut
}

func (p *Panel) shownX() float64  { return config.ScreenWidth - p.Width }
func (p *Panel) hiddenX() float64 { return config.ScreenWidth }

// Update двигает панель к целевому положению.
func (p *Panel) Update(deltaTime float64) {
	step := p.speed * deltaTime
	switch p.state {
	case PanelSlidingIn:
		p.X = utils.MoveTowards(p.X, p.shownX(), step)
		if p.X == p.shownX() {
			p.state = PanelShown
		}
	case PanelSlidingOut:
		p.X = utils.MoveTowards(p.X, p.hiddenX(), step)
		if p.X == p.hiddenX() {
			p.state = PanelHidden
			p.TowerID = 0
		}
	}
}

// Contains reports whether the screen point lies on the panel.
func (p *Panel) Contains(x, y int) bool {
	if !p.Visible() {
		return false
	}
	return float64(x) >= p.X && float64(x) < p.X+p.Width && y < config.ScreenHeight-config.UIBarHeight
}
