// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-sky-battle/internal/event"
)

// HUD собирает из событий уровня всё, что показывается поверх поля:
// счёт, убийства, здоровье игрока и босса, щит, последнюю ошибку.
type HUD struct {
	LevelID      string
	Score        int
	Kills        int
	Health       int
	MaxHealth    int
	BossHealth   int
	BossVisible  bool
	ShieldActive bool
	Paused       bool
	LastError    string
}

func NewHUD() *HUD {
	return &HUD{}
}

// Subscribe подписывает HUD на все события диспетчера.
func (h *HUD) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(h)
}

func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelStarted, event.LevelRestarted:
		id, _ := e.Data.(string)
		h.reset(id)
	case event.ScoreChanged:
		h.Score, _ = e.Data.(int)
	case event.KillsChanged:
		h.Kills, _ = e.Data.(int)
	case event.UserHealthChanged:
		h.Health, _ = e.Data.(int)
		if h.Health > h.MaxHealth {
			h.MaxHealth = h.Health
		}
	case event.BossHealthChanged:
		h.BossHealth, _ = e.Data.(int)
		h.BossVisible = true
	case event.ShieldChanged:
		h.ShieldActive, _ = e.Data.(bool)
		h.BossVisible = true
	case event.Paused:
		h.Paused = true
	case event.Resumed:
		h.Paused = false
	case event.CollaboratorFailed, event.TransitionFailed:
		if err, ok := e.Data.(error); ok {
			h.LastError = err.Error()
		}
	}
}

func (h *HUD) reset(id string) {
	*h = HUD{LevelID: id, LastError: h.LastError}
}

// Lines — текстовое представление HUD, по строке на показатель.
func (h *HUD) Lines() []string {
	lines := []string{
		fmt.Sprintf("LEVEL %s", h.LevelID),
		fmt.Sprintf("SCORE %d", h.Score),
		fmt.Sprintf("KILLS %d", h.Kills),
		fmt.Sprintf("HEALTH %d/%d", h.Health, h.MaxHealth),
	}
	if h.BossVisible {
		shield := "down"
		if h.ShieldActive {
			shield = "UP"
		}
		lines = append(lines, fmt.Sprintf("BOSS %d  SHIELD %s", h.BossHealth, shield))
	}
	if h.Paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}
