// internal/state/shared.go
package state

import (
	"go-sky-battle/internal/app"
	"go-sky-battle/internal/ui"
	"go-sky-battle/pkg/render"
)

// Shared — то, что нужно всем экранам: менеджер уровней, сцена и HUD.
type Shared struct {
	Manager  *app.LevelManager
	Renderer *render.SpriteRenderer
	HUD      *ui.HUD
	Hearts   *ui.HealthIndicator
}
