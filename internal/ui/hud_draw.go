// internal/ui/hud_draw.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-sky-battle/internal/config"
)

const (
	hudMarginX   = 12
	hudLineSpace = 16
)

// Draw выводит HUD в левом верхнем углу, ошибку внизу экрана.
func (h *HUD) Draw(screen *ebiten.Image, hearts *HealthIndicator) {
	face := basicfont.Face7x13
	y := hudMarginX + hudLineSpace
	if hearts != nil {
		hearts.Draw(screen, h.Health, h.MaxHealth)
		y += int(hearts.Height())
	}
	for _, line := range h.Lines() {
		text.Draw(screen, line, face, hudMarginX, y, config.TextLightColor)
		y += hudLineSpace
	}
	if h.LastError != "" {
		text.Draw(screen, "error: "+h.LastError, face, hudMarginX, config.ScreenHeight-hudMarginX, color.RGBA{255, 90, 90, 255})
	}
}

// DrawCentered пишет строки по центру экрана.
func DrawCentered(screen *ebiten.Image, lines []string) {
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(lines)*hudLineSpace/2
	for _, line := range lines {
		x := (config.ScreenWidth - len(line)*face.Advance) / 2
		text.Draw(screen, line, face, x, y, config.TextLightColor)
		y += hudLineSpace
	}
}
