// internal/ui/health_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// HealthIndicator отображает здоровье игрока рядом кружков («сердец»).
type HealthIndicator struct {
	X, Y float32
}

func NewHealthIndicator(x, y float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y}
}

// Draw рисует maxHealth кружков, из них health закрашены красным.
func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	for j := 0; j < maxHealth; j++ {
		cx := i.X + float32(j)*(HealthCircleRadius*2+HealthCircleSpacing) + HealthCircleRadius
		cy := i.Y + HealthCircleRadius

		fill := color.RGBA{20, 20, 20, 255} // пустые ячейки
		if j < health {
			fill = color.RGBA{230, 40, 40, 255}
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, fill, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}
}

// Height возвращает высоту индикатора.
func (i *HealthIndicator) Height() float32 {
	return HealthCircleRadius * 2
}
