// pkg/render/color.go
package render

import (
	"image/color"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/entity"
)

// Palette holds all the colors needed to draw actors and debug overlays.
type Palette struct {
	BackgroundColor      color.RGBA
	UserPlaneColor       color.RGBA
	EnemyPlaneColor      color.RGBA
	BossColor            color.RGBA
	UserProjectileColor  color.RGBA
	EnemyProjectileColor color.RGBA
	BossProjectileColor  color.RGBA
	ShieldColor          color.RGBA
	HitboxColor          color.RGBA
	StrokeWidth          float32
}

// DefaultPalette builds the palette from config.
func DefaultPalette() Palette {
	return Palette{
		BackgroundColor:      config.BackgroundColor,
		UserPlaneColor:       config.UserPlaneColor,
		EnemyPlaneColor:      config.EnemyPlaneColor,
		BossColor:            config.BossColor,
		UserProjectileColor:  config.UserProjectileColor,
		EnemyProjectileColor: config.EnemyProjectileColor,
		BossProjectileColor:  config.BossProjectileColor,
		ShieldColor:          config.ShieldColor,
		HitboxColor:          config.HitboxColor,
		StrokeWidth:          float32(config.HitboxStrokeWidth),
	}
}

// ColorFor returns the fill color of an actor kind.
func (p Palette) ColorFor(k entity.Kind) color.RGBA {
	switch k {
	case entity.KindUserPlane:
		return p.UserPlaneColor
	case entity.KindEnemyPlane:
		return p.EnemyPlaneColor
	case entity.KindBoss:
		return p.BossColor
	case entity.KindUserProjectile:
		return p.UserProjectileColor
	case entity.KindEnemyProjectile:
		return p.EnemyProjectileColor
	case entity.KindBossProjectile:
		return p.BossProjectileColor
	}
	return p.HitboxColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
