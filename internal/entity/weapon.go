// internal/entity/weapon.go
package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-sky-battle/internal/utils"
)

// ProjectileFactory создаёт снаряд в точке (x, y).
type ProjectileFactory func(x, y float64) *Actor

// RandomWeapon стреляет с вероятностью Rate за тик.
type RandomWeapon struct {
	Rate   float64
	Offset mgl64.Vec2
	rng    utils.Random
	spawn  ProjectileFactory
}

func NewRandomWeapon(rate float64, offset mgl64.Vec2, rng utils.Random, spawn ProjectileFactory) *RandomWeapon {
	return &RandomWeapon{Rate: rate, Offset: offset, rng: rng, spawn: spawn}
}

func (w *RandomWeapon) Fire(a *Actor) *Actor {
	if !utils.Chance(w.rng, w.Rate) {
		return nil
	}
	p := a.Position.Add(w.Offset)
	return w.spawn(p.X(), p.Y())
}

// DirectWeapon стреляет при каждом вызове. Пушка игрока.
type DirectWeapon struct {
	Offset mgl64.Vec2
	spawn  ProjectileFactory
}

func NewDirectWeapon(offset mgl64.Vec2, spawn ProjectileFactory) *DirectWeapon {
	return &DirectWeapon{Offset: offset, spawn: spawn}
}

func (w *DirectWeapon) Fire(a *Actor) *Actor {
	p := a.Position.Add(w.Offset)
	return w.spawn(p.X(), p.Y())
}
