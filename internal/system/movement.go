// internal/system/movement.go
package system

import (
	"go-sky-battle/internal/component"
	"go-sky-battle/internal/entity"
)

// MovementSystem двигает всех актёров реестра и гасит снаряды,
// вылетевшие за игровое поле.
type MovementSystem struct {
	Field component.Box
}

func NewMovementSystem(field component.Box) *MovementSystem {
	return &MovementSystem{Field: field}
}

// Update — наборы обновляются в порядке: свои, враги, снаряды игрока, вражеские снаряды.
// Возвращает число снарядов, уничтоженных за выход с поля.
func (s *MovementSystem) Update(r *entity.Registry) int {
	for _, set := range r.Sets() {
		set.Each(func(a *entity.Actor) { a.Update() })
	}
	culled := 0
	cull := func(a *entity.Actor) {
		if a.IsOutOfBounds(s.Field) && a.Destroy(entity.CauseOutOfBounds) {
			culled++
		}
	}
	r.UserProjectiles.Each(cull)
	r.EnemyProjectiles.Each(cull)
	return culled
}
