// internal/system/collision.go
package system

import "go-sky-battle/internal/entity"

// CollisionSystem сравнивает каждого актёра одного набора с каждым актёром другого
// по уменьшенным хитбоксам. При пересечении урон получают обе стороны.
type CollisionSystem struct {
	hits int
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Resolve — один проход a × b. Уничтоженные актёры пропускаются,
// в том числе погибшие в этом же проходе.
func (s *CollisionSystem) Resolve(a, b *entity.ActorSet) int {
	hits := 0
	a.Each(func(x *entity.Actor) {
		b.Each(func(y *entity.Actor) {
			if x.IsDestroyed() || y.IsDestroyed() {
				return
			}
			if !x.HitBox().Intersects(y.HitBox()) {
				return
			}
			x.TakeDamage()
			y.TakeDamage()
			hits++
		})
	})
	s.hits += hits
	return hits
}

// ResolveAll — три прохода тика: самолёты × враги, снаряды игрока × враги,
// вражеские снаряды × самолёты игрока.
func (s *CollisionSystem) ResolveAll(r *entity.Registry) int {
	n := s.Resolve(&r.Friendly, &r.Enemies)
	n += s.Resolve(&r.UserProjectiles, &r.Enemies)
	n += s.Resolve(&r.EnemyProjectiles, &r.Friendly)
	return n
}

// Hits — сколько попаданий зафиксировано за всё время.
func (s *CollisionSystem) Hits() int { return s.hits }
