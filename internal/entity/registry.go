// internal/entity/registry.go
package entity

import "github.com/google/uuid"

// ActorSet — упорядоченное по вставке множество актёров.
// Уничтоженные актёры остаются в наборе до Sweep.
type ActorSet struct {
	Name   string
	actors []*Actor
}

func (s *ActorSet) Add(a *Actor) {
	if a == nil {
		return
	}
	s.actors = append(s.actors, a)
}

// Len — число актёров, включая уже уничтоженные, но ещё не убранные.
func (s *ActorSet) Len() int { return len(s.actors) }

// LiveCount — число неуничтоженных актёров.
func (s *ActorSet) LiveCount() int {
	n := 0
	for _, a := range s.actors {
		if !a.destroyed {
			n++
		}
	}
	return n
}

// Each обходит живых актёров в порядке вставки. Добавленные во время обхода
// не посещаются; уничтоженный во время обхода пропускается.
func (s *ActorSet) Each(fn func(a *Actor)) {
	snapshot := s.actors
	for _, a := range snapshot {
		if a.destroyed {
			continue
		}
		fn(a)
	}
}

// Sweep удаляет уничтоженных актёров, сохраняя порядок, и возвращает их.
func (s *ActorSet) Sweep() []*Actor {
	var removed []*Actor
	kept := s.actors[:0]
	for _, a := range s.actors {
		if a.destroyed {
			removed = append(removed, a)
			continue
		}
		kept = append(kept, a)
	}
	for i := len(kept); i < len(s.actors); i++ {
		s.actors[i] = nil
	}
	s.actors = kept
	return removed
}

// Actors возвращает копию содержимого.
func (s *ActorSet) Actors() []*Actor {
	out := make([]*Actor, len(s.actors))
	copy(out, s.actors)
	return out
}

func (s *ActorSet) Find(id uuid.UUID) *Actor {
	for _, a := range s.actors {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *ActorSet) Clear() { s.actors = nil }

// Registry — все актёры уровня. Вставкой и удалением занимается только уровень.
type Registry struct {
	Friendly         ActorSet
	Enemies          ActorSet
	UserProjectiles  ActorSet
	EnemyProjectiles ActorSet
}

func NewRegistry() *Registry {
	return &Registry{
		Friendly:         ActorSet{Name: "friendly"},
		Enemies:          ActorSet{Name: "enemies"},
		UserProjectiles:  ActorSet{Name: "user_projectiles"},
		EnemyProjectiles: ActorSet{Name: "enemy_projectiles"},
	}
}

// Sets возвращает наборы в порядке обновления.
func (r *Registry) Sets() []*ActorSet {
	return []*ActorSet{&r.Friendly, &r.Enemies, &r.UserProjectiles, &r.EnemyProjectiles}
}

// Len — общее число актёров во всех наборах.
func (r *Registry) Len() int {
	n := 0
	for _, s := range r.Sets() {
		n += s.Len()
	}
	return n
}

// Sweep — единственная точка удаления: один проход по всем наборам.
func (r *Registry) Sweep() []*Actor {
	var removed []*Actor
	for _, s := range r.Sets() {
		removed = append(removed, s.Sweep()...)
	}
	return removed
}

func (r *Registry) Find(id uuid.UUID) *Actor {
	for _, s := range r.Sets() {
		if a := s.Find(id); a != nil {
			return a
		}
	}
	return nil
}

// Teardown уничтожает всех актёров и очищает реестр.
func (r *Registry) Teardown() []*Actor {
	for _, s := range r.Sets() {
		for _, a := range s.actors {
			a.Destroy(CauseTeardown)
		}
	}
	return r.Sweep()
}
