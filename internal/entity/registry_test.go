package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-sky-battle/internal/utils"
)

func TestActorSet_EachSkipsDestroyedAndNewcomers(t *testing.T) {
	var s ActorSet
	rng := utils.NewScriptedRandom()
	a := NewEnemyPlane(100, 0, rng)
	b := NewEnemyPlane(200, 0, rng)
	c := NewEnemyPlane(300, 0, rng)
	s.Add(a)
	s.Add(b)
	s.Add(c)

	var visited []*Actor
	s.Each(func(x *Actor) {
		visited = append(visited, x)
		if x == a {
			b.Destroy(CauseCombat)
			s.Add(NewEnemyPlane(400, 0, rng))
		}
	})
	assert.Equal(t, []*Actor{a, c}, visited)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 3, s.LiveCount())
}

func TestActorSet_SweepKeepsOrder(t *testing.T) {
	var s ActorSet
	rng := utils.NewScriptedRandom()
	actors := []*Actor{
		NewEnemyPlane(1, 0, rng), NewEnemyPlane(2, 0, rng),
		NewEnemyPlane(3, 0, rng), NewEnemyPlane(4, 0, rng),
	}
	for _, a := range actors {
		s.Add(a)
	}
	actors[1].Destroy(CauseCombat)
	actors[3].Destroy(CauseOutOfBounds)

	removed := s.Sweep()
	assert.Equal(t, []*Actor{actors[1], actors[3]}, removed)
	assert.Equal(t, []*Actor{actors[0], actors[2]}, s.Actors())
	assert.Empty(t, s.Sweep())
}

func TestRegistry_FindAndTeardown(t *testing.T) {
	r := NewRegistry()
	u := NewUserPlane(5)
	e := NewEnemyPlane(500, 100, utils.NewScriptedRandom())
	r.Friendly.Add(u)
	r.Enemies.Add(e)
	r.UserProjectiles.Add(u.Fire())

	assert.Equal(t, 3, r.Len())
	assert.Same(t, e, r.Find(e.ID))
	assert.Nil(t, r.Find(uuid.New()))

	removed := r.Teardown()
	assert.Len(t, removed, 3)
	assert.Equal(t, 0, r.Len())
	for _, a := range removed {
		assert.Equal(t, CauseTeardown, a.Cause())
	}
}

func TestRegistry_AddNilIgnored(t *testing.T) {
	r := NewRegistry()
	r.EnemyProjectiles.Add(nil)
	assert.Equal(t, 0, r.Len())
}
