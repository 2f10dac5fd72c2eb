package component

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/utils"
)

func TestHealth_DamageFloorsAtZero(t *testing.T) {
	for _, n := range []int{0, 1, 5, 50} {
		for k := 0; k <= n+3; k++ {
			h := NewHealth(n)
			for i := 0; i < k; i++ {
				h.TakeDamage()
			}
			want := n - k
			if want < 0 {
				want = 0
			}
			assert.Equal(t, want, h.Current(), "initial=%d damage=%d", n, k)
			assert.Equal(t, want > 0, h.IsAlive())
			assert.Equal(t, want == 0, h.IsZero())
		}
	}
}

func TestHealth_IncreaseAndReset(t *testing.T) {
	h := NewHealth(10)
	h.TakeDamage()
	h.Increase(5)
	assert.Equal(t, 14, h.Current(), "increase is uncapped above the initial value")

	h.Increase(-3)
	assert.Equal(t, 14, h.Current(), "negative increase is ignored")

	h.Reset(20)
	assert.Equal(t, 20, h.Current())
	assert.Equal(t, 20, h.Initial())

	h.Reset(-1)
	assert.Equal(t, 0, h.Current())
	assert.True(t, h.IsZero())
}

func TestHealth_NegativeInitialClamped(t *testing.T) {
	h := NewHealth(-4)
	assert.Equal(t, 0, h.Current())
	assert.False(t, h.IsAlive())
}

func TestKillCounter(t *testing.T) {
	var k KillCounter
	k.Increment()
	k.Increment()
	assert.Equal(t, 2, k.Kills())
	assert.False(t, k.HasReached(3))
	k.Increment()
	assert.True(t, k.HasReached(3))
	k.Reset()
	assert.Equal(t, 0, k.Kills())
}

func TestBox_ShrinkAndIntersect(t *testing.T) {
	b := NewBox(mgl64.Vec2{0, 0}, mgl64.Vec2{100, 50})
	r := b.Shrink(10)
	assert.Equal(t, 80.0, r.Width())
	assert.Equal(t, 30.0, r.Height())
	assert.Equal(t, mgl64.Vec2{10, 10}, r.Min)

	collapsed := b.Shrink(60)
	assert.True(t, collapsed.Empty())
	assert.False(t, collapsed.Intersects(b))

	other := NewBox(mgl64.Vec2{90, 40}, mgl64.Vec2{20, 20})
	assert.True(t, b.Intersects(other))
	assert.True(t, other.Intersects(b))

	touching := NewBox(mgl64.Vec2{100, 0}, mgl64.Vec2{10, 10})
	assert.False(t, b.Intersects(touching), "shared edge is not an overlap")
}

func TestMovementPattern_RunsAndReshuffle(t *testing.T) {
	rng := utils.NewScriptedRandom()
	p, err := NewMovementPattern(8, 2, 3, rng)
	require.NoError(t, err)
	require.Equal(t, 1, rng.Shuffles, "sequence is shuffled at construction")

	want := []float64{8, -8, 0, 8, -8, 0}
	for i, delta := range want {
		for run := 0; run < 3; run++ {
			assert.Equal(t, delta, p.NextMove(), "element %d run %d", i, run)
			assert.Equal(t, i, p.Index())
		}
	}
	assert.Equal(t, 1, rng.Shuffles, "no reshuffle before the cycle completes")

	assert.Equal(t, 8.0, p.NextMove())
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, 2, rng.Shuffles, "wrapping past the end reshuffles")
}

func TestMovementPattern_RunLengthNeverExceedsMax(t *testing.T) {
	p, err := NewMovementPattern(8, 5, 10, utils.NewPRNGService(3))
	require.NoError(t, err)
	assert.Len(t, p.Sequence(), 15)

	lastIndex, run := -1, 0
	for i := 0; i < 2000; i++ {
		p.NextMove()
		if p.Index() == lastIndex {
			run++
		} else {
			lastIndex, run = p.Index(), 1
		}
		assert.LessOrEqual(t, run, 10)
	}
}

func TestMovementPattern_InvalidConfig(t *testing.T) {
	_, err := NewMovementPattern(8, 0, 10, utils.NewScriptedRandom())
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
	_, err = NewMovementPattern(8, 5, 0, utils.NewScriptedRandom())
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
	_, err = NewMovementPattern(8, 5, 10, nil)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestShield_ExactDuration(t *testing.T) {
	s, err := NewShield(0.5, 5, utils.NewScriptedRandom(0))
	require.NoError(t, err)

	require.True(t, s.Update(), "0.0 < 0.5 activates")
	require.True(t, s.IsActive())
	assert.Equal(t, 0, s.ActiveFrames())

	for i := 1; i < 5; i++ {
		assert.False(t, s.Update())
		assert.True(t, s.IsActive(), "still active after %d frames", i)
		assert.Equal(t, i, s.ActiveFrames())
	}
	assert.True(t, s.Update(), "fifth frame deactivates")
	assert.False(t, s.IsActive())
	assert.Equal(t, 1, s.Activations())
}

func TestShield_NeverActivatesWithZeroProbability(t *testing.T) {
	s, err := NewShield(0, 300, utils.NewPRNGService(1))
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		assert.False(t, s.Update())
	}
	assert.False(t, s.IsActive())
}

func TestShield_ActivationRateConverges(t *testing.T) {
	const p = 0.05
	s, err := NewShield(p, 1, utils.NewPRNGService(99))
	require.NoError(t, err)

	trials, hits := 0, 0
	for i := 0; i < 200000; i++ {
		wasActive := s.IsActive()
		s.Update()
		if !wasActive {
			trials++
			if s.IsActive() {
				hits++
			}
		}
		if s.IsActive() {
			assert.LessOrEqual(t, s.ActiveFrames(), s.MaxFrames())
		}
	}
	assert.InDelta(t, p, float64(hits)/float64(trials), 0.005)
}

func TestShield_InvalidConfig(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    float64
		max  int
	}{
		{"negative probability", -0.1, 10},
		{"probability above one", 1.5, 10},
		{"zero frames", 0.1, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewShield(tc.p, tc.max, utils.NewScriptedRandom())
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
