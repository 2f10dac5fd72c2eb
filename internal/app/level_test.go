package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/entity"
	"go-sky-battle/internal/event"
	"go-sky-battle/internal/system"
	"go-sky-battle/internal/utils"
)

func TestLevel_StartAttachesUserAndPlaysMusic(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	assert.Equal(t, StateReady, h.level.State())

	h.level.Start()
	assert.Equal(t, StateRunning, h.level.State())
	assert.Contains(t, h.renderer.attached, h.level.User().ID)
	assert.Equal(t, []string{"level_music"}, h.audio.played)
	assert.Equal(t, []bool{true}, h.audio.loops)
	assert.Equal(t, 1, h.events.count(event.LevelStarted))

	h.level.Start()
	assert.Equal(t, 1, h.events.count(event.LevelStarted), "second start is ignored")
}

func TestLevel_TickOnlyWhileRunning(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	h.level.Tick()
	assert.Equal(t, 0, h.level.Ticks())

	h.level.Start()
	e := quietEnemy(800, 0)
	h.level.AddEnemyUnit(e)
	h.level.Tick()
	assert.Equal(t, 1, h.level.Ticks())
	x := e.X()

	h.level.TogglePause()
	assert.Equal(t, StatePaused, h.level.State())
	h.level.Tick()
	h.level.Fire()
	assert.Equal(t, x, e.X(), "paused level does not advance")
	assert.Equal(t, 0, h.level.Registry().UserProjectiles.Len(), "input ignored while paused")

	h.level.TogglePause()
	h.level.Tick()
	assert.Equal(t, x+config.EnemyVelocityX, e.X())
	assert.Equal(t, 1, h.events.count(event.Paused))
	assert.Equal(t, 1, h.events.count(event.Resumed))
}

func TestLevel_UserEnemyCollision(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	h.level.Start()
	enemy := overlappingEnemy(h.level)
	h.level.AddEnemyUnit(enemy)

	h.level.Tick()
	assert.True(t, enemy.IsDestroyed())
	assert.Equal(t, 4, h.level.UserHealth())
	assert.Equal(t, 1, h.level.Kills())
	assert.Equal(t, config.PointsPerKill, h.level.Score())
	assert.Equal(t, 0, h.level.EnemyCount())
	assert.NotContains(t, h.renderer.attached, enemy.ID)

	ev, ok := h.events.last(event.ScoreChanged)
	require.True(t, ok)
	assert.Equal(t, config.PointsPerKill, ev.Data)
	ev, ok = h.events.last(event.UserHealthChanged)
	require.True(t, ok)
	assert.Equal(t, 4, ev.Data)
}

func TestLevel_PenetrationDamagesUserWithoutKill(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	h.level.Start()
	enemy := quietEnemy(3, 0)
	h.level.AddEnemyUnit(enemy)

	h.level.Tick()
	assert.True(t, enemy.IsDestroyed())
	assert.Equal(t, entity.CausePenetration, enemy.Cause())
	assert.Equal(t, 4, h.level.UserHealth())
	assert.Equal(t, 0, h.level.Kills())
	assert.Equal(t, 0, h.level.Score())
	assert.Equal(t, 0, h.level.Registry().Enemies.Len())
	assert.Equal(t, 0, h.events.count(event.ScoreChanged))
}

func TestLevel_DestroyedMidTickNotVisitedAgain(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	h.level.Start()
	// сбит в столкновении и одновременно за линией обороны
	enemy := quietEnemy(2, h.level.User().Y())
	h.level.AddEnemyUnit(enemy)

	h.level.Tick()
	assert.Equal(t, entity.CauseCombat, enemy.Cause())
	assert.Equal(t, 4, h.level.UserHealth(), "penetration pass skips the destroyed enemy")
	assert.Equal(t, 1, h.level.Kills())
	assert.Nil(t, h.level.Registry().Find(enemy.ID))
}

func TestLevel_EnemyFireAppendedWithoutUpdate(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	h.level.Start()
	shooter := entity.NewEnemyPlane(800, 0, utils.NewScriptedRandom(0))
	h.level.AddEnemyUnit(shooter)

	h.level.Tick()
	shots := h.level.Registry().EnemyProjectiles.Actors()
	require.Len(t, shots, 1)
	assert.Equal(t, shooter.X()+config.EnemyProjectileOffsetX, shots[0].X())
	assert.Contains(t, h.renderer.attached, shots[0].ID)
}

func TestLevel_OutOfBoundsProjectilesCulled(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	h.level.Start()
	h.level.Fire()
	require.Equal(t, 1, h.level.Registry().UserProjectiles.Len())
	shot := h.level.Registry().UserProjectiles.Actors()[0]

	for i := 0; i < 100; i++ {
		h.level.Tick()
	}
	assert.Equal(t, 0, h.level.Registry().UserProjectiles.Len())
	assert.Equal(t, entity.CauseOutOfBounds, shot.Cause())
	assert.NotContains(t, h.renderer.attached, shot.ID)
}

func TestLevel_SpawnerTopsUpToTotal(t *testing.T) {
	h := newHarness(t, killsLevel(3, 1.0, 10, ""), utils.NewPRNGService(1))
	h.level.Start()

	h.level.Tick()
	assert.Equal(t, 3, h.level.EnemyCount())
	h.level.Tick()
	assert.Equal(t, 3, h.level.Registry().Enemies.Len())
	h.level.Registry().Enemies.Each(func(e *entity.Actor) {
		assert.Less(t, e.Y(), config.ScreenHeight-config.EnemyMaxYAdjustment)
	})
}

func TestLevel_KillTargetAdvances(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 2, "NEXT"), utils.NewPRNGService(1))
	h.level.Start()
	h.level.AddEnemyUnit(overlappingEnemy(h.level))
	h.level.AddEnemyUnit(overlappingEnemy(h.level))

	h.level.Tick()
	assert.Equal(t, 2, h.level.Kills())
	assert.Equal(t, StateTransitioning, h.level.State())
	ev, ok := h.events.last(event.LevelComplete)
	require.True(t, ok)
	assert.Equal(t, "NEXT", ev.Data)
	assert.Equal(t, 1, h.audio.stops)

	h.level.Tick()
	assert.Equal(t, 1, h.level.Ticks(), "transitioning level no longer ticks")
}

func TestLevel_LastKillTargetWins(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 1, ""), utils.NewPRNGService(1))
	h.level.Start()
	h.level.AddEnemyUnit(overlappingEnemy(h.level))

	h.level.Tick()
	assert.Equal(t, StateGameOverWin, h.level.State())
	assert.Equal(t, 1, h.events.count(event.GameOverWin))
	assert.Equal(t, config.TrackWin, h.audio.played[len(h.audio.played)-1])
	assert.False(t, h.audio.loops[len(h.audio.loops)-1])
}

func TestLevel_LossWhenUserHealthReachesZero(t *testing.T) {
	def := killsLevel(5, 0, 1, "")
	def.PlayerHealth = 1
	h := newHarness(t, def, utils.NewPRNGService(1))
	h.level.Start()
	h.level.AddEnemyUnit(overlappingEnemy(h.level))

	h.level.Tick()
	assert.Equal(t, StateGameOverLoss, h.level.State())
	assert.Equal(t, 0, h.level.UserHealth())
	assert.Equal(t, 1, h.events.count(event.GameOverLoss))
	assert.Equal(t, 0, h.events.count(event.GameOverWin), "loss is checked before the kill target")
	assert.Equal(t, config.TrackGameOver, h.audio.played[len(h.audio.played)-1])

	h.level.TogglePause()
	assert.Equal(t, StateGameOverLoss, h.level.State())
}

func TestLevel_RestartClearsState(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	h.level.Start()
	h.level.AddEnemyUnit(overlappingEnemy(h.level))
	h.level.AddEnemyUnit(quietEnemy(900, 0))
	h.level.Fire()
	h.level.Tick()
	require.Equal(t, 1, h.level.Kills())
	oldUser := h.level.User()

	require.NoError(t, h.level.Restart())
	assert.Equal(t, StateRunning, h.level.State())
	assert.Equal(t, 0, h.level.Score())
	assert.Equal(t, 0, h.level.Kills())
	assert.Equal(t, 5, h.level.UserHealth())
	assert.Equal(t, 0, h.level.EnemyCount())
	assert.Equal(t, 1, h.level.Registry().Len())
	assert.NotSame(t, oldUser, h.level.User())
	assert.Len(t, h.renderer.attached, 1)
	assert.Equal(t, 1, h.events.count(event.LevelRestarted))
}

func TestLevel_HitboxOverlaysWhenEnabled(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	h.opts.ShowHitboxes = true // второй уровень с теми же фейками
	lvl, err := NewLevel(killsLevel(5, 0, 10, ""), h.opts)
	require.NoError(t, err)
	lvl.Start()
	lvl.AddEnemyUnit(quietEnemy(900, 0))

	lvl.Tick()
	require.Len(t, h.renderer.overlays, 2)
	assert.Equal(t, lvl.User().HitBox(), h.renderer.overlays[0])

	h.level.Start()
	h.level.Tick()
	assert.Len(t, h.renderer.overlays, 2, "disabled by default")
}

func TestLevel_CollaboratorFailureIsReported(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	boom := errors.New("gpu lost")
	h.renderer.attachErr = boom

	h.level.Start()
	assert.Equal(t, StateRunning, h.level.State())
	ev, ok := h.events.last(event.CollaboratorFailed)
	require.True(t, ok)
	assert.ErrorIs(t, ev.Data.(error), boom)

	h.level.Fire()
	h.level.Tick()
	assert.Equal(t, 1, h.level.Ticks())
	assert.Equal(t, 1, h.level.Registry().UserProjectiles.Len())
}

func TestLevel_GoToMainMenu(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	h.level.Start()
	h.level.GoToMainMenu()
	assert.Equal(t, StateTransitioning, h.level.State())
	assert.Equal(t, 1, h.events.count(event.ReturnToMenu))

	h.level.GoToMainMenu()
	h.level.GoToNextLevel("X")
	assert.Equal(t, 1, h.events.count(event.ReturnToMenu))
	assert.Equal(t, 0, h.events.count(event.LevelComplete))
}

func TestLevel_TeardownDetachesEverything(t *testing.T) {
	h := newHarness(t, killsLevel(5, 0, 10, ""), utils.NewPRNGService(1))
	h.level.Start()
	h.level.AddEnemyUnit(quietEnemy(900, 0))
	h.level.Fire()

	h.level.Teardown()
	assert.Empty(t, h.renderer.attached)
	assert.Equal(t, 0, h.level.Registry().Len())
	assert.Equal(t, entity.CauseTeardown, h.level.User().Cause())
}

func TestLevel_InvalidConfigRejected(t *testing.T) {
	_, err := NewLevel(killsLevel(5, 1.5, 10, ""), Options{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	_, err = NewLevel(killsLevel(0, 0.5, 10, ""), Options{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLevel_BossShieldAndWin(t *testing.T) {
	// 0.5 выше всех вероятностей: щит не включается, босс не стреляет
	h := newHarness(t, bossLevel(), utils.NewScriptedRandom(0.5))
	h.level.Start()
	assert.Nil(t, h.level.Boss())

	h.level.Tick()
	boss := h.level.Boss()
	require.NotNil(t, boss)
	assert.Equal(t, 1, h.level.EnemyCount())
	assert.Contains(t, h.renderer.attached, boss.ID)

	boss.TakeDamage()
	h.level.Tick()
	ev, ok := h.events.last(event.BossHealthChanged)
	require.True(t, ok)
	assert.Equal(t, config.BossHealth-1, ev.Data)

	boss.Destroy(entity.CauseCombat)
	h.level.Tick()
	assert.Equal(t, StateGameOverWin, h.level.State())
	assert.Equal(t, 1, h.level.Kills())
	assert.Equal(t, config.PointsPerKill, h.level.Score())
}

func TestLevel_BossShieldChangeNotified(t *testing.T) {
	h := newHarness(t, bossLevel(), utils.NewScriptedRandom(0))
	h.level.Start()
	h.level.Tick() // спавн и первый шаг: щит включается
	boss := h.level.Boss()
	require.NotNil(t, boss)
	require.True(t, boss.Shield.IsActive())

	ev, ok := h.events.last(event.ShieldChanged)
	require.True(t, ok)
	assert.Equal(t, true, ev.Data)

	boss.TakeDamage()
	assert.Equal(t, config.BossHealth, boss.Health.Current())
}

func TestRules_Selection(t *testing.T) {
	r, err := NewRules(killsLevel(5, 0.2, 10, "NEXT"), utils.NewScriptedRandom())
	require.NoError(t, err)
	kt, ok := r.(*KillTargetRules)
	require.True(t, ok)
	assert.Equal(t, 5, kt.Spawner().TotalEnemies)
	assert.Equal(t, "NEXT", kt.Progress().NextLevel)

	r, err = NewRules(bossLevel(), utils.NewScriptedRandom())
	require.NoError(t, err)
	br, ok := r.(*BossRules)
	require.True(t, ok)
	assert.False(t, br.Spawned())
	o, _ := br.Outcome(nil)
	assert.Equal(t, system.OutcomeContinue, o)
}
