// internal/app/rules.go
package app

import (
	"fmt"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/defs"
	"go-sky-battle/internal/entity"
	"go-sky-battle/internal/event"
	"go-sky-battle/internal/system"
	"go-sky-battle/internal/utils"
)

// Rules — правила конкретного уровня: кого спавнить и когда он пройден.
type Rules interface {
	Spawn(l *Level)
	// Outcome вызывается после проверки здоровья игрока; next — куда идти при OutcomeAdvance.
	Outcome(l *Level) (o system.Outcome, next string)
	Reset() error
}

// observer — правила, которым нужно смотреть на уровень в конце тика.
type observer interface {
	Observe(l *Level)
}

// NewRules выбирает правила по виду уровня.
func NewRules(def defs.LevelDefinition, rng utils.Random) (Rules, error) {
	switch def.Kind {
	case defs.KindKillTarget:
		return NewKillTargetRules(def, rng)
	case defs.KindBoss:
		return NewBossRules(def, rng)
	}
	return nil, fmt.Errorf("level %s: unknown kind %q: %w", def.ID, def.Kind, config.ErrInvalidConfig)
}

// KillTargetRules — обычный уровень: враги добираются спавнером,
// уровень пройден при достижении порога убийств.
type KillTargetRules struct {
	spawner  *system.EnemySpawner
	progress *system.ProgressManager
}

func NewKillTargetRules(def defs.LevelDefinition, rng utils.Random) (*KillTargetRules, error) {
	spawner, err := system.NewEnemySpawner(def.TotalEnemies, def.SpawnProbability,
		config.ScreenWidth, config.ScreenHeight-config.EnemyMaxYAdjustment, rng)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", def.ID, err)
	}
	progress, err := system.NewProgressManager(def.KillsToAdvance, def.NextLevel)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", def.ID, err)
	}
	return &KillTargetRules{spawner: spawner, progress: progress}, nil
}

func (r *KillTargetRules) Spawn(l *Level) {
	r.spawner.Spawn(l, l.EnemyCount())
}

func (r *KillTargetRules) Outcome(l *Level) (system.Outcome, string) {
	return r.progress.Evaluate(l.User()), r.progress.NextLevel
}

func (r *KillTargetRules) Reset() error { return nil }

func (r *KillTargetRules) Spawner() *system.EnemySpawner     { return r.spawner }
func (r *KillTargetRules) Progress() *system.ProgressManager { return r.progress }

// BossRules — уровень с боссом: босс выходит, когда на поле нет врагов,
// уровень пройден, когда босс сбит.
type BossRules struct {
	boss      *entity.Actor
	spawned   bool
	nextLevel string
	rng       utils.Random

	lastHealth int
	lastShield bool
}

func NewBossRules(def defs.LevelDefinition, rng utils.Random) (*BossRules, error) {
	r := &BossRules{nextLevel: def.NextLevel, rng: rng}
	if err := r.Reset(); err != nil {
		return nil, fmt.Errorf("level %s: %w", def.ID, err)
	}
	return r, nil
}

func (r *BossRules) Spawn(l *Level) {
	if r.spawned || l.EnemyCount() > 0 {
		return
	}
	l.AddEnemyUnit(r.boss)
	r.spawned = true
}

func (r *BossRules) Outcome(l *Level) (system.Outcome, string) {
	if !r.spawned || !r.boss.IsDestroyed() {
		return system.OutcomeContinue, ""
	}
	if r.nextLevel == "" {
		return system.OutcomeWin, ""
	}
	return system.OutcomeAdvance, r.nextLevel
}

// Reset создаёт нового босса.
func (r *BossRules) Reset() error {
	boss, err := entity.NewBoss(config.ScreenHeight, r.rng)
	if err != nil {
		return err
	}
	r.boss = boss
	r.spawned = false
	r.lastHealth = boss.Health.Current()
	r.lastShield = false
	return nil
}

// Observe сообщает об изменении здоровья и щита босса.
func (r *BossRules) Observe(l *Level) {
	if !r.spawned {
		return
	}
	if hp := r.boss.Health.Current(); hp != r.lastHealth {
		r.lastHealth = hp
		l.emit(event.BossHealthChanged, hp)
	}
	if active := r.boss.Shield.IsActive(); active != r.lastShield {
		r.lastShield = active
		l.emit(event.ShieldChanged, active)
	}
}

func (r *BossRules) Boss() *entity.Actor { return r.boss }
func (r *BossRules) Spawned() bool       { return r.spawned }
