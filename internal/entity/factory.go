// internal/entity/factory.go
package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"go-sky-battle/internal/component"
	"go-sky-battle/internal/config"
	"go-sky-battle/internal/utils"
)

// NewUserPlane создаёт самолёт игрока в стартовой точке.
func NewUserPlane(health int) *Actor {
	a := newActor(KindUserPlane,
		mgl64.Vec2{config.UserInitialX, config.UserInitialY},
		mgl64.Vec2{config.UserWidth, config.UserHeight},
		config.UserHitboxMargin,
		&PilotMotion{Speed: config.UserVerticalVelocity, MinY: config.UserMinY, MaxY: config.UserMaxY},
	)
	a.Health = component.NewHealth(health)
	a.Kills = &component.KillCounter{}
	a.weapon = NewDirectWeapon(mgl64.Vec2{config.UserNoseOffsetX, config.UserNoseOffsetY}, NewUserProjectile)
	return a
}

// NewEnemyPlane создаёт рядового врага, летящего влево.
func NewEnemyPlane(x, y float64, rng utils.Random) *Actor {
	a := newActor(KindEnemyPlane,
		mgl64.Vec2{x, y},
		mgl64.Vec2{config.EnemyWidth, config.EnemyHeight},
		config.EnemyHitboxMargin,
		&StraightMotion{Velocity: mgl64.Vec2{config.EnemyVelocityX, 0}},
	)
	a.Health = component.NewHealth(config.EnemyHealth)
	a.weapon = NewRandomWeapon(config.EnemyFireRate,
		mgl64.Vec2{config.EnemyProjectileOffsetX, config.EnemyProjectileOffsetY},
		rng, NewEnemyProjectile)
	return a
}

// NewBoss создаёт босса со щитом и шаблоном движения.
// Вертикальные границы: [0, screenHeight - высота босса].
func NewBoss(screenHeight float64, rng utils.Random) (*Actor, error) {
	maxY := screenHeight - config.BossHeight
	if maxY < 0 {
		return nil, fmt.Errorf("boss does not fit a %.0f px screen: %w", screenHeight, config.ErrInvalidConfig)
	}
	pattern, err := component.NewMovementPattern(config.BossVerticalVelocity,
		config.BossPatternCycles, config.BossMaxConsecutiveMove, rng)
	if err != nil {
		return nil, fmt.Errorf("boss movement: %w", err)
	}
	shield, err := component.NewShield(config.ShieldActivationProbability, config.ShieldMaxFrames, rng)
	if err != nil {
		return nil, fmt.Errorf("boss shield: %w", err)
	}

	y := config.BossInitialY
	if y > maxY {
		y = maxY
	}
	a := newActor(KindBoss,
		mgl64.Vec2{config.BossInitialX, y},
		mgl64.Vec2{config.BossWidth, config.BossHeight},
		config.BossHitboxMargin,
		&PatrolMotion{Pattern: pattern, MinY: 0, MaxY: maxY},
	)
	a.Health = component.NewHealth(config.BossHealth)
	a.Shield = shield
	a.weapon = NewRandomWeapon(config.BossFireRate,
		mgl64.Vec2{config.BossProjectileOffsetX, config.BossProjectileOffsetY},
		rng, NewBossProjectile)
	return a, nil
}

func NewUserProjectile(x, y float64) *Actor {
	return newActor(KindUserProjectile,
		mgl64.Vec2{x, y},
		mgl64.Vec2{config.UserProjectileWidth, config.UserProjectileHeight},
		config.UserProjectileMargin,
		&StraightMotion{Velocity: mgl64.Vec2{config.UserProjectileVelocityX, 0}},
	)
}

func NewEnemyProjectile(x, y float64) *Actor {
	return newActor(KindEnemyProjectile,
		mgl64.Vec2{x, y},
		mgl64.Vec2{config.EnemyProjectileWidth, config.EnemyProjectileHeight},
		config.EnemyProjectileMargin,
		&StraightMotion{Velocity: mgl64.Vec2{config.EnemyProjectileVelocityX, 0}},
	)
}

func NewBossProjectile(x, y float64) *Actor {
	return newActor(KindBossProjectile,
		mgl64.Vec2{x, y},
		mgl64.Vec2{config.BossProjectileWidth, config.BossProjectileHeight},
		config.BossProjectileMargin,
		NewZigzagMotion(mgl64.Vec2{config.BossProjectileVelocityX, 0}, config.BossZigzagStep, config.BossZigzagPeriod),
	)
}
