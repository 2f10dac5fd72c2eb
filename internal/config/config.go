// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 1300
	ScreenHeight   = 750
	TicksPerSecond = 20 // один тик = 50 мс
	TickMillis     = 1000 / TicksPerSecond

	// Враги появляются не ниже этой отметки от нижнего края
	EnemyMaxYAdjustment = 150.0
	// Линия обороны: враг, перешедший её по X, считается прорвавшимся
	DefenseLineX  = 0.0
	PointsPerKill = 100

	UserInitialX         = 5.0
	UserInitialY         = 300.0
	UserWidth            = 150.0
	UserHeight           = 150.0
	UserHitboxMargin     = 20.0
	UserVerticalVelocity = 8.0
	UserMinY             = -40.0
	UserMaxY             = 600.0
	UserNoseOffsetX      = 110.0
	UserNoseOffsetY      = 0.0

	EnemyWidth             = 150.0
	EnemyHeight            = 150.0
	EnemyHitboxMargin      = 25.0
	EnemyVelocityX         = -6.0
	EnemyFireRate          = 0.04
	EnemyHealth            = 1
	EnemyProjectileOffsetX = -100.0
	EnemyProjectileOffsetY = 50.0

	BossInitialX           = 1000.0
	BossInitialY           = 400.0
	BossWidth              = 300.0
	BossHeight             = 300.0
	BossHitboxMargin       = 30.0
	BossHealth             = 50
	BossFireRate           = 0.04
	BossVerticalVelocity   = 8.0
	BossPatternCycles      = 5
	BossMaxConsecutiveMove = 10
	BossProjectileOffsetX  = 0.0
	BossProjectileOffsetY  = 75.0

	ShieldActivationProbability = 0.01
	ShieldMaxFrames             = 300

	UserProjectileWidth     = 125.0
	UserProjectileHeight    = 125.0
	UserProjectileMargin    = 30.0
	UserProjectileVelocityX = 15.0

	EnemyProjectileWidth     = 50.0
	EnemyProjectileHeight    = 50.0
	EnemyProjectileMargin    = 5.0
	EnemyProjectileVelocityX = -10.0

	BossProjectileWidth     = 75.0
	BossProjectileHeight    = 75.0
	BossProjectileMargin    = 5.0
	BossProjectileVelocityX = -15.0
	BossZigzagStep          = 3.0
	BossZigzagPeriod        = 10

	HitboxStrokeWidth = 2.0
	ShieldPadding     = 20.0
)

// Имена звуковых дорожек
const (
	TrackLevelMusic = "level_music"
	TrackWin        = "win"
	TrackGameOver   = "game_over"
)

var (
	BackgroundColor      = color.RGBA{10, 14, 40, 255}
	UserPlaneColor       = color.RGBA{70, 160, 255, 255}
	EnemyPlaneColor      = color.RGBA{220, 60, 60, 255}
	BossColor            = color.RGBA{180, 50, 230, 255}
	UserProjectileColor  = color.RGBA{255, 215, 0, 255}
	EnemyProjectileColor = color.RGBA{255, 120, 40, 255}
	BossProjectileColor  = color.RGBA{255, 60, 200, 255}
	ShieldColor          = color.RGBA{80, 220, 255, 160}
	HitboxColor          = color.RGBA{255, 0, 0, 255}
	TextLightColor       = color.RGBA{240, 240, 240, 255}
	PauseOverlayColor    = color.RGBA{0, 0, 0, 128}
)
