// internal/entity/actor.go
package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"go-sky-battle/internal/component"
)

// Kind — вариант актёра.
type Kind int

const (
	KindUserPlane Kind = iota
	KindEnemyPlane
	KindBoss
	KindUserProjectile
	KindEnemyProjectile
	KindBossProjectile
)

func (k Kind) String() string {
	switch k {
	case KindUserPlane:
		return "user_plane"
	case KindEnemyPlane:
		return "enemy_plane"
	case KindBoss:
		return "boss"
	case KindUserProjectile:
		return "user_projectile"
	case KindEnemyProjectile:
		return "enemy_projectile"
	case KindBossProjectile:
		return "boss_projectile"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsProjectile — снаряды гибнут от первого попадания.
func (k Kind) IsProjectile() bool {
	return k == KindUserProjectile || k == KindEnemyProjectile || k == KindBossProjectile
}

// DestroyCause — почему актёр был уничтожен.
type DestroyCause int

const (
	CauseNone DestroyCause = iota
	CauseCombat
	CausePenetration
	CauseOutOfBounds
	CauseTeardown
)

func (c DestroyCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseCombat:
		return "combat"
	case CausePenetration:
		return "penetration"
	case CauseOutOfBounds:
		return "out_of_bounds"
	case CauseTeardown:
		return "teardown"
	}
	return fmt.Sprintf("cause(%d)", int(c))
}

// Motion двигает актёра на один тик.
type Motion interface {
	Move(a *Actor)
}

// Steerable — движение, которым управляют извне (самолёт игрока).
type Steerable interface {
	Steer(direction float64)
}

// Weapon — стратегия стрельбы. Fire возвращает nil, если выстрела в этот тик нет.
type Weapon interface {
	Fire(a *Actor) *Actor
}

// Actor — любая сущность на поле: самолёты и снаряды.
// Health, Shield и Kills опциональны и зависят от варианта.
type Actor struct {
	ID           uuid.UUID
	Kind         Kind
	Position     mgl64.Vec2 // левый верхний угол
	Size         mgl64.Vec2
	HitboxMargin float64

	Health *component.Health
	Shield *component.Shield
	Kills  *component.KillCounter

	motion    Motion
	weapon    Weapon
	destroyed bool
	cause     DestroyCause
}

func newActor(kind Kind, pos, size mgl64.Vec2, margin float64, motion Motion) *Actor {
	return &Actor{
		ID:           uuid.New(),
		Kind:         kind,
		Position:     pos,
		Size:         size,
		HitboxMargin: margin,
		motion:       motion,
	}
}

func (a *Actor) X() float64 { return a.Position.X() }
func (a *Actor) Y() float64 { return a.Position.Y() }

// Update продвигает актёра на один тик. Уничтоженные актёры не двигаются.
func (a *Actor) Update() {
	if a.destroyed || a.motion == nil {
		return
	}
	a.motion.Move(a)
}

// Fire спрашивает оружие о выстреле в этот тик.
func (a *Actor) Fire() *Actor {
	if a.destroyed || a.weapon == nil {
		return nil
	}
	return a.weapon.Fire(a)
}

// SetWeapon меняет стратегию стрельбы; nil отключает стрельбу.
func (a *Actor) SetWeapon(w Weapon) { a.weapon = w }

func (a *Actor) Weapon() Weapon { return a.weapon }
func (a *Actor) Motion() Motion { return a.motion }

// TakeDamage наносит одну единицу урона.
// Активный щит поглощает урон, актёр без здоровья гибнет сразу.
func (a *Actor) TakeDamage() {
	if a.destroyed {
		return
	}
	if a.Shield != nil && a.Shield.IsActive() {
		return
	}
	if a.Health == nil {
		a.Destroy(CauseCombat)
		return
	}
	a.Health.TakeDamage()
	if a.Health.IsZero() {
		a.Destroy(CauseCombat)
	}
}

// Destroy помечает актёра уничтоженным. Повторный вызов ничего не меняет,
// причина остаётся первой. Возвращает true, если уничтожил именно этот вызов.
func (a *Actor) Destroy(cause DestroyCause) bool {
	if a.destroyed {
		return false
	}
	a.destroyed = true
	a.cause = cause
	return true
}

func (a *Actor) IsDestroyed() bool   { return a.destroyed }
func (a *Actor) Cause() DestroyCause { return a.cause }

// Bounds — полный прямоугольник спрайта.
func (a *Actor) Bounds() component.Box {
	return component.NewBox(a.Position, a.Size)
}

// HitBox — уменьшенный прямоугольник для проверки попаданий.
func (a *Actor) HitBox() component.Box {
	return a.Bounds().Shrink(a.HitboxMargin)
}

// IsOutOfBounds сообщает, что актёр целиком покинул игровое поле.
func (a *Actor) IsOutOfBounds(field component.Box) bool {
	return !a.Bounds().Intersects(field)
}

// Steer передаёт направление управляемому движению; у остальных ничего не делает.
func (a *Actor) Steer(direction float64) {
	if s, ok := a.motion.(Steerable); ok {
		s.Steer(direction)
	}
}

func (a *Actor) MoveUp()     { a.Steer(-1) }
func (a *Actor) MoveDown()   { a.Steer(1) }
func (a *Actor) StopMoving() { a.Steer(0) }

func (a *Actor) String() string {
	return fmt.Sprintf("%s[%s](%.0f,%.0f)", a.Kind, a.ID.String()[:8], a.X(), a.Y())
}
