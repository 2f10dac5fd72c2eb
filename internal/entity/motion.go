// internal/entity/motion.go
package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-sky-battle/internal/component"
	mathutil "go-sky-battle/pkg/utils"
)

// StraightMotion — постоянная скорость.
type StraightMotion struct {
	Velocity mgl64.Vec2
}

func (m *StraightMotion) Move(a *Actor) {
	a.Position = a.Position.Add(m.Velocity)
}

// PilotMotion — вертикальное движение по командам игрока с ограничением по Y.
type PilotMotion struct {
	Speed     float64
	MinY      float64
	MaxY      float64
	direction float64
}

// Steer задаёт множитель скорости: -1 вверх, +1 вниз, 0 стоп.
func (m *PilotMotion) Steer(direction float64) {
	switch {
	case direction < 0:
		m.direction = -1
	case direction > 0:
		m.direction = 1
	default:
		m.direction = 0
	}
}

func (m *PilotMotion) Direction() float64 { return m.direction }

func (m *PilotMotion) Move(a *Actor) {
	y := mathutil.Clamp(a.Y()+m.direction*m.Speed, m.MinY, m.MaxY)
	a.Position = mgl64.Vec2{a.X(), y}
}

// PatrolMotion — движение босса по шаблону. Смещение, выводящее за
// [MinY, MaxY], не применяется. После движения тикает щит.
type PatrolMotion struct {
	Pattern *component.MovementPattern
	MinY    float64
	MaxY    float64

	shieldChanged bool
}

func (m *PatrolMotion) Move(a *Actor) {
	dy := m.Pattern.NextMove()
	if y := a.Y() + dy; y >= m.MinY && y <= m.MaxY {
		a.Position = mgl64.Vec2{a.X(), y}
	}
	m.shieldChanged = false
	if a.Shield != nil {
		m.shieldChanged = a.Shield.Update()
	}
}

// ShieldChanged сообщает, переключился ли щит на последнем тике.
func (m *PatrolMotion) ShieldChanged() bool { return m.shieldChanged }

// ZigzagMotion — постоянная скорость плюс боковое смещение ±Step,
// направление которого меняется каждые Period тиков.
type ZigzagMotion struct {
	Velocity mgl64.Vec2
	Step     float64
	Period   int

	direction float64
	ticks     int
}

func NewZigzagMotion(velocity mgl64.Vec2, step float64, period int) *ZigzagMotion {
	if period <= 0 {
		period = 1
	}
	return &ZigzagMotion{Velocity: velocity, Step: step, Period: period, direction: 1}
}

func (m *ZigzagMotion) Move(a *Actor) {
	a.Position = a.Position.Add(m.Velocity).Add(mgl64.Vec2{0, m.direction * m.Step})
	m.ticks++
	if m.ticks >= m.Period {
		m.ticks = 0
		m.direction = -m.direction
	}
}
