// internal/component/shield.go
package component

import (
	"fmt"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/utils"
)

// Shield — щит босса, автомат из двух состояний.
// Неактивный щит каждый тик включается с вероятностью probability;
// активный держится maxFrames тиков и затем гаснет.
type Shield struct {
	active       bool
	activeFrames int
	probability  float64
	maxFrames    int
	rng          utils.Random

	activations int
}

// NewShield проверяет параметры: вероятность в [0,1], maxFrames > 0.
func NewShield(probability float64, maxFrames int, rng utils.Random) (*Shield, error) {
	if probability < 0 || probability > 1 {
		return nil, fmt.Errorf("shield activation probability %v: %w", probability, config.ErrInvalidConfig)
	}
	if maxFrames <= 0 {
		return nil, fmt.Errorf("shield max frames %d: %w", maxFrames, config.ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("shield without random source: %w", config.ErrInvalidConfig)
	}
	return &Shield{probability: probability, maxFrames: maxFrames, rng: rng}, nil
}

// Update продвигает щит на один тик и сообщает, сменилось ли состояние.
func (s *Shield) Update() bool {
	if s.active {
		s.activeFrames++
		if s.activeFrames >= s.maxFrames {
			s.active = false
			return true
		}
		return false
	}
	if utils.Chance(s.rng, s.probability) {
		s.active = true
		s.activeFrames = 0
		s.activations++
		return true
	}
	return false
}

func (s *Shield) IsActive() bool        { return s.active }
func (s *Shield) ActiveFrames() int     { return s.activeFrames }
func (s *Shield) MaxFrames() int        { return s.maxFrames }
func (s *Shield) Activations() int      { return s.activations }
func (s *Shield) Probability() float64 { return s.probability }
