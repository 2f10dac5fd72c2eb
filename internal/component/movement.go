// internal/component/movement.go
package component

import (
	"fmt"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/utils"
)

// MovementPattern — циклическая последовательность вертикальных смещений босса.
// Каждый элемент повторяется ровно maxConsecutive тиков подряд, затем берётся
// следующий; после полного прохода последовательность перемешивается заново.
type MovementPattern struct {
	sequence       []float64
	index          int
	consecutive    int
	maxConsecutive int
	rng            utils.Random
}

// NewMovementPattern строит cycles троек {+v, -v, 0} и перемешивает их.
func NewMovementPattern(velocity float64, cycles, maxConsecutive int, rng utils.Random) (*MovementPattern, error) {
	if cycles <= 0 {
		return nil, fmt.Errorf("movement pattern cycles %d: %w", cycles, config.ErrInvalidConfig)
	}
	if maxConsecutive <= 0 {
		return nil, fmt.Errorf("movement pattern max consecutive frames %d: %w", maxConsecutive, config.ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("movement pattern without random source: %w", config.ErrInvalidConfig)
	}

	seq := make([]float64, 0, cycles*3)
	for i := 0; i < cycles; i++ {
		seq = append(seq, velocity, -velocity, 0)
	}
	p := &MovementPattern{
		sequence:       seq,
		maxConsecutive: maxConsecutive,
		rng:            rng,
	}
	p.shuffle()
	return p, nil
}

// NextMove возвращает очередное вертикальное смещение.
func (p *MovementPattern) NextMove() float64 {
	if p.consecutive >= p.maxConsecutive {
		p.consecutive = 0
		p.index++
		if p.index >= len(p.sequence) {
			p.index = 0
			p.shuffle()
		}
	}
	p.consecutive++
	return p.sequence[p.index]
}

// Sequence возвращает копию текущей последовательности.
func (p *MovementPattern) Sequence() []float64 {
	out := make([]float64, len(p.sequence))
	copy(out, p.sequence)
	return out
}

func (p *MovementPattern) Index() int          { return p.index }
func (p *MovementPattern) MaxConsecutive() int { return p.maxConsecutive }

func (p *MovementPattern) shuffle() {
	p.rng.Shuffle(len(p.sequence), func(i, j int) {
		p.sequence[i], p.sequence[j] = p.sequence[j], p.sequence[i]
	})
}
