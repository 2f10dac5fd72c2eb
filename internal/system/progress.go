// internal/system/progress.go
package system

import (
	"fmt"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/entity"
)

// Outcome — итог проверки прогресса за тик.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeAdvance
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeAdvance:
		return "advance"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// ProgressManager решает, пора ли переходить на следующий уровень.
type ProgressManager struct {
	KillsToAdvance int
	NextLevel      string // пусто — уровень последний, порог означает победу
}

func NewProgressManager(killsToAdvance int, nextLevel string) (*ProgressManager, error) {
	if killsToAdvance <= 0 {
		return nil, fmt.Errorf("kills to advance %d: %w", killsToAdvance, config.ErrInvalidConfig)
	}
	return &ProgressManager{KillsToAdvance: killsToAdvance, NextLevel: nextLevel}, nil
}

// Evaluate смотрит на самолёт игрока: здоровье, затем счётчик убийств.
func (p *ProgressManager) Evaluate(user *entity.Actor) Outcome {
	if user.Health != nil && user.Health.IsZero() {
		return OutcomeLoss
	}
	if user.Kills == nil || !user.Kills.HasReached(p.KillsToAdvance) {
		return OutcomeContinue
	}
	if p.NextLevel == "" {
		return OutcomeWin
	}
	return OutcomeAdvance
}
