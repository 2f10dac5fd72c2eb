// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженный уровень под затемнением. Тики не идут.
type PauseState struct {
	sm            *StateMachine
	shared        *Shared
	previousState State
}

func NewPauseState(sm *StateMachine, shared *Shared, prev State) *PauseState {
	return &PauseState{sm: sm, shared: shared, previousState: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	m := s.shared.Manager
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.ReturnToMenu()
		s.sm.SetState(NewMenuState(s.sm, s.shared))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if level := m.Current(); level != nil {
			level.TogglePause()
		}
		s.sm.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)
	ui.DrawCentered(screen, []string{"PAUSED", "", "P - resume    ESC - main menu"})
}

func (s *PauseState) Exit() {}
