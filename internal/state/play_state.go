// internal/state/play_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-sky-battle/internal/app"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState — идёт уровень. Один Update ebiten = один тик симуляции.
type PlayState struct {
	sm     *StateMachine
	shared *Shared
}

func NewPlayState(sm *StateMachine, shared *Shared) *PlayState {
	return &PlayState{sm: sm, shared: shared}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update() error {
	m := s.shared.Manager
	if m.InMenu() {
		s.sm.SetState(NewMenuState(s.sm, s.shared))
		return nil
	}
	level := m.Current()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		level.TogglePause()
		s.sm.SetState(NewPauseState(s.sm, s.shared, s))
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.ReturnToMenu()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := level.Restart(); err != nil {
			log.Printf("restart: %v", err)
		}
	}
	handleFlightInput(level)

	s.shared.Renderer.ClearOverlays()
	m.Tick()

	if m.InMenu() {
		s.sm.SetState(NewMenuState(s.sm, s.shared))
		return nil
	}
	if m.Outcome() != "" {
		s.sm.SetState(NewGameOverState(s.sm, s.shared))
	}
	return nil
}

func handleFlightInput(level *app.Level) {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		level.MoveUp()
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		level.MoveDown()
	default:
		level.StopMoving()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		level.Fire()
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.shared.Renderer.Draw(screen)
	s.shared.HUD.Draw(screen, s.shared.Hearts)
}

func (s *PlayState) Exit() {}
