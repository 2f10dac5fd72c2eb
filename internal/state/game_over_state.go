// internal/state/game_over_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/event"
	"go-sky-battle/internal/ui"
)

// GameOverState — экран победы или поражения
type GameOverState struct {
	sm     *StateMachine
	shared *Shared
}

func NewGameOverState(sm *StateMachine, shared *Shared) *GameOverState {
	return &GameOverState{sm: sm, shared: shared}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() error {
	m := s.shared.Manager
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// новый экземпляр уровня сбрасывает и итог менеджера
		if level := m.Current(); level != nil {
			if err := m.GoTo(level.ID()); err != nil {
				log.Printf("restart: %v", err)
				return nil
			}
		}
		s.sm.SetState(NewPlayState(s.sm, s.shared))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyM) {
		m.ReturnToMenu()
		s.sm.SetState(NewMenuState(s.sm, s.shared))
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.shared.Renderer.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)

	title := "GAME OVER"
	if s.shared.Manager.Outcome() == event.GameOverWin {
		title = "YOU WIN"
	}
	ui.DrawCentered(screen, []string{
		title,
		fmt.Sprintf("score %d   kills %d", s.shared.HUD.Score, s.shared.HUD.Kills),
		"",
		"R - play again    ESC - main menu",
	})
}

func (s *GameOverState) Exit() {}
