// internal/state/menu_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/ui"
)

// MenuState — главное меню
type MenuState struct {
	sm     *StateMachine
	shared *Shared
}

func NewMenuState(sm *StateMachine, shared *Shared) *MenuState {
	return &MenuState{sm: sm, shared: shared}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := m.shared.Manager.StartGame(); err != nil {
			log.Printf("start game: %v", err)
			m.shared.HUD.LastError = err.Error()
			return nil
		}
		m.sm.SetState(NewPlayState(m.sm, m.shared))
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, []string{
		"SKY BATTLE",
		"",
		"SPACE - start    ESC - quit",
		"UP/DOWN - move   SPACE - fire   P - pause",
	})
}

func (m *MenuState) Exit() {}
