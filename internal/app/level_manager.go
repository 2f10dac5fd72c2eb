// internal/app/level_manager.go
package app

import (
	"errors"
	"fmt"
	"log"

	"go-sky-battle/internal/defs"
	"go-sky-battle/internal/event"
)

// ErrUnknownLevel — запрошен уровень, которого нет в библиотеке.
var ErrUnknownLevel = errors.New("unknown level")

type transition struct {
	toMenu bool
	target string
}

// LevelManager создаёт уровни по событиям LevelComplete и ReturnToMenu.
// Переход откладывается до конца тика, чтобы уровень не разбирался
// посреди собственного обновления.
type LevelManager struct {
	library    *defs.LevelLibrary
	opts       Options
	dispatcher *event.Dispatcher

	current *Level
	pending *transition
	outcome event.EventType
	lastErr error
}

func NewLevelManager(library *defs.LevelLibrary, opts Options) *LevelManager {
	opts = opts.withDefaults()
	m := &LevelManager{
		library:    library,
		opts:       opts,
		dispatcher: opts.Dispatcher,
	}
	for _, t := range []event.EventType{event.LevelComplete, event.ReturnToMenu, event.GameOverWin, event.GameOverLoss} {
		m.dispatcher.Subscribe(t, m)
	}
	return m
}

func (m *LevelManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelComplete:
		id, _ := e.Data.(string)
		m.pending = &transition{target: id}
	case event.ReturnToMenu:
		m.pending = &transition{toMenu: true}
	case event.GameOverWin, event.GameOverLoss:
		m.outcome = e.Type
	}
}

// StartGame запускает первый уровень библиотеки.
func (m *LevelManager) StartGame() error {
	return m.GoTo(m.library.First().ID)
}

// GoTo разбирает текущий уровень и запускает уровень id.
func (m *LevelManager) GoTo(id string) error {
	def, ok := m.library.Get(id)
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownLevel)
	}
	next, err := NewLevel(def, m.opts)
	if err != nil {
		return fmt.Errorf("level %s: %w", id, err)
	}
	m.closeCurrent()
	m.current = next
	m.outcome = ""
	m.lastErr = nil
	next.Start()
	return nil
}

// Tick продвигает текущий уровень и применяет отложенный переход.
func (m *LevelManager) Tick() {
	if m.current != nil {
		m.current.Tick()
	}
	m.applyPending()
}

// ReturnToMenu — команда хоста: выйти в меню сразу.
func (m *LevelManager) ReturnToMenu() {
	if m.current == nil {
		return
	}
	m.current.GoToMainMenu()
	m.applyPending()
}

func (m *LevelManager) applyPending() {
	p := m.pending
	if p == nil {
		return
	}
	m.pending = nil
	if p.toMenu {
		m.closeCurrent()
		log.Println("returned to main menu")
		return
	}
	if err := m.GoTo(p.target); err != nil {
		log.Printf("level transition failed: %v", err)
		m.lastErr = err
		m.closeCurrent()
		m.dispatcher.Emit(event.TransitionFailed, err)
	}
}

func (m *LevelManager) closeCurrent() {
	if m.current == nil {
		return
	}
	m.current.Teardown()
	m.current = nil
}

// Current — текущий уровень или nil в меню.
func (m *LevelManager) Current() *Level { return m.current }

func (m *LevelManager) InMenu() bool { return m.current == nil }

// Outcome — GameOverWin или GameOverLoss текущего уровня, пусто пока игра идёт.
func (m *LevelManager) Outcome() event.EventType { return m.outcome }

// LastError — последняя ошибка перехода.
func (m *LevelManager) LastError() error { return m.lastErr }

func (m *LevelManager) Library() *defs.LevelLibrary { return m.library }

func (m *LevelManager) Dispatcher() *event.Dispatcher { return m.dispatcher }
