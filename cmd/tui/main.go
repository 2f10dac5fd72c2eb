// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-sky-battle/internal/app"
	"go-sky-battle/internal/config"
	"go-sky-battle/internal/defs"
	"go-sky-battle/internal/event"
	"go-sky-battle/internal/interfaces"
	"go-sky-battle/internal/terminal"
	"go-sky-battle/internal/ui"
	"go-sky-battle/internal/utils"
)

var menuLines = []string{
	"SKY BATTLE",
	"",
	"SPACE - start    Q - quit",
	"UP/DOWN - move   SPACE - fire   P - pause   R - restart   M - menu",
}

func main() {
	levelsPath := flag.String("levels", "", "JSON-файл с уровнями (по умолчанию встроенные)")
	seed := flag.Int64("seed", 0, "сид генератора, 0 — текущее время")
	start := flag.String("start", "", "id уровня, с которого начать, минуя меню")
	hitboxes := flag.Bool("hitboxes", false, "показывать хитбоксы")
	logPath := flag.String("log", "", "файл журнала; терминал занят игрой")
	mute := flag.Bool("mute", false, "без звука")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	library := defs.DefaultLevels()
	if *levelsPath != "" {
		var err error
		library, err = defs.LoadLevelDefinitions(*levelsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load levels: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var audioOut interfaces.Audio = interfaces.NopAudio{}
	if !*mute {
		beepAudio, err := terminal.NewBeepAudio()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer beepAudio.Close()
			audioOut = beepAudio
		}
	}

	rng := utils.NewPRNGService(*seed)
	log.Printf("random seed %d", rng.Seed())

	dispatcher := event.NewDispatcher()
	hud := ui.NewHUD()
	hud.Subscribe(dispatcher)
	scene := terminal.NewRenderer(screen)

	manager := app.NewLevelManager(library, app.Options{
		Renderer:     scene,
		Audio:        audioOut,
		Dispatcher:   dispatcher,
		RNG:          rng,
		ShowHitboxes: *hitboxes,
	})
	if *start != "" {
		if err := manager.GoTo(*start); err != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "start level: %v\n", err)
			os.Exit(1)
		}
	}

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(manager, hud, ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			step(manager, scene, hud)
		}
	}
}

// handleKey применяет нажатие; false — выход из игры.
func handleKey(m *app.LevelManager, hud *ui.HUD, ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
		return false
	}

	level := m.Current()
	if level == nil {
		if ev.Key() == tcell.KeyEscape {
			return false
		}
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			if err := m.StartGame(); err != nil {
				log.Printf("start game: %v", err)
				hud.LastError = err.Error()
			}
		}
		return true
	}

	if m.Outcome() != "" {
		switch {
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			if err := m.GoTo(level.ID()); err != nil {
				log.Printf("restart: %v", err)
			}
		case ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M')):
			m.ReturnToMenu()
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		level.MoveUp()
	case tcell.KeyDown:
		level.MoveDown()
	case tcell.KeyEscape:
		m.ReturnToMenu()
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			level.Fire()
		case 'w', 'W':
			level.MoveUp()
		case 's', 'S':
			level.MoveDown()
		case 'p', 'P':
			level.TogglePause()
		case 'r', 'R':
			if err := level.Restart(); err != nil {
				log.Printf("restart: %v", err)
			}
		case 'm', 'M':
			m.ReturnToMenu()
		}
	}
	return true
}

// step — один тик симуляции и перерисовка.
// Терминал не сообщает об отпускании клавиш, поэтому самолёт
// останавливается после каждого тика, а автоповтор стрелок держит его в движении.
func step(m *app.LevelManager, scene *terminal.Renderer, hud *ui.HUD) {
	if m.InMenu() {
		lines := menuLines
		if hud.LastError != "" {
			lines = append(append([]string{}, menuLines...), "", "error: "+hud.LastError)
		}
		scene.Message(lines)
		return
	}

	scene.ClearOverlays()
	m.Tick()

	level := m.Current()
	if level == nil {
		scene.Message(menuLines)
		return
	}
	level.StopMoving()

	switch {
	case m.Outcome() == event.GameOverWin:
		scene.Message([]string{"YOU WIN", fmt.Sprintf("score %d   kills %d", hud.Score, hud.Kills), "", "R - play again   M - menu"})
	case m.Outcome() == event.GameOverLoss:
		scene.Message([]string{"GAME OVER", fmt.Sprintf("score %d   kills %d", hud.Score, hud.Kills), "", "R - try again   M - menu"})
	case level.State() == app.StatePaused:
		scene.Draw(append(hud.Lines(), "PAUSED - P to resume"))
	default:
		scene.Draw(hud.Lines())
	}
}
