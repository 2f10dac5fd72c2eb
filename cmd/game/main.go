// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"go-sky-battle/internal/app"
	"go-sky-battle/internal/config"
	"go-sky-battle/internal/defs"
	"go-sky-battle/internal/event"
	"go-sky-battle/internal/interfaces"
	"go-sky-battle/internal/sound"
	"go-sky-battle/internal/state"
	"go-sky-battle/internal/ui"
	"go-sky-battle/internal/utils"
	"go-sky-battle/pkg/render"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelsPath := flag.String("levels", "", "JSON-файл с уровнями (по умолчанию встроенные)")
	seed := flag.Int64("seed", 0, "сид генератора, 0 — текущее время")
	start := flag.String("start", "", "id уровня, с которого начать, минуя меню")
	hitboxes := flag.Bool("hitboxes", false, "показывать хитбоксы")
	soundsDir := flag.String("sounds", "assets/sounds", "каталог с WAV-дорожками")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)

	library := defs.DefaultLevels()
	if *levelsPath != "" {
		var err error
		library, err = defs.LoadLevelDefinitions(*levelsPath)
		if err != nil {
			log.Fatalf("load levels: %v", err)
		}
	}

	rng := utils.NewPRNGService(*seed)
	log.Printf("random seed %d", rng.Seed())

	var audioOut interfaces.Audio = interfaces.NopAudio{}
	if st, err := os.Stat(*soundsDir); err == nil && st.IsDir() {
		audioOut = sound.NewEbitenAudio(*soundsDir)
	} else {
		log.Printf("sounds directory %q unavailable, audio disabled", *soundsDir)
	}

	dispatcher := event.NewDispatcher()
	hud := ui.NewHUD()
	hud.Subscribe(dispatcher)
	scene := render.NewSpriteRenderer(render.DefaultPalette())

	manager := app.NewLevelManager(library, app.Options{
		Renderer:     scene,
		Audio:        audioOut,
		Dispatcher:   dispatcher,
		RNG:          rng,
		ShowHitboxes: *hitboxes,
	})
	shared := &state.Shared{
		Manager:  manager,
		Renderer: scene,
		HUD:      hud,
		Hearts:   ui.NewHealthIndicator(12, 12),
	}

	sm := state.NewStateMachine()
	if *start != "" {
		if err := manager.GoTo(*start); err != nil {
			log.Fatalf("start level: %v", err)
		}
		sm.SetState(state.NewPlayState(sm, shared))
	} else {
		sm.SetState(state.NewMenuState(sm, shared))
	}

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Sky Battle")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
