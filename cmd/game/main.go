// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-siege/internal/app"
	"go-siege/internal/audio"
	"go-siege/internal/config"
	"go-siege/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelsPath := flag.String("levels", "", "level definitions JSON (built-in levels when empty)")
	blocksPath := flag.String("blocks", "", "block definitions JSON (built-in blocks when empty)")
	mute := flag.Bool("mute", false, "start with sound off")
	seed := flag.Int64("seed", 0, "seed for cosmetic randomness (0 = time based)")
	flag.Parse()

	sound := audio.NewSoundSink(0.8)
	sound.SetMuted(*mute)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	opts := app.Options{Seed: *seed}
	if err := app.LoadDefinitions(&opts, *levelsPath, *blocksPath); err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	play := state.NewGameState(sm, opts, sound)
	sm.SetState(state.NewMenuState(sm, play))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Siege")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
