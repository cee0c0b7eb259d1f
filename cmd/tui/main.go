// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go-siege/internal/app"
	"go-siege/internal/audio"
	"go-siege/internal/config"
	"go-siege/internal/input"
	"go-siege/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	levelsPath := flag.String("levels", "", "level definitions JSON (built-in levels when empty)")
	blocksPath := flag.String("blocks", "", "block definitions JSON (built-in blocks when empty)")
	mute := flag.Bool("mute", false, "start with sound off")
	seed := flag.Int64("seed", 0, "seed for cosmetic randomness (0 = time based)")
	logPath := flag.String("log", "", "write the log to this file")
	flag.Parse()

	// The terminal belongs to the renderer.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	queue := input.NewQueue()
	sound := audio.NewSoundSink(0.8)
	sound.SetMuted(*mute)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	opts := app.Options{Input: queue, Sink: sound, Seed: *seed}
	if err := app.LoadDefinitions(&opts, *levelsPath, *blocksPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	game := app.NewGame(opts)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, game, queue, sound, *mute)
}

func run(screen tcell.Screen, game *app.Game, queue *input.Queue, sound *audio.SoundSink, muted bool) {
	renderer := tui.NewRenderer(screen)
	controls := tui.NewControls(queue)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch controls.HandleKey(ev, game.Phase()) {
				case tui.ActionQuit:
					return
				case tui.ActionToggleMute:
					muted = !muted
					sound.SetMuted(muted)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now
			if err := game.Update(dt); err != nil {
				log.Printf("Update: %v", err)
			}
			renderer.Draw(game, queue.AimDirection(), queue.Tier())
		}
	}
}
