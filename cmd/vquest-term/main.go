// Command vquest-term plays V-Quest in a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"vquest/config"
	"vquest/game"
	"vquest/sound"
	"vquest/store"
	"vquest/term"
)

func main() {
	cfg, err := config.Load("vquest-term", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vquest-term: %v\n", err)
		os.Exit(1)
	}

	// stderr belongs to the terminal UI, so diagnostics only go to the debug file
	if f := config.SetupLogging(cfg.Debug, cfg.LogDir); f != nil {
		defer f.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	player := sound.Silent()
	if !cfg.Mute {
		if player, err = sound.NewPlayer(cfg.Volume); err != nil {
			log.Printf("[Main] audio disabled: %v", err)
		}
	}
	defer player.Close()

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

	ctrl := game.New(rand.New(rand.NewSource(seed)), game.Options{
		MaxAttempts: cfg.MaxAttempts,
		Store:       store.NewFileStore(cfg.SavePath),
		Sound:       player,
	})
	log.Printf("[Main] seed %d, save %s", seed, cfg.SavePath)

	term.New(screen, ctrl).Run()
}
