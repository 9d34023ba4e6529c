package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"vquest/config"
	"vquest/game"
	"vquest/sound"
	"vquest/store"
	"vquest/ui"
)

func main() {
	cfg, err := config.Load("vquest", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vquest: %v\n", err)
		os.Exit(1)
	}

	if f := config.SetupLogging(cfg.Debug, cfg.LogDir); f != nil {
		defer f.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[Main] seed %d, save %s", seed, cfg.SavePath)

	player := sound.Silent()
	if !cfg.Mute {
		if player, err = sound.NewPlayer(cfg.Volume); err != nil {
			log.Printf("[Main] audio disabled: %v", err)
		}
	}
	defer player.Close()

	ctrl := game.New(rand.New(rand.NewSource(seed)), game.Options{
		MaxAttempts: cfg.MaxAttempts,
		Store:       store.NewFileStore(cfg.SavePath),
		Sound:       player,
	})

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("V-Quest")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(ui.New(ctrl, cfg.Width, cfg.Height)); err != nil {
		fmt.Fprintf(os.Stderr, "vquest: %v\n", err)
		os.Exit(1)
	}
}
