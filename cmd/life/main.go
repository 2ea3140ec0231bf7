//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifedots/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Size()

	ebiten.SetWindowTitle("lifedots")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
