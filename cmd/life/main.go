//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"infinite-life/internal/app"
	_ "infinite-life/internal/patterns"
	"infinite-life/internal/session"
	"infinite-life/internal/view"
	"infinite-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	s := session.New(life.New(), cfg.Interval())
	if err := s.Reseed(cfg.Pattern, cfg.PatternConfig()); err != nil {
		log.Fatal(err)
	}
	s.SetSimulate(cfg.Run)

	vp := view.New(cfg.Cols, cfg.Rows, cfg.Cell, cfg.Cell)
	game := app.New(s, vp)
	w, h := vp.Size()

	log.Printf("pattern %s: %d cells, %dx%d view, %s per generation", cfg.Pattern, s.Population(), cfg.Cols, cfg.Rows, s.Interval())

	ebiten.SetWindowTitle("infinite-life — " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
