package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	watch := flag.Bool("watch", false, "hot-reload prefab definitions from disk")
	motes := flag.Int("motes", 12, "number of scripted motes to spawn")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(2*baseWidth, 2*baseHeight)
	ebiten.SetWindowTitle("geist")

	game, err := NewGame(*watch, *motes)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
