package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ambient-field/internal/config"
	"github.com/iburimskiy/ambient-field/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	soundtrack := flag.String("soundtrack", "", "audio file to play on start (overrides settings)")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	settings, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("[Main] %v", err)
	}
	if *soundtrack != "" {
		settings.Soundtrack = *soundtrack
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if settings.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if settings.HUD.Cursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	g, err := game.New(settings, logger)
	if err != nil {
		logger.Fatalf("[Main] %v", err)
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalf("[Main] %v", err)
	}
}
