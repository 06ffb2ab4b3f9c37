// Command fieldterm runs the ambient particle field in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ambient-field/internal/config"
	"github.com/iburimskiy/ambient-field/internal/term"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	logPath := flag.String("log", "", "write logs to this file (the terminal is taken by the field)")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	settings, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("[Main] %v", err)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.Fatalf("[Main] %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

	if err := run(settings, logger); err != nil {
		fmt.Fprintf(os.Stderr, "fieldterm: %v\n", err)
		os.Exit(1)
	}
}

func run(settings config.Settings, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app, err := term.NewApp(screen, settings, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
