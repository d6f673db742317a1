package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/console"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printfln("Invalid configuration: %v", err)
		os.Exit(1)
	}

	if cfg.Debug {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	// An interrupt at any prompt becomes a clean farewell, not a crash.
	// No state outlives the process, so there is nothing to flush.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		pterm.Println()
		pterm.Info.Println("Game interrupted. Goodbye!")
		os.Exit(0)
	}()

	console.New(cfg, logger).Run()
}
