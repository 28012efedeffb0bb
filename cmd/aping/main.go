package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"aping/internal/alert"
	"aping/internal/config"
	"aping/internal/database"
	"aping/internal/keyboard"
	"aping/internal/latch"
	"aping/internal/models"
	"aping/internal/monitor"
	"aping/internal/ping"
	"aping/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse configuration
	cfg, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "aping: error: %v, try --help\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "aping: error: %v, try --help\n", err)
		return 2
	}

	logger := newLogger(cfg.Debug)

	// Session store, in memory only and only when a report will read it
	store, err := openSessionStore(cfg)
	if err != nil {
		_ = level.Error(logger).Log("msg", "Failed to initialize session store", "err", err)
		return 1
	}
	if store != nil {
		defer store.Close()
	}

	shutdown := latch.New()

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		sig := <-sigChan
		_ = level.Debug(logger).Log("msg", "Received signal", "signal", sig)
		shutdown.Set()
	}()

	// Watch for the quit key
	stdinFd := int(os.Stdin.Fd())
	if keyboard.IsTerminal(stdinFd) {
		restore, err := keyboard.EnableKeyInput(stdinFd)
		if err != nil {
			_ = level.Error(logger).Log("msg", "Failed to set up keyboard input", "err", err)
			return 1
		}
		defer func() {
			if err := restore(); err != nil {
				_ = level.Warn(logger).Log("msg", "Failed to restore terminal", "err", err)
			}
		}()
		watcher := keyboard.NewWatcher(os.Stdin, shutdown, log.With(logger, "component", "keyboard"))
		go watcher.Run()
	} else {
		_ = level.Warn(logger).Log("msg", "Standard input is not a terminal, quit key disabled; use Ctrl-C")
	}

	// Initialize components
	pinger := ping.New()
	mon := monitor.New(cfg, pinger, alert.New(os.Stdout), store, shutdown, os.Stdout,
		log.With(logger, "component", "monitor"))

	fmt.Printf("Pinging %s... Press '%c' to quit.\n", cfg.Destination, keyboard.QuitKey)

	stats := mon.Run(context.Background())

	fmt.Println("Exiting aping.")
	monitor.PrintSummary(os.Stdout, cfg.Destination, stats)

	if store != nil {
		gen := report.NewGenerator(store, log.With(logger, "component", "report"))
		if err := writeReport(os.Stdout, gen, cfg, stats); err != nil {
			_ = level.Error(logger).Log("msg", "Failed to generate report", "err", err)
		}
	}

	return 0
}

// openSessionStore returns nil when no report was requested, so nothing
// accumulates during a long run
func openSessionStore(cfg config.Config) (models.Store, error) {
	if cfg.ReportDir == "" {
		return nil, nil
	}
	db, err := database.New()
	if err != nil {
		return nil, err
	}
	return db, nil
}

func writeReport(w io.Writer, gen models.ReportGenerator, cfg config.Config, stats models.Stats) error {
	dir, err := gen.GenerateReport(cfg.ReportDir, cfg.Destination, stats)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Report written to %s\n", dir)
	return nil
}

func newLogger(debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if debug {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}
