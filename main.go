package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/meikai-waitlist/cliparse"
	"github.com/danielhkuo/meikai-waitlist/db"
	"github.com/danielhkuo/meikai-waitlist/handlers"
	"github.com/danielhkuo/meikai-waitlist/opaque"
	"github.com/danielhkuo/meikai-waitlist/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level, _ := cliparse.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if !cfg.SinkConfigured() {
		slog.Warn("GOOGLE_SHEETS_URL not set; every valid signup will fail until it is")
	}

	// Optional attempt journal. Left as a nil interface when disabled.
	var journal handlers.Recorder
	if cfg.JournalEnabled() {
		j, err := db.Open(cfg.JournalType, cfg.JournalURL)
		if err != nil {
			slog.Error("journal open failed", "error", err, "type", cfg.JournalType)
			os.Exit(1)
		}
		defer func() {
			if err := j.Close(); err != nil {
				slog.Error("journal close failed", "error", err)
			}
		}()
		journal = j
		slog.Info("Journal ready", "type", cfg.JournalType)
	}

	// Create router
	mux := router.NewRouter(cfg, opaque.NewPoster(nil), journal)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		// Wait for Ctrl-C signal, then let in-flight forwards finish
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("shutdown timed out", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "sink_configured", cfg.SinkConfigured())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
		return
	}

	<-drained
	slog.Info("Server closed", "error", err)
}
