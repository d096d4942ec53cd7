// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command join is a terminal form for the meikai waitlist.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/danielhkuo/meikai-waitlist/clientconfig"
	"github.com/danielhkuo/meikai-waitlist/opaque"
	"github.com/danielhkuo/meikai-waitlist/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := pflag.String("config", "", "override client config path (default "+clientconfig.DefaultPath()+")")
	logFile := pflag.String("log-file", "", "write debug logs to this file (optional)")
	pflag.Parse()

	// The form owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "join: open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug})))

	cfg, err := clientconfig.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "join: %v\n", err)
		return 1
	}
	slog.Debug("client config loaded", "path", cfg.Path, "endpoint_configured", cfg.EndpointURL != "")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := tui.Options{
		Sender:   opaque.NewPoster(nil),
		Endpoint: cfg.EndpointURL,
	}
	if err := tui.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "join: %v\n", err)
		return 1
	}
	return 0
}
