// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/meikai-waitlist/cliparse"
	"github.com/danielhkuo/meikai-waitlist/handlers"
	"github.com/danielhkuo/meikai-waitlist/metrics"
	"github.com/danielhkuo/meikai-waitlist/middleware"
	"github.com/danielhkuo/meikai-waitlist/opaque"
)

// NewRouter wires the relay. journal may be nil.
func NewRouter(cfg cliparse.Config, sender opaque.Sender, journal handlers.Recorder) *http.ServeMux {
	mux := http.NewServeMux()

	metrics.Register()

	// Initialize handlers
	waitlistHandler := handlers.NewWaitlistHandler(cfg, sender, journal)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// Waitlist relay. Registered without a method so the handler can answer
	// OPTIONS and 405 itself.
	mux.Handle("/api/waitlist", middleware.CORS(middleware.WithLogging(waitlistHandler.Join)))

	// Root endpoint, exact match only
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("meikai-waitlist relay v1"))
	})

	return mux
}
