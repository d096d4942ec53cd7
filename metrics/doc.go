// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for the waitlist relay.
//
// Call Register once at startup and serve Registry with promhttp. Outcomes
// are counted per request; forward duration covers only the sink post.
package metrics
