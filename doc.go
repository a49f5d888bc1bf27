// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Remixshare API server.

Remixshare is a creator content platform with revenue sharing: creators
publish content, other creators remix and enhance it, revenue flows
through recorded transactions, and communities vote on polls. Frame
actions from social clients drive the same operations through a single
webhook.

# Starting the Server

The server reads configuration from a .env file, environment variables
or CLI flags:

	PORT=8080 go run main.go

Or with flags:

	go run main.go -p 8080 -base-url "https://remixshare.example.com"

# Configuration

Optional settings (all have defaults):

  - PORT (-p): Server port (default: 8080)
  - BASE_URL (-base-url): Public base URL used in notification links
  - DEFAULT_PAGE_LIMIT (-page-limit): Feed page size (default: 20)
  - MAX_PAGE_LIMIT (-max-page-limit): Page size cap (default: 50)
  - RATE_PER_SECOND (-rps): Per-caller request rate (default: 10)
  - RATE_BURST (-burst): Per-caller burst (default: 30)
  - FRAME_MAX_AGE (-frame-max-age): Frame message age window (default: 5m)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (content, creators, remixes, polls, frames)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, rate limiting, metrics, CORS, JSON helpers
  - models: Domain and request/response types
  - store: In-memory entity store, counters and vote ledger
  - ids: Entity identifier generation
  - auth: Trusted-header identity and frame identity derivation
  - cliparse: Configuration parsing

All state is held in memory by design; restarting the process clears it.

See package documentation for each component.
*/
package main
