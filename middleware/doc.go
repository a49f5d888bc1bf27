// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides HTTP middleware and response helpers shared
// by every handler in the service.
//
// The package covers four concerns:
//
//   - Request logging: WithLogging assigns each request a correlation ID
//     (honouring an inbound X-Request-ID header), logs start and
//     completion with structured fields via log/slog, and echoes the ID
//     back to the caller.
//
//   - Rate limiting: RateLimiter keeps a token bucket per caller,
//     keyed by authenticated user ID when present and client IP
//     otherwise. Exhausted callers receive 429 responses. Idle buckets
//     are evicted periodically so the map does not grow without bound.
//
//   - Metrics: WithMetrics exports Prometheus counters, a latency
//     histogram and an in-flight gauge, labelled by route pattern so that
//     path parameters do not explode label cardinality.
//
//   - JSON plumbing: JSONResponse, ErrorResponse and ParseJSONBody give
//     handlers a single consistent way to read and write JSON bodies.
//     ErrorResponse always produces the models.ErrorResponse shape.
//
// Middleware composes as plain http.HandlerFunc wrappers so routes can
// chain exactly the pieces they need.
package middleware
