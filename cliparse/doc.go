// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment-variable fallbacks.

Precedence: CLI flag, then environment variable, then built-in default.

  - PORT (-p): listen port (default 8080)
  - BASE_URL (-base-url): public base URL for action links
  - DEFAULT_PAGE_LIMIT (-page-limit): feed page size (default 20)
  - MAX_PAGE_LIMIT (-max-page-limit): page size cap (default 50)
  - RATE_PER_SECOND (-rps), RATE_BURST (-burst): per-caller limits
  - FRAME_MAX_AGE (-frame-max-age): frame message freshness window
    (default 5m)
*/
package cliparse
