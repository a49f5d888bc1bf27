// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Domain Types

All entities are immutable-by-replacement records keyed by identifier:

  - Creator: profile plus aggregate totals (revenue, content, followers)
  - ContentPiece: a creative work with its revenue-share configuration
    and the derived remixCount/engagementCount counters
  - Remix: a derivative-work proposal referencing an original piece
  - Enhancement: a paid add-on applied to a piece, pending approval
  - Transaction: an append-only payment record
  - Engagement: a recorded user interaction (like, comment, share, ...)
  - CommunityPoll: question, options, and the per-voter vote ledger
  - Notification: per-user message with a one-way read flag

# Request Types

Incoming JSON payloads carry `validate` tags consumed at the handler
boundary; the store trusts its inputs. Update requests use pointer
fields so that only supplied values are applied, and they list only
the mutable fields, which is what keeps identity and creation-time
fields immutable.

# Response Types

FeedResponse wraps a content page with pagination metadata. ErrorResponse
is the uniform error body: {"error": "...", "message": "..."}.
*/
package models
