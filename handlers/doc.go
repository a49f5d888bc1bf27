// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package handlers implements the HTTP boundary of the service.
//
// Each entity gets its own handler struct (ContentHandler, PollHandler,
// FrameHandler, ...) constructed with the shared store and parsed
// config. Handlers are thin: they authenticate the caller from the
// trusted identity header, validate the request body against the struct
// tags on the models request types, call one or two store operations,
// and translate the store's absent-value and boolean outcomes into
// HTTP status codes:
//
//   - missing record        -> 404
//   - failed validation     -> 400 with a field-level message
//   - rejected policy       -> 409 (duplicate vote, ended poll, existing creator)
//   - missing identity      -> 401
//   - non-owner mutation    -> 403
//
// Write paths provision a creator profile on first interaction, so
// frame users (fc_ identities) never need an explicit registration
// step. Side-effect notifications (remix requests, enhancement
// proposals, completed revenue transactions) are created here rather
// than in the store, keeping the store's operations single-purpose.
//
// The frame webhook (FrameHandler.HandleFrame) is the one composite
// endpoint: it authenticates by deriving fc_<fid> from the frame
// payload, enforces the message age window, and dispatches the button
// index to revenue configuration, remix creation, enhancement purchase
// or poll voting.
package handlers
