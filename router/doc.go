// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Remixshare API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

Every route except /health and /metrics runs through the standard
middleware chain: request logging, Prometheus metrics, and per-caller
rate limiting.

# Endpoints

Health and observability:

	GET /health
	GET /metrics

Content:

	POST  /content                         - Publish content (auth)
	GET   /content                         - Feed with search and pagination
	GET   /content/{id}                    - Fetch one piece
	PATCH /content/{id}                    - Update mutable fields (owner)
	PUT   /content/{id}/revenue-share      - Set revenue share (owner)
	GET   /content/{id}/analytics          - Aggregated metrics
	GET   /content/{id}/remixes            - Remixes of this piece
	GET   /content/{id}/enhancements       - Enhancements of this piece
	GET   /content/{id}/transactions       - Transactions touching this piece
	GET   /content/{id}/engagements        - Engagement log

Creators:

	POST /creators               - Register a profile
	GET  /creators/{id}          - Fetch a profile
	GET  /creators/{id}/content  - Creator's content
	GET  /creators/{id}/polls    - Creator's polls

Collaboration:

	POST /remixes                - Propose a remix (auth)
	POST /remixes/{id}/approve   - Approve (original owner)
	POST /enhancements           - Propose an enhancement (auth)
	POST /engagements            - Record an interaction (auth)

Revenue:

	POST /transactions                   - Record a transaction (auth)
	GET  /wallets/{address}/transactions - Wallet history
	GET  /stats/revenue                  - Platform totals

Polls:

	POST /polls               - Create poll (auth)
	GET  /polls/{id}          - Poll details
	GET  /polls/{id}/results  - Tallied results
	POST /polls/{id}/vote     - Cast one vote (auth)

Notifications:

	GET  /notifications            - Caller's notifications (auth)
	POST /notifications/{id}/read  - Mark as read (auth)

Frames:

	POST /frame - Frame webhook, dispatching on button index

# Handler Initialization

The router creates handler instances with dependency injection:

	contentHandler := handlers.NewContentHandler(st, cfg)
	pollHandler := handlers.NewPollHandler(st, cfg)

All handlers receive the shared store and configuration.
*/
package router
